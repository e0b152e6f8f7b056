// Package jsonfile implements a flat-file record store: an ordered sequence
// of records persisted as a single JSON array. Every mutation re-reads the
// whole file, applies the change in memory and rewrites the whole file; a
// per-file mutex serializes these read-modify-write cycles so concurrent
// writers cannot lose updates.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Collection is a file-backed ordered sequence of records of type T.
// The file on disk is the sole source of truth; every in-memory copy is
// transient and discarded once the cycle completes.
type Collection[T any] struct {
	path string
	mu   sync.Mutex
}

// New creates a collection backed by the given file path. The file is not
// touched until the first write; a missing file reads as an empty sequence.
func New[T any](path string) *Collection[T] {
	return &Collection[T]{path: path}
}

// Path returns the backing file path.
func (c *Collection[T]) Path() string {
	return c.path
}

// Load reads and parses the backing file. A missing file yields an empty
// sequence, not an error.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	return c.read()
}

// Replace serializes the full sequence and atomically overwrites the
// backing file, replacing prior contents.
func (c *Collection[T]) Replace(ctx context.Context, records []T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	return c.write(records)
}

// Update runs one read-modify-write cycle under the file lock: the current
// sequence is loaded, passed to mutate, and the returned sequence is written
// back. If mutate returns an error the cycle aborts and the file keeps its
// prior contents.
func (c *Collection[T]) Update(ctx context.Context, mutate func(records []T) ([]T, error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.read()
	if err != nil {
		return err
	}

	updated, err := mutate(records)
	if err != nil {
		return err
	}

	return c.write(updated)
}

func (c *Collection[T]) read() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", c.path, err)
	}

	if len(data) == 0 {
		return []T{}, nil
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", c.path, err)
	}

	return records, nil
}

// write serializes to a temp file in the same directory and renames it over
// the target, so a crash mid-write cannot truncate the collection.
func (c *Collection[T]) write(records []T) error {
	if records == nil {
		records = []T{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize %s: %w", c.path, err)
	}

	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(c.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}

	if err := os.Rename(tmp.Name(), c.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace %s: %w", c.path, err)
	}

	return nil
}
