package jsonfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func newTestCollection(t *testing.T) *Collection[record] {
	t.Helper()
	return New[record](filepath.Join(t.TempDir(), "records.json"))
}

func TestLoad_MissingFileYieldsEmptySequence(t *testing.T) {
	c := newTestCollection(t)

	records, err := c.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NoFileExists(t, c.Path())
}

func TestReplaceAndLoad_RoundTrip(t *testing.T) {
	c := newTestCollection(t)
	want := []record{{ID: 1, Name: "first"}, {ID: 2, Name: "second"}}

	require.NoError(t, c.Replace(context.Background(), want))

	got, err := c.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReplace_NilWritesEmptyArray(t *testing.T) {
	c := newTestCollection(t)

	require.NoError(t, c.Replace(context.Background(), nil))

	data, err := os.ReadFile(c.Path())
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestReplace_CreatesParentDirectory(t *testing.T) {
	dir := t.TempDir()
	c := New[record](filepath.Join(dir, "nested", "deeper", "records.json"))

	require.NoError(t, c.Replace(context.Background(), []record{{ID: 7, Name: "seven"}}))

	got, err := c.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(7), got[0].ID)
}

func TestLoad_EmptyFileYieldsEmptySequence(t *testing.T) {
	c := newTestCollection(t)
	require.NoError(t, os.WriteFile(c.Path(), nil, 0o644))

	records, err := c.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLoad_MalformedFileFails(t *testing.T) {
	c := newTestCollection(t)
	require.NoError(t, os.WriteFile(c.Path(), []byte("{not json"), 0o644))

	_, err := c.Load(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestUpdate_MutationErrorLeavesFileUntouched(t *testing.T) {
	c := newTestCollection(t)
	initial := []record{{ID: 1, Name: "keep"}}
	require.NoError(t, c.Replace(context.Background(), initial))

	boom := errors.New("mutation rejected")
	err := c.Update(context.Background(), func(records []record) ([]record, error) {
		return nil, boom
	})

	require.ErrorIs(t, err, boom)

	got, loadErr := c.Load(context.Background())
	require.NoError(t, loadErr)
	assert.Equal(t, initial, got)
}

func TestUpdate_AppliesMutation(t *testing.T) {
	c := newTestCollection(t)
	require.NoError(t, c.Replace(context.Background(), []record{{ID: 1, Name: "one"}}))

	err := c.Update(context.Background(), func(records []record) ([]record, error) {
		return append(records, record{ID: 2, Name: "two"}), nil
	})
	require.NoError(t, err)

	got, err := c.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "two", got[1].Name)
}

func TestUpdate_ConcurrentWritersLoseNoUpdates(t *testing.T) {
	c := newTestCollection(t)
	ctx := context.Background()

	const writers = 50

	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func(n int) {
			defer wg.Done()
			err := c.Update(ctx, func(records []record) ([]record, error) {
				return append(records, record{ID: int64(n)}), nil
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	got, err := c.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, writers)

	seen := make(map[int64]bool, writers)
	for _, r := range got {
		assert.False(t, seen[r.ID], "record %d written twice", r.ID)
		seen[r.ID] = true
	}
}

func TestUpdate_CancelledContextFails(t *testing.T) {
	c := newTestCollection(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Update(ctx, func(records []record) ([]record, error) {
		return records, nil
	})

	require.ErrorIs(t, err, context.Canceled)
}

func TestWrite_LeavesNoTempFilesBehind(t *testing.T) {
	c := newTestCollection(t)
	require.NoError(t, c.Replace(context.Background(), []record{{ID: 1}}))
	require.NoError(t, c.Replace(context.Background(), []record{{ID: 2}}))

	entries, err := os.ReadDir(filepath.Dir(c.Path()))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Base(c.Path()), entries[0].Name())
}
