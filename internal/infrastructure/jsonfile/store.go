package jsonfile

import (
	"fmt"
	"os"
	"path/filepath"
)

// Store groups the collections backing the application under one data
// directory and carries the health check surface the server exposes.
type Store struct {
	dataDir string
}

// NewStore prepares the data directory for the application's collections.
func NewStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory %s: %w", dataDir, err)
	}

	return &Store{dataDir: dataDir}, nil
}

// File returns the full path for a collection file inside the data directory.
func (s *Store) File(name string) string {
	return filepath.Join(s.dataDir, name)
}

// HealthCheck verifies the data directory is writable.
func (s *Store) HealthCheck() error {
	probe, err := os.CreateTemp(s.dataDir, ".healthcheck-*")
	if err != nil {
		return fmt.Errorf("data directory not writable: %w", err)
	}
	probe.Close()
	os.Remove(probe.Name())
	return nil
}

// Stats reports basic information about the data directory.
func (s *Store) Stats() map[string]interface{} {
	stats := map[string]interface{}{
		"data_dir": s.dataDir,
	}

	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		return stats
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			files = append(files, entry.Name())
		}
	}
	stats["files"] = files

	return stats
}
