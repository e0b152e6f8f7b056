package jsonfile

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore_CreatesDataDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")

	store, err := NewStore(dir)

	require.NoError(t, err)
	assert.DirExists(t, dir)
	assert.Equal(t, filepath.Join(dir, "products.json"), store.File("products.json"))
}

func TestHealthCheck_WritableDirectory(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.HealthCheck())
}

func TestStats_ListsCollectionFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	c := New[record](store.File("products.json"))
	require.NoError(t, c.Replace(context.Background(), []record{{ID: 1}}))

	stats := store.Stats()
	assert.Equal(t, dir, stats["data_dir"])
	assert.Contains(t, stats["files"], "products.json")
}
