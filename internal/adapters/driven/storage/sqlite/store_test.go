package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdsolution/vitrine/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)
	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})

	return store
}

func TestNewStore_CreatesDatabase(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(dir, "vitrine.db"), store.Path())
	_, err = os.Stat(store.Path())
	assert.NoError(t, err)

	version, err := store.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, 1, version)
}

func TestNewStore_ReopenSkipsAppliedMigrations(t *testing.T) {
	dir := t.TempDir()

	first, err := NewStore(dir)
	require.NoError(t, err)
	_, err = first.RecordStore().Save(context.Background(), domain.ServiceRecord{
		Name:     domain.SomeText("Essencial"),
		Category: domain.CategoryMarketing,
	})
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := NewStore(dir)
	require.NoError(t, err)
	defer second.Close()

	records, err := second.RecordStore().Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestNewStore_DefaultDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := NewStore("")
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(home, ".vitrine", "data", "vitrine.db"), store.Path())
}

func TestPendingMigrations(t *testing.T) {
	fsys := fstest.MapFS{
		"010_later.up.sql":      {Data: []byte("SELECT 1;")},
		"002_second.up.sql":     {Data: []byte("SELECT 1;")},
		"001_first.up.sql":      {Data: []byte("SELECT 1;")},
		"001_first.down.sql":    {Data: []byte("SELECT 1;")},
		"embed.go":              {Data: []byte("package migrations")},
		"notes_without_num.sql": {Data: []byte("")},
	}

	t.Run("all pending from scratch, ordered numerically", func(t *testing.T) {
		got, err := pendingMigrations(fsys, 0)
		require.NoError(t, err)
		assert.Equal(t, []migration{
			{version: 1, name: "001_first.up.sql"},
			{version: 2, name: "002_second.up.sql"},
			{version: 10, name: "010_later.up.sql"},
		}, got)
	})

	t.Run("applied versions are skipped", func(t *testing.T) {
		got, err := pendingMigrations(fsys, 2)
		require.NoError(t, err)
		assert.Equal(t, []migration{{version: 10, name: "010_later.up.sql"}}, got)
	})

	t.Run("nothing pending", func(t *testing.T) {
		got, err := pendingMigrations(fsys, 10)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
