package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/mdsolution/vitrine/internal/core/domain"
)

const records = `[
	{"name": "Essencial", "category": "social_media", "page": "social-media", "display_order": 1},
	{"name": "Autoridade", "category": "social_media", "features": [""], "display_order": 2}
]`

func writeRecords(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestNewSource_RequiresPath(t *testing.T) {
	_, err := NewSource("")
	assert.ErrorIs(t, err, domain.ErrSourceNotConfigured)
}

func TestSource_Fetch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	writeRecords(t, path, records)
	source, err := NewSource(path)
	require.NoError(t, err)

	got, err := source.Fetch(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Essencial", got[0].Name.String())
	assert.Equal(t, domain.CategorySocialMedia, got[1].Category)
	assert.False(t, got[1].Features.IsSet())
}

func TestSource_Fetch_MissingFile(t *testing.T) {
	source, err := NewSource(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)

	_, err = source.Fetch(context.Background())

	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSource_Fetch_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	writeRecords(t, path, `{"not": "an array"}`)
	source, err := NewSource(path)
	require.NoError(t, err)

	_, err = source.Fetch(context.Background())

	assert.Error(t, err)
}

func TestSource_Fetch_CancelledContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	writeRecords(t, path, records)
	source, err := NewSource(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = source.Fetch(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSource_Watch(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "records.json")
	writeRecords(t, path, records)
	source, err := NewSource(path)
	require.NoError(t, err)
	source.debounce = 10 * time.Millisecond

	var changes atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- source.Watch(ctx, func() { changes.Add(1) })
	}()

	// Writes to other files in the directory are ignored.
	require.Eventually(t, func() bool {
		writeRecords(t, filepath.Join(dir, "other.json"), "[]")
		writeRecords(t, path, records)
		return changes.Load() > 0
	}, 2*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestSource_Watch_MissingDirectory(t *testing.T) {
	source, err := NewSource(filepath.Join(t.TempDir(), "nope", "records.json"))
	require.NoError(t, err)

	err = source.Watch(context.Background(), func() {})

	assert.Error(t, err)
}
