package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mdsolution/vitrine/internal/adapters/driven/catalog"
	"github.com/mdsolution/vitrine/internal/adapters/driven/storage/memory"
	"github.com/mdsolution/vitrine/internal/core/domain"
	"github.com/mdsolution/vitrine/internal/core/ports/driven"
	"github.com/mdsolution/vitrine/internal/core/services"
)

// failingSource is a record source that is always unreachable.
type failingSource struct{}

func (failingSource) Fetch(context.Context) ([]domain.ServiceRecord, error) {
	return nil, errors.New("connection refused")
}

// setupTestServices wires the package globals to in-memory services
// backed by the built-in catalogs. A nil source reads the local store.
func setupTestServices(t *testing.T, source driven.RecordSource) *memory.RecordStore {
	t.Helper()

	cat, err := catalog.Default()
	require.NoError(t, err)

	store := memory.NewRecordStore()
	if source == nil {
		source = store
	}

	settingsService = services.NewSettingsService(memory.NewConfigStore())
	contentService = services.NewContentService(cat, source)
	recordService = services.NewRecordService(store)
	seedService = services.NewSeedService(cat, store)
	fallbackCatalog = cat
	recordWatcher = nil
	closeServices = nil
	wired = true

	t.Cleanup(func() {
		settingsService = nil
		contentService = nil
		recordService = nil
		seedService = nil
		fallbackCatalog = nil
		recordWatcher = nil
		wired = false

		resolveJSON = false
		resolveAll = false
		recordsCategory = ""
		recordsPage = ""
		recordsSearch = ""
		recordsJSON = false
		watchFor = 0
		watchInterval = defaultWatchInterval
	})

	return store
}

// execute runs the root command with args and returns its output.
// Each run gets a fresh context so a cancelled one never leaks between tests.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func saveRecord(t *testing.T, store *memory.RecordStore, r domain.ServiceRecord) string {
	t.Helper()
	id, err := store.Save(context.Background(), r)
	require.NoError(t, err)
	return id
}
