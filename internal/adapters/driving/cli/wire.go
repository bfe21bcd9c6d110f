package cli

import (
	"fmt"
	"path/filepath"

	"github.com/mdsolution/vitrine/internal/adapters/driven/adminapi"
	"github.com/mdsolution/vitrine/internal/adapters/driven/catalog"
	"github.com/mdsolution/vitrine/internal/adapters/driven/config/file"
	"github.com/mdsolution/vitrine/internal/adapters/driven/storage/jsonfile"
	"github.com/mdsolution/vitrine/internal/adapters/driven/storage/sqlite"
	"github.com/mdsolution/vitrine/internal/core/domain"
	"github.com/mdsolution/vitrine/internal/core/ports/driven"
	"github.com/mdsolution/vitrine/internal/core/services"
	"github.com/mdsolution/vitrine/internal/logger"
)

// wire builds every service from the configuration in dir.
// A broken fallback catalog is the only fatal configuration error;
// a misconfigured record source degrades to fallback-only rendering.
func wire(dir string) error {
	store, err := file.NewConfigStore(dir)
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	settingsSvc := services.NewSettingsService(store)
	settings, err := settingsSvc.Get()
	if err != nil {
		return fmt.Errorf("reading settings: %w", err)
	}

	cat, err := catalog.Load(settings.CatalogPath)
	if err != nil {
		return fmt.Errorf("loading fallback catalog: %w", err)
	}

	dataDir := settings.DataDir
	if dataDir == "" && dir != "" {
		dataDir = filepath.Join(dir, "data")
	}
	db, err := sqlite.NewStore(dataDir)
	if err != nil {
		return fmt.Errorf("opening local store: %w", err)
	}
	local := db.RecordStore()

	source, watcher := newRecordSource(settings, local)
	content := services.NewContentService(cat, source)
	content.SetFetchTimeout(settings.Source.Timeout)

	settingsService = settingsSvc
	contentService = content
	recordService = services.NewRecordService(local)
	seedService = services.NewSeedService(cat, local)
	fallbackCatalog = cat
	recordWatcher = watcher
	closeServices = db.Close
	wired = true

	logger.Debug("Wired record source %s, config %s, store %s", settings.Source.Kind, store.Path(), db.Path())
	return nil
}

// newRecordSource picks the backend named by settings. The watcher is
// nil for backends that cannot signal changes.
func newRecordSource(
	settings *domain.Settings,
	local driven.RecordStore,
) (driven.RecordSource, driven.RecordWatcher) {
	if err := settings.Validate(); err != nil {
		logger.Warn("Record source misconfigured, rendering fallback catalogs: %v", err)
		return nil, nil
	}

	switch settings.Source.Kind {
	case domain.SourceKindHTTP:
		client, err := adminapi.NewClient(adminapi.Config{
			BaseURL:       settings.Source.AdminURL,
			APIKey:        settings.Source.APIKey,
			Table:         settings.Source.Table,
			Timeout:       settings.Source.Timeout,
			RatePerSecond: settings.Source.RatePerSecond,
		})
		if err != nil {
			logger.Warn("Admin service client unavailable, rendering fallback catalogs: %v", err)
			return nil, nil
		}
		return client, nil

	case domain.SourceKindSQLite:
		return local, nil

	case domain.SourceKindFile:
		src, err := jsonfile.NewSource(settings.Source.RecordsFile)
		if err != nil {
			logger.Warn("Records file unavailable, rendering fallback catalogs: %v", err)
			return nil, nil
		}
		return src, src

	case domain.SourceKindNone:
	}
	return nil, nil
}
