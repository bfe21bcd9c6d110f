package services

import (
	"fmt"
	"strconv"
	"time"

	"github.com/mdsolution/vitrine/internal/core/domain"
	"github.com/mdsolution/vitrine/internal/core/ports/driven"
	"github.com/mdsolution/vitrine/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keySourceKind    = "source.kind"
	keySourceURL     = "source.admin_url"
	keySourceAPIKey  = "source.api_key"
	keySourceTable   = "source.table"
	keySourceTimeout = "source.timeout_seconds"
	keySourceRate    = "source.rate_per_second"
	keySourceFile    = "source.records_file"
	keyCatalogPath   = "catalog.path"
	keyDataDir       = "data.dir"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current settings, with defaults for missing keys.
func (s *SettingsService) Get() (*domain.Settings, error) {
	defaults := domain.DefaultSettings()

	settings := &domain.Settings{
		Source: domain.SourceSettings{
			Kind:          domain.SourceKind(s.getString(keySourceKind, defaults.Source.Kind.String())),
			AdminURL:      s.configStore.GetString(keySourceURL),
			APIKey:        s.configStore.GetString(keySourceAPIKey),
			Table:         s.getString(keySourceTable, defaults.Source.Table),
			Timeout:       s.getTimeout(defaults.Source.Timeout),
			RatePerSecond: s.getFloat(keySourceRate, defaults.Source.RatePerSecond),
			RecordsFile:   s.configStore.GetString(keySourceFile),
		},
		CatalogPath: s.configStore.GetString(keyCatalogPath),
		DataDir:     s.configStore.GetString(keyDataDir),
	}

	return settings, nil
}

// Set updates one setting by key after validating the value.
func (s *SettingsService) Set(key, value string) error {
	switch key {
	case keySourceKind:
		kind := domain.SourceKind(value)
		if !kind.IsValid() {
			return fmt.Errorf("invalid source kind %q: %w", value, domain.ErrInvalidInput)
		}
		return s.configStore.Set(key, kind.String())

	case keySourceTimeout:
		secs, err := strconv.Atoi(value)
		if err != nil || secs <= 0 {
			return fmt.Errorf("%s must be a positive integer: %w", key, domain.ErrInvalidInput)
		}
		return s.configStore.Set(key, int64(secs))

	case keySourceRate:
		rate, err := strconv.ParseFloat(value, 64)
		if err != nil || rate <= 0 {
			return fmt.Errorf("%s must be a positive number: %w", key, domain.ErrInvalidInput)
		}
		return s.configStore.Set(key, rate)

	case keySourceURL, keySourceAPIKey, keySourceTable, keySourceFile, keyCatalogPath, keyDataDir:
		if value == "" {
			return s.configStore.Unset(key)
		}
		return s.configStore.Set(key, value)

	default:
		return fmt.Errorf("unknown setting %q: %w", key, domain.ErrInvalidInput)
	}
}

// SetAPIKey stores the admin service API key.
func (s *SettingsService) SetAPIKey(key string) error {
	if key == "" {
		return domain.ErrInvalidInput
	}
	return s.configStore.Set(keySourceAPIKey, key)
}

// Keys returns the supported setting keys.
func (s *SettingsService) Keys() []string {
	return []string{
		keySourceKind,
		keySourceURL,
		keySourceAPIKey,
		keySourceTable,
		keySourceTimeout,
		keySourceRate,
		keySourceFile,
		keyCatalogPath,
		keyDataDir,
	}
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

func (s *SettingsService) getString(key, def string) string {
	if v := s.configStore.GetString(key); v != "" {
		return v
	}
	return def
}

func (s *SettingsService) getFloat(key string, def float64) float64 {
	if v := s.configStore.GetFloat(key); v > 0 {
		return v
	}
	return def
}

func (s *SettingsService) getTimeout(def time.Duration) time.Duration {
	if secs := s.configStore.GetInt(keySourceTimeout); secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return def
}
