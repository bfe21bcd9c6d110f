package driving

import "github.com/mdsolution/vitrine/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current settings, with defaults for missing keys.
	Get() (*domain.Settings, error)

	// Set updates one setting by key after validating the value.
	Set(key, value string) error

	// SetAPIKey stores the admin service API key.
	SetAPIKey(key string) error

	// Keys returns the supported setting keys.
	Keys() []string

	// GetDefaults returns default settings.
	GetDefaults() domain.Settings
}
