package domain

import (
	"fmt"
	"time"
)

const unknownDescription = "Unknown"

// SourceKind selects the record source backend.
type SourceKind string

// Available record source kinds.
const (
	// SourceKindHTTP reads from the admin content service REST endpoint.
	SourceKindHTTP SourceKind = "http"

	// SourceKindSQLite reads from the local services_data table.
	SourceKindSQLite SourceKind = "sqlite"

	// SourceKindFile reads from a JSON export of the services table.
	SourceKindFile SourceKind = "file"

	// SourceKindNone disables remote records; every surface renders its fallback.
	SourceKindNone SourceKind = "none"
)

// IsValid returns true if the source kind is recognised.
func (k SourceKind) IsValid() bool {
	switch k {
	case SourceKindHTTP, SourceKindSQLite, SourceKindFile, SourceKindNone:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k SourceKind) String() string {
	return string(k)
}

// Description returns a human-readable description of the kind.
func (k SourceKind) Description() string {
	switch k {
	case SourceKindHTTP:
		return "Admin service (HTTP)"
	case SourceKindSQLite:
		return "Local store (SQLite)"
	case SourceKindFile:
		return "JSON export file"
	case SourceKindNone:
		return "None (fallback only)"
	default:
		return unknownDescription
	}
}

// AllSourceKinds returns all available source kinds.
func AllSourceKinds() []SourceKind {
	return []SourceKind{
		SourceKindHTTP,
		SourceKindSQLite,
		SourceKindFile,
		SourceKindNone,
	}
}

// SourceSettings configures the record source.
type SourceSettings struct {
	// Kind selects the backend.
	Kind SourceKind

	// AdminURL is the admin service base URL (http kind).
	AdminURL string

	// APIKey authenticates against the admin service (http kind).
	APIKey string

	// Table is the services table name (http kind).
	Table string

	// Timeout bounds a single fetch.
	Timeout time.Duration

	// RatePerSecond is the sustained request rate towards the admin service.
	RatePerSecond float64

	// RecordsFile is the JSON export path (file kind).
	RecordsFile string
}

// Settings holds all application settings.
type Settings struct {
	// Source configures where service records come from.
	Source SourceSettings

	// CatalogPath is an optional fallback catalog override file.
	CatalogPath string

	// DataDir holds the local SQLite store. Empty means ~/.vitrine/data.
	DataDir string
}

// DefaultSettings returns settings with sensible defaults.
// The source defaults to the local store so a fresh install renders
// fallback content without any network configuration.
func DefaultSettings() Settings {
	return Settings{
		Source: SourceSettings{
			Kind:          SourceKindSQLite,
			Table:         "services_data",
			Timeout:       8 * time.Second,
			RatePerSecond: 5,
		},
	}
}

// Validate checks the settings needed by the selected source kind.
func (s Settings) Validate() error {
	if !s.Source.Kind.IsValid() {
		return fmt.Errorf("source kind %q: %w", s.Source.Kind, ErrUnsupportedType)
	}
	if s.Source.Timeout <= 0 {
		return fmt.Errorf("source timeout must be positive: %w", ErrInvalidInput)
	}
	switch s.Source.Kind {
	case SourceKindHTTP:
		if s.Source.AdminURL == "" {
			return fmt.Errorf("source.admin_url: %w", ErrSourceNotConfigured)
		}
		if s.Source.APIKey == "" {
			return fmt.Errorf("source.api_key: %w", ErrSourceNotConfigured)
		}
	case SourceKindFile:
		if s.Source.RecordsFile == "" {
			return fmt.Errorf("source.records_file: %w", ErrSourceNotConfigured)
		}
	case SourceKindSQLite, SourceKindNone:
	}
	return nil
}
