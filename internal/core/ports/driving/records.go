package driving

import (
	"context"

	"github.com/mdsolution/vitrine/internal/core/domain"
)

// RecordService manages service records in the local store.
type RecordService interface {
	// List returns records matching the filter, sorted by display order.
	List(ctx context.Context, filter domain.RecordFilter) ([]domain.ServiceRecord, error)

	// Save inserts or updates a record and returns its ID.
	Save(ctx context.Context, record domain.ServiceRecord) (string, error)

	// Delete removes a record by ID.
	Delete(ctx context.Context, id string) error
}

// SeedService writes fallback entries into the record store.
type SeedService interface {
	// SeedDefaults saves every fallback entry whose (category, name)
	// is not already stored. Existing records are never modified.
	SeedDefaults(ctx context.Context) (*domain.SeedReport, error)
}
