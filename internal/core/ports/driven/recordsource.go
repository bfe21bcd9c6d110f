package driven

import (
	"context"

	"github.com/mdsolution/vitrine/internal/core/domain"
)

// RecordSource fetches the current list of service records.
//
// Implementations normalise every field at ingestion: blank text becomes
// absent and feature lists are passed through domain.NormalizeFeatures.
// A malformed field degrades to absent rather than failing the record.
//
// Any returned error is treated by callers exactly like an empty list.
type RecordSource interface {
	// Fetch returns all records, ordered by display order where the
	// backend supports it. The slice may be empty.
	Fetch(ctx context.Context) ([]domain.ServiceRecord, error)
}

// RecordStore is a writable RecordSource.
type RecordStore interface {
	RecordSource

	// Save inserts or updates a record. A record without an ID is
	// assigned one, which is returned.
	Save(ctx context.Context, record domain.ServiceRecord) (string, error)

	// Delete removes a record by ID.
	Delete(ctx context.Context, id string) error

	// FindByName returns the record with the given category and exact name.
	// Returns domain.ErrNotFound when none exists.
	FindByName(ctx context.Context, category domain.Category, name string) (*domain.ServiceRecord, error)
}

// RecordWatcher is implemented by sources that can signal changes.
type RecordWatcher interface {
	// Watch calls onChange after the underlying records change.
	// It blocks until ctx is cancelled.
	Watch(ctx context.Context, onChange func()) error
}
