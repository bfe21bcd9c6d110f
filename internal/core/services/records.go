package services

import (
	"context"
	"sort"

	"github.com/mdsolution/vitrine/internal/core/domain"
	"github.com/mdsolution/vitrine/internal/core/ports/driven"
	"github.com/mdsolution/vitrine/internal/core/ports/driving"
)

// Ensure RecordService implements the interface.
var _ driving.RecordService = (*RecordService)(nil)

// RecordService manages service records in a writable store.
type RecordService struct {
	store driven.RecordStore
}

// NewRecordService creates a new record service.
func NewRecordService(store driven.RecordStore) *RecordService {
	return &RecordService{store: store}
}

// List returns records matching the filter, sorted by display order.
func (s *RecordService) List(ctx context.Context, filter domain.RecordFilter) ([]domain.ServiceRecord, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	records, err := s.store.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.ServiceRecord, 0, len(records))
	for i := range records {
		if filter.Matches(&records[i]) {
			out = append(out, records[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DisplayOrder < out[j].DisplayOrder
	})
	return out, nil
}

// Save inserts or updates a record and returns its ID.
func (s *RecordService) Save(ctx context.Context, record domain.ServiceRecord) (string, error) {
	if s.store == nil {
		return "", domain.ErrNotImplemented
	}
	if !record.Category.IsValid() || !record.Name.IsSet() {
		return "", domain.ErrInvalidInput
	}
	return s.store.Save(ctx, record)
}

// Delete removes a record by ID.
func (s *RecordService) Delete(ctx context.Context, id string) error {
	if s.store == nil {
		return domain.ErrNotImplemented
	}
	if id == "" {
		return domain.ErrInvalidInput
	}
	return s.store.Delete(ctx, id)
}
