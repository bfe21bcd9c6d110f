package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/mdsolution/vitrine/internal/core/domain"
	"github.com/mdsolution/vitrine/internal/core/ports/driven"
)

// Ensure RecordStore implements the interface.
var _ driven.RecordStore = (*RecordStore)(nil)

// RecordStore is an in-memory implementation of driven.RecordStore.
// Records keep their insertion order for equal display orders.
type RecordStore struct {
	mu      sync.RWMutex
	order   []string
	records map[string]domain.ServiceRecord
}

// NewRecordStore creates a new in-memory record store.
func NewRecordStore() *RecordStore {
	return &RecordStore{
		records: make(map[string]domain.ServiceRecord),
	}
}

// Fetch returns all records ordered by display order.
func (s *RecordStore) Fetch(_ context.Context) ([]domain.ServiceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.ServiceRecord, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.records[id])
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].DisplayOrder < result[j].DisplayOrder
	})
	return result, nil
}

// Save stores or updates a record, assigning an ID if it has none.
func (s *RecordStore) Save(_ context.Context, record domain.ServiceRecord) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := record.ID.Get()
	if !ok {
		id = uuid.New().String()
		record.ID = domain.SomeText(id)
	}
	if _, exists := s.records[id]; !exists {
		s.order = append(s.order, id)
	}
	s.records[id] = record
	return id, nil
}

// Delete removes a record.
func (s *RecordStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.records, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// FindByName returns the first record with the given category and name.
func (s *RecordStore) FindByName(_ context.Context, category domain.Category, name string) (*domain.ServiceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.order {
		r := s.records[id]
		if r.Category == category && r.Name.String() == name {
			return &r, nil
		}
	}
	return nil, domain.ErrNotFound
}
