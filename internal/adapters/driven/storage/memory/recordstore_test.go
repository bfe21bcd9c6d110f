package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdsolution/vitrine/internal/core/domain"
)

func record(name string, category domain.Category, order float64) domain.ServiceRecord {
	return domain.ServiceRecord{
		Name:         domain.SomeText(name),
		Category:     category,
		DisplayOrder: order,
	}
}

func TestNewRecordStore(t *testing.T) {
	store := NewRecordStore()
	require.NotNil(t, store)

	records, err := store.Fetch(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestRecordStore_Save_AssignsID(t *testing.T) {
	store := NewRecordStore()
	ctx := context.Background()

	id, err := store.Save(ctx, record("Básico", domain.CategoryMarketing, 1))
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	records, err := store.Fetch(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, id, records[0].ID.String())
}

func TestRecordStore_Save_UpdatesExisting(t *testing.T) {
	store := NewRecordStore()
	ctx := context.Background()

	r := record("Básico", domain.CategoryMarketing, 1)
	r.ID = domain.SomeText("rec-1")
	_, err := store.Save(ctx, r)
	require.NoError(t, err)

	r.Price = domain.SomeText("R$ 900")
	id, err := store.Save(ctx, r)
	require.NoError(t, err)
	assert.Equal(t, "rec-1", id)

	records, _ := store.Fetch(ctx)
	require.Len(t, records, 1)
	assert.Equal(t, "R$ 900", records[0].Price.String())
}

func TestRecordStore_Fetch_OrderedByDisplayOrder(t *testing.T) {
	store := NewRecordStore()
	ctx := context.Background()

	_, _ = store.Save(ctx, record("c", domain.CategoryMarketing, 30))
	_, _ = store.Save(ctx, record("a", domain.CategoryMarketing, 10))
	_, _ = store.Save(ctx, record("b1", domain.CategoryMarketing, 20))
	_, _ = store.Save(ctx, record("b2", domain.CategoryMarketing, 20))

	records, err := store.Fetch(ctx)
	require.NoError(t, err)

	names := make([]string, len(records))
	for i := range records {
		names[i] = records[i].Name.String()
	}
	assert.Equal(t, []string{"a", "b1", "b2", "c"}, names)
}

func TestRecordStore_Delete(t *testing.T) {
	store := NewRecordStore()
	ctx := context.Background()

	id, _ := store.Save(ctx, record("a", domain.CategorySwot, 0))
	_, _ = store.Save(ctx, record("b", domain.CategorySwot, 0))

	require.NoError(t, store.Delete(ctx, id))
	records, _ := store.Fetch(ctx)
	require.Len(t, records, 1)
	assert.Equal(t, "b", records[0].Name.String())

	err := store.Delete(ctx, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordStore_FindByName(t *testing.T) {
	store := NewRecordStore()
	ctx := context.Background()

	_, _ = store.Save(ctx, record("Essencial", domain.CategoryMarketing, 0))
	_, _ = store.Save(ctx, record("Essencial", domain.CategorySwot, 0))

	got, err := store.FindByName(ctx, domain.CategorySwot, "Essencial")
	require.NoError(t, err)
	assert.Equal(t, domain.CategorySwot, got.Category)

	_, err = store.FindByName(ctx, domain.CategoryCombos, "Essencial")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordStore_Concurrency(t *testing.T) {
	store := NewRecordStore()
	ctx := context.Background()
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			_, _ = store.Save(ctx, record("r", domain.CategoryCombos, float64(n)))
		}(i)
		go func() {
			defer wg.Done()
			_, _ = store.Fetch(ctx)
		}()
	}
	wg.Wait()

	records, err := store.Fetch(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 20)
}
