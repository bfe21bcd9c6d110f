package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mdsolution/vitrine/internal/core/domain"
	"github.com/mdsolution/vitrine/internal/core/ports/driven"
	"github.com/mdsolution/vitrine/internal/core/ports/driving"
	"github.com/mdsolution/vitrine/internal/logger"
)

// Ensure ContentService implements the interface.
var _ driving.ContentService = (*ContentService)(nil)

// ContentService resolves display surfaces against a record source.
// It keeps no resolved state: every call fetches and resolves from scratch.
type ContentService struct {
	catalogs driven.CatalogProvider
	source   driven.RecordSource
	timeout  time.Duration
	now      func() time.Time
}

// NewContentService creates a new content service.
// source may be nil, in which case every surface resolves to its fallback.
func NewContentService(catalogs driven.CatalogProvider, source driven.RecordSource) *ContentService {
	return &ContentService{
		catalogs: catalogs,
		source:   source,
		now:      time.Now,
	}
}

// SetFetchTimeout bounds each record fetch. Zero means no extra bound.
func (s *ContentService) SetFetchTimeout(d time.Duration) {
	s.timeout = d
}

// Surfaces returns every known surface in display order.
func (s *ContentService) Surfaces() []domain.Surface {
	return s.catalogs.Surfaces()
}

// Fallback returns a surface's fallback catalog verbatim.
func (s *ContentService) Fallback(name string) (*domain.Resolution, error) {
	catalog, err := s.catalogs.Catalog(name)
	if err != nil {
		return nil, err
	}
	return s.fallback(name, catalog, nil), nil
}

// Resolve fetches records once and resolves one surface.
func (s *ContentService) Resolve(ctx context.Context, name string) (*domain.Resolution, error) {
	surface, err := s.catalogs.Surface(name)
	if err != nil {
		return nil, err
	}
	catalog, err := s.catalogs.Catalog(name)
	if err != nil {
		return nil, err
	}

	logger.Section("Resolve " + name)

	records, fetchErr := s.fetch(ctx)
	if fetchErr != nil {
		logger.Warn("Record source failed for %s, using fallback: %v", name, fetchErr)
		return s.fallback(name, catalog, fetchErr), nil
	}
	logger.Debug("Fetched %d records", len(records))

	selected := Select(records, surface)
	if len(selected) == 0 {
		logger.Info("No records qualify for %s (category=%s page=%s), using fallback",
			name, surface.Category, surface.Page)
		return s.fallback(name, catalog, nil), nil
	}

	logger.Info("Resolved %s from %d remote records", name, len(selected))
	return &domain.Resolution{
		Surface:     name,
		Origin:      domain.OriginRemote,
		Descriptors: Resolve(selected, catalog, surface.MatchByName),
		Selected:    len(selected),
		ResolvedAt:  s.now(),
	}, nil
}

// ResolveAll resolves every surface concurrently. Each surface performs
// its own fetch; fetches are not shared between surfaces.
func (s *ContentService) ResolveAll(ctx context.Context) ([]domain.Resolution, error) {
	surfaces := s.catalogs.Surfaces()
	results := make([]domain.Resolution, len(surfaces))

	g, gctx := errgroup.WithContext(ctx)
	for i, surface := range surfaces {
		g.Go(func() error {
			res, err := s.Resolve(gctx, surface.Name)
			if err != nil {
				return fmt.Errorf("resolving %s: %w", surface.Name, err)
			}
			results[i] = *res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *ContentService) fetch(ctx context.Context) ([]domain.ServiceRecord, error) {
	if s.source == nil {
		return nil, nil
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	return s.source.Fetch(ctx)
}

func (s *ContentService) fallback(name string, catalog []domain.Descriptor, fetchErr error) *domain.Resolution {
	return &domain.Resolution{
		Surface:     name,
		Origin:      domain.OriginFallback,
		Descriptors: domain.CloneDescriptors(catalog),
		FetchErr:    fetchErr,
		ResolvedAt:  s.now(),
	}
}
