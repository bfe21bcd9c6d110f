package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/mdsolution/vitrine/internal/core/domain"
	"github.com/mdsolution/vitrine/internal/core/ports/driven"
	"github.com/mdsolution/vitrine/internal/core/ports/driving"
	"github.com/mdsolution/vitrine/internal/logger"
)

// Ensure SeedService implements the interface.
var _ driving.SeedService = (*SeedService)(nil)

// SeedService copies fallback entries into a record store so they can
// be edited as remote records.
type SeedService struct {
	catalogs driven.CatalogProvider
	store    driven.RecordStore
}

// NewSeedService creates a new seed service.
func NewSeedService(catalogs driven.CatalogProvider, store driven.RecordStore) *SeedService {
	return &SeedService{
		catalogs: catalogs,
		store:    store,
	}
}

// SeedDefaults saves every fallback entry not already stored under the
// same category and name. Stored records are never overwritten.
func (s *SeedService) SeedDefaults(ctx context.Context) (*domain.SeedReport, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}

	report := &domain.SeedReport{}
	for _, surface := range s.catalogs.Surfaces() {
		catalog, err := s.catalogs.Catalog(surface.Name)
		if err != nil {
			return report, err
		}

		for i := range catalog {
			entry := &catalog[i]
			label := surface.Name + "/" + entry.Name

			_, err := s.store.FindByName(ctx, surface.Category, entry.Name)
			if err == nil {
				report.Skipped = append(report.Skipped, label)
				continue
			}
			if !errors.Is(err, domain.ErrNotFound) {
				return report, fmt.Errorf("looking up %s: %w", label, err)
			}

			if _, err := s.store.Save(ctx, seedRecord(surface, entry, i)); err != nil {
				return report, fmt.Errorf("saving %s: %w", label, err)
			}
			logger.Debug("Seeded %s", label)
			report.Created = append(report.Created, label)
		}
	}
	return report, nil
}

func seedRecord(surface domain.Surface, entry *domain.Descriptor, position int) domain.ServiceRecord {
	return domain.ServiceRecord{
		Name:          domain.SomeText(entry.Name),
		Subtitle:      domain.SomeText(entry.Subtitle),
		Description:   domain.SomeText(entry.Description),
		Price:         domain.SomeText(entry.Price),
		ExtraInfo:     domain.SomeText(entry.ExtraInfo),
		CTAText:       domain.SomeText(entry.CTAText),
		BadgeText:     domain.SomeText(entry.BadgeText),
		Features:      domain.NormalizeFeatures(entry.Features),
		Category:      surface.Category,
		Page:          domain.SomeText(surface.Page),
		IsActive:      domain.FlagTrue,
		IsHighlighted: domain.FlagOf(entry.Highlighted),
		DisplayOrder:  float64(position),
	}
}
