package mcp

import (
	"context"
	"fmt"

	"github.com/mdsolution/vitrine/internal/core/domain"
)

// mockContentService is a mock implementation of driving.ContentService.
type mockContentService struct {
	surfaces    []domain.Surface
	resolutions map[string]*domain.Resolution
	fallbacks   map[string]*domain.Resolution
	err         error
}

func newMockContentService() *mockContentService {
	return &mockContentService{
		surfaces: []domain.Surface{
			{Name: "pricing", Title: "Planos", Category: domain.CategoryMarketing, Page: "home", CategoryOnly: true},
			{Name: "consultancy", Title: "Consultoria", Category: domain.CategoryConsultancy, Page: "home", Single: true},
		},
		resolutions: map[string]*domain.Resolution{
			"pricing": {
				Surface:  "pricing",
				Origin:   domain.OriginRemote,
				Selected: 1,
				Descriptors: []domain.Descriptor{
					{ID: "1", Name: "Plano Essencial", Price: "R$ 750", Active: true},
				},
			},
		},
		fallbacks: map[string]*domain.Resolution{
			"pricing": {
				Surface: "pricing",
				Origin:  domain.OriginFallback,
				Descriptors: []domain.Descriptor{
					{ID: "1", Name: "Plano Essencial", Price: "R$ 990", Active: true},
				},
			},
		},
	}
}

func (m *mockContentService) Surfaces() []domain.Surface {
	return m.surfaces
}

func (m *mockContentService) Fallback(name string) (*domain.Resolution, error) {
	if res, ok := m.fallbacks[name]; ok {
		return res, nil
	}
	return nil, fmt.Errorf("%q: %w", name, domain.ErrUnknownSurface)
}

func (m *mockContentService) Resolve(_ context.Context, name string) (*domain.Resolution, error) {
	if m.err != nil {
		return nil, m.err
	}
	if res, ok := m.resolutions[name]; ok {
		return res, nil
	}
	return nil, fmt.Errorf("%q: %w", name, domain.ErrUnknownSurface)
}

func (m *mockContentService) ResolveAll(ctx context.Context) ([]domain.Resolution, error) {
	var out []domain.Resolution
	for _, s := range m.surfaces {
		res, err := m.Resolve(ctx, s.Name)
		if err != nil {
			return nil, err
		}
		out = append(out, *res)
	}
	return out, nil
}

// mockRecordService is a mock implementation of driving.RecordService.
type mockRecordService struct {
	records    []domain.ServiceRecord
	lastFilter domain.RecordFilter
	err        error
}

func (m *mockRecordService) List(_ context.Context, filter domain.RecordFilter) ([]domain.ServiceRecord, error) {
	m.lastFilter = filter
	return m.records, m.err
}

func (m *mockRecordService) Save(_ context.Context, _ domain.ServiceRecord) (string, error) {
	return "", m.err
}

func (m *mockRecordService) Delete(_ context.Context, _ string) error {
	return m.err
}
