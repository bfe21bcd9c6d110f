package services

import (
	"context"
	"sync"

	"github.com/mdsolution/vitrine/internal/core/domain"
	"github.com/mdsolution/vitrine/internal/core/ports/driven"
)

// stubCatalog is a fixed CatalogProvider for tests.
type stubCatalog struct {
	surfaces []domain.Surface
	catalogs map[string][]domain.Descriptor
}

var _ driven.CatalogProvider = (*stubCatalog)(nil)

func (c *stubCatalog) Surfaces() []domain.Surface {
	return c.surfaces
}

func (c *stubCatalog) Surface(name string) (domain.Surface, error) {
	for _, s := range c.surfaces {
		if s.Name == name {
			return s, nil
		}
	}
	return domain.Surface{}, domain.ErrUnknownSurface
}

func (c *stubCatalog) Catalog(name string) ([]domain.Descriptor, error) {
	catalog, ok := c.catalogs[name]
	if !ok {
		return nil, domain.ErrUnknownSurface
	}
	return catalog, nil
}

// stubSource returns canned records or an error and counts calls.
type stubSource struct {
	mu      sync.Mutex
	records []domain.ServiceRecord
	err     error
	calls   int
}

var _ driven.RecordSource = (*stubSource)(nil)

func (s *stubSource) Fetch(_ context.Context) ([]domain.ServiceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	out := make([]domain.ServiceRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *stubSource) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// gatedSource blocks each Fetch until release is closed or ctx ends.
// It ignores cancellation when ignoreCtx is set, to model a source that
// answers late.
type gatedSource struct {
	records   []domain.ServiceRecord
	started   chan struct{}
	release   chan struct{}
	ignoreCtx bool
	once      sync.Once
}

func newGatedSource(records []domain.ServiceRecord, ignoreCtx bool) *gatedSource {
	return &gatedSource{
		records:   records,
		started:   make(chan struct{}),
		release:   make(chan struct{}),
		ignoreCtx: ignoreCtx,
	}
}

func (s *gatedSource) Fetch(ctx context.Context) ([]domain.ServiceRecord, error) {
	s.once.Do(func() { close(s.started) })
	if s.ignoreCtx {
		<-s.release
		return s.records, nil
	}
	select {
	case <-s.release:
		return s.records, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func text(s string) domain.Text {
	return domain.SomeText(s)
}

func descriptor(id, name string) domain.Descriptor {
	return domain.Descriptor{
		ID:          id,
		Name:        name,
		Subtitle:    name + " subtitle",
		Description: name + " description",
		Price:       "R$ " + id,
		ExtraInfo:   name + " extra",
		CTAText:     "Contratar " + name,
		BadgeText:   name + " badge",
		Features:    []string{name + " f1", name + " f2"},
		Active:      true,
	}
}

func pricingSurface() domain.Surface {
	return domain.Surface{
		Name:         "pricing",
		Title:        "Planos de Marketing",
		Category:     domain.CategoryMarketing,
		Page:         "home",
		CategoryOnly: true,
		MatchByName:  true,
	}
}

func consultancySurface() domain.Surface {
	return domain.Surface{
		Name:         "consultancy",
		Title:        "Consultoria",
		Category:     domain.CategoryConsultancy,
		Page:         "consultancy",
		CategoryOnly: true,
		Single:       true,
	}
}

func pricingCatalog() []domain.Descriptor {
	return []domain.Descriptor{
		descriptor("1", "Plano Essencial"),
		descriptor("2", "Plano Profissional"),
		descriptor("3", "Plano Premium"),
	}
}

func newStubCatalog() *stubCatalog {
	return &stubCatalog{
		surfaces: []domain.Surface{pricingSurface(), consultancySurface()},
		catalogs: map[string][]domain.Descriptor{
			"pricing":     pricingCatalog(),
			"consultancy": {descriptor("c1", "Consultoria de Vendas")},
		},
	}
}
