package driven

import "github.com/mdsolution/vitrine/internal/core/domain"

// CatalogProvider supplies display surfaces and their fallback catalogs.
// Catalogs are immutable after construction and safe for concurrent use.
type CatalogProvider interface {
	// Surfaces returns every surface in display order.
	Surfaces() []domain.Surface

	// Surface returns one surface by name.
	// Returns domain.ErrUnknownSurface if it does not exist.
	Surface(name string) (domain.Surface, error)

	// Catalog returns a surface's fallback entries in their fixed order.
	// The returned slice must not be modified.
	// Returns domain.ErrUnknownSurface if it does not exist.
	Catalog(name string) ([]domain.Descriptor, error)
}
