package driving

import (
	"context"

	"github.com/mdsolution/vitrine/internal/core/domain"
)

// ContentService resolves the offerings each display surface renders.
type ContentService interface {
	// Surfaces returns every known surface in display order.
	Surfaces() []domain.Surface

	// Fallback returns a surface's fallback catalog as a resolution,
	// without touching the record source.
	Fallback(name string) (*domain.Resolution, error)

	// Resolve fetches records once and resolves one surface.
	// Record source failures are absorbed into a fallback resolution;
	// the only error is domain.ErrUnknownSurface.
	Resolve(ctx context.Context, name string) (*domain.Resolution, error)

	// ResolveAll resolves every surface, each with its own fetch.
	ResolveAll(ctx context.Context) ([]domain.Resolution, error)
}
