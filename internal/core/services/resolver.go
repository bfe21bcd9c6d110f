package services

import (
	"strings"

	"github.com/mdsolution/vitrine/internal/core/domain"
)

// Resolve merges selected records with a fallback catalog.
//
// Record i defaults against catalog[i mod len(catalog)], or, when
// matchByName is set, against the first catalog entry whose name
// contains the record's normalised name. Every field falls back
// independently, so the output is complete whenever the catalog is.
//
// The catalog must not be empty; catalogs are validated at startup.
func Resolve(selected []domain.ServiceRecord, catalog []domain.Descriptor, matchByName bool) []domain.Descriptor {
	out := make([]domain.Descriptor, len(selected))
	for i := range selected {
		def := defaultFor(&selected[i], i, catalog, matchByName)
		out[i] = merge(&selected[i], def)
	}
	return out
}

// defaultFor picks the fallback entry a record defaults against.
func defaultFor(r *domain.ServiceRecord, i int, catalog []domain.Descriptor, matchByName bool) *domain.Descriptor {
	if matchByName {
		if name := r.NormalizedName(); name != "" {
			for j := range catalog {
				if strings.Contains(strings.ToLower(catalog[j].Name), name) {
					return &catalog[j]
				}
			}
		}
	}
	return &catalog[i%len(catalog)]
}

func merge(r *domain.ServiceRecord, def *domain.Descriptor) domain.Descriptor {
	return domain.Descriptor{
		ID:          r.ID.Or(def.ID),
		Name:        r.Name.Or(def.Name),
		Subtitle:    r.Subtitle.Or(def.Subtitle),
		Description: r.Description.Or(def.Description),
		Price:       r.Price.Or(def.Price),
		ExtraInfo:   r.ExtraInfo.Or(def.ExtraInfo),
		CTAText:     r.CTAText.Or(def.CTAText),
		BadgeText:   r.BadgeText.Or(def.BadgeText),
		Features:    r.Features.Or(def.Features),
		Active:      r.IsActive.Or(def.Active),
		Highlighted: r.IsHighlighted.Or(def.Highlighted),
	}
}
