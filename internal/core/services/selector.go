package services

import (
	"math"
	"sort"

	"github.com/mdsolution/vitrine/internal/core/domain"
)

// Select narrows records to those a surface accepts, ordered by
// display order ascending. Ties keep source order. A non-finite display
// order sorts as 0. Single-entity
// surfaces keep only the first record after ordering.
func Select(records []domain.ServiceRecord, surface domain.Surface) []domain.ServiceRecord {
	selected := make([]domain.ServiceRecord, 0, len(records))
	for i := range records {
		if surface.Accepts(&records[i]) {
			selected = append(selected, records[i])
		}
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return orderKey(selected[i]) < orderKey(selected[j])
	})

	if surface.Single && len(selected) > 1 {
		selected = selected[:1]
	}
	return selected
}

func orderKey(r domain.ServiceRecord) float64 {
	if math.IsNaN(r.DisplayOrder) || math.IsInf(r.DisplayOrder, 0) {
		return 0
	}
	return r.DisplayOrder
}
