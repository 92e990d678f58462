package rank

import (
	"sort"

	"github.com/jleung/sourcing-radar/internal/model"
)

// ByScore returns the profiles sorted descending by total score. The sort
// is stable, so equal-score profiles keep the relative order established
// when their keys were first seen during grouping. Given a fixed input
// sequence the ranking is fully deterministic.
func ByScore(profiles []model.SupplierProfile) []model.SupplierProfile {
	sorted := make([]model.SupplierProfile, len(profiles))
	copy(sorted, profiles)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	return sorted
}
