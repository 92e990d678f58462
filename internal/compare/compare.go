package compare

import (
	"sort"

	"github.com/jleung/sourcing-radar/internal/model"
)

// ByPrice returns the products sorted ascending by normalized price, nil
// prices last. The input slice is not modified. Ordering is total: the
// effective key is the pair (price is nil, price), compared lexicographically.
func ByPrice(products []model.Product) []model.Product {
	sorted := make([]model.Product, len(products))
	copy(sorted, products)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].PriceNormalized, sorted[j].PriceNormalized
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})

	return sorted
}
