package rank

import "github.com/jleung/sourcing-radar/internal/model"

// groupKey identifies one profile. Grouping is by exact match on both
// parts; no cross-source supplier identity resolution is attempted.
type groupKey struct {
	supplier string
	source   string
}

// builder accumulates one profile while records are still being seen.
// Profiles are only finalized after the full input has been consumed, so a
// partially built aggregate is never observable.
type builder struct {
	sourceName string
	location   string
	products   []string
	prices     []float64
	verified   bool
	feedback   *float64
}

func (b *builder) add(p model.Product) {
	b.products = append(b.products, p.Name)
	if p.PriceNormalized != nil {
		b.prices = append(b.prices, *p.PriceNormalized)
	}
	if p.Verified {
		b.verified = true
	}
	if p.FeedbackPercent != nil {
		b.feedback = p.FeedbackPercent
	}
	if b.location == model.Missing && p.Location != model.Missing {
		b.location = p.Location
	}
}

// Group builds one unscored SupplierProfile per (supplier, source) pair,
// in first-seen order of the pair. Products with an empty or sentinel
// supplier name are excluded: an unidentified supplier cannot be ranked,
// though its products still appear in the comparison view.
func Group(products []model.Product) []model.SupplierProfile {
	builders := make(map[groupKey]*builder)
	var order []groupKey

	for _, p := range products {
		if p.Supplier == "" || p.Supplier == model.Missing {
			continue
		}

		key := groupKey{supplier: p.Supplier, source: p.Source}
		b, ok := builders[key]
		if !ok {
			b = &builder{sourceName: p.SourceName, location: model.Missing}
			builders[key] = b
			order = append(order, key)
		}
		b.add(p)
	}

	profiles := make([]model.SupplierProfile, 0, len(order))
	for _, key := range order {
		b := builders[key]
		profiles = append(profiles, model.SupplierProfile{
			Supplier:        key.supplier,
			Source:          key.source,
			SourceName:      b.sourceName,
			Location:        b.location,
			Products:        b.products,
			Prices:          b.prices,
			Verified:        b.verified,
			FeedbackPercent: b.feedback,
		})
	}
	return profiles
}
