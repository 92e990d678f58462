package normalize

import (
	"fmt"

	"github.com/jleung/sourcing-radar/internal/currency"
	"github.com/jleung/sourcing-radar/internal/model"
)

// Normalizer converts raw items from a single source into Products. One
// normalizer is built per source, carrying that source's identity and
// declared native currency.
type Normalizer struct {
	source     string
	sourceName string
	native     string
	rates      currency.Rates
}

// New creates a Normalizer for one source. The native currency must have a
// configured conversion rate; anything else is a misconfiguration that has
// to surface before any record is processed.
func New(sourceKey, sourceName, native string, rates currency.Rates) (*Normalizer, error) {
	if !rates.Known(native) {
		return nil, fmt.Errorf("source %s: no conversion rate for native currency %q", sourceKey, native)
	}
	return &Normalizer{
		source:     sourceKey,
		sourceName: sourceName,
		native:     native,
		rates:      rates,
	}, nil
}

// Normalize converts one raw item into a Product. It is a pure function of
// the item: no field is ever rejected, absent or unparseable values degrade
// to sentinels or nil amounts. The only error path is a failed currency
// conversion, which New already rules out for well-formed configuration.
func (n *Normalizer) Normalize(item model.RawItem) (model.Product, error) {
	priceText := resolveString(item, priceAliases)
	amount, dollar := ParsePrice(priceText)

	cur := n.native
	if dollar {
		cur = n.rates.Reference()
	}

	var normalized *float64
	if amount != nil {
		v, err := n.rates.Convert(*amount, cur)
		if err != nil {
			return model.Product{}, fmt.Errorf("source %s: %w", n.source, err)
		}
		normalized = &v
	}

	return model.Product{
		Source:          n.source,
		SourceName:      n.sourceName,
		Name:            resolveString(item, nameAliases),
		PriceText:       priceText,
		PriceAmount:     amount,
		PriceCurrency:   cur,
		PriceNormalized: normalized,
		MOQ:             resolveDisplay(item, moqAliases),
		Supplier:        resolveDisplay(item, supplierAliases),
		Location:        resolveDisplay(item, locationAliases),
		Verified:        resolveBool(item, verifiedAliases),
		FeedbackPercent: clampFeedback(resolveFloat(item, feedbackAliases)),
		URL:             resolveString(item, urlAliases),
	}, nil
}

// clampFeedback bounds a feedback value into [0,100]. Sources occasionally
// report ratios above 100 after promotions; values below zero are noise.
func clampFeedback(v *float64) *float64 {
	if v == nil {
		return nil
	}
	f := *v
	if f < 0 {
		f = 0
	}
	if f > 100 {
		f = 100
	}
	return &f
}
