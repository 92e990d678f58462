package rank

import (
	"math"
	"sort"

	"github.com/jleung/sourcing-radar/internal/model"
)

// Scoring weights. Sub-scores are clamped to their range independently;
// the total is the rounded sum, so it lives in [0,100].
const (
	priceMax = 40.0

	varietyPerProduct = 6.0
	varietyMax        = 30.0

	verifiedPoints = 15.0
	feedbackPoints = 15.0
	locationPoints = 5.0
	trustMax       = 30.0

	// fallbackMedian keeps the price formula defined when the run has no
	// priced products at all. It never shows in output: every profile then
	// has zero priced products and floors at 0 anyway.
	fallbackMedian = 1.0
)

// Score fills in the sub-scores and total for every profile. runPrices is
// the run-wide set of normalized prices across all priced products (not
// just grouped ones); the price sub-score is relative to its median, since
// absolute price levels mean nothing across product categories.
func Score(profiles []model.SupplierProfile, runPrices []float64) {
	med := median(runPrices)
	if med == 0 {
		med = fallbackMedian
	}

	for i := range profiles {
		price := priceScore(&profiles[i], med)
		variety := varietyScore(&profiles[i])
		trust := trustScore(&profiles[i])

		profiles[i].Score = int(math.Round(price + variety + trust))
		profiles[i].Breakdown = model.ScoreBreakdown{
			Price:   int(math.Round(price)),
			Variety: int(math.Round(variety)),
			Trust:   int(math.Round(trust)),
		}
	}
}

// priceScore rewards a low average price relative to the run median: at the
// median the score is half the maximum, at twice the median or above it is
// zero.
func priceScore(p *model.SupplierProfile, med float64) float64 {
	if len(p.Prices) == 0 {
		return 0
	}

	var sum float64
	for _, v := range p.Prices {
		sum += v
	}
	avg := sum / float64(len(p.Prices))

	return clamp(priceMax*(1-avg/(2*med)), 0, priceMax)
}

// varietyScore counts distinct product names, 6 points each, capped.
func varietyScore(p *model.SupplierProfile) float64 {
	seen := make(map[string]struct{}, len(p.Products))
	for _, name := range p.Products {
		seen[name] = struct{}{}
	}
	return clamp(varietyPerProduct*float64(len(seen)), 0, varietyMax)
}

// trustScore combines verified membership, positive feedback, and a
// location signal, clamped to the trust range.
func trustScore(p *model.SupplierProfile) float64 {
	var score float64
	if p.Verified {
		score += verifiedPoints
	}
	if p.FeedbackPercent != nil && *p.FeedbackPercent > 0 {
		score += feedbackPoints * (*p.FeedbackPercent / 100)
	}
	if p.Location != "" && p.Location != model.Missing {
		score += locationPoints
	}
	return clamp(score, 0, trustMax)
}

// median returns the median of values, or 0 for an empty slice. The input
// is not modified.
func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
