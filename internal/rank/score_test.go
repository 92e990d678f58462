package rank

import (
	"testing"

	"github.com/jleung/sourcing-radar/internal/model"
)

func TestScoreSubScoreBounds(t *testing.T) {
	profiles := []model.SupplierProfile{
		{Supplier: "free", Prices: []float64{0.0}, Location: model.Missing},
		{Supplier: "pricey", Prices: []float64{100, 200}, Location: model.Missing},
		{
			Supplier: "everything", Location: "Guangdong", Verified: true,
			FeedbackPercent: fp(100),
			Products:        []string{"a", "b", "c", "d", "e", "f", "g"},
			Prices:          []float64{0.5},
		},
	}
	Score(profiles, []float64{1, 2, 3, 4, 5})

	for _, p := range profiles {
		b := p.Breakdown
		if b.Price < 0 || b.Price > 40 {
			t.Errorf("%s: price sub-score %d out of [0,40]", p.Supplier, b.Price)
		}
		if b.Variety < 0 || b.Variety > 30 {
			t.Errorf("%s: variety sub-score %d out of [0,30]", p.Supplier, b.Variety)
		}
		if b.Trust < 0 || b.Trust > 30 {
			t.Errorf("%s: trust sub-score %d out of [0,30]", p.Supplier, b.Trust)
		}
		if p.Score < 0 || p.Score > 100 {
			t.Errorf("%s: total %d out of [0,100]", p.Supplier, p.Score)
		}
	}
}

func TestScorePriceRelativeToMedian(t *testing.T) {
	runPrices := []float64{2, 4, 6} // median 4

	tests := []struct {
		name   string
		prices []float64
		want   int
	}{
		{"at median scores half", []float64{4}, 20},
		{"at zero scores max", []float64{0}, 40},
		{"at twice median scores zero", []float64{8}, 0},
		{"above twice median clamps to zero", []float64{100}, 0},
		{"no priced products floors at zero", nil, 0},
		{"average of profile prices", []float64{2, 6}, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profiles := []model.SupplierProfile{{Supplier: "s", Prices: tt.prices, Location: model.Missing}}
			Score(profiles, runPrices)

			if got := profiles[0].Breakdown.Price; got != tt.want {
				t.Errorf("price sub-score = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScoreVarietyCap(t *testing.T) {
	tests := []struct {
		name     string
		products []string
		want     int
	}{
		{"one product", []string{"a"}, 6},
		{"four products", []string{"a", "b", "c", "d"}, 24},
		{"cap at five", []string{"a", "b", "c", "d", "e"}, 30},
		{"fifty products same as five", manyProducts(50), 30},
		{"duplicates count once", []string{"a", "a", "a"}, 6},
		{"none", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profiles := []model.SupplierProfile{{Supplier: "s", Products: tt.products, Location: model.Missing}}
			Score(profiles, []float64{1})

			if got := profiles[0].Breakdown.Variety; got != tt.want {
				t.Errorf("variety sub-score = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScoreTrust(t *testing.T) {
	tests := []struct {
		name    string
		profile model.SupplierProfile
		want    int
	}{
		{"nothing", model.SupplierProfile{Location: model.Missing}, 0},
		{"verified only", model.SupplierProfile{Verified: true, Location: model.Missing}, 15},
		{"feedback only", model.SupplierProfile{FeedbackPercent: fp(80), Location: model.Missing}, 12},
		{"zero feedback ignored", model.SupplierProfile{FeedbackPercent: fp(0), Location: model.Missing}, 0},
		{"location only", model.SupplierProfile{Location: "Guangdong"}, 5},
		{"empty location ignored", model.SupplierProfile{Location: ""}, 0},
		// Verified (15) + 0.8×15 (12) + location (5) = 32, clamped to 30.
		{"all signals clamp", model.SupplierProfile{Verified: true, FeedbackPercent: fp(80), Location: "Guangdong"}, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profiles := []model.SupplierProfile{tt.profile}
			Score(profiles, []float64{1})

			if got := profiles[0].Breakdown.Trust; got != tt.want {
				t.Errorf("trust sub-score = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScoreMedianOnlySupplier(t *testing.T) {
	// One product priced exactly at the run median, no trust signals:
	// 20 (price) + 6 (variety) + 0 (trust) = 26.
	profiles := []model.SupplierProfile{{
		Supplier: "s",
		Products: []string{"a"},
		Prices:   []float64{4},
		Location: model.Missing,
	}}
	Score(profiles, []float64{4})

	if profiles[0].Score != 26 {
		t.Errorf("Score = %d, want 26", profiles[0].Score)
	}
	want := model.ScoreBreakdown{Price: 20, Variety: 6, Trust: 0}
	if profiles[0].Breakdown != want {
		t.Errorf("Breakdown = %+v, want %+v", profiles[0].Breakdown, want)
	}
}

func TestScoreNoPricedProductsInRun(t *testing.T) {
	// No priced products anywhere: the formula stays defined and every
	// profile floors at 0 on the price sub-score.
	profiles := []model.SupplierProfile{{Supplier: "s", Products: []string{"a"}, Location: model.Missing}}
	Score(profiles, nil)

	if got := profiles[0].Breakdown.Price; got != 0 {
		t.Errorf("price sub-score = %d, want 0", got)
	}
	if profiles[0].Score != 6 {
		t.Errorf("Score = %d, want 6", profiles[0].Score)
	}
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"odd", []float64{3, 1, 2}, 2},
		{"even", []float64{1, 2, 3, 4}, 2.5},
		{"single", []float64{7}, 7},
		{"empty", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := median(tt.values); got != tt.want {
				t.Errorf("median(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}

func manyProducts(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = string(rune('a' + i%26)) + string(rune('0'+i/26))
	}
	return out
}
