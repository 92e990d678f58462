package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jleung/sourcing-radar/internal/model"
)

// WriteComparison writes the price-sorted comparison table. limit caps the
// number of rows; 0 prints everything.
func WriteComparison(w io.Writer, r *model.Report, limit int) {
	fmt.Fprintf(w, "\nPrice Comparison: %q (%d products)\n\n", r.Keyword, len(r.Products))

	header := fmt.Sprintf("%-15s| %-42s| %-20s| %-14s| %-28s", "Source", "Product", "Price", "MOQ", "Supplier")
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, strings.Repeat("-", len(header)))

	rows := r.Products
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}

	for _, p := range rows {
		fmt.Fprintf(w, "%-15s| %-42s| %-20s| %-14s| %-28s\n",
			p.SourceName,
			truncate(p.Name, 41),
			truncate(p.PriceText, 19),
			truncate(p.MOQ, 13),
			truncate(p.Supplier, 27),
		)
	}

	if rest := len(r.Products) - len(rows); rest > 0 {
		fmt.Fprintf(w, "  ... and %d more products\n", rest)
	}
}

// WriteSummary writes per-source item counts and price statistics, in the
// order sources first appear in the comparison.
func WriteSummary(w io.Writer, r *model.Report) {
	fmt.Fprintf(w, "\nSummary by Source:\n\n")

	for _, name := range sourceOrder(r.Products) {
		var count int
		var prices []float64
		for _, p := range r.Products {
			if p.SourceName != name {
				continue
			}
			count++
			if p.PriceNormalized != nil {
				prices = append(prices, *p.PriceNormalized)
			}
		}

		if len(prices) == 0 {
			fmt.Fprintf(w, "  %s: %d products | no parseable prices\n", name, count)
			continue
		}

		lo, hi, sum := prices[0], prices[0], 0.0
		for _, v := range prices {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
			sum += v
		}

		fmt.Fprintf(w, "  %s: %d products | Price range: $%.2f – $%.2f | Avg: $%.2f\n",
			name, count, lo, hi, sum/float64(len(prices)))
	}
}

// WriteRanking writes the score-ranked supplier table with the sub-score
// breakdown.
func WriteRanking(w io.Writer, r *model.Report) {
	fmt.Fprintf(w, "\nSupplier Ranking (%d suppliers)\n\n", len(r.Suppliers))

	header := fmt.Sprintf("%-4s| %-28s| %-15s| %-9s| %-10s| %-22s", "#", "Supplier", "Source", "Products", "Avg Price", "Score (price/var/trust)")
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, strings.Repeat("-", len(header)))

	for i, s := range r.Suppliers {
		fmt.Fprintf(w, "%-4d| %-28s| %-15s| %-9d| %-10s| %3d (%d/%d/%d)\n",
			i+1,
			truncate(s.Supplier, 27),
			s.SourceName,
			len(s.Products),
			avgPrice(s.Prices),
			s.Score,
			s.Breakdown.Price,
			s.Breakdown.Variety,
			s.Breakdown.Trust,
		)
	}
}

// truncate shortens s to at most max runes, marking the cut with an
// ellipsis.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

// avgPrice formats the mean of the prices, or the Missing sentinel when
// there are none.
func avgPrice(prices []float64) string {
	if len(prices) == 0 {
		return model.Missing
	}
	var sum float64
	for _, v := range prices {
		sum += v
	}
	return fmt.Sprintf("$%.2f", sum/float64(len(prices)))
}

// sourceOrder returns distinct source display names in first-seen order.
func sourceOrder(products []model.Product) []string {
	seen := make(map[string]bool)
	var order []string
	for _, p := range products {
		if !seen[p.SourceName] {
			seen[p.SourceName] = true
			order = append(order, p.SourceName)
		}
	}
	return order
}
