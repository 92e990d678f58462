package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jleung/sourcing-radar/internal/model"
)

// csvHeader is the column layout of the CSV export, one row per product in
// comparison order.
var csvHeader = []string{
	"source", "name", "price", "price_usd", "moq",
	"supplier", "location", "verified", "feedback_percent", "url",
}

// WriteCSV writes the comparison as CSV.
func WriteCSV(w io.Writer, r *model.Report) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, p := range r.Products {
		row := []string{
			p.SourceName,
			p.Name,
			p.PriceText,
			formatFloat(p.PriceNormalized),
			p.MOQ,
			p.Supplier,
			p.Location,
			strconv.FormatBool(p.Verified),
			formatFloat(p.FeedbackPercent),
			p.URL,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportCSV writes the comparison to comparison-<keyword>.csv in dir and
// returns the file path.
func ExportCSV(dir string, r *model.Report) (string, error) {
	path := filepath.Join(dir, "comparison-"+slug(r.Keyword)+".csv")

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	if err := WriteCSV(f, r); err != nil {
		return "", err
	}
	return path, nil
}

// formatFloat renders an optional number, empty when absent.
func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}
