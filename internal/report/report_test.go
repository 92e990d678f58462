package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/jleung/sourcing-radar/internal/model"
)

func fp(v float64) *float64 { return &v }

func testReport() *model.Report {
	return &model.Report{
		RunID:       uuid.MustParse("00000000-0000-0000-0000-000000000001"),
		Keyword:     "bluetooth speaker",
		GeneratedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Products: []model.Product{
			{
				Source: "yiwugo", SourceName: "Yiwugo", Name: "Mini Speaker",
				PriceText: "¥18.50", PriceAmount: fp(18.50), PriceCurrency: "CNY",
				PriceNormalized: fp(2.59), MOQ: "2 pieces", Supplier: "Yiwu Audio",
				Location: "Zhejiang", URL: "https://example.com/a",
			},
			{
				Source: "dhgate", SourceName: "DHgate", Name: "BT Speaker Pro",
				PriceText: "US$12.50-18.00", PriceAmount: fp(12.50), PriceCurrency: "USD",
				PriceNormalized: fp(12.50), MOQ: model.Missing, Supplier: "Shenzhen Sound",
				Location: model.Missing, Verified: true, FeedbackPercent: fp(96.5),
			},
			{
				Source: "dhgate", SourceName: "DHgate", Name: "Mystery Speaker",
				PriceText: "negotiable", MOQ: model.Missing,
				Supplier: model.Missing, Location: model.Missing,
			},
		},
		Suppliers: []model.SupplierProfile{
			{
				Supplier: "Shenzhen Sound", Source: "dhgate", SourceName: "DHgate",
				Products: []string{"BT Speaker Pro"}, Prices: []float64{12.50},
				Verified: true, FeedbackPercent: fp(96.5), Location: model.Missing,
				Score: 40, Breakdown: model.ScoreBreakdown{Price: 5, Variety: 6, Trust: 29},
			},
		},
	}
}

func TestWriteComparisonLimit(t *testing.T) {
	var buf bytes.Buffer
	WriteComparison(&buf, testReport(), 2)
	out := buf.String()

	if !strings.Contains(out, "Mini Speaker") {
		t.Error("output missing first product")
	}
	if strings.Contains(out, "Mystery Speaker") {
		t.Error("output contains product beyond the limit")
	}
	if !strings.Contains(out, "... and 1 more products") {
		t.Error("output missing truncation note")
	}
}

func TestWriteComparisonNoLimit(t *testing.T) {
	var buf bytes.Buffer
	WriteComparison(&buf, testReport(), 0)
	out := buf.String()

	if !strings.Contains(out, "Mystery Speaker") {
		t.Error("limit 0 should print all products")
	}
	if strings.Contains(out, "more products") {
		t.Error("unexpected truncation note with limit 0")
	}
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	WriteSummary(&buf, testReport())
	out := buf.String()

	if !strings.Contains(out, "Yiwugo: 1 products | Price range: $2.59 – $2.59 | Avg: $2.59") {
		t.Errorf("missing Yiwugo summary line:\n%s", out)
	}
	// DHgate has one priced and one unpriced product; only the priced one
	// counts toward the stats.
	if !strings.Contains(out, "DHgate: 2 products | Price range: $12.50 – $12.50 | Avg: $12.50") {
		t.Errorf("missing DHgate summary line:\n%s", out)
	}
}

func TestWriteRanking(t *testing.T) {
	var buf bytes.Buffer
	WriteRanking(&buf, testReport())
	out := buf.String()

	if !strings.Contains(out, "Shenzhen Sound") {
		t.Error("ranking missing supplier")
	}
	if !strings.Contains(out, "40 (5/6/29)") {
		t.Errorf("ranking missing score breakdown:\n%s", out)
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, testReport()); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}

	if len(rows) != 4 {
		t.Fatalf("got %d rows, want header + 3 products", len(rows))
	}
	if rows[0][0] != "source" {
		t.Errorf("header[0] = %q, want source", rows[0][0])
	}
	if rows[1][1] != "Mini Speaker" {
		t.Errorf("row 1 name = %q, want Mini Speaker", rows[1][1])
	}
	if rows[1][3] != "2.59" {
		t.Errorf("row 1 price_usd = %q, want 2.59", rows[1][3])
	}
	// Unpriced product exports an empty normalized price, not a zero.
	if rows[3][3] != "" {
		t.Errorf("row 3 price_usd = %q, want empty", rows[3][3])
	}
}

func TestExportJSONRoundTrip(t *testing.T) {
	dir := t.TempDir()
	rpt := testReport()

	path, err := ExportJSON(dir, rpt)
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}
	if filepath.Base(path) != "comparison-bluetooth-speaker.json" {
		t.Errorf("file name = %q, want keyword slug", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}

	var decoded model.Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal export: %v", err)
	}
	if decoded.Keyword != rpt.Keyword {
		t.Errorf("Keyword = %q, want %q", decoded.Keyword, rpt.Keyword)
	}
	if len(decoded.Products) != 3 {
		t.Errorf("got %d products, want 3", len(decoded.Products))
	}
}

func TestExportCSVFileName(t *testing.T) {
	dir := t.TempDir()

	path, err := ExportCSV(dir, testReport())
	if err != nil {
		t.Fatalf("ExportCSV failed: %v", err)
	}
	if filepath.Base(path) != "comparison-bluetooth-speaker.csv" {
		t.Errorf("file name = %q, want keyword slug", filepath.Base(path))
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input string
		max   int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"a very long product name", 10, "a very lo…"},
		{"中文产品名称超过限制了", 6, "中文产品名…"},
	}

	for _, tt := range tests {
		if got := truncate(tt.input, tt.max); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.want)
		}
	}
}
