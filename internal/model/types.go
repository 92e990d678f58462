package model

import (
	"time"

	"github.com/google/uuid"
)

// Missing is the display sentinel substituted for absent supplier, location,
// and MOQ fields. It is distinct from a nil numeric value: display fields
// always render, numeric fields can be genuinely unknown.
const Missing = "—"

// RawItem is one untyped record as returned by a data source. Key names and
// value types vary per source and are not trusted.
type RawItem map[string]any

// -----------------------------------------------------------------------------
// Normalized Types
// -----------------------------------------------------------------------------

// Product is the canonical form of one raw listing. Built once by the
// normalizer and never mutated afterwards.
type Product struct {
	Source          string   `json:"source"`           // Source key (e.g. "dhgate")
	SourceName      string   `json:"source_name"`      // Source display name (e.g. "DHgate")
	Name            string   `json:"name"`             // Listing title; "" if absent
	PriceText       string   `json:"price"`            // Original price string, verbatim; may be ""
	PriceAmount     *float64 `json:"price_amount"`     // Parsed amount in PriceCurrency; nil if unparseable
	PriceCurrency   string   `json:"price_currency"`   // Currency of PriceAmount (source native, or USD when $-quoted)
	PriceNormalized *float64 `json:"price_usd"`        // Amount in the reference currency; nil iff PriceAmount is nil
	MOQ             string   `json:"moq"`              // Minimum order quantity; Missing if absent
	Supplier        string   `json:"supplier"`         // Supplier display name; Missing if absent
	Location        string   `json:"location"`         // Supplier location; Missing if absent
	Verified        bool     `json:"verified"`         // Source signals audited/tiered membership
	FeedbackPercent *float64 `json:"feedback_percent"` // Positive feedback in [0,100]; nil if absent
	URL             string   `json:"url"`              // Listing URL; "" if absent
}

// Priced reports whether a normalized price is available.
func (p *Product) Priced() bool {
	return p.PriceNormalized != nil
}

// -----------------------------------------------------------------------------
// Aggregate Types
// -----------------------------------------------------------------------------

// ScoreBreakdown holds the rounded sub-scores behind a supplier's total.
type ScoreBreakdown struct {
	Price   int `json:"price"`   // 0-40, relative to the run-wide median price
	Variety int `json:"variety"` // 0-30, 6 per distinct product
	Trust   int `json:"trust"`   // 0-30, verified + feedback + location signals
}

// SupplierProfile aggregates all products sharing one (supplier, source)
// pair. The same supplier name on two sources is two profiles; no
// cross-source identity resolution is attempted.
type SupplierProfile struct {
	Supplier        string         `json:"supplier"`         // Supplier display name (never the Missing sentinel)
	Source          string         `json:"source"`           // Source key
	SourceName      string         `json:"source_name"`      // Source display name
	Location        string         `json:"location"`         // First non-sentinel location seen; Missing if none
	Products        []string       `json:"products"`         // Associated product names, in input order
	Prices          []float64      `json:"prices_usd"`       // Non-nil normalized prices of associated products
	Verified        bool           `json:"verified"`         // True if any associated product is verified
	FeedbackPercent *float64       `json:"feedback_percent"` // Most recently seen non-nil feedback value
	Score           int            `json:"score"`            // Composite score in [0,100]; set by the scorer
	Breakdown       ScoreBreakdown `json:"breakdown"`        // Rounded sub-scores; set by the scorer
}

// Report is the full output of one comparison run: the price-sorted
// comparison and the score-ranked supplier profiles, plus run identity.
// It is plain data, ready for tabular or JSON serialization.
type Report struct {
	RunID       uuid.UUID         `json:"run_id"`
	Keyword     string            `json:"keyword"`
	GeneratedAt time.Time         `json:"generated_at"`
	Products    []Product         `json:"products"`
	Suppliers   []SupplierProfile `json:"suppliers"`
}
