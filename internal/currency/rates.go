package currency

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Rates holds the fixed conversion table for one run. The reference
// currency always converts with rate 1, whether or not it appears in the
// configured table.
type Rates struct {
	reference string
	table     map[string]float64
}

// NewRates builds a rate table. Codes are upper-cased; the reference
// currency is forced to rate 1. A zero or negative configured rate is
// rejected.
func NewRates(reference string, table map[string]float64) (Rates, error) {
	reference = strings.ToUpper(strings.TrimSpace(reference))
	if reference == "" {
		return Rates{}, errors.New("reference currency is required")
	}

	t := make(map[string]float64, len(table)+1)
	for code, rate := range table {
		code = strings.ToUpper(strings.TrimSpace(code))
		if rate <= 0 {
			return Rates{}, fmt.Errorf("rate for %s must be > 0, got %g", code, rate)
		}
		t[code] = rate
	}
	t[reference] = 1

	return Rates{reference: reference, table: t}, nil
}

// Reference returns the reference currency code.
func (r Rates) Reference() string {
	return r.reference
}

// Known reports whether a conversion rate exists for the given code.
func (r Rates) Known(code string) bool {
	_, ok := r.table[strings.ToUpper(strings.TrimSpace(code))]
	return ok
}

// Convert returns the amount expressed in the reference currency, rounded
// to 2 decimal places. An unknown code means the engine is misconfigured
// and the caller must abort rather than produce a wrong comparison.
func (r Rates) Convert(amount float64, code string) (float64, error) {
	rate, ok := r.table[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return 0, fmt.Errorf("no conversion rate for currency %q", code)
	}
	return math.Round(amount*rate*100) / 100, nil
}
