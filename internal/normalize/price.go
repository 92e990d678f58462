package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// $-prefixed token, e.g. "US$12.50" or "$ 3.20".
	dollarRe = regexp.MustCompile(`\$\s*([0-9.]+)`)

	// First bare numeric token, e.g. "18.50" out of "¥18.50/件".
	numberRe = regexp.MustCompile(`[0-9.]+`)
)

// ParsePrice extracts a numeric amount from a raw price string.
//
// Thousands separators are stripped first. A $-prefixed token always wins
// and marks the amount as already quoted in dollars, even when the source's
// native currency differs (marketplaces mix a USD range with a local stall
// price in one string). Otherwise the first numeric token is taken in the
// source's native currency. Ranges like "12.50-18.00" yield the lower
// bound: matching stops at the first token.
//
// Returns (nil, false) when no parseable token exists.
func ParsePrice(raw string) (amount *float64, dollar bool) {
	s := strings.ReplaceAll(raw, ",", "")

	if m := dollarRe.FindStringSubmatch(s); m != nil {
		if f, err := strconv.ParseFloat(m[1], 64); err == nil {
			return &f, true
		}
	}

	if m := numberRe.FindString(s); m != "" {
		if f, err := strconv.ParseFloat(m, 64); err == nil {
			return &f, false
		}
	}

	return nil, false
}
