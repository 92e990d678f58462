package normalize

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jleung/sourcing-radar/internal/model"
)

// Per-field alias lists, in priority order. The first alias present in the
// raw item with a usable value wins. Oddities like "supplierNa" are real
// key names emitted by the marketplace actors, not typos.
var (
	nameAliases     = []string{"productName", "title", "name"}
	priceAliases    = []string{"price", "priceText", "priceRange"}
	moqAliases      = []string{"moq", "minOrder", "minOrderQuantity"}
	supplierAliases = []string{"supplierNa", "supplierName", "seller", "storeName"}
	locationAliases = []string{"supplierLocation", "location", "city", "province"}
	urlAliases      = []string{"productUrl", "url", "detailUrl"}
	verifiedAliases = []string{"verified", "isVerified", "audited", "goldSupplier"}
	feedbackAliases = []string{"feedbackPercent", "positiveFeedback", "feedbackRate"}
)

// resolveString returns the first non-empty string value among the aliases,
// or "" if none is present. Numeric values are accepted and formatted,
// since sources are inconsistent about quoting.
func resolveString(item model.RawItem, aliases []string) string {
	for _, key := range aliases {
		v, ok := item[key]
		if !ok || v == nil {
			continue
		}
		if s := asString(v); s != "" {
			return s
		}
	}
	return ""
}

// resolveDisplay is resolveString with the Missing sentinel as the default.
func resolveDisplay(item model.RawItem, aliases []string) string {
	if s := resolveString(item, aliases); s != "" {
		return s
	}
	return model.Missing
}

// resolveBool returns true if any alias carries a truthy value: boolean
// true, a positive number, or one of the usual affirmative strings.
func resolveBool(item model.RawItem, aliases []string) bool {
	for _, key := range aliases {
		v, ok := item[key]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case bool:
			if t {
				return true
			}
		case float64:
			if t > 0 {
				return true
			}
		case int:
			if t > 0 {
				return true
			}
		case string:
			switch strings.ToLower(strings.TrimSpace(t)) {
			case "true", "yes", "y", "1":
				return true
			}
		}
	}
	return false
}

// resolveFloat returns the first alias value parseable as a number, or nil.
// String values may carry a trailing "%" (e.g. "97.5%").
func resolveFloat(item model.RawItem, aliases []string) *float64 {
	for _, key := range aliases {
		v, ok := item[key]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case float64:
			return &t
		case int:
			f := float64(t)
			return &f
		case string:
			s := strings.TrimSuffix(strings.TrimSpace(t), "%")
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return &f
			}
		}
	}
	return nil
}

// asString renders a raw scalar as display text.
func asString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64, int, int64:
		return fmt.Sprintf("%v", t)
	default:
		return ""
	}
}
