// Package normalize implements the Record Normalizer component.
//
// The normalizer:
//   - Resolves source-specific field names through per-field alias lists
//   - Parses price strings into a numeric amount plus currency tag
//   - Substitutes sentinel defaults for absent display fields
//   - Converts parsed amounts into the reference currency
//
// Normalization is pure and total: a malformed field never rejects a
// record, it degrades to a sentinel or a nil amount.
package normalize
