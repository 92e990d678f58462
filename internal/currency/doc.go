// Package currency converts monetary amounts into the reference currency
// using a fixed, configured rate table.
//
// Rates are configuration, never fetched: the comparison is only meaningful
// if every amount is converted deterministically with the same rates for
// the whole run. An unknown currency code is a configuration error, not a
// recoverable condition.
package currency
