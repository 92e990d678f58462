// Package model defines shared data types used across the sourcing radar.
//
// Conventions:
//   - Monetary amounts: float64 in the source or reference currency, rounded to cents after conversion
//   - Optional numeric fields: *float64, nil when the source carried no usable value
//   - Absent display fields: the Missing sentinel ("—"), never nil
//   - Source keys: short lowercase identifiers from configuration (e.g. "yiwugo", "dhgate")
package model
