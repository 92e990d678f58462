// Package rank implements the Supplier Grouper, Scorer, and Ranking
// Presenter components.
//
// Products are grouped by (supplier, source) into profiles — the same
// supplier name on two sources is two profiles. Each profile gets three
// bounded sub-scores:
//   - price (0-40): average normalized price relative to the run-wide median
//   - variety (0-30): 6 per distinct product, capped at 5 products
//   - trust (0-30): verified membership, feedback ratio, location presence
//
// The total is the rounded sum, in [0,100]. Ranking sorts by score
// descending with a stable tie-break: equal scores keep the order in which
// the profiles were first seen during grouping.
package rank
