// Package compare implements the Comparison Aggregator component.
//
// Products from all sources are merged into one sequence ordered ascending
// by normalized price. Products without a parseable price sort after every
// priced product. The sort is stable, so within-source order survives among
// equal prices and among the unpriced tail.
package compare
