// Package report renders and exports a finished comparison run.
//
// Outputs:
//   - Comparison table (stdout, fixed-width, truncated columns)
//   - Per-source summary (item counts, price range, average)
//   - Supplier ranking table with sub-score breakdown
//   - CSV export (one row per product)
//   - JSON export (the full report structure)
//
// Everything here is a thin layer over model.Report; no recomputation.
package report
