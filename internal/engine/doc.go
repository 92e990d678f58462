// Package engine ties normalization, comparison, and ranking into one run.
//
// The engine is synchronous and stateless: given the settled results of
// all source queries it produces a Report and nothing else. All per-source
// failures are already isolated upstream; the only failure modes here are
// misconfiguration (unknown currency) and the distinguished no-results
// outcome.
package engine
