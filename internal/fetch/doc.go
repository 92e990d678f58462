// Package fetch implements the concurrent source fan-out.
//
// Every configured source is queried at the same time, each under its own
// timeout. A failed or timed-out source contributes zero records and a
// warning; it never blocks or invalidates the other sources. The engine
// only runs once all sources have settled.
package fetch
