// Package apify provides a minimal client for the Apify platform API.
//
// The marketplace scrapers run as hosted Apify actors. The client covers
// the one call this toolkit needs: run an actor synchronously and collect
// its dataset items. Retrieval mechanics (pagination, anti-bot handling,
// rate limiting) live inside the actors and are opaque here.
package apify
