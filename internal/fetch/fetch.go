package fetch

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jleung/sourcing-radar/internal/model"
)

// ActorRunner runs one scraper actor synchronously and returns its items.
// *apify.Client implements it.
type ActorRunner interface {
	RunActorSync(ctx context.Context, actorID string, input map[string]any, limit int) ([]model.RawItem, error)
}

// Source describes one marketplace to query.
type Source struct {
	Key      string         // Short identifier (e.g. "dhgate")
	Name     string         // Display name (e.g. "DHgate")
	ActorID  string         // Apify actor ID (e.g. "jungle_intertwining/dhgate-scraper")
	Currency string         // Native currency of the source's price strings
	Options  map[string]any // Extra actor input merged over the standard fields
}

// Config holds fan-out settings.
type Config struct {
	Timeout   time.Duration // Per-source timeout (default: 120s)
	MaxPages  int           // Result pages each actor may fetch (default: 2)
	ItemLimit int           // Max items taken per source, 0 = no cap (default: 50)
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Timeout:   120 * time.Second,
		MaxPages:  2,
		ItemLimit: 50,
	}
}

// Result is the settled outcome of one source query. A source that failed
// or timed out has Err set and zero items; it is never half-populated.
type Result struct {
	Source  Source
	Items   []model.RawItem
	Err     error
	Elapsed time.Duration
}

// Fetcher queries all sources concurrently.
type Fetcher struct {
	cfg    Config
	runner ActorRunner
	logger *slog.Logger
}

// New creates a Fetcher.
func New(cfg Config, runner ActorRunner, logger *slog.Logger) *Fetcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Fetcher{
		cfg:    cfg,
		runner: runner,
		logger: logger,
	}
}

// FetchAll issues all source queries concurrently and returns once every
// one has settled, success or failure. Results come back in source order;
// within each result, item order is as the actor produced it. Per-source
// failures are recorded on the Result, never propagated.
func (f *Fetcher) FetchAll(ctx context.Context, keyword string, sources []Source) []Result {
	results := make([]Result, len(sources))

	var g errgroup.Group
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			results[i] = f.fetchOne(ctx, keyword, src)
			return nil
		})
	}
	g.Wait()

	return results
}

// fetchOne queries a single source under its own timeout.
func (f *Fetcher) fetchOne(ctx context.Context, keyword string, src Source) Result {
	ctx, cancel := context.WithTimeout(ctx, f.cfg.Timeout)
	defer cancel()

	start := time.Now()

	items, err := f.runner.RunActorSync(ctx, src.ActorID, f.actorInput(keyword, src), f.cfg.ItemLimit)
	elapsed := time.Since(start)

	if err != nil {
		f.logger.Warn("source failed",
			"source", src.Key,
			"err", err,
			"duration", elapsed,
		)
		return Result{Source: src, Err: err, Elapsed: elapsed}
	}

	f.logger.Info("source fetched",
		"source", src.Key,
		"items", len(items),
		"duration", elapsed,
	)

	return Result{Source: src, Items: items, Elapsed: elapsed}
}

// actorInput builds the actor run input: the standard search fields plus
// any source-specific options on top.
func (f *Fetcher) actorInput(keyword string, src Source) map[string]any {
	input := map[string]any{
		"searchKeywords": []string{keyword},
		"maxPages":       f.cfg.MaxPages,
	}
	for k, v := range src.Options {
		input[k] = v
	}
	return input
}
