package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jleung/sourcing-radar/internal/compare"
	"github.com/jleung/sourcing-radar/internal/currency"
	"github.com/jleung/sourcing-radar/internal/fetch"
	"github.com/jleung/sourcing-radar/internal/model"
	"github.com/jleung/sourcing-radar/internal/normalize"
	"github.com/jleung/sourcing-radar/internal/rank"
)

// ErrNoResults reports that no source returned any usable record. It is a
// valid outcome of a run, not a fault; callers match it with errors.Is.
var ErrNoResults = errors.New("no results from any source")

// Engine runs the normalization and aggregation pipeline.
type Engine struct {
	normalizers map[string]*normalize.Normalizer
	logger      *slog.Logger
}

// New creates an Engine for the given sources. Construction fails if any
// source's native currency has no conversion rate: a misconfigured rate
// table must abort before any comparison is produced.
func New(rates currency.Rates, sources []fetch.Source, logger *slog.Logger) (*Engine, error) {
	if logger == nil {
		logger = slog.Default()
	}

	normalizers := make(map[string]*normalize.Normalizer, len(sources))
	for _, src := range sources {
		n, err := normalize.New(src.Key, src.Name, src.Currency, rates)
		if err != nil {
			return nil, err
		}
		normalizers[src.Key] = n
	}

	return &Engine{
		normalizers: normalizers,
		logger:      logger,
	}, nil
}

// Run normalizes every fetched item and builds the two derived views: the
// price-sorted comparison and the score-ranked supplier profiles. Returns
// ErrNoResults when the settled inputs contain no records at all.
func (e *Engine) Run(keyword string, results []fetch.Result) (*model.Report, error) {
	var products []model.Product

	for _, res := range results {
		n, ok := e.normalizers[res.Source.Key]
		if !ok {
			return nil, fmt.Errorf("no normalizer for source %q", res.Source.Key)
		}

		for _, item := range res.Items {
			p, err := n.Normalize(item)
			if err != nil {
				return nil, err
			}
			products = append(products, p)
		}
	}

	if len(products) == 0 {
		return nil, ErrNoResults
	}

	var prices []float64
	for _, p := range products {
		if p.PriceNormalized != nil {
			prices = append(prices, *p.PriceNormalized)
		}
	}

	profiles := rank.Group(products)
	rank.Score(profiles, prices)

	e.logger.Debug("run complete",
		"products", len(products),
		"priced", len(prices),
		"suppliers", len(profiles),
	)

	return &model.Report{
		RunID:       uuid.New(),
		Keyword:     keyword,
		GeneratedAt: time.Now().UTC(),
		Products:    compare.ByPrice(products),
		Suppliers:   rank.ByScore(profiles),
	}, nil
}
