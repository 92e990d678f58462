package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jleung/sourcing-radar/internal/apify"
	"github.com/jleung/sourcing-radar/internal/config"
	"github.com/jleung/sourcing-radar/internal/currency"
	"github.com/jleung/sourcing-radar/internal/engine"
	"github.com/jleung/sourcing-radar/internal/fetch"
	"github.com/jleung/sourcing-radar/internal/report"
	"github.com/jleung/sourcing-radar/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/compare.yaml", "path to config file")
	pages := flag.Int("pages", 0, "override result pages per source")
	limit := flag.Int("limit", 0, "override printed comparison rows")
	outDir := flag.String("out", "", "override export directory")
	noExport := flag.Bool("no-export", false, "skip CSV/JSON export")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, `usage: compare [flags] "<keyword>"`)
		flag.PrintDefaults()
		os.Exit(1)
	}
	keyword := strings.Join(flag.Args(), " ")

	// Set up structured logging
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	logger.Info("starting comparison",
		"version", version.Version,
		"keyword", keyword,
		"config", *configPath,
	)

	// Load configuration
	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *pages > 0 {
		cfg.Fetch.MaxPages = *pages
	}
	if *limit > 0 {
		cfg.Output.Limit = *limit
	}
	if *outDir != "" {
		cfg.Output.Dir = *outDir
	}

	rates, err := currency.NewRates(cfg.Currency.Reference, cfg.Currency.Rates)
	if err != nil {
		logger.Error("invalid currency configuration", "error", err)
		os.Exit(1)
	}

	sources := make([]fetch.Source, 0, len(cfg.Sources))
	for _, src := range cfg.EnabledSources() {
		sources = append(sources, fetch.Source{
			Key:      src.Key,
			Name:     src.Name,
			ActorID:  src.ActorID,
			Currency: src.Currency,
			Options:  src.Options,
		})
	}

	eng, err := engine.New(rates, sources, logger)
	if err != nil {
		logger.Error("invalid engine configuration", "error", err)
		os.Exit(1)
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	client := apify.NewClient(
		cfg.API.Token,
		apify.WithBaseURL(cfg.API.BaseURL),
		apify.WithTimeout(cfg.API.Timeout),
		apify.WithRetries(cfg.API.MaxRetries, time.Second),
		apify.WithLogger(logger),
	)

	fetcher := fetch.New(fetch.Config{
		Timeout:   cfg.Fetch.Timeout,
		MaxPages:  cfg.Fetch.MaxPages,
		ItemLimit: cfg.Fetch.ItemLimit,
	}, client, logger)

	logger.Info("querying sources", "sources", len(sources), "pages", cfg.Fetch.MaxPages)
	results := fetcher.FetchAll(ctx, keyword, sources)

	rpt, err := eng.Run(keyword, results)
	if err != nil {
		if errors.Is(err, engine.ErrNoResults) {
			fmt.Println("No results found across any source.")
			return
		}
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}

	report.WriteComparison(os.Stdout, rpt, cfg.Output.Limit)
	report.WriteSummary(os.Stdout, rpt)
	report.WriteRanking(os.Stdout, rpt)

	if *noExport {
		return
	}

	jsonPath, err := report.ExportJSON(cfg.Output.Dir, rpt)
	if err != nil {
		logger.Error("json export failed", "error", err)
		os.Exit(1)
	}
	csvPath, err := report.ExportCSV(cfg.Output.Dir, rpt)
	if err != nil {
		logger.Error("csv export failed", "error", err)
		os.Exit(1)
	}

	fmt.Printf("\nJSON saved to %s\nCSV saved to %s\n", jsonPath, csvPath)
}
