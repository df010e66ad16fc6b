package crawler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/danuarta/newswatch/internal/config"
	"github.com/danuarta/newswatch/internal/fetcher"
	"github.com/danuarta/newswatch/internal/sources"
	"github.com/danuarta/newswatch/internal/types"
)

// Runner fans out one controller per (keyword x source) combination, all
// running concurrently and independently, and owns the shared result sink.
// A hung or failing crawl blocks only its own keyword/source lane.
type Runner struct {
	cfg       *config.Config
	profiles  []*sources.Profile
	fetchers  map[string]fetcher.Fetcher
	startDate time.Time
	results   chan types.Article
	stats     *Stats
	logger    *slog.Logger
}

// NewRunner resolves the configured sources and builds one gated fetcher
// per source. The per-source gate is shared by all of that source's
// controllers, so the concurrency cap holds across keywords too.
func NewRunner(cfg *config.Config, logger *slog.Logger) (*Runner, error) {
	startDate, err := cfg.Engine.StartDateBound()
	if err != nil {
		return nil, fmt.Errorf("parse start date: %w", err)
	}

	profiles := make([]*sources.Profile, 0, len(cfg.Engine.Sources))
	fetchers := make(map[string]fetcher.Fetcher, len(cfg.Engine.Sources))
	for _, name := range cfg.Engine.Sources {
		profile, err := sources.Get(name)
		if err != nil {
			return nil, fmt.Errorf("source %q: %w", name, err)
		}
		f, err := fetcher.NewHTTPFetcher(cfg, cfg.Engine.Concurrency, logger.With("source", name))
		if err != nil {
			return nil, fmt.Errorf("fetcher for %q: %w", name, err)
		}
		profiles = append(profiles, profile)
		fetchers[name] = f
	}

	return &Runner{
		cfg:       cfg,
		profiles:  profiles,
		fetchers:  fetchers,
		startDate: startDate,
		results:   make(chan types.Article, cfg.Engine.SinkBuffer),
		stats:     &Stats{},
		logger:    logger.With("component", "runner"),
	}, nil
}

// Results returns the sink channel. It carries records from all concurrent
// crawls in arrival order (not publish-date order) and is closed once every
// controller has finished.
func (r *Runner) Results() <-chan types.Article {
	return r.results
}

// Stats returns the aggregated crawl statistics.
func (r *Runner) Stats() *Stats {
	return r.stats
}

// Run starts every controller and blocks until all have finished, then
// closes the sink and the fetchers. The caller drains Results concurrently.
func (r *Runner) Run(ctx context.Context) {
	r.stats.StartTime = time.Now()
	r.logger.Info("crawl starting",
		"keywords", r.cfg.Engine.Keywords,
		"sources", r.cfg.Engine.Sources,
		"concurrency", r.cfg.Engine.Concurrency,
		"start_date", r.cfg.Engine.StartDate,
	)

	var wg sync.WaitGroup
	for _, profile := range r.profiles {
		for _, keyword := range r.cfg.Engine.Keywords {
			ctrl := NewController(
				profile,
				keyword,
				r.fetchers[profile.Name],
				r.results,
				r.startDate,
				r.cfg.Engine.MaxPages,
				r.stats,
				r.logger,
			)
			wg.Add(1)
			go func() {
				defer wg.Done()
				ctrl.Run(ctx)
			}()
		}
	}

	wg.Wait()
	close(r.results)

	for name, f := range r.fetchers {
		if err := f.Close(); err != nil {
			r.logger.Error("fetcher close error", "source", name, "error", err)
		}
	}

	r.logger.Info("crawl complete", "stats", r.stats.Snapshot())
}
