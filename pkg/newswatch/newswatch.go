// Package newswatch provides a public API for embedding newswatch as a
// library.
//
// Example usage:
//
//	crawler := newswatch.NewCrawler(
//	    newswatch.WithSources("detik"),
//	    newswatch.WithStartDate("2025-01-01"),
//	    newswatch.WithConcurrency(8),
//	)
//
//	articles, err := crawler.Articles(ctx, "banjir", "gempa")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for article := range articles {
//	    fmt.Println(article.Title, article.PublishDate)
//	}
package newswatch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/danuarta/newswatch/internal/config"
	"github.com/danuarta/newswatch/internal/crawler"
	"github.com/danuarta/newswatch/internal/sources"
	"github.com/danuarta/newswatch/internal/types"
)

// Article is the record type delivered by a crawl.
type Article = types.Article

// Option configures a Crawler.
type Option func(*config.Config)

// WithSources selects which registered source profiles to crawl.
func WithSources(names ...string) Option {
	return func(c *config.Config) { c.Engine.Sources = names }
}

// WithStartDate sets the lower publish-date bound (YYYY-MM-DD). A crawl
// stops paginating once it sees an article older than this.
func WithStartDate(date string) Option {
	return func(c *config.Config) { c.Engine.StartDate = date }
}

// WithConcurrency caps simultaneously in-flight requests per source.
func WithConcurrency(n int) Option {
	return func(c *config.Config) { c.Engine.Concurrency = n }
}

// WithMaxPages bounds pagination per keyword and source (0 = unlimited).
func WithMaxPages(n int) Option {
	return func(c *config.Config) { c.Engine.MaxPages = n }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *config.Config) { c.Engine.RequestTimeout = d }
}

// WithUserAgent sets a custom User-Agent.
func WithUserAgent(ua string) Option {
	return func(c *config.Config) { c.Engine.UserAgents = []string{ua} }
}

// WithVerbose enables debug-level logging.
func WithVerbose() Option {
	return func(c *config.Config) { c.Logging.Level = "debug" }
}

// Crawler is the high-level API for using newswatch as a library.
type Crawler struct {
	cfg    *config.Config
	runner *crawler.Runner
	logger *slog.Logger
}

// NewCrawler creates a Crawler with the given options.
func NewCrawler(opts ...Option) *Crawler {
	cfg := config.DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	level := slog.LevelInfo
	if cfg.Logging.Level == "debug" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	return &Crawler{cfg: cfg, logger: logger}
}

// Sources returns the names of all registered source profiles.
func Sources() []string {
	return sources.Names()
}

// Articles starts crawling the configured sources for the given keywords and
// returns the result channel. The channel carries records in arrival order
// and is closed when every crawl has finished. Cancelling the context stops
// the crawl early; the channel still closes.
func (c *Crawler) Articles(ctx context.Context, keywords ...string) (<-chan Article, error) {
	if len(keywords) == 0 {
		return nil, fmt.Errorf("at least one keyword is required")
	}
	c.cfg.Engine.Keywords = keywords

	if err := config.Validate(c.cfg); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	runner, err := crawler.NewRunner(c.cfg, c.logger)
	if err != nil {
		return nil, err
	}
	c.runner = runner

	go runner.Run(ctx)
	return runner.Results(), nil
}

// Collect runs a crawl to completion and returns all records at once. For
// large crawls prefer Articles and stream.
func (c *Crawler) Collect(ctx context.Context, keywords ...string) ([]Article, error) {
	results, err := c.Articles(ctx, keywords...)
	if err != nil {
		return nil, err
	}

	var articles []Article
	for article := range results {
		articles = append(articles, article)
	}
	return articles, nil
}

// Stats returns crawl statistics, or nil before the first crawl.
func (c *Crawler) Stats() map[string]any {
	if c.runner == nil {
		return nil
	}
	return c.runner.Stats().Snapshot()
}
