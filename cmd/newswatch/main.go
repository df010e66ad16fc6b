package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/danuarta/newswatch/internal/config"
	"github.com/danuarta/newswatch/internal/crawler"
	"github.com/danuarta/newswatch/internal/export"
	"github.com/danuarta/newswatch/internal/observability"
	"github.com/danuarta/newswatch/internal/pipeline"
	"github.com/danuarta/newswatch/internal/sources"
)

var (
	cfgFile     string
	verbose     bool
	keywords    string
	sourceNames string
	startDate   string
	concurrent  int
	maxPages    int
	outputPath  string
	outputType  string
	timeout     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "newswatch",
		Short: "newswatch — keyword-driven news article crawler",
		Long: `newswatch crawls Indonesian news sites for articles matching your
keywords, extracting title, author, date, category and cleaned body text
into CSV, JSONL, XLSX, or MongoDB.

Crawls paginate each source's search endpoint per keyword, stop at a
configurable start-date bound, and bound in-flight requests per source.`,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(crawlCmd())
	rootCmd.AddCommand(sourcesCmd())
	rootCmd.AddCommand(configCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// crawlCmd creates the "crawl" subcommand.
func crawlCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crawl",
		Short: "Crawl the configured sources for the given keywords",
		RunE:  runCrawl,
	}

	cmd.Flags().StringVarP(&keywords, "keywords", "k", "", "comma-separated search keywords (required)")
	cmd.Flags().StringVarP(&sourceNames, "sources", "s", "", "comma-separated source names (default from config)")
	cmd.Flags().StringVar(&startDate, "start-date", "", "lower date bound YYYY-MM-DD; crawl stops at older articles")
	cmd.Flags().IntVarP(&concurrent, "concurrency", "n", 0, "max in-flight requests per source (default 12)")
	cmd.Flags().IntVar(&maxPages, "max-pages", 0, "max result pages per keyword/source (0 = unlimited)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output directory")
	cmd.Flags().StringVarP(&outputType, "format", "f", "", "output format: csv, jsonl, xlsx, mongodb (comma-separate for multiple)")
	cmd.Flags().StringVar(&timeout, "timeout", "", "per-request timeout, e.g. 30s")

	return cmd
}

// runCrawl executes the crawl command.
func runCrawl(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyCLIOverrides(cfg)

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	logger := setupLogger(&cfg.Logging)
	for _, name := range cfg.Engine.Sources {
		if _, err := sources.Get(name); err != nil {
			return fmt.Errorf("source %q: %w (available: %s)",
				name, err, strings.Join(sources.Names(), ", "))
		}
	}

	runner, err := crawler.NewRunner(cfg, logger)
	if err != nil {
		return fmt.Errorf("create runner: %w", err)
	}

	store, err := export.NewStore(&cfg.Storage, logger)
	if err != nil {
		return fmt.Errorf("create store: %w", err)
	}

	pipe := pipeline.New(logger)
	pipe.Use(&pipeline.TrimMiddleware{})
	pipe.Use(&pipeline.DefaultsMiddleware{})
	pipe.Use(&pipeline.RequiredFieldsMiddleware{})
	pipe.Use(pipeline.NewDedupMiddleware())

	if cfg.Metrics.Enabled {
		metrics := observability.NewMetrics(runner.Stats(), logger)
		if err := metrics.StartServer(cfg.Metrics.Port, cfg.Metrics.Path); err != nil {
			logger.Warn("failed to start metrics server", "error", err)
		}
	}

	// Graceful shutdown: a signal cancels future page fetches and
	// dispatches; in-flight requests finish or time out.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received signal, shutting down...", "signal", sig)
		cancel()
	}()

	start := time.Now()
	consumer := export.NewConsumer(store, pipe, cfg.Storage.BatchSize, logger)

	// If the drain fails (store write error), cancel the crawl so
	// producers blocked on the abandoned sink unwind instead of hanging
	// runner.Run forever.
	drained := make(chan error, 1)
	go func() {
		err := consumer.Drain(runner.Results())
		if err != nil {
			cancel()
		}
		drained <- err
	}()

	runner.Run(ctx)

	if err := <-drained; err != nil {
		return fmt.Errorf("export: %w", err)
	}

	elapsed := time.Since(start)
	stats := runner.Stats().Snapshot()

	logger.Info("crawl finished",
		"elapsed", elapsed,
		"pages", stats["pages_fetched"],
		"articles", stats["articles_emitted"],
		"dropped", stats["articles_dropped"],
	)

	fmt.Printf("\nCrawl complete in %s\n", elapsed.Round(time.Millisecond))
	fmt.Printf("   Pages:     %v fetched, %v failed\n", stats["pages_fetched"], stats["pages_failed"])
	fmt.Printf("   Articles:  %v emitted, %v dropped\n", stats["articles_emitted"], stats["articles_dropped"])
	fmt.Printf("   Stored:    %d\n", consumer.Stored())
	fmt.Printf("   Output:    %s (%s)\n", cfg.Storage.OutputPath, cfg.Storage.Type)

	return nil
}

// sourcesCmd creates the "sources" subcommand.
func sourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "List registered source profiles",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range sources.Names() {
				profile, _ := sources.Get(name)
				fmt.Printf("%-12s %s\n", name, profile.BaseURL)
			}
		},
	}
}

// configCmd creates the "config" subcommand for inspecting configuration.
func configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			fmt.Printf("Engine:\n")
			fmt.Printf("  Sources:          %s\n", strings.Join(cfg.Engine.Sources, ", "))
			fmt.Printf("  Concurrency:      %d\n", cfg.Engine.Concurrency)
			fmt.Printf("  Max Pages:        %d\n", cfg.Engine.MaxPages)
			fmt.Printf("  Start Date:       %s\n", cfg.Engine.StartDate)
			fmt.Printf("  Request Timeout:  %s\n", cfg.Engine.RequestTimeout)
			fmt.Printf("  Sink Buffer:      %d\n", cfg.Engine.SinkBuffer)
			fmt.Printf("  User Agents:      %d configured\n", len(cfg.Engine.UserAgents))
			fmt.Printf("\nFetcher:\n")
			fmt.Printf("  Follow Redirects: %v\n", cfg.Fetcher.FollowRedirects)
			fmt.Printf("  Max Body Size:    %d bytes\n", cfg.Fetcher.MaxBodySize)
			fmt.Printf("\nStorage:\n")
			fmt.Printf("  Type:             %s\n", cfg.Storage.Type)
			fmt.Printf("  Output Path:      %s\n", cfg.Storage.OutputPath)
			fmt.Printf("  Batch Size:       %d\n", cfg.Storage.BatchSize)
			fmt.Printf("\nMetrics:\n")
			fmt.Printf("  Enabled:          %v\n", cfg.Metrics.Enabled)
			fmt.Printf("  Port:             %d\n", cfg.Metrics.Port)
			return nil
		},
	}
}

// versionCmd creates the "version" subcommand.
func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("newswatch %s\n", config.Version)
		},
	}
}

// setupLogger creates a structured logger per the logging config. The
// --verbose flag overrides the configured level.
func setupLogger(lc *config.LoggingConfig) *slog.Logger {
	level := slog.LevelInfo
	switch lc.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if lc.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}

// applyCLIOverrides applies command-line flag values to the config.
func applyCLIOverrides(cfg *config.Config) {
	if keywords != "" {
		cfg.Engine.Keywords = splitList(keywords)
	}
	if sourceNames != "" {
		cfg.Engine.Sources = splitList(sourceNames)
	}
	if startDate != "" {
		cfg.Engine.StartDate = startDate
	}
	if concurrent > 0 {
		cfg.Engine.Concurrency = concurrent
	}
	if maxPages > 0 {
		cfg.Engine.MaxPages = maxPages
	}
	if outputPath != "" {
		cfg.Storage.OutputPath = outputPath
	}
	if outputType != "" {
		cfg.Storage.Type = strings.ToLower(outputType)
	}
	if timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err == nil {
			cfg.Engine.RequestTimeout = d
		}
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
