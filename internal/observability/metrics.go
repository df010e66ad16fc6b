package observability

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/danuarta/newswatch/internal/crawler"
)

// Metrics exposes crawl statistics over HTTP in Prometheus text exposition
// format. The counters themselves live in crawler.Stats; this is a
// read-only view.
type Metrics struct {
	stats  *crawler.Stats
	logger *slog.Logger
}

// NewMetrics creates a Metrics endpoint over the given stats.
func NewMetrics(stats *crawler.Stats, logger *slog.Logger) *Metrics {
	return &Metrics{
		stats:  stats,
		logger: logger.With("component", "metrics"),
	}
}

// ServeHTTP serves metrics in Prometheus text exposition format.
func (m *Metrics) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; version=0.0.4; charset=utf-8")

	metrics := []struct {
		name  string
		help  string
		value int64
	}{
		{"newswatch_pages_fetched_total", "Total results pages fetched", m.stats.PagesFetched.Load()},
		{"newswatch_pages_failed_total", "Total results page fetch failures", m.stats.PagesFailed.Load()},
		{"newswatch_articles_fetched_total", "Total article pages fetched", m.stats.ArticlesFetched.Load()},
		{"newswatch_articles_emitted_total", "Total articles emitted to the sink", m.stats.ArticlesEmitted.Load()},
		{"newswatch_articles_dropped_total", "Total articles dropped during extraction", m.stats.ArticlesDropped.Load()},
		{"newswatch_fetch_failures_total", "Total article fetch failures", m.stats.FetchFailures.Load()},
		{"newswatch_date_stops_total", "Total crawls stopped by the date bound", m.stats.DateStops.Load()},
		{"newswatch_bytes_downloaded_total", "Total bytes downloaded", m.stats.BytesDownloaded.Load()},
	}

	for _, metric := range metrics {
		fmt.Fprintf(w, "# HELP %s %s\n", metric.name, metric.help)
		fmt.Fprintf(w, "# TYPE %s counter\n", metric.name)
		fmt.Fprintf(w, "%s %d\n", metric.name, metric.value)
	}
}

// StartServer starts the metrics HTTP server.
func (m *Metrics) StartServer(port int, path string) error {
	mux := http.NewServeMux()
	mux.Handle(path, m)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "ok")
	})

	addr := fmt.Sprintf(":%d", port)
	m.logger.Info("metrics server starting", "addr", addr, "path", path)

	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			m.logger.Error("metrics server error", "error", err)
		}
	}()

	return nil
}
