package crawler

import (
	"sync/atomic"
	"time"
)

// Stats tracks crawl statistics across all controllers.
type Stats struct {
	PagesFetched    atomic.Int64
	PagesFailed     atomic.Int64
	ArticlesFetched atomic.Int64
	ArticlesEmitted atomic.Int64
	ArticlesDropped atomic.Int64
	FetchFailures   atomic.Int64
	DateStops       atomic.Int64
	BytesDownloaded atomic.Int64
	StartTime       time.Time
}

// Snapshot returns a copy of stats safe for reading.
func (s *Stats) Snapshot() map[string]any {
	return map[string]any{
		"pages_fetched":    s.PagesFetched.Load(),
		"pages_failed":     s.PagesFailed.Load(),
		"articles_fetched": s.ArticlesFetched.Load(),
		"articles_emitted": s.ArticlesEmitted.Load(),
		"articles_dropped": s.ArticlesDropped.Load(),
		"fetch_failures":   s.FetchFailures.Load(),
		"date_stops":       s.DateStops.Load(),
		"bytes_downloaded": s.BytesDownloaded.Load(),
		"elapsed":          time.Since(s.StartTime).String(),
	}
}
