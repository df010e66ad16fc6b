package crawler

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/danuarta/newswatch/internal/extract"
	"github.com/danuarta/newswatch/internal/fetcher"
	"github.com/danuarta/newswatch/internal/sources"
	"github.com/danuarta/newswatch/internal/types"
)

// Controller drives pagination for one keyword on one source. It is created
// per (keyword, source) pair, lives for one pagination loop, and is then
// discarded. Its continue flag never leaks across unrelated crawls.
type Controller struct {
	profile   *sources.Profile
	keyword   string
	fetcher   fetcher.Fetcher
	extractor *extract.Extractor
	sink      chan<- types.Article
	startDate time.Time // zero means no lower bound
	maxPages  int
	stats     *Stats
	logger    *slog.Logger

	// keepGoing starts true and is flipped false exactly once when a
	// dispatch observes a publish date before startDate. Once false it
	// permanently halts further page fetches and further dispatch; work
	// already underway completes.
	keepGoing atomic.Bool
}

// NewController creates a crawl controller.
func NewController(
	profile *sources.Profile,
	keyword string,
	f fetcher.Fetcher,
	sink chan<- types.Article,
	startDate time.Time,
	maxPages int,
	stats *Stats,
	logger *slog.Logger,
) *Controller {
	c := &Controller{
		profile:   profile,
		keyword:   keyword,
		fetcher:   f,
		extractor: extract.NewExtractor(profile, logger),
		sink:      sink,
		startDate: startDate,
		maxPages:  maxPages,
		stats:     stats,
		logger: logger.With(
			"component", "controller",
			"source", profile.Name,
			"keyword", keyword,
		),
	}
	c.keepGoing.Store(true)
	return c
}

// Run executes the pagination loop: fetch results page, extract links,
// dispatch article fetches concurrently, then either advance to the next
// page or stop. Pagination is strictly sequential; only the per-link
// fan-out within a page is concurrent, bounded by the fetcher's gate.
func (c *Controller) Run(ctx context.Context) {
	for page := 1; ; page++ {
		if c.maxPages > 0 && page > c.maxPages {
			c.logger.Info("page limit reached", "max_pages", c.maxPages)
			return
		}

		links, ok := c.fetchPage(ctx, page)
		if !ok {
			return
		}

		c.dispatchAll(ctx, links)

		if !c.keepGoing.Load() {
			c.logger.Info("date bound reached, stopping crawl", "page", page)
			return
		}
		if ctx.Err() != nil {
			return
		}
	}
}

// fetchPage fetches one results page and extracts its links. A false
// return means this crawl is over: results-page fetch failure, end of
// results, or every link filtered out.
func (c *Controller) fetchPage(ctx context.Context, page int) (map[string]struct{}, bool) {
	searchURL := c.profile.SearchURL(c.keyword, page)
	logger := c.logger.With("page", page)

	resp, err := c.fetcher.Fetch(ctx, searchURL)
	if err != nil {
		// The results page is foundational; a failure ends this crawl
		// without retry. Sibling crawls are unaffected.
		c.stats.PagesFailed.Add(1)
		logger.Warn("results page fetch failed", "url", searchURL, "error", err)
		return nil, false
	}
	c.stats.PagesFetched.Add(1)
	c.stats.BytesDownloaded.Add(int64(len(resp.Body)))

	doc, err := resp.Document()
	if err != nil {
		logger.Warn("results page parse failed", "url", searchURL, "error", err)
		return nil, false
	}

	links, found := extract.Links(doc, c.profile.Links, logger)
	if !found {
		logger.Info("no article cards, end of results")
		return nil, false
	}
	if len(links) == 0 {
		logger.Info("all links filtered on this page, stopping")
		return nil, false
	}
	return links, true
}

// dispatchAll fans out article fetches for one page's links and waits for
// all of them. Each dispatch independently checks the continue flag before
// starting; dispatches admitted before a flag flip run to completion.
func (c *Controller) dispatchAll(ctx context.Context, links map[string]struct{}) {
	var wg sync.WaitGroup
	for link := range links {
		if !c.keepGoing.Load() {
			break
		}
		wg.Add(1)
		go func(link string) {
			defer wg.Done()
			c.dispatch(ctx, link)
		}(link)
	}
	wg.Wait()
}

// dispatch fetches and extracts one article, emitting the record to the
// sink when all required fields resolved. An out-of-range date flips the
// controller's continue flag; the record itself, if otherwise valid, is
// still emitted — the stop means "no further pages", not "discard this".
func (c *Controller) dispatch(ctx context.Context, link string) {
	resp, err := c.fetcher.Fetch(ctx, c.profile.ArticleURL(link))
	if err != nil {
		c.stats.FetchFailures.Add(1)
		c.logger.Warn("no response for article", "url", link, "error", err)
		return
	}
	c.stats.ArticlesFetched.Add(1)
	c.stats.BytesDownloaded.Add(int64(len(resp.Body)))

	doc, err := resp.Document()
	if err != nil {
		c.stats.ArticlesDropped.Add(1)
		c.logger.Warn("article parse failed", "url", link, "error", err)
		return
	}

	article, err := c.extractor.Article(doc, link)
	if err != nil {
		c.stats.ArticlesDropped.Add(1)
		var dateErr *types.DateParseError
		switch {
		case errors.As(err, &dateErr):
			c.logger.Error("date parse failed", "url", link, "error", err)
		case errors.Is(err, types.ErrMissingTitle):
			c.logger.Error("no title found", "url", link)
		default:
			c.logger.Warn("article extraction failed", "url", link, "error", err)
		}
		return
	}
	article.Keyword = c.keyword

	if !c.startDate.IsZero() && article.PublishDate.Before(c.startDate) {
		if c.keepGoing.CompareAndSwap(true, false) {
			c.stats.DateStops.Add(1)
			c.logger.Info("article predates start date",
				"publish_date", article.PublishDate.Format(types.DateLayout),
				"start_date", c.startDate.Format(types.DateLayout),
			)
		}
	}

	select {
	case c.sink <- *article:
		c.stats.ArticlesEmitted.Add(1)
		c.logger.Info("article scraped", "title", article.Title)
	case <-ctx.Done():
	}
}
