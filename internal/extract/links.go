package extract

import (
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/danuarta/newswatch/internal/sources"
)

// Links extracts the set of article URLs from a search-results page.
//
// The second return value is false when the page contains zero article
// cards — the controller's end-of-pagination signal. A page with cards
// whose links were all filtered out returns an empty set and true; both
// stop pagination but are logged differently.
func Links(doc *goquery.Document, rules sources.LinkRules, logger *slog.Logger) (map[string]struct{}, bool) {
	cards := doc.Find(rules.Card)
	if cards.Length() == 0 {
		return nil, false
	}

	links := make(map[string]struct{})
	cards.Each(func(_ int, card *goquery.Selection) {
		// The title anchor only — cards also carry thumbnail and author
		// links that must not be followed.
		anchor := card.Find(rules.Anchor).First()
		href, ok := anchor.Attr("href")
		if !ok || href == "" {
			return
		}
		if denied(href, rules.Denylist) {
			logger.Debug("link filtered", "url", href)
			return
		}
		links[href] = struct{}{}
	})

	logger.Info("article links found", "count", len(links), "cards", cards.Length())
	return links, true
}

// denied reports whether the URL matches any denylist substring.
func denied(href string, denylist []string) bool {
	for _, marker := range denylist {
		if strings.Contains(href, marker) {
			return true
		}
	}
	return false
}
