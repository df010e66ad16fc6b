package extract

import (
	"fmt"
	"log/slog"

	"github.com/PuerkitoBio/goquery"

	"github.com/danuarta/newswatch/internal/sources"
	"github.com/danuarta/newswatch/internal/types"
)

// Extractor pulls article fields out of article pages for one source
// profile. Extraction is a pure function of the page HTML: re-running it on
// the same input yields an identical record.
type Extractor struct {
	profile *sources.Profile
	logger  *slog.Logger
}

// NewExtractor creates an Extractor for the given profile.
func NewExtractor(profile *sources.Profile, logger *slog.Logger) *Extractor {
	return &Extractor{
		profile: profile,
		logger:  logger.With("component", "extractor", "source", profile.Name),
	}
}

// Article extracts a record from an article page. Title, date text, a body
// container and a parseable date are all required; absence of any returns
// an error and no record. Author and category fall back to "Unknown".
//
// Keyword is left empty; the crawl controller stamps it on dispatch.
func (e *Extractor) Article(doc *goquery.Document, link string) (*types.Article, error) {
	title := firstText(doc, e.profile.Title)
	if title == "" {
		return nil, &types.ExtractError{URL: link, Field: "title", Err: types.ErrMissingTitle}
	}

	author := firstText(doc, e.profile.Author)
	if author == "" {
		author = types.UnknownField
	}

	category := firstText(doc, e.profile.Category)
	if category == "" {
		category = types.UnknownField
	}

	dateText := firstText(doc, e.profile.Date)
	if dateText == "" {
		return nil, &types.ExtractError{URL: link, Field: "date", Err: types.ErrMissingDate}
	}

	container := firstSelection(doc, e.profile.Body)
	if container == nil {
		return nil, &types.ExtractError{URL: link, Field: "content", Err: types.ErrMissingContent}
	}

	content := CleanBody(container, e.profile.Sanitize)
	if content == "" {
		return nil, &types.ExtractError{URL: link, Field: "content", Err: types.ErrMissingContent}
	}

	publishDate, err := ParseDate(dateText)
	if err != nil {
		return nil, &types.ExtractError{URL: link, Field: "date", Err: fmt.Errorf("parse date: %w", err)}
	}

	return &types.Article{
		Title:       title,
		PublishDate: publishDate,
		Author:      author,
		Content:     content,
		Category:    category,
		Source:      e.profile.Source(),
		Link:        link,
	}, nil
}
