package types

import (
	"encoding/json"
	"time"
)

// UnknownField is the sentinel used when a non-required field (author,
// category) is absent from the article markup.
const UnknownField = "Unknown"

// Article is a single extracted news record. Articles are immutable once
// constructed; after being enqueued on the result sink they are owned by
// the consumer.
type Article struct {
	// Title is the article headline. Required.
	Title string `json:"title"`

	// PublishDate is the parsed publication date (day precision). Required.
	PublishDate time.Time `json:"publish_date"`

	// Author is the article byline, or "Unknown" when absent.
	Author string `json:"author"`

	// Content is the cleaned body text, paragraphs joined by a blank line.
	// Required.
	Content string `json:"content"`

	// Keyword is the search term that produced this record.
	Keyword string `json:"keyword"`

	// Category is the breadcrumb category, or "Unknown" when absent.
	Category string `json:"category"`

	// Source identifies the originating site, derived from its domain.
	Source string `json:"source"`

	// Link is the canonical absolute URL of the article. It is the
	// identity used by downstream consumers for deduplication.
	Link string `json:"link"`
}

// DateLayout is the canonical day-precision format used on export.
const DateLayout = "2006-01-02"

// Complete reports whether all required fields resolved. Incomplete
// articles must never reach the result sink.
func (a *Article) Complete() bool {
	return a.Title != "" && a.Content != "" && !a.PublishDate.IsZero()
}

// ToJSON serializes the article with the publish date at day precision.
func (a *Article) ToJSON() ([]byte, error) {
	return json.Marshal(struct {
		Title       string `json:"title"`
		PublishDate string `json:"publish_date"`
		Author      string `json:"author"`
		Content     string `json:"content"`
		Keyword     string `json:"keyword"`
		Category    string `json:"category"`
		Source      string `json:"source"`
		Link        string `json:"link"`
	}{
		Title:       a.Title,
		PublishDate: a.PublishDate.Format(DateLayout),
		Author:      a.Author,
		Content:     a.Content,
		Keyword:     a.Keyword,
		Category:    a.Category,
		Source:      a.Source,
		Link:        a.Link,
	})
}

// ToRow returns the article as an export row in the canonical column
// order shared by the CSV and XLSX writers.
func (a *Article) ToRow() []string {
	return []string{
		a.Title,
		a.PublishDate.Format(DateLayout),
		a.Author,
		a.Content,
		a.Keyword,
		a.Category,
		a.Source,
		a.Link,
	}
}

// RowHeader is the column order produced by ToRow.
var RowHeader = []string{
	"title", "publish_date", "author", "content",
	"keyword", "category", "source", "link",
}

// Clone returns a copy of the article.
func (a *Article) Clone() *Article {
	clone := *a
	return &clone
}
