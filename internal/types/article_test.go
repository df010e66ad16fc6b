package types

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func sampleArticle() *Article {
	return &Article{
		Title:       "Judul",
		PublishDate: time.Date(2025, time.August, 25, 0, 0, 0, 0, time.UTC),
		Author:      "Penulis",
		Content:     "Isi.",
		Keyword:     "banjir",
		Category:    "News",
		Source:      "detik.com",
		Link:        "https://news.detik.com/d-1/judul",
	}
}

func TestComplete(t *testing.T) {
	if !sampleArticle().Complete() {
		t.Error("fully populated article should be complete")
	}

	tests := []struct {
		name   string
		mutate func(*Article)
	}{
		{"no title", func(a *Article) { a.Title = "" }},
		{"no content", func(a *Article) { a.Content = "" }},
		{"zero date", func(a *Article) { a.PublishDate = time.Time{} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := sampleArticle()
			tt.mutate(a)
			if a.Complete() {
				t.Error("article should be incomplete")
			}
		})
	}

	// Author and category are not required.
	a := sampleArticle()
	a.Author, a.Category = "", ""
	if !a.Complete() {
		t.Error("author and category must not affect completeness")
	}
}

func TestToRowMatchesHeader(t *testing.T) {
	row := sampleArticle().ToRow()
	if len(row) != len(RowHeader) {
		t.Fatalf("row has %d columns, header has %d", len(row), len(RowHeader))
	}
	if row[1] != "2025-08-25" {
		t.Errorf("publish_date column = %q, want day precision", row[1])
	}
}

func TestToJSONDayPrecision(t *testing.T) {
	b, err := sampleArticle().ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m["publish_date"] != "2025-08-25" {
		t.Errorf("publish_date = %v, want 2025-08-25", m["publish_date"])
	}
	if m["title"] != "Judul" {
		t.Errorf("title = %v", m["title"])
	}
}

func TestClone(t *testing.T) {
	a := sampleArticle()
	clone := a.Clone()
	clone.Title = "Lain"
	if a.Title != "Judul" {
		t.Error("mutating the clone must not touch the original")
	}
}

func TestErrorWrapping(t *testing.T) {
	fetchErr := &FetchError{URL: "https://x.example", StatusCode: 503, Err: ErrNoResponse}
	if !errors.Is(fetchErr, ErrNoResponse) {
		t.Error("FetchError should unwrap to its cause")
	}

	extractErr := &ExtractError{URL: "https://x.example", Field: "title", Err: ErrMissingTitle}
	if !errors.Is(extractErr, ErrMissingTitle) {
		t.Error("ExtractError should unwrap to its cause")
	}

	diskFull := errors.New("disk full")
	storageErr := &StorageError{Backend: "csv", Err: diskFull}
	if !errors.Is(storageErr, diskFull) {
		t.Error("StorageError should unwrap to its cause")
	}

	var dateErr *DateParseError
	wrapped := &ExtractError{Field: "date", Err: &DateParseError{Text: "kemarin"}}
	if !errors.As(wrapped, &dateErr) {
		t.Error("DateParseError should be reachable through ExtractError")
	}
}
