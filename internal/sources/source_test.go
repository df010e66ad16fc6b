package sources

import (
	"errors"
	"strings"
	"testing"

	"github.com/danuarta/newswatch/internal/types"
)

func TestSearchURL(t *testing.T) {
	p := &Profile{
		BaseURL:    "https://www.detik.com",
		SearchPath: "/search/searchall",
		QueryParam: "query",
		PageParam:  "page",
		SortParam:  "result_type",
		SortMode:   "relevansi",
	}

	got := p.SearchURL("banjir jakarta", 3)
	want := "https://www.detik.com/search/searchall?page=3&query=banjir+jakarta&result_type=relevansi"
	if got != want {
		t.Errorf("SearchURL = %q, want %q", got, want)
	}
}

func TestSearchURLWithoutSort(t *testing.T) {
	p := &Profile{
		BaseURL:    "https://news.example.com",
		SearchPath: "/cari",
		QueryParam: "q",
		PageParam:  "hal",
	}

	got := p.SearchURL("pemilu", 1)
	if strings.Contains(got, "result_type") {
		t.Errorf("sort param should be omitted when unset: %q", got)
	}
	if got != "https://news.example.com/cari?hal=1&q=pemilu" {
		t.Errorf("SearchURL = %q", got)
	}
}

func TestArticleURL(t *testing.T) {
	p := &Profile{ArticleSuffix: "single=1"}

	tests := []struct {
		link string
		want string
	}{
		{"https://news.detik.com/d-1/judul", "https://news.detik.com/d-1/judul?single=1"},
		{"https://news.detik.com/d-1/judul?ref=search", "https://news.detik.com/d-1/judul?ref=search&single=1"},
	}
	for _, tt := range tests {
		if got := p.ArticleURL(tt.link); got != tt.want {
			t.Errorf("ArticleURL(%q) = %q, want %q", tt.link, got, tt.want)
		}
	}

	plain := &Profile{}
	if got := plain.ArticleURL("https://x.example/a"); got != "https://x.example/a" {
		t.Errorf("empty suffix should leave the link unchanged, got %q", got)
	}
}

func TestSourceIdentifier(t *testing.T) {
	p := &Profile{Name: "detik", BaseURL: "https://www.detik.com"}
	if got := p.Source(); got != "detik.com" {
		t.Errorf("Source = %q, want detik.com", got)
	}

	bare := &Profile{Name: "kompas", BaseURL: "https://kompas.example"}
	if got := bare.Source(); got != "kompas.example" {
		t.Errorf("Source = %q, want kompas.example", got)
	}
}

func TestRegistry(t *testing.T) {
	p, err := Get("detik")
	if err != nil {
		t.Fatalf("detik profile should be registered: %v", err)
	}
	if p.Name != "detik" {
		t.Errorf("Name = %q", p.Name)
	}

	_, err = Get("nonexistent")
	if !errors.Is(err, types.ErrUnknownSource) {
		t.Errorf("unknown source error = %v, want ErrUnknownSource", err)
	}

	found := false
	for _, name := range Names() {
		if name == "detik" {
			found = true
		}
	}
	if !found {
		t.Errorf("Names() = %v, missing detik", Names())
	}
}

func TestDetikProfileRules(t *testing.T) {
	p := Detik()

	if p.Links.Card == "" || p.Links.Anchor == "" {
		t.Error("link rules must set card and anchor selectors")
	}
	if len(p.Links.Denylist) == 0 {
		t.Error("denylist should not be empty")
	}
	for _, chain := range []Chain{p.Title, p.Date, p.Body} {
		if len(chain) == 0 {
			t.Error("title, date and body chains must not be empty")
		}
	}
	if p.ArticleSuffix != "single=1" {
		t.Errorf("ArticleSuffix = %q", p.ArticleSuffix)
	}
}

func TestCSSChain(t *testing.T) {
	chain := CSS("h1.title", "h1")
	if len(chain) != 2 {
		t.Fatalf("len = %d, want 2", len(chain))
	}
	if chain[0].Selector != "h1.title" || chain[1].Selector != "h1" {
		t.Errorf("chain = %+v", chain)
	}
	if chain[0].XPath != "" || chain[0].Attr != "" {
		t.Error("CSS rules must set only Selector")
	}
}
