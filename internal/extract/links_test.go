package extract

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/danuarta/newswatch/internal/sources"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func parseHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse HTML: %v", err)
	}
	return doc
}

var testLinkRules = sources.LinkRules{
	Card:     ".list-content__item",
	Anchor:   "h3.media__title a",
	Denylist: []string{"/foto-", "-video", "/pop/"},
}

func TestLinksFiltersDenylisted(t *testing.T) {
	html := `<div>
		<article class="list-content__item">
			<a href="https://news.example.com/thumb/1"><img src="t.jpg"></a>
			<h3 class="media__title"><a href="https://news.example.com/d-1/banjir-jakarta">Banjir</a></h3>
		</article>
		<article class="list-content__item">
			<h3 class="media__title"><a href="https://news.example.com/foto-banjir/galeri">Galeri</a></h3>
		</article>
		<article class="list-content__item">
			<h3 class="media__title"><a href="https://news.example.com/d-2/evakuasi-warga">Evakuasi</a></h3>
		</article>
	</div>`

	links, ok := Links(parseHTML(t, html), testLinkRules, testLogger())
	if !ok {
		t.Fatal("Links reported no cards on a page with three")
	}
	if len(links) != 2 {
		t.Fatalf("got %d links, want 2: %v", len(links), links)
	}
	for _, want := range []string{
		"https://news.example.com/d-1/banjir-jakarta",
		"https://news.example.com/d-2/evakuasi-warga",
	} {
		if _, found := links[want]; !found {
			t.Errorf("missing link %s", want)
		}
	}
	if _, found := links["https://news.example.com/foto-banjir/galeri"]; found {
		t.Error("denylisted photo link was not filtered")
	}
}

func TestLinksSignalsEndOfPagination(t *testing.T) {
	html := `<div class="search-result"><p>Tidak ditemukan hasil.</p></div>`

	links, ok := Links(parseHTML(t, html), testLinkRules, testLogger())
	if ok {
		t.Error("zero cards should report ok=false")
	}
	if len(links) != 0 {
		t.Errorf("got %d links from an empty page, want 0", len(links))
	}
}

func TestLinksAllFilteredStillReportsCards(t *testing.T) {
	html := `<div>
		<article class="list-content__item">
			<h3 class="media__title"><a href="https://news.example.com/pop/selebriti">Pop</a></h3>
		</article>
	</div>`

	links, ok := Links(parseHTML(t, html), testLinkRules, testLogger())
	if !ok {
		t.Error("a page with cards should report ok=true even when all links filter out")
	}
	if len(links) != 0 {
		t.Errorf("got %d links, want 0", len(links))
	}
}

func TestLinksIgnoresNonTitleAnchors(t *testing.T) {
	html := `<div>
		<article class="list-content__item">
			<a href="https://news.example.com/author/rina"><span>Rina</span></a>
			<h3 class="media__title"><a href="https://news.example.com/d-3/pemilu">Pemilu</a></h3>
		</article>
	</div>`

	links, ok := Links(parseHTML(t, html), testLinkRules, testLogger())
	if !ok {
		t.Fatal("expected one card")
	}
	if len(links) != 1 {
		t.Fatalf("got %d links, want 1", len(links))
	}
	if _, found := links["https://news.example.com/d-3/pemilu"]; !found {
		t.Error("title anchor link missing")
	}
}

func TestLinksDeduplicates(t *testing.T) {
	html := `<div>
		<article class="list-content__item">
			<h3 class="media__title"><a href="https://news.example.com/d-4/gempa">Gempa</a></h3>
		</article>
		<article class="list-content__item">
			<h3 class="media__title"><a href="https://news.example.com/d-4/gempa">Gempa (promoted)</a></h3>
		</article>
	</div>`

	links, ok := Links(parseHTML(t, html), testLinkRules, testLogger())
	if !ok {
		t.Fatal("expected cards")
	}
	if len(links) != 1 {
		t.Errorf("duplicate hrefs should collapse to one link, got %d", len(links))
	}
}
