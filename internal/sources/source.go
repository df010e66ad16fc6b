package sources

import (
	"net/url"
	"strconv"
	"strings"
)

// Rule is a single extraction rule inside a fallback chain. Exactly one of
// Selector (CSS, via goquery) or XPath (via htmlquery) is set.
type Rule struct {
	Selector string
	XPath    string
	Attr     string // attribute to read; empty means trimmed text content
}

// Chain is an ordered fallback selector chain: rules are tried in sequence
// and the first yielding non-empty text wins. Chains are data, not code —
// adding a template variant means appending a rule, not branching.
type Chain []Rule

// CSS builds a chain of plain CSS text rules.
func CSS(selectors ...string) Chain {
	chain := make(Chain, len(selectors))
	for i, s := range selectors {
		chain[i] = Rule{Selector: s}
	}
	return chain
}

// LinkRules locate article links on a search-results page.
type LinkRules struct {
	// Card matches one article card on the results page.
	Card string

	// Anchor matches the canonical title anchor inside a card. It must be
	// more specific than "any link in the card" so thumbnail and author
	// links are not picked up.
	Anchor string

	// Denylist holds URL substrings identifying non-article content
	// (other verticals, video pages, photo galleries). A link matching
	// any entry is excluded.
	Denylist []string
}

// SanitizeRules drive the body-cleaning pipeline.
type SanitizeRules struct {
	// RemoveSelectors are non-content subtrees stripped from the body
	// container before text collection.
	RemoveSelectors []string

	// NoiseClasses are class-attribute substrings; any element whose
	// class contains one is stripped.
	NoiseClasses []string

	// Boilerplate are exact paragraph strings dropped from the output.
	Boilerplate []string
}

// Profile is the capability set for one news source: search URL shape,
// link rules, field fallback chains, and sanitization rules. One generic
// crawl controller consumes any profile, so pagination and stop-condition
// logic is never duplicated per source.
type Profile struct {
	// Name is the registry key, e.g. "detik".
	Name string

	// BaseURL is the site root, e.g. "https://www.detik.com".
	BaseURL string

	// SearchPath is the search endpoint path under BaseURL.
	SearchPath string

	// QueryParam, PageParam and SortParam are the search endpoint's query
	// parameter names; SortMode is the value sent for SortParam.
	QueryParam string
	PageParam  string
	SortParam  string
	SortMode   string

	// ArticleSuffix is a raw query hint appended to article URLs to
	// request a simplified rendering, e.g. "single=1".
	ArticleSuffix string

	Links    LinkRules
	Category Chain
	Title    Chain
	Author   Chain
	Date     Chain
	Body     Chain
	Sanitize SanitizeRules
}

// SearchURL builds the paginated search URL for a keyword.
func (p *Profile) SearchURL(keyword string, page int) string {
	q := url.Values{}
	q.Set(p.QueryParam, keyword)
	q.Set(p.PageParam, strconv.Itoa(page))
	if p.SortParam != "" {
		q.Set(p.SortParam, p.SortMode)
	}
	return p.BaseURL + p.SearchPath + "?" + q.Encode()
}

// ArticleURL appends the profile's simplified-rendering hint to a link.
func (p *Profile) ArticleURL(link string) string {
	if p.ArticleSuffix == "" {
		return link
	}
	sep := "?"
	if strings.Contains(link, "?") {
		sep = "&"
	}
	return link + sep + p.ArticleSuffix
}

// Source returns the stable site identifier derived from the base domain,
// e.g. "detik.com".
func (p *Profile) Source() string {
	u, err := url.Parse(p.BaseURL)
	if err != nil {
		return p.Name
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}
