package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"

	"github.com/danuarta/newswatch/internal/sources"
)

// firstText evaluates a fallback chain against the document and returns the
// text of the first rule that yields non-empty output. Rules are pure
// lookups; evaluation has no side effects on the document.
func firstText(doc *goquery.Document, chain sources.Chain) string {
	for _, rule := range chain {
		if text := ruleText(doc, rule); text != "" {
			return text
		}
	}
	return ""
}

// firstSelection returns the first selection matched by a chain of CSS
// rules, for fields that need the matched subtree rather than its text
// (the body container).
func firstSelection(doc *goquery.Document, chain sources.Chain) *goquery.Selection {
	for _, rule := range chain {
		if rule.Selector == "" {
			continue
		}
		sel := doc.Find(rule.Selector)
		if sel.Length() > 0 {
			return sel.First()
		}
	}
	return nil
}

// ruleText applies a single rule and returns the trimmed result.
func ruleText(doc *goquery.Document, rule sources.Rule) string {
	if rule.XPath != "" {
		return xpathText(doc, rule)
	}
	sel := doc.Find(rule.Selector).First()
	if sel.Length() == 0 {
		return ""
	}
	if rule.Attr != "" {
		val, _ := sel.Attr(rule.Attr)
		return strings.TrimSpace(val)
	}
	return strings.TrimSpace(sel.Text())
}

// xpathText evaluates an XPath rule against the document's underlying node
// tree. goquery documents wrap x/net/html nodes, so htmlquery can query
// them directly without a second parse.
func xpathText(doc *goquery.Document, rule sources.Rule) string {
	root := doc.Get(0)
	if root == nil {
		return ""
	}
	node, err := htmlquery.Query(root, rule.XPath)
	if err != nil || node == nil {
		return ""
	}
	if rule.Attr != "" {
		return strings.TrimSpace(htmlquery.SelectAttr(node, rule.Attr))
	}
	return strings.TrimSpace(nodeText(node))
}

func nodeText(n *html.Node) string {
	return htmlquery.InnerText(n)
}
