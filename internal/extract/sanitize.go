package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/danuarta/newswatch/internal/sources"
)

// CleanBody runs the sanitization pipeline over a body container and
// returns the cleaned article text, paragraphs joined by a blank line.
// An empty result means extraction failed for this article.
//
// The pipeline mutates only the given selection's subtree, which belongs
// to a document parsed from this article's response — never a shared tree.
func CleanBody(container *goquery.Selection, rules sources.SanitizeRules) string {
	// 1. Remove known non-content subtrees.
	for _, selector := range rules.RemoveSelectors {
		container.Find(selector).Remove()
	}

	// 2. Remove remaining elements carrying noise class markers.
	container.Find("[class]").Each(func(_ int, sel *goquery.Selection) {
		class, _ := sel.Attr("class")
		for _, marker := range rules.NoiseClasses {
			if strings.Contains(class, marker) {
				sel.Remove()
				return
			}
		}
	})

	// 3. Collect paragraph and emphasis text in document order, dropping
	// exact boilerplate strings.
	var paragraphs []string
	container.Find("p, strong").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if text == "" || isBoilerplate(text, rules.Boilerplate) {
			return
		}
		paragraphs = append(paragraphs, text)
	})

	if len(paragraphs) > 0 {
		return strings.Join(paragraphs, "\n\n")
	}

	// 4. Fallback for pages that deviate from the expected paragraph
	// markup: take all remaining text, line by line.
	var lines []string
	for _, line := range strings.Split(container.Text(), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n\n")
}

func isBoilerplate(text string, boilerplate []string) bool {
	for _, b := range boilerplate {
		if text == b {
			return true
		}
	}
	return false
}
