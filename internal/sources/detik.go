package sources

// Detik returns the profile for detik.com. The search endpoint pages
// through /search/searchall; article pages are requested with single=1 for
// the simplified single-page rendering.
func Detik() *Profile {
	return &Profile{
		Name:       "detik",
		BaseURL:    "https://www.detik.com",
		SearchPath: "/search/searchall",
		QueryParam: "query",
		PageParam:  "page",
		SortParam:  "result_type",
		SortMode:   "relevansi",

		ArticleSuffix: "single=1",

		Links: LinkRules{
			Card:   ".list-content__item",
			Anchor: "h3.media__title a",
			Denylist: []string{
				"wolipop.detik.com",
				"/detiktv/",
				"/pop/",
				"20.detik.com", // video vertical
				"/foto-",       // photo galleries
				"-video",
			},
		},

		Category: CSS(".page__breadcrumb a", ".breadcrumb a"),
		Title:    CSS(".detail__title", "h1.detail__title", "h1"),
		Author:   CSS(".detail__author", ".author"),
		Date:     CSS(".detail__date", ".date", "time"),
		Body:     CSS(".detail__body-text", ".itp_bodycontent", ".detail-content"),

		Sanitize: SanitizeRules{
			RemoveSelectors: []string{
				"script", "style", "iframe", "ins",
				".noncontent", ".linksisip",
				".parallaxindetail", ".staticdetail_container",
				".aevp", ".pip-vid",
				`[data-type="_mgwidget"]`, ".eyeo", "template",
				".detail__body-tag",
				"table.linksisip",
				`div[id^="div-gpt-ad"]`,
				`div[id^="mgw"]`,
				"div[data-tf-live]",
			},
			NoiseClasses: []string{
				"clearfix", "ads-", "mg_", "mc", "para_caption",
			},
			Boilerplate: []string{
				"ADVERTISEMENT",
				"SCROLL TO CONTINUE WITH CONTENT",
			},
		},
	}
}

func init() {
	Register(Detik())
}
