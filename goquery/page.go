// Package goquery implements djdocs.PageFetcher by querying Django
// documentation pages with goquery.
package goquery

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/djdocs"
)

var _ djdocs.PageFetcher = (*PageFetcher)(nil)

const (
	browseNav           = `nav[aria-labelledby="browse-header"]`
	browseHorizontalNav = `nav.browse-horizontal[aria-labelledby="browse-horizontal-header"]`
)

// contentSelectors are tried in order; the first match holds the page body.
var contentSelectors = []string{"#docs-content", ".body", "article"}

// PageFetcher fetches a Django documentation page and extracts its title,
// markdown body, and browse navigation.
type PageFetcher struct {
	fetcher   djdocs.Fetcher
	converter djdocs.Converter
}

// NewPageFetcher creates a PageFetcher that downloads pages with fetcher
// and turns their content into markdown with converter.
func NewPageFetcher(fetcher djdocs.Fetcher, converter djdocs.Converter) *PageFetcher {
	return &PageFetcher{fetcher: fetcher, converter: converter}
}

// FetchPage downloads pageURL and extracts a RawPage from it.
func (f *PageFetcher) FetchPage(ctx context.Context, pageURL string) (*djdocs.RawPage, error) {
	html, err := f.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, djdocs.Errorf(djdocs.EINVALID, "invalid page URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, djdocs.Errorf(djdocs.EINVALID, "failed to parse HTML: %v", err)
	}

	// Navigation must be read before the document is rewritten below.
	prev, next := browseLinks(doc)

	page := &djdocs.RawPage{
		URL:         pageURL,
		PreviousURL: resolveURL(base, prev),
		NextURL:     resolveURL(base, next),
	}

	doc.Find("a.headerlink").Remove()
	absolutize(doc, base)
	tagCodeLanguages(doc)

	page.Title = djdocs.StripPilcrows(doc.Find("h1").First().Text())
	if page.Title == "" {
		page.Title = djdocs.UntitledPage
	}

	content, err := contentHTML(doc)
	if err != nil {
		return nil, djdocs.Errorf(djdocs.EINTERNAL, "failed to read content of %s: %v", pageURL, err)
	}
	if strings.TrimSpace(content) == "" {
		return page, nil
	}

	md, err := f.converter.Convert(content, pageURL)
	if err != nil {
		return nil, fmt.Errorf("convert %s: %w", pageURL, err)
	}
	page.Content = djdocs.StripPilcrows(md)

	return page, nil
}

// browseLinks returns the raw hrefs of the previous and next links. The
// vertical browse nav takes precedence; each missing direction falls back to
// the horizontal browse nav.
func browseLinks(doc *goquery.Document) (prev, next string) {
	nav := doc.Find(browseNav).First()
	prev = href(nav.Find(`a[rel="prev"]`))
	next = href(nav.Find(`a[rel="next"]`))

	if prev == "" || next == "" {
		horizontal := doc.Find(browseHorizontalNav).First()
		if prev == "" {
			prev = href(horizontal.Find(`.left a[rel="prev"]`))
		}
		if next == "" {
			next = href(horizontal.Find(`.right a[rel="next"]`))
		}
	}
	return prev, next
}

func href(sel *goquery.Selection) string {
	v, _ := sel.First().Attr("href")
	return strings.TrimSpace(v)
}

// contentHTML returns the inner HTML of the first non-blank content
// container, or "" when every container is missing or blank.
func contentHTML(doc *goquery.Document) (string, error) {
	for _, selector := range contentSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		html, err := sel.Html()
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(html) == "" {
			continue
		}
		return html, nil
	}
	return "", nil
}

// absolutize rewrites relative href and src attributes to absolute URLs.
func absolutize(doc *goquery.Document, base *url.URL) {
	for _, attr := range []string{"href", "src"} {
		doc.Find("[" + attr + "]").Each(func(_ int, sel *goquery.Selection) {
			v, _ := sel.Attr(attr)
			if resolved := resolveURL(base, v); resolved != "" {
				sel.SetAttr(attr, resolved)
			}
		})
	}
}

// tagCodeLanguages copies the language of Sphinx highlight wrappers
// (div.highlight-python and friends) onto the enclosed pre as a
// language-* class so the converter emits fenced blocks with an info string.
func tagCodeLanguages(doc *goquery.Document) {
	doc.Find(`div[class*="highlight-"]`).Each(func(_ int, sel *goquery.Selection) {
		lang := highlightLanguage(sel.AttrOr("class", ""))
		if lang == "" {
			return
		}
		sel.Find("pre").AddClass("language-" + lang)
	})
}

func highlightLanguage(class string) string {
	for _, c := range strings.Fields(class) {
		lang, ok := strings.CutPrefix(c, "highlight-")
		if !ok {
			continue
		}
		switch lang {
		case "", "default", "none", "text":
			return ""
		}
		return lang
	}
	return ""
}

// resolveURL resolves href against base. Empty or unparseable hrefs yield "".
func resolveURL(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}
