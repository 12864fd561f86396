package http

import (
	"context"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/djdocs"
)

// Ensure SitemapReader implements djdocs.SitemapReader.
var _ djdocs.SitemapReader = (*SitemapReader)(nil)

// SitemapReader reads sitemap documents fetched through a djdocs.Fetcher.
type SitemapReader struct {
	fetcher djdocs.Fetcher
}

// NewSitemapReader creates a SitemapReader that fetches with fetcher.
func NewSitemapReader(fetcher djdocs.Fetcher) *SitemapReader {
	return &SitemapReader{fetcher: fetcher}
}

// ReadSitemap returns the <loc> text of every <url> element of the sitemap
// at sourceURL, in document order and without trimming. A <sitemapindex>
// root is followed into its child sitemaps.
//
// Fetch errors are returned as is. Malformed XML is not an error: the
// locations parsed before the malformation are returned.
func (r *SitemapReader) ReadSitemap(ctx context.Context, sourceURL string) ([]string, error) {
	if sourceURL == "" {
		sourceURL = djdocs.DefaultSitemapURL
	}
	urls, err := r.read(ctx, sourceURL, make(map[string]bool))
	if err != nil {
		return nil, err
	}
	if urls == nil {
		urls = []string{}
	}
	return urls, nil
}

func (r *SitemapReader) read(ctx context.Context, sitemapURL string, seen map[string]bool) ([]string, error) {
	// Avoid processing the same sitemap twice
	if seen[sitemapURL] {
		return nil, nil
	}
	seen[sitemapURL] = true

	body, err := r.fetcher.Fetch(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}

	doc := parseXML(body)
	root := doc.Root()
	if root == nil {
		return nil, nil
	}

	if root.Tag == "sitemapindex" {
		return r.readIndex(ctx, root, seen)
	}

	var urls []string
	for _, loc := range doc.FindElements("//url/loc") {
		urls = append(urls, loc.Text())
	}
	return urls, nil
}

// readIndex reads every child sitemap of a <sitemapindex> element in order.
func (r *SitemapReader) readIndex(ctx context.Context, root *etree.Element, seen map[string]bool) ([]string, error) {
	var all []string
	for _, sitemap := range root.SelectElements("sitemap") {
		loc := sitemap.SelectElement("loc")
		if loc == nil {
			continue
		}
		sitemapURL := strings.TrimSpace(loc.Text())
		if sitemapURL == "" {
			continue
		}

		urls, err := r.read(ctx, sitemapURL, seen)
		if err != nil {
			return nil, err
		}
		all = append(all, urls...)
	}
	return all, nil
}

// parseXML parses as much of body as possible. etree attaches elements to
// the tree as they are read, so a document cut short by a syntax error
// still holds everything before the error.
func parseXML(body string) *etree.Document {
	doc := etree.NewDocument()
	_ = doc.ReadFromString(body)
	return doc
}
