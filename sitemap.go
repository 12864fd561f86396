package djdocs

import "context"

// DefaultSitemapURL is the sitemap of the English Django documentation.
const DefaultSitemapURL = "https://docs.djangoproject.com/sitemap-en.xml"

// SitemapReader lists the URLs of a sitemap.
type SitemapReader interface {
	// ReadSitemap fetches the sitemap at sourceURL and returns the text of
	// every <url><loc> element in document order. An empty sourceURL means
	// DefaultSitemapURL.
	ReadSitemap(ctx context.Context, sourceURL string) ([]string, error)
}
