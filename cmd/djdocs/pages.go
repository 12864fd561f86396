package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/djdocs"
	"github.com/fwojciec/djdocs/crawl"
)

// loadPages returns the corpus for the selected version, building it when
// nothing is cached.
func loadPages(deps *Dependencies) ([]*djdocs.Page, error) {
	pages, ok, err := deps.Library.Load(deps.Ctx, deps.Version)
	if err != nil {
		return nil, err
	}
	if ok {
		return pages, nil
	}

	fmt.Fprintf(deps.Stderr, "No cached corpus for Django %s, building it now...\n", deps.Version)
	return deps.Library.Refresh(deps.Ctx, deps.Version, djdocs.DefaultSitemapURL, progressPrinter(deps))
}

// progressPrinter reports build progress on stderr.
func progressPrinter(deps *Dependencies) crawl.ProgressFunc {
	return func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stderr, "  Found %d pages\n", event.Total)
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", crawl.TruncateURL(event.URL, 80), event.Error)
		}
	}
}

// findPage returns the page with the given URL. A missing trailing slash is
// tolerated.
func findPage(pages []*djdocs.Page, url string) *djdocs.Page {
	alt := url + "/"
	if strings.HasSuffix(url, "/") {
		alt = strings.TrimSuffix(url, "/")
	}
	for _, p := range pages {
		if p.URL == url || p.URL == alt {
			return p
		}
	}
	return nil
}

func titleOf(p *djdocs.Page) string {
	if p == nil {
		return ""
	}
	return p.Title
}
