// Package crawl builds the Django documentation corpus. It coordinates
// sitemap discovery, page fetching, and linking, and keeps built corpora
// in a cache.
package crawl

import (
	"context"
	"log/slog"

	"github.com/fwojciec/djdocs"
)

// Builder builds a linked corpus from a sitemap.
type Builder struct {
	Sitemaps djdocs.SitemapReader
	Pages    djdocs.PageFetcher

	// Logger receives per-page failures. Defaults to slog.Default().
	Logger *slog.Logger
}

// ProgressEvent reports progress during a build.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting build progress.
type ProgressFunc func(event ProgressEvent)

// Build reads the sitemap at sitemapURL, fetches every page matching the
// section patterns one at a time, and links the survivors into a corpus.
//
// A sitemap failure is returned. A page failure is logged, reported as
// ProgressFailed, and the page is left out of the corpus.
func (b *Builder) Build(ctx context.Context, sitemapURL string, progress ProgressFunc) ([]*djdocs.Page, error) {
	logger := b.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if progress == nil {
		progress = func(ProgressEvent) {}
	}

	urls, err := b.Sitemaps.ReadSitemap(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}

	candidates := dedupe(djdocs.FilterByPatterns(urls))
	total := len(candidates)

	progress(ProgressEvent{Type: ProgressStarted, Total: total})

	records := make([]*djdocs.RawPage, 0, total)
	for i, u := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		raw, err := b.Pages.FetchPage(ctx, u)
		if err != nil {
			logger.Warn("skipping page", "url", u, "err", err)
			progress(ProgressEvent{
				Type:      ProgressFailed,
				Completed: i + 1,
				Total:     total,
				URL:       u,
				Error:     err,
			})
			continue
		}

		records = append(records, raw)
		progress(ProgressEvent{
			Type:      ProgressCompleted,
			Completed: i + 1,
			Total:     total,
			URL:       u,
		})
	}

	progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})

	return djdocs.Link(records), nil
}

// dedupe drops repeated URLs, keeping the first occurrence.
func dedupe(urls []string) []string {
	seen := make(map[string]struct{}, len(urls))
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out
}
