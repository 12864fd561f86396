package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/djdocs"
)

var _ djdocs.PageFetcher = (*LoggingPageFetcher)(nil)

// LoggingPageFetcher wraps a PageFetcher with debug logging.
type LoggingPageFetcher struct {
	next   djdocs.PageFetcher
	logger *slog.Logger
}

// NewLoggingPageFetcher creates a new LoggingPageFetcher.
func NewLoggingPageFetcher(next djdocs.PageFetcher, logger *slog.Logger) *LoggingPageFetcher {
	return &LoggingPageFetcher{next: next, logger: logger}
}

// FetchPage delegates to the wrapped fetcher and logs the extracted page.
func (f *LoggingPageFetcher) FetchPage(ctx context.Context, url string) (page *djdocs.RawPage, err error) {
	defer func(begin time.Time) {
		attrs := []any{"url", url, "duration", time.Since(begin)}
		if page != nil {
			attrs = append(attrs,
				"title", page.Title,
				"bytes", len(page.Content),
				"prev", page.PreviousURL,
				"next", page.NextURL,
			)
		}
		attrs = append(attrs, "err", err)
		f.logger.Debug("page fetch", attrs...)
	}(time.Now())
	return f.next.FetchPage(ctx, url)
}
