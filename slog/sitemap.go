package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/djdocs"
)

var _ djdocs.SitemapReader = (*LoggingSitemapReader)(nil)

// LoggingSitemapReader wraps a SitemapReader with logging.
type LoggingSitemapReader struct {
	next   djdocs.SitemapReader
	logger *slog.Logger
}

// NewLoggingSitemapReader creates a new LoggingSitemapReader.
func NewLoggingSitemapReader(next djdocs.SitemapReader, logger *slog.Logger) *LoggingSitemapReader {
	return &LoggingSitemapReader{next: next, logger: logger}
}

// ReadSitemap delegates to the wrapped reader and logs the operation.
func (s *LoggingSitemapReader) ReadSitemap(ctx context.Context, sourceURL string) (urls []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("sitemap read",
			"url", sourceURL,
			"count", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ReadSitemap(ctx, sourceURL)
}
