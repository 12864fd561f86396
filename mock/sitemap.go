package mock

import (
	"context"

	"github.com/fwojciec/djdocs"
)

var _ djdocs.SitemapReader = (*SitemapReader)(nil)

// SitemapReader is a mock implementation of djdocs.SitemapReader.
type SitemapReader struct {
	ReadSitemapFn func(ctx context.Context, sourceURL string) ([]string, error)
}

func (s *SitemapReader) ReadSitemap(ctx context.Context, sourceURL string) ([]string, error) {
	return s.ReadSitemapFn(ctx, sourceURL)
}
