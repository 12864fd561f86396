package mock

import (
	"context"

	"github.com/fwojciec/djdocs"
)

var _ djdocs.PageFetcher = (*PageFetcher)(nil)

// PageFetcher is a mock implementation of djdocs.PageFetcher.
type PageFetcher struct {
	FetchPageFn func(ctx context.Context, url string) (*djdocs.RawPage, error)
}

func (f *PageFetcher) FetchPage(ctx context.Context, url string) (*djdocs.RawPage, error) {
	return f.FetchPageFn(ctx, url)
}
