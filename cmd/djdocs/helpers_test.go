package main_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/fwojciec/djdocs"
	main "github.com/fwojciec/djdocs/cmd/djdocs"
	"github.com/fwojciec/djdocs/crawl"
	"github.com/fwojciec/djdocs/mock"
	"github.com/stretchr/testify/require"
)

const docsBase = "https://docs.djangoproject.com/en/dev/"

// corpus returns a small linked corpus.
func corpus() []*djdocs.Page {
	return djdocs.Link([]*djdocs.RawPage{
		{URL: docsBase + "topics/db/", Title: "Databases", Content: "Overview.", NextURL: docsBase + "topics/db/models/"},
		{URL: docsBase + "topics/db/models/", Title: "Models", Content: "# Models\n\n## Fields\n\nText.", PreviousURL: docsBase + "topics/db/", NextURL: docsBase + "topics/db/queries/"},
		{URL: docsBase + "topics/db/queries/", Title: "Making queries", Content: "Queries.", PreviousURL: docsBase + "topics/db/models/"},
		{URL: docsBase + "ref/contrib/admin/", Title: "The Django admin site", Content: "Admin."},
	})
}

// testEnv bundles command dependencies backed by an in-memory cache.
type testEnv struct {
	deps    *main.Dependencies
	stdout  *bytes.Buffer
	stderr  *bytes.Buffer
	stored  map[string][]byte
	fetched []string
}

// newEnv returns dependencies whose cache holds pages, or nothing when pages
// is nil. The builder serves the sitemap and pages from raw.
func newEnv(t *testing.T, pages []*djdocs.Page, raw []*djdocs.RawPage) *testEnv {
	t.Helper()

	env := &testEnv{
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
		stored: map[string][]byte{},
	}

	byURL := map[string]*djdocs.RawPage{}
	var urls []string
	for _, r := range raw {
		byURL[r.URL] = r
		urls = append(urls, r.URL)
	}

	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	lib := &crawl.Library{
		Cache: &mock.Cache{
			GetFn: func(_ context.Context, key string) ([]byte, error) {
				return env.stored[key], nil
			},
			SetFn: func(_ context.Context, key string, value []byte) error {
				env.stored[key] = value
				return nil
			},
		},
		Now:   func() time.Time { return now },
		NewID: func() string { return "test-build" },
		Builder: &crawl.Builder{
			Sitemaps: &mock.SitemapReader{
				ReadSitemapFn: func(_ context.Context, _ string) ([]string, error) {
					if raw == nil {
						return nil, errors.New("offline")
					}
					return urls, nil
				},
			},
			Pages: &mock.PageFetcher{
				FetchPageFn: func(_ context.Context, url string) (*djdocs.RawPage, error) {
					env.fetched = append(env.fetched, url)
					if r, ok := byURL[url]; ok {
						return r, nil
					}
					return nil, errors.New("HTTP 404")
				},
			},
			Logger: discardLogger(),
		},
	}

	if pages != nil {
		require.NoError(t, lib.Store(context.Background(), djdocs.DefaultVersion, pages))
	}

	env.deps = &main.Dependencies{
		Ctx:     context.Background(),
		Stdout:  env.stdout,
		Stderr:  env.stderr,
		Version: djdocs.DefaultVersion,
		Library: lib,
	}
	return env
}

func sitemapOf(urls ...string) *mock.SitemapReader {
	return &mock.SitemapReader{
		ReadSitemapFn: func(_ context.Context, _ string) ([]string, error) {
			return urls, nil
		},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
