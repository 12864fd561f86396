// Package http provides net/http implementations of the djdocs fetch
// and sitemap collaborators.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/djdocs"
)

// DefaultTimeout bounds a single request, matching the browser fetcher.
const DefaultTimeout = 10 * time.Second

// DefaultUserAgent identifies djdocs to the documentation server.
const DefaultUserAgent = "djdocs/1.0 (+https://github.com/fwojciec/djdocs)"

var _ djdocs.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves raw documents with plain GET requests.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout bounds each request. Ignored when WithClient is given.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) { f.timeout = d }
}

// WithClient sends requests through client.
func WithClient(client *http.Client) Option {
	return func(f *Fetcher) { f.client = client }
}

// WithUserAgent overrides DefaultUserAgent. An empty value sends none.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) { f.userAgent = ua }
}

// NewFetcher returns a Fetcher configured by opts.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{timeout: DefaultTimeout, userAgent: DefaultUserAgent}
	for _, opt := range opts {
		opt(f)
	}
	if f.client == nil {
		f.client = &http.Client{Timeout: f.timeout}
	}
	return f
}

// Fetch returns the body served at url. Only 200 counts as success;
// 404 and 410 map to ENOTFOUND.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", djdocs.Errorf(djdocs.EINVALID, "bad request URL %q: %v", url, err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if err := statusError(resp.StatusCode, url); err != nil {
		return "", err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", url, err)
	}
	return string(body), nil
}

func statusError(code int, url string) error {
	switch code {
	case http.StatusOK:
		return nil
	case http.StatusNotFound, http.StatusGone:
		return djdocs.Errorf(djdocs.ENOTFOUND, "HTTP %d for %s", code, url)
	default:
		return fmt.Errorf("HTTP %d for %s", code, url)
	}
}

// Close is a no-op.
func (f *Fetcher) Close() error {
	return nil
}
