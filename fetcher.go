package djdocs

import "context"

// Fetcher retrieves raw content from URLs.
type Fetcher interface {
	// Fetch performs a GET of the URL and returns the response body.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (string, error)

	// Close releases resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
