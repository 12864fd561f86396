package djdocs

import "context"

// Page is a node of the documentation corpus.
// Parent, Previous, and Next are nil when absent and otherwise always point
// at a page of the same corpus.
type Page struct {
	URL      string
	Title    string
	Content  string // Markdown
	Parent   *Page
	Previous *Page
	Next     *Page
}

// UntitledPage is the title used when a page has no top-level heading.
const UntitledPage = "Untitled"

// RawPage is a fetched page before linking. PreviousURL and NextURL hold the
// absolute targets of the page's browse navigation, or "" when absent.
type RawPage struct {
	URL         string
	Title       string
	Content     string // Markdown
	PreviousURL string
	NextURL     string
}

// PageFetcher fetches a single documentation page and extracts its title,
// markdown body, and browse navigation targets.
type PageFetcher interface {
	FetchPage(ctx context.Context, url string) (*RawPage, error)
}
