package djdocs

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms an HTML fragment into Markdown.
	// Links that are still relative are resolved against baseURL.
	Convert(html string, baseURL string) (string, error)
}
