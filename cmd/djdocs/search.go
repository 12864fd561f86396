package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/djdocs"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	query := strings.ToLower(strings.TrimSpace(c.Query))
	if query == "" {
		err := djdocs.Errorf(djdocs.EINVALID, "search query required")
		fmt.Fprintf(deps.Stderr, "error: %s\n", djdocs.ErrorMessage(err))
		return err
	}

	pages, err := loadPages(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", djdocs.ErrorMessage(err))
		return err
	}

	// Title matches rank ahead of URL-only matches.
	var byTitle, byURL []*djdocs.Page
	for _, p := range pages {
		switch {
		case strings.Contains(strings.ToLower(p.Title), query):
			byTitle = append(byTitle, p)
		case strings.Contains(strings.ToLower(p.URL), query):
			byURL = append(byURL, p)
		}
	}
	results := append(byTitle, byURL...)

	if len(results) == 0 {
		fmt.Fprintf(deps.Stdout, "No pages match %q.\n", c.Query)
		return nil
	}

	if c.Limit > 0 && len(results) > c.Limit {
		results = results[:c.Limit]
	}
	for _, p := range results {
		if parent := titleOf(p.Parent); parent != "" {
			fmt.Fprintf(deps.Stdout, "%s  (%s)\n  %s\n", p.Title, parent, p.URL)
		} else {
			fmt.Fprintf(deps.Stdout, "%s\n  %s\n", p.Title, p.URL)
		}
	}
	return nil
}
