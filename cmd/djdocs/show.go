package main

import (
	"fmt"

	"github.com/fwojciec/djdocs"
	"github.com/fwojciec/djdocs/goldmark"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	pages, err := loadPages(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", djdocs.ErrorMessage(err))
		return err
	}

	page := findPage(pages, c.URL)
	if page == nil {
		fmt.Fprintf(deps.Stderr, "error: page %q not found. Use 'djdocs search' to find pages.\n", c.URL)
		return djdocs.Errorf(djdocs.ENOTFOUND, "page %q not found", c.URL)
	}

	if c.Outline {
		headings := goldmark.ExtractHeadings(page.Content)
		if len(headings) == 0 {
			fmt.Fprintf(deps.Stdout, "%s has no headings.\n", page.Title)
			return nil
		}
		fmt.Fprint(deps.Stdout, djdocs.FormatOutline(headings))
		return nil
	}

	fmt.Fprint(deps.Stdout, djdocs.FormatPage(page))
	return nil
}
