package main

import (
	"fmt"

	"github.com/fwojciec/djdocs"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	var section djdocs.Section
	if c.Section != "" {
		s, err := djdocs.ParseSection(c.Section)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", djdocs.ErrorMessage(err))
			return err
		}
		section = s
	}

	pages, err := loadPages(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", djdocs.ErrorMessage(err))
		return err
	}

	n := 0
	for _, p := range pages {
		if section != djdocs.SectionNone && djdocs.Classify(p.URL) != section {
			continue
		}
		n++
		if p.Parent != nil {
			fmt.Fprintf(deps.Stdout, "%s  (%s)\n  %s\n", p.Title, p.Parent.Title, p.URL)
		} else {
			fmt.Fprintf(deps.Stdout, "%s\n  %s\n", p.Title, p.URL)
		}
	}

	if n == 0 {
		fmt.Fprintln(deps.Stdout, "No pages found.")
	}
	return nil
}
