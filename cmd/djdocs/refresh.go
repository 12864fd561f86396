package main

import (
	"fmt"

	"github.com/fwojciec/djdocs"
	"github.com/fwojciec/djdocs/crawl"
)

// Run executes the refresh command.
func (c *RefreshCmd) Run(deps *Dependencies) error {
	if !c.Force {
		stale, err := deps.Library.ShouldRefresh(deps.Ctx, deps.Version, c.MaxAge)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", djdocs.ErrorMessage(err))
			return err
		}
		if !stale {
			age, _, err := deps.Library.Age(deps.Ctx, deps.Version)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", djdocs.ErrorMessage(err))
				return err
			}
			fmt.Fprintf(deps.Stdout, "Corpus for Django %s is up to date (refreshed %s). Use --force to rebuild.\n",
				deps.Version, crawl.FormatAge(age))
			return nil
		}
	}

	fmt.Fprintf(deps.Stdout, "Refreshing Django %s documentation from %s\n", deps.Version, c.Sitemap)

	pages, err := deps.Library.Refresh(deps.Ctx, deps.Version, c.Sitemap, progressPrinter(deps))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error refreshing: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Saved %d pages (%s)\n", len(pages), crawl.FormatBytes(crawl.ContentBytes(pages)))
	return nil
}
