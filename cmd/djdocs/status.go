package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/djdocs"
	"github.com/fwojciec/djdocs/crawl"
)

// Run executes the status command.
func (c *StatusCmd) Run(deps *Dependencies) error {
	key := djdocs.CacheKey(deps.Version)

	pages, ok, err := deps.Library.Load(deps.Ctx, deps.Version)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", djdocs.ErrorMessage(err))
		return err
	}
	if !ok {
		fmt.Fprintf(deps.Stdout, "No cached corpus for Django %s (%s). Run 'djdocs refresh' to build it.\n", deps.Version, key)
		return nil
	}

	at, _, err := deps.Library.LastRefresh(deps.Ctx, deps.Version)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", djdocs.ErrorMessage(err))
		return err
	}
	age, _, err := deps.Library.Age(deps.Ctx, deps.Version)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", djdocs.ErrorMessage(err))
		return err
	}

	stale := "no"
	if age > crawl.DefaultMaxAge {
		stale = "yes"
	}

	fmt.Fprintf(deps.Stdout, "Version:      %s\n", deps.Version)
	fmt.Fprintf(deps.Stdout, "Cache key:    %s\n", key)
	fmt.Fprintf(deps.Stdout, "Pages:        %d (%s)\n", len(pages), crawl.FormatBytes(crawl.ContentBytes(pages)))
	fmt.Fprintf(deps.Stdout, "Last refresh: %s (%s)\n", at.Local().Format(time.RFC3339), crawl.FormatAge(age))
	fmt.Fprintf(deps.Stdout, "Stale:        %s\n", stale)
	return nil
}
