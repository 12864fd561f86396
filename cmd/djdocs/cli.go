package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/djdocs"
	"github.com/fwojciec/djdocs/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Version djdocs.Version
	Library *crawl.Library
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DocsVersion string        `name:"docs-version" short:"V" enum:"6.0,dev,5.1,5.0,4.2" default:"6.0" env:"DJDOCS_VERSION" help:"Django documentation version (${enum})"`
	Cache       string        `enum:"sqlite,fs" default:"sqlite" help:"Cache backend (${enum})"`
	CachePath   string        `name:"cache-path" env:"DJDOCS_CACHE" help:"Cache location (default ~/.djdocs/cache.db, or ~/.djdocs/cache for fs)"`
	Timeout     time.Duration `short:"t" default:"10s" help:"Fetch timeout per request"`
	Browser     bool          `help:"Render pages with headless Chrome"`
	Chrome      string        `env:"DJDOCS_CHROME" help:"Chrome binary used with --browser (default: found or downloaded)"`
	Verbose     bool          `short:"v" help:"Log every request and cache access"`

	Refresh RefreshCmd `cmd:"" help:"Build the documentation corpus and store it in the cache"`
	List    ListCmd    `cmd:"" help:"List documentation pages"`
	Show    ShowCmd    `cmd:"" help:"Show a documentation page as markdown"`
	Search  SearchCmd  `cmd:"" help:"Search page titles and URLs"`
	Export  ExportCmd  `cmd:"" help:"Write the corpus as markdown files"`
	Status  StatusCmd  `cmd:"" help:"Show cache status"`
}

// RefreshCmd is the "refresh" subcommand.
type RefreshCmd struct {
	Sitemap string        `default:"https://docs.djangoproject.com/sitemap-en.xml" help:"Sitemap URL"`
	Force   bool          `short:"f" help:"Rebuild even when the cached corpus is fresh"`
	MaxAge  time.Duration `name:"max-age" default:"168h" help:"Rebuild when the cached corpus is older than this"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Section string `short:"s" help:"Only pages of this section (topics, topicsSub, ref, refSub)"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	URL     string `arg:"" help:"Page URL"`
	Outline bool   `short:"o" help:"Print the heading outline instead of the page"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Text to look for in titles and URLs"`
	Limit int    `short:"n" default:"20" help:"Maximum number of results (0 for all)"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir string `arg:"" help:"Output directory (must be empty, missing, or a previous export)"`
}

// StatusCmd is the "status" subcommand.
type StatusCmd struct{}
