package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/djdocs"
	"github.com/fwojciec/djdocs/crawl"
	"github.com/fwojciec/djdocs/fs"
	"github.com/fwojciec/djdocs/goquery"
	"github.com/fwojciec/djdocs/htmltomarkdown"
	djhttp "github.com/fwojciec/djdocs/http"
	"github.com/fwojciec/djdocs/rod"
	djslog "github.com/fwojciec/djdocs/slog"
	"github.com/fwojciec/djdocs/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database backing the sqlite cache, when selected.
	DB *sqlite.DB

	// Fetcher used for sitemap and page requests.
	Fetcher djdocs.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	var err error
	if m.Fetcher != nil {
		err = m.Fetcher.Close()
	}
	if m.DB != nil {
		if dbErr := m.DB.Close(); err == nil {
			err = dbErr
		}
	}
	return err
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("djdocs"),
		kong.Description("Browse the Django documentation from the terminal"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'djdocs --help' to see available commands")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	version, err := djdocs.ParseVersion(cli.DocsVersion)
	if err != nil {
		return err
	}
	deps.Version = version

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cache, err := m.openCache(cli.Cache, cli.CachePath)
	if err != nil {
		fmt.Fprintf(stderr, "Hint: Set %s to use a different cache location\n", cacheEnv)
		return err
	}
	defer m.Close()

	if cli.Browser {
		fetcher, err := rod.NewFetcher(
			rod.WithFetchTimeout(cli.Timeout),
			rod.WithManagerOptions(rod.WithBrowserBin(cli.Chrome), rod.WithLogger(logger)),
		)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		m.Fetcher = fetcher
	} else {
		m.Fetcher = djhttp.NewFetcher(djhttp.WithTimeout(cli.Timeout))
	}

	// The sitemap is XML and never needs a browser.
	var sitemapFetcher djdocs.Fetcher = djhttp.NewFetcher(djhttp.WithTimeout(cli.Timeout))
	pageFetcher := m.Fetcher
	if cli.Verbose {
		sitemapFetcher = djslog.NewLoggingFetcher(sitemapFetcher, logger)
		pageFetcher = djslog.NewLoggingFetcher(pageFetcher, logger)
		cache = djslog.NewLoggingCache(cache, logger)
	}

	var sitemaps djdocs.SitemapReader = djhttp.NewSitemapReader(sitemapFetcher)
	var pages djdocs.PageFetcher = goquery.NewPageFetcher(pageFetcher, htmltomarkdown.NewConverter())
	if cli.Verbose {
		sitemaps = djslog.NewLoggingSitemapReader(sitemaps, logger)
		pages = djslog.NewLoggingPageFetcher(pages, logger)
	}

	deps.Library = &crawl.Library{
		Cache:  cache,
		Logger: logger,
		Builder: &crawl.Builder{
			Sitemaps: sitemaps,
			Pages:    pages,
			Logger:   logger,
		},
	}

	return kongCtx.Run(deps)
}

// openCache opens the cache backend named kind at path, or at the default
// location for kind when path is empty.
func (m *Main) openCache(kind, path string) (djdocs.Cache, error) {
	switch kind {
	case cacheFS:
		if path == "" {
			path = defaultCachePath(cacheFS)
		}
		return fs.NewCache(path), nil
	case cacheSQLite, "":
		if path == "" {
			path = defaultCachePath(cacheSQLite)
		}
		m.DB = sqlite.NewDB(path)
		if err := m.DB.Open(); err != nil {
			m.DB = nil
			return nil, fmt.Errorf("failed to open cache database at %q: %w", path, err)
		}
		return sqlite.NewCache(m.DB), nil
	default:
		return nil, djdocs.Errorf(djdocs.EINVALID, "unknown cache backend %q", kind)
	}
}

const (
	cacheSQLite = "sqlite"
	cacheFS     = "fs"
	cacheEnv    = "DJDOCS_CACHE"
)

func defaultCachePath(kind string) string {
	name := "cache.db"
	if kind == cacheFS {
		name = "cache"
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	return filepath.Join(home, ".djdocs", name)
}
