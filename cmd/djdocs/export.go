package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/djdocs"
	"github.com/fwojciec/djdocs/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	pages, err := loadPages(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", djdocs.ErrorMessage(err))
		return err
	}

	dir, err := filepath.Abs(c.Dir)
	if err != nil {
		return err
	}
	exporter := fs.NewExporter(filepath.Dir(dir), filepath.Base(dir))

	for _, p := range pages {
		if err := exporter.Save(deps.Ctx, p); err != nil {
			_ = exporter.Abort()
			fmt.Fprintf(deps.Stderr, "error: export %s: %s\n", p.URL, djdocs.ErrorMessage(err))
			return err
		}
	}
	if err := exporter.Commit(); err != nil {
		_ = exporter.Abort()
		fmt.Fprintf(deps.Stderr, "error: %s\n", commitMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d pages to %s\n", len(pages), exporter.Dir())
	return nil
}

// commitMessage keeps the path in a conflict message and falls back to the
// raw error for filesystem failures.
func commitMessage(err error) string {
	if djdocs.ErrorCode(err) == djdocs.ECONFLICT {
		return djdocs.ErrorMessage(err)
	}
	return err.Error()
}
