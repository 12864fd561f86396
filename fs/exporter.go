package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/djdocs"
	"gopkg.in/yaml.v3"
)

// Exporter writes pages as markdown files with YAML frontmatter.
// Pages are saved to a temporary directory, then moved into place on Commit.
type Exporter struct {
	baseDir string
	name    string
}

// NewExporter creates a new Exporter.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewExporter(baseDir, name string) *Exporter {
	return &Exporter{
		baseDir: baseDir,
		name:    name,
	}
}

// Dir returns the directory pages end up in after Commit.
func (e *Exporter) Dir() string {
	return filepath.Join(e.baseDir, e.name)
}

func (e *Exporter) tempDir() string {
	return filepath.Join(e.baseDir, e.name+".tmp")
}

// Save writes page into the temporary directory.
func (e *Exporter) Save(ctx context.Context, page *djdocs.Page) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	relPath, err := URLToPath(page.URL)
	if err != nil {
		return err
	}
	fullPath := filepath.Join(e.tempDir(), filepath.FromSlash(relPath))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	content, err := FormatPage(page)
	if err != nil {
		return err
	}
	return os.WriteFile(fullPath, []byte(content), 0644)
}

// MarkerFile is written into every export. Commit only replaces an
// existing non-empty directory that carries it.
const MarkerFile = ".djdocs-export"

// Commit moves the saved pages into Dir. An existing export is swapped out
// and removed once the new one is in place. Any other non-empty directory
// is left untouched and Commit returns ECONFLICT.
func (e *Exporter) Commit() error {
	if err := os.MkdirAll(e.tempDir(), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(e.tempDir(), MarkerFile), nil, 0644); err != nil {
		return err
	}

	replace, err := e.checkTarget()
	if err != nil {
		return err
	}
	if !replace {
		return os.Rename(e.tempDir(), e.Dir())
	}

	old, err := os.MkdirTemp(e.baseDir, e.name+".old-")
	if err != nil {
		return err
	}
	if err := os.Remove(old); err != nil {
		return err
	}
	if err := os.Rename(e.Dir(), old); err != nil {
		return err
	}
	if err := os.Rename(e.tempDir(), e.Dir()); err != nil {
		_ = os.Rename(old, e.Dir())
		return err
	}
	return os.RemoveAll(old)
}

// checkTarget reports whether Dir exists and must be swapped out.
func (e *Exporter) checkTarget() (bool, error) {
	info, err := os.Stat(e.Dir())
	if os.IsNotExist(err) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	if !info.IsDir() {
		return false, djdocs.Errorf(djdocs.ECONFLICT, "%s exists and is not a directory", e.Dir())
	}

	entries, err := os.ReadDir(e.Dir())
	if err != nil {
		return false, err
	}
	if len(entries) == 0 {
		return true, nil
	}
	if _, err := os.Stat(filepath.Join(e.Dir(), MarkerFile)); err != nil {
		if os.IsNotExist(err) {
			return false, djdocs.Errorf(djdocs.ECONFLICT, "%s is not empty and was not created by djdocs export", e.Dir())
		}
		return false, err
	}
	return true, nil
}

// Abort discards the saved pages.
func (e *Exporter) Abort() error {
	return os.RemoveAll(e.tempDir())
}

// Frontmatter is the YAML header of an exported page.
type Frontmatter struct {
	Source   string `yaml:"source"`
	Title    string `yaml:"title"`
	Parent   string `yaml:"parent,omitempty"`
	Previous string `yaml:"previous,omitempty"`
	Next     string `yaml:"next,omitempty"`
}

// FormatPage formats a page with YAML frontmatter.
func FormatPage(page *djdocs.Page) (string, error) {
	fm := Frontmatter{
		Source:   page.URL,
		Title:    page.Title,
		Parent:   urlOf(page.Parent),
		Previous: urlOf(page.Previous),
		Next:     urlOf(page.Next),
	}
	header, err := yaml.Marshal(fm)
	if err != nil {
		return "", djdocs.Errorf(djdocs.EINTERNAL, "failed to encode frontmatter: %v", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(header)
	b.WriteString("---\n\n")
	b.WriteString(page.Content)
	return b.String(), nil
}

// ParseFrontmatter splits an exported page into its frontmatter and body.
func ParseFrontmatter(content string) (*Frontmatter, string, error) {
	rest, ok := strings.CutPrefix(content, "---\n")
	if !ok {
		return nil, "", djdocs.Errorf(djdocs.EINVALID, "missing frontmatter")
	}
	header, body, ok := strings.Cut(rest, "\n---\n")
	if !ok {
		return nil, "", djdocs.Errorf(djdocs.EINVALID, "unterminated frontmatter")
	}

	var fm Frontmatter
	if err := yaml.Unmarshal([]byte(header), &fm); err != nil {
		return nil, "", djdocs.Errorf(djdocs.EINVALID, "invalid frontmatter: %v", err)
	}
	return &fm, strings.TrimPrefix(body, "\n"), nil
}

func urlOf(p *djdocs.Page) string {
	if p == nil {
		return ""
	}
	return p.URL
}
