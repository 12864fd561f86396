// Package fs provides file-based storage for the documentation corpus: a
// djdocs.Cache kept in a directory and a markdown exporter.
package fs

import (
	"net/url"
	"path"
	"strings"

	"github.com/fwojciec/djdocs"
)

// URLToPath converts a documentation URL to a relative file path.
// Example: https://docs.djangoproject.com/en/dev/topics/db/ → en/dev/topics/db/index.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", djdocs.Errorf(djdocs.EINVALID, "invalid URL %q: %v", rawURL, err)
	}

	p := u.Path
	if p == "" || p == "/" {
		return "index.md", nil
	}

	for _, seg := range strings.Split(p, "/") {
		if seg == ".." {
			return "", djdocs.Errorf(djdocs.EINVALID, "path traversal in URL %q", rawURL)
		}
	}

	p = strings.TrimPrefix(path.Clean(p), "/")
	if strings.HasSuffix(u.Path, "/") {
		return p + "/index.md", nil
	}
	return p + ".md", nil
}
