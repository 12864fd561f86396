package djdocs

import (
	"strings"
)

// Pilcrow is the heading self-link marker the documentation appends to titles.
const Pilcrow = "¶"

// StripPilcrows removes pilcrow markers and surrounding whitespace.
func StripPilcrows(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, Pilcrow, ""))
}

// FormatPage renders a page as markdown with its title as a heading.
// Parent, Previous, and Next links follow the content when present.
func FormatPage(p *Page) string {
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(p.Title)
	b.WriteString("\n\n")
	b.WriteString(p.Content)

	links := []struct {
		label string
		page  *Page
	}{
		{"Parent", p.Parent},
		{"Previous", p.Previous},
		{"Next", p.Next},
	}

	var meta []string
	for _, l := range links {
		if l.page == nil {
			continue
		}
		meta = append(meta, l.label+": ["+l.page.Title+"]("+l.page.URL+")")
	}
	if len(meta) > 0 {
		b.WriteString("\n\n---\n\n")
		b.WriteString(strings.Join(meta, "\n"))
	}
	b.WriteString("\n")

	return b.String()
}
