package djdocs

import (
	"strconv"
	"strings"
	"unicode"
)

// Heading is a markdown heading of a page's content.
type Heading struct {
	Level  int    `json:"level"`
	Title  string `json:"title"`
	Anchor string `json:"anchor"`
}

// AssignAnchors sets a URL-safe anchor on each heading from its title.
// Repeated anchors get the next numeric suffix not already issued, so
// every anchor in headings is unique.
func AssignAnchors(headings []Heading) {
	issued := make(map[string]bool, len(headings))
	next := make(map[string]int)
	for i := range headings {
		base := anchorFor(headings[i].Title)
		anchor := base
		for n := next[base]; issued[anchor]; n++ {
			anchor = base + "-" + strconv.Itoa(n+1)
			next[base] = n + 1
		}
		issued[anchor] = true
		headings[i].Anchor = anchor
	}
}

// FormatOutline renders headings as an indented list.
func FormatOutline(headings []Heading) string {
	var b strings.Builder
	for _, h := range headings {
		b.WriteString(strings.Repeat("  ", h.Level-1))
		b.WriteString("- ")
		b.WriteString(h.Title)
		b.WriteString(" (#")
		b.WriteString(h.Anchor)
		b.WriteString(")\n")
	}
	return b.String()
}

// anchorFor lowercases title, joins words with hyphens, and drops everything
// that is not a letter or digit.
func anchorFor(title string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			prevHyphen = false
		} else if unicode.IsSpace(r) || r == '-' || r == '_' {
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}
