// Package goldmark extracts heading outlines from page markdown using the
// goldmark CommonMark parser.
package goldmark

import (
	"bytes"

	"github.com/fwojciec/djdocs"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var md = goldmark.New()

// ExtractHeadings returns the headings of markdown in document order with
// anchors assigned. Lines starting with # inside code blocks are not
// headings. Pilcrow markers are stripped from titles.
func ExtractHeadings(markdown string) []djdocs.Heading {
	if markdown == "" {
		return nil
	}

	src := []byte(markdown)
	doc := md.Parser().Parse(text.NewReader(src))

	var headings []djdocs.Heading
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		if title := djdocs.StripPilcrows(inlineText(h, src)); title != "" {
			headings = append(headings, djdocs.Heading{Level: h.Level, Title: title})
		}
		return ast.WalkSkipChildren, nil
	})

	djdocs.AssignAnchors(headings)
	return headings
}

// inlineText concatenates the text segments under n, dropping markup.
func inlineText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(src))
			if t.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(t.Value)
		default:
			buf.WriteString(inlineText(c, src))
		}
	}
	return buf.String()
}
