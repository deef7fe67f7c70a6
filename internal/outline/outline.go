// Package outline extracts the headings of a markdown page and the anchor ids the
// rendering engine gives them, so in-page links can be checked without rendering.
package outline

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Heading is one markdown heading.
type Heading struct {
	Level  int
	Text   string
	Anchor string
}

// Range is an inclusive heading level range.
type Range struct {
	Min, Max int
}

// Contains reports whether level lies in the range.
func (r Range) Contains(level int) bool {
	return level >= r.Min && level <= r.Max
}

var md = goldmark.New(goldmark.WithParserOptions(parser.WithAttribute()))

// Extract returns the headings of body (frontmatter already removed) in document
// order. An explicit `{#id}` attribute wins over the generated slug.
func Extract(body []byte) []Heading {
	root := md.Parser().Parse(text.NewReader(body))
	slugs := NewSlugger()

	var out []Heading
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		h, ok := n.(*gmast.Heading)
		if !ok {
			return gmast.WalkContinue, nil
		}
		label := strings.TrimSpace(plainText(h, body))
		var anchor string
		if id, ok := h.AttributeString("id"); ok {
			if b, ok := id.([]byte); ok {
				anchor = slugs.Reserve(string(b))
			}
		}
		if anchor == "" {
			anchor = slugs.Slug(label)
		}
		out = append(out, Heading{Level: h.Level, Text: label, Anchor: anchor})
		return gmast.WalkSkipChildren, nil
	})
	return out
}

// Anchors returns the set of anchors of headings whose level lies in r.
func Anchors(headings []Heading, r Range) map[string]bool {
	set := make(map[string]bool, len(headings))
	for _, h := range headings {
		if r.Contains(h.Level) {
			set[h.Anchor] = true
		}
	}
	return set
}

func plainText(n gmast.Node, source []byte) string {
	var buf bytes.Buffer
	var walk func(gmast.Node)
	walk = func(n gmast.Node) {
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			switch v := c.(type) {
			case *gmast.Text:
				buf.Write(v.Segment.Value(source))
				if v.SoftLineBreak() || v.HardLineBreak() {
					buf.WriteByte(' ')
				}
			case *gmast.String:
				buf.Write(v.Value)
			default:
				walk(c)
			}
		}
	}
	walk(n)
	return buf.String()
}
