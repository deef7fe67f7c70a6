// Package head holds the tags injected into every page's <head> and renders them
// as an HTML fragment.
package head

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Attr is a single attribute. Attribute order is preserved from the configuration.
type Attr struct {
	Key string
	Val string
}

// Tag is one element: name, ordered attributes and optional text content.
type Tag struct {
	Name    string
	Attrs   []Attr
	Content string
}

// Tags is the ordered head list.
type Tags []Tag

var allowed = map[atom.Atom]bool{
	atom.Meta:     true,
	atom.Link:     true,
	atom.Script:   true,
	atom.Style:    true,
	atom.Base:     true,
	atom.Noscript: true,
	atom.Title:    true,
}

var void = map[atom.Atom]bool{
	atom.Meta: true,
	atom.Link: true,
	atom.Base: true,
}

// Attr returns the value of key and whether it is set.
func (t Tag) Attr(key string) (string, bool) {
	for _, a := range t.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// Validate checks that every tag may appear in <head>.
func (ts Tags) Validate() error {
	var errs []error
	for i, t := range ts {
		a := atom.Lookup([]byte(strings.ToLower(t.Name)))
		switch {
		case t.Name == "":
			errs = append(errs, fmt.Errorf("head[%d]: tag name is empty", i))
		case !allowed[a]:
			errs = append(errs, fmt.Errorf("head[%d]: <%s> is not allowed in head", i, t.Name))
		case void[a] && t.Content != "":
			errs = append(errs, fmt.Errorf("head[%d]: <%s> cannot have content", i, t.Name))
		}
		for _, attr := range t.Attrs {
			if attr.Key == "" || strings.ContainsAny(attr.Key, " \t\n\"'=<>/") {
				errs = append(errs, fmt.Errorf("head[%d]: invalid attribute name %q", i, attr.Key))
			}
		}
	}
	return errors.Join(errs...)
}

// Render returns the tags as an HTML fragment, one element per line.
func (ts Tags) Render() (string, error) {
	var buf bytes.Buffer
	for i, t := range ts {
		name := strings.ToLower(t.Name)
		n := &html.Node{
			Type:     html.ElementNode,
			Data:     name,
			DataAtom: atom.Lookup([]byte(name)),
		}
		for _, a := range t.Attrs {
			n.Attr = append(n.Attr, html.Attribute{Key: a.Key, Val: a.Val})
		}
		if t.Content != "" {
			n.AppendChild(&html.Node{Type: html.TextNode, Data: t.Content})
		}
		if err := html.Render(&buf, n); err != nil {
			return "", fmt.Errorf("render head[%d]: %w", i, err)
		}
		buf.WriteByte('\n')
	}
	return buf.String(), nil
}
