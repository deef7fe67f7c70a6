// Package linkverify checks that the internal links declared in the site
// configuration point at existing markdown pages and headings.
package linkverify

import (
	"fmt"

	"git.home.luguber.info/inful/docsite/internal/site"
)

// Link is a link target declared somewhere in the configuration.
type Link struct {
	// Source locates the declaration, e.g. `sidebar "/guide" > Basics`.
	Source string
	Text   string
	Target string
}

// CollectLinks returns every link of the navigation bar and the sidebar table
// in declaration order. The same target may appear more than once.
func CollectLinks(s *site.Site) []Link {
	var out []Link
	for _, l := range s.Nav.Links() {
		out = append(out, Link{Source: "nav", Text: l.Text, Target: l.Link})
	}
	for _, e := range s.Sidebar.Entries() {
		for _, g := range e.Tree.Groups {
			src := fmt.Sprintf("sidebar %q > %s", e.Prefix, g.Text)
			for _, it := range g.Items {
				out = append(out, Link{Source: src, Text: it.Text, Target: it.Link})
			}
		}
	}
	return out
}
