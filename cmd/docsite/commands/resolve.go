package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"git.home.luguber.info/inful/docsite/internal/server/responses"
	"git.home.luguber.info/inful/docsite/internal/sidebar"
)

// ResolveCmd implements the 'resolve' command.
type ResolveCmd struct {
	Paths  []string `arg:"" name:"path" help:"Request paths to resolve"`
	Format string   `short:"f" default:"text" enum:"text,json" help:"Output format (text or json)"`
}

func (c *ResolveCmd) Run(g *Global, root *CLI) error {
	s, _, err := root.loadSite()
	if err != nil {
		return err
	}

	results := make([]responses.SidebarResponse, 0, len(c.Paths))
	for _, p := range c.Paths {
		m := s.SidebarMatch(p)
		pager := s.PagerFor(p)
		results = append(results, responses.SidebarResponse{
			Path:       p,
			Normalized: m.Path,
			Prefix:     m.Prefix,
			CatchAll:   m.CatchAll,
			Sidebar:    m.Tree,
			Prev:       pager.Prev,
			Next:       pager.Next,
		})
	}

	if c.Format == "json" {
		enc := json.NewEncoder(g.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}
	for i := range results {
		printResolution(g.Out, &results[i])
	}
	return nil
}

func printResolution(w io.Writer, r *responses.SidebarResponse) {
	prefix := r.Prefix
	if r.CatchAll {
		prefix += " (catch-all)"
	}
	_, _ = fmt.Fprintf(w, "%s\n  prefix: %s\n", r.Path, prefix)

	cg, ci, listed := r.Sidebar.Find(r.Normalized)
	for gi, grp := range r.Sidebar.Groups {
		_, _ = fmt.Fprintf(w, "  %s\n", grp.Text)
		for ii, it := range grp.Items {
			marker := " "
			if listed && gi == cg && ii == ci {
				marker = "*"
			}
			_, _ = fmt.Fprintf(w, "   %s %s  %s\n", marker, it.Text, it.Link)
		}
	}
	_, _ = fmt.Fprintf(w, "  prev: %s\n  next: %s\n", pagerLabel(r.Prev), pagerLabel(r.Next))
}

func pagerLabel(it *sidebar.Item) string {
	if it == nil {
		return "-"
	}
	return fmt.Sprintf("%s (%s)", it.Text, it.Link)
}
