package export

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/docsite/internal/git"
	"git.home.luguber.info/inful/docsite/internal/linkverify"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/sidebar"
	"git.home.luguber.info/inful/docsite/internal/site"
)

// Pages returns the normalized routes of every internal page linked from the
// sidebar table and the navigation bar, without duplicates.
func Pages(s *site.Site) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(link string) {
		if link == "" || sidebar.IsExternal(link) {
			return
		}
		p := sidebar.NormalizePath(link)
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	for _, it := range s.Sidebar.Links() {
		add(it.Link)
	}
	for _, l := range s.Nav.Links() {
		add(l.Link)
	}
	return out
}

// LastUpdated looks up the markdown file of every page under docsDir and
// returns the last commit time per route. Pages without a file or without
// history are left out.
func LastUpdated(ctx context.Context, s *site.Site, docsDir string) (map[string]time.Time, error) {
	h, err := git.Open(docsDir)
	if err != nil {
		return nil, err
	}

	docs := os.DirFS(docsDir)
	routeOf := make(map[string]string)
	var files []string
	for _, route := range Pages(s) {
		for _, c := range linkverify.Candidates(route) {
			if _, err := fs.Stat(docs, c); err != nil {
				continue
			}
			rel, err := h.Rel(filepath.Join(docsDir, filepath.FromSlash(c)))
			if err != nil {
				return nil, err
			}
			routeOf[rel] = route
			files = append(files, rel)
			break
		}
	}

	times, err := h.LastUpdated(ctx, files)
	if err != nil {
		return nil, err
	}
	out := make(map[string]time.Time, len(times))
	for file, t := range times {
		out[routeOf[file]] = t.UTC()
	}
	slog.Debug("Collected page history", logfields.Count(len(out)), slog.String("docs", docsDir))
	return out, nil
}
