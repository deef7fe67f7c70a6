package sidebar

import "strings"

// Match describes how a path was resolved.
type Match struct {
	Path     string // normalized request path
	Prefix   string // prefix of the winning entry
	Tree     *Tree
	CatchAll bool
}

// Resolve returns the sidebar tree for path. It never returns nil.
func (t *Table) Resolve(path string) *Tree {
	return t.Match(path).Tree
}

// Match resolves path and reports which entry won.
func (t *Table) Match(path string) Match {
	norm := NormalizePath(path)
	best := -1
	for i, e := range t.entries {
		if e.Prefix == Root || !strings.HasPrefix(norm, e.Prefix) {
			continue
		}
		// strict comparison keeps the earlier entry on equal length
		if best < 0 || len(e.Prefix) > len(t.entries[best].Prefix) {
			best = i
		}
	}
	if best < 0 {
		return Match{Path: norm, Prefix: Root, Tree: t.catchAll, CatchAll: true}
	}
	return Match{Path: norm, Prefix: t.entries[best].Prefix, Tree: t.entries[best].Tree}
}

// Pager holds the neighbours of a page inside its sidebar tree.
type Pager struct {
	Prev *Item `json:"prev,omitempty"`
	Next *Item `json:"next,omitempty"`
}

// Pager returns the previous and next pages around path. Both are nil when the
// page is not listed in t. Links to other parts of the same page and external
// links are not pages.
func (t *Tree) Pager(path string) Pager {
	gi, ii, ok := t.Find(path)
	if !ok {
		return Pager{}
	}
	want := NormalizePath(t.Groups[gi].Items[ii].Link)
	pages := t.Pages()
	for i, p := range pages {
		if NormalizePath(p.Link) != want {
			continue
		}
		var pg Pager
		if i > 0 {
			prev := pages[i-1]
			pg.Prev = &prev
		}
		if i+1 < len(pages) {
			next := pages[i+1]
			pg.Next = &next
		}
		return pg
	}
	return Pager{}
}
