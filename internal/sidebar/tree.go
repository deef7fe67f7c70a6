package sidebar

// Item is a single sidebar link. Link may carry an in-page "#fragment".
type Item struct {
	Text string `json:"text" yaml:"text"`
	Link string `json:"link" yaml:"link"`
}

// Group is a labelled run of items.
type Group struct {
	Text      string `json:"text" yaml:"text"`
	Collapsed bool   `json:"collapsed,omitempty" yaml:"collapsed,omitempty"`
	Items     []Item `json:"items" yaml:"items"`
}

// Tree is the grouped set of links rendered beside a page. Group and item order
// is presentation order.
type Tree struct {
	Groups []Group `json:"groups" yaml:"groups"`
}

// Items returns every item of the tree in presentation order.
func (t *Tree) Items() []Item {
	if t == nil {
		return nil
	}
	var out []Item
	for _, g := range t.Groups {
		out = append(out, g.Items...)
	}
	return out
}

// Pages returns the internal items of the tree in presentation order, keeping
// only the first item for each normalized page path.
func (t *Tree) Pages() []Item {
	seen := make(map[string]bool)
	var out []Item
	for _, it := range t.Items() {
		if it.Link == "" || IsExternal(it.Link) {
			continue
		}
		key := NormalizePath(it.Link)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, it)
	}
	return out
}

// Find returns the group and item indexes of the first item whose link is the
// same page as path.
func (t *Tree) Find(path string) (group, item int, ok bool) {
	if t == nil {
		return 0, 0, false
	}
	want := NormalizePath(path)
	for gi, g := range t.Groups {
		for ii, it := range g.Items {
			if it.Link != "" && !IsExternal(it.Link) && NormalizePath(it.Link) == want {
				return gi, ii, true
			}
		}
	}
	return 0, 0, false
}
