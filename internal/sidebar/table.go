package sidebar

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCatchAll is returned by NewTable when no entry has prefix "/".
	ErrMissingCatchAll = errors.New("no catch-all entry with prefix \"/\"")
	// ErrDuplicatePrefix is returned by NewTable when two entries normalize to the same prefix.
	ErrDuplicatePrefix = errors.New("duplicate prefix")
	// ErrEmptyPrefix is returned by NewTable for an entry without a prefix.
	ErrEmptyPrefix = errors.New("empty prefix")
	// ErrNilTree is returned by NewTable for an entry without a tree.
	ErrNilTree = errors.New("entry has no tree")
)

// Entry binds a path prefix to a sidebar tree.
type Entry struct {
	Prefix string
	Tree   *Tree
}

// Table is a validated, immutable route table. Build it with NewTable.
type Table struct {
	entries  []Entry
	catchAll *Tree
}

// NewTable validates entries and returns a Table. Prefixes are normalized with
// NormalizePath; declaration order is kept and breaks ties between equally long
// prefixes.
func NewTable(entries ...Entry) (*Table, error) {
	t := &Table{entries: make([]Entry, 0, len(entries))}
	seen := make(map[string]int, len(entries))

	for i, e := range entries {
		if e.Prefix == "" {
			return nil, fmt.Errorf("entry %d: %w", i, ErrEmptyPrefix)
		}
		if e.Tree == nil {
			return nil, fmt.Errorf("entry %d (%q): %w", i, e.Prefix, ErrNilTree)
		}
		prefix := NormalizePath(e.Prefix)
		if first, dup := seen[prefix]; dup {
			return nil, fmt.Errorf("%w %q (entries %d and %d)", ErrDuplicatePrefix, prefix, first, i)
		}
		seen[prefix] = i
		if prefix == Root {
			t.catchAll = e.Tree
		}
		t.entries = append(t.entries, Entry{Prefix: prefix, Tree: e.Tree})
	}

	if t.catchAll == nil {
		return nil, ErrMissingCatchAll
	}
	return t, nil
}

// MustTable is NewTable for statically declared tables; it panics on error.
func MustTable(entries ...Entry) *Table {
	t, err := NewTable(entries...)
	if err != nil {
		panic(fmt.Sprintf("sidebar: %v", err))
	}
	return t
}

// Entries returns the normalized entries in declaration order. Trees are shared.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of entries including the catch-all.
func (t *Table) Len() int { return len(t.entries) }

// Links returns every item of every tree, entry by entry in declaration order.
func (t *Table) Links() []Item {
	var out []Item
	for _, e := range t.entries {
		out = append(out, e.Tree.Items()...)
	}
	return out
}
