package sidebar

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable_Validation(t *testing.T) {
	root := tree("root")
	tests := []struct {
		name    string
		entries []Entry
		wantErr error
	}{
		{"missing catch-all", []Entry{{Prefix: "/guide", Tree: root}}, ErrMissingCatchAll},
		{"no entries", nil, ErrMissingCatchAll},
		{"duplicate prefix", []Entry{{Prefix: "/", Tree: root}, {Prefix: "/a", Tree: tree("x")}, {Prefix: "/a", Tree: tree("y")}}, ErrDuplicatePrefix},
		{"duplicate after normalization", []Entry{{Prefix: "/", Tree: root}, {Prefix: "/a/", Tree: tree("x")}, {Prefix: "/a", Tree: tree("y")}}, ErrDuplicatePrefix},
		{"two catch-alls", []Entry{{Prefix: "/", Tree: root}, {Prefix: "/index", Tree: tree("y")}}, ErrDuplicatePrefix},
		{"empty prefix", []Entry{{Prefix: "/", Tree: root}, {Prefix: "", Tree: tree("x")}}, ErrEmptyPrefix},
		{"nil tree", []Entry{{Prefix: "/", Tree: nil}}, ErrNilTree},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := NewTable(tt.entries...)
			require.Error(t, err)
			assert.Nil(t, table)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestNewTable_DuplicateErrorNamesEntries(t *testing.T) {
	_, err := NewTable(Entry{Prefix: "/", Tree: tree("r")}, Entry{Prefix: "/a", Tree: tree("x")}, Entry{Prefix: "/a", Tree: tree("y")})
	require.Error(t, err)
	assert.Equal(t, `duplicate prefix "/a" (entries 1 and 2)`, err.Error())
}

func TestMustTable_Panics(t *testing.T) {
	assert.Panics(t, func() { MustTable(Entry{Prefix: "/x", Tree: tree("x")}) })
}

func TestTable_EntriesPreserveOrder(t *testing.T) {
	a, b, c := tree("a"), tree("b"), tree("c")
	table := MustTable(Entry{Prefix: "/b/", Tree: b}, Entry{Prefix: "/", Tree: a}, Entry{Prefix: "/c", Tree: c})

	entries := table.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, []string{"/b", "/", "/c"}, []string{entries[0].Prefix, entries[1].Prefix, entries[2].Prefix})
	assert.Same(t, b, entries[0].Tree)
	assert.Equal(t, 3, table.Len())

	entries[0] = Entry{Prefix: "/mutated", Tree: c}
	assert.Equal(t, "/b", table.Entries()[0].Prefix, "Entries returns a copy")
}

func TestTable_Links(t *testing.T) {
	table := MustTable(Entry{Prefix: "/", Tree: tree("root", "/", "/about")}, Entry{Prefix: "/guide", Tree: tree("g", "/guide/a")})
	links := table.Links()
	require.Len(t, links, 3)
	assert.Equal(t, "/guide/a", links[2].Link)
}
