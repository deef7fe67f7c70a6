package sidebar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", "/"},
		{"/", "/"},
		{"//", "/"},
		{"/index", "/"},
		{"/guide", "/guide"},
		{"/guide/", "/guide"},
		{"/guide/index", "/guide"},
		{"/guide/index/", "/guide"},
		{"/guide#section", "/guide"},
		{"/guide/#section", "/guide"},
		{"/guide?x=1", "/guide"},
		{"guide/setup", "/guide/setup"},
		{"#top", "/"},
		{"/guide/indexing", "/guide/indexing"},
		{"/reindex", "/reindex"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := NormalizePath(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, NormalizePath(got), "normalization must be idempotent")
		})
	}
}

func TestIsExternal(t *testing.T) {
	assert.True(t, IsExternal("https://github.com/org/repo"))
	assert.True(t, IsExternal("//cdn.example.com/x.js"))
	assert.True(t, IsExternal("mailto:docs@example.com"))
	assert.False(t, IsExternal("/guide/getting-started"))
	assert.False(t, IsExternal("/guide/a://b"))
	assert.False(t, IsExternal("#anchor"))
}

func TestFragment(t *testing.T) {
	assert.Equal(t, "install", Fragment("/guide/setup#install"))
	assert.Equal(t, "", Fragment("/guide/setup"))
}
