package outline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Getting Started", "getting-started"},
		{"What is `docsite`?", "what-is-docsite"},
		{"  Trailing --- dashes  ", "trailing-dashes"},
		{"Crème Brûlée", "creme-brulee"},
		{"2. Install", "_2-install"},
		{"API: config.load()", "api-config-load"},
		{"快速开始", "快速开始"},
		{"ﬁle options", "file-options"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestSlugger_Unique(t *testing.T) {
	s := NewSlugger()
	assert.Equal(t, "usage", s.Slug("Usage"))
	assert.Equal(t, "usage-1", s.Slug("Usage"))
	assert.Equal(t, "usage-2", s.Slug("usage"))
	assert.Equal(t, "usage-1-1", s.Reserve("usage-1"))
}

const page = `# Guide

Intro text.

## Getting Started

### Install with *npm*

## Getting Started

## Configure {#custom-config}

#### Deep ` + "`flag`" + `
`

func TestExtract(t *testing.T) {
	hs := Extract([]byte(page))
	require.Len(t, hs, 6)

	assert.Equal(t, Heading{Level: 1, Text: "Guide", Anchor: "guide"}, hs[0])
	assert.Equal(t, Heading{Level: 2, Text: "Getting Started", Anchor: "getting-started"}, hs[1])
	assert.Equal(t, Heading{Level: 3, Text: "Install with npm", Anchor: "install-with-npm"}, hs[2])
	assert.Equal(t, "getting-started-1", hs[3].Anchor)
	assert.Equal(t, Heading{Level: 2, Text: "Configure", Anchor: "custom-config"}, hs[4])
	assert.Equal(t, Heading{Level: 4, Text: "Deep flag", Anchor: "deep-flag"}, hs[5])
}

func TestAnchors(t *testing.T) {
	hs := Extract([]byte(page))
	set := Anchors(hs, Range{Min: 2, Max: 3})
	assert.True(t, set["getting-started"])
	assert.True(t, set["install-with-npm"])
	assert.True(t, set["custom-config"])
	assert.False(t, set["guide"], "level 1 is outside the range")
	assert.False(t, set["deep-flag"], "level 4 is outside the range")
}
