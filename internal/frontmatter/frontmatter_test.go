package frontmatter

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantFM   string
		wantBody string
		hasFM    bool
	}{
		{"no frontmatter", "# Title\n", "", "# Title\n", false},
		{"frontmatter", "---\ntitle: X\n---\n# Title\n", "title: X\n", "# Title\n", true},
		{"empty frontmatter", "---\n---\nbody\n", "", "body\n", true},
		{"crlf", "---\r\ntitle: X\r\n---\r\nbody", "title: X\r\n", "body", true},
		{"closing at eof", "---\ntitle: X\n---", "title: X\n", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm, body, err := Split([]byte(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.wantBody, string(body))
			if tt.hasFM {
				require.NotNil(t, fm)
				assert.Equal(t, tt.wantFM, string(fm))
			} else {
				assert.Nil(t, fm)
			}
		})
	}
}

func TestSplit_Unclosed(t *testing.T) {
	_, _, err := Split([]byte("---\ntitle: X\n# no end\n"))
	assert.True(t, errors.Is(err, ErrMissingClosingDelimiter))
}

func TestParse_Outline(t *testing.T) {
	tests := []struct {
		name string
		fm   string
		want *Levels
	}{
		{"absent", "title: A", nil},
		{"single", "outline: 3", &Levels{Min: 3, Max: 3}},
		{"range", "outline: [2, 4]", &Levels{Min: 2, Max: 4}},
		{"deep", "outline: deep", &Levels{Min: 2, Max: 6}},
		{"disabled", "outline: false", &Levels{Disabled: true}},
		{"object", "outline:\n  level: [2, 3]", &Levels{Min: 2, Max: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, body, err := Parse([]byte("---\n" + tt.fm + "\n---\n# Body\n"))
			require.NoError(t, err)
			assert.Equal(t, "# Body\n", string(body))
			assert.Equal(t, tt.want, page.Outline)
		})
	}
}

func TestParse_InvalidOutline(t *testing.T) {
	_, _, err := Parse([]byte("---\noutline: [1, 2, 3]\n---\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "two integers")
}

func TestLevelsJSON(t *testing.T) {
	cases := map[string]Levels{
		`false`:            {Disabled: true},
		`"deep"`:           Deep,
		`3`:                {Min: 3, Max: 3},
		`[2, 4]`:           {Min: 2, Max: 4},
		`{"level": [2,3]}`: {Min: 2, Max: 3},
	}
	for in, want := range cases {
		var got Levels
		require.NoError(t, json.Unmarshal([]byte(in), &got), in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{`true`, `"shallow"`, `[1]`, `["a", 2]`} {
		var got Levels
		assert.Error(t, json.Unmarshal([]byte(bad), &got), bad)
	}
}

func TestLevelsRoundTrip(t *testing.T) {
	for _, l := range []Levels{{Disabled: true}, {Min: 2, Max: 2}, {Min: 2, Max: 3}} {
		data, err := json.Marshal(l)
		require.NoError(t, err)
		var back Levels
		require.NoError(t, json.Unmarshal(data, &back))
		assert.Equal(t, l, back)

		y, err := yaml.Marshal(l)
		require.NoError(t, err)
		var fromYAML Levels
		require.NoError(t, yaml.Unmarshal(y, &fromYAML))
		assert.Equal(t, l, fromYAML)
	}
}
