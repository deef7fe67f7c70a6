package export

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docsite/internal/config"
	"git.home.luguber.info/inful/docsite/internal/site"
)

func exampleSite(t *testing.T) *site.Site {
	t.Helper()
	s, err := config.Example().Build()
	require.NoError(t, err)
	return s
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, New(exampleSite(t)), FormatJSON))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "My Project", doc["title"])

	sections := doc["sidebar"].([]any)
	require.Len(t, sections, 3)
	prefixes := make([]string, 0, len(sections))
	for _, s := range sections {
		prefixes = append(prefixes, s.(map[string]any)["prefix"].(string))
	}
	assert.Equal(t, []string{"/guide", "/reference", "/"}, prefixes)

	navItems := doc["nav"].([]any)
	assert.Equal(t, "link", navItems[0].(map[string]any)["type"])
	assert.Equal(t, "dropdown", navItems[2].(map[string]any)["type"])

	outline := doc["outline"].(map[string]any)
	assert.Equal(t, []any{2.0, 3.0}, outline["level"])
	assert.NotContains(t, doc, "lastUpdatedAt")
}

func TestWriteYAML(t *testing.T) {
	d := New(exampleSite(t))
	d.LastUpdatedAt = map[string]time.Time{"/guide/getting-started": time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, d, FormatYAML))
	out := buf.String()
	assert.Contains(t, out, "doc_footer:")
	assert.Contains(t, out, "prefix: /guide")
	assert.Contains(t, out, "/guide/getting-started: 2024-05-01T00:00:00Z")

	var back struct {
		Sidebar []Section `yaml:"sidebar"`
		Outline Outline   `yaml:"outline"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	assert.Len(t, back.Sidebar, 3)
	assert.Equal(t, [2]int{2, 3}, back.Outline.Level.Range())
}

func TestWriteUnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, New(exampleSite(t)), "toml")
	assert.Error(t, err)
}

func TestPages(t *testing.T) {
	pages := Pages(exampleSite(t))
	assert.Equal(t, []string{
		"/guide/getting-started",
		"/guide/configuration",
		"/reference/config",
		"/",
	}, pages)
}

func TestLastUpdated(t *testing.T) {
	root := t.TempDir()
	repo, err := gogit.PlainInit(root, false)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)

	when := time.Date(2024, 3, 4, 5, 6, 7, 0, time.FixedZone("CET", 3600))
	for _, f := range []string{"docs/index.md", "docs/guide/getting-started.md", "docs/reference/config/index.md"} {
		p := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o750))
		require.NoError(t, os.WriteFile(p, []byte("# x\n"), 0o600))
		_, err := wt.Add(f)
		require.NoError(t, err)
	}
	sig := &object.Signature{Name: "Docs", Email: "docs@example.com", When: when}
	_, err = wt.Commit("docs", &gogit.CommitOptions{Author: sig, Committer: sig})
	require.NoError(t, err)

	got, err := LastUpdated(context.Background(), exampleSite(t), filepath.Join(root, "docs"))
	require.NoError(t, err)

	require.Len(t, got, 3)
	for route, ts := range got {
		assert.True(t, ts.Equal(when), route)
		assert.Equal(t, time.UTC, ts.Location(), route)
	}
	_, ok := got["/guide/configuration"]
	assert.False(t, ok)
}
