package git

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	derrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

func commitFile(t *testing.T, repo *git.Repository, root, name, content string, when time.Time) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o750))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add(name)
	require.NoError(t, err)
	sig := &object.Signature{Name: "Docs", Email: "docs@example.com", When: when}
	_, err = wt.Commit("update "+name, &git.CommitOptions{Author: sig, Committer: sig})
	require.NoError(t, err)
}

func TestLastUpdated(t *testing.T) {
	root := t.TempDir()
	repo, err := git.PlainInit(root, false)
	require.NoError(t, err)

	t1 := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	t2 := t1.Add(24 * time.Hour)
	t3 := t2.Add(24 * time.Hour)
	commitFile(t, repo, root, "docs/index.md", "# Home\n", t1)
	commitFile(t, repo, root, "docs/guide/intro.md", "# Intro\n", t2)
	commitFile(t, repo, root, "docs/index.md", "# Home v2\n", t3)

	h, err := Open(filepath.Join(root, "docs"))
	require.NoError(t, err)

	got, err := h.LastUpdated(context.Background(), []string{"docs/index.md", "docs/guide/intro.md", "docs/missing.md"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got["docs/index.md"].Equal(t3))
	assert.True(t, got["docs/guide/intro.md"].Equal(t2))

	empty, err := h.LastUpdated(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestRel(t *testing.T) {
	root := t.TempDir()
	_, err := git.PlainInit(root, false)
	require.NoError(t, err)
	h, err := Open(root)
	require.NoError(t, err)

	rel, err := h.Rel(filepath.Join(root, "docs", "a.md"))
	require.NoError(t, err)
	assert.Equal(t, "docs/a.md", rel)

	_, err = h.Rel(filepath.Dir(root))
	assert.Error(t, err)
}

func TestOpenNotARepository(t *testing.T) {
	_, err := Open(t.TempDir())
	require.Error(t, err)
	assert.Equal(t, derrors.CategoryGit, derrors.GetCategory(err))
}
