package git

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// History answers "when did this file last change" for one repository.
type History struct {
	repo *git.Repository
	root string
}

// Open opens the repository containing path, searching parent directories.
func Open(path string) (*History, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, ClassifyGitError(err, "open", path)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, ClassifyGitError(err, "worktree", path)
	}
	return &History{repo: repo, root: wt.Filesystem.Root()}, nil
}

// Root returns the work tree root.
func (h *History) Root() string { return h.root }

// Rel converts a filesystem path inside the work tree to the slash-separated
// form used in commits.
func (h *History) Rel(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(h.root, abs)
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s is outside the repository %s", path, h.root)
	}
	return filepath.ToSlash(rel), nil
}

// LastUpdated returns the committer time of the newest commit touching each
// of files (repository-relative, slash-separated). Files never committed are
// absent from the result. The walk starts at HEAD and stops once every file
// has been seen.
func (h *History) LastUpdated(ctx context.Context, files []string) (map[string]time.Time, error) {
	want := make(map[string]bool, len(files))
	for _, f := range files {
		want[f] = true
	}
	out := make(map[string]time.Time, len(files))
	if len(want) == 0 {
		return out, nil
	}

	head, err := h.repo.Head()
	if err != nil {
		return nil, ClassifyGitError(err, "head", h.root)
	}
	iter, err := h.repo.Log(&git.LogOptions{From: head.Hash(), Order: git.LogOrderCommitterTime})
	if err != nil {
		return nil, ClassifyGitError(err, "log", h.root)
	}
	defer iter.Close()

	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		changed, err := changedFiles(c)
		if err != nil {
			return err
		}
		for _, name := range changed {
			if want[name] {
				if _, seen := out[name]; !seen {
					out[name] = c.Committer.When
				}
			}
		}
		if len(out) == len(want) {
			return storer.ErrStop
		}
		return nil
	})
	if err != nil && !errors.Is(err, storer.ErrStop) {
		if ctx.Err() != nil {
			return nil, err
		}
		return nil, ClassifyGitError(err, "walk", h.root)
	}
	return out, nil
}

// changedFiles lists the paths c changed relative to its first parent. A root
// commit changes every file in its tree.
func changedFiles(c *object.Commit) ([]string, error) {
	tree, err := c.Tree()
	if err != nil {
		return nil, err
	}
	if c.NumParents() == 0 {
		var names []string
		err := tree.Files().ForEach(func(f *object.File) error {
			names = append(names, f.Name)
			return nil
		})
		return names, err
	}

	parent, err := c.Parent(0)
	if err != nil {
		return nil, err
	}
	parentTree, err := parent.Tree()
	if err != nil {
		return nil, err
	}
	changes, err := object.DiffTree(parentTree, tree)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(changes))
	for _, ch := range changes {
		if ch.To.Name != "" {
			names = append(names, ch.To.Name)
		}
	}
	return names, nil
}
