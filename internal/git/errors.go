package git

import (
	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

// ClassifyGitError wraps a go-git failure as a git-category ClassifiedError.
func ClassifyGitError(err error, op, path string) error {
	if err == nil {
		return nil
	}
	if _, ok := errors.AsClassified(err); ok {
		return err
	}
	return errors.WrapError(err, errors.CategoryGit, "git operation failed").
		WithContext("op", op).
		WithContext("path", path).
		Build()
}
