// Package git reads page history from the repository that holds the docs.
//
// It is read-only: it opens an existing work tree and walks commits to find
// when each page last changed, which feeds the "last updated" stamp.
package git
