// Package git provides read-only access to a Git repository's history.
//
// It wraps go-git and provides a Go-friendly interface for:
//   - Repository discovery from a working directory
//   - Commit range resolution (A..B, ..B, A.., B)
//   - Commit retrieval in committer-time order
//   - Repository config and remote lookups
//
// This package should be the only place where go-git objects are handled directly;
// callers receive plain Commit values.
package git
