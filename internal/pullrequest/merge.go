package pullrequest

import (
	"prlog.dev/git-pull-requests/internal/git"
)

// IsMerge reports whether a commit with the given parent count is a merge commit.
// Only two-parent commits count; roots, regular commits and octopus merges do not.
func IsMerge(numParents int) bool {
	return numParents == 2
}

// Extract parses every merge commit in commits, preserving their order.
// Non-merge commits are dropped without a result.
func Extract(commits []git.Commit) []Result {
	results := make([]Result, 0, len(commits))
	for _, c := range commits {
		if !IsMerge(c.NumParents) {
			continue
		}

		info, err := Parse(c.Hash, c.Message, c.HasMessage)
		results = append(results, Result{Info: info, Err: err})
	}

	return results
}
