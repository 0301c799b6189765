// Package pullrequest turns merge commits into pull request records.
package pullrequest

// PullRequestInfo describes one merged pull request, as recorded in its merge commit
type PullRequestInfo struct {
	// ID is the pull request number
	ID uint32
	// Author is the owner or organization segment of the source branch
	Author string
	// Branch is the source branch name; it may itself contain slashes
	Branch string
	// Name is the pull request title, taken from the merge commit body
	Name string
}

// Result is the outcome of parsing one merge commit.
// Exactly one of Info and Err is meaningful: Info is the zero value when Err is set.
type Result struct {
	Info PullRequestInfo
	Err  error
}
