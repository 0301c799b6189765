// Package errors provides sentinel errors and custom error types for git-pull-requests.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrInvalidMergeCommit indicates that a merge commit could not be parsed into pull request info
	ErrInvalidMergeCommit = errors.New("invalid merge commit")

	// ErrUnparsableCommits indicates that the batch was aborted because some commits failed to parse
	ErrUnparsableCommits = errors.New("some commits couldn't be parsed, aborting")

	// ErrInvalidRange indicates that a commit range expression could not be understood
	ErrInvalidRange = errors.New("invalid commit range")

	// ErrUnknownFormat indicates an unrecognized output format
	ErrUnknownFormat = errors.New("unknown format")

	// ErrNoGitHubToken indicates that no GitHub token is available
	ErrNoGitHubToken = errors.New("no GitHub token")
)

// ExtractionError describes why a single merge commit could not be turned into pull request info.
// It is a transient value: logged by the caller and then discarded.
type ExtractionError struct {
	CommitID string
	Reason   string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("merge commit %s: %s", e.CommitID, e.Reason)
}

// Is returns true if the target error is ErrInvalidMergeCommit
func (e *ExtractionError) Is(target error) bool {
	return target == ErrInvalidMergeCommit
}

// NewExtractionError creates a new ExtractionError
func NewExtractionError(commitID string, format string, args ...any) *ExtractionError {
	return &ExtractionError{
		CommitID: commitID,
		Reason:   fmt.Sprintf(format, args...),
	}
}

// RangeError represents an error resolving one side of a commit range
type RangeError struct {
	Range    string
	Revision string
	Err      error
}

func (e *RangeError) Error() string {
	if e.Revision != "" {
		return fmt.Sprintf("error pushing range %s: cannot resolve %q: %v", e.Range, e.Revision, e.Err)
	}
	return fmt.Sprintf("error pushing range %s: %v", e.Range, e.Err)
}

func (e *RangeError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrInvalidRange
func (e *RangeError) Is(target error) bool {
	return target == ErrInvalidRange
}

// NewRangeError creates a new RangeError
func NewRangeError(rangeExpr, revision string, err error) *RangeError {
	return &RangeError{
		Range:    rangeExpr,
		Revision: revision,
		Err:      err,
	}
}
