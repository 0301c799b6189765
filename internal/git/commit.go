package git

import (
	"unicode/utf8"

	"github.com/go-git/go-git/v5/plumbing/object"
)

// Commit is a read-only snapshot of the parts of a commit the changelog needs
type Commit struct {
	// Hash is the full hex object id, used in diagnostics
	Hash string
	// Message is the raw commit message
	Message string
	// HasMessage is false when the stored message is not valid UTF-8
	HasMessage bool
	// NumParents is the number of parent commits
	NumParents int
}

// newCommit converts a go-git commit object into a Commit value
func newCommit(c *object.Commit) Commit {
	valid := utf8.ValidString(c.Message)
	msg := c.Message
	if !valid {
		msg = ""
	}

	return Commit{
		Hash:       c.Hash.String(),
		Message:    msg,
		HasMessage: valid,
		NumParents: c.NumParents(),
	}
}
