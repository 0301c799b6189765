// Package testhelpers provides testing utilities for git-pull-requests,
// including go-git repository builders, an on-disk scene and a GitHub API mock.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Must is a generic helper function that panics if err is not nil,
// otherwise returns the value. This is useful for test setup code
// where errors are not expected and should halt execution immediately.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// Lines splits output into lines, dropping the final empty line left by a trailing newline
func Lines(out string) []string {
	out = strings.TrimSuffix(strings.ReplaceAll(out, "\r\n", "\n"), "\n")
	if out == "" {
		return []string{}
	}
	return strings.Split(out, "\n")
}

// ExpectLines asserts that out consists of exactly the expected lines
func ExpectLines(t *testing.T, out string, expected ...string) {
	t.Helper()
	if expected == nil {
		expected = []string{}
	}
	require.Equal(t, expected, Lines(out))
}
