package pullrequest

import (
	"regexp"
	"strconv"
	"strings"

	prerrors "prlog.dev/git-pull-requests/internal/errors"
)

// headerPattern matches the header GitHub writes for merged pull requests.
// The author group is non-greedy so a branch like "feature/login" stays whole.
var headerPattern = regexp.MustCompile(`Merge pull request #(\d+) from (.+?)/(.+)`)

// Parse extracts pull request info from a merge commit message.
// commitID is only used to label errors. Failures are returned as *errors.ExtractionError.
func Parse(commitID, message string, hasMessage bool) (PullRequestInfo, error) {
	if !hasMessage {
		return PullRequestInfo{}, prerrors.NewExtractionError(commitID, "missing message")
	}

	header, body, ok := splitMessage(message)
	if !ok {
		return PullRequestInfo{}, prerrors.NewExtractionError(commitID, "empty message")
	}

	m := headerPattern.FindStringSubmatch(header)
	if m == nil {
		return PullRequestInfo{}, prerrors.NewExtractionError(commitID, "invalid merge commit header line: %s", header)
	}

	id, err := strconv.ParseUint(m[1], 10, 32)
	if err != nil {
		return PullRequestInfo{}, prerrors.NewExtractionError(commitID, "invalid pull request id %s: %v", m[1], err)
	}

	return PullRequestInfo{
		ID:     uint32(id),
		Author: m[2],
		Branch: m[3],
		Name:   body,
	}, nil
}

// splitMessage returns the first line of message and the trimmed remainder.
// ok is false when the message has no lines at all.
func splitMessage(message string) (header string, body string, ok bool) {
	if message == "" {
		return "", "", false
	}

	lines := strings.Split(strings.TrimSuffix(message, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines[0], strings.TrimSpace(strings.Join(lines[1:], "\n")), true
}
