// Package changelog decides which parsed pull requests make it into the output.
package changelog

import (
	prerrors "prlog.dev/git-pull-requests/internal/errors"
	"prlog.dev/git-pull-requests/internal/git"
	"prlog.dev/git-pull-requests/internal/pullrequest"
)

// Logger receives diagnostics produced while collecting
type Logger interface {
	Warn(format string, args ...any)
}

// Collect separates successful records from extraction failures.
//
// Every failure is logged as a warning. Once all results have been seen:
//   - without failures, every record is returned in input order;
//   - with failures and skipInvalid unset, no records are returned and the
//     error is errors.ErrUnparsableCommits;
//   - with failures and skipInvalid set, the successful records are returned.
func Collect(results []pullrequest.Result, skipInvalid bool, log Logger) ([]pullrequest.PullRequestInfo, error) {
	infos := make([]pullrequest.PullRequestInfo, 0, len(results))
	anyErrors := false

	for _, r := range results {
		if r.Err != nil {
			anyErrors = true
			log.Warn("Error parsing commit: %v", r.Err)
			continue
		}
		infos = append(infos, r.Info)
	}

	if !anyErrors {
		return infos, nil
	}

	if !skipInvalid {
		return nil, prerrors.ErrUnparsableCommits
	}

	log.Warn("Some commits couldn't be parsed, skipping them")
	return infos, nil
}

// FromCommits runs classification, extraction and collection over commits
func FromCommits(commits []git.Commit, skipInvalid bool, log Logger) ([]pullrequest.PullRequestInfo, error) {
	return Collect(pullrequest.Extract(commits), skipInvalid, log)
}
