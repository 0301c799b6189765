package github

import (
	"context"

	"prlog.dev/git-pull-requests/internal/pullrequest"
)

// Logger receives lookup failures
type Logger interface {
	Warn(format string, args ...any)
	Debug(format string, args ...any)
}

// FillEmptyTitles returns a copy of infos where records without a name carry the
// pull request title from GitHub. Records that already have a name are untouched,
// and a failed lookup leaves the name empty after logging a warning.
func FillEmptyTitles(ctx context.Context, client Client, infos []pullrequest.PullRequestInfo, log Logger) []pullrequest.PullRequestInfo {
	filled := make([]pullrequest.PullRequestInfo, len(infos))
	copy(filled, infos)

	for i, info := range filled {
		if info.Name != "" {
			continue
		}

		title, err := client.GetPullRequestTitle(ctx, int(info.ID))
		if err != nil {
			log.Warn("Cannot fetch title for pull request #%d: %v", info.ID, err)
			continue
		}

		log.Debug("Fetched title for pull request #%d", info.ID)
		filled[i].Name = title
	}

	return filled
}
