package changelog_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"prlog.dev/git-pull-requests/internal/changelog"
	prerrors "prlog.dev/git-pull-requests/internal/errors"
	"prlog.dev/git-pull-requests/internal/git"
	"prlog.dev/git-pull-requests/internal/pullrequest"
)

type recordingLogger struct {
	warnings []string
}

func (l *recordingLogger) Warn(format string, args ...any) {
	l.warnings = append(l.warnings, fmt.Sprintf(format, args...))
}

func ok(id uint32, name string) pullrequest.Result {
	return pullrequest.Result{Info: pullrequest.PullRequestInfo{ID: id, Author: "a", Branch: "b", Name: name}}
}

func failed(commitID string) pullrequest.Result {
	return pullrequest.Result{Err: prerrors.NewExtractionError(commitID, "empty message")}
}

func TestCollect(t *testing.T) {
	t.Run("returns every record in order when nothing failed", func(t *testing.T) {
		log := &recordingLogger{}
		infos, err := changelog.Collect([]pullrequest.Result{ok(3, "three"), ok(1, "one"), ok(2, "two")}, false, log)
		require.NoError(t, err)
		require.Equal(t, []uint32{3, 1, 2}, ids(infos))
		require.Empty(t, log.warnings)
	})

	t.Run("empty input is not an error", func(t *testing.T) {
		infos, err := changelog.Collect(nil, false, &recordingLogger{})
		require.NoError(t, err)
		require.Empty(t, infos)
	})

	t.Run("aborts when a commit failed and skipping is off", func(t *testing.T) {
		log := &recordingLogger{}
		infos, err := changelog.Collect([]pullrequest.Result{ok(2, "two"), failed("deadbeef"), ok(1, "one")}, false, log)
		require.ErrorIs(t, err, prerrors.ErrUnparsableCommits)
		require.Nil(t, infos)
		require.Len(t, log.warnings, 1)
		require.Contains(t, log.warnings[0], "Error parsing commit: merge commit deadbeef: empty message")
	})

	t.Run("logs every failure before deciding", func(t *testing.T) {
		log := &recordingLogger{}
		_, err := changelog.Collect([]pullrequest.Result{failed("c1"), ok(1, "one"), failed("c2")}, false, log)
		require.Error(t, err)
		require.Len(t, log.warnings, 2)
		require.Contains(t, log.warnings[0], "c1")
		require.Contains(t, log.warnings[1], "c2")
	})

	t.Run("skips failed commits when allowed", func(t *testing.T) {
		log := &recordingLogger{}
		infos, err := changelog.Collect([]pullrequest.Result{ok(2, "two"), failed("c1"), ok(1, "one")}, true, log)
		require.NoError(t, err)
		require.Equal(t, []uint32{2, 1}, ids(infos))
		require.Equal(t, "Some commits couldn't be parsed, skipping them", log.warnings[len(log.warnings)-1])
	})

	t.Run("skipping everything leaves an empty list", func(t *testing.T) {
		infos, err := changelog.Collect([]pullrequest.Result{failed("c1")}, true, &recordingLogger{})
		require.NoError(t, err)
		require.Empty(t, infos)
	})
}

func TestFromCommits(t *testing.T) {
	commits := []git.Commit{
		{Hash: "m2", Message: "Merge pull request #2 from bob/b\n\nSecond", HasMessage: true, NumParents: 2},
		{Hash: "p1", Message: "not a merge", HasMessage: true, NumParents: 1},
		{Hash: "m1", Message: "Merge pull request #1 from alice/a\n\nFirst", HasMessage: true, NumParents: 2},
	}

	t.Run("runs the whole pipeline", func(t *testing.T) {
		infos, err := changelog.FromCommits(commits, false, &recordingLogger{})
		require.NoError(t, err)
		require.Equal(t, []uint32{2, 1}, ids(infos))
	})

	t.Run("is idempotent", func(t *testing.T) {
		first, err := changelog.FromCommits(commits, false, &recordingLogger{})
		require.NoError(t, err)
		second, err := changelog.FromCommits(commits, false, &recordingLogger{})
		require.NoError(t, err)
		require.Equal(t, first, second)
	})
}

func ids(infos []pullrequest.PullRequestInfo) []uint32 {
	out := make([]uint32, 0, len(infos))
	for _, info := range infos {
		out = append(out, info.ID)
	}
	return out
}
