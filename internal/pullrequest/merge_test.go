package pullrequest_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"prlog.dev/git-pull-requests/internal/git"
	"prlog.dev/git-pull-requests/internal/pullrequest"
)

func TestIsMerge(t *testing.T) {
	require.False(t, pullrequest.IsMerge(0))
	require.False(t, pullrequest.IsMerge(1))
	require.True(t, pullrequest.IsMerge(2))
	require.False(t, pullrequest.IsMerge(3))
	require.False(t, pullrequest.IsMerge(8))
}

func TestExtract(t *testing.T) {
	mergeMsg := "Merge pull request #1 from alice/one\n\nOne"

	t.Run("drops non-merge commits regardless of message", func(t *testing.T) {
		commits := []git.Commit{
			{Hash: "root", Message: mergeMsg, HasMessage: true, NumParents: 0},
			{Hash: "plain", Message: mergeMsg, HasMessage: true, NumParents: 1},
			{Hash: "octopus", Message: mergeMsg, HasMessage: true, NumParents: 3},
			{Hash: "broken", Message: "", HasMessage: false, NumParents: 1},
		}

		require.Empty(t, pullrequest.Extract(commits))
	})

	t.Run("keeps merge commits in input order, failures included", func(t *testing.T) {
		commits := []git.Commit{
			{Hash: "c3", Message: "Merge pull request #3 from carol/three\n\nThree", HasMessage: true, NumParents: 2},
			{Hash: "c2", Message: "fix typo", HasMessage: true, NumParents: 1},
			{Hash: "c1", Message: "Merge branch 'x'", HasMessage: true, NumParents: 2},
			{Hash: "c0", Message: mergeMsg, HasMessage: true, NumParents: 2},
		}

		results := pullrequest.Extract(commits)
		require.Len(t, results, 3)

		require.NoError(t, results[0].Err)
		require.Equal(t, uint32(3), results[0].Info.ID)

		require.Error(t, results[1].Err)
		require.Contains(t, results[1].Err.Error(), "c1")
		require.Equal(t, pullrequest.PullRequestInfo{}, results[1].Info)

		require.NoError(t, results[2].Err)
		require.Equal(t, "One", results[2].Info.Name)
	})
}
