package git

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	prerrors "prlog.dev/git-pull-requests/internal/errors"
)

// CommitsInRange returns the commits selected by a range expression, newest first.
//
// Supported expressions:
//   - "A..B": commits reachable from B but not from A
//   - "..B" / "A..": the empty side defaults to HEAD
//   - "B": every commit reachable from B
//
// Commits are ordered by committer time, descending. Commits with the same
// timestamp are ordered by hash so the output is stable between runs.
func (r *Repository) CommitsInRange(rangeExpr string) ([]Commit, error) {
	from, to, err := parseRange(rangeExpr)
	if err != nil {
		return nil, err
	}

	headHash, err := r.resolveRefHash(to)
	if err != nil {
		return nil, prerrors.NewRangeError(rangeExpr, to, err)
	}

	hidden := map[plumbing.Hash]bool{}
	if from != "" {
		baseHash, err := r.resolveRefHash(from)
		if err != nil {
			return nil, prerrors.NewRangeError(rangeExpr, from, err)
		}
		hidden, err = r.ancestors(baseHash)
		if err != nil {
			return nil, prerrors.NewRangeError(rangeExpr, from, err)
		}
	}

	objects, err := r.iterateCommits(headHash, hidden)
	if err != nil {
		return nil, fmt.Errorf("failed to iterate commits: %w", err)
	}

	sort.SliceStable(objects, func(i, j int) bool {
		ti, tj := objects[i].Committer.When, objects[j].Committer.When
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return objects[i].Hash.String() < objects[j].Hash.String()
	})

	commits := make([]Commit, 0, len(objects))
	for _, c := range objects {
		commits = append(commits, newCommit(c))
	}

	return commits, nil
}

// parseRange splits a range expression into its hidden (from) and pushed (to) sides.
// from is empty when nothing should be hidden.
func parseRange(rangeExpr string) (from string, to string, err error) {
	expr := strings.TrimSpace(rangeExpr)
	if expr == "" {
		return "", "", prerrors.NewRangeError(rangeExpr, "", fmt.Errorf("%w: empty expression", prerrors.ErrInvalidRange))
	}

	if strings.Contains(expr, "...") {
		return "", "", prerrors.NewRangeError(rangeExpr, "", fmt.Errorf("%w: symmetric difference is not supported", prerrors.ErrInvalidRange))
	}

	parts := strings.SplitN(expr, "..", 2)
	if len(parts) == 1 {
		return "", parts[0], nil
	}

	from, to = parts[0], parts[1]
	if from == "" {
		from = "HEAD"
	}
	if to == "" {
		to = "HEAD"
	}

	return from, to, nil
}

// ancestors returns the set of commits reachable from hash, including hash itself
func (r *Repository) ancestors(hash plumbing.Hash) (map[plumbing.Hash]bool, error) {
	seen := map[plumbing.Hash]bool{}

	queue := []plumbing.Hash{hash}
	for len(queue) > 0 {
		h := queue[0]
		queue = queue[1:]

		if seen[h] {
			continue
		}
		seen[h] = true

		commit, err := r.CommitObject(h)
		if err != nil {
			return nil, fmt.Errorf("failed to get commit %s: %w", h, err)
		}

		for _, parentHash := range commit.ParentHashes {
			if !seen[parentHash] {
				queue = append(queue, parentHash)
			}
		}
	}

	return seen, nil
}

// iterateCommits collects commits reachable from headHash, stopping at hidden commits
func (r *Repository) iterateCommits(headHash plumbing.Hash, hidden map[plumbing.Hash]bool) ([]*object.Commit, error) {
	var commits []*object.Commit
	visited := make(map[plumbing.Hash]bool)

	queue := []plumbing.Hash{headHash}
	for len(queue) > 0 {
		hash := queue[0]
		queue = queue[1:]

		if visited[hash] || hidden[hash] {
			continue
		}
		visited[hash] = true

		commit, err := r.CommitObject(hash)
		if err != nil {
			return nil, fmt.Errorf("failed to get commit %s: %w", hash, err)
		}

		commits = append(commits, commit)

		for _, parentHash := range commit.ParentHashes {
			if !visited[parentHash] && !hidden[parentHash] {
				queue = append(queue, parentHash)
			}
		}
	}

	return commits, nil
}
