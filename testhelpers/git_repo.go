package testhelpers

import (
	"fmt"
	"testing"
	"time"

	"github.com/go-git/go-billy/v5/memfs"
	gogit "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/memory"
	"github.com/stretchr/testify/require"
)

// DefaultBranch is the branch HEAD points at in test repositories
const DefaultBranch = "main"

// GitRepo builds commit graphs directly in a go-git object store.
// Commits get strictly increasing committer times, one minute apart.
type GitRepo struct {
	Repo      *gogit.Repository
	t         *testing.T
	clock     time.Time
	emptyTree plumbing.Hash
}

// NewMemoryGitRepo creates an empty repository backed by memory storage and a memfs worktree.
func NewMemoryGitRepo(t *testing.T) *GitRepo {
	t.Helper()
	repo, err := gogit.Init(memory.NewStorage(), memfs.New())
	require.NoError(t, err)
	return newGitRepo(t, repo)
}

// NewDiskGitRepo creates an empty non-bare repository in dir.
func NewDiskGitRepo(t *testing.T, dir string) *GitRepo {
	t.Helper()
	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)
	return newGitRepo(t, repo)
}

func newGitRepo(t *testing.T, repo *gogit.Repository) *GitRepo {
	t.Helper()
	r := &GitRepo{
		Repo:  repo,
		t:     t,
		clock: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}

	tree := &object.Tree{}
	obj := repo.Storer.NewEncodedObject()
	require.NoError(t, tree.Encode(obj))
	r.emptyTree = Must(repo.Storer.SetEncodedObject(obj))

	head := plumbing.NewSymbolicReference(plumbing.HEAD, plumbing.NewBranchReferenceName(DefaultBranch))
	require.NoError(t, repo.Storer.SetReference(head))

	return r
}

// Commit stores a commit with the given message and parents and returns its hash.
func (r *GitRepo) Commit(message string, parents ...plumbing.Hash) plumbing.Hash {
	r.t.Helper()
	r.clock = r.clock.Add(time.Minute)
	return r.CommitAt(r.clock, message, parents...)
}

// CommitAt stores a commit with an explicit committer time.
func (r *GitRepo) CommitAt(when time.Time, message string, parents ...plumbing.Hash) plumbing.Hash {
	r.t.Helper()
	sig := object.Signature{Name: "Test User", Email: "test@example.com", When: when}
	commit := &object.Commit{
		Author:       sig,
		Committer:    sig,
		Message:      message,
		TreeHash:     r.emptyTree,
		ParentHashes: parents,
	}

	obj := r.Repo.Storer.NewEncodedObject()
	require.NoError(r.t, commit.Encode(obj))
	return Must(r.Repo.Storer.SetEncodedObject(obj))
}

// MergePR stores a two-parent commit with a GitHub style merge message.
func (r *GitRepo) MergePR(id int, author, branch, title string, mainline, topic plumbing.Hash) plumbing.Hash {
	r.t.Helper()
	return r.Commit(MergeMessage(id, author, branch, title), mainline, topic)
}

// MergeMessage returns the message GitHub writes when merging a pull request.
func MergeMessage(id int, author, branch, title string) string {
	return fmt.Sprintf("Merge pull request #%d from %s/%s\n\n%s\n", id, author, branch, title)
}

// SetBranch points refs/heads/<name> at hash.
func (r *GitRepo) SetBranch(name string, hash plumbing.Hash) {
	r.t.Helper()
	ref := plumbing.NewHashReference(plumbing.NewBranchReferenceName(name), hash)
	require.NoError(r.t, r.Repo.Storer.SetReference(ref))
}

// Tag creates a lightweight tag.
func (r *GitRepo) Tag(name string, hash plumbing.Hash) {
	r.t.Helper()
	ref := plumbing.NewHashReference(plumbing.NewTagReferenceName(name), hash)
	require.NoError(r.t, r.Repo.Storer.SetReference(ref))
}

// SetConfigOption sets <section>.<key> in the repository's local config.
func (r *GitRepo) SetConfigOption(section, key, value string) {
	r.t.Helper()
	cfg, err := r.Repo.Config()
	require.NoError(r.t, err)
	cfg.Raw.Section(section).SetOption(key, value)
	require.NoError(r.t, r.Repo.SetConfig(cfg))
}

// AddRemote configures a remote with a single URL.
func (r *GitRepo) AddRemote(name, url string) {
	r.t.Helper()
	_, err := r.Repo.CreateRemote(&gitconfig.RemoteConfig{Name: name, URLs: []string{url}})
	require.NoError(r.t, err)
}
