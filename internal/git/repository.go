package git

import (
	"fmt"
	"os"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Repository wraps a go-git repository
type Repository struct {
	*gogit.Repository
	path string
}

// NewRepository wraps an already opened go-git repository.
// The path is informational and may be empty for in-memory repositories.
func NewRepository(repo *gogit.Repository, path string) *Repository {
	return &Repository{
		Repository: repo,
		path:       path,
	}
}

// DiscoverRepository opens the repository containing the current working directory
func DiscoverRepository() (*Repository, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("cannot get current directory: %w", err)
	}

	return OpenRepository(wd)
}

// OpenRepository opens the git repository containing path, searching parent directories
func OpenRepository(path string) (*Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := gogit.PlainOpenWithOptions(absPath, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot open repository: %w", err)
	}

	return NewRepository(repo, absPath), nil
}

// GetRepoRoot returns the path the repository was opened from
func (r *Repository) GetRepoRoot() string {
	return r.path
}

// resolveRefHash resolves a ref (branch name, SHA, or ref path) to a hash
func (r *Repository) resolveRefHash(ref string) (plumbing.Hash, error) {
	// 1. Try as a full reference name
	if rf, err := r.Reference(plumbing.ReferenceName(ref), true); err == nil {
		return rf.Hash(), nil
	}

	// 2. Try as a local branch
	if rf, err := r.Reference(plumbing.NewBranchReferenceName(ref), true); err == nil {
		return rf.Hash(), nil
	}

	// 3. Try as a remote branch
	if rf, err := r.Reference(plumbing.NewRemoteReferenceName("origin", ref), true); err == nil {
		return rf.Hash(), nil
	}

	// 4. Try as a tag (annotated tags are peeled to their commit)
	if rf, err := r.Reference(plumbing.NewTagReferenceName(ref), true); err == nil {
		if tag, err := r.TagObject(rf.Hash()); err == nil {
			if commit, err := tag.Commit(); err == nil {
				return commit.Hash, nil
			}
		}
		return rf.Hash(), nil
	}

	// 5. Try ResolveRevision (handles SHAs, short SHAs, and expressions like HEAD~1)
	hash, err := r.ResolveRevision(plumbing.Revision(ref))
	if err == nil {
		return *hash, nil
	}

	return plumbing.ZeroHash, fmt.Errorf("reference not found: %w", err)
}
