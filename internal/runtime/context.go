package runtime

import (
	"prlog.dev/git-pull-requests/internal/config"
	"prlog.dev/git-pull-requests/internal/git"
	"prlog.dev/git-pull-requests/internal/output"
)

// Context provides access to the repository and output for a run
type Context struct {
	Repo     *git.Repository
	Splog    *output.Splog
	Defaults *config.RepoDefaults
}

// NewContext creates a context for an already opened repository
func NewContext(repo *git.Repository, splog *output.Splog) (*Context, error) {
	section, err := repo.ConfigSection(config.SectionName)
	if err != nil {
		return nil, err
	}

	defaults, err := config.ReadRepoDefaults(section)
	if err != nil {
		return nil, err
	}

	return &Context{
		Repo:     repo,
		Splog:    splog,
		Defaults: defaults,
	}, nil
}

// GetContext discovers the repository from the working directory and loads
// its defaults. The first failure is returned as is; nothing has been read
// from history at that point.
func GetContext(splog *output.Splog) (*Context, error) {
	repo, err := git.DiscoverRepository()
	if err != nil {
		return nil, err
	}
	splog.Debug("Using repository at %s", repo.GetRepoRoot())

	return NewContext(repo, splog)
}
