package git

import (
	"fmt"

	"github.com/go-git/go-git/v5/plumbing/format/config"
)

// ConfigSection returns a section of the repository's local git config.
// A missing section is returned empty rather than as an error.
func (r *Repository) ConfigSection(name string) (*config.Section, error) {
	cfg, err := r.Config()
	if err != nil {
		return nil, fmt.Errorf("failed to read git config: %w", err)
	}

	return cfg.Raw.Section(name), nil
}
