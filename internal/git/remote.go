package git

import (
	"fmt"
)

// DefaultRemote is the remote used to infer the hosting repository
const DefaultRemote = "origin"

// RemoteURL returns the first configured URL of the named remote
func (r *Repository) RemoteURL(name string) (string, error) {
	remote, err := r.Remote(name)
	if err != nil {
		return "", fmt.Errorf("failed to get remote %s: %w", name, err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("remote %s has no URL", name)
	}

	return urls[0], nil
}
