package config

import (
	"fmt"
	"strconv"

	gitconfig "github.com/go-git/go-git/v5/plumbing/format/config"
)

// SectionName is the git config section holding repository defaults
const SectionName = "pull-requests"

// Config holds presentation options. It is built once per run and never mutated afterwards.
type Config struct {
	OutputFormat OutputFormat
	// RepoName is printed in front of each pull request number; empty prints nothing
	RepoName   string
	OmitAuthor bool
}

// RepoDefaults are the optional per-repository defaults read from git config.
// A nil field means the key is not set.
type RepoDefaults struct {
	RepoName     *string
	OutputFormat *OutputFormat
	OmitAuthor   *bool
	SkipInvalid  *bool
}

// ReadRepoDefaults reads repository defaults from a git config section such as:
//
//	[pull-requests]
//		repoName = myrepo
//		format = markdown
//		omitAuthor = true
//		skipInvalid = false
func ReadRepoDefaults(section *gitconfig.Section) (*RepoDefaults, error) {
	defaults := &RepoDefaults{}
	if section == nil {
		return defaults, nil
	}

	if section.HasOption("repoName") {
		name := section.Option("repoName")
		defaults.RepoName = &name
	}

	if section.HasOption("format") {
		f, err := ParseOutputFormat(section.Option("format"))
		if err != nil {
			return nil, fmt.Errorf("invalid %s.format: %w", SectionName, err)
		}
		defaults.OutputFormat = &f
	}

	omit, err := boolOption(section, "omitAuthor")
	if err != nil {
		return nil, err
	}
	defaults.OmitAuthor = omit

	skip, err := boolOption(section, "skipInvalid")
	if err != nil {
		return nil, err
	}
	defaults.SkipInvalid = skip

	return defaults, nil
}

func boolOption(section *gitconfig.Section, key string) (*bool, error) {
	if !section.HasOption(key) {
		return nil, nil
	}

	raw := section.Option(key)
	// A bare key ("omitAuthor" with no value) means true in git config
	if raw == "" {
		v := true
		return &v, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid value for %s.%s: %s (must be 'true' or 'false')", SectionName, key, raw)
	}
	return &v, nil
}
