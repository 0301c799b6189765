package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"prlog.dev/git-pull-requests/internal/changelog"
	"prlog.dev/git-pull-requests/internal/config"
	"prlog.dev/git-pull-requests/internal/git"
	"prlog.dev/git-pull-requests/internal/github"
	"prlog.dev/git-pull-requests/internal/output"
	"prlog.dev/git-pull-requests/internal/pullrequest"
	"prlog.dev/git-pull-requests/internal/runtime"
)

// EnvGitHubAPIURL overrides the GitHub API base URL used by --github-titles
const EnvGitHubAPIURL = "GITHUB_API_URL"

// runPullRequests resolves the repository and range, runs the pipeline and
// prints the result. Nothing is written to stdout unless the whole batch succeeds.
func runPullRequests(cmd *cobra.Command, rangeExpr string, opts *rootOptions, splog *output.Splog) error {
	ctx, err := runtime.GetContext(splog)
	if err != nil {
		return err
	}

	cfg, skipInvalid := resolveOptions(cmd.Flags(), opts, ctx.Defaults)

	commits, err := ctx.Repo.CommitsInRange(rangeExpr)
	if err != nil {
		return err
	}
	splog.Debug("Found %d commits in %s", len(commits), rangeExpr)

	infos, err := changelog.FromCommits(commits, skipInvalid, splog)
	if err != nil {
		return err
	}

	if opts.githubTitles {
		infos = fillGitHubTitles(cmd.Context(), ctx.Repo, infos, splog)
	}

	if err := output.WriteLines(cmd.OutOrStdout(), infos, cfg); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// resolveOptions merges repository defaults with flags; flags given explicitly win
func resolveOptions(flags *pflag.FlagSet, opts *rootOptions, defaults *config.RepoDefaults) (config.Config, bool) {
	cfg := config.Config{
		OutputFormat: opts.format,
		RepoName:     opts.repoName,
		OmitAuthor:   opts.omitAuthor,
	}
	skipInvalid := opts.skipInvalid

	if !flags.Changed("format") && defaults.OutputFormat != nil {
		cfg.OutputFormat = *defaults.OutputFormat
	}
	if !flags.Changed("repo-name") && defaults.RepoName != nil {
		cfg.RepoName = *defaults.RepoName
	}
	if !flags.Changed("omit-author") && defaults.OmitAuthor != nil {
		cfg.OmitAuthor = *defaults.OmitAuthor
	}
	if !flags.Changed("skip-invalid") && defaults.SkipInvalid != nil {
		skipInvalid = *defaults.SkipInvalid
	}

	return cfg, skipInvalid
}

// fillGitHubTitles looks up titles for records without a commit body.
// Any setup problem is a warning; the records are then printed as they are.
func fillGitHubTitles(ctx context.Context, repo *git.Repository, infos []pullrequest.PullRequestInfo, splog *output.Splog) []pullrequest.PullRequestInfo {
	client, err := newGitHubClient(ctx, repo)
	if err != nil {
		splog.Warn("Cannot fetch pull request titles: %v", err)
		return infos
	}

	return github.FillEmptyTitles(ctx, client, infos, splog)
}

func newGitHubClient(ctx context.Context, repo *git.Repository) (github.Client, error) {
	remoteURL, err := repo.RemoteURL(git.DefaultRemote)
	if err != nil {
		return nil, err
	}

	info, err := github.ParseGitHubRemoteURL(remoteURL)
	if err != nil {
		return nil, err
	}

	token, err := github.GetGitHubToken()
	if err != nil {
		return nil, err
	}

	if apiURL := os.Getenv(EnvGitHubAPIURL); apiURL != "" {
		return github.NewClientWithBaseURL(ctx, apiURL, info.Owner, info.Repo, token)
	}

	return github.NewClient(ctx, info, token)
}
