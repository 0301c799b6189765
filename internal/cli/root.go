// Package cli wires the command line interface to the changelog pipeline.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"prlog.dev/git-pull-requests/internal/config"
	"prlog.dev/git-pull-requests/internal/output"
)

// rootOptions holds the parsed command line flags
type rootOptions struct {
	skipInvalid  bool
	repoName     string
	format       config.OutputFormat
	omitAuthor   bool
	githubTitles bool
	logFile      string
}

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	opts := &rootOptions{format: config.FormatMarkdown}

	rootCmd := &cobra.Command{
		Use:   "git-pull-requests [flags] <commit-range>",
		Short: "List the pull requests merged in a range of git history",
		Long: `List the pull requests merged in a range of git history.

Every merge commit whose header reads "Merge pull request #<id> from <author>/<branch>"
becomes one markdown list item; its commit body is used as the pull request title.

Examples:
  git-pull-requests v1.0.0..v1.1.0
  git-pull-requests --repo-name myorg/myrepo --omit-author v1.0.0..HEAD
  git-pull-requests --skip-invalid main..release

Repository defaults can be stored in git config:
  git config pull-requests.repoName myrepo
  git config pull-requests.omitAuthor true`,
		Version:      fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Flags and arguments are valid from here on; report errors through splog only
			cmd.SilenceErrors = true

			logFile := opts.logFile
			if logFile == "" {
				logFile = output.GetLogFilePath()
			}

			splog, err := output.NewSplogWithConfig(cmd.ErrOrStderr(), logFile)
			if err != nil {
				splog = output.NewSplog(cmd.ErrOrStderr())
				splog.Warn("Cannot open log file %s: %v", logFile, err)
			}
			defer func() { _ = splog.Close() }()

			if err := runPullRequests(cmd, args[0], opts, splog); err != nil {
				splog.Error("%v", err)
				return err
			}
			return nil
		},
	}

	flags := rootCmd.Flags()
	flags.BoolVar(&opts.skipInvalid, "skip-invalid", false, "Skip invalid merge commits")
	flags.StringVar(&opts.repoName, "repo-name", "", "Set repository name to be used in output")
	flags.Var(&opts.format, "format", "Set output format (markdown)")
	flags.BoolVar(&opts.omitAuthor, "omit-author", false, "Do not print commit author names")
	flags.BoolVar(&opts.githubTitles, "github-titles", false, "Fetch titles from GitHub for pull requests with an empty commit body")
	flags.StringVar(&opts.logFile, "log-file", "", "Also write diagnostics to this file (env "+output.EnvLogFile+")")

	return rootCmd
}
