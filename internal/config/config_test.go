package config_test

import (
	"testing"

	gitconfig "github.com/go-git/go-git/v5/plumbing/format/config"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"prlog.dev/git-pull-requests/internal/config"
	prerrors "prlog.dev/git-pull-requests/internal/errors"
)

func TestParseOutputFormat(t *testing.T) {
	f, err := config.ParseOutputFormat("markdown")
	require.NoError(t, err)
	require.Equal(t, config.FormatMarkdown, f)
	require.Equal(t, "markdown", f.String())

	_, err = config.ParseOutputFormat("html")
	require.ErrorIs(t, err, prerrors.ErrUnknownFormat)
	require.Contains(t, err.Error(), "unknown format: html")
}

func TestOutputFormatFlag(t *testing.T) {
	t.Run("defaults to markdown", func(t *testing.T) {
		f := config.FormatMarkdown
		flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
		flags.Var(&f, "format", "")
		require.NoError(t, flags.Parse(nil))
		require.Equal(t, config.FormatMarkdown, f)
		require.Equal(t, "markdown", flags.Lookup("format").DefValue)
	})

	t.Run("rejects unknown values at parse time", func(t *testing.T) {
		f := config.FormatMarkdown
		flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
		flags.Var(&f, "format", "")
		err := flags.Parse([]string{"--format", "html"})
		require.Error(t, err)
		require.Contains(t, err.Error(), "unknown format: html")
	})
}

func TestReadRepoDefaults(t *testing.T) {
	t.Run("nil section means no defaults", func(t *testing.T) {
		defaults, err := config.ReadRepoDefaults(nil)
		require.NoError(t, err)
		require.Equal(t, &config.RepoDefaults{}, defaults)
	})

	t.Run("reads every option", func(t *testing.T) {
		section := gitconfig.New().Section(config.SectionName)
		section.SetOption("repoName", "myrepo")
		section.SetOption("format", "markdown")
		section.SetOption("omitAuthor", "true")
		section.SetOption("skipInvalid", "false")

		defaults, err := config.ReadRepoDefaults(section)
		require.NoError(t, err)
		require.Equal(t, "myrepo", *defaults.RepoName)
		require.Equal(t, config.FormatMarkdown, *defaults.OutputFormat)
		require.True(t, *defaults.OmitAuthor)
		require.False(t, *defaults.SkipInvalid)
	})

	t.Run("unset options stay nil", func(t *testing.T) {
		section := gitconfig.New().Section(config.SectionName)
		section.SetOption("repoName", "only")

		defaults, err := config.ReadRepoDefaults(section)
		require.NoError(t, err)
		require.Nil(t, defaults.OutputFormat)
		require.Nil(t, defaults.OmitAuthor)
		require.Nil(t, defaults.SkipInvalid)
	})

	t.Run("rejects an unknown format", func(t *testing.T) {
		section := gitconfig.New().Section(config.SectionName)
		section.SetOption("format", "rst")

		_, err := config.ReadRepoDefaults(section)
		require.ErrorIs(t, err, prerrors.ErrUnknownFormat)
	})

	t.Run("rejects a bad boolean", func(t *testing.T) {
		section := gitconfig.New().Section(config.SectionName)
		section.SetOption("omitAuthor", "sometimes")

		_, err := config.ReadRepoDefaults(section)
		require.Error(t, err)
		require.Contains(t, err.Error(), "pull-requests.omitAuthor")
	})
}
