// Package output renders pull request records and writes diagnostics.
package output

import (
	"io"
	"runtime"
	"strconv"
	"strings"

	"prlog.dev/git-pull-requests/internal/config"
	"prlog.dev/git-pull-requests/internal/pullrequest"
)

// renderFunc renders one record as a single line without a line terminator
type renderFunc func(info pullrequest.PullRequestInfo, cfg config.Config) string

var renderers = map[config.OutputFormat]renderFunc{
	config.FormatMarkdown: renderMarkdown,
}

// LineSeparator is the platform line terminator appended after every rendered line
var LineSeparator = lineSeparator(runtime.GOOS)

func lineSeparator(goos string) string {
	if goos == "windows" {
		return "\r\n"
	}
	return "\n"
}

// Render formats a single pull request record according to cfg.OutputFormat.
// Unknown formats fall back to markdown; config.ParseOutputFormat never produces one.
func Render(info pullrequest.PullRequestInfo, cfg config.Config) string {
	render, ok := renderers[cfg.OutputFormat]
	if !ok {
		render = renderMarkdown
	}
	return render(info, cfg)
}

// renderMarkdown produces " * [repo]#<id> [(by <author>) ]- <name>"
func renderMarkdown(info pullrequest.PullRequestInfo, cfg config.Config) string {
	var b strings.Builder
	b.WriteString(" * ")
	b.WriteString(cfg.RepoName)
	b.WriteString("#")
	b.WriteString(strconv.FormatUint(uint64(info.ID), 10))
	b.WriteString(" ")
	if !cfg.OmitAuthor {
		b.WriteString("(by ")
		b.WriteString(info.Author)
		b.WriteString(") ")
	}
	b.WriteString("- ")
	b.WriteString(info.Name)
	return b.String()
}

// WriteLines renders every record and writes it to w, one per line
func WriteLines(w io.Writer, infos []pullrequest.PullRequestInfo, cfg config.Config) error {
	for _, info := range infos {
		if _, err := io.WriteString(w, Render(info, cfg)+LineSeparator); err != nil {
			return err
		}
	}
	return nil
}
