package config

import (
	"fmt"

	prerrors "prlog.dev/git-pull-requests/internal/errors"
)

// OutputFormat selects how pull request records are rendered
type OutputFormat int

const (
	// FormatMarkdown renders each record as a markdown list item
	FormatMarkdown OutputFormat = iota
)

var formatNames = map[OutputFormat]string{
	FormatMarkdown: "markdown",
}

// ParseOutputFormat converts a format name into an OutputFormat
func ParseOutputFormat(name string) (OutputFormat, error) {
	for f, n := range formatNames {
		if n == name {
			return f, nil
		}
	}
	return FormatMarkdown, fmt.Errorf("%w: %s", prerrors.ErrUnknownFormat, name)
}

// String returns the flag spelling of the format
func (f OutputFormat) String() string {
	if n, ok := formatNames[f]; ok {
		return n
	}
	return fmt.Sprintf("OutputFormat(%d)", int(f))
}

// Set implements pflag.Value
func (f *OutputFormat) Set(name string) error {
	parsed, err := ParseOutputFormat(name)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Type implements pflag.Value
func (f *OutputFormat) Type() string {
	return "format"
}
