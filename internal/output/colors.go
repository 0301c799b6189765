package output

import (
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// levelColors maps log levels to ANSI colors for the console prefix
var levelColors = map[slog.Level]lipgloss.Color{
	slog.LevelDebug: lipgloss.Color("8"),
	slog.LevelInfo:  lipgloss.Color("12"),
	slog.LevelWarn:  lipgloss.Color("3"),
	slog.LevelError: lipgloss.Color("1"),
}

// isTerminal reports whether w is a terminal (including Cygwin/MSYS ptys)
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// newRenderer returns a lipgloss renderer for w. Anything that is not a terminal
// gets the Ascii profile so redirected diagnostics stay free of escape codes.
func newRenderer(w io.Writer) *lipgloss.Renderer {
	renderer := lipgloss.NewRenderer(w)
	if !isTerminal(w) || os.Getenv("NO_COLOR") != "" {
		renderer.SetColorProfile(termenv.Ascii)
	}
	return renderer
}

// levelPrefix renders the "LEVEL" part of a console line
func levelPrefix(renderer *lipgloss.Renderer, level slog.Level) string {
	style := renderer.NewStyle().Bold(true)
	if color, ok := levelColors[level]; ok {
		style = style.Foreground(color)
	}
	return style.Render(level.String())
}
