package tui

import (
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// NewRenderer returns a function that renders markdown using glamour.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	)
	if err != nil {
		return func(markdown string) (string, error) {
			return markdown, nil
		}
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// NewOutputStyler returns a renderer that highlights output commands
// when stdout is a terminal, and passes them through otherwise.
func NewOutputStyler() func(string) (string, error) {
	if !IsTerminal(os.Stdout) {
		return func(s string) (string, error) { return s, nil }
	}
	out := termenv.NewOutput(os.Stdout)
	color := out.Color("#a78bfa")
	return func(s string) (string, error) {
		return out.String(s).Foreground(color).Bold().String(), nil
	}
}
