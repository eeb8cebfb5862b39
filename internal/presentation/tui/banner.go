package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the stenomods banner.
func PrintBanner(w io.Writer) {
	out := termenv.NewOutput(w)
	lines := []struct {
		text  string
		color string
	}{
		{"      _                                      _     ", "#818cf8"},
		{"  ___| |_ ___ _ __   ___  _ __ ___   ___   __| |___ ", "#a78bfa"},
		{" / __| __/ _ \\ '_ \\ / _ \\| '_ ` _ \\ / _ \\ / _` / __|", "#c084fc"},
		{" \\__ \\ ||  __/ | | | (_) | | | | | | (_) | (_| \\__ \\", "#e879f9"},
		{" |___/\\__\\___|_| |_|\\___/|_| |_| |_|\\___/ \\__,_|___/", "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w)
}
