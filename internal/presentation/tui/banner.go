package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the scribe banner to w.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{"  ___  ___ _ __(_) |__   ___ ", "#818cf8"},
		{" / __|/ __| '__| | '_ \\ / _ \\", "#a78bfa"},
		{" \\__ \\ (__| |  | | |_) |  __/", "#c084fc"},
		{" |___/\\___|_|  |_|_.__/ \\___|", "#e879f9"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
