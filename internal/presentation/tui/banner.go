package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the dectab banner, coloured when w supports it.
func PrintBanner(w io.Writer) {
	out := termenv.NewOutput(w)
	lines := []struct{ text, color string }{
		{"      _           _        _     ", "#818cf8"},
		{"   __| | ___  ___| |_ __ _| |__  ", "#a78bfa"},
		{"  / _` |/ _ \\/ __| __/ _` | '_ \\ ", "#c084fc"},
		{" | (_| |  __/ (__| || (_| | |_) |", "#e879f9"},
		{"  \\__,_|\\___|\\___|\\__\\__,_|_.__/ ", "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w)
}
