package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the tumble banner to w using the given colour profile.
func PrintBanner(w io.Writer, p termenv.Profile) {
	lines := []struct {
		text  string
		color string
	}{
		{" _                  _     _      ", "#f59e0b"},
		{"| |_ _   _ _ __ ___ | |__ | | ___ ", "#f97316"},
		{"| __| | | | '_ ` _ \\| '_ \\| |/ _ \\", "#ef4444"},
		{"| |_| |_| | | | | | | |_) | |  __/", "#e11d48"},
		{" \\__|\\__,_|_| |_| |_|_.__/|_|\\___|", "#be123c"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, p.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
