package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the helmsman banner followed by the version line.
func PrintBanner(w io.Writer, version string, profile termenv.Profile) {
	out := termenv.NewOutput(w, termenv.WithProfile(profile))
	// Sea-blue gradient
	lines := []struct{ text, color string }{
		{` _          _                                 `, "#38bdf8"},
		{`| |__   ___| |_ __ ___  ___ _ __ ___   __ _ _ __  `, "#22d3ee"},
		{`| '_ \ / _ \ | '_ ` + "`" + ` _ \/ __| '_ ` + "`" + ` _ \ / _` + "`" + ` | '_ \ `, "#2dd4bf"},
		{`| | | |  __/ | | | | | \__ \ | | | | | (_| | | | |`, "#34d399"},
		{`|_| |_|\___|_|_| |_| |_|___/_| |_| |_|\__,_|_| |_|`, "#4ade80"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, out.String("helmsman "+version).Bold())
}
