package main

import (
	"io"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// terminalWidth returns the column count of w, or 0 when w is not a terminal.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !isTerminal(w) {
		return 0
	}

	width, _, err := term.GetSize(f.Fd())
	if err != nil {
		return 0
	}
	return width
}

// colorProfile picks the ansi color profile. A terminal is asked what it supports (honouring NO_COLOR and
// CLICOLOR_FORCE); anything else asked for ansi explicitly, so it gets true color.
func colorProfile(w io.Writer) termenv.Profile {
	if !isTerminal(w) {
		return termenv.TrueColor
	}
	return termenv.NewOutput(w).EnvColorProfile()
}
