// Package termutil provides terminal display helpers.
package termutil

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Escape sequences written by Clear.
const (
	homeAndErase    = "\x1b[H\x1b[2J"
	eraseScrollback = "\x1b[3J"
)

// Clear moves the cursor home and erases the display. When w is a terminal
// the scrollback buffer is erased too, as clear(1) does.
func Clear(w io.Writer) error {
	seq := homeAndErase
	if IsTerminal(w) {
		seq += eraseScrollback
	}
	_, err := io.WriteString(w, seq)
	return err
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}
