package sendkeys

import (
	"os"

	"github.com/xyproto/env/v2"
	"golang.org/x/term"
)

// TermSize returns the width and height of the terminal on stdout.
// COLUMNS and LINES are used if stdout is not a terminal.
func TermSize() (uint, uint) {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if width, height, err := term.GetSize(fd); err == nil && width > 0 && height > 0 {
			return uint(width), uint(height)
		}
	}
	return uint(env.Int("COLUMNS", 79)), uint(env.Int("LINES", 25))
}

// IsTerminal reports whether both stdin and stdout are terminals
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
