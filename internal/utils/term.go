package utils

import (
	"os"
	"strconv"

	"golang.org/x/term"
)

// IsTerminal reports if f is attached to a terminal
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// TermWidth returns the current terminal width.
//
// In CI / tests there is often no TTY attached. In that case we fall back to
// the value from $COLUMNS if present, otherwise a sane default width (80).
func TermWidth() int {
	// Prefer explicit override when present.
	if c := os.Getenv("COLUMNS"); c != "" {
		if n, err := strconv.Atoi(c); err == nil && n > 0 {
			return n
		}
	}
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}
