// Package tty reports whether the standard streams are attached to a terminal.
package tty

import (
	"os"

	"golang.org/x/term"
)

// IsStdoutTerminal reports whether stdout is a terminal.
func IsStdoutTerminal() bool {
	return IsTerminal(os.Stdout)
}

// IsStderrTerminal reports whether stderr is a terminal.
func IsStderrTerminal() bool {
	return IsTerminal(os.Stderr)
}

// IsTerminal reports whether f is a terminal. A nil file is never a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
