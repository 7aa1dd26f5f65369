// Package terminal decides whether lokio talks to a person or a pipe.
package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

var isTerminal = term.IsTerminal

type fder interface {
	Fd() uintptr
}

// IsInteractive reports whether stdin and stderr are both terminals, which is
// what the create prompt needs to draw on stderr and read keys.
func IsInteractive() bool {
	return isTerminal(int(os.Stdin.Fd())) && isTerminal(int(os.Stderr.Fd()))
}

// IsTerminalWriter reports whether w writes to a terminal. Buffers and other
// writers without a file descriptor are never terminals.
func IsTerminalWriter(w io.Writer) bool {
	f, ok := w.(fder)
	if !ok {
		return false
	}
	return isTerminal(int(f.Fd()))
}
