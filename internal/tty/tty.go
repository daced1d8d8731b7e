// Package tty reports whether output goes to an interactive terminal.
package tty

import (
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

var (
	stdoutOnce  sync.Once
	stdoutIsTTY bool
)

// StdoutIsTTY reports whether standard output is attached to a terminal.
// The answer is computed once per process.
func StdoutIsTTY() bool {
	stdoutOnce.Do(func() {
		stdoutIsTTY = IsTerminal(os.Stdout)
	})
	return stdoutIsTTY
}

// IsTerminal reports whether f is a terminal, including Cygwin/MSYS ptys.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
