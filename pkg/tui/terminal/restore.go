// ABOUTME: RestoreOnPanic recovers from panics, restores the terminal, and prints the stack trace.
// ABOUTME: Intended for use as a deferred call in the main goroutine.

package terminal

import (
	"fmt"
	"os"
	"runtime/debug"
)

// RestoreOnPanic should be deferred once the terminal has been acquired.
// On panic it exits raw mode via the provided Terminal, prints the panic
// value and stack trace to stderr, then exits with code 1. Nothing is
// written to stdout, which is reserved for the selection result.
func RestoreOnPanic(t Terminal) {
	r := recover()
	if r == nil {
		return
	}

	_ = t.ExitRawMode()

	fmt.Fprintf(os.Stderr, "\npanic: %v\n\n%s\n", r, debug.Stack())
	os.Exit(1)
}
