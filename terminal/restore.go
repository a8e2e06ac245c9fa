// ABOUTME: RestoreOnPanic recovers from panics, restores the terminal, and reprints the stack
// ABOUTME: Intended as a deferred call in the goroutine that owns the terminal

package terminal

import (
	"fmt"
	"os"
	"runtime/debug"
)

// RestoreOnPanic should be deferred by the goroutine that owns the terminal.
// On panic it shows the cursor, closes the terminal to leave raw mode,
// prints the panic value and stack trace, then exits with code 1.
func RestoreOnPanic(t Terminal) {
	r := recover()
	if r == nil {
		return
	}

	// Best-effort restore before reporting.
	_, _ = os.Stdout.Write([]byte("\x1b[?25h"))
	_ = t.Close()

	fmt.Fprintf(os.Stderr, "\npanic: %v\n\n%s\n", r, debug.Stack())
	os.Exit(1)
}
