// ABOUTME: Defines the Terminal backend contract the prompt core renders through
// ABOUTME: Cursor primitives, styled writes, line clears, key reads, size queries

package terminal

import (
	"github.com/askline/askline/key"
	"github.com/askline/askline/style"
)

// Terminal abstracts the terminal collaborator: one blocking key source plus
// buffered output primitives. Implementations own raw-mode entry and exit;
// write failures are sticky and surface from Flush.
type Terminal interface {
	// ReadKey blocks until one logical key event arrives. Implementations
	// return keys in normalized form (Submit / Cancel / Interrupt).
	ReadKey() (key.Key, error)

	// Size returns the terminal dimensions. May fail; callers treat failure
	// as "very large".
	Size() (width, height int, err error)

	CursorUp(n int)
	CursorDown(n int)
	CursorLeft(n int)
	CursorRight(n int)
	CursorToColumn(col int)
	HideCursor()
	ShowCursor()

	Write(s string)
	WriteStyled(s string, sheet style.Sheet)

	// ClearLine erases the whole current line; ClearToLineEnd erases from
	// the cursor to the end of the line.
	ClearLine()
	ClearToLineEnd()

	// Flush commits buffered writes and reports any write error seen since
	// the previous Flush.
	Flush() error

	// Close releases the terminal, restoring any raw-mode state.
	Close() error
}

// RawSuspender is implemented by terminals that can temporarily leave raw
// mode, e.g. while an external editor owns the tty.
type RawSuspender interface {
	SuspendRaw() error
	ResumeRaw() error
}
