// ABOUTME: ProcessTerminal drives the real tty: raw mode via x/term, ANSI output
// ABOUTME: Output goes through go-colorable so Windows consoles render styles

package terminal

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/mattn/go-colorable"
	"golang.org/x/term"

	"github.com/askline/askline/internal/log"
	"github.com/askline/askline/key"
	"github.com/askline/askline/style"
)

// ProcessTerminal is the real terminal backed by os.Stdin/os.Stdout.
// Construction enters raw mode; Close restores the previous state.
type ProcessTerminal struct {
	keys     *key.Reader
	out      *bufio.Writer
	oldState *term.State
	writeErr error
}

// NewProcessTerminal switches stdin to raw mode and returns a terminal ready
// for prompt rendering.
func NewProcessTerminal() (*ProcessTerminal, error) {
	state, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return nil, fmt.Errorf("entering raw mode: %w", err)
	}
	return &ProcessTerminal{
		keys:     key.NewReader(os.Stdin),
		out:      bufio.NewWriter(colorable.NewColorable(os.Stdout)),
		oldState: state,
	}, nil
}

// ReadKey blocks for the next key event and normalizes the prompt-ending
// platform keys.
func (t *ProcessTerminal) ReadKey() (key.Key, error) {
	k, err := t.keys.ReadKey()
	if err != nil {
		return k, fmt.Errorf("reading key: %w", err)
	}
	k = key.Normalize(k)
	log.Debug("key: %s", k)
	return k, nil
}

// Size returns the current terminal dimensions.
func (t *ProcessTerminal) Size() (int, int, error) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size: %w", err)
	}
	return w, h, nil
}

func (t *ProcessTerminal) csi(n int, final byte) {
	if n <= 0 {
		return
	}
	t.Write("\x1b[" + strconv.Itoa(n) + string(final))
}

func (t *ProcessTerminal) CursorUp(n int)    { t.csi(n, 'A') }
func (t *ProcessTerminal) CursorDown(n int)  { t.csi(n, 'B') }
func (t *ProcessTerminal) CursorRight(n int) { t.csi(n, 'C') }
func (t *ProcessTerminal) CursorLeft(n int)  { t.csi(n, 'D') }

// CursorToColumn moves the cursor to the zero-based column on the current row.
func (t *ProcessTerminal) CursorToColumn(col int) {
	t.Write("\r")
	t.csi(col, 'C')
}

func (t *ProcessTerminal) HideCursor() { t.Write("\x1b[?25l") }
func (t *ProcessTerminal) ShowCursor() { t.Write("\x1b[?25h") }

// Write buffers raw output. Errors stick and surface from Flush.
func (t *ProcessTerminal) Write(s string) {
	if t.writeErr != nil {
		return
	}
	if _, err := t.out.WriteString(s); err != nil {
		t.writeErr = fmt.Errorf("writing to terminal: %w", err)
	}
}

// WriteStyled wraps s in the sheet's ANSI prefix and suffix.
func (t *ProcessTerminal) WriteStyled(s string, sheet style.Sheet) {
	t.Write(sheet.Prefix())
	t.Write(s)
	t.Write(sheet.Suffix())
}

func (t *ProcessTerminal) ClearLine()      { t.Write("\r\x1b[2K") }
func (t *ProcessTerminal) ClearToLineEnd() { t.Write("\x1b[K") }

// Flush commits buffered output and reports the first write error seen.
func (t *ProcessTerminal) Flush() error {
	if t.writeErr != nil {
		err := t.writeErr
		t.writeErr = nil
		return err
	}
	if err := t.out.Flush(); err != nil {
		return fmt.Errorf("flushing terminal: %w", err)
	}
	return nil
}

// SuspendRaw restores the terminal to cooked mode, e.g. before handing the
// tty to a spawned editor.
func (t *ProcessTerminal) SuspendRaw() error {
	if t.oldState == nil {
		return nil
	}
	if err := term.Restore(int(os.Stdin.Fd()), t.oldState); err != nil {
		return fmt.Errorf("leaving raw mode: %w", err)
	}
	return nil
}

// ResumeRaw re-enters raw mode after SuspendRaw.
func (t *ProcessTerminal) ResumeRaw() error {
	state, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return fmt.Errorf("re-entering raw mode: %w", err)
	}
	t.oldState = state
	return nil
}

// Close exits raw mode and flushes pending output.
func (t *ProcessTerminal) Close() error {
	flushErr := t.Flush()
	if t.oldState != nil {
		if err := term.Restore(int(os.Stdin.Fd()), t.oldState); err != nil {
			return fmt.Errorf("exiting raw mode: %w", err)
		}
		t.oldState = nil
	}
	return flushErr
}
