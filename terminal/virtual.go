// ABOUTME: VirtualTerminal implements Terminal for tests without a real tty
// ABOUTME: Scripted key events in, captured ANSI output out

package terminal

import (
	"bytes"
	"io"
	"strconv"
	"sync"

	"github.com/askline/askline/key"
	"github.com/askline/askline/style"
)

// VirtualTerminal is a fake Terminal for unit tests. Keys are scripted with
// FeedKeys / FeedString and everything written is captured for inspection.
type VirtualTerminal struct {
	mu      sync.Mutex
	buf     bytes.Buffer
	keys    []key.Key
	next    int
	width   int
	height  int
	sizeErr error
	closed  bool
}

// NewVirtualTerminal returns a VirtualTerminal with the given dimensions.
func NewVirtualTerminal(width, height int) *VirtualTerminal {
	return &VirtualTerminal{width: width, height: height}
}

// FeedKeys appends scripted key events.
func (v *VirtualTerminal) FeedKeys(keys ...key.Key) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.keys = append(v.keys, keys...)
}

// FeedString appends one rune key per rune of s.
func (v *VirtualTerminal) FeedString(s string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, r := range s {
		if r == ' ' {
			v.keys = append(v.keys, key.Key{Type: key.Space})
			continue
		}
		v.keys = append(v.keys, key.Key{Type: key.Rune, Rune: r})
	}
}

// ReadKey pops the next scripted key, normalized. Running out of script
// returns io.EOF.
func (v *VirtualTerminal) ReadKey() (key.Key, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.next >= len(v.keys) {
		return key.Key{Type: key.Unknown}, io.EOF
	}
	k := v.keys[v.next]
	v.next++
	return key.Normalize(k), nil
}

// Size returns the configured dimensions, or the configured error.
func (v *VirtualTerminal) Size() (int, int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.sizeErr != nil {
		return 0, 0, v.sizeErr
	}
	return v.width, v.height, nil
}

// SetSize changes the reported dimensions mid-run.
func (v *VirtualTerminal) SetSize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.width = width
	v.height = height
}

// FailSize makes Size return err, exercising the "very large" fallback.
func (v *VirtualTerminal) FailSize(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.sizeErr = err
}

func (v *VirtualTerminal) csi(n int, final byte) {
	if n <= 0 {
		return
	}
	v.Write("\x1b[" + strconv.Itoa(n) + string(final))
}

func (v *VirtualTerminal) CursorUp(n int)    { v.csi(n, 'A') }
func (v *VirtualTerminal) CursorDown(n int)  { v.csi(n, 'B') }
func (v *VirtualTerminal) CursorRight(n int) { v.csi(n, 'C') }
func (v *VirtualTerminal) CursorLeft(n int)  { v.csi(n, 'D') }

func (v *VirtualTerminal) CursorToColumn(col int) {
	v.Write("\r")
	v.csi(col, 'C')
}

func (v *VirtualTerminal) HideCursor() { v.Write("\x1b[?25l") }
func (v *VirtualTerminal) ShowCursor() { v.Write("\x1b[?25h") }

func (v *VirtualTerminal) Write(s string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.buf.WriteString(s)
}

func (v *VirtualTerminal) WriteStyled(s string, sheet style.Sheet) {
	v.Write(sheet.Prefix())
	v.Write(s)
	v.Write(sheet.Suffix())
}

func (v *VirtualTerminal) ClearLine()      { v.Write("\r\x1b[2K") }
func (v *VirtualTerminal) ClearToLineEnd() { v.Write("\x1b[K") }

func (v *VirtualTerminal) Flush() error { return nil }

// Close marks the terminal released.
func (v *VirtualTerminal) Close() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
	return nil
}

// SuspendRaw is a no-op; the virtual terminal has no raw mode.
func (v *VirtualTerminal) SuspendRaw() error { return nil }

// ResumeRaw is a no-op.
func (v *VirtualTerminal) ResumeRaw() error { return nil }

// Output returns everything written so far.
func (v *VirtualTerminal) Output() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.buf.String()
}

// Closed reports whether Close was called.
func (v *VirtualTerminal) Closed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.closed
}
