// ABOUTME: Double-buffered incremental renderer: diffs row hashes, rewrites changed lines
// ABOUTME: Owns the terminal backend; repositions the cursor to the frame's mark

package frame

import (
	"github.com/askline/askline/internal/log"
	"github.com/askline/askline/style"
	"github.com/askline/askline/terminal"
)

// fallbackSize stands in when the backend cannot report dimensions, so a
// stream-like terminal never breaks wrapping arithmetic.
const fallbackSize = 1 << 14

// Renderer owns the terminal for a prompt's lifetime and keeps two frame
// states: the one last drawn and the one being built. FinishFrame diffs them
// row by row and rewrites only what changed.
type Renderer struct {
	term   terminal.Terminal
	last   *State
	cur    *State
	width  int
	height int

	// cursorRow tracks which frame row the terminal cursor rests on between
	// frames, so the next frame can return to the origin with relative moves.
	cursorRow int
}

// NewRenderer wraps the terminal backend.
func NewRenderer(t terminal.Terminal) *Renderer {
	return &Renderer{term: t}
}

// Terminal exposes the underlying backend.
func (r *Renderer) Terminal() terminal.Terminal { return r.term }

// Width returns the frame width captured by the last StartFrame.
func (r *Renderer) Width() int { return r.width }

// StartFrame captures the terminal size and opens a fresh current frame.
// If the size changed since the previous frame, both buffered states are
// rebuilt by replaying their rows into the new width, which keeps the diff
// meaningful across mid-prompt resizes.
func (r *Renderer) StartFrame() {
	w, h, err := r.term.Size()
	if err != nil {
		log.Warn("terminal size unavailable: %v", err)
		w, h = fallbackSize, fallbackSize
	}
	if r.width != 0 && w != r.width && r.last != nil {
		r.last = r.last.replay(w)
	}
	r.width, r.height = w, h
	r.cur = NewState(w)
}

// Write appends unstyled text to the current frame.
func (r *Renderer) Write(text string) {
	r.cur.Write(text, style.Sheet{})
}

// WriteStyled appends text under the given sheet.
func (r *Renderer) WriteStyled(text string, sheet style.Sheet) {
	r.cur.Write(text, sheet)
}

// MarkCursor records where the terminal cursor should sit after the frame is
// drawn, offset columns right of the current write position.
func (r *Renderer) MarkCursor(offset int) {
	r.cur.MarkCursor(offset)
}

// FinishFrame diffs the current frame against the last rendered one and
// rewrites only rows whose hash changed, then parks the cursor on the mark.
func (r *Renderer) FinishFrame() error {
	r.cur.flush()

	t := r.term
	t.HideCursor()

	// Return to the frame origin.
	t.CursorUp(r.cursorRow)
	t.CursorToColumn(0)

	lastRows := []Row{}
	if r.last != nil {
		lastRows = r.last.Rows()
	}
	curRows := r.cur.Rows()
	total := max(len(lastRows), len(curRows))

	rewrites := 0
	for i := 0; i < total; i++ {
		lastHas := i < len(lastRows)
		curHas := i < len(curRows)
		switch {
		case lastHas && curHas && lastRows[i].Hash == curRows[i].Hash:
			// Row unchanged; step over it.
		case curHas:
			t.CursorToColumn(0)
			writeRow(t, curRows[i])
			t.ClearToLineEnd()
			rewrites++
		default:
			// The frame shrank; wipe the stale row.
			t.ClearLine()
			rewrites++
		}
		if i < total-1 {
			// Raw mode: advance both row and column explicitly.
			t.Write("\r\n")
		}
	}
	if rewrites > 0 {
		log.Debug("frame: %d/%d rows rewritten", rewrites, total)
	}

	mark := r.cur.endMark()
	bottom := total - 1
	if bottom < 0 {
		bottom = 0
	}
	t.CursorUp(bottom - mark.Row)
	t.CursorToColumn(mark.Col)
	t.ShowCursor()
	if err := t.Flush(); err != nil {
		return err
	}

	r.cursorRow = mark.Row
	r.last = r.cur
	r.cur = nil
	return nil
}

// Close moves the cursor just past the last frame and releases the display:
// the prompt's final render stays on screen and the shell resumes below it.
func (r *Renderer) Close() error {
	t := r.term
	if r.last != nil {
		t.CursorDown(len(r.last.Rows()) - 1 - r.cursorRow)
	}
	t.Write("\r\n")
	t.ShowCursor()
	return t.Flush()
}

// writeRow emits one row's styled runs.
func writeRow(t terminal.Terminal, row Row) {
	for _, run := range row.Runs {
		if run.Sheet.IsZero() {
			t.Write(run.Text)
		} else {
			t.WriteStyled(run.Text, run.Sheet)
		}
	}
}
