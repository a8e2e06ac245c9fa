// ABOUTME: Logical frame model: styled rows with 64-bit content hashes
// ABOUTME: Rows wrap at write time against the terminal width; marks record cursor intent

package frame

import (
	"hash"
	"hash/fnv"

	"github.com/rivo/uniseg"

	"github.com/askline/askline/style"
	"github.com/askline/askline/width"
)

// Run is a stretch of text rendered under a single style sheet.
type Run struct {
	Text  string
	Sheet style.Sheet
}

// Row is one finished logical row: its styled runs and a hash folding both
// the grapheme bytes and the sheets that applied while writing them.
type Row struct {
	Runs []Run
	Hash uint64
}

// Mark is a cursor destination relative to the frame origin.
type Mark struct {
	Row int
	Col int
}

// State accumulates one logical frame. Writes append to an in-progress row
// which is finished by an explicit newline or by running out of columns.
type State struct {
	width    int
	rows     []Row
	runs     []Run
	rowWidth int
	hasher   hash.Hash64
	mark     *Mark
}

// NewState returns an empty frame sized to the given terminal width.
func NewState(width int) *State {
	return &State{width: width, hasher: fnv.New64a()}
}

// Rows returns the finished rows.
func (s *State) Rows() []Row { return s.rows }

// CursorMark returns the recorded mark, or nil when none was set.
func (s *State) CursorMark() *Mark { return s.mark }

// Write appends text under the given sheet. Embedded ANSI sequences are
// folded into the row hash but occupy no columns; embedded newlines finish
// the current row; a grapheme that would exceed the frame width starts a
// new row and lands there.
func (s *State) Write(text string, sheet style.Sheet) {
	for i := 0; i < len(text); {
		switch {
		case text[i] == '\n':
			s.finishRow()
			i++
		case text[i] == '\x1b':
			end := width.SkipSequence(text, i)
			s.append(text[i:end], sheet, 0)
			i = end
		default:
			cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(text[i:], -1)
			w := width.Grapheme(cluster)
			if s.width > 0 && s.rowWidth+w > s.width {
				s.finishRow()
			}
			s.append(cluster, sheet, w)
			i += len(cluster)
		}
	}
}

// MarkCursor records the cursor destination as the current write position
// shifted right by offset columns.
func (s *State) MarkCursor(offset int) {
	s.mark = &Mark{Row: len(s.rows), Col: s.rowWidth + offset}
}

// append adds text to the in-progress row, extending the trailing run when
// the sheet matches. Style transitions fold the sheet's ANSI prefix into the
// row hash so restyling a row invalidates it.
func (s *State) append(text string, sheet style.Sheet, w int) {
	if n := len(s.runs); n > 0 && s.runs[n-1].Sheet == sheet {
		s.runs[n-1].Text += text
	} else {
		s.runs = append(s.runs, Run{Text: text, Sheet: sheet})
		s.hasher.Write([]byte(sheet.Prefix()))
	}
	s.hasher.Write([]byte(text))
	s.rowWidth += w
}

// finishRow seals the in-progress row, empty or not.
func (s *State) finishRow() {
	s.rows = append(s.rows, Row{Runs: s.runs, Hash: s.hasher.Sum64()})
	s.runs = nil
	s.rowWidth = 0
	s.hasher = fnv.New64a()
}

// flush seals a trailing partial row, if any content is pending.
func (s *State) flush() {
	if len(s.runs) > 0 {
		s.finishRow()
	}
}

// endMark resolves where the terminal cursor should rest after drawing the
// frame: the explicit mark if set, otherwise just past the last row.
func (s *State) endMark() Mark {
	if s.mark != nil {
		return *s.mark
	}
	if n := len(s.rows); n > 0 {
		return Mark{Row: n - 1, Col: rowWidth(s.rows[n-1])}
	}
	return Mark{}
}

// replay rebuilds the frame's rows into a state of a different width.
func (s *State) replay(newWidth int) *State {
	out := NewState(newWidth)
	for i, r := range s.rows {
		if i > 0 {
			out.Write("\n", style.Sheet{})
		}
		for _, run := range r.Runs {
			out.Write(run.Text, run.Sheet)
		}
	}
	out.flush()
	if s.mark != nil {
		m := *s.mark
		out.mark = &m
	}
	return out
}

// rowWidth measures the visible width of a finished row.
func rowWidth(r Row) int {
	w := 0
	for _, run := range r.Runs {
		w += width.String(run.Text)
	}
	return w
}
