// ABOUTME: Grapheme-aware single-line input buffer with cursor editing primitives
// ABOUTME: Cursor arithmetic is in grapheme-cluster units; byte offsets are derived

package input

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Change is the tri-state result of a buffer operation.
type Change int

const (
	// Clean means the operation had no effect.
	Clean Change = iota
	// PositionChanged means only the cursor moved.
	PositionChanged
	// ContentChanged means the text itself changed.
	ContentChanged
)

// Magnitude is the unit of a motion or deletion.
type Magnitude int

const (
	// Char moves or deletes one grapheme cluster.
	Char Magnitude = iota
	// Word moves or deletes to the nearest word boundary.
	Word
	// Line moves or deletes to the start or end of the buffer.
	Line
)

// Direction selects which side of the cursor an operation works on.
type Direction int

const (
	Left Direction = iota
	Right
)

// Buffer is a single-line UTF-8 text buffer whose cursor is expressed as a
// grapheme-cluster index in [0, Length()]. The grapheme count is cached and
// recomputed after every edit.
type Buffer struct {
	content     string
	cursor      int
	length      int
	placeholder string
}

// New returns an empty buffer.
func New() *Buffer {
	return &Buffer{}
}

// NewWith returns a buffer seeded with content, cursor at the end.
func NewWith(content string) *Buffer {
	b := &Buffer{content: content}
	b.length = uniseg.GraphemeClusterCount(content)
	b.cursor = b.length
	return b
}

// WithPlaceholder sets the hint text shown while the buffer is empty.
func (b *Buffer) WithPlaceholder(p string) *Buffer {
	b.placeholder = p
	return b
}

// WithCursor places the cursor at idx. Out-of-range indices are a
// programmer error and panic.
func (b *Buffer) WithCursor(idx int) *Buffer {
	if idx < 0 || idx > b.length {
		panic(fmt.Sprintf("input: cursor %d out of range [0, %d]", idx, b.length))
	}
	b.cursor = idx
	return b
}

// Content returns the buffer text.
func (b *Buffer) Content() string { return b.content }

// Placeholder returns the configured placeholder text.
func (b *Buffer) Placeholder() string { return b.placeholder }

// Length returns the grapheme-cluster count.
func (b *Buffer) Length() int { return b.length }

// Cursor returns the cursor as a grapheme index.
func (b *Buffer) Cursor() int { return b.cursor }

// IsEmpty reports whether the buffer holds no text.
func (b *Buffer) IsEmpty() bool { return b.content == "" }

// PreCursor returns the text before (exclusive of) the grapheme under the
// cursor. Renderers use it to place the terminal cursor.
func (b *Buffer) PreCursor() string {
	return b.content[:b.byteOffset(b.cursor)]
}

// Clear empties the buffer.
func (b *Buffer) Clear() Change {
	if b.content == "" {
		return Clean
	}
	b.content = ""
	b.cursor = 0
	b.length = 0
	return ContentChanged
}

// SetContent replaces the text and moves the cursor to the end.
func (b *Buffer) SetContent(content string) Change {
	if b.content == content {
		return Clean
	}
	b.content = content
	b.length = uniseg.GraphemeClusterCount(content)
	b.cursor = b.length
	return ContentChanged
}

// Insert places the codepoint at the cursor. The cursor advances only when
// the grapheme count grows: appending a combining mark or variation selector
// extends the cluster under the cursor without moving it.
func (b *Buffer) Insert(r rune) Change {
	at := b.byteOffset(b.cursor)
	var sb strings.Builder
	sb.Grow(len(b.content) + utf8.RuneLen(r))
	sb.WriteString(b.content[:at])
	sb.WriteRune(r)
	sb.WriteString(b.content[at:])
	b.content = sb.String()

	newLen := uniseg.GraphemeClusterCount(b.content)
	if newLen > b.length {
		b.cursor++
	}
	b.length = newLen
	return ContentChanged
}

// MoveCursor shifts the cursor by the given magnitude, saturating at the
// buffer boundaries. Returns Clean when the cursor did not move.
func (b *Buffer) MoveCursor(m Magnitude, d Direction) Change {
	target := b.motionTarget(m, d)
	if target == b.cursor {
		return Clean
	}
	b.cursor = target
	return PositionChanged
}

// Delete removes text between the cursor and the position a MoveCursor of
// the same magnitude would reach. Leftwards deletion moves the cursor to the
// removed range's start; rightwards deletion leaves it in place.
func (b *Buffer) Delete(m Magnitude, d Direction) Change {
	target := b.motionTarget(m, d)
	if target == b.cursor {
		return Clean
	}
	start, end := b.cursor, target
	if d == Left {
		start, end = target, b.cursor
	}
	b.content = b.content[:b.byteOffset(start)] + b.content[b.byteOffset(end):]
	b.length = uniseg.GraphemeClusterCount(b.content)
	b.cursor = start
	return ContentChanged
}

// motionTarget computes the grapheme index a motion lands on without
// mutating the buffer.
func (b *Buffer) motionTarget(m Magnitude, d Direction) int {
	switch m {
	case Char:
		if d == Left {
			return max(b.cursor-1, 0)
		}
		return min(b.cursor+1, b.length)
	case Line:
		if d == Left {
			return 0
		}
		return b.length
	case Word:
		if d == Left {
			return b.prevWordIndex()
		}
		return b.nextWordIndex()
	}
	return b.cursor
}

// prevWordIndex returns the index of the first grapheme of the previous
// word: non-word graphemes left of the cursor are skipped first, then the
// word run they guard.
func (b *Buffer) prevWordIndex() int {
	clusters := b.clusters()
	i := b.cursor
	for i > 0 && !isWordCluster(clusters[i-1]) {
		i--
	}
	for i > 0 && isWordCluster(clusters[i-1]) {
		i--
	}
	return i
}

// nextWordIndex returns the index just past the next word to the right of
// the cursor.
func (b *Buffer) nextWordIndex() int {
	clusters := b.clusters()
	i := b.cursor
	for i < b.length && !isWordCluster(clusters[i]) {
		i++
	}
	for i < b.length && isWordCluster(clusters[i]) {
		i++
	}
	return i
}

// byteOffset converts a grapheme index into a byte offset.
func (b *Buffer) byteOffset(idx int) int {
	if idx <= 0 {
		return 0
	}
	rest := b.content
	state := -1
	offset := 0
	for i := 0; i < idx && len(rest) > 0; i++ {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		offset += len(cluster)
	}
	return offset
}

// clusters splits the content into grapheme clusters.
func (b *Buffer) clusters() []string {
	out := make([]string, 0, b.length)
	rest := b.content
	state := -1
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		out = append(out, cluster)
	}
	return out
}

// isWordCluster reports whether a grapheme cluster belongs to a word: its
// leading rune is a letter, a digit, or an underscore.
func isWordCluster(cluster string) bool {
	r, _ := utf8.DecodeRuneInString(cluster)
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
