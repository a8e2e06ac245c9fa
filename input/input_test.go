// ABOUTME: Tests for the grapheme-aware input buffer
// ABOUTME: Covers insert, motion, deletion, word boundaries, and combining marks

package input

import "testing"

func TestBuffer_Insert(t *testing.T) {
	t.Parallel()

	b := New()
	for _, r := range "héllo" {
		if got := b.Insert(r); got != ContentChanged {
			t.Fatalf("Insert(%q) = %v, want ContentChanged", r, got)
		}
	}
	if b.Content() != "héllo" {
		t.Errorf("Content() = %q, want %q", b.Content(), "héllo")
	}
	if b.Length() != 5 {
		t.Errorf("Length() = %d, want 5", b.Length())
	}
	if b.Cursor() != 5 {
		t.Errorf("Cursor() = %d, want 5", b.Cursor())
	}
}

func TestBuffer_InsertMidline(t *testing.T) {
	t.Parallel()

	b := NewWith("ac")
	b.MoveCursor(Char, Left)
	b.Insert('b')
	if b.Content() != "abc" {
		t.Errorf("Content() = %q, want %q", b.Content(), "abc")
	}
	if b.Cursor() != 2 {
		t.Errorf("Cursor() = %d, want 2", b.Cursor())
	}
}

func TestBuffer_CombiningMarkJoinsCluster(t *testing.T) {
	t.Parallel()

	// A base letter followed by a combining acute accent is one grapheme:
	// the second insert grows the byte content but not the cluster count.
	b := New()
	b.Insert('e')
	b.Insert('́')
	if b.Length() != 1 {
		t.Errorf("Length() = %d, want 1", b.Length())
	}
	if b.Cursor() != 1 {
		t.Errorf("Cursor() = %d, want 1", b.Cursor())
	}
}

func TestBuffer_MoveCursorRoundTrip(t *testing.T) {
	t.Parallel()

	b := NewWith("a👋b")
	start := b.Cursor()
	b.MoveCursor(Char, Left)
	b.MoveCursor(Char, Right)
	if b.Cursor() != start {
		t.Errorf("cursor after left+right = %d, want %d", b.Cursor(), start)
	}
}

func TestBuffer_MoveCursorBoundaries(t *testing.T) {
	t.Parallel()

	b := NewWith("ab")
	b.MoveCursor(Line, Left)
	if got := b.MoveCursor(Char, Left); got != Clean {
		t.Errorf("MoveCursor left at 0 = %v, want Clean", got)
	}
	b.MoveCursor(Line, Right)
	if got := b.MoveCursor(Char, Right); got != Clean {
		t.Errorf("MoveCursor right at end = %v, want Clean", got)
	}
}

func TestBuffer_WordMotion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		cursor  int
		d       Direction
		want    int
	}{
		{name: "left from end", content: "foo bar", cursor: 7, d: Left, want: 4},
		{name: "left skips separators", content: "foo  bar", cursor: 5, d: Left, want: 0},
		{name: "left at start", content: "foo", cursor: 0, d: Left, want: 0},
		{name: "right from start", content: "foo bar", cursor: 0, d: Right, want: 3},
		{name: "right skips separators", content: "foo  bar", cursor: 3, d: Right, want: 8},
		{name: "right at end", content: "foo", cursor: 3, d: Right, want: 3},
		{name: "underscore is word", content: "a_b c", cursor: 5, d: Left, want: 4},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := NewWith(tt.content).WithCursor(tt.cursor)
			b.MoveCursor(Word, tt.d)
			if b.Cursor() != tt.want {
				t.Errorf("cursor = %d, want %d", b.Cursor(), tt.want)
			}
		})
	}
}

func TestBuffer_DeleteEqualsMotionPlusRemoval(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		content     string
		cursor      int
		m           Magnitude
		d           Direction
		wantContent string
		wantCursor  int
	}{
		{name: "backspace char", content: "abc", cursor: 2, m: Char, d: Left, wantContent: "ac", wantCursor: 1},
		{name: "delete char", content: "abc", cursor: 1, m: Char, d: Right, wantContent: "ac", wantCursor: 1},
		{name: "delete word left", content: "foo bar", cursor: 7, m: Word, d: Left, wantContent: "foo ", wantCursor: 4},
		{name: "delete word right", content: "foo bar", cursor: 0, m: Word, d: Right, wantContent: " bar", wantCursor: 0},
		{name: "delete line left", content: "hello", cursor: 3, m: Line, d: Left, wantContent: "lo", wantCursor: 0},
		{name: "delete line right", content: "hello", cursor: 3, m: Line, d: Right, wantContent: "hel", wantCursor: 3},
		{name: "delete wide grapheme", content: "a👋b", cursor: 2, m: Char, d: Left, wantContent: "ab", wantCursor: 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := NewWith(tt.content).WithCursor(tt.cursor)

			// The motion target the deletion must agree with.
			probe := NewWith(tt.content).WithCursor(tt.cursor)
			probe.MoveCursor(tt.m, tt.d)

			if got := b.Delete(tt.m, tt.d); got != ContentChanged {
				t.Fatalf("Delete = %v, want ContentChanged", got)
			}
			if b.Content() != tt.wantContent {
				t.Errorf("Content() = %q, want %q", b.Content(), tt.wantContent)
			}
			if b.Cursor() != tt.wantCursor {
				t.Errorf("Cursor() = %d, want %d", b.Cursor(), tt.wantCursor)
			}
			if tt.d == Left && b.Cursor() != probe.Cursor() {
				t.Errorf("leftwards delete cursor = %d, motion target = %d", b.Cursor(), probe.Cursor())
			}
		})
	}
}

func TestBuffer_DeleteAtBoundaryIsClean(t *testing.T) {
	t.Parallel()

	b := NewWith("ab").WithCursor(0)
	if got := b.Delete(Char, Left); got != Clean {
		t.Errorf("Delete left at 0 = %v, want Clean", got)
	}
	b.MoveCursor(Line, Right)
	if got := b.Delete(Char, Right); got != Clean {
		t.Errorf("Delete right at end = %v, want Clean", got)
	}
}

func TestBuffer_SetContentAndClear(t *testing.T) {
	t.Parallel()

	b := New()
	if got := b.SetContent("hi"); got != ContentChanged {
		t.Errorf("SetContent = %v, want ContentChanged", got)
	}
	if got := b.SetContent("hi"); got != Clean {
		t.Errorf("SetContent same = %v, want Clean", got)
	}
	if got := b.Clear(); got != ContentChanged {
		t.Errorf("Clear = %v, want ContentChanged", got)
	}
	if got := b.Clear(); got != Clean {
		t.Errorf("Clear empty = %v, want Clean", got)
	}
}

func TestBuffer_PreCursor(t *testing.T) {
	t.Parallel()

	b := NewWith("a👋b").WithCursor(2)
	if got := b.PreCursor(); got != "a👋" {
		t.Errorf("PreCursor() = %q, want %q", got, "a👋")
	}
}
