// ABOUTME: Tests for on-screen width calculation of strings and graphemes
// ABOUTME: Covers ASCII fast path, ANSI stripping, CJK, emoji, combining marks

package width

import "testing"

func TestString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "empty", input: "", want: 0},
		{name: "ascii", input: "hello", want: 5},
		{name: "ansi colored", input: "\x1b[31mred\x1b[0m", want: 3},
		{name: "cjk", input: "你好", want: 4},
		{name: "emoji", input: "👋", want: 2},
		{name: "combining mark", input: "é", want: 1},
		{name: "only ansi", input: "\x1b[31m\x1b[0m", want: 0},
		{name: "mixed", input: "hi\x1b[1m!\x1b[0m", want: 3},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := String(tt.input)
			if got != tt.want {
				t.Errorf("String(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestGrapheme(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cluster string
		want    int
	}{
		{name: "ascii letter", cluster: "a", want: 1},
		{name: "wide cjk", cluster: "你", want: 2},
		{name: "combining", cluster: "é", want: 1},
		{name: "empty", cluster: "", want: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Grapheme(tt.cluster)
			if got != tt.want {
				t.Errorf("Grapheme(%q) = %d, want %d", tt.cluster, got, tt.want)
			}
		})
	}
}

func TestStripANSI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "no sequences", input: "plain", want: "plain"},
		{name: "color", input: "\x1b[31mred\x1b[0m", want: "red"},
		{name: "cursor motion", input: "\x1b[2Aup", want: "up"},
		{name: "osc title", input: "\x1b]0;title\x07text", want: "text"},
		{name: "bare escape at end", input: "abc\x1b", want: "abc"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := StripANSI(tt.input)
			if got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
