// ABOUTME: Tests for raw byte to Key decoding and Normalize
// ABOUTME: Covers control bytes, CSI/SS3 sequences, modifier forms, Alt pairs

package key

import "testing"

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  Key
	}{
		{name: "printable rune", input: "a", want: Key{Type: Rune, Rune: 'a'}},
		{name: "utf8 rune", input: "é", want: Key{Type: Rune, Rune: 'é'}},
		{name: "enter cr", input: "\r", want: Key{Type: Enter}},
		{name: "enter lf", input: "\n", want: Key{Type: Enter}},
		{name: "tab", input: "\t", want: Key{Type: Tab}},
		{name: "backspace del", input: "\x7f", want: Key{Type: Backspace}},
		{name: "backspace bs", input: "\x08", want: Key{Type: Backspace}},
		{name: "space", input: " ", want: Key{Type: Space}},
		{name: "escape", input: "\x1b", want: Key{Type: Escape}},
		{name: "ctrl-c", input: "\x03", want: Key{Type: Rune, Rune: 'c', Ctrl: true}},
		{name: "ctrl-r", input: "\x12", want: Key{Type: Rune, Rune: 'r', Ctrl: true}},
		{name: "arrow up", input: "\x1b[A", want: Key{Type: Up}},
		{name: "arrow down ss3", input: "\x1bOB", want: Key{Type: Down}},
		{name: "home", input: "\x1b[H", want: Key{Type: Home}},
		{name: "end tilde", input: "\x1b[4~", want: Key{Type: End}},
		{name: "page up", input: "\x1b[5~", want: Key{Type: PageUp}},
		{name: "delete", input: "\x1b[3~", want: Key{Type: Delete}},
		{name: "backtab", input: "\x1b[Z", want: Key{Type: BackTab, Shift: true}},
		{name: "ctrl down", input: "\x1b[1;5B", want: Key{Type: Down, Ctrl: true}},
		{name: "ctrl left", input: "\x1b[1;5D", want: Key{Type: Left, Ctrl: true}},
		{name: "shift right", input: "\x1b[1;2C", want: Key{Type: Right, Shift: true}},
		{name: "alt rune", input: "\x1bf", want: Key{Type: Rune, Rune: 'f', Alt: true}},
		{name: "empty", input: "", want: Key{Type: Unknown}},
		{name: "unknown sequence", input: "\x1b[99z", want: Key{Type: Unknown}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Parse(tt.input)
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input Key
		want  Key
	}{
		{name: "enter becomes submit", input: Key{Type: Enter}, want: Key{Type: Submit}},
		{name: "escape becomes cancel", input: Key{Type: Escape}, want: Key{Type: Cancel}},
		{name: "ctrl-c becomes interrupt", input: Key{Type: Rune, Rune: 'c', Ctrl: true}, want: Key{Type: Interrupt}},
		{name: "plain rune untouched", input: Key{Type: Rune, Rune: 'c'}, want: Key{Type: Rune, Rune: 'c'}},
		{name: "arrow untouched", input: Key{Type: Up}, want: Key{Type: Up}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%+v) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestKey_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  Key
		want string
	}{
		{name: "rune", key: Key{Type: Rune, Rune: 'x'}, want: "x"},
		{name: "ctrl rune", key: Key{Type: Rune, Rune: 'r', Ctrl: true}, want: "Ctrl+r"},
		{name: "alt rune", key: Key{Type: Rune, Rune: 'f', Alt: true}, want: "Alt+f"},
		{name: "named", key: Key{Type: PageDown}, want: "PageDown"},
		{name: "modified named", key: Key{Type: Down, Ctrl: true}, want: "Ctrl+Down"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.key.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
