// ABOUTME: Defines the Key type and Parse for terminal keyboard input decoding
// ABOUTME: Handles printable runes, control characters, and escape sequences

package key

import (
	"fmt"
	"unicode/utf8"
)

// Key is one logical keyboard event: a type tag, the rune for printable
// keys, and modifier flags.
type Key struct {
	Type  Type
	Rune  rune // for Type == Rune
	Alt   bool
	Ctrl  bool
	Shift bool
}

// Type enumerates the kinds of key events a prompt can receive.
type Type int

const (
	Rune      Type = iota // printable character
	Enter                 // Enter / Return
	Tab                   // Tab
	BackTab               // Shift+Tab
	Backspace             // Backspace / DEL (0x7F)
	Delete                // Delete key
	Up                    // arrow up
	Down                  // arrow down
	Left                  // arrow left
	Right                 // arrow right
	Home                  // Home
	End                   // End
	PageUp                // Page Up
	PageDown              // Page Down
	Escape                // Escape
	Space                 // space bar
	Submit                // synthesised from Enter
	Cancel                // synthesised from Escape
	Interrupt             // synthesised from Ctrl+C
	Unknown               // unrecognised input
)

// Parse decodes raw terminal input data into a Key. It handles single
// runes, control characters, and escape sequences.
func Parse(data string) Key {
	if len(data) == 0 {
		return Key{Type: Unknown}
	}
	if len(data) == 1 {
		return parseSingleByte(data[0])
	}
	if data[0] == 0x1b {
		return parseEscapeSequence(data)
	}
	r, _ := utf8.DecodeRuneInString(data)
	if r == utf8.RuneError {
		return Key{Type: Unknown}
	}
	return Key{Type: Rune, Rune: r}
}

// parseSingleByte handles ASCII and control bytes. Control letters other
// than the ones with dedicated types decode as Ctrl+rune so prompts can
// bind them generically.
func parseSingleByte(b byte) Key {
	switch b {
	case 0x0d, 0x0a:
		return Key{Type: Enter}
	case 0x09:
		return Key{Type: Tab}
	case 0x7f, 0x08:
		return Key{Type: Backspace}
	case 0x1b:
		return Key{Type: Escape}
	case 0x20:
		return Key{Type: Space}
	}
	if b >= 0x01 && b <= 0x1a {
		return Key{Type: Rune, Rune: rune('a' + b - 1), Ctrl: true}
	}
	if b >= 0x21 && b <= 0x7e {
		return Key{Type: Rune, Rune: rune(b)}
	}
	return Key{Type: Unknown}
}

// parseEscapeSequence decodes ESC-prefixed data via the legacy sequence
// table, falling back to Alt+rune for two-byte ESC pairs.
func parseEscapeSequence(data string) Key {
	if k, ok := legacySequences[data]; ok {
		return k
	}
	if len(data) == 1 {
		return Key{Type: Escape}
	}
	if len(data) == 2 && data[1] >= 0x20 && data[1] <= 0x7e {
		return Key{Type: Rune, Rune: rune(data[1]), Alt: true}
	}
	return Key{Type: Unknown}
}

// Normalize rewrites the platform keys that end a prompt into their logical
// events: Enter becomes Submit, Escape becomes Cancel, and Ctrl+C becomes
// Interrupt. Backends apply it before handing keys to the prompt loop.
func Normalize(k Key) Key {
	switch {
	case k.Type == Enter:
		return Key{Type: Submit}
	case k.Type == Escape:
		return Key{Type: Cancel}
	case k.Type == Rune && k.Ctrl && k.Rune == 'c':
		return Key{Type: Interrupt}
	}
	return k
}

var typeNames = map[Type]string{
	Enter:     "Enter",
	Tab:       "Tab",
	BackTab:   "BackTab",
	Backspace: "Backspace",
	Delete:    "Delete",
	Up:        "Up",
	Down:      "Down",
	Left:      "Left",
	Right:     "Right",
	Home:      "Home",
	End:       "End",
	PageUp:    "PageUp",
	PageDown:  "PageDown",
	Escape:    "Escape",
	Space:     "Space",
	Submit:    "Submit",
	Cancel:    "Cancel",
	Interrupt: "Interrupt",
	Unknown:   "Unknown",
}

// String returns a human-readable representation for debug output.
func (k Key) String() string {
	if k.Type == Rune {
		s := string(k.Rune)
		if k.Ctrl {
			s = fmt.Sprintf("Ctrl+%s", s)
		}
		if k.Alt {
			s = fmt.Sprintf("Alt+%s", s)
		}
		return s
	}
	if name, ok := typeNames[k.Type]; ok {
		if k.Ctrl {
			name = "Ctrl+" + name
		}
		if k.Shift {
			name = "Shift+" + name
		}
		if k.Alt {
			name = "Alt+" + name
		}
		return name
	}
	return "Unknown"
}
