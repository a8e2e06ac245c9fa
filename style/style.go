// ABOUTME: Styled-text primitives: Color attributes and Sheet for fg/bg/formatting
// ABOUTME: Sheet.Prefix emits the combined ANSI codes; empty sheets emit nothing

package style

import "strings"

// Color is a terminal color expressed as a raw ANSI SGR sequence.
// The zero value is "no color" and emits nothing.
type Color struct {
	code string
}

// NewColor creates a Color from a raw ANSI escape code, e.g. "\x1b[36m".
func NewColor(code string) Color {
	return Color{code: code}
}

// Code returns the raw ANSI escape code, or "" for the zero Color.
func (c Color) Code() string {
	return c.code
}

// IsZero reports whether the color emits no codes.
func (c Color) IsZero() bool {
	return c.code == ""
}

// Standard foreground colors.
var (
	Black   = NewColor("\x1b[30m")
	Red     = NewColor("\x1b[31m")
	Green   = NewColor("\x1b[32m")
	Yellow  = NewColor("\x1b[33m")
	Blue    = NewColor("\x1b[34m")
	Magenta = NewColor("\x1b[35m")
	Cyan    = NewColor("\x1b[36m")
	White   = NewColor("\x1b[37m")
	Grey    = NewColor("\x1b[90m")
)

// Background variants of the standard colors.
var (
	BgBlack   = NewColor("\x1b[40m")
	BgRed     = NewColor("\x1b[41m")
	BgGreen   = NewColor("\x1b[42m")
	BgYellow  = NewColor("\x1b[43m")
	BgBlue    = NewColor("\x1b[44m")
	BgMagenta = NewColor("\x1b[45m")
	BgCyan    = NewColor("\x1b[46m")
	BgWhite   = NewColor("\x1b[47m")
)

const reset = "\x1b[0m"

// Sheet describes how a run of text should be styled: an optional
// foreground, an optional background, and formatting attributes.
type Sheet struct {
	Fg        Color
	Bg        Color
	Bold      bool
	Italic    bool
	Underline bool
	Dim       bool
	Reverse   bool
}

// NewSheet returns an empty Sheet.
func NewSheet() Sheet {
	return Sheet{}
}

// WithFg returns a copy of the sheet with the foreground set.
func (s Sheet) WithFg(c Color) Sheet {
	s.Fg = c
	return s
}

// WithBg returns a copy of the sheet with the background set.
func (s Sheet) WithBg(c Color) Sheet {
	s.Bg = c
	return s
}

// WithBold returns a copy of the sheet with bold enabled.
func (s Sheet) WithBold() Sheet {
	s.Bold = true
	return s
}

// WithItalic returns a copy of the sheet with italic enabled.
func (s Sheet) WithItalic() Sheet {
	s.Italic = true
	return s
}

// WithUnderline returns a copy of the sheet with underline enabled.
func (s Sheet) WithUnderline() Sheet {
	s.Underline = true
	return s
}

// WithDim returns a copy of the sheet with dim enabled.
func (s Sheet) WithDim() Sheet {
	s.Dim = true
	return s
}

// WithReverse returns a copy of the sheet with reverse video enabled.
func (s Sheet) WithReverse() Sheet {
	s.Reverse = true
	return s
}

// IsZero reports whether applying the sheet is a no-op.
func (s Sheet) IsZero() bool {
	return s == Sheet{}
}

// Prefix returns the ANSI sequence that activates the sheet, or "" when the
// sheet is empty.
func (s Sheet) Prefix() string {
	if s.IsZero() {
		return ""
	}
	var b strings.Builder
	if s.Bold {
		b.WriteString("\x1b[1m")
	}
	if s.Dim {
		b.WriteString("\x1b[2m")
	}
	if s.Italic {
		b.WriteString("\x1b[3m")
	}
	if s.Underline {
		b.WriteString("\x1b[4m")
	}
	if s.Reverse {
		b.WriteString("\x1b[7m")
	}
	b.WriteString(s.Fg.Code())
	b.WriteString(s.Bg.Code())
	return b.String()
}

// Suffix returns the sequence that deactivates the sheet, or "" when the
// sheet is empty.
func (s Sheet) Suffix() string {
	if s.IsZero() {
		return ""
	}
	return reset
}

// Apply wraps text in the sheet's prefix and suffix.
func (s Sheet) Apply(text string) string {
	if s.IsZero() || text == "" {
		return text
	}
	return s.Prefix() + text + reset
}
