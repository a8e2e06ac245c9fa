// ABOUTME: Tests for Color and Sheet ANSI code emission
// ABOUTME: Empty sheets must emit nothing; combined sheets stack their codes

package style

import (
	"strings"
	"testing"
)

func TestSheet_EmptyEmitsNothing(t *testing.T) {
	t.Parallel()

	s := NewSheet()
	if !s.IsZero() {
		t.Error("NewSheet() should be zero")
	}
	if s.Prefix() != "" || s.Suffix() != "" {
		t.Errorf("empty sheet emitted %q / %q", s.Prefix(), s.Suffix())
	}
	if got := s.Apply("text"); got != "text" {
		t.Errorf("Apply = %q, want %q", got, "text")
	}
}

func TestSheet_Prefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		sheet Sheet
		wants []string
	}{
		{name: "fg only", sheet: NewSheet().WithFg(Red), wants: []string{"\x1b[31m"}},
		{name: "bg only", sheet: NewSheet().WithBg(BgBlue), wants: []string{"\x1b[44m"}},
		{name: "bold", sheet: NewSheet().WithBold(), wants: []string{"\x1b[1m"}},
		{name: "dim", sheet: NewSheet().WithDim(), wants: []string{"\x1b[2m"}},
		{name: "italic", sheet: NewSheet().WithItalic(), wants: []string{"\x1b[3m"}},
		{name: "underline", sheet: NewSheet().WithUnderline(), wants: []string{"\x1b[4m"}},
		{name: "reverse", sheet: NewSheet().WithReverse(), wants: []string{"\x1b[7m"}},
		{name: "combined", sheet: NewSheet().WithFg(Cyan).WithBold(), wants: []string{"\x1b[36m", "\x1b[1m"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			prefix := tt.sheet.Prefix()
			for _, w := range tt.wants {
				if !strings.Contains(prefix, w) {
					t.Errorf("Prefix() = %q, missing %q", prefix, w)
				}
			}
			if tt.sheet.Suffix() != "\x1b[0m" {
				t.Errorf("Suffix() = %q, want reset", tt.sheet.Suffix())
			}
		})
	}
}

func TestSheet_Apply(t *testing.T) {
	t.Parallel()

	s := NewSheet().WithFg(Green)
	got := s.Apply("ok")
	if got != "\x1b[32mok\x1b[0m" {
		t.Errorf("Apply = %q", got)
	}
}

func TestColor_Zero(t *testing.T) {
	t.Parallel()

	var c Color
	if !c.IsZero() || c.Code() != "" {
		t.Errorf("zero Color should be empty, got %q", c.Code())
	}
	if Red.IsZero() {
		t.Error("Red should not be zero")
	}
}
