// ABOUTME: Tests for the generic typed prompt and the confirm prompt on top
// ABOUTME: Parse failures re-prompt; defaults and validators run after parsing

package askline

import (
	"errors"
	"strconv"
	"strings"
	"testing"
)

func parseInt(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	return n, err == nil
}

func TestCustomType_ParsesTypedValue(t *testing.T) {
	t.Parallel()

	vt := newTestTerminal()
	vt.FeedString("42")
	vt.FeedKeys(submitKey())

	got, err := NewCustomType("Port", parseInt).PromptWith(vt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 42 {
		t.Errorf("answer = %d, want 42", got)
	}
}

func TestCustomType_ParseFailureReprompts(t *testing.T) {
	t.Parallel()

	vt := newTestTerminal()
	vt.FeedString("abc")
	vt.FeedKeys(submitKey(), backspaceKey(), backspaceKey(), backspaceKey())
	vt.FeedString("7")
	vt.FeedKeys(submitKey())

	got, err := NewCustomType("Port", parseInt).
		WithParseErrorMessage("not a number").
		PromptWith(vt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 7 {
		t.Errorf("answer = %d, want 7", got)
	}
	if !strings.Contains(vt.Output(), "not a number") {
		t.Error("parse failure should show the configured message")
	}
}

func TestCustomType_DefaultOnEmptySubmission(t *testing.T) {
	t.Parallel()

	vt := newTestTerminal()
	vt.FeedKeys(submitKey())

	got, err := NewCustomType("Port", parseInt).WithDefault(8080).PromptWith(vt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 8080 {
		t.Errorf("answer = %d, want the default 8080", got)
	}
	if !strings.Contains(vt.Output(), "(8080)") {
		t.Error("default hint should be rendered")
	}
}

func TestCustomType_ValidatorRunsAfterParse(t *testing.T) {
	t.Parallel()

	positive := func(n int) (string, error) {
		if n <= 0 {
			return "must be positive", nil
		}
		return "", nil
	}

	vt := newTestTerminal()
	vt.FeedString("-1")
	vt.FeedKeys(submitKey(), backspaceKey(), backspaceKey())
	vt.FeedString("3")
	vt.FeedKeys(submitKey())

	got, err := NewCustomType("Count", parseInt).WithValidator(positive).PromptWith(vt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 3 {
		t.Errorf("answer = %d, want 3", got)
	}
	if !strings.Contains(vt.Output(), "must be positive") {
		t.Error("validator message should be rendered")
	}
}

func TestCustomType_NilParserRejected(t *testing.T) {
	t.Parallel()

	_, err := NewCustomType[int]("Port", nil).PromptWith(newTestTerminal())
	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("err = %v, want ErrInvalidConfiguration", err)
	}
}

func TestParseBool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   bool
		wantOK bool
	}{
		{"y", true, true},
		{"yes", true, true},
		{"Y", true, true},
		{"YES", true, true},
		{"n", false, true},
		{"no", false, true},
		{"NO", false, true},
		{" yes ", true, true},
		{"", false, false},
		{"maybe", false, false},
		{"yess", false, false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, ok := ParseBool(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseBool(%q) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestConfirm_AnswerAndCompletionLine(t *testing.T) {
	t.Parallel()

	vt := newTestTerminal()
	vt.FeedString("yes")
	vt.FeedKeys(submitKey())

	got, err := NewConfirm("Continue?").PromptWith(vt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got {
		t.Error("answer = false, want true")
	}
	if !strings.Contains(vt.Output(), "Yes") {
		t.Error("completion line should show the formatted answer")
	}
}

func TestConfirm_RejectsUnknownAnswers(t *testing.T) {
	t.Parallel()

	vt := newTestTerminal()
	vt.FeedString("k")
	vt.FeedKeys(submitKey(), backspaceKey())
	vt.FeedString("n")
	vt.FeedKeys(submitKey())

	got, err := NewConfirm("Continue?").PromptWith(vt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got {
		t.Error("answer = true, want false")
	}
	if !strings.Contains(vt.Output(), "answer with y or n") {
		t.Error("unknown answers should show the y/n hint")
	}
}

func TestConfirm_DefaultWithFormattedHint(t *testing.T) {
	t.Parallel()

	vt := newTestTerminal()
	vt.FeedKeys(submitKey())

	got, err := NewConfirm("Continue?").WithDefault(true).PromptWith(vt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got {
		t.Error("answer = false, want the default true")
	}
	if !strings.Contains(vt.Output(), "(Y/n)") {
		t.Error("default hint should use the capitalised Y/n form")
	}
}
