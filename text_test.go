// ABOUTME: Tests for the text prompt: editing, defaults, validators, completion
// ABOUTME: Ends with the literal "alice" end-to-end sequence

package askline

import (
	"errors"
	"strings"
	"testing"

	"github.com/askline/askline/key"
)

func TestText_SubmitTypedContent(t *testing.T) {
	t.Parallel()

	vt := newTestTerminal()
	vt.FeedString("alice")
	vt.FeedKeys(submitKey())

	got, err := NewText("Name?").
		WithValidator(Required()).
		WithValidator(MaxLength(140)).
		PromptWith(vt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "alice" {
		t.Errorf("answer = %q, want %q", got, "alice")
	}
}

func TestText_DefaultOnEmptySubmit(t *testing.T) {
	t.Parallel()

	vt := newTestTerminal()
	vt.FeedKeys(submitKey())

	got, err := NewText("Name?").WithDefault("bob").PromptWith(vt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "bob" {
		t.Errorf("answer = %q, want the default %q", got, "bob")
	}
}

func TestText_ValidatorRepromptsThenAccepts(t *testing.T) {
	t.Parallel()

	vt := newTestTerminal()
	vt.FeedKeys(submitKey()) // rejected: empty
	vt.FeedString("x")
	vt.FeedKeys(submitKey())

	got, err := NewText("Name?").WithValidator(Required()).PromptWith(vt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "x" {
		t.Errorf("answer = %q, want %q", got, "x")
	}
	if !strings.Contains(vt.Output(), "value is required") {
		t.Error("expected the validator message in the frame")
	}
}

func TestText_ValidatorsRunInOrderStoppingAtFirstFailure(t *testing.T) {
	t.Parallel()

	var calls []string
	mk := func(name, msg string) Validator[string] {
		return func(string) (string, error) {
			calls = append(calls, name)
			return msg, nil
		}
	}

	vt := newTestTerminal()
	vt.FeedKeys(submitKey(), escapeKey())

	_, err := NewText("Name?").
		WithValidator(mk("first", "nope")).
		WithValidator(mk("second", "")).
		PromptWith(vt)
	if !errors.Is(err, ErrCanceled) {
		t.Fatalf("err = %v, want ErrCanceled", err)
	}
	if len(calls) != 1 || calls[0] != "first" {
		t.Errorf("calls = %v, want just the first validator", calls)
	}
}

func TestText_EditingKeys(t *testing.T) {
	t.Parallel()

	vt := newTestTerminal()
	vt.FeedString("abd")
	vt.FeedKeys(key.Key{Type: key.Left})
	vt.FeedString("c")
	vt.FeedKeys(key.Key{Type: key.End}, key.Key{Type: key.Backspace}, submitKey())

	got, err := NewText("Edit").PromptWith(vt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "abc" {
		t.Errorf("answer = %q, want %q", got, "abc")
	}
}

// scriptedCompleter suggests every option with the typed prefix and
// completes to the highlighted suggestion.
type scriptedCompleter struct {
	options []string
}

func (c *scriptedCompleter) GetSuggestions(text string) ([]string, error) {
	var out []string
	for _, o := range c.options {
		if strings.HasPrefix(o, text) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (c *scriptedCompleter) GetCompletion(text, highlighted string, hasHighlight bool) (string, bool, error) {
	if hasHighlight {
		return highlighted, true, nil
	}
	sugs, _ := c.GetSuggestions(text)
	if len(sugs) == 1 {
		return sugs[0], true, nil
	}
	return "", false, nil
}

func TestText_SuggestionCursorSelectsOnSubmit(t *testing.T) {
	t.Parallel()

	vt := newTestTerminal()
	vt.FeedString("do")
	vt.FeedKeys(key.Key{Type: key.Down}, key.Key{Type: key.Down}, submitKey())

	got, err := NewText("Cmd?").
		WithAutocomplete(&scriptedCompleter{options: []string{"dock", "double", "down"}}).
		PromptWith(vt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "double" {
		t.Errorf("answer = %q, want the second suggestion %q", got, "double")
	}
}

func TestText_TabCompletesUniquePrefix(t *testing.T) {
	t.Parallel()

	vt := newTestTerminal()
	vt.FeedString("dou")
	vt.FeedKeys(key.Key{Type: key.Tab}, submitKey())

	got, err := NewText("Cmd?").
		WithAutocomplete(&scriptedCompleter{options: []string{"dock", "double"}}).
		PromptWith(vt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "double" {
		t.Errorf("answer = %q, want completed %q", got, "double")
	}
}

func TestText_ContentChangeResetsSuggestionCursor(t *testing.T) {
	t.Parallel()

	vt := newTestTerminal()
	vt.FeedString("d")
	vt.FeedKeys(key.Key{Type: key.Down}) // highlight "dock"
	vt.FeedString("o")                   // typing resets the highlight
	vt.FeedKeys(submitKey())

	got, err := NewText("Cmd?").
		WithAutocomplete(&scriptedCompleter{options: []string{"dock", "double"}}).
		PromptWith(vt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "do" {
		t.Errorf("answer = %q, want the typed text %q", got, "do")
	}
}

func TestText_FormatterOnlyAffectsDisplay(t *testing.T) {
	t.Parallel()

	vt := newTestTerminal()
	vt.FeedString("abc")
	vt.FeedKeys(submitKey())

	got, err := NewText("Name?").
		WithFormatter(func(s string) string { return strings.ToUpper(s) }).
		PromptWith(vt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "abc" {
		t.Errorf("answer = %q, want the raw %q", got, "abc")
	}
	if !strings.Contains(vt.Output(), "ABC") {
		t.Error("the completion line should show the formatted answer")
	}
}
