// ABOUTME: Tests for the shared prompt loop: cancel, interrupt, final line
// ABOUTME: Shared scripted-key helpers for the per-prompt tests

package askline

import (
	"errors"
	"strings"
	"testing"

	"github.com/askline/askline/key"
	"github.com/askline/askline/terminal"
)

func newTestTerminal() *terminal.VirtualTerminal {
	return terminal.NewVirtualTerminal(80, 24)
}

func keysOf(types ...key.Type) []key.Key {
	out := make([]key.Key, len(types))
	for i, ty := range types {
		out[i] = key.Key{Type: ty}
	}
	return out
}

func submitKey() key.Key    { return key.Key{Type: key.Enter} }
func backspaceKey() key.Key { return key.Key{Type: key.Backspace} }
func escapeKey() key.Key    { return key.Key{Type: key.Escape} }
func interruptKey() key.Key { return key.Key{Type: key.Rune, Rune: 'c', Ctrl: true} }

func TestRunLoop_InterruptSurfacesImmediately(t *testing.T) {
	t.Parallel()

	vt := newTestTerminal()
	vt.FeedString("hi")
	vt.FeedKeys(interruptKey())

	_, err := NewText("Name?").PromptWith(vt)
	if !errors.Is(err, ErrInterrupted) {
		t.Fatalf("err = %v, want ErrInterrupted", err)
	}
	if strings.Contains(vt.Output(), DefaultRenderConfig().CanceledLabel.Text) {
		t.Error("interrupt must not render the canceled line")
	}
}

func TestRunLoop_CancelRendersCanceledLine(t *testing.T) {
	t.Parallel()

	vt := newTestTerminal()
	vt.FeedString("hi")
	vt.FeedKeys(escapeKey())

	_, err := NewText("Name?").PromptWith(vt)
	if !errors.Is(err, ErrCanceled) {
		t.Fatalf("err = %v, want ErrCanceled", err)
	}
	if !strings.Contains(vt.Output(), DefaultRenderConfig().CanceledLabel.Text) {
		t.Error("cancel should render the canceled indicator")
	}
}

func TestRunLoop_FinalLineShowsAnswer(t *testing.T) {
	t.Parallel()

	vt := newTestTerminal()
	vt.FeedString("ok")
	vt.FeedKeys(submitKey())

	got, err := NewText("Proceed?").PromptWith(vt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ok" {
		t.Errorf("answer = %q, want %q", got, "ok")
	}
	if !strings.Contains(vt.Output(), "Proceed?") {
		t.Error("final line should repeat the message")
	}
}

func TestRunLoop_ValidatorUserErrorAborts(t *testing.T) {
	t.Parallel()

	boom := errors.New("backend unavailable")
	vt := newTestTerminal()
	vt.FeedString("x")
	vt.FeedKeys(submitKey())

	_, err := NewText("Name?").
		WithValidator(func(string) (string, error) { return "", boom }).
		PromptWith(vt)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped user error", err)
	}
}

func TestSkippable(t *testing.T) {
	t.Parallel()

	if _, ok, err := skippable("", ErrCanceled); ok || err != nil {
		t.Errorf("cancel: ok=%v err=%v, want swallowed", ok, err)
	}
	if _, _, err := skippable("", ErrInterrupted); !errors.Is(err, ErrInterrupted) {
		t.Errorf("interrupt: err=%v, want preserved", err)
	}
	if v, ok, err := skippable("yes", nil); v != "yes" || !ok || err != nil {
		t.Errorf("success: v=%q ok=%v err=%v", v, ok, err)
	}
}
