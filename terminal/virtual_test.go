// ABOUTME: Tests for the scripted VirtualTerminal used by the prompt tests
// ABOUTME: Covers key normalization, output capture, and size failures

package terminal

import (
	"errors"
	"io"
	"testing"

	"github.com/askline/askline/key"
)

func TestVirtualTerminal_NormalizesScriptedKeys(t *testing.T) {
	t.Parallel()

	vt := NewVirtualTerminal(80, 24)
	vt.FeedKeys(
		key.Key{Type: key.Enter},
		key.Key{Type: key.Escape},
		key.Key{Type: key.Rune, Rune: 'c', Ctrl: true},
	)

	want := []key.Type{key.Submit, key.Cancel, key.Interrupt}
	for i, w := range want {
		k, err := vt.ReadKey()
		if err != nil {
			t.Fatalf("ReadKey %d: unexpected error %v", i, err)
		}
		if k.Type != w {
			t.Errorf("ReadKey %d type = %v, want %v", i, k.Type, w)
		}
	}
	if _, err := vt.ReadKey(); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF after the script, got %v", err)
	}
}

func TestVirtualTerminal_CapturesCursorMotion(t *testing.T) {
	t.Parallel()

	vt := NewVirtualTerminal(80, 24)
	vt.Write("hi")
	vt.CursorUp(2)
	vt.CursorToColumn(3)

	if got, want := vt.Output(), "hi\x1b[2A\r\x1b[3C"; got != want {
		t.Errorf("Output() = %q, want %q", got, want)
	}
}

func TestVirtualTerminal_SizeFailureInjection(t *testing.T) {
	t.Parallel()

	vt := NewVirtualTerminal(80, 24)
	if w, h, err := vt.Size(); err != nil || w != 80 || h != 24 {
		t.Fatalf("Size() = %d, %d, %v, want 80, 24, nil", w, h, err)
	}

	boom := errors.New("no tty")
	vt.FailSize(boom)
	if _, _, err := vt.Size(); !errors.Is(err, boom) {
		t.Errorf("Size() err = %v, want the injected error", err)
	}
}
