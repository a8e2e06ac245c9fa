// ABOUTME: The shared read-render-handle loop every prompt runs on
// ABOUTME: Handles submit/cancel/interrupt, redraw signalling, and the final line

package askline

import (
	"errors"

	"github.com/askline/askline/frame"
	"github.com/askline/askline/key"
	"github.com/askline/askline/terminal"
)

// ActionResult tells the loop whether a handled action changed anything
// worth redrawing.
type ActionResult int

const (
	// Clean means the action left the visible state untouched.
	Clean ActionResult = iota
	// NeedsRedraw means the next loop iteration must re-render the frame.
	NeedsRedraw
)

// promptModel is the state-machine contract the loop drives. Each prompt
// defines its own action type A, a key-to-action mapper parameterised by its
// configuration, and a handler mutating prompt state.
type promptModel[A any] interface {
	message() string
	renderConfig() RenderConfig
	fromKey(k key.Key) (A, bool)
	handle(a A) ActionResult
	render(r *frame.Renderer)

	// submit resolves the prompt's answer. done=false re-prompts (the
	// prompt records its own error message); a non-nil error aborts.
	submit() (formatted string, done bool, err error)
}

// promptOptions are the configuration knobs shared by every prompt.
type promptOptions struct {
	vimMode  bool
	pageSize int
	help     string
	config   RenderConfig
}

func defaultOptions() promptOptions {
	return promptOptions{
		pageSize: 7,
		config:   DefaultRenderConfig(),
	}
}

// runLoop drives one prompt to completion over the given terminal.
func runLoop[A any](t terminal.Terminal, p promptModel[A]) error {
	r := frame.NewRenderer(t)
	redraw := true
	for {
		if redraw {
			r.StartFrame()
			p.render(r)
			if err := r.FinishFrame(); err != nil {
				return err
			}
			redraw = false
		}

		k, err := t.ReadKey()
		if err != nil {
			return err
		}

		switch k.Type {
		case key.Interrupt:
			// No answered-line render: the current frame is the last
			// terminal state.
			if err := r.Close(); err != nil {
				return err
			}
			return ErrInterrupted

		case key.Cancel:
			// Prompts may claim Cancel for internal transitions, e.g. the
			// password confirmation stage falling back to stage one.
			if a, ok := p.fromKey(k); ok {
				if p.handle(a) == NeedsRedraw {
					redraw = true
				}
				continue
			}
			if err := renderFinal(r, p, "", true); err != nil {
				return err
			}
			return ErrCanceled

		case key.Submit:
			if a, ok := p.fromKey(k); ok {
				if p.handle(a) == NeedsRedraw {
					redraw = true
				}
				continue
			}
			formatted, done, err := p.submit()
			if err != nil {
				return err
			}
			if done {
				return renderFinal(r, p, formatted, false)
			}
			redraw = true

		default:
			if a, ok := p.fromKey(k); ok {
				if p.handle(a) == NeedsRedraw {
					redraw = true
				}
			}
		}
	}
}

// renderFinal replaces the prompt frame with the single completion line:
// the answered prefix, the message, and either the formatted answer or the
// canceled indicator.
func renderFinal[A any](r *frame.Renderer, p promptModel[A], formatted string, canceled bool) error {
	rc := p.renderConfig()
	r.StartFrame()
	r.WriteStyled(rc.AnsweredPrefix.Text, rc.AnsweredPrefix.Sheet)
	r.Write(" ")
	r.WriteStyled(p.message(), rc.MessageSheet)
	r.Write(" ")
	if canceled {
		r.WriteStyled(rc.CanceledLabel.Text, rc.CanceledLabel.Sheet)
	} else {
		r.WriteStyled(formatted, rc.AnswerSheet)
	}
	if err := r.FinishFrame(); err != nil {
		return err
	}
	return r.Close()
}

// renderHeader draws the parts common to every prompt frame: an error line
// above the prompt when a validator rejected the last submission, then the
// prompt prefix, the message, and an optional help hint. The caller
// continues writing on the message line.
func renderHeader(r *frame.Renderer, rc RenderConfig, message, errMsg, help string) {
	if errMsg != "" {
		r.WriteStyled(rc.ErrorPrefix.Text, rc.ErrorPrefix.Sheet)
		r.Write(" ")
		r.WriteStyled(errMsg, rc.ErrorSheet)
		r.Write("\n")
	}
	r.WriteStyled(rc.PromptPrefix.Text, rc.PromptPrefix.Sheet)
	r.Write(" ")
	r.WriteStyled(message, rc.MessageSheet)
	if help != "" {
		r.Write(" ")
		r.WriteStyled("["+help+"]", rc.HelpSheet)
	}
	r.Write(" ")
}

// runOnTerminal validates the prompt's construction, acquires the real
// terminal, and runs the loop. Configuration errors fail fast before any
// terminal state is touched.
func runOnTerminal[A any](p promptModel[A], validate func() error) error {
	if validate != nil {
		if err := validate(); err != nil {
			return err
		}
	}
	t, err := terminal.NewProcessTerminal()
	if err != nil {
		return err
	}
	defer t.Close()
	defer terminal.RestoreOnPanic(t)
	return runLoop(t, p)
}

// skippable translates ErrCanceled into a "no answer" result, preserving
// every other error including ErrInterrupted.
func skippable[T any](value T, err error) (T, bool, error) {
	if err != nil {
		var zero T
		if errors.Is(err, ErrCanceled) {
			return zero, false, nil
		}
		return zero, false, err
	}
	return value, true, nil
}
