// ABOUTME: Password prompt: hidden/masked/full echo with optional confirmation
// ABOUTME: Two-stage state machine; Esc in the confirmation stage backs out

package askline

import (
	"strings"

	"github.com/askline/askline/frame"
	"github.com/askline/askline/input"
	"github.com/askline/askline/key"
	"github.com/askline/askline/terminal"
)

// PasswordDisplayMode controls how typed password content is echoed.
type PasswordDisplayMode int

const (
	// PasswordHidden echoes nothing.
	PasswordHidden PasswordDisplayMode = iota
	// PasswordMasked echoes one mask glyph per grapheme.
	PasswordMasked
	// PasswordFull echoes the typed content verbatim.
	PasswordFull
)

// Password asks for a secret, optionally confirmed by typing it twice.
type Password struct {
	msg        string
	confirmMsg string
	opts       promptOptions

	mode         PasswordDisplayMode
	effMode      PasswordDisplayMode
	enableToggle bool
	confirmation bool

	primary *input.Buffer
	confirm *input.Buffer
	stage   int

	validators []Validator[string]
	formatter  Formatter[string]
	errMsg     string
	answer     string
}

// NewPassword returns a password prompt in hidden display mode.
func NewPassword(message string) *Password {
	return &Password{
		msg:        message,
		confirmMsg: "Confirm the password",
		opts:       defaultOptions(),
		primary:    input.New(),
		confirm:    input.New(),
		stage:      1,
	}
}

// WithDisplayMode sets the standard echo mode.
func (p *Password) WithDisplayMode(mode PasswordDisplayMode) *Password {
	p.mode = mode
	p.effMode = mode
	return p
}

// WithDisplayToggle allows Ctrl-R to flip between the standard mode and
// full echo.
func (p *Password) WithDisplayToggle() *Password {
	p.enableToggle = true
	return p
}

// WithConfirmation requires the secret to be typed twice; mismatches
// restart from the first stage.
func (p *Password) WithConfirmation() *Password {
	p.confirmation = true
	return p
}

// WithConfirmMessage replaces the confirmation stage's message.
func (p *Password) WithConfirmMessage(message string) *Password {
	p.confirmMsg = message
	return p
}

// WithValidator appends a validator, run against the primary buffer at the
// first stage's submission.
func (p *Password) WithValidator(v Validator[string]) *Password {
	p.validators = append(p.validators, v)
	return p
}

// WithFormatter sets the formatter used for the completion line. Without
// one the completion line shows no answer text.
func (p *Password) WithFormatter(f Formatter[string]) *Password {
	p.formatter = f
	return p
}

// WithHelpMessage shows a help hint after the message.
func (p *Password) WithHelpMessage(help string) *Password {
	p.opts.help = help
	return p
}

// WithRenderConfig overrides the prompt's render configuration.
func (p *Password) WithRenderConfig(rc RenderConfig) *Password {
	p.opts.config = rc
	return p
}

// Prompt runs the prompt on the process terminal.
func (p *Password) Prompt() (string, error) {
	if err := runOnTerminal[passwordAction](p, nil); err != nil {
		return "", err
	}
	return p.answer, nil
}

// PromptWith runs the prompt on the given terminal.
func (p *Password) PromptWith(t terminal.Terminal) (string, error) {
	if err := runLoop[passwordAction](t, p); err != nil {
		return "", err
	}
	return p.answer, nil
}

// PromptSkippable runs the prompt, reporting cancellation as ok=false.
func (p *Password) PromptSkippable() (string, bool, error) {
	return skippable(p.Prompt())
}

type passwordActionKind int

const (
	pwEdit passwordActionKind = iota
	pwToggleDisplay
	pwBackToFirstStage
)

type passwordAction struct {
	kind passwordActionKind
	key  key.Key
}

func (p *Password) message() string {
	if p.stage == 2 {
		return p.confirmMsg
	}
	return p.msg
}

func (p *Password) renderConfig() RenderConfig { return p.opts.config }

func (p *Password) fromKey(k key.Key) (passwordAction, bool) {
	switch k.Type {
	case key.Cancel:
		if p.stage == 2 {
			return passwordAction{kind: pwBackToFirstStage}, true
		}
		return passwordAction{}, false
	case key.Rune:
		if k.Ctrl && k.Rune == 'r' {
			if p.enableToggle {
				return passwordAction{kind: pwToggleDisplay}, true
			}
			return passwordAction{}, false
		}
		if k.Ctrl || k.Alt {
			return passwordAction{}, false
		}
		return passwordAction{kind: pwEdit, key: k}, true
	case key.Space, key.Backspace, key.Delete, key.Left, key.Right, key.Home, key.End:
		return passwordAction{kind: pwEdit, key: k}, true
	}
	return passwordAction{}, false
}

func (p *Password) handle(a passwordAction) ActionResult {
	switch a.kind {
	case pwEdit:
		return p.edit(a.key)

	case pwToggleDisplay:
		if p.effMode == PasswordFull {
			p.effMode = p.mode
		} else {
			p.effMode = PasswordFull
		}
		return NeedsRedraw

	case pwBackToFirstStage:
		p.stage = 1
		p.errMsg = ""
		p.confirm.Clear()
		if p.mode == PasswordHidden {
			p.primary.Clear()
		}
		return NeedsRedraw
	}
	return Clean
}

func (p *Password) edit(k key.Key) ActionResult {
	buf := p.primary
	if p.stage == 2 {
		buf = p.confirm
	}
	var change input.Change
	switch k.Type {
	case key.Rune:
		change = buf.Insert(k.Rune)
	case key.Space:
		change = buf.Insert(' ')
	case key.Backspace:
		change = buf.Delete(charOrWord(k), input.Left)
	case key.Delete:
		change = buf.Delete(charOrWord(k), input.Right)
	case key.Left:
		change = buf.MoveCursor(charOrWord(k), input.Left)
	case key.Right:
		change = buf.MoveCursor(charOrWord(k), input.Right)
	case key.Home:
		change = buf.MoveCursor(input.Line, input.Left)
	case key.End:
		change = buf.MoveCursor(input.Line, input.Right)
	}
	if change == input.ContentChanged {
		p.errMsg = ""
	}
	if change == input.Clean {
		return Clean
	}
	return NeedsRedraw
}

func (p *Password) render(r *frame.Renderer) {
	renderHeader(r, p.opts.config, p.message(), p.errMsg, p.opts.help)

	buf := p.primary
	if p.stage == 2 {
		buf = p.confirm
	}
	switch p.effMode {
	case PasswordHidden:
		r.MarkCursor(0)
	case PasswordMasked:
		mask := string(p.opts.config.MaskRune)
		r.Write(strings.Repeat(mask, buf.Cursor()))
		r.MarkCursor(0)
		r.Write(strings.Repeat(mask, buf.Length()-buf.Cursor()))
	case PasswordFull:
		pre := buf.PreCursor()
		r.Write(pre)
		r.MarkCursor(0)
		r.Write(buf.Content()[len(pre):])
	}
	r.Write("\n")
}

func (p *Password) submit() (string, bool, error) {
	if p.stage == 2 {
		if p.primary.Content() != p.confirm.Content() {
			p.stage = 1
			p.confirm.Clear()
			p.errMsg = "the answers do not match"
			return "", false, nil
		}
		p.answer = p.confirm.Content()
	} else {
		if msg, err := runValidators(p.validators, p.primary.Content()); err != nil {
			return "", false, err
		} else if msg != "" {
			p.errMsg = msg
			return "", false, nil
		}
		if p.confirmation {
			p.stage = 2
			p.confirm.Clear()
			return "", false, nil
		}
		p.answer = p.primary.Content()
	}
	if p.formatter != nil {
		return p.formatter(p.answer), true, nil
	}
	return "", true, nil
}
