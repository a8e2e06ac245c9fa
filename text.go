// ABOUTME: Text prompt: grapheme input buffer plus live suggestion list
// ABOUTME: Tab completes via the Autocompleter; validators gate submission

package askline

import (
	"github.com/askline/askline/frame"
	"github.com/askline/askline/input"
	"github.com/askline/askline/internal/log"
	"github.com/askline/askline/key"
	"github.com/askline/askline/terminal"
)

// Text asks for a free-form line of text, optionally autocompleted.
type Text struct {
	msg        string
	opts       promptOptions
	in         *input.Buffer
	def        string
	hasDefault bool
	completer  Autocompleter
	validators []Validator[string]
	formatter  Formatter[string]

	suggestions []string
	// sugCursor indexes {typed text} ∪ suggestions: 0 is the typed text,
	// i > 0 highlights suggestions[i-1].
	sugCursor int
	errMsg    string
	answer    string
}

// NewText builds a text prompt with the given message.
func NewText(message string) *Text {
	return &Text{
		msg:  message,
		opts: defaultOptions(),
		in:   input.New(),
	}
}

// WithDefault sets the value submitted when the buffer is left empty.
func (t *Text) WithDefault(value string) *Text {
	t.def = value
	t.hasDefault = true
	return t
}

// WithInitialValue seeds the input buffer.
func (t *Text) WithInitialValue(value string) *Text {
	t.in = input.NewWith(value)
	return t
}

// WithPlaceholder sets dim hint text shown while the buffer is empty.
func (t *Text) WithPlaceholder(p string) *Text {
	t.in.WithPlaceholder(p)
	return t
}

// WithAutocomplete plugs in the suggestion provider.
func (t *Text) WithAutocomplete(c Autocompleter) *Text {
	t.completer = c
	return t
}

// WithValidator appends a validator; validators run in insertion order.
func (t *Text) WithValidator(v Validator[string]) *Text {
	t.validators = append(t.validators, v)
	return t
}

// WithFormatter sets the display form of the submitted answer.
func (t *Text) WithFormatter(f Formatter[string]) *Text {
	t.formatter = f
	return t
}

// WithHelpMessage renders a help hint after the message.
func (t *Text) WithHelpMessage(help string) *Text {
	t.opts.help = help
	return t
}

// WithPageSize bounds the visible suggestion window.
func (t *Text) WithPageSize(n int) *Text {
	t.opts.pageSize = n
	return t
}

// WithRenderConfig overrides the process-wide render configuration.
func (t *Text) WithRenderConfig(rc RenderConfig) *Text {
	t.opts.config = rc
	return t
}

// Prompt runs the prompt on the process terminal.
func (t *Text) Prompt() (string, error) {
	if err := runOnTerminal(t, nil); err != nil {
		return "", err
	}
	return t.answer, nil
}

// PromptWith runs the prompt on the supplied terminal backend.
func (t *Text) PromptWith(term terminal.Terminal) (string, error) {
	if err := runLoop(term, t); err != nil {
		return "", err
	}
	return t.answer, nil
}

// PromptSkippable treats Esc as "no answer".
func (t *Text) PromptSkippable() (string, bool, error) {
	return skippable(t.Prompt())
}

// textActionKind enumerates what a key can do in a text prompt.
type textActionKind int

const (
	textInsert textActionKind = iota
	textMoveCursor
	textDelete
	textAutocomplete
	textSuggestionUp
	textSuggestionDown
	textSuggestionPageUp
	textSuggestionPageDown
)

type textAction struct {
	kind textActionKind
	mag  input.Magnitude
	dir  input.Direction
	r    rune
}

func (t *Text) message() string            { return t.msg }
func (t *Text) renderConfig() RenderConfig { return t.opts.config }

// fromKey maps a key event to a text action. Unmapped keys that carry a
// printable rune are forwarded to the input buffer.
func (t *Text) fromKey(k key.Key) (textAction, bool) {
	switch k.Type {
	case key.Left:
		return textAction{kind: textMoveCursor, mag: charOrWord(k), dir: input.Left}, true
	case key.Right:
		return textAction{kind: textMoveCursor, mag: charOrWord(k), dir: input.Right}, true
	case key.Home:
		return textAction{kind: textMoveCursor, mag: input.Line, dir: input.Left}, true
	case key.End:
		return textAction{kind: textMoveCursor, mag: input.Line, dir: input.Right}, true
	case key.Backspace:
		return textAction{kind: textDelete, mag: charOrWord(k), dir: input.Left}, true
	case key.Delete:
		return textAction{kind: textDelete, mag: charOrWord(k), dir: input.Right}, true
	case key.Up:
		return textAction{kind: textSuggestionUp}, true
	case key.Down:
		return textAction{kind: textSuggestionDown}, true
	case key.PageUp:
		return textAction{kind: textSuggestionPageUp}, true
	case key.PageDown:
		return textAction{kind: textSuggestionPageDown}, true
	case key.Tab:
		if t.completer != nil {
			return textAction{kind: textAutocomplete}, true
		}
		return textAction{}, false
	case key.Space:
		return textAction{kind: textInsert, r: ' '}, true
	case key.Rune:
		if k.Ctrl || k.Alt {
			return textAction{}, false
		}
		return textAction{kind: textInsert, r: k.Rune}, true
	}
	return textAction{}, false
}

// charOrWord widens a motion to word granularity when Ctrl is held.
func charOrWord(k key.Key) input.Magnitude {
	if k.Ctrl {
		return input.Word
	}
	return input.Char
}

func (t *Text) handle(a textAction) ActionResult {
	switch a.kind {
	case textInsert:
		t.onBufferChange(t.in.Insert(a.r))
		return NeedsRedraw
	case textMoveCursor:
		if t.in.MoveCursor(a.mag, a.dir) == input.Clean {
			return Clean
		}
		return NeedsRedraw
	case textDelete:
		change := t.in.Delete(a.mag, a.dir)
		t.onBufferChange(change)
		if change == input.Clean {
			return Clean
		}
		return NeedsRedraw
	case textAutocomplete:
		return t.complete()
	case textSuggestionUp:
		return t.moveSuggestion(-1)
	case textSuggestionDown:
		return t.moveSuggestion(1)
	case textSuggestionPageUp:
		return t.moveSuggestion(-t.opts.pageSize)
	case textSuggestionPageDown:
		return t.moveSuggestion(t.opts.pageSize)
	}
	return Clean
}

// onBufferChange refreshes suggestions after any content change and resets
// the suggestion cursor to the typed text.
func (t *Text) onBufferChange(change input.Change) {
	if change != input.ContentChanged {
		return
	}
	t.errMsg = ""
	t.sugCursor = 0
	t.refreshSuggestions()
}

func (t *Text) refreshSuggestions() {
	if t.completer == nil {
		return
	}
	suggestions, err := t.completer.GetSuggestions(t.in.Content())
	if err != nil {
		log.Warn("autocompleter failed: %v", err)
		suggestions = nil
	}
	t.suggestions = suggestions
}

func (t *Text) moveSuggestion(delta int) ActionResult {
	next := t.sugCursor + delta
	if next < 0 {
		next = 0
	}
	if next > len(t.suggestions) {
		next = len(t.suggestions)
	}
	if next == t.sugCursor {
		return Clean
	}
	t.sugCursor = next
	return NeedsRedraw
}

// complete asks the autocompleter for a replacement of the typed text.
func (t *Text) complete() ActionResult {
	highlighted := ""
	hasHighlight := false
	if t.sugCursor > 0 && t.sugCursor <= len(t.suggestions) {
		highlighted = t.suggestions[t.sugCursor-1]
		hasHighlight = true
	}
	replacement, ok, err := t.completer.GetCompletion(t.in.Content(), highlighted, hasHighlight)
	if err != nil {
		log.Warn("completion failed: %v", err)
		return Clean
	}
	if !ok {
		return Clean
	}
	t.onBufferChange(t.in.SetContent(replacement))
	return NeedsRedraw
}

func (t *Text) render(r *frame.Renderer) {
	rc := t.opts.config
	renderHeader(r, rc, t.msg, t.errMsg, t.opts.help)

	if t.hasDefault && t.in.IsEmpty() {
		r.WriteStyled("("+t.def+") ", rc.DefaultHintSheet)
	}

	if t.in.IsEmpty() && t.in.Placeholder() != "" {
		r.MarkCursor(0)
		r.WriteStyled(t.in.Placeholder(), rc.PlaceholderSheet)
	} else {
		pre := t.in.PreCursor()
		r.Write(pre)
		r.MarkCursor(0)
		r.Write(t.in.Content()[len(pre):])
	}

	if len(t.suggestions) == 0 {
		return
	}
	pg := paginate(t.opts.pageSize, t.suggestions, max(t.sugCursor-1, 0))
	for i, s := range pg.items {
		r.Write("\n")
		abs := pg.start + i
		highlighted := t.sugCursor > 0 && abs == t.sugCursor-1
		renderListRow(r, rc, listRow{
			text:        s,
			highlighted: highlighted,
			scrollUp:    i == 0 && !pg.first,
			scrollDown:  i == len(pg.items)-1 && !pg.last,
		})
	}
}

func (t *Text) submit() (string, bool, error) {
	answer := t.in.Content()
	switch {
	case t.sugCursor > 0 && t.sugCursor <= len(t.suggestions):
		answer = t.suggestions[t.sugCursor-1]
	case answer == "" && t.hasDefault:
		answer = t.def
	}

	msg, err := runValidators(t.validators, answer)
	if err != nil {
		return "", false, err
	}
	if msg != "" {
		t.errMsg = msg
		return "", false, nil
	}

	t.answer = answer
	return t.formatAnswer(answer), true, nil
}

func (t *Text) formatAnswer(answer string) string {
	if t.formatter != nil {
		return t.formatter(answer)
	}
	return answer
}
