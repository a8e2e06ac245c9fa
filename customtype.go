// ABOUTME: Generic typed prompt: free text run through a caller-supplied parser
// ABOUTME: Parse failures re-prompt with a configurable message, never abort

package askline

import (
	"fmt"

	"github.com/askline/askline/frame"
	"github.com/askline/askline/input"
	"github.com/askline/askline/key"
	"github.com/askline/askline/terminal"
)

// CustomType asks for a value of any type T by parsing typed text. An empty
// submission returns the default when one is set.
type CustomType[T any] struct {
	msg  string
	opts promptOptions

	in          *input.Buffer
	def         *T
	parser      Parser[T]
	formatter   Formatter[T]
	defFmt      Formatter[T]
	parseErrMsg string

	validators []Validator[T]
	errMsg     string
	answer     T
}

// NewCustomType returns a typed prompt using the given parser.
func NewCustomType[T any](message string, parser Parser[T]) *CustomType[T] {
	return &CustomType[T]{
		msg:         message,
		opts:        defaultOptions(),
		in:          input.New(),
		parser:      parser,
		parseErrMsg: "invalid input",
	}
}

// WithDefault sets the value returned on an empty submission.
func (c *CustomType[T]) WithDefault(v T) *CustomType[T] {
	c.def = &v
	return c
}

// WithPlaceholder shows dimmed hint text while the buffer is empty.
func (c *CustomType[T]) WithPlaceholder(p string) *CustomType[T] {
	c.in.WithPlaceholder(p)
	return c
}

// WithParseErrorMessage replaces the message shown when parsing fails.
func (c *CustomType[T]) WithParseErrorMessage(msg string) *CustomType[T] {
	c.parseErrMsg = msg
	return c
}

// WithFormatter controls how the answer appears on the completion line.
func (c *CustomType[T]) WithFormatter(f Formatter[T]) *CustomType[T] {
	c.formatter = f
	return c
}

// WithDefaultFormatter controls how the default value appears in the
// prompt's hint.
func (c *CustomType[T]) WithDefaultFormatter(f Formatter[T]) *CustomType[T] {
	c.defFmt = f
	return c
}

// WithValidator appends a validator, run after a successful parse.
func (c *CustomType[T]) WithValidator(v Validator[T]) *CustomType[T] {
	c.validators = append(c.validators, v)
	return c
}

// WithHelpMessage shows a help hint after the message.
func (c *CustomType[T]) WithHelpMessage(help string) *CustomType[T] {
	c.opts.help = help
	return c
}

// WithRenderConfig overrides the prompt's render configuration.
func (c *CustomType[T]) WithRenderConfig(rc RenderConfig) *CustomType[T] {
	c.opts.config = rc
	return c
}

// Prompt runs the prompt on the process terminal.
func (c *CustomType[T]) Prompt() (T, error) {
	var zero T
	if err := runOnTerminal[customAction](c, c.validate); err != nil {
		return zero, err
	}
	return c.answer, nil
}

// PromptWith runs the prompt on the given terminal.
func (c *CustomType[T]) PromptWith(t terminal.Terminal) (T, error) {
	var zero T
	if err := c.validate(); err != nil {
		return zero, err
	}
	if err := runLoop[customAction](t, c); err != nil {
		return zero, err
	}
	return c.answer, nil
}

// PromptSkippable runs the prompt, reporting cancellation as ok=false.
func (c *CustomType[T]) PromptSkippable() (T, bool, error) {
	return skippable(c.Prompt())
}

func (c *CustomType[T]) validate() error {
	if c.parser == nil {
		return fmt.Errorf("%w: custom type prompt has no parser", ErrInvalidConfiguration)
	}
	return nil
}

type customAction struct {
	key key.Key
}

func (c *CustomType[T]) message() string            { return c.msg }
func (c *CustomType[T]) renderConfig() RenderConfig { return c.opts.config }

func (c *CustomType[T]) fromKey(k key.Key) (customAction, bool) {
	switch k.Type {
	case key.Rune:
		if k.Ctrl || k.Alt {
			return customAction{}, false
		}
		return customAction{key: k}, true
	case key.Space, key.Backspace, key.Delete, key.Left, key.Right, key.Home, key.End:
		return customAction{key: k}, true
	}
	return customAction{}, false
}

func (c *CustomType[T]) handle(a customAction) ActionResult {
	var change input.Change
	switch a.key.Type {
	case key.Rune:
		change = c.in.Insert(a.key.Rune)
	case key.Space:
		change = c.in.Insert(' ')
	case key.Backspace:
		change = c.in.Delete(charOrWord(a.key), input.Left)
	case key.Delete:
		change = c.in.Delete(charOrWord(a.key), input.Right)
	case key.Left:
		change = c.in.MoveCursor(charOrWord(a.key), input.Left)
	case key.Right:
		change = c.in.MoveCursor(charOrWord(a.key), input.Right)
	case key.Home:
		change = c.in.MoveCursor(input.Line, input.Left)
	case key.End:
		change = c.in.MoveCursor(input.Line, input.Right)
	}
	if change == input.ContentChanged {
		c.errMsg = ""
	}
	if change == input.Clean {
		return Clean
	}
	return NeedsRedraw
}

func (c *CustomType[T]) render(r *frame.Renderer) {
	rc := c.opts.config
	renderHeader(r, rc, c.msg, c.errMsg, c.opts.help)
	if c.def != nil {
		r.WriteStyled("("+c.formatDefault(*c.def)+") ", rc.DefaultHintSheet)
	}
	if c.in.IsEmpty() && c.in.Placeholder() != "" {
		r.MarkCursor(0)
		r.WriteStyled(c.in.Placeholder(), rc.PlaceholderSheet)
	} else {
		pre := c.in.PreCursor()
		r.Write(pre)
		r.MarkCursor(0)
		r.Write(c.in.Content()[len(pre):])
	}
	r.Write("\n")
}

func (c *CustomType[T]) submit() (string, bool, error) {
	var value T
	if c.in.IsEmpty() && c.def != nil {
		value = *c.def
	} else {
		parsed, ok := c.parser(c.in.Content())
		if !ok {
			c.errMsg = c.parseErrMsg
			return "", false, nil
		}
		value = parsed
	}

	if msg, err := runValidators(c.validators, value); err != nil {
		return "", false, err
	} else if msg != "" {
		c.errMsg = msg
		return "", false, nil
	}

	c.answer = value
	if c.formatter != nil {
		return c.formatter(value), true, nil
	}
	return fmt.Sprintf("%v", value), true, nil
}

func (c *CustomType[T]) formatDefault(v T) string {
	if c.defFmt != nil {
		return c.defFmt(v)
	}
	if c.formatter != nil {
		return c.formatter(v)
	}
	return fmt.Sprintf("%v", v)
}
