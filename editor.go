// ABOUTME: Editor handoff prompt: hands a temp file to the user's $EDITOR
// ABOUTME: The temp file is removed on every exit path

package askline

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/askline/askline/frame"
	"github.com/askline/askline/key"
	"github.com/askline/askline/terminal"
)

// Editor asks for long-form text by opening an external editor on a
// temporary file.
type Editor struct {
	msg  string
	opts promptOptions

	command    string
	args       []string
	ext        string
	predefined string

	validators []Validator[string]
	formatter  Formatter[string]
	errMsg     string
	answer     string

	term terminal.Terminal
	path string
}

// NewEditor returns an editor prompt. The editor command comes from
// EDITOR, then VISUAL, then the platform default.
func NewEditor(message string) *Editor {
	return &Editor{
		msg:     message,
		opts:    defaultOptions(),
		command: defaultEditorCommand(),
		ext:     ".txt",
	}
}

// WithEditorCommand overrides the editor binary and its leading arguments.
// The temp file path is always appended as the last argument.
func (e *Editor) WithEditorCommand(command string, args ...string) *Editor {
	e.command = command
	e.args = args
	return e
}

// WithFileExtension sets the temp file's extension, so editors pick the
// right syntax mode.
func (e *Editor) WithFileExtension(ext string) *Editor {
	e.ext = ext
	return e
}

// WithPredefinedText seeds the temp file before the first editor launch.
func (e *Editor) WithPredefinedText(text string) *Editor {
	e.predefined = text
	return e
}

// WithValidator appends a validator, run against the file content on
// submission.
func (e *Editor) WithValidator(v Validator[string]) *Editor {
	e.validators = append(e.validators, v)
	return e
}

// WithFormatter controls how the answer appears on the completion line.
// The default shows a received marker rather than the content.
func (e *Editor) WithFormatter(f Formatter[string]) *Editor {
	e.formatter = f
	return e
}

// WithHelpMessage replaces the default key hint.
func (e *Editor) WithHelpMessage(help string) *Editor {
	e.opts.help = help
	return e
}

// WithRenderConfig overrides the prompt's render configuration.
func (e *Editor) WithRenderConfig(rc RenderConfig) *Editor {
	e.opts.config = rc
	return e
}

// Prompt runs the prompt on the process terminal.
func (e *Editor) Prompt() (string, error) {
	if err := e.validate(); err != nil {
		return "", err
	}
	t, err := terminal.NewProcessTerminal()
	if err != nil {
		return "", err
	}
	defer t.Close()
	defer terminal.RestoreOnPanic(t)
	return e.PromptWith(t)
}

// PromptWith runs the prompt on the given terminal.
func (e *Editor) PromptWith(t terminal.Terminal) (string, error) {
	if err := e.validate(); err != nil {
		return "", err
	}
	f, err := os.CreateTemp("", "askline-*"+e.ext)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	e.path = f.Name()
	defer os.Remove(e.path)

	if e.predefined != "" {
		if _, err := f.WriteString(e.predefined); err != nil {
			f.Close()
			return "", fmt.Errorf("seed temp file: %w", err)
		}
	}
	if err := f.Close(); err != nil {
		return "", err
	}

	e.term = t
	if err := runLoop[editorAction](t, e); err != nil {
		return "", err
	}
	return e.answer, nil
}

// PromptSkippable runs the prompt, reporting cancellation as ok=false.
func (e *Editor) PromptSkippable() (string, bool, error) {
	return skippable(e.Prompt())
}

func (e *Editor) validate() error {
	if e.command == "" {
		return fmt.Errorf("%w: no editor command configured", ErrInvalidConfiguration)
	}
	return nil
}

type editorAction int

const editorOpen editorAction = iota

func (e *Editor) message() string            { return e.msg }
func (e *Editor) renderConfig() RenderConfig { return e.opts.config }

func (e *Editor) fromKey(k key.Key) (editorAction, bool) {
	if k.Type == key.Rune && !k.Ctrl && !k.Alt && k.Rune == 'e' {
		return editorOpen, true
	}
	return 0, false
}

func (e *Editor) handle(editorAction) ActionResult {
	e.errMsg = ""
	if err := e.openEditor(); err != nil {
		e.errMsg = err.Error()
	}
	return NeedsRedraw
}

// openEditor leaves raw mode, runs the editor on the temp file, and waits
// for it to exit. The editor owns the terminal for the duration.
func (e *Editor) openEditor() error {
	if s, ok := e.term.(terminal.RawSuspender); ok {
		if err := s.SuspendRaw(); err != nil {
			return err
		}
		defer s.ResumeRaw()
	}
	cmd := exec.Command(e.command, append(append([]string(nil), e.args...), e.path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor exited with an error: %w", err)
	}
	return nil
}

func (e *Editor) render(r *frame.Renderer) {
	rc := e.opts.config
	help := e.opts.help
	if help == "" {
		help = "press e to open the editor, enter to submit"
	}
	renderHeader(r, rc, e.msg, e.errMsg, help)
	r.MarkCursor(0)
	r.Write("\n")
}

func (e *Editor) submit() (string, bool, error) {
	raw, err := os.ReadFile(e.path)
	if err != nil {
		return "", false, fmt.Errorf("read temp file: %w", err)
	}
	content := stripTrailingNewline(string(raw))

	if msg, err := runValidators(e.validators, content); err != nil {
		return "", false, err
	} else if msg != "" {
		e.errMsg = msg
		return "", false, nil
	}

	e.answer = content
	if e.formatter != nil {
		return e.formatter(content), true, nil
	}
	return "<received>", true, nil
}

// stripTrailingNewline removes exactly one trailing CRLF or LF, the one
// most editors append on save.
func stripTrailingNewline(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}

func defaultEditorCommand() string {
	if cmd := os.Getenv("EDITOR"); cmd != "" {
		return cmd
	}
	if cmd := os.Getenv("VISUAL"); cmd != "" {
		return cmd
	}
	if runtime.GOOS == "windows" {
		return "notepad"
	}
	return "nano"
}
