// ABOUTME: Single-choice select prompt with live fuzzy filtering
// ABOUTME: Wrap-around cursor, saturating page motion, vim j/k bindings

package askline

import (
	"fmt"

	"github.com/askline/askline/frame"
	"github.com/askline/askline/key"
	"github.com/askline/askline/terminal"
)

// Select asks the user to pick exactly one option from a list, optionally
// narrowed by typing a filter.
type Select struct {
	msg    string
	opts   promptOptions
	list   *listState
	errMsg string
	answer string
}

// NewSelect returns a select prompt over the given options. The options
// slice is copied; later mutation by the caller has no effect.
func NewSelect(message string, options []string) *Select {
	return &Select{
		msg:  message,
		opts: defaultOptions(),
		list: newListState(append([]string(nil), options...)),
	}
}

// WithStartingCursor positions the cursor on the given option index before
// the first frame. Out-of-range values fail at prompt entry.
func (s *Select) WithStartingCursor(idx int) *Select {
	s.list.cursor = idx
	return s
}

// WithFilteringDisabled turns off the live filter: typed runes are ignored
// instead of narrowing the list.
func (s *Select) WithFilteringDisabled() *Select {
	s.list.filterEnabled = false
	return s
}

// WithResetCursor resets the cursor to the first row on every filter
// change, instead of clamping it into the new view.
func (s *Select) WithResetCursor() *Select {
	s.list.resetCursor = true
	return s
}

// WithScorer replaces the default fuzzy matcher with a custom one.
func (s *Select) WithScorer(sc Scorer) *Select {
	s.list.scorer = sc
	s.list.refilter()
	return s
}

// WithVimMode enables j/k motion keys.
func (s *Select) WithVimMode() *Select {
	s.opts.vimMode = true
	return s
}

// WithPageSize sets the number of visible rows.
func (s *Select) WithPageSize(n int) *Select {
	s.opts.pageSize = n
	return s
}

// WithHelpMessage shows a help hint after the message.
func (s *Select) WithHelpMessage(help string) *Select {
	s.opts.help = help
	return s
}

// WithRenderConfig overrides the prompt's render configuration.
func (s *Select) WithRenderConfig(rc RenderConfig) *Select {
	s.opts.config = rc
	return s
}

// Prompt runs the prompt on the process terminal.
func (s *Select) Prompt() (string, error) {
	if err := runOnTerminal[selectAction](s, s.validate); err != nil {
		return "", err
	}
	return s.answer, nil
}

// PromptWith runs the prompt on the given terminal.
func (s *Select) PromptWith(t terminal.Terminal) (string, error) {
	if err := s.validate(); err != nil {
		return "", err
	}
	if err := runLoop[selectAction](t, s); err != nil {
		return "", err
	}
	return s.answer, nil
}

// PromptSkippable runs the prompt, reporting cancellation as ok=false
// instead of an error.
func (s *Select) PromptSkippable() (string, bool, error) {
	return skippable(s.Prompt())
}

func (s *Select) validate() error {
	if len(s.list.options) == 0 {
		return fmt.Errorf("%w: select has no options", ErrInvalidConfiguration)
	}
	if s.list.cursor < 0 || s.list.cursor >= len(s.list.options) {
		return fmt.Errorf("%w: starting cursor %d out of range", ErrInvalidConfiguration, s.list.cursor)
	}
	return nil
}

type selectActionKind int

const (
	selMove selectActionKind = iota
	selFilterKey
)

type selectAction struct {
	kind selectActionKind
	move func(*listState) ActionResult
	key  key.Key
}

func (s *Select) message() string            { return s.msg }
func (s *Select) renderConfig() RenderConfig { return s.opts.config }

func (s *Select) fromKey(k key.Key) (selectAction, bool) {
	if mv, ok := navFromKey(k, s.opts.vimMode, s.opts.pageSize); ok {
		return selectAction{kind: selMove, move: mv}, true
	}
	if s.list.filterEnabled {
		switch k.Type {
		case key.Rune, key.Space, key.Backspace, key.Delete, key.Left, key.Right:
			return selectAction{kind: selFilterKey, key: k}, true
		}
	}
	return selectAction{}, false
}

func (s *Select) handle(a selectAction) ActionResult {
	switch a.kind {
	case selMove:
		return a.move(s.list)
	case selFilterKey:
		res := s.list.filterKey(a.key)
		if res == NeedsRedraw {
			s.errMsg = ""
		}
		return res
	}
	return Clean
}

func (s *Select) render(r *frame.Renderer) {
	renderHeader(r, s.opts.config, s.msg, s.errMsg, s.opts.help)
	if s.list.filterEnabled {
		s.list.renderFilterLine(r)
	}
	r.Write("\n")

	pg := paginate(s.opts.pageSize, s.list.view, s.list.cursor)
	for i, idx := range pg.items {
		renderListRow(r, s.opts.config, listRow{
			text:        s.list.options[idx],
			highlighted: i == pg.cursorOffset,
			scrollUp:    i == 0 && !pg.first,
			scrollDown:  i == len(pg.items)-1 && !pg.last,
		})
		r.Write("\n")
	}
}

func (s *Select) submit() (string, bool, error) {
	idx, ok := s.list.selected()
	if !ok {
		s.errMsg = "no option matches the filter"
		return "", false, nil
	}
	s.answer = s.list.options[idx]
	return s.answer, true, nil
}
