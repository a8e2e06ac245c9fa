// ABOUTME: Multi-choice select prompt with checkbox rows and filtering
// ABOUTME: Space toggles, select-all/clear-all, optional keep-filter behaviour

package askline

import (
	"fmt"
	"sort"
	"strings"

	"github.com/askline/askline/frame"
	"github.com/askline/askline/key"
	"github.com/askline/askline/terminal"
)

// MultiSelect asks the user to pick any number of options from a list.
// The answer preserves the original option order regardless of how the
// list was filtered while choosing.
type MultiSelect struct {
	msg        string
	opts       promptOptions
	list       *listState
	checked    map[int]bool
	defaults   []int
	keepFilter bool
	validators []Validator[[]string]
	errMsg     string
	answer     []string
}

// NewMultiSelect returns a multi-select prompt over the given options.
func NewMultiSelect(message string, options []string) *MultiSelect {
	return &MultiSelect{
		msg:     message,
		opts:    defaultOptions(),
		list:    newListState(append([]string(nil), options...)),
		checked: make(map[int]bool),
	}
}

// WithDefaults pre-checks the given option indices. Out-of-range indices
// fail at prompt entry.
func (m *MultiSelect) WithDefaults(defaults []int) *MultiSelect {
	m.defaults = defaults
	return m
}

// WithStartingCursor positions the cursor before the first frame.
// Out-of-range values fail at prompt entry.
func (m *MultiSelect) WithStartingCursor(idx int) *MultiSelect {
	m.list.cursor = idx
	return m
}

// WithKeepFilter keeps the typed filter after toggling an option. Without
// it, any selection-altering action clears the filter.
func (m *MultiSelect) WithKeepFilter() *MultiSelect {
	m.keepFilter = true
	return m
}

// WithFilteringDisabled turns off the live filter.
func (m *MultiSelect) WithFilteringDisabled() *MultiSelect {
	m.list.filterEnabled = false
	return m
}

// WithResetCursor resets the cursor to the first row on filter changes.
func (m *MultiSelect) WithResetCursor() *MultiSelect {
	m.list.resetCursor = true
	return m
}

// WithScorer replaces the default fuzzy matcher.
func (m *MultiSelect) WithScorer(sc Scorer) *MultiSelect {
	m.list.scorer = sc
	m.list.refilter()
	return m
}

// WithValidator appends an answer validator, run in registration order.
func (m *MultiSelect) WithValidator(v Validator[[]string]) *MultiSelect {
	m.validators = append(m.validators, v)
	return m
}

// WithVimMode enables j/k/h/l motion and toggle keys.
func (m *MultiSelect) WithVimMode() *MultiSelect {
	m.opts.vimMode = true
	return m
}

// WithPageSize sets the number of visible rows.
func (m *MultiSelect) WithPageSize(n int) *MultiSelect {
	m.opts.pageSize = n
	return m
}

// WithHelpMessage shows a help hint after the message.
func (m *MultiSelect) WithHelpMessage(help string) *MultiSelect {
	m.opts.help = help
	return m
}

// WithRenderConfig overrides the prompt's render configuration.
func (m *MultiSelect) WithRenderConfig(rc RenderConfig) *MultiSelect {
	m.opts.config = rc
	return m
}

// Prompt runs the prompt on the process terminal.
func (m *MultiSelect) Prompt() ([]string, error) {
	if err := runOnTerminal[multiAction](m, m.validate); err != nil {
		return nil, err
	}
	return m.answer, nil
}

// PromptWith runs the prompt on the given terminal.
func (m *MultiSelect) PromptWith(t terminal.Terminal) ([]string, error) {
	if err := m.validate(); err != nil {
		return nil, err
	}
	if err := runLoop[multiAction](t, m); err != nil {
		return nil, err
	}
	return m.answer, nil
}

// PromptSkippable runs the prompt, reporting cancellation as ok=false.
func (m *MultiSelect) PromptSkippable() ([]string, bool, error) {
	return skippable(m.Prompt())
}

func (m *MultiSelect) validate() error {
	if len(m.list.options) == 0 {
		return fmt.Errorf("%w: multi-select has no options", ErrInvalidConfiguration)
	}
	if m.list.cursor < 0 || m.list.cursor >= len(m.list.options) {
		return fmt.Errorf("%w: starting cursor %d out of range", ErrInvalidConfiguration, m.list.cursor)
	}
	for _, d := range m.defaults {
		if d < 0 || d >= len(m.list.options) {
			return fmt.Errorf("%w: default index %d out of range", ErrInvalidConfiguration, d)
		}
		m.checked[d] = true
	}
	return nil
}

type multiActionKind int

const (
	multiMove multiActionKind = iota
	multiToggle
	multiSelectAll
	multiClearAll
	multiFilterKey
)

type multiAction struct {
	kind multiActionKind
	move func(*listState) ActionResult
	key  key.Key
}

func (m *MultiSelect) message() string            { return m.msg }
func (m *MultiSelect) renderConfig() RenderConfig { return m.opts.config }

func (m *MultiSelect) fromKey(k key.Key) (multiAction, bool) {
	// Vim h/l mean select-all/clear-all here, so they are claimed before
	// the shared navigation mapping can hand them to the filter cursor.
	if m.opts.vimMode && k.Type == key.Rune && !k.Ctrl && !k.Alt {
		switch k.Rune {
		case 'l':
			return multiAction{kind: multiSelectAll}, true
		case 'h':
			return multiAction{kind: multiClearAll}, true
		}
	}
	if mv, ok := navFromKey(k, m.opts.vimMode, m.opts.pageSize); ok {
		return multiAction{kind: multiMove, move: mv}, true
	}
	switch k.Type {
	case key.Space:
		return multiAction{kind: multiToggle}, true
	case key.Right:
		if k.Shift {
			return multiAction{kind: multiSelectAll}, true
		}
	case key.Left:
		if k.Shift {
			return multiAction{kind: multiClearAll}, true
		}
	}
	if m.list.filterEnabled {
		switch k.Type {
		case key.Rune, key.Backspace, key.Delete, key.Left, key.Right:
			return multiAction{kind: multiFilterKey, key: k}, true
		}
	}
	return multiAction{}, false
}

func (m *MultiSelect) handle(a multiAction) ActionResult {
	switch a.kind {
	case multiMove:
		return a.move(m.list)

	case multiToggle:
		idx, ok := m.list.selected()
		if !ok {
			return Clean
		}
		if m.checked[idx] {
			delete(m.checked, idx)
		} else {
			m.checked[idx] = true
		}
		m.afterSelectionChange()
		return NeedsRedraw

	case multiSelectAll:
		for _, idx := range m.list.view {
			m.checked[idx] = true
		}
		m.afterSelectionChange()
		return NeedsRedraw

	case multiClearAll:
		clear(m.checked)
		m.afterSelectionChange()
		return NeedsRedraw

	case multiFilterKey:
		res := m.list.filterKey(a.key)
		if res == NeedsRedraw {
			m.errMsg = ""
		}
		return res
	}
	return Clean
}

func (m *MultiSelect) afterSelectionChange() {
	m.errMsg = ""
	if !m.keepFilter {
		m.list.clearFilter()
	}
}

func (m *MultiSelect) render(r *frame.Renderer) {
	renderHeader(r, m.opts.config, m.msg, m.errMsg, m.opts.help)
	if m.list.filterEnabled {
		m.list.renderFilterLine(r)
	}
	r.Write("\n")

	pg := paginate(m.opts.pageSize, m.list.view, m.list.cursor)
	for i, idx := range pg.items {
		renderListRow(r, m.opts.config, listRow{
			text:         m.list.options[idx],
			highlighted:  i == pg.cursorOffset,
			checked:      m.checked[idx],
			showCheckbox: true,
			scrollUp:     i == 0 && !pg.first,
			scrollDown:   i == len(pg.items)-1 && !pg.last,
		})
		r.Write("\n")
	}
}

func (m *MultiSelect) submit() (string, bool, error) {
	indices := make([]int, 0, len(m.checked))
	for idx := range m.checked {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	answer := make([]string, len(indices))
	for i, idx := range indices {
		answer[i] = m.list.options[idx]
	}

	if msg, err := runValidators(m.validators, answer); err != nil {
		return "", false, err
	} else if msg != "" {
		m.errMsg = msg
		return "", false, nil
	}

	m.answer = answer
	return joinAnswer(answer), true, nil
}

// joinAnswer formats a multi-value answer for the completion line.
func joinAnswer(values []string) string {
	return strings.Join(values, ", ")
}
