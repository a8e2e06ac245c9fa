// ABOUTME: Reorder prompt: rearrange a list and submit the permutation
// ABOUTME: Moves swap with the visible neighbour; filtering is display-only

package askline

import (
	"fmt"

	"github.com/askline/askline/frame"
	"github.com/askline/askline/input"
	"github.com/askline/askline/key"
	"github.com/askline/askline/terminal"
)

// Reorder asks the user to rearrange a list of options. The answer is the
// full list in its final order; filtering only narrows what is shown, never
// what is returned.
type Reorder struct {
	msg           string
	opts          promptOptions
	options       []string
	perm          []int
	filter        *input.Buffer
	filterEnabled bool
	scorer        Scorer
	visible       []int
	cursor        int
	errMsg        string
	answer        []string
}

// NewReorder returns a reorder prompt over the given options.
func NewReorder(message string, options []string) *Reorder {
	r := &Reorder{
		msg:           message,
		opts:          defaultOptions(),
		options:       append([]string(nil), options...),
		filter:        input.New(),
		filterEnabled: true,
	}
	r.perm = make([]int, len(r.options))
	for i := range r.perm {
		r.perm[i] = i
	}
	r.recomputeVisible()
	return r
}

// WithStartingCursor positions the cursor before the first frame.
// Out-of-range values fail at prompt entry.
func (rd *Reorder) WithStartingCursor(idx int) *Reorder {
	rd.cursor = idx
	return rd
}

// WithFilteringDisabled turns off the display filter.
func (rd *Reorder) WithFilteringDisabled() *Reorder {
	rd.filterEnabled = false
	return rd
}

// WithScorer replaces the default fuzzy matcher used by the display filter.
func (rd *Reorder) WithScorer(sc Scorer) *Reorder {
	rd.scorer = sc
	rd.recomputeVisible()
	return rd
}

// WithVimMode enables j/k motion and J/K item moves.
func (rd *Reorder) WithVimMode() *Reorder {
	rd.opts.vimMode = true
	return rd
}

// WithPageSize sets the number of visible rows.
func (rd *Reorder) WithPageSize(n int) *Reorder {
	rd.opts.pageSize = n
	return rd
}

// WithHelpMessage shows a help hint after the message.
func (rd *Reorder) WithHelpMessage(help string) *Reorder {
	rd.opts.help = help
	return rd
}

// WithRenderConfig overrides the prompt's render configuration.
func (rd *Reorder) WithRenderConfig(rc RenderConfig) *Reorder {
	rd.opts.config = rc
	return rd
}

// Prompt runs the prompt on the process terminal.
func (rd *Reorder) Prompt() ([]string, error) {
	if err := runOnTerminal[reorderAction](rd, rd.validate); err != nil {
		return nil, err
	}
	return rd.answer, nil
}

// PromptWith runs the prompt on the given terminal.
func (rd *Reorder) PromptWith(t terminal.Terminal) ([]string, error) {
	if err := rd.validate(); err != nil {
		return nil, err
	}
	if err := runLoop[reorderAction](t, rd); err != nil {
		return nil, err
	}
	return rd.answer, nil
}

// PromptSkippable runs the prompt, reporting cancellation as ok=false.
func (rd *Reorder) PromptSkippable() ([]string, bool, error) {
	return skippable(rd.Prompt())
}

func (rd *Reorder) validate() error {
	if len(rd.options) == 0 {
		return fmt.Errorf("%w: reorder has no options", ErrInvalidConfiguration)
	}
	if rd.cursor < 0 || rd.cursor >= len(rd.options) {
		return fmt.Errorf("%w: starting cursor %d out of range", ErrInvalidConfiguration, rd.cursor)
	}
	return nil
}

// recomputeVisible rebuilds the visible permutation positions: every
// position whose option matches the filter, in permutation order.
func (rd *Reorder) recomputeVisible() {
	if rd.filter.IsEmpty() {
		rd.visible = rd.visible[:0]
		for p := range rd.perm {
			rd.visible = append(rd.visible, p)
		}
	} else {
		matched := make(map[int]bool)
		for _, idx := range scoredView(rd.filter.Content(), rd.options, rd.scorer) {
			matched[idx] = true
		}
		rd.visible = rd.visible[:0]
		for p, idx := range rd.perm {
			if matched[idx] {
				rd.visible = append(rd.visible, p)
			}
		}
	}
	switch {
	case len(rd.visible) == 0:
		rd.cursor = 0
	case rd.cursor > len(rd.visible)-1:
		rd.cursor = len(rd.visible) - 1
	}
}

type reorderActionKind int

const (
	reorderMoveCursor reorderActionKind = iota
	reorderMoveItemUp
	reorderMoveItemDown
	reorderFilterKey
)

type reorderAction struct {
	kind reorderActionKind
	mag  int // cursor delta for reorderMoveCursor; ±1 row or ±pageSize
	end  int // -1 start, 1 end, 0 relative
	key  key.Key
}

func (rd *Reorder) message() string            { return rd.msg }
func (rd *Reorder) renderConfig() RenderConfig { return rd.opts.config }

func (rd *Reorder) fromKey(k key.Key) (reorderAction, bool) {
	switch k.Type {
	case key.Up:
		if k.Ctrl {
			return reorderAction{kind: reorderMoveItemUp}, true
		}
		return reorderAction{kind: reorderMoveCursor, mag: -1}, true
	case key.Down:
		if k.Ctrl {
			return reorderAction{kind: reorderMoveItemDown}, true
		}
		return reorderAction{kind: reorderMoveCursor, mag: 1}, true
	case key.Tab:
		return reorderAction{kind: reorderMoveCursor, mag: 1}, true
	case key.PageUp:
		return reorderAction{kind: reorderMoveCursor, mag: -rd.opts.pageSize}, true
	case key.PageDown:
		return reorderAction{kind: reorderMoveCursor, mag: rd.opts.pageSize}, true
	case key.Home:
		return reorderAction{kind: reorderMoveCursor, end: -1}, true
	case key.End:
		return reorderAction{kind: reorderMoveCursor, end: 1}, true
	case key.Rune:
		if rd.opts.vimMode && !k.Ctrl && !k.Alt {
			switch k.Rune {
			case 'k':
				return reorderAction{kind: reorderMoveCursor, mag: -1}, true
			case 'j':
				return reorderAction{kind: reorderMoveCursor, mag: 1}, true
			case 'K':
				return reorderAction{kind: reorderMoveItemUp}, true
			case 'J':
				return reorderAction{kind: reorderMoveItemDown}, true
			case 'h':
				return reorderAction{kind: reorderFilterKey, key: key.Key{Type: key.Left}}, true
			case 'l':
				return reorderAction{kind: reorderFilterKey, key: key.Key{Type: key.Right}}, true
			}
		}
	}
	if rd.filterEnabled {
		switch k.Type {
		case key.Rune, key.Space, key.Backspace, key.Delete, key.Left, key.Right:
			return reorderAction{kind: reorderFilterKey, key: k}, true
		}
	}
	return reorderAction{}, false
}

func (rd *Reorder) handle(a reorderAction) ActionResult {
	switch a.kind {
	case reorderMoveCursor:
		return rd.moveCursor(a)
	case reorderMoveItemUp:
		return rd.moveItem(-1)
	case reorderMoveItemDown:
		return rd.moveItem(1)
	case reorderFilterKey:
		return rd.handleFilterKey(a.key)
	}
	return Clean
}

func (rd *Reorder) moveCursor(a reorderAction) ActionResult {
	n := len(rd.visible)
	if n == 0 {
		return Clean
	}
	next := rd.cursor
	switch {
	case a.end == -1:
		next = 0
	case a.end == 1:
		next = n - 1
	case a.mag == -1 && rd.cursor == 0:
		next = n - 1
	case a.mag == 1 && rd.cursor == n-1:
		next = 0
	default:
		next = min(max(rd.cursor+a.mag, 0), n-1)
	}
	if next == rd.cursor {
		return Clean
	}
	rd.cursor = next
	return NeedsRedraw
}

// moveItem swaps the item under the cursor with its visible neighbour in
// the given direction, and moves the cursor with the item. With items
// hidden by the filter, the swap can jump over them.
func (rd *Reorder) moveItem(dir int) ActionResult {
	target := rd.cursor + dir
	if target < 0 || target >= len(rd.visible) {
		return Clean
	}
	p, q := rd.visible[rd.cursor], rd.visible[target]
	rd.perm[p], rd.perm[q] = rd.perm[q], rd.perm[p]
	rd.cursor = target
	return NeedsRedraw
}

func (rd *Reorder) handleFilterKey(k key.Key) ActionResult {
	var change input.Change
	switch k.Type {
	case key.Rune:
		change = rd.filter.Insert(k.Rune)
	case key.Space:
		change = rd.filter.Insert(' ')
	case key.Backspace:
		change = rd.filter.Delete(charOrWord(k), input.Left)
	case key.Delete:
		change = rd.filter.Delete(charOrWord(k), input.Right)
	case key.Left:
		change = rd.filter.MoveCursor(charOrWord(k), input.Left)
	case key.Right:
		change = rd.filter.MoveCursor(charOrWord(k), input.Right)
	}
	if change == input.ContentChanged {
		rd.recomputeVisible()
	}
	if change == input.Clean {
		return Clean
	}
	return NeedsRedraw
}

func (rd *Reorder) render(r *frame.Renderer) {
	renderHeader(r, rd.opts.config, rd.msg, rd.errMsg, rd.opts.help)
	if rd.filterEnabled {
		pre := rd.filter.PreCursor()
		r.Write(pre)
		r.MarkCursor(0)
		r.Write(rd.filter.Content()[len(pre):])
	}
	r.Write("\n")

	pg := paginate(rd.opts.pageSize, rd.visible, rd.cursor)
	for i, p := range pg.items {
		renderListRow(r, rd.opts.config, listRow{
			text:        rd.options[rd.perm[p]],
			highlighted: i == pg.cursorOffset,
			scrollUp:    i == 0 && !pg.first,
			scrollDown:  i == len(pg.items)-1 && !pg.last,
		})
		r.Write("\n")
	}
}

func (rd *Reorder) submit() (string, bool, error) {
	rd.answer = make([]string, len(rd.perm))
	for i, idx := range rd.perm {
		rd.answer[i] = rd.options[idx]
	}
	return joinAnswer(rd.answer), true, nil
}
