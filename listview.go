// ABOUTME: Shared cursor-over-filtered-view state for the select family
// ABOUTME: Wrap-around motion, saturating paging, and the filter-change cursor policy

package askline

import (
	"github.com/askline/askline/frame"
	"github.com/askline/askline/input"
	"github.com/askline/askline/key"
)

// listState is the state shared by Select, MultiSelect, and Reorder: the
// owned option list, the live filter buffer, the filtered view of original
// indices, and a cursor into that view.
type listState struct {
	options       []string
	filter        *input.Buffer
	filterEnabled bool
	keepFilter    bool
	resetCursor   bool
	scorer        Scorer

	view   []int
	cursor int
}

func newListState(options []string) *listState {
	ls := &listState{
		options:       options,
		filter:        input.New(),
		filterEnabled: true,
	}
	ls.view = scoredView("", options, nil)
	return ls
}

// refilter recomputes the view and applies the cursor policy: reset to zero
// when configured, clamp to the new view otherwise. A view identical to the
// previous one leaves the cursor alone.
func (ls *listState) refilter() {
	newView := scoredView(ls.filter.Content(), ls.options, ls.scorer)
	if sameView(ls.view, newView) {
		return
	}
	ls.view = newView
	switch {
	case ls.resetCursor:
		ls.cursor = 0
	case len(ls.view) == 0:
		ls.cursor = 0
	case ls.cursor > len(ls.view)-1:
		ls.cursor = len(ls.view) - 1
	}
}

// filterKey forwards an unmapped key to the filter buffer, refiltering on
// content changes.
func (ls *listState) filterKey(k key.Key) ActionResult {
	var change input.Change
	switch k.Type {
	case key.Rune:
		change = ls.filter.Insert(k.Rune)
	case key.Space:
		change = ls.filter.Insert(' ')
	case key.Backspace:
		change = ls.filter.Delete(charOrWord(k), input.Left)
	case key.Delete:
		change = ls.filter.Delete(charOrWord(k), input.Right)
	case key.Left:
		change = ls.filter.MoveCursor(charOrWord(k), input.Left)
	case key.Right:
		change = ls.filter.MoveCursor(charOrWord(k), input.Right)
	}
	if change == input.ContentChanged {
		ls.refilter()
	}
	if change == input.Clean {
		return Clean
	}
	return NeedsRedraw
}

// clearFilter empties the filter buffer; used by prompts configured to drop
// the filter after a selection-altering action.
func (ls *listState) clearFilter() {
	if ls.filter.Clear() == input.ContentChanged {
		ls.refilter()
	}
}

// moveUp moves the cursor one row up, wrapping to the bottom.
func (ls *listState) moveUp() ActionResult {
	if len(ls.view) == 0 {
		return Clean
	}
	if ls.cursor == 0 {
		ls.cursor = len(ls.view) - 1
	} else {
		ls.cursor--
	}
	return NeedsRedraw
}

// moveDown moves the cursor one row down, wrapping to the top.
func (ls *listState) moveDown() ActionResult {
	if len(ls.view) == 0 {
		return Clean
	}
	if ls.cursor >= len(ls.view)-1 {
		ls.cursor = 0
	} else {
		ls.cursor++
	}
	return NeedsRedraw
}

// pageUp moves up by n rows, saturating at the top.
func (ls *listState) pageUp(n int) ActionResult {
	return ls.moveTo(max(ls.cursor-n, 0))
}

// pageDown moves down by n rows, saturating at the bottom.
func (ls *listState) pageDown(n int) ActionResult {
	if len(ls.view) == 0 {
		return Clean
	}
	return ls.moveTo(min(ls.cursor+n, len(ls.view)-1))
}

func (ls *listState) moveToStart() ActionResult { return ls.moveTo(0) }

func (ls *listState) moveToEnd() ActionResult {
	if len(ls.view) == 0 {
		return Clean
	}
	return ls.moveTo(len(ls.view) - 1)
}

func (ls *listState) moveTo(idx int) ActionResult {
	if len(ls.view) == 0 || idx == ls.cursor {
		return Clean
	}
	ls.cursor = idx
	return NeedsRedraw
}

// selected returns the original index under the cursor.
func (ls *listState) selected() (int, bool) {
	if len(ls.view) == 0 {
		return 0, false
	}
	return ls.view[ls.cursor], true
}

// navFromKey maps the motion keys shared by the whole select family.
// vimMode additionally claims j/k for vertical motion and h/l for the
// filter cursor; prompts that bind h/l themselves check before calling.
func navFromKey(k key.Key, vimMode bool, pageSize int) (func(*listState) ActionResult, bool) {
	switch k.Type {
	case key.Up:
		return (*listState).moveUp, true
	case key.Down, key.Tab:
		return (*listState).moveDown, true
	case key.PageUp:
		return func(ls *listState) ActionResult { return ls.pageUp(pageSize) }, true
	case key.PageDown:
		return func(ls *listState) ActionResult { return ls.pageDown(pageSize) }, true
	case key.Home:
		return (*listState).moveToStart, true
	case key.End:
		return (*listState).moveToEnd, true
	case key.Rune:
		if !vimMode || k.Ctrl || k.Alt {
			return nil, false
		}
		switch k.Rune {
		case 'k':
			return (*listState).moveUp, true
		case 'j':
			return (*listState).moveDown, true
		case 'h':
			return func(ls *listState) ActionResult {
				return ls.filterKey(key.Key{Type: key.Left})
			}, true
		case 'l':
			return func(ls *listState) ActionResult {
				return ls.filterKey(key.Key{Type: key.Right})
			}, true
		}
	}
	return nil, false
}

// renderFilterLine writes the live filter text after the message, marking
// the terminal cursor inside it.
func (ls *listState) renderFilterLine(r *frame.Renderer) {
	pre := ls.filter.PreCursor()
	r.Write(pre)
	r.MarkCursor(0)
	r.Write(ls.filter.Content()[len(pre):])
}
