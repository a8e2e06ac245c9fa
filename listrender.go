// ABOUTME: Shared row rendering for the select-family and suggestion lists
// ABOUTME: Edge rows carry scroll glyphs; the highlighted row gets the cursor prefix

package askline

import (
	"github.com/askline/askline/frame"
	"github.com/askline/askline/width"
)

// listRow describes one visible row of an option or suggestion list.
type listRow struct {
	text         string
	highlighted  bool
	checked      bool
	showCheckbox bool
	scrollUp     bool
	scrollDown   bool
}

// renderListRow writes one list row into the current frame:
//
//	<edge> <cursor> [checkbox] <text>
//
// where edge is a scroll glyph on the window's first/last row when more
// items are hidden in that direction.
func renderListRow(r *frame.Renderer, rc RenderConfig, row listRow) {
	edgeWidth := max(width.String(rc.ScrollUpPrefix.Text), width.String(rc.ScrollDownPrefix.Text))
	switch {
	case row.scrollUp:
		r.WriteStyled(rc.ScrollUpPrefix.Text, rc.ScrollUpPrefix.Sheet)
		padTo(r, edgeWidth-width.String(rc.ScrollUpPrefix.Text))
	case row.scrollDown:
		r.WriteStyled(rc.ScrollDownPrefix.Text, rc.ScrollDownPrefix.Sheet)
		padTo(r, edgeWidth-width.String(rc.ScrollDownPrefix.Text))
	default:
		padTo(r, edgeWidth)
	}
	r.Write(" ")

	if row.highlighted {
		r.WriteStyled(rc.HighlightedOptionPrefix.Text, rc.HighlightedOptionPrefix.Sheet)
	} else {
		padTo(r, width.String(rc.HighlightedOptionPrefix.Text))
	}
	r.Write(" ")

	if row.showCheckbox {
		box := rc.UnselectedCheckbox
		if row.checked {
			box = rc.SelectedCheckbox
		}
		r.WriteStyled(box.Text, box.Sheet)
		r.Write(" ")
	}

	sheet := rc.OptionSheet
	switch {
	case row.highlighted:
		sheet = rc.HighlightedOptionSheet
	case row.checked:
		sheet = rc.CheckedOptionSheet
	}
	r.WriteStyled(row.text, sheet)
}

// padTo writes n spaces so glyphless rows stay column-aligned with glyphed
// ones.
func padTo(r *frame.Renderer, n int) {
	for i := 0; i < n; i++ {
		r.Write(" ")
	}
}
