// ABOUTME: Windows a list around a cursor for page-at-a-time display
// ABOUTME: Anchors to the edges near the ends, centres otherwise; flags edge rows

package askline

// page is one visible window of a longer list.
type page[T any] struct {
	items []T
	// first and last report whether the window touches the respective end
	// of the list; the renderer swaps the edge glyph for a scroll marker
	// when they are false.
	first bool
	last  bool
	// cursorOffset is the cursor's position relative to the window start.
	cursorOffset int
	// start is the window's offset into the full list.
	start int
}

// paginate returns the window of at most pageSize items that keeps cursor
// visible: anchored to the start within the first half page, anchored to the
// end within the last half page, centred in between.
func paginate[T any](pageSize int, items []T, cursor int) page[T] {
	n := len(items)
	if pageSize <= 0 || n == 0 {
		return page[T]{first: true, last: true}
	}
	if cursor < 0 {
		cursor = 0
	}
	if cursor >= n {
		cursor = n - 1
	}

	half := pageSize / 2
	var start int
	switch {
	case n <= pageSize:
		start = 0
	case cursor < half:
		start = 0
	case cursor >= n-half:
		start = n - pageSize
	default:
		start = cursor - half
	}
	end := min(start+pageSize, n)

	return page[T]{
		items:        items[start:end],
		first:        start == 0,
		last:         end == n,
		cursorOffset: cursor - start,
		start:        start,
	}
}
