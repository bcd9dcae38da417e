// Package scroll provides the row-windowing primitives behind dropdown
// option lists and collection pages.
package scroll

// Window tracks a cursor inside a list of unit-height rows and keeps a
// fixed-size view over them. The cursor is always inside the visible
// range; shrinking the list clamps both.
type Window struct {
	total    int
	size     int
	offset   int
	cursor   int
	onChange func()
}

// NewWindow creates a window showing size rows of an empty list.
func NewWindow(size int) *Window {
	w := &Window{}
	w.SetSize(size)
	return w
}

// SetTotal updates the row count and clamps cursor and offset into the
// new range.
func (w *Window) SetTotal(n int) {
	if w == nil {
		return
	}
	if n < 0 {
		n = 0
	}
	w.total = n
	w.clamp()
}

// Total returns the row count.
func (w *Window) Total() int {
	if w == nil {
		return 0
	}
	return w.total
}

// SetSize updates the view height in rows.
func (w *Window) SetSize(n int) {
	if w == nil {
		return
	}
	if n < 1 {
		n = 1
	}
	w.size = n
	w.clamp()
}

// Size returns the view height in rows.
func (w *Window) Size() int {
	if w == nil {
		return 0
	}
	return w.size
}

// Offset returns the index of the first visible row.
func (w *Window) Offset() int {
	if w == nil {
		return 0
	}
	return w.offset
}

// Cursor returns the current row index, or -1 for an empty list.
func (w *Window) Cursor() int {
	if w == nil || w.total == 0 {
		return -1
	}
	return w.cursor
}

// SetCursor moves the cursor to row i, clamped into range, and scrolls
// the minimum distance needed to keep it visible.
func (w *Window) SetCursor(i int) {
	if w == nil {
		return
	}
	w.cursor = i
	w.clamp()
}

// MoveBy moves the cursor by delta rows.
func (w *Window) MoveBy(delta int) {
	if w == nil {
		return
	}
	w.SetCursor(w.cursor + delta)
}

// PageBy moves the cursor by whole view heights.
func (w *Window) PageBy(pages int) {
	if w == nil {
		return
	}
	w.MoveBy(pages * w.size)
}

// Home moves the cursor to the first row.
func (w *Window) Home() {
	w.SetCursor(0)
}

// End moves the cursor to the last row.
func (w *Window) End() {
	if w == nil {
		return
	}
	w.SetCursor(w.total - 1)
}

// Visible returns the half-open row range [start, end) currently shown.
func (w *Window) Visible() (start, end int) {
	if w == nil || w.total == 0 {
		return 0, 0
	}
	start = w.offset
	end = w.offset + w.size
	if end > w.total {
		end = w.total
	}
	return start, end
}

// SetOnChange sets a callback invoked after any cursor or offset move.
func (w *Window) SetOnChange(fn func()) {
	if w == nil {
		return
	}
	w.onChange = fn
}

// ThumbSpan maps the window onto a scrollbar track of the given length
// and returns the thumb's start row and length. A list that fits entirely
// reports a full-track thumb.
func (w *Window) ThumbSpan(track int) (start, length int) {
	if w == nil || track <= 0 {
		return 0, 0
	}
	if w.total <= w.size {
		return 0, track
	}
	length = track * w.size / w.total
	if length < 1 {
		length = 1
	}
	maxOffset := w.total - w.size
	start = (track - length) * w.offset / maxOffset
	return start, length
}

func (w *Window) clamp() {
	old := *w
	if w.total == 0 {
		w.cursor = 0
		w.offset = 0
	} else {
		if w.cursor < 0 {
			w.cursor = 0
		}
		if w.cursor > w.total-1 {
			w.cursor = w.total - 1
		}
		if w.cursor < w.offset {
			w.offset = w.cursor
		}
		if w.cursor >= w.offset+w.size {
			w.offset = w.cursor - w.size + 1
		}
		maxOffset := w.total - w.size
		if maxOffset < 0 {
			maxOffset = 0
		}
		if w.offset > maxOffset {
			w.offset = maxOffset
		}
		if w.offset < 0 {
			w.offset = 0
		}
	}
	if w.onChange != nil && (old.cursor != w.cursor || old.offset != w.offset) {
		w.onChange()
	}
}
