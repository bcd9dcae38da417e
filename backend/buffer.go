package backend

import "github.com/mattn/go-runewidth"

// Buffer is the cell grid a frame is composed into before it is flushed
// to a Backend. The inspector lays content out in full rows, so dirty
// tracking is per row: a row is dirty when any of its cells changed since
// the last ClearDirty, and flushing walks dirty rows against RowWriter
// backends.
type Buffer struct {
	cells    []Cell
	width    int
	height   int
	rowDirty []bool
	dirtyAll bool
}

// NewBuffer creates a buffer with the given dimensions.
func NewBuffer(w, h int) *Buffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Buffer{
		cells:    make([]Cell, w*h),
		width:    w,
		height:   h,
		rowDirty: make([]bool, h),
		dirtyAll: true,
	}
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() (w, h int) {
	return b.width, b.height
}

// Resize changes the dimensions, preserving content where possible, and
// marks everything dirty.
func (b *Buffer) Resize(w, h int) {
	if w == b.width && h == b.height {
		return
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	cells := make([]Cell, w*h)
	minW := min(w, b.width)
	minH := min(h, b.height)
	for y := 0; y < minH; y++ {
		copy(cells[y*w:y*w+minW], b.cells[y*b.width:y*b.width+minW])
	}
	b.cells = cells
	b.width = w
	b.height = h
	b.rowDirty = make([]bool, h)
	b.MarkAllDirty()
}

// Clear fills the buffer with spaces in the default style.
func (b *Buffer) Clear() {
	b.Fill(0, 0, b.width, b.height, ' ', DefaultStyle())
}

// Get returns the cell at (x, y), or an empty cell out of bounds.
func (b *Buffer) Get(x, y int) Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Cell{Rune: ' '}
	}
	return b.cells[y*b.width+x]
}

// Set writes one cell. Out-of-bounds writes are dropped; unchanged cells
// do not dirty their row.
func (b *Buffer) Set(x, y int, r rune, s Style) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	idx := y*b.width + x
	next := Cell{Rune: r, Style: s}
	if b.cells[idx] != next {
		b.cells[idx] = next
		b.rowDirty[y] = true
	}
}

// SetString writes a string starting at (x, y), clipping to the row.
// Wide runes take two cells (the second holds rune 0) and are dropped
// instead of split at the right edge. It returns the x after the last
// cell written.
func (b *Buffer) SetString(x, y int, s string, style Style) int {
	if y < 0 || y >= b.height {
		return x
	}
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > b.width {
			break
		}
		b.Set(x, y, r, style)
		if w == 2 {
			b.Set(x+1, y, 0, style)
		}
		x += w
	}
	return x
}

// Fill fills the rectangle [x, x+w) x [y, y+h), clipped to the buffer.
func (b *Buffer) Fill(x, y, w, h int, r rune, s Style) {
	x0 := max(0, x)
	y0 := max(0, y)
	x1 := min(b.width, x+w)
	y1 := min(b.height, y+h)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			b.Set(px, py, r, s)
		}
	}
}

// Row returns the cells of one row, or nil out of bounds.
func (b *Buffer) Row(y int) []Cell {
	if y < 0 || y >= b.height {
		return nil
	}
	return b.cells[y*b.width : (y+1)*b.width]
}

// Cells returns the full row-major cell slice.
func (b *Buffer) Cells() []Cell {
	return b.cells
}

// IsDirty reports whether any row changed since the last ClearDirty.
func (b *Buffer) IsDirty() bool {
	if b.dirtyAll {
		return true
	}
	for _, d := range b.rowDirty {
		if d {
			return true
		}
	}
	return false
}

// AllDirty reports whether the whole frame needs a flush.
func (b *Buffer) AllDirty() bool {
	return b.dirtyAll
}

// DirtyRows calls fn for each dirty row in top-to-bottom order.
func (b *Buffer) DirtyRows(fn func(y int, row []Cell)) {
	for y := 0; y < b.height; y++ {
		if b.dirtyAll || b.rowDirty[y] {
			fn(y, b.Row(y))
		}
	}
}

// MarkAllDirty forces the next flush to cover the whole frame.
func (b *Buffer) MarkAllDirty() {
	b.dirtyAll = true
}

// ClearDirty resets dirty tracking after a flush.
func (b *Buffer) ClearDirty() {
	b.dirtyAll = false
	for y := range b.rowDirty {
		b.rowDirty[y] = false
	}
}
