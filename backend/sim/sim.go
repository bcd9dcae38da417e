// Package sim provides an in-memory backend for tests and scripted
// drivers: events are posted programmatically and frames are inspected
// as strings.
package sim

import (
	"strings"
	"sync"

	"github.com/odvcencio/peek-ui/backend"
	"github.com/odvcencio/peek-ui/terminal"
)

// Backend is a synthetic terminal. SetContent stages writes and Show
// commits them, matching real terminal behavior, so assertions only ever
// see whole frames.
type Backend struct {
	mu      sync.Mutex
	width   int
	height  int
	staged  []backend.Cell
	visible []backend.Cell

	events chan any
	closed bool

	cursorX, cursorY int
	cursorShown      bool
}

// New creates a sim backend with the given dimensions.
func New(width, height int) *Backend {
	b := &Backend{
		width:  width,
		height: height,
		events: make(chan any, 64),
	}
	b.staged = blankCells(width, height)
	b.visible = blankCells(width, height)
	return b
}

func blankCells(w, h int) []backend.Cell {
	cells := make([]backend.Cell, w*h)
	for i := range cells {
		cells[i].Rune = ' '
	}
	return cells
}

// Init implements backend.Backend.
func (b *Backend) Init() error {
	return nil
}

// Fini closes the event stream; PollEvent returns nil afterwards.
func (b *Backend) Fini() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.closed {
		b.closed = true
		close(b.events)
	}
}

// Size returns the grid dimensions.
func (b *Backend) Size() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.width, b.height
}

// SetContent stages one cell write.
func (b *Backend) SetContent(x, y int, r rune, combining []rune, style backend.Style) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.staged[y*b.width+x] = backend.Cell{Rune: r, Style: style}
}

// SetRow implements backend.RowWriter: one staged bulk row write.
func (b *Backend) SetRow(y, startX int, cells []backend.Cell) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if y < 0 || y >= b.height {
		return
	}
	for i, c := range cells {
		x := startX + i
		if x < 0 || x >= b.width {
			continue
		}
		b.staged[y*b.width+x] = c
	}
}

// SetRect implements backend.RectWriter. cells is row-major with
// width*height entries.
func (b *Backend) SetRect(x, y, width, height int, cells []backend.Cell) {
	for row := 0; row < height; row++ {
		b.SetRow(y+row, x, cells[row*width:(row+1)*width])
	}
}

// Show commits staged writes to the visible frame.
func (b *Backend) Show() {
	b.mu.Lock()
	defer b.mu.Unlock()
	copy(b.visible, b.staged)
}

// HideCursor hides the synthetic cursor.
func (b *Backend) HideCursor() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursorShown = false
}

// ShowCursor places the synthetic cursor.
func (b *Backend) ShowCursor(x, y int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursorShown = true
	b.cursorX, b.cursorY = x, y
}

// PollEvent blocks for the next posted event, or returns nil once the
// backend is finalized.
func (b *Backend) PollEvent() any {
	ev, ok := <-b.events
	if !ok {
		return nil
	}
	return ev
}

// Post feeds one event to the poll loop. Events posted after Fini are
// dropped.
func (b *Backend) Post(ev any) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	events := b.events
	b.mu.Unlock()
	events <- ev
}

// Resize changes the grid dimensions and posts the resize event.
func (b *Backend) Resize(width, height int) {
	b.mu.Lock()
	b.width = width
	b.height = height
	b.staged = blankCells(width, height)
	b.visible = blankCells(width, height)
	b.mu.Unlock()
	b.Post(terminal.ResizeEvent{Width: width, Height: height})
}

// CellAt returns the committed cell at (x, y).
func (b *Backend) CellAt(x, y int) backend.Cell {
	b.mu.Lock()
	defer b.mu.Unlock()
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return backend.Cell{Rune: ' '}
	}
	return b.visible[y*b.width+x]
}

// Frame returns the committed frame as one string per row, trailing
// spaces trimmed.
func (b *Backend) Frame() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	rows := make([]string, b.height)
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		sb.Reset()
		for x := 0; x < b.width; x++ {
			r := b.visible[y*b.width+x].Rune
			if r == 0 {
				continue
			}
			sb.WriteRune(r)
		}
		rows[y] = strings.TrimRight(sb.String(), " ")
	}
	return rows
}

var (
	_ backend.Backend    = (*Backend)(nil)
	_ backend.RowWriter  = (*Backend)(nil)
	_ backend.RectWriter = (*Backend)(nil)
)
