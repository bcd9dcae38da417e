package widgets

import (
	"strconv"

	"github.com/odvcencio/peek-ui/bridge"
	"github.com/odvcencio/peek-ui/interaction"
	"github.com/odvcencio/peek-ui/scroll"
	"github.com/odvcencio/peek-ui/terminal"
)

// ListSection heads an expandable collection. Element widgets are built
// separately by the tree; the list owns the open/closed axis and a
// scroll window that pages long collections.
type ListSection struct {
	Base

	composite *interaction.Composite
	window    *scroll.Window
}

// NewListSection creates a collapsed list head. pageSize bounds how
// many elements are visible at once.
func NewListSection(desc bridge.FieldDescriptor, pageSize int) *ListSection {
	if pageSize <= 0 {
		pageSize = 16
	}
	l := &ListSection{window: scroll.NewWindow(pageSize)}
	l.initBase(desc, ControlList)
	l.composite = interaction.NewComposite(l.machine)
	return l
}

// Composite returns the open/closed controller.
func (l *ListSection) Composite() *interaction.Composite {
	if l == nil {
		return nil
	}
	return l.composite
}

// Window returns the scroll window over the element indices.
func (l *ListSection) Window() *scroll.Window {
	if l == nil {
		return nil
	}
	return l.window
}

// Refresh keeps the scroll window sized to the collection. Shrinking
// clamps the cursor, so element teardown never strands it.
func (l *ListSection) Refresh(v bridge.Value) {
	if l == nil {
		return
	}
	l.Base.Refresh(v)
	l.window.SetTotal(v.Len())
}

// DisplayText shows the element count.
func (l *ListSection) DisplayText() string {
	if l == nil {
		return ""
	}
	return "[" + strconv.Itoa(l.Value().Len()) + "]"
}

// Toggle flips the list open or closed.
func (l *ListSection) Toggle() bool {
	if l == nil {
		return false
	}
	return l.composite.Activate()
}

// HandleKey toggles on space/enter and scrolls while open.
func (l *ListSection) HandleKey(ev terminal.KeyEvent) bool {
	if l == nil || l.machine.IsDisabled() {
		return false
	}
	if ev.Key == terminal.KeyEnter || (ev.Key == terminal.KeyRune && ev.Rune == ' ') {
		return l.Toggle()
	}
	if !l.composite.IsOpen() {
		return false
	}
	switch ev.Key {
	case terminal.KeyPageUp:
		l.window.PageBy(-1)
		return true
	case terminal.KeyPageDown:
		l.window.PageBy(1)
		return true
	}
	return false
}

var (
	_ Widget     = (*ListSection)(nil)
	_ Toggler    = (*ListSection)(nil)
	_ Expandable = (*ListSection)(nil)
)
