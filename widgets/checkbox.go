package widgets

import (
	"github.com/odvcencio/peek-ui/bridge"
	"github.com/odvcencio/peek-ui/terminal"
)

// Checkbox edits a boolean field. Toggling always succeeds and emits
// exactly one change event.
type Checkbox struct {
	Base
}

// NewCheckbox creates a checkbox for the given field.
func NewCheckbox(desc bridge.FieldDescriptor) *Checkbox {
	c := &Checkbox{}
	c.initBase(desc, ControlCheckbox)
	return c
}

// Checked returns the displayed boolean.
func (c *Checkbox) Checked() bool {
	return c.Value().Bool()
}

// Toggle flips the value and emits the change. Disabled checkboxes
// ignore toggles.
func (c *Checkbox) Toggle() bool {
	if c == nil || c.machine.IsDisabled() {
		return false
	}
	old := c.Value()
	c.emitChange(old, bridge.Bool(!old.Bool()))
	return true
}

// HandleKey toggles on space or enter.
func (c *Checkbox) HandleKey(ev terminal.KeyEvent) bool {
	if c == nil {
		return false
	}
	if ev.Key == terminal.KeyEnter || (ev.Key == terminal.KeyRune && ev.Rune == ' ') {
		return c.Toggle()
	}
	return false
}

var (
	_ Widget  = (*Checkbox)(nil)
	_ Toggler = (*Checkbox)(nil)
)
