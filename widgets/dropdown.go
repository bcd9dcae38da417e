package widgets

import (
	"github.com/odvcencio/peek-ui/bridge"
	"github.com/odvcencio/peek-ui/interaction"
	"github.com/odvcencio/peek-ui/scroll"
	"github.com/odvcencio/peek-ui/terminal"
)

// Dropdown edits an enum field behind a collapsed trigger. Opening shows
// the variant list in a scroll window; choosing a variant closes the
// dropdown and emits the change as one atomic step, so no observer ever
// sees an open dropdown with a committed new selection.
type Dropdown struct {
	Base

	composite *interaction.Composite
	window    *scroll.Window
}

// NewDropdown creates a dropdown over the field's variant set. pageSize
// bounds how many options are visible at once.
func NewDropdown(desc bridge.FieldDescriptor, pageSize int) *Dropdown {
	if pageSize <= 0 {
		pageSize = 8
	}
	d := &Dropdown{window: scroll.NewWindow(pageSize)}
	d.initBase(desc, ControlDropdown)
	d.machine.SetSelectable(true)
	d.composite = interaction.NewComposite(d.machine)
	d.window.SetTotal(len(desc.Variants))
	return d
}

// Composite returns the open/closed controller.
func (d *Dropdown) Composite() *interaction.Composite {
	if d == nil {
		return nil
	}
	return d.composite
}

// Window returns the scroll window over the option list.
func (d *Dropdown) Window() *scroll.Window {
	if d == nil {
		return nil
	}
	return d.window
}

// Options returns the variant names in declaration order.
func (d *Dropdown) Options() []string {
	if d == nil {
		return nil
	}
	return d.desc.Variants
}

// Chosen returns the currently committed variant.
func (d *Dropdown) Chosen() string {
	return d.Value().VariantName()
}

// SetDescriptor keeps the scroll window sized to the variant set.
func (d *Dropdown) SetDescriptor(desc bridge.FieldDescriptor) {
	if d == nil {
		return
	}
	d.Base.SetDescriptor(desc)
	d.window.SetTotal(len(desc.Variants))
}

// Open expands the option list with the cursor on the committed
// variant.
func (d *Dropdown) Open() bool {
	if d == nil || !d.composite.Open() {
		return false
	}
	for i, name := range d.desc.Variants {
		if name == d.Chosen() {
			d.window.SetCursor(i)
			break
		}
	}
	return true
}

// Close collapses the option list without choosing.
func (d *Dropdown) Close() bool {
	if d == nil {
		return false
	}
	return d.composite.Close()
}

// Choose commits the named variant. The composite closes before the
// change is emitted; choosing the committed variant closes without
// emitting.
func (d *Dropdown) Choose(name string) bool {
	if d == nil || d.machine.IsDisabled() || !d.desc.HasVariant(name) {
		return false
	}
	old := d.Value()
	emitted := false
	d.composite.SelectChild(func() {
		d.machine.Apply(interaction.Confirm)
		if old.VariantName() != name {
			d.emitChange(old, bridge.Variant(name, nil))
			emitted = true
		}
	})
	return emitted
}

// HandleKey toggles the list and navigates it while open.
func (d *Dropdown) HandleKey(ev terminal.KeyEvent) bool {
	if d == nil || d.machine.IsDisabled() {
		return false
	}

	if !d.composite.IsOpen() {
		if ev.Key == terminal.KeyEnter || (ev.Key == terminal.KeyRune && ev.Rune == ' ') {
			return d.Open()
		}
		return false
	}

	switch ev.Key {
	case terminal.KeyEscape:
		return d.Close()
	case terminal.KeyUp:
		d.window.MoveBy(-1)
		return true
	case terminal.KeyDown:
		d.window.MoveBy(1)
		return true
	case terminal.KeyPageUp:
		d.window.PageBy(-1)
		return true
	case terminal.KeyPageDown:
		d.window.PageBy(1)
		return true
	case terminal.KeyHome:
		d.window.Home()
		return true
	case terminal.KeyEnd:
		d.window.End()
		return true
	case terminal.KeyEnter:
		if i := d.window.Cursor(); i >= 0 && i < len(d.desc.Variants) {
			d.Choose(d.desc.Variants[i])
		}
		return true
	}
	return false
}

var (
	_ Widget     = (*Dropdown)(nil)
	_ Chooser    = (*Dropdown)(nil)
	_ Expandable = (*Dropdown)(nil)
)
