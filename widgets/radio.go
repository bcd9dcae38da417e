package widgets

import (
	"github.com/odvcencio/peek-ui/bridge"
	"github.com/odvcencio/peek-ui/interaction"
	"github.com/odvcencio/peek-ui/terminal"
)

// RadioGroup edits an enum field as a flat list of mutually exclusive
// options, one per declared variant. The cursor tracks the option under
// keyboard control; the chosen variant is whatever the bridge reports.
type RadioGroup struct {
	Base
	cursor int
}

// NewRadioGroup creates a radio group over the field's variant set.
func NewRadioGroup(desc bridge.FieldDescriptor) *RadioGroup {
	r := &RadioGroup{}
	r.initBase(desc, ControlRadio)
	r.machine.SetSelectable(true)
	return r
}

// Options returns the variant names in declaration order.
func (r *RadioGroup) Options() []string {
	if r == nil {
		return nil
	}
	return r.desc.Variants
}

// Chosen returns the currently committed variant.
func (r *RadioGroup) Chosen() string {
	return r.Value().VariantName()
}

// Cursor returns the option index under keyboard control.
func (r *RadioGroup) Cursor() int {
	if r == nil {
		return 0
	}
	return r.cursor
}

// Refresh keeps the cursor on the committed variant unless the user has
// moved it this session.
func (r *RadioGroup) Refresh(v bridge.Value) {
	if r == nil {
		return
	}
	r.Base.Refresh(v)
	if r.cursor >= len(r.desc.Variants) {
		r.cursor = 0
	}
}

// Choose commits the named variant. Choosing the committed variant
// again notifies the machine (reselection) but emits nothing.
func (r *RadioGroup) Choose(name string) bool {
	if r == nil || r.machine.IsDisabled() || !r.desc.HasVariant(name) {
		return false
	}
	old := r.Value()
	if old.VariantName() == name {
		r.machine.Apply(interaction.Confirm)
		return false
	}
	r.machine.Apply(interaction.Confirm)
	r.emitChange(old, bridge.Variant(name, nil))
	return true
}

// HandleKey moves the cursor and chooses on space or enter.
func (r *RadioGroup) HandleKey(ev terminal.KeyEvent) bool {
	if r == nil || r.machine.IsDisabled() || len(r.desc.Variants) == 0 {
		return false
	}
	switch {
	case ev.Key == terminal.KeyUp || ev.Key == terminal.KeyLeft:
		r.cursor--
		if r.cursor < 0 {
			r.cursor = len(r.desc.Variants) - 1
		}
		return true
	case ev.Key == terminal.KeyDown || ev.Key == terminal.KeyRight:
		r.cursor = (r.cursor + 1) % len(r.desc.Variants)
		return true
	case ev.Key == terminal.KeyEnter || (ev.Key == terminal.KeyRune && ev.Rune == ' '):
		r.Choose(r.desc.Variants[r.cursor])
		return true
	}
	return false
}

var (
	_ Widget  = (*RadioGroup)(nil)
	_ Chooser = (*RadioGroup)(nil)
)
