package widgets

import "github.com/odvcencio/peek-ui/bridge"

// Label displays a read-only field. It takes no focus and emits
// nothing; pointer hover still works so docs can be surfaced.
type Label struct {
	Base
}

// NewLabel creates a label for the given field.
func NewLabel(desc bridge.FieldDescriptor) *Label {
	l := &Label{}
	l.initBase(desc, ControlLabel)
	l.machine.SetFocusable(false)
	return l
}

var _ Widget = (*Label)(nil)
