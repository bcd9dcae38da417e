// Package interaction implements the generic state model shared by every
// inspector widget: a total interaction state machine, the open/closed
// controller for composite widgets, and the change event records that carry
// committed edits toward the bridge.
package interaction

// State is the interaction state of one widget.
type State int

const (
	// Default is the resting state: no pointer, no focus.
	Default State = iota
	// Hover means the pointer is over the widget.
	Hover
	// Focus means the widget holds keyboard focus.
	Focus
	// Selected means the widget is in its engaged form: a dropdown's
	// chosen entry, a text field in editing mode.
	Selected
	// Disabled blocks every trigger except Enable.
	Disabled
)

func (s State) String() string {
	switch s {
	case Default:
		return "default"
	case Hover:
		return "hover"
	case Focus:
		return "focus"
	case Selected:
		return "selected"
	case Disabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// Trigger is one normalized interaction stimulus.
type Trigger int

const (
	PointerEnter Trigger = iota
	PointerLeave
	Press
	Release
	FocusIn
	Blur
	Confirm
	Clear
	Disable
	Enable
)

func (t Trigger) String() string {
	switch t {
	case PointerEnter:
		return "pointer-enter"
	case PointerLeave:
		return "pointer-leave"
	case Press:
		return "press"
	case Release:
		return "release"
	case FocusIn:
		return "focus-in"
	case Blur:
		return "blur"
	case Confirm:
		return "confirm"
	case Clear:
		return "clear"
	case Disable:
		return "disable"
	case Enable:
		return "enable"
	default:
		return "unknown"
	}
}

// StateChange records one applied transition.
type StateChange struct {
	Old     State
	New     State
	Trigger Trigger
}

// Machine is the per-widget interaction state machine. The transition
// function is total: a trigger with no listed transition for the current
// state is a no-op, never an error. A fresh machine starts in Default,
// accepts focus, and is not selectable.
type Machine struct {
	state      State
	focusable  bool
	selectable bool
	onChange   func(StateChange)
}

// NewMachine returns a machine in Default state.
func NewMachine() *Machine {
	return &Machine{state: Default, focusable: true}
}

// SetFocusable controls whether Press and FocusIn may move the machine to
// Focus. Display-only widgets turn this off.
func (m *Machine) SetFocusable(v bool) *Machine {
	if m == nil {
		return m
	}
	m.focusable = v
	return m
}

// SetSelectable controls whether Confirm may move the machine from Focus
// to Selected. Choice widgets (dropdown entries, editing text fields) turn
// this on; momentary widgets like checkboxes leave it off.
func (m *Machine) SetSelectable(v bool) *Machine {
	if m == nil {
		return m
	}
	m.selectable = v
	return m
}

// SetOnChange registers the listener invoked after every applied
// transition, including listed self-transitions such as reselection.
func (m *Machine) SetOnChange(fn func(StateChange)) *Machine {
	if m == nil {
		return m
	}
	m.onChange = fn
	return m
}

// State returns the current state.
func (m *Machine) State() State {
	if m == nil {
		return Default
	}
	return m.state
}

// IsDisabled reports whether the machine is in Disabled.
func (m *Machine) IsDisabled() bool {
	return m.State() == Disabled
}

// Focusable reports whether the machine accepts focus triggers.
func (m *Machine) Focusable() bool {
	if m == nil {
		return false
	}
	return m.focusable
}

// Apply runs one trigger through the transition table. It returns the
// transition and true when a listed transition applied, or a zero change
// and false for a no-op. The listener registered with SetOnChange fires
// for every applied transition before Apply returns.
func (m *Machine) Apply(t Trigger) (StateChange, bool) {
	if m == nil {
		return StateChange{}, false
	}
	next, ok := m.next(t)
	if !ok {
		return StateChange{}, false
	}
	change := StateChange{Old: m.state, New: next, Trigger: t}
	m.state = next
	if m.onChange != nil {
		m.onChange(change)
	}
	return change, true
}

// next encodes the transition table. Disabled admits only Enable; Disable
// wins from every other state.
func (m *Machine) next(t Trigger) (State, bool) {
	if m.state == Disabled {
		if t == Enable {
			// The pre-disable state is deliberately not restored.
			return Default, true
		}
		return 0, false
	}
	if t == Disable {
		return Disabled, true
	}

	switch m.state {
	case Default:
		switch t {
		case PointerEnter:
			return Hover, true
		case FocusIn:
			if m.focusable {
				return Focus, true
			}
		}
	case Hover:
		switch t {
		case PointerLeave:
			return Default, true
		case Press, FocusIn:
			if m.focusable {
				return Focus, true
			}
		}
	case Focus:
		switch t {
		case Blur:
			return Default, true
		case Confirm:
			if m.selectable {
				return Selected, true
			}
		}
	case Selected:
		switch t {
		case Blur:
			return Default, true
		case Clear:
			return Focus, true
		case Confirm:
			// Reselection: a listed self-transition so listeners hear it.
			return Selected, true
		}
	}
	return 0, false
}
