package interaction

// CompositeState is the open/closed axis of a composite widget. It is
// orthogonal to the interaction State of the widget's trigger.
type CompositeState int

const (
	CompositeClosed CompositeState = iota
	CompositeOpen
)

func (s CompositeState) String() string {
	if s == CompositeOpen {
		return "open"
	}
	return "closed"
}

// Composite pairs a trigger machine with an open/closed controller, the
// shape shared by dropdowns and accordion sections. Selection is atomic:
// SelectChild closes the composite before the commit callback runs, so
// every observer of the resulting change event already sees it closed.
type Composite struct {
	machine  *Machine
	state    CompositeState
	onToggle func(CompositeState)
}

// NewComposite wraps the given trigger machine. A nil machine gets a
// fresh default one.
func NewComposite(m *Machine) *Composite {
	if m == nil {
		m = NewMachine()
	}
	return &Composite{machine: m, state: CompositeClosed}
}

// Machine returns the trigger machine.
func (c *Composite) Machine() *Machine {
	if c == nil {
		return nil
	}
	return c.machine
}

// State returns the open/closed state.
func (c *Composite) State() CompositeState {
	if c == nil {
		return CompositeClosed
	}
	return c.state
}

// IsOpen reports whether the composite is open.
func (c *Composite) IsOpen() bool {
	return c.State() == CompositeOpen
}

// SetOnToggle registers the listener invoked after every open/closed flip.
func (c *Composite) SetOnToggle(fn func(CompositeState)) *Composite {
	if c == nil {
		return c
	}
	c.onToggle = fn
	return c
}

// Activate toggles the composite unless its trigger is disabled. It
// reports whether the state flipped.
func (c *Composite) Activate() bool {
	if c == nil || c.machine.IsDisabled() {
		return false
	}
	if c.state == CompositeOpen {
		return c.Close()
	}
	return c.Open()
}

// Open opens the composite. It reports whether the state changed; a
// disabled trigger keeps it closed.
func (c *Composite) Open() bool {
	if c == nil || c.state == CompositeOpen || c.machine.IsDisabled() {
		return false
	}
	c.set(CompositeOpen)
	return true
}

// Close closes the composite. Closing is never blocked, disabled
// composites included: cancel and outside activation must always work.
func (c *Composite) Close() bool {
	if c == nil || c.state == CompositeClosed {
		return false
	}
	c.set(CompositeClosed)
	return true
}

// SelectChild performs an atomic child selection: the composite closes
// first, then commit runs to apply the choice and emit its change event.
// An already-closed composite still runs commit (keyboard reselection).
func (c *Composite) SelectChild(commit func()) {
	if c == nil || c.machine.IsDisabled() {
		return
	}
	c.Close()
	if commit != nil {
		commit()
	}
}

func (c *Composite) set(s CompositeState) {
	c.state = s
	if c.onToggle != nil {
		c.onToggle(s)
	}
}
