package widgets

import (
	"github.com/odvcencio/peek-ui/bridge"
	"github.com/odvcencio/peek-ui/interaction"
	"github.com/odvcencio/peek-ui/terminal"
)

// Section is the collapsible header of a nested sub-panel. Its children
// are separate widgets in the tree; the view hides the rows under a
// closed section. Sections start open so a fresh inspector shows
// everything.
type Section struct {
	Base
	composite *interaction.Composite
}

// NewSection creates an open section for a nested field.
func NewSection(desc bridge.FieldDescriptor) *Section {
	s := &Section{}
	s.initBase(desc, ControlSection)
	s.composite = interaction.NewComposite(s.machine)
	s.composite.Open()
	return s
}

// Composite returns the open/closed controller.
func (s *Section) Composite() *interaction.Composite {
	if s == nil {
		return nil
	}
	return s.composite
}

// Toggle flips the section open or closed.
func (s *Section) Toggle() bool {
	if s == nil {
		return false
	}
	return s.composite.Activate()
}

// HandleKey toggles on space or enter.
func (s *Section) HandleKey(ev terminal.KeyEvent) bool {
	if s == nil || s.machine.IsDisabled() {
		return false
	}
	if ev.Key == terminal.KeyEnter || (ev.Key == terminal.KeyRune && ev.Rune == ' ') {
		return s.Toggle()
	}
	return false
}

var (
	_ Widget     = (*Section)(nil)
	_ Toggler    = (*Section)(nil)
	_ Expandable = (*Section)(nil)
)

// Accordion coordinates a set of sibling sections. In exclusive mode
// opening one section closes the others; otherwise each section's
// open/closed axis is independent.
type Accordion struct {
	sections  []*Section
	exclusive bool
}

// NewAccordion creates an empty accordion.
func NewAccordion(exclusive bool) *Accordion {
	return &Accordion{exclusive: exclusive}
}

// Add registers a section. In exclusive mode a toggle hook closes the
// siblings whenever the section opens.
func (a *Accordion) Add(s *Section) {
	if a == nil || s == nil {
		return
	}
	a.sections = append(a.sections, s)
	s.Composite().SetOnToggle(func(cs interaction.CompositeState) {
		if a.exclusive && cs == interaction.CompositeOpen {
			a.closeOthers(s)
		}
	})
	if a.exclusive && s.Composite().IsOpen() && a.openCount() > 1 {
		s.Composite().Close()
	}
}

// Sections returns the registered sections in order.
func (a *Accordion) Sections() []*Section {
	if a == nil {
		return nil
	}
	return a.sections
}

func (a *Accordion) openCount() int {
	n := 0
	for _, s := range a.sections {
		if s.Composite().IsOpen() {
			n++
		}
	}
	return n
}

func (a *Accordion) closeOthers(keep *Section) {
	for _, s := range a.sections {
		if s != keep {
			s.Composite().Close()
		}
	}
}
