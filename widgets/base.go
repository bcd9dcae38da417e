// Package widgets provides the concrete inspector widgets: thin policy
// layers over the interaction state machine, one per field kind. Widgets
// hold no layout or styling; they expose state and display text that the
// view layer renders, and they emit value changes toward the bridge
// through an emit hook the inspector installs.
package widgets

import (
	"github.com/odvcencio/peek-ui/bridge"
	"github.com/odvcencio/peek-ui/interaction"
	"github.com/odvcencio/peek-ui/terminal"
)

// Control names the concrete widget policy driving a field.
type Control int

const (
	ControlLabel Control = iota
	ControlCheckbox
	ControlNumber
	ControlSlider
	ControlText
	ControlColor
	ControlRadio
	ControlDropdown
	ControlSection
	ControlList
)

func (c Control) String() string {
	switch c {
	case ControlCheckbox:
		return "checkbox"
	case ControlNumber:
		return "number"
	case ControlSlider:
		return "slider"
	case ControlText:
		return "text"
	case ControlColor:
		return "color"
	case ControlRadio:
		return "radio"
	case ControlDropdown:
		return "dropdown"
	case ControlSection:
		return "section"
	case ControlList:
		return "list"
	default:
		return "label"
	}
}

// Severity tags widget-local validation results. Severities are
// presentational: they never become interaction states.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "none"
	}
}

// Validation is the inline validation result of one widget.
type Validation struct {
	Severity Severity
	Message  string
}

// EmitFunc receives one committed edit. The inspector installs a hook
// that queues the edit for the next channel drain.
type EmitFunc func(old, next bridge.Value)

// Widget is the contract every inspector widget satisfies. Interaction
// state lives in the embedded machine and survives tree rebuilds; the
// displayed value is refreshed from the bridge every tick.
type Widget interface {
	Descriptor() bridge.FieldDescriptor
	SetDescriptor(d bridge.FieldDescriptor)
	Machine() *interaction.Machine
	Refresh(v bridge.Value)
	Value() bridge.Value
	DisplayText() string
	Control() Control
	Validation() Validation
	FlagInvalid(msg string)
	SetEmit(fn EmitFunc)
	HandleKey(ev terminal.KeyEvent) bool
}

// Toggler is implemented by widgets with a momentary flip action.
type Toggler interface {
	Toggle() bool
}

// TextCommitter is implemented by widgets that accept committed text.
type TextCommitter interface {
	CommitText(text string) bool
}

// Adjuster is implemented by widgets with stepwise value adjustment.
type Adjuster interface {
	Adjust(steps int) bool
}

// Chooser is implemented by widgets over a closed option set.
type Chooser interface {
	Options() []string
	Chosen() string
	Choose(name string) bool
}

// Expandable is implemented by widgets with an open/closed axis.
type Expandable interface {
	Composite() *interaction.Composite
}

// Base carries the state shared by every widget. Embed it and call
// initBase from the constructor.
type Base struct {
	desc       bridge.FieldDescriptor
	machine    *interaction.Machine
	control    Control
	value      bridge.Value
	emit       EmitFunc
	validation Validation
}

func (b *Base) initBase(desc bridge.FieldDescriptor, control Control) {
	b.desc = desc
	b.machine = interaction.NewMachine()
	b.control = control
}

// Descriptor returns the widget's current field descriptor.
func (b *Base) Descriptor() bridge.FieldDescriptor {
	if b == nil {
		return bridge.FieldDescriptor{}
	}
	return b.desc
}

// SetDescriptor replaces the descriptor after a tree rebuild.
func (b *Base) SetDescriptor(d bridge.FieldDescriptor) {
	if b == nil {
		return
	}
	b.desc = d
}

// Machine returns the interaction state machine.
func (b *Base) Machine() *interaction.Machine {
	if b == nil {
		return nil
	}
	return b.machine
}

// Refresh replaces the displayed value with a fresh bridge read.
func (b *Base) Refresh(v bridge.Value) {
	if b == nil {
		return
	}
	b.value = v
}

// Value returns the last refreshed value.
func (b *Base) Value() bridge.Value {
	if b == nil {
		return bridge.Value{}
	}
	return b.value
}

// DisplayText returns the value's display form. Widgets with edit
// buffers override this.
func (b *Base) DisplayText() string {
	if b == nil {
		return ""
	}
	return b.value.Display()
}

// Control returns the widget's control name.
func (b *Base) Control() Control {
	if b == nil {
		return ControlLabel
	}
	return b.control
}

// Validation returns the current inline validation result.
func (b *Base) Validation() Validation {
	if b == nil {
		return Validation{}
	}
	return b.validation
}

// SetEmit installs the committed-edit hook.
func (b *Base) SetEmit(fn EmitFunc) {
	if b == nil {
		return
	}
	b.emit = fn
}

// HandleKey ignores keys by default.
func (b *Base) HandleKey(terminal.KeyEvent) bool {
	return false
}

// emitChange hands one committed edit to the inspector and advances the
// local value optimistically, so a second edit in the same tick chains
// off the first instead of the stale read. The authoritative value comes
// back from the re-read after the write lands.
func (b *Base) emitChange(old, next bridge.Value) {
	if b == nil {
		return
	}
	b.value = next
	if b.emit != nil {
		b.emit(old, next)
	}
}

func (b *Base) setValidation(sev Severity, msg string) {
	if b == nil {
		return
	}
	b.validation = Validation{Severity: sev, Message: msg}
}

func (b *Base) clearValidation() {
	if b == nil {
		return
	}
	b.validation = Validation{}
}

// FlagInvalid marks the widget with an inline error. The inspector calls
// this when a bridge write is rejected after the fact.
func (b *Base) FlagInvalid(msg string) {
	b.setValidation(SeverityError, msg)
}
