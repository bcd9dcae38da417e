package widgets

import (
	"errors"
	"strconv"
	"strings"

	"github.com/odvcencio/peek-ui/bridge"
	"github.com/odvcencio/peek-ui/interaction"
	"github.com/odvcencio/peek-ui/terminal"
)

var (
	errNotANumber = errors.New("not a number")
	errOutOfRange = errors.New("out of range")
)

// NumberField edits a numeric field. Committed text is parsed and
// checked against the declared range before anything is emitted: bad
// text surfaces as an inline validation error and never reaches the
// bridge. Stepwise adjustments (arrow keys, drag) clamp to the range
// instead.
type NumberField struct {
	Base

	editor    lineEditor
	editing   bool
	precision int
}

// NewNumberField creates a number field for the given field.
func NewNumberField(desc bridge.FieldDescriptor) *NumberField {
	n := &NumberField{precision: -1}
	n.initBase(desc, ControlNumber)
	n.machine.SetSelectable(true)
	return n
}

// SetPrecision fixes the number of displayed decimals. Negative keeps
// the shortest exact form.
func (n *NumberField) SetPrecision(p int) *NumberField {
	if n == nil {
		return n
	}
	n.precision = p
	return n
}

// Number returns the displayed numeric value.
func (n *NumberField) Number() float64 {
	return n.Value().Number()
}

// Editing reports whether the local buffer is live.
func (n *NumberField) Editing() bool {
	return n != nil && n.editing
}

// EditText returns the live buffer contents.
func (n *NumberField) EditText() string {
	if n == nil {
		return ""
	}
	return n.editor.String()
}

// DisplayText shows the live buffer while editing, the formatted value
// otherwise.
func (n *NumberField) DisplayText() string {
	if n == nil {
		return ""
	}
	if n.editing {
		return n.editor.String()
	}
	return n.format(n.Value().Number())
}

func (n *NumberField) format(v float64) string {
	return strconv.FormatFloat(v, 'f', n.precision, 64)
}

// step returns the declared adjustment step, defaulting to 1.
func (n *NumberField) step() float64 {
	if n.desc.Step > 0 {
		return n.desc.Step
	}
	return 1
}

// Adjust moves the value by steps increments, clamped to the declared
// range, and emits the change. It reports whether a change was emitted.
func (n *NumberField) Adjust(steps int) bool {
	if n == nil || n.machine.IsDisabled() || steps == 0 {
		return false
	}
	old := n.Value()
	next := n.desc.Clamp(old.Number() + float64(steps)*n.step())
	if next == old.Number() {
		return false
	}
	n.clearValidation()
	n.emitChange(old, bridge.Number(next))
	return true
}

// CommitText parses and range-checks text, then emits the change. Text
// that does not parse, or that parses outside the declared range, is
// rejected with an inline validation error and emits nothing.
func (n *NumberField) CommitText(text string) bool {
	if n == nil || n.machine.IsDisabled() {
		return false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		n.setValidation(SeverityError, errNotANumber.Error())
		return false
	}
	if !n.desc.InRange(v) {
		n.setValidation(SeverityError, errOutOfRange.Error())
		return false
	}
	n.clearValidation()
	old := n.Value()
	if old.Kind() == bridge.KindNumber && old.Number() == v {
		return false
	}
	n.emitChange(old, bridge.Number(v))
	return true
}

// BeginEdit seeds the buffer from the current value and enters editing.
func (n *NumberField) BeginEdit() bool {
	if n == nil || n.machine.IsDisabled() || n.editing {
		return false
	}
	n.editing = true
	n.editor.Set(n.format(n.Value().Number()))
	n.machine.Apply(interaction.Confirm)
	return true
}

// CancelEdit drops the buffer without committing.
func (n *NumberField) CancelEdit() {
	if n == nil || !n.editing {
		return
	}
	n.editing = false
	n.editor.Clear()
	n.clearValidation()
	n.machine.Apply(interaction.Clear)
}

// HandleKey implements arrow adjustment and buffer editing.
func (n *NumberField) HandleKey(ev terminal.KeyEvent) bool {
	if n == nil || n.machine.IsDisabled() {
		return false
	}

	if !n.editing {
		switch {
		case ev.Key == terminal.KeyUp:
			n.Adjust(1)
			return true
		case ev.Key == terminal.KeyDown:
			n.Adjust(-1)
			return true
		case ev.Key == terminal.KeyEnter:
			return n.BeginEdit()
		case ev.Key == terminal.KeyRune && !ev.Ctrl && isNumberRune(ev.Rune):
			if !n.BeginEdit() {
				return false
			}
			n.editor.Clear()
			n.editor.Insert(ev.Rune)
			return true
		}
		return false
	}

	switch ev.Key {
	case terminal.KeyEnter:
		// A blocked commit keeps the buffer so the text can be fixed.
		if n.CommitText(n.editor.String()); n.validation.Severity != SeverityError {
			n.editing = false
			n.editor.Clear()
			n.machine.Apply(interaction.Clear)
		}
		return true
	case terminal.KeyEscape:
		n.CancelEdit()
		return true
	case terminal.KeyBackspace:
		n.editor.Backspace()
		return true
	case terminal.KeyDelete:
		n.editor.Delete()
		return true
	case terminal.KeyLeft:
		n.editor.Left()
		return true
	case terminal.KeyRight:
		n.editor.Right()
		return true
	case terminal.KeyHome:
		n.editor.Home()
		return true
	case terminal.KeyEnd:
		n.editor.End()
		return true
	case terminal.KeyRune:
		if !ev.Ctrl && isNumberRune(ev.Rune) {
			n.editor.Insert(ev.Rune)
			return true
		}
	}
	return false
}

func isNumberRune(r rune) bool {
	return (r >= '0' && r <= '9') || r == '-' || r == '+' || r == '.' || r == 'e' || r == 'E'
}

var (
	_ Widget        = (*NumberField)(nil)
	_ TextCommitter = (*NumberField)(nil)
	_ Adjuster      = (*NumberField)(nil)
)
