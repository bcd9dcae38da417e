// Package driver provides scripted interaction with an inspector tree for
// tests and automation. It exposes semantic operations addressed by field
// path rather than raw terminal I/O: each operation routes the normalized
// messages a real host would and runs one tick, so a script observes the
// same per-tick ordering as an interactive session.
package driver

import (
	"errors"

	"github.com/odvcencio/peek-ui/bridge"
	"github.com/odvcencio/peek-ui/inspector"
	"github.com/odvcencio/peek-ui/interaction"
	"github.com/odvcencio/peek-ui/runtime"
	"github.com/odvcencio/peek-ui/terminal"
	"github.com/odvcencio/peek-ui/widgets"
)

// Errors returned by Driver operations.
var (
	ErrFieldNotFound = errors.New("field not found")
	ErrFieldDisabled = errors.New("field is disabled")
	ErrNotEditable   = errors.New("field is not editable")
	ErrNoVariant     = errors.New("field has no such variant")
)

// Driver wraps one inspector tree and records every change event its
// operations apply.
type Driver struct {
	tree   *inspector.Tree
	events []interaction.ChangeEvent
}

// New creates a driver over tree.
func New(tree *inspector.Tree) *Driver {
	return &Driver{tree: tree}
}

// Tree returns the driven tree.
func (d *Driver) Tree() *inspector.Tree {
	if d == nil {
		return nil
	}
	return d.tree
}

// Events returns every change event applied through this driver, in
// application order.
func (d *Driver) Events() []interaction.ChangeEvent {
	if d == nil {
		return nil
	}
	return d.events
}

// Step runs one tick with the given messages and returns the events it
// applied.
func (d *Driver) Step(msgs ...runtime.Message) []interaction.ChangeEvent {
	if d == nil || d.tree == nil {
		return nil
	}
	applied := d.tree.Update(msgs)
	d.events = append(d.events, applied...)
	return applied
}

func (d *Driver) widget(path string) (widgets.Widget, error) {
	if d == nil || d.tree == nil {
		return nil, ErrFieldNotFound
	}
	w, ok := d.tree.Widget(bridge.ParsePath(path))
	if !ok {
		return nil, ErrFieldNotFound
	}
	return w, nil
}

func (d *Driver) interactive(path string) (widgets.Widget, error) {
	w, err := d.widget(path)
	if err != nil {
		return nil, err
	}
	if w.Machine().IsDisabled() {
		return w, ErrFieldDisabled
	}
	return w, nil
}

// Hover moves the pointer over the field at path.
func (d *Driver) Hover(path string) error {
	if _, err := d.widget(path); err != nil {
		return err
	}
	d.Step(runtime.PointerEnterMsg{Path: bridge.ParsePath(path)})
	return nil
}

// Leave moves the pointer off the field at path.
func (d *Driver) Leave(path string) error {
	if _, err := d.widget(path); err != nil {
		return err
	}
	d.Step(runtime.PointerLeaveMsg{Path: bridge.ParsePath(path)})
	return nil
}

// Press activates the field at path: toggling checkboxes and sections,
// opening or closing dropdowns, focusing everything else.
func (d *Driver) Press(path string) error {
	if _, err := d.interactive(path); err != nil {
		return err
	}
	d.Step(runtime.PressMsg{Path: bridge.ParsePath(path)})
	return nil
}

// Focus moves keyboard focus to the field at path.
func (d *Driver) Focus(path string) error {
	w, err := d.interactive(path)
	if err != nil {
		return err
	}
	if !w.Machine().Focusable() {
		return ErrNotEditable
	}
	d.Step(runtime.FocusMsg{Path: bridge.ParsePath(path)})
	return nil
}

// Tab moves focus forward through the ring.
func (d *Driver) Tab() {
	d.Step(runtime.KeyMsg{Key: terminal.KeyTab})
}

// ShiftTab moves focus backward through the ring.
func (d *Driver) ShiftTab() {
	d.Step(runtime.KeyMsg{Key: terminal.KeyTab, Shift: true})
}

// Key sends one key to the focused widget.
func (d *Driver) Key(k terminal.Key) {
	d.Step(runtime.KeyMsg{Key: k})
}

// Type sends text rune by rune to the focused widget within a single
// tick, the way a paste arrives.
func (d *Driver) Type(text string) {
	msgs := make([]runtime.Message, 0, len(text))
	for _, r := range text {
		msgs = append(msgs, runtime.KeyMsg{Key: terminal.KeyRune, Rune: r})
	}
	d.Step(msgs...)
}

// CommitText commits text to the field at path as one edit.
func (d *Driver) CommitText(path, text string) error {
	w, err := d.interactive(path)
	if err != nil {
		return err
	}
	if _, ok := w.(widgets.TextCommitter); !ok {
		return ErrNotEditable
	}
	d.Step(runtime.TextCommitMsg{Path: bridge.ParsePath(path), Text: text})
	return nil
}

// Choose commits a variant on the enum field at path.
func (d *Driver) Choose(path, variant string) error {
	w, err := d.interactive(path)
	if err != nil {
		return err
	}
	c, ok := w.(widgets.Chooser)
	if !ok {
		return ErrNotEditable
	}
	if !w.Descriptor().HasVariant(variant) {
		return ErrNoVariant
	}
	c.Choose(variant)
	d.Step()
	return nil
}

// Checked reports the displayed boolean of the field at path.
func (d *Driver) Checked(path string) (bool, error) {
	w, err := d.widget(path)
	if err != nil {
		return false, err
	}
	return w.Value().Bool(), nil
}

// Value returns the display text of the field at path.
func (d *Driver) Value(path string) (string, error) {
	w, err := d.widget(path)
	if err != nil {
		return "", err
	}
	return w.DisplayText(), nil
}

// Chosen returns the committed variant of the enum field at path.
func (d *Driver) Chosen(path string) (string, error) {
	w, err := d.widget(path)
	if err != nil {
		return "", err
	}
	return w.Value().VariantName(), nil
}

// Validation returns the inline validation of the field at path.
func (d *Driver) Validation(path string) (widgets.Validation, error) {
	w, err := d.widget(path)
	if err != nil {
		return widgets.Validation{}, err
	}
	return w.Validation(), nil
}

// Focused returns the path of the focused field, or the empty string.
func (d *Driver) Focused() string {
	if d == nil || d.tree == nil {
		return ""
	}
	return d.tree.FocusedPath().String()
}

// Snapshot returns the tree's current render snapshots.
func (d *Driver) Snapshot() []inspector.Snapshot {
	if d == nil || d.tree == nil {
		return nil
	}
	return d.tree.Snapshot()
}
