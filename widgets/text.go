package widgets

import (
	"github.com/odvcencio/peek-ui/bridge"
	"github.com/odvcencio/peek-ui/clipboard"
	"github.com/odvcencio/peek-ui/interaction"
	"github.com/odvcencio/peek-ui/terminal"
)

// Validator inspects committed text and returns a non-nil error to
// reject or flag it.
type Validator func(text string) error

// TextField edits a text field. Typing happens in a local buffer; the
// value only reaches the bridge on commit (enter), after the error and
// warning validators run. A failing error validator blocks the commit
// and surfaces inline; a failing warning validator flags the widget but
// lets the commit through.
type TextField struct {
	Base

	editor    lineEditor
	editing   bool
	clip      clipboard.Clipboard
	errorFn   Validator
	warningFn Validator
	normalize func(text string) string
}

// NewTextField creates a text field for the given field.
func NewTextField(desc bridge.FieldDescriptor) *TextField {
	t := &TextField{clip: &clipboard.MemoryClipboard{}}
	t.initBase(desc, ControlText)
	t.machine.SetSelectable(true)
	return t
}

// SetClipboard replaces the clipboard used by cut/copy/paste.
func (t *TextField) SetClipboard(c clipboard.Clipboard) *TextField {
	if t == nil || c == nil {
		return t
	}
	t.clip = c
	return t
}

// SetErrorValidator installs the blocking validator.
func (t *TextField) SetErrorValidator(fn Validator) *TextField {
	if t == nil {
		return t
	}
	t.errorFn = fn
	return t
}

// SetWarningValidator installs the advisory validator.
func (t *TextField) SetWarningValidator(fn Validator) *TextField {
	if t == nil {
		return t
	}
	t.warningFn = fn
	return t
}

// setNormalize installs a canonicalization step applied to text that
// passed the error validator, before the commit is emitted.
func (t *TextField) setNormalize(fn func(string) string) {
	if t != nil {
		t.normalize = fn
	}
}

// Editing reports whether the local buffer is live.
func (t *TextField) Editing() bool {
	return t != nil && t.editing
}

// EditText returns the live buffer contents.
func (t *TextField) EditText() string {
	if t == nil {
		return ""
	}
	return t.editor.String()
}

// CursorPos returns the rune position of the edit cursor.
func (t *TextField) CursorPos() int {
	if t == nil {
		return 0
	}
	return t.editor.Cursor()
}

// DisplayText shows the live buffer while editing, the bridge value
// otherwise.
func (t *TextField) DisplayText() string {
	if t == nil {
		return ""
	}
	if t.editing {
		return t.editor.String()
	}
	return t.Base.DisplayText()
}

// BeginEdit seeds the buffer from the current value and enters editing.
// The machine moves Focus -> Selected, the editing form of selection.
func (t *TextField) BeginEdit() bool {
	if t == nil || t.machine.IsDisabled() || t.editing {
		return false
	}
	t.editing = true
	t.editor.Set(t.Value().Text())
	t.machine.Apply(interaction.Confirm)
	return true
}

// CancelEdit drops the buffer without committing.
func (t *TextField) CancelEdit() {
	if t == nil || !t.editing {
		return
	}
	t.editing = false
	t.editor.Clear()
	t.clearValidation()
	t.machine.Apply(interaction.Clear)
}

// CommitText validates and emits the given text as the new value. It
// reports whether a change event was emitted.
func (t *TextField) CommitText(text string) bool {
	if t == nil || t.machine.IsDisabled() {
		return false
	}
	if t.errorFn != nil {
		if err := t.errorFn(text); err != nil {
			t.setValidation(SeverityError, err.Error())
			return false
		}
	}
	if t.normalize != nil {
		text = t.normalize(text)
	}
	if t.warningFn != nil {
		if err := t.warningFn(text); err != nil {
			t.setValidation(SeverityWarning, err.Error())
		} else {
			t.clearValidation()
		}
	} else {
		t.clearValidation()
	}
	old := t.Value()
	if old.Kind() == bridge.KindText && old.Text() == text {
		return false
	}
	t.emitChange(old, bridge.Text(text))
	return true
}

// commitBuffer commits the live buffer and leaves editing mode when the
// commit was not blocked by the error validator.
func (t *TextField) commitBuffer() bool {
	text := t.editor.String()
	if t.errorFn != nil {
		if err := t.errorFn(text); err != nil {
			t.setValidation(SeverityError, err.Error())
			return false
		}
	}
	emitted := t.CommitText(text)
	t.editing = false
	t.editor.Clear()
	t.machine.Apply(interaction.Clear)
	return emitted
}

// HandleKey implements buffer editing, clipboard actions and commit.
func (t *TextField) HandleKey(ev terminal.KeyEvent) bool {
	if t == nil || t.machine.IsDisabled() {
		return false
	}

	if !t.editing {
		switch {
		case ev.Key == terminal.KeyEnter:
			return t.BeginEdit()
		case ev.Key == terminal.KeyRune && !ev.Ctrl:
			if !t.BeginEdit() {
				return false
			}
			t.editor.Clear()
			t.editor.Insert(ev.Rune)
			return true
		}
		return false
	}

	switch ev.Key {
	case terminal.KeyEnter:
		t.commitBuffer()
		return true
	case terminal.KeyEscape:
		t.CancelEdit()
		return true
	case terminal.KeyBackspace:
		t.editor.Backspace()
		return true
	case terminal.KeyDelete:
		t.editor.Delete()
		return true
	case terminal.KeyLeft:
		t.editor.Left()
		return true
	case terminal.KeyRight:
		t.editor.Right()
		return true
	case terminal.KeyHome:
		t.editor.Home()
		return true
	case terminal.KeyEnd:
		t.editor.End()
		return true
	case terminal.KeyCtrlC:
		_ = t.clip.Write(t.editor.String())
		return true
	case terminal.KeyCtrlX:
		_ = t.clip.Write(t.editor.String())
		t.editor.Clear()
		return true
	case terminal.KeyCtrlV:
		if text, err := t.clip.Read(); err == nil {
			t.editor.InsertString(text)
		}
		return true
	case terminal.KeyRune:
		if !ev.Ctrl {
			t.editor.Insert(ev.Rune)
			return true
		}
	}
	return false
}

var (
	_ Widget        = (*TextField)(nil)
	_ TextCommitter = (*TextField)(nil)
)
