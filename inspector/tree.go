package inspector

import (
	"errors"

	"github.com/odvcencio/peek-ui/bridge"
	"github.com/odvcencio/peek-ui/interaction"
	"github.com/odvcencio/peek-ui/runtime"
	"github.com/odvcencio/peek-ui/state"
	"github.com/odvcencio/peek-ui/terminal"
	"github.com/odvcencio/peek-ui/widgets"
)

// entry pairs one field descriptor with its live widget. The display
// signal carries the freshest bridge read; the widget subscribes to it
// for the lifetime of the entry and is cut loose on teardown.
type entry struct {
	desc    bridge.FieldDescriptor
	widget  widgets.Widget
	display *state.Signal[bridge.Value]
	subs    *state.Subscriptions
}

// Tree is one live inspector over one root handle. It owns the widget
// instances (keyed by path, surviving rebuilds), the edit propagation
// channel, and the focus ring. A tree is single-owner state: all methods
// run on the host's update goroutine, one tick at a time.
type Tree struct {
	root     bridge.Handle
	registry *Registry
	opts     Options
	channel  *Channel

	entries   []*entry
	byPath    map[string]*entry
	focusKey  string
	frame     uint64
	accordion *widgets.Accordion
}

// Build enumerates root and constructs a widget per field. A nil
// registry gets the default mapping.
func Build(root bridge.Handle, registry *Registry, opts Options) (*Tree, error) {
	if registry == nil {
		registry = NewRegistry()
	}
	t := &Tree{
		root:     root,
		registry: registry,
		opts:     opts,
		channel:  NewChannel(),
		byPath:   make(map[string]*entry),
	}
	descs, err := bridge.Enumerate(root)
	if err != nil {
		return nil, err
	}
	t.patch(descs)
	t.refreshValues()
	return t, nil
}

// Frame returns the current tick number.
func (t *Tree) Frame() uint64 {
	if t == nil {
		return 0
	}
	return t.frame
}

// Len returns the number of live widgets.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Widget returns the live widget at path, if any.
func (t *Tree) Widget(path bridge.Path) (widgets.Widget, bool) {
	if t == nil {
		return nil, false
	}
	e, ok := t.byPath[path.String()]
	if !ok {
		return nil, false
	}
	return e.widget, true
}

// Update runs one tick: route the normalized input messages to widgets,
// drain the change events they emitted through the bridge in emission
// order, rebuild the tree if any write landed (its shape may have
// changed), then re-read every displayed value. It returns the events
// actually applied, in order.
func (t *Tree) Update(msgs []runtime.Message) []interaction.ChangeEvent {
	if t == nil {
		return nil
	}
	t.frame++
	for _, msg := range msgs {
		t.route(msg)
	}
	applied := t.drainEvents()
	if len(applied) > 0 {
		_ = t.Rebuild()
	}
	t.refreshValues()
	return applied
}

// SetDisabled disables or re-enables the widget at path. Re-enabling
// resets the widget to its default state; a disabled widget cannot keep
// focus.
func (t *Tree) SetDisabled(path bridge.Path, disabled bool) {
	if t == nil {
		return
	}
	e, ok := t.byPath[path.String()]
	if !ok {
		return
	}
	if disabled {
		e.widget.Machine().Apply(interaction.Disable)
		if t.focusKey == path.String() {
			t.focusKey = ""
		}
		return
	}
	e.widget.Machine().Apply(interaction.Enable)
}

// Rebuild re-enumerates the root and diffs against the live entries:
// surviving paths keep their widget and its interaction state, vanished
// paths are torn down, new paths get fresh widgets in default state.
func (t *Tree) Rebuild() error {
	if t == nil {
		return nil
	}
	descs, err := bridge.Enumerate(t.root)
	if err != nil {
		return err
	}
	t.patch(descs)
	return nil
}

// patch applies one enumeration snapshot to the live entries. A path
// whose kind changed gets a fresh widget: the old policy no longer fits
// the field.
func (t *Tree) patch(descs []bridge.FieldDescriptor) {
	old := t.byPath
	t.entries = make([]*entry, 0, len(descs))
	t.byPath = make(map[string]*entry, len(descs))

	for _, d := range descs {
		key := d.Path.String()
		if e, ok := old[key]; ok && e.desc.Kind == d.Kind {
			e.desc = d
			e.widget.SetDescriptor(d)
			t.entries = append(t.entries, e)
			t.byPath[key] = e
			delete(old, key)
			continue
		}
		e := t.newEntry(d)
		t.entries = append(t.entries, e)
		t.byPath[key] = e
	}

	for key, e := range old {
		e.subs.Clear()
		if t.focusKey == key {
			t.focusKey = ""
		}
	}

	t.regroupSections()
}

func (t *Tree) newEntry(d bridge.FieldDescriptor) *entry {
	e := &entry{
		desc:    d,
		widget:  t.registry.build(d, t.opts),
		display: state.NewSignal(bridge.Value{}),
		subs:    state.NewSubscriptions(state.DirectScheduler),
	}
	e.display.SetEqualFunc(func(a, b bridge.Value) bool { return a.Equal(b) })
	e.subs.Subscribe(e.display, func() {
		e.widget.Refresh(e.display.Get())
	})

	path := d.Path
	e.widget.SetEmit(func(old, next bridge.Value) {
		t.channel.Emit(interaction.NewChangeEvent(path, old, next))
	})
	return e
}

// regroupSections rebinds top-level sections to the exclusive accordion
// after every patch.
func (t *Tree) regroupSections() {
	if !t.opts.ExclusiveSections {
		t.accordion = nil
		return
	}
	t.accordion = widgets.NewAccordion(true)
	for _, e := range t.entries {
		if s, ok := e.widget.(*widgets.Section); ok && len(e.desc.Path) == 1 {
			t.accordion.Add(s)
		}
	}
}

// refreshValues re-reads every displayed value from the bridge. A path
// that stopped resolving means the shape changed under us: rebuild once
// and re-read the survivors.
func (t *Tree) refreshValues() {
	if t.readAll() {
		return
	}
	if t.Rebuild() != nil {
		return
	}
	t.readAll()
}

// readAll reads every entry's value and reports whether all paths still
// resolve.
func (t *Tree) readAll() bool {
	ok := true
	for _, e := range t.entries {
		v, err := bridge.Read(t.root, e.desc.Path)
		if err != nil {
			ok = false
			continue
		}
		e.display.Set(v)
	}
	return ok
}

// drainEvents validates and writes the queued edits in emission order.
// Stale paths tear their widget down silently; rejected writes flag the
// originating widget and are never fatal.
func (t *Tree) drainEvents() []interaction.ChangeEvent {
	var applied []interaction.ChangeEvent
	for _, ev := range t.channel.Drain(t.frame) {
		e, live := t.byPath[ev.Path.String()]

		cur, _, err := bridge.Lookup(t.root, ev.Path)
		if err != nil || cur.Kind != ev.New.Kind() {
			// Shape changed since emission: the event targets a stale
			// path. Drop it and the widget with it.
			if live {
				t.teardown(e)
			}
			continue
		}

		if err := bridge.Write(t.root, ev.Path, ev.New); err != nil {
			if errors.Is(err, bridge.ErrPathNotFound) {
				if live {
					t.teardown(e)
				}
				continue
			}
			if live {
				e.widget.FlagInvalid(err.Error())
			}
			continue
		}

		applied = append(applied, ev)
		if live {
			if v, err := bridge.Read(t.root, ev.Path); err == nil {
				e.display.Set(v)
			}
		}
	}
	return applied
}

func (t *Tree) teardown(e *entry) {
	key := e.desc.Path.String()
	e.subs.Clear()
	delete(t.byPath, key)
	for i, other := range t.entries {
		if other == e {
			t.entries = append(t.entries[:i], t.entries[i+1:]...)
			break
		}
	}
	if t.focusKey == key {
		t.focusKey = ""
	}
}

// route dispatches one normalized input message.
func (t *Tree) route(msg runtime.Message) {
	switch m := msg.(type) {
	case runtime.PointerEnterMsg:
		t.apply(m.Path, interaction.PointerEnter)
	case runtime.PointerLeaveMsg:
		t.apply(m.Path, interaction.PointerLeave)
	case runtime.PressMsg:
		t.press(m.Path)
	case runtime.ReleaseMsg:
		t.apply(m.Path, interaction.Release)
	case runtime.TextCommitMsg:
		t.commitText(m.Path, m.Text)
	case runtime.FocusMsg:
		t.FocusPath(m.Path)
	case runtime.BlurMsg:
		t.blur(m.Path)
	case runtime.KeyMsg:
		t.key(m)
	case runtime.FocusNextMsg:
		t.FocusNext()
	case runtime.FocusPrevMsg:
		t.FocusPrev()
	}
}

func (t *Tree) apply(path bridge.Path, trig interaction.Trigger) {
	if e, ok := t.byPath[path.String()]; ok {
		e.widget.Machine().Apply(trig)
	}
}

// press is trigger activation at a path: it closes dropdowns the press
// landed outside of, moves focus, and activates the pressed widget
// (toggle for checkboxes and sections, open/close for dropdowns).
func (t *Tree) press(path bridge.Path) {
	for _, e := range t.entries {
		if e.widget.Control() != widgets.ControlDropdown {
			continue
		}
		if exp, ok := e.widget.(widgets.Expandable); ok && !path.HasPrefix(e.desc.Path) {
			exp.Composite().Close()
		}
	}

	e, ok := t.byPath[path.String()]
	if !ok {
		return
	}
	t.focusEntry(e)
	e.widget.Machine().Apply(interaction.Press)

	switch w := e.widget.(type) {
	case *widgets.Dropdown:
		if w.Composite().IsOpen() {
			w.Close()
		} else {
			w.Open()
		}
	case widgets.Toggler:
		w.Toggle()
	}
}

func (t *Tree) commitText(path bridge.Path, text string) {
	e, ok := t.byPath[path.String()]
	if !ok {
		return
	}
	if tc, ok := e.widget.(widgets.TextCommitter); ok {
		tc.CommitText(text)
	}
}

func (t *Tree) blur(path bridge.Path) {
	key := path.String()
	if e, ok := t.byPath[key]; ok {
		e.widget.Machine().Apply(interaction.Blur)
	}
	if t.focusKey == key {
		t.focusKey = ""
	}
}

func (t *Tree) key(m runtime.KeyMsg) {
	if m.Key == terminal.KeyTab {
		if m.Shift {
			t.FocusPrev()
		} else {
			t.FocusNext()
		}
		return
	}
	e, ok := t.byPath[t.focusKey]
	if !ok {
		return
	}
	e.widget.HandleKey(terminal.KeyEvent{
		Key: m.Key, Rune: m.Rune, Alt: m.Alt, Ctrl: m.Ctrl, Shift: m.Shift,
	})
}
