package inspector

import (
	"github.com/odvcencio/peek-ui/bridge"
	"github.com/odvcencio/peek-ui/interaction"
	"github.com/odvcencio/peek-ui/widgets"
)

// FocusedPath returns the path of the focused widget, or nil.
func (t *Tree) FocusedPath() bridge.Path {
	if t == nil || t.focusKey == "" {
		return nil
	}
	if e, ok := t.byPath[t.focusKey]; ok {
		return e.desc.Path
	}
	return nil
}

// FocusPath moves focus to the widget at path. It reports whether the
// widget exists and accepted focus.
func (t *Tree) FocusPath(path bridge.Path) bool {
	if t == nil {
		return false
	}
	e, ok := t.byPath[path.String()]
	if !ok {
		return false
	}
	return t.focusEntry(e)
}

// FocusNext moves focus to the next focusable widget in tree order,
// wrapping at the end. Hidden and disabled widgets are skipped.
func (t *Tree) FocusNext() bool {
	return t.moveFocus(1)
}

// FocusPrev moves focus to the previous focusable widget in tree order.
func (t *Tree) FocusPrev() bool {
	return t.moveFocus(-1)
}

func (t *Tree) moveFocus(dir int) bool {
	if t == nil {
		return false
	}
	ring := t.focusRing()
	if len(ring) == 0 {
		return false
	}
	cur := -1
	for i, e := range ring {
		if e.desc.Path.String() == t.focusKey {
			cur = i
			break
		}
	}
	next := cur + dir
	if cur == -1 {
		if dir > 0 {
			next = 0
		} else {
			next = len(ring) - 1
		}
	}
	next = ((next % len(ring)) + len(ring)) % len(ring)
	return t.focusEntry(ring[next])
}

// focusRing returns the focusable entries in tree order: focus-accepting
// machines that are enabled and not hidden under a closed composite.
func (t *Tree) focusRing() []*entry {
	hidden := t.hiddenKeys()
	var ring []*entry
	for _, e := range t.entries {
		m := e.widget.Machine()
		if !m.Focusable() || m.IsDisabled() {
			continue
		}
		if _, ok := hidden[e.desc.Path.String()]; ok {
			continue
		}
		ring = append(ring, e)
	}
	return ring
}

// hiddenKeys returns the paths hidden under a closed section or list.
func (t *Tree) hiddenKeys() map[string]struct{} {
	hidden := make(map[string]struct{})
	var closed []bridge.Path
	for _, e := range t.entries {
		for len(closed) > 0 && !e.desc.Path.HasPrefix(closed[len(closed)-1]) {
			closed = closed[:len(closed)-1]
		}
		if len(closed) > 0 {
			hidden[e.desc.Path.String()] = struct{}{}
		}
		if exp, ok := e.widget.(widgets.Expandable); ok && !exp.Composite().IsOpen() {
			closed = append(closed, e.desc.Path)
		}
	}
	return hidden
}

// focusEntry blurs the currently focused widget and focuses e. It
// reports whether e took focus.
func (t *Tree) focusEntry(e *entry) bool {
	key := e.desc.Path.String()
	if t.focusKey == key {
		return true
	}
	if prev, ok := t.byPath[t.focusKey]; ok {
		prev.widget.Machine().Apply(interaction.Blur)
	}
	t.focusKey = ""
	m := e.widget.Machine()
	if !m.Focusable() || m.IsDisabled() {
		return false
	}
	m.Apply(interaction.FocusIn)
	t.focusKey = key
	return true
}
