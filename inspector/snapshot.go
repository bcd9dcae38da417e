package inspector

import (
	"github.com/odvcencio/peek-ui/bridge"
	"github.com/odvcencio/peek-ui/interaction"
	"github.com/odvcencio/peek-ui/widgets"
)

// Snapshot is the pure-data render output for one widget: everything the
// view layer needs, nothing it may mutate.
type Snapshot struct {
	Path    bridge.Path
	Name    string
	Kind    bridge.Kind
	Control widgets.Control
	Depth   int

	State      interaction.State
	Enabled    bool
	Focused    bool
	Validation widgets.Validation

	// Expandable and Open describe the composite axis. Open is only
	// meaningful when Expandable is true.
	Expandable bool
	Open       bool

	// Value is the displayed value text.
	Value string

	// Doc is the field's markdown help, empty when docs are off.
	Doc string

	// Inline marks a vector element row rendered beside its siblings.
	Inline bool

	// Hidden marks rows under a closed section or list; the view skips
	// them but focus bookkeeping still sees them.
	Hidden bool
}

// Snapshot returns one entry per live widget, in tree order.
func (t *Tree) Snapshot() []Snapshot {
	if t == nil {
		return nil
	}
	out := make([]Snapshot, 0, len(t.entries))
	var closed []bridge.Path

	for _, e := range t.entries {
		// Drop closed ancestors that no longer prefix this path.
		for len(closed) > 0 && !e.desc.Path.HasPrefix(closed[len(closed)-1]) {
			closed = closed[:len(closed)-1]
		}
		hidden := len(closed) > 0

		s := Snapshot{
			Path:    e.desc.Path,
			Name:    e.desc.Name,
			Kind:    e.desc.Kind,
			Control: e.widget.Control(),
			Depth:   len(e.desc.Path) - 1,

			State:      e.widget.Machine().State(),
			Enabled:    !e.widget.Machine().IsDisabled(),
			Focused:    e.desc.Path.String() == t.focusKey,
			Validation: e.widget.Validation(),

			Value:  e.widget.DisplayText(),
			Inline: e.desc.Inline,
			Hidden: hidden,
		}
		if t.opts.ShowDocs {
			s.Doc = e.desc.Doc
		}
		if exp, ok := e.widget.(widgets.Expandable); ok {
			s.Expandable = true
			s.Open = exp.Composite().IsOpen()
			if !exp.Composite().IsOpen() {
				closed = append(closed, e.desc.Path)
			}
		}
		out = append(out, s)
	}
	return out
}
