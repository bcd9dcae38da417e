// Package inspector turns a bridge handle into a live tree of widgets:
// it builds one widget per enumerated field, routes normalized input to
// them, drains their committed edits through the bridge once per tick,
// and rebuilds the tree by diff whenever the value's shape changes.
package inspector

import (
	"github.com/odvcencio/peek-ui/bridge"
	"github.com/odvcencio/peek-ui/widgets"
)

// Builder constructs the widget for one field.
type Builder func(desc bridge.FieldDescriptor, opts Options) widgets.Widget

// Registry is the explicit kind-to-widget mapping a tree is built with.
// Each tree takes its own registry, so independent inspectors never
// share mutable mapping state. Path overrides beat kind defaults.
type Registry struct {
	byKind map[bridge.Kind]Builder
	byPath map[string]Builder
}

// NewRegistry returns a registry with the default mapping: checkbox for
// bools, number field for numbers, text field for text, radio group for
// small enums and dropdown past the variant threshold, section for
// nested values, expandable list for collections. Read-only fields
// always map to labels.
func NewRegistry() *Registry {
	r := &Registry{
		byKind: make(map[bridge.Kind]Builder),
		byPath: make(map[string]Builder),
	}
	r.byKind[bridge.KindBool] = func(d bridge.FieldDescriptor, _ Options) widgets.Widget {
		return widgets.NewCheckbox(d)
	}
	r.byKind[bridge.KindNumber] = func(d bridge.FieldDescriptor, o Options) widgets.Widget {
		return widgets.NewNumberField(d).SetPrecision(o.FloatPrecision)
	}
	r.byKind[bridge.KindText] = func(d bridge.FieldDescriptor, _ Options) widgets.Widget {
		return widgets.NewTextField(d)
	}
	r.byKind[bridge.KindEnum] = func(d bridge.FieldDescriptor, o Options) widgets.Widget {
		if len(d.Variants) > o.DropdownThreshold {
			return widgets.NewDropdown(d, o.CollectionPageSize)
		}
		return widgets.NewRadioGroup(d)
	}
	r.byKind[bridge.KindNested] = func(d bridge.FieldDescriptor, _ Options) widgets.Widget {
		return widgets.NewSection(d)
	}
	r.byKind[bridge.KindCollection] = func(d bridge.FieldDescriptor, o Options) widgets.Widget {
		if d.Inline {
			// Inline vectors render their elements as sibling number
			// fields; the head row is a plain summary.
			return widgets.NewLabel(d)
		}
		return widgets.NewListSection(d, o.CollectionPageSize)
	}
	return r
}

// Register replaces the builder for a field kind.
func (r *Registry) Register(kind bridge.Kind, b Builder) *Registry {
	if r == nil || b == nil {
		return r
	}
	r.byKind[kind] = b
	return r
}

// RegisterPath installs a builder for one exact path, overriding the
// kind default. Hosts use this to put a slider on a particular number
// field or a color field on a particular text field.
func (r *Registry) RegisterPath(path bridge.Path, b Builder) *Registry {
	if r == nil || b == nil {
		return r
	}
	r.byPath[path.String()] = b
	return r
}

// build resolves the widget for desc. Read-only leaf fields become
// labels regardless of kind; composite heads stay expandable so their
// children remain reachable.
func (r *Registry) build(desc bridge.FieldDescriptor, opts Options) widgets.Widget {
	if r == nil {
		return widgets.NewLabel(desc)
	}
	if b, ok := r.byPath[desc.Path.String()]; ok {
		return b(desc, opts)
	}
	if !desc.Writable && desc.Kind != bridge.KindNested && desc.Kind != bridge.KindCollection {
		return widgets.NewLabel(desc)
	}
	if b, ok := r.byKind[desc.Kind]; ok {
		return b(desc, opts)
	}
	return widgets.NewLabel(desc)
}
