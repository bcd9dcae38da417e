package bridge

// FieldDescriptor describes one inspectable field. Descriptors are produced
// by Handle.Fields for direct fields and synthesized by Enumerate for
// collection elements and enum payload fields.
type FieldDescriptor struct {
	// Name is the field's local name, or the decimal index of a collection
	// element.
	Name string

	// Path locates the field from the inspected root. Handle.Fields fills a
	// single-segment path; Enumerate rewrites it to the full path.
	Path Path

	// Kind is the field's declared kind. Reads must return a value whose tag
	// matches; a mismatch is a contract violation in the host's Handle.
	Kind Kind

	// Writable reports whether writes are accepted. Read-only fields render
	// as labels.
	Writable bool

	// Min and Max bound numeric fields. Nil means unbounded on that side.
	// Collection descriptors with numeric elements apply the bounds to every
	// element.
	Min, Max *float64

	// Step is the increment applied by drag and arrow-key adjustments on
	// numeric fields. Zero selects the widget default.
	Step float64

	// Variants is the closed variant set of an enum field, in declaration
	// order.
	Variants []string

	// Doc is optional markdown help text shown next to the widget.
	Doc string

	// Inline marks a fixed-size numeric collection that expands into sibling
	// number fields instead of an expandable list.
	Inline bool
}

// Bounded reports whether the field declares at least one numeric bound.
func (d FieldDescriptor) Bounded() bool {
	return d.Min != nil || d.Max != nil
}

// InRange reports whether n satisfies the declared bounds.
func (d FieldDescriptor) InRange(n float64) bool {
	if d.Min != nil && n < *d.Min {
		return false
	}
	if d.Max != nil && n > *d.Max {
		return false
	}
	return true
}

// Clamp forces n into the declared bounds.
func (d FieldDescriptor) Clamp(n float64) float64 {
	if d.Min != nil && n < *d.Min {
		n = *d.Min
	}
	if d.Max != nil && n > *d.Max {
		n = *d.Max
	}
	return n
}

// HasVariant reports whether name is in the enum's variant set.
func (d FieldDescriptor) HasVariant(name string) bool {
	for _, v := range d.Variants {
		if v == name {
			return true
		}
	}
	return false
}
