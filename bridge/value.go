package bridge

import "strconv"

// Kind classifies an inspectable field.
type Kind int

const (
	// KindInvalid marks the zero Value.
	KindInvalid Kind = iota
	// KindBool is a boolean field.
	KindBool
	// KindNumber is a numeric field, carried as float64.
	KindNumber
	// KindText is a string field.
	KindText
	// KindEnum is a closed variant set, optionally with payload fields.
	KindEnum
	// KindNested is a sub-object with its own fields.
	KindNested
	// KindCollection is an ordered sequence of values.
	KindCollection
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindEnum:
		return "enum"
	case KindNested:
		return "nested"
	case KindCollection:
		return "collection"
	default:
		return "invalid"
	}
}

// Value is a kind-tagged snapshot of one field. Values are read fresh from a
// Handle each tick and are never cached across ticks.
type Value struct {
	kind    Kind
	boolVal bool
	numVal  float64
	textVal string
	variant string
	handle  Handle
	items   []Value
}

// Bool wraps a boolean.
func Bool(v bool) Value {
	return Value{kind: KindBool, boolVal: v}
}

// Number wraps a float64.
func Number(v float64) Value {
	return Value{kind: KindNumber, numVal: v}
}

// Text wraps a string.
func Text(s string) Value {
	return Value{kind: KindText, textVal: s}
}

// Variant wraps an enum discriminant. payload may be nil for plain variants;
// a non-nil payload exposes the variant's fields as children of the enum
// field's path.
func Variant(name string, payload Handle) Value {
	return Value{kind: KindEnum, variant: name, handle: payload}
}

// Nested wraps a sub-object handle.
func Nested(h Handle) Value {
	return Value{kind: KindNested, handle: h}
}

// Collection wraps an ordered sequence of values.
func Collection(items ...Value) Value {
	return Value{kind: KindCollection, items: items}
}

// Kind returns the value's tag.
func (v Value) Kind() Kind {
	return v.kind
}

// Bool returns the boolean payload. Zero for other kinds.
func (v Value) Bool() bool {
	return v.boolVal
}

// Number returns the numeric payload. Zero for other kinds.
func (v Value) Number() float64 {
	return v.numVal
}

// Text returns the string payload. Empty for other kinds.
func (v Value) Text() string {
	return v.textVal
}

// VariantName returns the enum discriminant. Empty for other kinds.
func (v Value) VariantName() string {
	return v.variant
}

// Payload returns the enum variant's payload handle, or nil.
func (v Value) Payload() Handle {
	if v.kind != KindEnum {
		return nil
	}
	return v.handle
}

// Handle returns the nested sub-object handle, or nil.
func (v Value) Handle() Handle {
	if v.kind != KindNested {
		return nil
	}
	return v.handle
}

// Items returns the collection elements. Nil for other kinds.
func (v Value) Items() []Value {
	if v.kind != KindCollection {
		return nil
	}
	return v.items
}

// Len returns the collection length, or zero for other kinds.
func (v Value) Len() int {
	return len(v.Items())
}

// Equal reports whether two values carry the same kind and payload.
// Nested and enum payload handles compare by identity; collections compare
// elementwise.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindBool:
		return v.boolVal == other.boolVal
	case KindNumber:
		return v.numVal == other.numVal
	case KindText:
		return v.textVal == other.textVal
	case KindEnum:
		return v.variant == other.variant
	case KindNested:
		return v.handle == other.handle
	case KindCollection:
		if len(v.items) != len(other.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(other.items[i]) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// Display returns a short human-readable form of the value, used by widget
// snapshots. Nested and collection values display as summaries; the
// inspector renders their children as separate widgets.
func (v Value) Display() string {
	switch v.kind {
	case KindBool:
		if v.boolVal {
			return "true"
		}
		return "false"
	case KindNumber:
		return strconv.FormatFloat(v.numVal, 'g', -1, 64)
	case KindText:
		return v.textVal
	case KindEnum:
		return v.variant
	case KindNested:
		return "{...}"
	case KindCollection:
		return "[" + strconv.Itoa(len(v.items)) + "]"
	default:
		return ""
	}
}
