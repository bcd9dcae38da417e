package bridge

import "math"

// Object is a ready-made Handle for hosts that declare fields with typed
// accessor closures instead of implementing the interface by hand. Fields
// keep declaration order, which fixes widget order in the inspector.
//
//	h := bridge.NewObject().
//		Bool("visible", func() bool { return s.Visible }, func(v bool) { s.Visible = v }).
//		Number("speed", func() float64 { return s.Speed }, func(v float64) { s.Speed = v }).
//		Range(0, 10).
//		Object()
type Object struct {
	fields []*objectField
	byName map[string]*objectField
}

type objectField struct {
	desc FieldDescriptor
	get  func() Value
	set  func(Value) error
}

// Field is the chaining view returned by Object's declaration methods. Its
// methods refine the field just declared and return the same view, so
// declarations read as one chain. Object returns the receiver to close the
// chain, though *Object itself already satisfies Handle.
type Field struct {
	obj *Object
	f   *objectField
}

// NewObject returns an empty Object ready for field declarations.
func NewObject() *Object {
	return &Object{byName: make(map[string]*objectField)}
}

func (o *Object) declare(d FieldDescriptor, get func() Value, set func(Value) error) *Field {
	f := &objectField{desc: d, get: get, set: set}
	f.desc.Writable = set != nil
	o.fields = append(o.fields, f)
	o.byName[d.Name] = f
	return &Field{obj: o, f: f}
}

// Bool declares a boolean field. A nil set makes the field read-only.
func (o *Object) Bool(name string, get func() bool, set func(bool)) *Field {
	var apply func(Value) error
	if set != nil {
		apply = func(v Value) error {
			set(v.Bool())
			return nil
		}
	}
	return o.declare(FieldDescriptor{Name: name, Kind: KindBool},
		func() Value { return Bool(get()) }, apply)
}

// Number declares a floating point field. A nil set makes the field
// read-only.
func (o *Object) Number(name string, get func() float64, set func(float64)) *Field {
	var apply func(Value) error
	if set != nil {
		apply = func(v Value) error {
			set(v.Number())
			return nil
		}
	}
	return o.declare(FieldDescriptor{Name: name, Kind: KindNumber},
		func() Value { return Number(get()) }, apply)
}

// Int declares an integer-valued number field. Writes with a fractional
// part are rejected with ErrTypeMismatch. The step defaults to 1.
func (o *Object) Int(name string, get func() int, set func(int)) *Field {
	var apply func(Value) error
	if set != nil {
		apply = func(v Value) error {
			n := v.Number()
			if n != math.Trunc(n) {
				return ErrTypeMismatch
			}
			set(int(n))
			return nil
		}
	}
	return o.declare(FieldDescriptor{Name: name, Kind: KindNumber, Step: 1},
		func() Value { return Number(float64(get())) }, apply)
}

// Text declares a string field. A nil set makes the field read-only.
func (o *Object) Text(name string, get func() string, set func(string)) *Field {
	var apply func(Value) error
	if set != nil {
		apply = func(v Value) error {
			set(v.Text())
			return nil
		}
	}
	return o.declare(FieldDescriptor{Name: name, Kind: KindText},
		func() Value { return Text(get()) }, apply)
}

// Enum declares a field constrained to the given variant names. Writes
// naming an unknown variant are rejected with ErrTypeMismatch. Attach
// per-variant payload fields with Payload on the returned Field.
func (o *Object) Enum(name string, variants []string, get func() string, set func(string)) *Field {
	owned := make([]string, len(variants))
	copy(owned, variants)
	f := o.declare(FieldDescriptor{Name: name, Kind: KindEnum, Variants: owned},
		nil, nil)
	f.f.get = func() Value { return Variant(get(), nil) }
	if set != nil {
		f.f.set = func(v Value) error {
			if !f.f.desc.HasVariant(v.VariantName()) {
				return ErrTypeMismatch
			}
			set(v.VariantName())
			return nil
		}
		f.f.desc.Writable = true
	}
	return f
}

// Nested declares a field whose value is a child handle. The field itself
// is not writable; edits go through the child's own fields. child is
// invoked on every read so hosts may rebuild the handle when the
// underlying value moves.
func (o *Object) Nested(name string, child func() Handle) *Field {
	return o.declare(FieldDescriptor{Name: name, Kind: KindNested},
		func() Value { return Nested(child()) }, nil)
}

// CollectionAccessor pairs the read and write sides of a collection
// field. Get produces the current elements; Set, when non-nil, replaces
// them wholesale. The slice adapters (NumberSlice and friends) build
// accessors from typed Go slices.
type CollectionAccessor struct {
	Get func() []Value
	Set func([]Value) error
}

// Collection declares an ordered sequence field. An accessor with a nil
// Set makes the collection and its elements read-only; otherwise element
// edits and length changes arrive as one whole-collection write.
func (o *Object) Collection(name string, acc CollectionAccessor) *Field {
	var apply func(Value) error
	if acc.Set != nil {
		apply = func(v Value) error {
			return acc.Set(v.Items())
		}
	}
	return o.declare(FieldDescriptor{Name: name, Kind: KindCollection},
		func() Value { return Collection(acc.Get()...) }, apply)
}

// Fields implements Handle. Descriptors come back in declaration order.
func (o *Object) Fields() []FieldDescriptor {
	if o == nil {
		return nil
	}
	out := make([]FieldDescriptor, len(o.fields))
	for i, f := range o.fields {
		out[i] = f.desc
	}
	return out
}

// Read implements Handle.
func (o *Object) Read(name string) (Value, error) {
	f, ok := o.lookup(name)
	if !ok {
		return Value{}, ErrPathNotFound
	}
	return f.get(), nil
}

// Write implements Handle. The value is validated against the declared
// kind and capabilities before the setter runs, so a rejected write never
// mutates host state.
func (o *Object) Write(name string, v Value) error {
	f, ok := o.lookup(name)
	if !ok {
		return ErrPathNotFound
	}
	if !f.desc.Writable || f.set == nil {
		return ErrReadOnly
	}
	if v.Kind() != f.desc.Kind {
		return ErrTypeMismatch
	}
	return f.set(v)
}

func (o *Object) lookup(name string) (*objectField, bool) {
	if o == nil {
		return nil, false
	}
	f, ok := o.byName[name]
	return f, ok
}

// Field's declaration methods forward to the owning Object, so a chain
// can refine one field and declare the next without a break.

// Bool declares a boolean field on the owning object.
func (fl *Field) Bool(name string, get func() bool, set func(bool)) *Field {
	return fl.obj.Bool(name, get, set)
}

// Number declares a floating point field on the owning object.
func (fl *Field) Number(name string, get func() float64, set func(float64)) *Field {
	return fl.obj.Number(name, get, set)
}

// Int declares an integer-valued number field on the owning object.
func (fl *Field) Int(name string, get func() int, set func(int)) *Field {
	return fl.obj.Int(name, get, set)
}

// Text declares a string field on the owning object.
func (fl *Field) Text(name string, get func() string, set func(string)) *Field {
	return fl.obj.Text(name, get, set)
}

// Enum declares an enum field on the owning object.
func (fl *Field) Enum(name string, variants []string, get func() string, set func(string)) *Field {
	return fl.obj.Enum(name, variants, get, set)
}

// Nested declares a child-handle field on the owning object.
func (fl *Field) Nested(name string, child func() Handle) *Field {
	return fl.obj.Nested(name, child)
}

// Collection declares an ordered sequence field on the owning object.
func (fl *Field) Collection(name string, acc CollectionAccessor) *Field {
	return fl.obj.Collection(name, acc)
}

// Range bounds a number field, or the numeric elements of a collection.
// Ignored for other kinds.
func (fl *Field) Range(min, max float64) *Field {
	if fl.f.desc.Kind == KindNumber || fl.f.desc.Kind == KindCollection {
		fl.f.desc.Min = &min
		fl.f.desc.Max = &max
	}
	return fl
}

// Step sets the increment used by drag and keyboard adjustment.
func (fl *Field) Step(s float64) *Field {
	if s > 0 {
		fl.f.desc.Step = s
	}
	return fl
}

// Doc attaches markdown documentation shown in the field's detail view.
func (fl *Field) Doc(md string) *Field {
	fl.f.desc.Doc = md
	return fl
}

// ReadOnly clears the field's write capability without dropping its
// setter declaration site.
func (fl *Field) ReadOnly() *Field {
	fl.f.desc.Writable = false
	fl.f.set = nil
	return fl
}

// Inline marks a collection for single-row presentation. The inspector
// honors it for short all-number collections.
func (fl *Field) Inline() *Field {
	fl.f.desc.Inline = true
	return fl
}

// Payload attaches variant payload fields to an enum. The closure is
// invoked on every read and should return the handle for the current
// variant, or nil when the variant carries no payload.
func (fl *Field) Payload(child func() Handle) *Field {
	if fl.f.desc.Kind != KindEnum {
		return fl
	}
	base := fl.f.get
	fl.f.get = func() Value {
		v := base()
		return Variant(v.VariantName(), child())
	}
	return fl
}

// Object closes the declaration chain and returns the assembled handle.
func (fl *Field) Object() *Object {
	return fl.obj
}
