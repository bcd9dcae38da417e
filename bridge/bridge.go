// Package bridge exposes typed application data to the inspector through an
// explicit per-type capability interface. Hosts implement Handle for each
// inspectable type (or compose one with Object); the package provides the
// path-addressed deep operations the inspector builds on. The package never
// touches runtime type information: everything it knows about a value comes
// from the handles the host supplies.
package bridge

import "strconv"

// Handle is the capability interface implemented by every inspectable type.
// It exposes one level of named fields; nesting is expressed by fields of
// KindNested whose values carry child handles.
//
// Fields must be deterministic: the same unchanged value reports the same
// descriptors in the same order on every call, so that widget identity keys
// remain valid across ticks. Read must return a value whose kind matches the
// field's declared kind. Write may change the shape of the value (an enum
// discriminant write replaces the payload fields); callers re-enumerate
// after every successful write.
type Handle interface {
	Fields() []FieldDescriptor
	Read(name string) (Value, error)
	Write(name string, v Value) error
}

// Enumerate walks the full value graph under root and returns descriptors
// for every reachable field in depth-first document order, parents before
// children, with full paths filled in. The order is stable across calls on
// an unchanged value.
func Enumerate(root Handle) ([]FieldDescriptor, error) {
	var out []FieldDescriptor
	if root == nil {
		return out, nil
	}
	if err := enumerateHandle(root, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func enumerateHandle(h Handle, prefix Path, out *[]FieldDescriptor) error {
	for _, d := range h.Fields() {
		full := d
		full.Path = prefix.Child(d.Name)
		*out = append(*out, full)

		if d.Kind != KindNested && d.Kind != KindEnum && d.Kind != KindCollection {
			continue
		}
		v, err := h.Read(d.Name)
		if err != nil {
			return reflectErr("enumerate", full.Path, err)
		}
		if err := enumerateValue(v, full, out); err != nil {
			return err
		}
	}
	return nil
}

func enumerateValue(v Value, parent FieldDescriptor, out *[]FieldDescriptor) error {
	switch v.Kind() {
	case KindNested:
		if h := v.Handle(); h != nil {
			return enumerateHandle(h, parent.Path, out)
		}
	case KindEnum:
		if payload := v.Payload(); payload != nil {
			return enumerateHandle(payload, parent.Path, out)
		}
	case KindCollection:
		inline := parent.Inline && inlineElements(v)
		for i, item := range v.Items() {
			elem := elementDescriptor(parent, i, item)
			elem.Inline = inline
			*out = append(*out, elem)
			if err := enumerateValue(item, elem, out); err != nil {
				return err
			}
		}
	}
	return nil
}

// inlineElements reports whether a collection value qualifies for
// single-row vector presentation: two to four elements, all numeric.
func inlineElements(v Value) bool {
	items := v.Items()
	if len(items) < 2 || len(items) > 4 {
		return false
	}
	for _, it := range items {
		if it.Kind() != KindNumber {
			return false
		}
	}
	return true
}

// elementDescriptor synthesizes the descriptor of one collection element.
// Write capability and numeric constraints are inherited from the
// collection's own descriptor.
func elementDescriptor(parent FieldDescriptor, index int, item Value) FieldDescriptor {
	name := strconv.Itoa(index)
	return FieldDescriptor{
		Name:     name,
		Path:     parent.Path.Child(name),
		Kind:     item.Kind(),
		Writable: parent.Writable,
		Min:      parent.Min,
		Max:      parent.Max,
		Step:     parent.Step,
	}
}

// Read resolves path under root and returns the field's current value.
// A path that no longer resolves reports ErrPathNotFound; a host handle
// returning a value whose kind disagrees with the declared kind reports
// ErrTypeMismatch.
func Read(root Handle, path Path) (Value, error) {
	d, v, err := Lookup(root, path)
	if err != nil {
		return Value{}, err
	}
	if v.Kind() != d.Kind {
		return Value{}, reflectErr("read", path, ErrTypeMismatch)
	}
	return v, nil
}

// Lookup resolves path under root and returns the field's current
// descriptor alongside its value. The descriptor reflects the value's
// current shape, which may differ from the shape at build time.
func Lookup(root Handle, path Path) (FieldDescriptor, Value, error) {
	if root == nil || len(path) == 0 {
		return FieldDescriptor{}, Value{}, reflectErr("read", path, ErrPathNotFound)
	}
	return lookupIn(root, path, path)
}

func lookupIn(h Handle, full, rest Path) (FieldDescriptor, Value, error) {
	name := rest[0]
	d, ok := fieldByName(h, name)
	if !ok {
		return FieldDescriptor{}, Value{}, reflectErr("read", full, ErrPathNotFound)
	}
	d.Path = full[:len(full)-len(rest)+1]
	v, err := h.Read(name)
	if err != nil {
		return FieldDescriptor{}, Value{}, reflectErr("read", full, err)
	}
	if len(rest) == 1 {
		return d, v, nil
	}
	return lookupValue(v, d, full, rest[1:])
}

func lookupValue(v Value, d FieldDescriptor, full, rest Path) (FieldDescriptor, Value, error) {
	switch v.Kind() {
	case KindNested:
		if h := v.Handle(); h != nil {
			return lookupIn(h, full, rest)
		}
	case KindEnum:
		if payload := v.Payload(); payload != nil {
			return lookupIn(payload, full, rest)
		}
	case KindCollection:
		idx, err := strconv.Atoi(rest[0])
		items := v.Items()
		if err != nil || idx < 0 || idx >= len(items) {
			return FieldDescriptor{}, Value{}, reflectErr("read", full, ErrPathNotFound)
		}
		elem := elementDescriptor(d, idx, items[idx])
		elem.Inline = d.Inline && inlineElements(v)
		elem.Path = full[:len(full)-len(rest)+1]
		if len(rest) == 1 {
			return elem, items[idx], nil
		}
		return lookupValue(items[idx], elem, full, rest[1:])
	}
	return FieldDescriptor{}, Value{}, reflectErr("read", full, ErrPathNotFound)
}

// Write validates v against the field's declared kind and capabilities,
// then mutates the target through its owning handle. Validation happens
// before any mutation: a rejected write leaves the value untouched. A
// successful write may change the root's shape; callers re-enumerate.
func Write(root Handle, path Path, v Value) error {
	if root == nil || len(path) == 0 {
		return reflectErr("write", path, ErrPathNotFound)
	}
	return writeIn(root, path, path, v)
}

func writeIn(h Handle, full, rest Path, v Value) error {
	name := rest[0]
	d, ok := fieldByName(h, name)
	if !ok {
		return reflectErr("write", full, ErrPathNotFound)
	}

	if len(rest) == 1 {
		if !d.Writable {
			return reflectErr("write", full, ErrReadOnly)
		}
		if v.Kind() != d.Kind {
			return reflectErr("write", full, ErrTypeMismatch)
		}
		if d.Kind == KindEnum && !d.HasVariant(v.VariantName()) {
			return reflectErr("write", full, ErrTypeMismatch)
		}
		if err := h.Write(name, v); err != nil {
			return reflectErr("write", full, err)
		}
		return nil
	}

	cur, err := h.Read(name)
	if err != nil {
		return reflectErr("write", full, ErrPathNotFound)
	}
	switch cur.Kind() {
	case KindNested:
		if child := cur.Handle(); child != nil {
			return writeIn(child, full, rest[1:], v)
		}
	case KindEnum:
		if payload := cur.Payload(); payload != nil {
			return writeIn(payload, full, rest[1:], v)
		}
	case KindCollection:
		if !d.Writable {
			return reflectErr("write", full, ErrReadOnly)
		}
		updated, handled, err := spliceCollection(cur, full, rest[1:], v)
		if err != nil {
			return err
		}
		if handled {
			return nil
		}
		if err := h.Write(name, updated); err != nil {
			return reflectErr("write", full, err)
		}
		return nil
	}
	return reflectErr("write", full, ErrPathNotFound)
}

// spliceCollection replaces the element addressed by rest inside the
// collection value and returns the rebuilt collection. When the descent
// reaches a live nested or enum handle, the write goes through that handle
// directly and handled reports true: no splice of the ancestors is needed.
func spliceCollection(col Value, full, rest Path, v Value) (Value, bool, error) {
	idx, err := strconv.Atoi(rest[0])
	items := col.Items()
	if err != nil || idx < 0 || idx >= len(items) {
		return Value{}, false, reflectErr("write", full, ErrPathNotFound)
	}
	elem := items[idx]

	if len(rest) == 1 {
		if v.Kind() != elem.Kind() {
			return Value{}, false, reflectErr("write", full, ErrTypeMismatch)
		}
		updated := make([]Value, len(items))
		copy(updated, items)
		updated[idx] = v
		return Collection(updated...), false, nil
	}

	switch elem.Kind() {
	case KindNested:
		if child := elem.Handle(); child != nil {
			return Value{}, true, writeIn(child, full, rest[1:], v)
		}
	case KindEnum:
		if payload := elem.Payload(); payload != nil {
			return Value{}, true, writeIn(payload, full, rest[1:], v)
		}
	case KindCollection:
		inner, handled, err := spliceCollection(elem, full, rest[1:], v)
		if err != nil || handled {
			return Value{}, handled, err
		}
		updated := make([]Value, len(items))
		copy(updated, items)
		updated[idx] = inner
		return Collection(updated...), false, nil
	}
	return Value{}, false, reflectErr("write", full, ErrPathNotFound)
}

func fieldByName(h Handle, name string) (FieldDescriptor, bool) {
	for _, d := range h.Fields() {
		if d.Name == name {
			return d, true
		}
	}
	return FieldDescriptor{}, false
}
