package bridge

// Slice adapters lift typed Go slice accessors into the
// CollectionAccessor form Object.Collection takes, so hosts declare
//
//	obj.Collection("position", bridge.NumberSlice(
//		func() []float64 { return s.position },
//		func(v []float64) { s.position = v },
//	))
//
// instead of hand-converting []Value on both sides. A nil set yields an
// accessor with a nil Set, making the collection read-only.

// NumberSlice adapts a float64 slice accessor pair.
func NumberSlice(get func() []float64, set func([]float64)) CollectionAccessor {
	acc := CollectionAccessor{
		Get: func() []Value {
			src := get()
			out := make([]Value, len(src))
			for i, n := range src {
				out[i] = Number(n)
			}
			return out
		},
	}
	if set == nil {
		return acc
	}
	acc.Set = func(items []Value) error {
		next := make([]float64, len(items))
		for i, v := range items {
			if v.Kind() != KindNumber {
				return ErrTypeMismatch
			}
			next[i] = v.Number()
		}
		set(next)
		return nil
	}
	return acc
}

// TextSlice adapts a string slice accessor pair.
func TextSlice(get func() []string, set func([]string)) CollectionAccessor {
	acc := CollectionAccessor{
		Get: func() []Value {
			src := get()
			out := make([]Value, len(src))
			for i, s := range src {
				out[i] = Text(s)
			}
			return out
		},
	}
	if set == nil {
		return acc
	}
	acc.Set = func(items []Value) error {
		next := make([]string, len(items))
		for i, v := range items {
			if v.Kind() != KindText {
				return ErrTypeMismatch
			}
			next[i] = v.Text()
		}
		set(next)
		return nil
	}
	return acc
}

// BoolSlice adapts a bool slice accessor pair.
func BoolSlice(get func() []bool, set func([]bool)) CollectionAccessor {
	acc := CollectionAccessor{
		Get: func() []Value {
			src := get()
			out := make([]Value, len(src))
			for i, b := range src {
				out[i] = Bool(b)
			}
			return out
		},
	}
	if set == nil {
		return acc
	}
	acc.Set = func(items []Value) error {
		next := make([]bool, len(items))
		for i, v := range items {
			if v.Kind() != KindBool {
				return ErrTypeMismatch
			}
			next[i] = v.Bool()
		}
		set(next)
		return nil
	}
	return acc
}
