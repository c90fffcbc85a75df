package array

import (
	"fmt"
	"reflect"
)

// FromSequence converts a nested host sequence (slices, arrays, or []any of
// arbitrary depth) or a scalar into a fresh array. The kind is the common type
// of every leaf; non-numeric leaves make the array Generic.
//
// Example:
//
//	a, _ := FromSequence([][]float64{{1, 2}, {3, 4}}) // Float64, shape [2 2]
//	b, _ := FromSequence([]any{1, 2.5, 3})          // Float64, shape [3]
func FromSequence(v any) (*Array, error) {
	return fromSequence(v, 0, false)
}

// FromSequenceKind is FromSequence with an explicit kind; leaves are converted
// with truncating semantics.
func FromSequenceKind(v any, kind Kind) (*Array, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("from sequence: %w: invalid kind %d", ErrUnsupportedKind, int(kind))
	}
	return fromSequence(v, kind, true)
}

// AsArray returns v unchanged if it already is an *Array, and converts it with
// FromSequence otherwise.
func AsArray(v any) (*Array, error) {
	if a, ok := v.(*Array); ok {
		return a, nil
	}
	return FromSequence(v)
}

func fromSequence(v any, kind Kind, explicit bool) (*Array, error) {
	if a, ok := v.(*Array); ok {
		if !explicit {
			kind = a.kind
		}
		return AsType(a, kind)
	}

	rv := reflect.ValueOf(v)
	shape := sequenceShape(rv)
	leaves := make([]any, 0, shape.NumElements())
	leaves, err := flattenSequence(rv, shape, leaves)
	if err != nil {
		return nil, fmt.Errorf("from sequence: %w", err)
	}

	if !explicit {
		kind = inferKind(rv, leaves)
	}
	out, err := New(shape, kind)
	if err != nil {
		return nil, err
	}
	for i, leaf := range leaves {
		if err := out.store(i, leaf); err != nil {
			return nil, fmt.Errorf("from sequence: element %d: %w", i, err)
		}
	}
	return out, nil
}

func isSequence(rv reflect.Value) bool {
	if !rv.IsValid() {
		return false
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return true
	case reflect.Interface, reflect.Pointer:
		if rv.IsNil() {
			return false
		}
		if _, ok := rv.Interface().(*Array); ok {
			return false
		}
		return isSequence(rv.Elem())
	default:
		return false
	}
}

func deref(rv reflect.Value) reflect.Value {
	for rv.IsValid() && (rv.Kind() == reflect.Interface || rv.Kind() == reflect.Pointer) && !rv.IsNil() {
		if _, ok := rv.Interface().(*Array); ok {
			return rv
		}
		rv = rv.Elem()
	}
	return rv
}

// sequenceShape follows the first element at each depth.
func sequenceShape(rv reflect.Value) Shape {
	shape := Shape{}
	for {
		rv = deref(rv)
		if !isSequence(rv) {
			return shape
		}
		shape = append(shape, rv.Len())
		if rv.Len() == 0 {
			return shape
		}
		rv = rv.Index(0)
	}
}

// flattenSequence appends leaves in row-major order, checking that every
// sub-sequence matches shape.
func flattenSequence(rv reflect.Value, shape Shape, out []any) ([]any, error) {
	rv = deref(rv)
	if len(shape) == 0 {
		if isSequence(rv) {
			return nil, fmt.Errorf("%w: sequence is not rectangular", ErrShape)
		}
		if !rv.IsValid() {
			return append(out, nil), nil
		}
		return append(out, rv.Interface()), nil
	}
	if !isSequence(rv) || rv.Len() != shape[0] {
		return nil, fmt.Errorf("%w: sequence is not rectangular", ErrShape)
	}
	var err error
	for i := 0; i < rv.Len(); i++ {
		if out, err = flattenSequence(rv.Index(i), shape[1:], out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func inferKind(rv reflect.Value, leaves []any) Kind {
	if len(leaves) == 0 {
		if k, ok := staticKind(rv.Type()); ok {
			return k
		}
		return Float64
	}
	kinds := make([]Kind, len(leaves))
	for i, leaf := range leaves {
		k, ok := KindOfValue(leaf)
		if !ok {
			return Generic
		}
		kinds[i] = k
	}
	return CommonTypeOf(kinds...)
}

// staticKind derives the kind from the innermost element type of an empty
// typed sequence.
func staticKind(t reflect.Type) (Kind, bool) {
	for t != nil && (t.Kind() == reflect.Slice || t.Kind() == reflect.Array) {
		t = t.Elem()
	}
	if t == nil || t.Kind() == reflect.Interface {
		return 0, false
	}
	k, ok := KindOfValue(reflect.Zero(t).Interface())
	if !ok {
		return Generic, true
	}
	return k, true
}
