package array

import (
	"fmt"
	"math"
)

// load returns the element at buffer position off as a Go scalar.
func (a *Array) load(off int) any {
	switch d := a.buf.data.(type) {
	case []int8:
		return d[off]
	case []int16:
		return d[off]
	case []int32:
		return d[off]
	case []int64:
		return d[off]
	case []float32:
		return d[off]
	case []float64:
		return d[off]
	case []complex64:
		return d[off]
	case []complex128:
		return d[off]
	case []any:
		return d[off]
	default:
		return nil
	}
}

// store converts v to the array kind and writes it at buffer position off.
func (a *Array) store(off int, v any) error {
	x, err := ConvertScalar(v, a.kind)
	if err != nil {
		return err
	}
	a.storeConverted(off, x)
	return nil
}

// storeConverted writes x, which already has the Go type of a.kind.
func (a *Array) storeConverted(off int, x any) {
	switch d := a.buf.data.(type) {
	case []int8:
		d[off] = x.(int8)
	case []int16:
		d[off] = x.(int16)
	case []int32:
		d[off] = x.(int32)
	case []int64:
		d[off] = x.(int64)
	case []float32:
		d[off] = x.(float32)
	case []float64:
		d[off] = x.(float64)
	case []complex64:
		d[off] = x.(complex64)
	case []complex128:
		d[off] = x.(complex128)
	case []any:
		d[off] = x
	}
}

// ToInt64 unboxes a numeric Go value, truncating floats toward zero and
// dropping imaginary parts.
func ToInt64(v any) (int64, error) {
	switch x := v.(type) {
	case bool:
		if x {
			return 1, nil
		}
		return 0, nil
	case int:
		return int64(x), nil
	case int8:
		return int64(x), nil
	case int16:
		return int64(x), nil
	case int32:
		return int64(x), nil
	case int64:
		return x, nil
	case uint:
		return int64(x), nil
	case uint8:
		return int64(x), nil
	case uint16:
		return int64(x), nil
	case uint32:
		return int64(x), nil
	case uint64:
		return int64(x), nil
	case uintptr:
		return int64(x), nil
	case float32:
		return int64(x), nil
	case float64:
		return int64(x), nil
	case complex64:
		return int64(real(x)), nil
	case complex128:
		return int64(real(x)), nil
	default:
		return 0, fmt.Errorf("%w: cannot convert %T to an integer", ErrUnsupportedKind, v)
	}
}

// ToFloat64 unboxes a numeric Go value, dropping imaginary parts.
func ToFloat64(v any) (float64, error) {
	switch x := v.(type) {
	case float32:
		return float64(x), nil
	case float64:
		return x, nil
	case complex64:
		return float64(real(x)), nil
	case complex128:
		return real(x), nil
	default:
		i, err := ToInt64(v)
		if err != nil {
			return 0, fmt.Errorf("%w: cannot convert %T to a float", ErrUnsupportedKind, v)
		}
		if u, ok := v.(uint64); ok {
			return float64(u), nil
		}
		return float64(i), nil
	}
}

// ToComplex128 unboxes a numeric Go value.
func ToComplex128(v any) (complex128, error) {
	switch x := v.(type) {
	case complex64:
		return complex128(x), nil
	case complex128:
		return x, nil
	default:
		f, err := ToFloat64(v)
		if err != nil {
			return 0, fmt.Errorf("%w: cannot convert %T to a complex", ErrUnsupportedKind, v)
		}
		return complex(f, 0), nil
	}
}

// ConvertScalar converts v to the Go type stored by kind. Narrowing truncates
// like a native conversion; Generic boxes v unchanged.
func ConvertScalar(v any, kind Kind) (any, error) {
	switch kind.Category() {
	case Integer:
		i, err := ToInt64(v)
		if err != nil {
			return nil, err
		}
		switch kind {
		case Int8:
			return int8(i), nil
		case Int16:
			return int16(i), nil
		case Int32:
			return int32(i), nil
		default:
			return i, nil
		}
	case Floating:
		f, err := ToFloat64(v)
		if err != nil {
			return nil, err
		}
		if kind == Float32 {
			return float32(f), nil
		}
		return f, nil
	case Complex:
		c, err := ToComplex128(v)
		if err != nil {
			return nil, err
		}
		if kind == Complex64 {
			return complex64(c), nil
		}
		return c, nil
	default:
		return v, nil
	}
}

// Unbox normalizes a boxed Go value to the Go type of its inferred kind
// (int → int64, uint8 → int16, bool → int8, ...). Non-numeric values are
// returned unchanged with Generic.
func Unbox(v any) (any, Kind) {
	kind, ok := KindOfValue(v)
	if !ok {
		return v, Generic
	}
	x, err := ConvertScalar(v, kind)
	if err != nil {
		return v, Generic
	}
	return x, kind
}

// Truth reports whether a Go scalar is non-zero. Strings are true when
// non-empty; other non-numeric values are true unless nil.
func Truth(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	case bool:
		return x
	case complex64:
		return x != 0
	case complex128:
		return x != 0
	case float32:
		return x != 0
	case float64:
		return x != 0
	default:
		if i, err := ToInt64(v); err == nil {
			return i != 0
		}
		return true
	}
}

// Scalar wraps a Go value as a rank-0 array of its inferred kind.
func Scalar(v any) (*Array, error) {
	x, kind := Unbox(v)
	return ScalarOf(x, kind)
}

// ScalarOf wraps a Go value as a rank-0 array of the given kind.
func ScalarOf(v any, kind Kind) (*Array, error) {
	a, err := New(Shape{}, kind)
	if err != nil {
		return nil, err
	}
	if err := a.store(0, v); err != nil {
		return nil, fmt.Errorf("scalar: %w", err)
	}
	return a, nil
}

// IsNaN reports whether a Go scalar is a floating NaN or has a NaN component.
func IsNaN(v any) bool {
	switch x := v.(type) {
	case float32:
		return x != x
	case float64:
		return math.IsNaN(x)
	case complex64:
		return real(x) != real(x) || imag(x) != imag(x)
	case complex128:
		return math.IsNaN(real(x)) || math.IsNaN(imag(x))
	default:
		return false
	}
}

// Load returns the element at buffer position off, as produced by a Walker.
func (a *Array) Load(off int) any {
	return a.load(off)
}

// Store converts v to the array kind and writes it at buffer position off.
func (a *Array) Store(off int, v any) error {
	return a.store(off, v)
}
