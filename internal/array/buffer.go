package array

import "fmt"

// buffer is the flat storage shared by an Array and every view derived from it.
// data holds exactly one typed slice: []int8, []int16, []int32, []int64,
// []float32, []float64, []complex64, []complex128, or []any for Generic.
// Views keep a pointer to the same buffer, so writes through one alias are seen
// by all of them; the garbage collector keeps the buffer alive while any view does.
type buffer struct {
	kind Kind
	data any
}

// newBuffer allocates a zeroed buffer of n elements. Generic buffers are filled
// with int64(0) so that zero arrays take part in arithmetic.
func newBuffer(kind Kind, n int) *buffer {
	var data any
	switch kind {
	case Int8:
		data = make([]int8, n)
	case Int16:
		data = make([]int16, n)
	case Int32:
		data = make([]int32, n)
	case Int64:
		data = make([]int64, n)
	case Float32:
		data = make([]float32, n)
	case Float64:
		data = make([]float64, n)
	case Complex64:
		data = make([]complex64, n)
	case Complex128:
		data = make([]complex128, n)
	default:
		objects := make([]any, n)
		for i := range objects {
			objects[i] = int64(0)
		}
		data = objects
	}
	return &buffer{kind: kind, data: data}
}

// wrapBuffer adopts a typed slice without copying.
func wrapBuffer[T any](data []T) *buffer {
	return &buffer{kind: KindOf[T](), data: data}
}

// len returns the buffer capacity in elements.
func (b *buffer) len() int {
	switch d := b.data.(type) {
	case []int8:
		return len(d)
	case []int16:
		return len(d)
	case []int32:
		return len(d)
	case []int64:
		return len(d)
	case []float32:
		return len(d)
	case []float64:
		return len(d)
	case []complex64:
		return len(d)
	case []complex128:
		return len(d)
	case []any:
		return len(d)
	default:
		return 0
	}
}

// Data returns the whole typed buffer behind a, not just the elements a views.
// Elements are addressed with the offsets produced by a Walker or FlatIndex.
//
// Panics if T does not match a.Kind(); callers dispatch on Kind first.
//
// WARNING: Modifications to the returned slice are visible through every view
// sharing the buffer.
func Data[T any](a *Array) []T {
	d, ok := a.buf.data.([]T)
	if !ok {
		var zero T
		panic(fmt.Sprintf("array kind is %s, not %T", a.kind, zero))
	}
	return d
}

// AsInt8 returns the int8 buffer. Panics if the kind is not Int8.
func (a *Array) AsInt8() []int8 { return Data[int8](a) }

// AsInt16 returns the int16 buffer. Panics if the kind is not Int16.
func (a *Array) AsInt16() []int16 { return Data[int16](a) }

// AsInt32 returns the int32 buffer. Panics if the kind is not Int32.
func (a *Array) AsInt32() []int32 { return Data[int32](a) }

// AsInt64 returns the int64 buffer. Panics if the kind is not Int64.
func (a *Array) AsInt64() []int64 { return Data[int64](a) }

// AsFloat32 returns the float32 buffer. Panics if the kind is not Float32.
func (a *Array) AsFloat32() []float32 { return Data[float32](a) }

// AsFloat64 returns the float64 buffer. Panics if the kind is not Float64.
func (a *Array) AsFloat64() []float64 { return Data[float64](a) }

// AsComplex64 returns the complex64 buffer. Panics if the kind is not Complex64.
func (a *Array) AsComplex64() []complex64 { return Data[complex64](a) }

// AsComplex128 returns the complex128 buffer. Panics if the kind is not Complex128.
func (a *Array) AsComplex128() []complex128 { return Data[complex128](a) }

// AsObjects returns the boxed buffer. Panics if the kind is not Generic.
func (a *Array) AsObjects() []any { return Data[any](a) }
