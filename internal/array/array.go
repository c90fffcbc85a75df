package array

import (
	"fmt"
	"slices"
)

// Array is a strided view over a flat, possibly shared buffer.
//
// The element at multi-index idx lives at buffer position
// offset + Σ idx[i]*strides[i]. Strides are counted in elements and may be zero
// (broadcast axis) or negative (reversed view). A rank-0 Array holds one scalar.
//
// Views produced by Reshape, Transpose, View, BroadcastTo and friends share the
// buffer of their source: mutation through one view is visible through all.
type Array struct {
	buf        *buffer
	kind       Kind
	shape      Shape
	strides    []int
	offset     int
	contiguous bool
}

// New allocates a zero-filled, contiguous array that owns its buffer.
func New(shape Shape, kind Kind) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("zeros: %w", err)
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("zeros: %w: invalid kind %d", ErrUnsupportedKind, int(kind))
	}
	return &Array{
		buf:        newBuffer(kind, shape.NumElements()),
		kind:       kind,
		shape:      shape.Clone(),
		strides:    shape.ComputeStrides(),
		offset:     0,
		contiguous: true,
	}, nil
}

// Zeros is New under its conventional name.
func Zeros(shape Shape, kind Kind) (*Array, error) {
	return New(shape, kind)
}

// Full allocates an array with every element set to v converted to kind.
func Full(shape Shape, kind Kind, v any) (*Array, error) {
	a, err := New(shape, kind)
	if err != nil {
		return nil, err
	}
	if a.Size() == 0 {
		return a, nil
	}
	x, err := ConvertScalar(v, kind)
	if err != nil {
		return nil, fmt.Errorf("full: %w", err)
	}
	for i := 0; i < a.Size(); i++ {
		a.storeConverted(i, x)
	}
	return a, nil
}

// Ones allocates an array filled with one.
func Ones(shape Shape, kind Kind) (*Array, error) {
	return Full(shape, kind, int64(1))
}

// FromSlice wraps a copy of data as an array of the given shape.
func FromSlice[T any](data []T, shape Shape) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("from slice: %w", err)
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("from slice: %w: shape %v requires %d elements, but got %d",
			ErrShape, shape, shape.NumElements(), len(data))
	}
	if KindOf[T]() == Generic {
		var zero T
		if kind, ok := KindOfValue(any(zero)); ok {
			// int, uint8, bool and friends are widened to their inferred kind.
			out := fromOwned(newBuffer(kind, len(data)), shape)
			for i, v := range data {
				if err := out.store(i, v); err != nil {
					return nil, fmt.Errorf("from slice: %w", err)
				}
			}
			return out, nil
		}
		if _, ok := any(data).([]any); !ok {
			objects := make([]any, len(data))
			for i, v := range data {
				objects[i] = v
			}
			return fromOwned(wrapBuffer(objects), shape), nil
		}
	}
	return fromOwned(wrapBuffer(slices.Clone(data)), shape), nil
}

// fromOwned builds a contiguous array over buf.
func fromOwned(buf *buffer, shape Shape) *Array {
	return &Array{
		buf:        buf,
		kind:       buf.kind,
		shape:      shape.Clone(),
		strides:    shape.ComputeStrides(),
		contiguous: true,
	}
}

// newView builds a view sharing a's buffer. An empty view gets offset 0 so
// that x[off:off+Size()] stays in range for any buffer.
func (a *Array) newView(shape Shape, strides []int, offset int) *Array {
	if shape.NumElements() == 0 {
		offset = 0
	}
	return &Array{
		buf:        a.buf,
		kind:       a.kind,
		shape:      shape,
		strides:    strides,
		offset:     offset,
		contiguous: isContiguous(shape, strides),
	}
}

// NewView builds a view over a's buffer with explicit geometry. Every reachable
// element must lie inside the buffer.
func (a *Array) NewView(shape Shape, strides []int, offset int) (*Array, error) {
	if len(shape) != len(strides) {
		return nil, fmt.Errorf("view: %w: %d dimensions but %d strides", ErrShape, len(shape), len(strides))
	}
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("view: %w", err)
	}
	if shape.NumElements() > 0 {
		lo, hi := offset, offset
		for i, dim := range shape {
			span := (dim - 1) * strides[i]
			if span < 0 {
				lo += span
			} else {
				hi += span
			}
		}
		if lo < 0 || hi >= a.buf.len() {
			return nil, fmt.Errorf("view: %w: elements [%d, %d] outside buffer of %d", ErrIndex, lo, hi, a.buf.len())
		}
	}
	return a.newView(Shape(shape).Clone(), slices.Clone(strides), offset), nil
}

// isContiguous ignores the strides of length-1 axes, which are never stepped.
func isContiguous(shape Shape, strides []int) bool {
	if shape.NumElements() == 0 {
		return true
	}
	canonical := shape.ComputeStrides()
	for i, dim := range shape {
		if dim != 1 && strides[i] != canonical[i] {
			return false
		}
	}
	return true
}

// Kind returns the element kind.
func (a *Array) Kind() Kind {
	return a.kind
}

// Shape returns the array dimensions. The slice must not be modified.
func (a *Array) Shape() Shape {
	return a.shape
}

// Strides returns per-axis strides in elements. The slice must not be modified.
func (a *Array) Strides() []int {
	return a.strides
}

// Offset returns the buffer position of the first element.
func (a *Array) Offset() int {
	return a.offset
}

// Rank returns the number of axes.
func (a *Array) Rank() int {
	return len(a.shape)
}

// Size returns the total number of elements.
func (a *Array) Size() int {
	return a.shape.NumElements()
}

// Len returns the length of the leading axis, 0 for a scalar.
func (a *Array) Len() int {
	if len(a.shape) == 0 {
		return 0
	}
	return a.shape[0]
}

// IsContiguous reports whether the strides are the canonical row-major strides.
func (a *Array) IsContiguous() bool {
	return a.contiguous
}

// IsScalar reports whether a is rank 0.
func (a *Array) IsScalar() bool {
	return len(a.shape) == 0
}

// SharesBuffer reports whether a and b are views of the same buffer.
func (a *Array) SharesBuffer(b *Array) bool {
	return a != nil && b != nil && a.buf == b.buf
}

// Operand returns a's traversal geometry for a Walker.
func (a *Array) Operand() Operand {
	return Operand{Offset: a.offset, Strides: a.strides}
}

// FlatIndex returns the buffer position of the element at idx. Negative
// indices count from the end of their axis.
func (a *Array) FlatIndex(idx ...int) (int, error) {
	if len(idx) != len(a.shape) {
		return 0, fmt.Errorf("%w: expected %d indices, got %d", ErrIndex, len(a.shape), len(idx))
	}
	off := a.offset
	for i, x := range idx {
		n, err := NormalizeIndex(x, a.shape[i])
		if err != nil {
			return 0, err
		}
		off += n * a.strides[i]
	}
	return off, nil
}

// At returns the element at idx as a Go scalar.
func (a *Array) At(idx ...int) (any, error) {
	off, err := a.FlatIndex(idx...)
	if err != nil {
		return nil, fmt.Errorf("at: %w", err)
	}
	return a.load(off), nil
}

// SetAt converts v to the array kind and stores it at idx.
func (a *Array) SetAt(v any, idx ...int) error {
	off, err := a.FlatIndex(idx...)
	if err != nil {
		return fmt.Errorf("set: %w", err)
	}
	if err := a.store(off, v); err != nil {
		return fmt.Errorf("set: %w", err)
	}
	return nil
}

// Item returns the only element of a single-element array. This is how rank-0
// results degrade to plain scalars.
func (a *Array) Item() (any, error) {
	if a.Size() != 1 {
		return nil, fmt.Errorf("item: %w: array of shape %v is not a scalar", ErrShape, a.shape)
	}
	off := a.offset
	return a.load(off), nil
}

// Get returns element i of the leading axis: a scalar for rank-1 arrays and a
// sub-array view otherwise. It is the row-major iteration primitive for
// formatters.
func (a *Array) Get(i int) (any, error) {
	sub, err := a.Index(i)
	if err != nil {
		return nil, err
	}
	if sub.IsScalar() {
		return sub.load(sub.offset), nil
	}
	return sub, nil
}

// Index returns element i of the leading axis as a view of rank Rank()-1.
func (a *Array) Index(i int) (*Array, error) {
	if len(a.shape) == 0 {
		return nil, fmt.Errorf("index: %w: scalar array has no leading axis", ErrIndex)
	}
	n, err := NormalizeIndex(i, a.shape[0])
	if err != nil {
		return nil, fmt.Errorf("index: %w", err)
	}
	return a.newView(a.shape[1:].Clone(), slices.Clone(a.strides[1:]), a.offset+n*a.strides[0]), nil
}

// Values returns the elements of a in row-major order as a fresh slice.
// T must match the array kind.
func Values[T any](a *Array) []T {
	src := Data[T](a)
	out := make([]T, 0, a.Size())
	if a.contiguous {
		return append(out, src[a.offset:a.offset+a.Size()]...)
	}
	w := Walk(a.shape, a.Operand())
	for w.Next() {
		out = append(out, src[w.Offset(0)])
	}
	return out
}

// Objects returns the elements of a in row-major order as boxed Go scalars.
func (a *Array) Objects() []any {
	out := make([]any, 0, a.Size())
	w := Walk(a.shape, a.Operand())
	for w.Next() {
		out = append(out, a.load(w.Offset(0)))
	}
	return out
}

// String returns a short description of the array (not its contents).
func (a *Array) String() string {
	return fmt.Sprintf("Array[%s]%v", a.kind, []int(a.shape))
}
