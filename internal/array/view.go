package array

import (
	"fmt"
	"slices"
)

// Reshape returns a with a new shape holding the same elements in row-major
// order. One dimension may be -1 and is inferred. Contiguous inputs yield a
// view; anything else is copied first.
func Reshape(a *Array, shape ...int) (*Array, error) {
	newShape, err := resolveShape(shape, a.Size())
	if err != nil {
		return nil, fmt.Errorf("reshape: %w", err)
	}
	src := a
	if !a.contiguous {
		if src, err = AsContiguous(a); err != nil {
			return nil, fmt.Errorf("reshape: %w", err)
		}
	}
	return src.newView(newShape, newShape.ComputeStrides(), src.offset), nil
}

func resolveShape(shape []int, size int) (Shape, error) {
	out := Shape(slices.Clone(shape))
	infer := -1
	known := 1
	for i, dim := range out {
		switch {
		case dim == -1:
			if infer >= 0 {
				return nil, fmt.Errorf("%w: only one dimension can be -1", ErrShape)
			}
			infer = i
		case dim < 0:
			return nil, fmt.Errorf("%w: invalid dimension %d", ErrShape, dim)
		default:
			known *= dim
		}
	}
	if infer >= 0 {
		if known == 0 || size%known != 0 {
			return nil, fmt.Errorf("%w: cannot reshape %d elements into %v", ErrShape, size, shape)
		}
		out[infer] = size / known
	}
	if out.NumElements() != size {
		return nil, fmt.Errorf("%w: cannot reshape %d elements into %v", ErrShape, size, shape)
	}
	return out, nil
}

// Ravel returns a 1-D view (or copy, if a is not contiguous) of a.
func Ravel(a *Array) (*Array, error) {
	return Reshape(a, a.Size())
}

// Transpose permutes the axes of a. With no axes the order is reversed.
// axes[i] names the source axis that becomes axis i of the result.
func Transpose(a *Array, axes ...int) (*Array, error) {
	rank := a.Rank()
	if len(axes) == 0 {
		axes = make([]int, rank)
		for i := range axes {
			axes[i] = rank - 1 - i
		}
	}
	if len(axes) != rank {
		return nil, fmt.Errorf("transpose: %w: %d axes for array of rank %d", ErrShape, len(axes), rank)
	}
	seen := make([]bool, rank)
	shape := make(Shape, rank)
	strides := make([]int, rank)
	for i, ax := range axes {
		n, err := NormalizeAxis(ax, rank)
		if err != nil {
			return nil, fmt.Errorf("transpose: %w", err)
		}
		if seen[n] {
			return nil, fmt.Errorf("transpose: %w: repeated axis %d", ErrIndex, ax)
		}
		seen[n] = true
		shape[i] = a.shape[n]
		strides[i] = a.strides[n]
	}
	return a.newView(shape, strides, a.offset), nil
}

// SwapAxes exchanges two axes.
func SwapAxes(a *Array, axis1, axis2 int) (*Array, error) {
	i, err := NormalizeAxis(axis1, a.Rank())
	if err != nil {
		return nil, fmt.Errorf("swap axes: %w", err)
	}
	j, err := NormalizeAxis(axis2, a.Rank())
	if err != nil {
		return nil, fmt.Errorf("swap axes: %w", err)
	}
	perm := identityPerm(a.Rank())
	perm[i], perm[j] = perm[j], perm[i]
	return Transpose(a, perm...)
}

// MoveAxis moves axis src to position dst, keeping the relative order of the
// other axes.
func MoveAxis(a *Array, src, dst int) (*Array, error) {
	s, err := NormalizeAxis(src, a.Rank())
	if err != nil {
		return nil, fmt.Errorf("move axis: %w", err)
	}
	d, err := NormalizeAxis(dst, a.Rank())
	if err != nil {
		return nil, fmt.Errorf("move axis: %w", err)
	}
	perm := identityPerm(a.Rank())
	perm = slices.Delete(perm, s, s+1)
	perm = slices.Insert(perm, d, s)
	return Transpose(a, perm...)
}

func identityPerm(n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	return perm
}

// Squeeze removes every length-1 axis.
func Squeeze(a *Array) *Array {
	shape := make(Shape, 0, a.Rank())
	strides := make([]int, 0, a.Rank())
	for i, dim := range a.shape {
		if dim != 1 {
			shape = append(shape, dim)
			strides = append(strides, a.strides[i])
		}
	}
	return a.newView(shape, strides, a.offset)
}

// ExpandDims inserts a length-1 axis at position axis (0..Rank()).
func ExpandDims(a *Array, axis int) (*Array, error) {
	n, err := NormalizeAxis(axis, a.Rank()+1)
	if err != nil {
		return nil, fmt.Errorf("expand dims: %w", err)
	}
	shape := slices.Insert(a.shape.Clone(), n, 1)
	strides := slices.Insert(slices.Clone(a.strides), n, 0)
	return a.newView(shape, strides, a.offset), nil
}

// Diagonal returns a view of the diagonal formed by axis1 and axis2 at the given
// offset (positive above the main diagonal). Both axes are removed and the
// diagonal becomes the last axis.
func Diagonal(a *Array, offset, axis1, axis2 int) (*Array, error) {
	if a.Rank() < 2 {
		return nil, fmt.Errorf("diagonal: %w: array of rank %d", ErrShape, a.Rank())
	}
	i, err := NormalizeAxis(axis1, a.Rank())
	if err != nil {
		return nil, fmt.Errorf("diagonal: %w", err)
	}
	j, err := NormalizeAxis(axis2, a.Rank())
	if err != nil {
		return nil, fmt.Errorf("diagonal: %w", err)
	}
	if i == j {
		return nil, fmt.Errorf("diagonal: %w: axes must differ", ErrIndex)
	}

	start := a.offset
	rows, cols := a.shape[i], a.shape[j]
	if offset >= 0 {
		cols -= offset
		if cols > 0 {
			start += offset * a.strides[j]
		}
	} else {
		rows += offset
		if rows > 0 {
			start -= offset * a.strides[i]
		}
	}
	n := max(0, min(rows, cols))

	shape := make(Shape, 0, a.Rank()-1)
	strides := make([]int, 0, a.Rank()-1)
	for ax := range a.shape {
		if ax != i && ax != j {
			shape = append(shape, a.shape[ax])
			strides = append(strides, a.strides[ax])
		}
	}
	shape = append(shape, n)
	strides = append(strides, a.strides[i]+a.strides[j])
	return a.newView(shape, strides, start), nil
}
