// Package ops implements the free functions of the array engine: shape
// manipulation, selection, sorting, products, constructors and the reduction
// shorthands. Everything here is composed from internal/array views and the
// ufuncs in internal/ufunc; results are fresh contiguous arrays unless a
// function documents that it returns a view.
package ops

import (
	"fmt"

	"github.com/born-ml/ndarray/internal/array"
	"github.com/born-ml/ndarray/internal/ufunc"
)

// Reshape returns a with the given shape; one dimension may be -1.
func Reshape(av any, shape ...int) (*array.Array, error) {
	a, err := array.AsArray(av)
	if err != nil {
		return nil, fmt.Errorf("reshape: %w", err)
	}
	return array.Reshape(a, shape...)
}

// Transpose permutes the axes of a, reversing them when axes is empty.
func Transpose(av any, axes ...int) (*array.Array, error) {
	a, err := array.AsArray(av)
	if err != nil {
		return nil, fmt.Errorf("transpose: %w", err)
	}
	return array.Transpose(a, axes...)
}

// Ravel returns a flattened to one dimension.
func Ravel(av any) (*array.Array, error) {
	a, err := array.AsArray(av)
	if err != nil {
		return nil, fmt.Errorf("ravel: %w", err)
	}
	return array.Ravel(a)
}

// Diagonal returns a view of the diagonal formed by axis1 and axis2, which is
// appended as the last axis. The conventional call is Diagonal(a, 0, -2, -1).
func Diagonal(av any, offset, axis1, axis2 int) (*array.Array, error) {
	a, err := array.AsArray(av)
	if err != nil {
		return nil, fmt.Errorf("diagonal: %w", err)
	}
	return array.Diagonal(a, offset, axis1, axis2)
}

// Trace sums the diagonal selected as in Diagonal.
func Trace(av any, offset, axis1, axis2 int) (*array.Array, error) {
	d, err := Diagonal(av, offset, axis1, axis2)
	if err != nil {
		return nil, fmt.Errorf("trace: %w", err)
	}
	return ufunc.Add.Reduce(d, -1)
}

// Sum adds the elements of a along axis.
func Sum(a any, axis int) (*array.Array, error) { return ufunc.Add.Reduce(a, axis) }

// CumSum returns the running sums of a along axis.
func CumSum(a any, axis int) (*array.Array, error) { return ufunc.Add.Accumulate(a, axis) }

// Product multiplies the elements of a along axis.
func Product(a any, axis int) (*array.Array, error) { return ufunc.Multiply.Reduce(a, axis) }

// CumProduct returns the running products of a along axis.
func CumProduct(a any, axis int) (*array.Array, error) {
	return ufunc.Multiply.Accumulate(a, axis)
}

// AllTrue reports, along axis, whether every element is non-zero.
func AllTrue(a any, axis int) (*array.Array, error) { return ufunc.LogicalAnd.Reduce(a, axis) }

// SomeTrue reports, along axis, whether any element is non-zero.
func SomeTrue(a any, axis int) (*array.Array, error) { return ufunc.LogicalOr.Reduce(a, axis) }

// alongLast moves axis ax of a to the end and returns a fresh contiguous copy,
// so that every run of Shape()[last] buffer elements is one lane.
func alongLast(a *array.Array, ax int) (*array.Array, error) {
	moved, err := array.MoveAxis(a, ax, -1)
	if err != nil {
		return nil, err
	}
	return array.Clone(moved), nil
}

// fromLast undoes alongLast on a result of the same rank.
func fromLast(out *array.Array, ax int) (*array.Array, error) {
	moved, err := array.MoveAxis(out, -1, ax)
	if err != nil {
		return nil, err
	}
	return array.AsContiguous(moved)
}

// fromFirst moves the leading axis of out back to position ax.
func fromFirst(out *array.Array, ax int) (*array.Array, error) {
	if ax == 0 {
		return out, nil
	}
	moved, err := array.MoveAxis(out, 0, ax)
	if err != nil {
		return nil, err
	}
	return array.AsContiguous(moved)
}

// toIndices converts v into an Int64 index array.
func toIndices(v any) (*array.Array, error) {
	a, err := array.AsArray(v)
	if err != nil {
		return nil, err
	}
	if a.Kind().Category() != array.Integer {
		return nil, fmt.Errorf("%w: indices must be integers, got %s", array.ErrValue, a.Kind())
	}
	if a.Kind() == array.IntKind {
		return a, nil
	}
	return array.AsType(a, array.IntKind)
}
