// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"github.com/born-ml/ndarray/internal/ops"
)

// Shape manipulation

// Reshape returns a with a new shape; one dimension may be -1.
//
// Example:
//
//	m, _ := ndarray.Reshape(v, 2, -1)
func Reshape(a any, shape ...int) (*Array, error) { return ops.Reshape(a, shape...) }

// Transpose permutes the axes of a, reversing them when axes is empty.
func Transpose(a any, axes ...int) (*Array, error) { return ops.Transpose(a, axes...) }

// Ravel flattens a to one dimension.
func Ravel(a any) (*Array, error) { return ops.Ravel(a) }

// Diagonal returns a view of the diagonal of axis1 and axis2 as the last axis.
func Diagonal(a any, offset, axis1, axis2 int) (*Array, error) {
	return ops.Diagonal(a, offset, axis1, axis2)
}

// Trace sums the diagonal of axis1 and axis2.
func Trace(a any, offset, axis1, axis2 int) (*Array, error) {
	return ops.Trace(a, offset, axis1, axis2)
}

// Resize returns a new array of shape filled by cycling through a.
func Resize(a any, shape ...int) (*Array, error) { return ops.Resize(a, shape...) }

// Selection

// Take gathers the slices of a at indices along axis.
func Take(a, indices any, axis int) (*Array, error) { return ops.Take(a, indices, axis) }

// Repeat repeats each slice of a along axis.
func Repeat(a, repeats any, axis int) (*Array, error) { return ops.Repeat(a, repeats, axis) }

// Concatenate joins arrays along axis.
func Concatenate(arrays []any, axis int) (*Array, error) { return ops.Concatenate(arrays, axis) }

// Choose picks choices[selector] at every position.
func Choose(selector any, choices []any) (*Array, error) { return ops.Choose(selector, choices) }

// Where picks x where cond is non-zero and y elsewhere.
func Where(cond, x, y any) (*Array, error) { return ops.Where(cond, x, y) }

// Clip limits the elements of a to [lo, hi].
func Clip(a, lo, hi any) (*Array, error) { return ops.Clip(a, lo, hi) }

// Compress keeps the slices of a along axis where cond is non-zero.
func Compress(cond, a any, axis int) (*Array, error) { return ops.Compress(cond, a, axis) }

// Nonzero returns the positions of the non-zero elements of a 1-D array.
func Nonzero(a any) (*Array, error) { return ops.Nonzero(a) }

// Ordering

// Sort returns a copy of a sorted along axis.
func Sort(a any, axis int) (*Array, error) { return ops.Sort(a, axis) }

// Argsort returns the positions that sort a along axis.
func Argsort(a any, axis int) (*Array, error) { return ops.Argsort(a, axis) }

// Argmax returns the position of the largest element along axis.
func Argmax(a any, axis int) (*Array, error) { return ops.Argmax(a, axis) }

// Argmin returns the position of the smallest element along axis.
func Argmin(a any, axis int) (*Array, error) { return ops.Argmin(a, axis) }

// SearchSorted returns the leftmost insertion positions of values in the
// sorted 1-D array a.
func SearchSorted(a, values any) (*Array, error) { return ops.SearchSorted(a, values) }

// Products

// InnerProduct contracts axisA of a with axisB of b.
func InnerProduct(a, b any, axisA, axisB int) (*Array, error) {
	return ops.InnerProduct(a, b, axisA, axisB)
}

// Dot is the matrix product of a and b.
func Dot(a, b any) (*Array, error) { return ops.Dot(a, b) }

// Constructors

// Arange returns start, start+step, ... up to but excluding stop.
func Arange(start, stop, step float64, kind Kind) (*Array, error) {
	return ops.Arange(start, stop, step, kind)
}

// Linspace returns num evenly spaced Float64 values and their spacing.
func Linspace(start, stop float64, num int, endpoint bool) (*Array, float64, error) {
	return ops.Linspace(start, stop, num, endpoint)
}

// Identity returns the n x n identity matrix.
func Identity(n int, kind Kind) (*Array, error) { return ops.Identity(n, kind) }

// Indices returns the index grids of shape.
func Indices(shape Shape, kind Kind) (*Array, error) { return ops.Indices(shape, kind) }

// FromFunction builds an array whose element at idx is f(idx).
func FromFunction(shape Shape, kind Kind, f func(idx []int) any) (*Array, error) {
	return ops.FromFunction(shape, kind, f)
}

// Reductions

// Sum adds the elements of a along axis.
func Sum(a any, axis int) (*Array, error) { return ops.Sum(a, axis) }

// CumSum returns running sums along axis.
func CumSum(a any, axis int) (*Array, error) { return ops.CumSum(a, axis) }

// Product multiplies the elements of a along axis.
func Product(a any, axis int) (*Array, error) { return ops.Product(a, axis) }

// CumProduct returns running products along axis.
func CumProduct(a any, axis int) (*Array, error) { return ops.CumProduct(a, axis) }

// AllTrue reports whether every element along axis is non-zero.
func AllTrue(a any, axis int) (*Array, error) { return ops.AllTrue(a, axis) }

// SomeTrue reports whether any element along axis is non-zero.
func SomeTrue(a any, axis int) (*Array, error) { return ops.SomeTrue(a, axis) }
