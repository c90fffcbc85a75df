// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"github.com/born-ml/ndarray/internal/array"
)

// Array is a strided view over a flat, possibly shared buffer.
type Array = array.Array

// Kind identifies the element type stored in an Array.
type Kind = array.Kind

// Element kinds.
const (
	Int8       Kind = array.Int8
	Int16      Kind = array.Int16
	Int32      Kind = array.Int32
	Int64      Kind = array.Int64
	Float32    Kind = array.Float32
	Float64    Kind = array.Float64
	Complex64  Kind = array.Complex64
	Complex128 Kind = array.Complex128
	Generic    Kind = array.Generic
)

// IntKind is the kind of index and truth-value results.
const IntKind = array.IntKind

// Shape lists the length of every axis.
type Shape = array.Shape

// Index is one element of an index expression passed to View.
type Index = array.Index

// Int selects one position of an axis and removes the axis.
type Int = array.Int

// Slice selects start:stop:step of an axis.
type Slice = array.Slice

// Index expression helpers.
var (
	// Ellipsis stands for every axis not named by the rest of the expression.
	Ellipsis = array.Ellipsis
	// NewAxis inserts a length-1 axis.
	NewAxis = array.NewAxis
)

// Errors returned (wrapped) by array operations.
var (
	ErrShape           = array.ErrShape
	ErrIndex           = array.ErrIndex
	ErrUnsupportedKind = array.ErrUnsupportedKind
	ErrOverflow        = array.ErrOverflow
	ErrDivideByZero    = array.ErrDivideByZero
	ErrValue           = array.ErrValue
)

// Kind lattice

// ParseKind maps a one-character kind code ('1', 's', 'i', 'l', 'f', 'd',
// 'F', 'D', 'O') to its Kind.
func ParseKind(code byte) (Kind, error) {
	return array.ParseKind(code)
}

// CommonType returns the kind both a and b promote to.
//
// Example:
//
//	ndarray.CommonType(ndarray.Int64, ndarray.Float32) // Float64
func CommonType(a, b Kind) Kind {
	return array.CommonType(a, b)
}

// Creation functions

// Zeros allocates a zero-filled array.
//
// Example:
//
//	x, err := ndarray.Zeros(ndarray.Shape{2, 3}, ndarray.Float64)
func Zeros(shape Shape, kind Kind) (*Array, error) {
	return array.Zeros(shape, kind)
}

// Ones allocates an array filled with one.
func Ones(shape Shape, kind Kind) (*Array, error) {
	return array.Ones(shape, kind)
}

// Full allocates an array with every element set to v.
func Full(shape Shape, kind Kind, v any) (*Array, error) {
	return array.Full(shape, kind, v)
}

// FromSlice copies data into a new array of the given shape.
//
// Example:
//
//	x, err := ndarray.FromSlice([]float32{1, 2, 3, 4, 5, 6}, ndarray.Shape{2, 3})
func FromSlice[T any](data []T, shape Shape) (*Array, error) {
	return array.FromSlice(data, shape)
}

// FromSequence converts a nested Go slice or array (or a scalar) into an
// array, inferring the kind from its elements. Ragged input is ErrShape.
func FromSequence(v any) (*Array, error) {
	return array.FromSequence(v)
}

// FromSequenceKind is FromSequence with an explicit kind.
func FromSequenceKind(v any, kind Kind) (*Array, error) {
	return array.FromSequenceKind(v, kind)
}

// Scalar wraps one Go value as a rank-0 array.
func Scalar(v any) (*Array, error) {
	return array.Scalar(v)
}

// AsArray returns v itself when it is an *Array and converts it otherwise.
func AsArray(v any) (*Array, error) {
	return array.AsArray(v)
}

// FromBytes decodes little-endian element data.
func FromBytes(data []byte, kind Kind) (*Array, error) {
	return array.FromBytes(data, kind)
}

// Values returns the elements of a in row-major order. T must match a.Kind().
func Values[T any](a *Array) []T {
	return array.Values[T](a)
}

// Views

// View applies an index expression to a without copying.
//
// Example:
//
//	evens, _ := ndarray.View(v, ndarray.Span(0, 10, 2)) // v[0:10:2]
func View(a *Array, idx ...Index) (*Array, error) {
	return array.View(a, idx...)
}

// Assign writes value, broadcast and converted, into the region of a selected
// by idx.
func Assign(a *Array, value any, idx ...Index) error {
	return array.Assign(a, value, idx...)
}

// Span is the slice start:stop:step.
func Span(start, stop, step int) Slice { return array.Span(start, stop, step) }

// All is the slice ":".
func All() Slice { return array.All() }

// From is the slice "start:".
func From(start int) Slice { return array.From(start) }

// To is the slice ":stop".
func To(stop int) Slice { return array.To(stop) }

// Reverse is the slice "::-1".
func Reverse() Slice { return array.Reverse() }

// BroadcastTo returns a view of a stretched to shape.
func BroadcastTo(a *Array, shape Shape) (*Array, error) {
	return array.BroadcastTo(a, shape)
}

// Broadcast returns views of a and b stretched to their common shape.
func Broadcast(a, b *Array) (*Array, *Array, error) {
	return array.Broadcast(a, b)
}

// SwapAxes exchanges two axes of a.
func SwapAxes(a *Array, axis1, axis2 int) (*Array, error) {
	return array.SwapAxes(a, axis1, axis2)
}

// Squeeze removes every length-1 axis of a.
func Squeeze(a *Array) *Array {
	return array.Squeeze(a)
}

// ExpandDims inserts a length-1 axis at position axis.
func ExpandDims(a *Array, axis int) (*Array, error) {
	return array.ExpandDims(a, axis)
}

// Casting

// Copy writes src into dst element by element, converting kinds. The shapes
// must match.
func Copy(src, dst *Array) error {
	return array.Copy(src, dst)
}

// AsType returns a fresh contiguous copy of a converted to kind.
func AsType(a *Array, kind Kind) (*Array, error) {
	return array.AsType(a, kind)
}

// Clone returns a fresh contiguous copy of a.
func Clone(a *Array) *Array {
	return array.Clone(a)
}

// AsContiguous returns a when it is contiguous and a contiguous copy
// otherwise.
func AsContiguous(a *Array) (*Array, error) {
	return array.AsContiguous(a)
}

// Real returns the real part of a.
func Real(a *Array) *Array {
	return array.Real(a)
}

// Imag returns the imaginary part of a.
func Imag(a *Array) *Array {
	return array.Imag(a)
}
