// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides N-dimensional strided arrays of nine element kinds
// with NumPy-style views, broadcasting and universal functions.
//
// # Overview
//
// An Array is a view over a flat buffer described by a kind, a shape,
// per-axis strides and an offset. Slicing, reshaping, transposing and
// broadcasting build new views over the same buffer without copying, so a
// write through one view is visible through every other view of that buffer.
// Operations that compute values (ufuncs, AsType, Copy, the free functions)
// return fresh contiguous arrays.
//
// # Basic Usage
//
//	import "github.com/born-ml/ndarray/ndarray"
//
//	func main() {
//	    m, _ := ndarray.FromSequence([][]float64{{1, 2, 3}, {4, 5, 6}})
//	    col, _ := ndarray.View(m, ndarray.All(), ndarray.Int(0)) // [1 4]
//
//	    sum, _ := ndarray.Add.Call(m, 10)        // broadcast a scalar
//	    rows, _ := ndarray.Add.Reduce(m, 1)      // [6 15]
//	    tbl, _ := ndarray.Multiply.Outer(col, col)
//	}
//
// # Element Kinds
//
// Int8, Int16, Int32, Int64, Float32, Float64, Complex64, Complex128 and
// Generic (boxed Go values). Mixed-kind operations promote to CommonType:
// the larger category wins (integer < floating < complex < generic) and the
// widest component width is kept.
//
// # Archives
//
// Save and Load store named arrays in the checksummed .nda format; Encode
// and Decode do the same over an io.Writer or io.Reader.
//
// # Errors
//
// Failures wrap one of ErrShape, ErrIndex, ErrUnsupportedKind, ErrOverflow,
// ErrDivideByZero or ErrValue; match them with errors.Is.
package ndarray
