// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"github.com/born-ml/ndarray/internal/parallel"
	"github.com/born-ml/ndarray/internal/ufunc"
)

// BinaryUfunc is an elementwise binary function with Call, CallInto, Reduce,
// Accumulate, ReduceAt and Outer forms.
type BinaryUfunc = ufunc.Binary

// UnaryUfunc is an elementwise unary function with Call and CallInto forms.
type UnaryUfunc = ufunc.Unary

// ParallelConfig controls the worker fan-out of Outer.
type ParallelConfig = parallel.Config

// Binary ufuncs.
var (
	Add          = ufunc.Add
	Subtract     = ufunc.Subtract
	Multiply     = ufunc.Multiply
	Divide       = ufunc.Divide
	Remainder    = ufunc.Remainder
	Power        = ufunc.Power
	Maximum      = ufunc.Maximum
	Minimum      = ufunc.Minimum
	Equal        = ufunc.Equal
	NotEqual     = ufunc.NotEqual
	Less         = ufunc.Less
	LessEqual    = ufunc.LessEqual
	Greater      = ufunc.Greater
	GreaterEqual = ufunc.GreaterEqual
	LogicalAnd   = ufunc.LogicalAnd
	LogicalOr    = ufunc.LogicalOr
	LogicalXor   = ufunc.LogicalXor
	BitwiseAnd   = ufunc.BitwiseAnd
	BitwiseOr    = ufunc.BitwiseOr
	BitwiseXor   = ufunc.BitwiseXor
)

// Unary ufuncs.
var (
	Arccos     = ufunc.Arccos
	Arccosh    = ufunc.Arccosh
	Arcsin     = ufunc.Arcsin
	Arcsinh    = ufunc.Arcsinh
	Arctan     = ufunc.Arctan
	Arctanh    = ufunc.Arctanh
	Cos        = ufunc.Cos
	Cosh       = ufunc.Cosh
	Exp        = ufunc.Exp
	Log        = ufunc.Log
	Log10      = ufunc.Log10
	Sin        = ufunc.Sin
	Sinh       = ufunc.Sinh
	Sqrt       = ufunc.Sqrt
	Tan        = ufunc.Tan
	Tanh       = ufunc.Tanh
	Ceil       = ufunc.Ceil
	Floor      = ufunc.Floor
	Conjugate  = ufunc.Conjugate
	RealPart   = ufunc.Real
	Imaginary  = ufunc.Imaginary
	Absolute   = ufunc.Absolute
	Negative   = ufunc.Negative
	LogicalNot = ufunc.LogicalNot
	BitwiseNot = ufunc.BitwiseNot
)

// LookupBinary returns the binary ufunc registered under name ("add",
// "not_equal", ...).
func LookupBinary(name string) (*BinaryUfunc, bool) {
	return ufunc.LookupBinary(name)
}

// LookupUnary returns the unary ufunc registered under name.
func LookupUnary(name string) (*UnaryUfunc, bool) {
	return ufunc.LookupUnary(name)
}

// BinaryNames lists the registered binary ufunc names in sorted order.
func BinaryNames() []string {
	return ufunc.BinaryNames()
}

// UnaryNames lists the registered unary ufunc names in sorted order.
func UnaryNames() []string {
	return ufunc.UnaryNames()
}

// SetParallel installs the worker configuration used by Outer. The default
// is sequential.
func SetParallel(cfg ParallelConfig) {
	ufunc.SetParallel(cfg)
}

// DefaultParallelConfig returns a configuration using every CPU.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}
