package ufunc

import (
	"math"
	"math/cmplx"

	"github.com/born-ml/ndarray/internal/array"
	"github.com/chewxy/math32"
)

func via128(f func(complex128) complex128) func(complex64) complex64 {
	return func(x complex64) complex64 { return complex64(f(complex128(x))) }
}

// transcendental registers a ufunc computed in floating or complex arithmetic.
// A nil complex function leaves complex kinds unsupported.
func transcendental(name string, f32 func(float32) float32, f64 func(float64) float64,
	c128 func(complex128) complex128) *Unary {
	u := &Unary{name: name, promote: true}
	u.kernels[array.Float32] = unary(f32)
	u.kernels[array.Float64] = unary(f64)
	if c128 != nil {
		u.kernels[array.Complex64] = unary(via128(c128))
		u.kernels[array.Complex128] = unary(c128)
	}
	return registerUnary(u)
}

// Transcendental and rounding ufuncs.
var (
	Arccos  = transcendental("arccos", math32.Acos, math.Acos, cmplx.Acos)
	Arccosh = transcendental("arccosh", math32.Acosh, math.Acosh, cmplx.Acosh)
	Arcsin  = transcendental("arcsin", math32.Asin, math.Asin, cmplx.Asin)
	Arcsinh = transcendental("arcsinh", math32.Asinh, math.Asinh, cmplx.Asinh)
	Arctan  = transcendental("arctan", math32.Atan, math.Atan, cmplx.Atan)
	Arctanh = transcendental("arctanh", math32.Atanh, math.Atanh, cmplx.Atanh)
	Cos     = transcendental("cos", math32.Cos, math.Cos, cmplx.Cos)
	Cosh    = transcendental("cosh", math32.Cosh, math.Cosh, cmplx.Cosh)
	Exp     = transcendental("exp", math32.Exp, math.Exp, cmplx.Exp)
	Log     = transcendental("log", math32.Log, math.Log, cmplx.Log)
	Log10   = transcendental("log10", math32.Log10, math.Log10, cmplx.Log10)
	Sin     = transcendental("sin", math32.Sin, math.Sin, cmplx.Sin)
	Sinh    = transcendental("sinh", math32.Sinh, math.Sinh, cmplx.Sinh)
	Sqrt    = transcendental("sqrt", math32.Sqrt, math.Sqrt, cmplx.Sqrt)
	Tan     = transcendental("tan", math32.Tan, math.Tan, cmplx.Tan)
	Tanh    = transcendental("tanh", math32.Tanh, math.Tanh, cmplx.Tanh)

	// Ceil and Floor are not defined for complex kinds.
	Ceil  = transcendental("ceil", math32.Ceil, math.Ceil, nil)
	Floor = transcendental("floor", math32.Floor, math.Floor, nil)
)

func same[T any](x T) T { return x }

func zero[T number](T) T { return 0 }

func negate[T number](x T) T { return -x }

// abs wraps for the most negative integer.
func abs[T ordered](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func not[T number](x T) int64 { return truth(x == 0) }

func invert[T signed](x T) T { return ^x }

func realPart64(x complex64) float32 { return real(x) }

func realPart128(x complex128) float64 { return real(x) }

func imagPart64(x complex64) float32 { return imag(x) }

func imagPart128(x complex128) float64 { return imag(x) }

func conj64(x complex64) complex64 { return complex64(cmplx.Conj(complex128(x))) }

func abs64(x complex64) float32 { return float32(cmplx.Abs(complex128(x))) }

// Kind-preserving and complex-decomposition ufuncs.
var (
	Conjugate = registerUnary(&Unary{
		name: "conjugate",
		kernels: [array.NumKinds]*unaryKernel{
			array.Int8:       unary(same[int8]),
			array.Int16:      unary(same[int16]),
			array.Int32:      unary(same[int32]),
			array.Int64:      unary(same[int64]),
			array.Float32:    unary(same[float32]),
			array.Float64:    unary(same[float64]),
			array.Complex64:  unary(conj64),
			array.Complex128: unary(cmplx.Conj),
		},
	})

	// Real and Imaginary return the matching floating kind for complex
	// inputs and keep the kind of real inputs.
	Real = registerUnary(&Unary{
		name: "real",
		kernels: [array.NumKinds]*unaryKernel{
			array.Int8:       unary(same[int8]),
			array.Int16:      unary(same[int16]),
			array.Int32:      unary(same[int32]),
			array.Int64:      unary(same[int64]),
			array.Float32:    unary(same[float32]),
			array.Float64:    unary(same[float64]),
			array.Complex64:  unary(realPart64),
			array.Complex128: unary(realPart128),
		},
	})

	Imaginary = registerUnary(&Unary{
		name: "imaginary",
		kernels: [array.NumKinds]*unaryKernel{
			array.Int8:       unary(zero[int8]),
			array.Int16:      unary(zero[int16]),
			array.Int32:      unary(zero[int32]),
			array.Int64:      unary(zero[int64]),
			array.Float32:    unary(zero[float32]),
			array.Float64:    unary(zero[float64]),
			array.Complex64:  unary(imagPart64),
			array.Complex128: unary(imagPart128),
		},
	})

	// Absolute returns the modulus, as a floating kind, for complex inputs.
	Absolute = registerUnary(&Unary{
		name: "absolute",
		kernels: [array.NumKinds]*unaryKernel{
			array.Int8:       unary(abs[int8]),
			array.Int16:      unary(abs[int16]),
			array.Int32:      unary(abs[int32]),
			array.Int64:      unary(abs[int64]),
			array.Float32:    unary(math32.Abs),
			array.Float64:    unary(math.Abs),
			array.Complex64:  unary(abs64),
			array.Complex128: unary(cmplx.Abs),
		},
	})

	Negative = registerUnary(&Unary{
		name: "negative",
		kernels: [array.NumKinds]*unaryKernel{
			array.Int8:       unary(negate[int8]),
			array.Int16:      unary(negate[int16]),
			array.Int32:      unary(negate[int32]),
			array.Int64:      unary(negate[int64]),
			array.Float32:    unary(negate[float32]),
			array.Float64:    unary(negate[float64]),
			array.Complex64:  unary(negate[complex64]),
			array.Complex128: unary(negate[complex128]),
		},
	})

	LogicalNot = registerUnary(&Unary{
		name:      "logical_not",
		predicate: true,
		kernels: [array.NumKinds]*unaryKernel{
			array.Int8:       unary(not[int8]),
			array.Int16:      unary(not[int16]),
			array.Int32:      unary(not[int32]),
			array.Int64:      unary(not[int64]),
			array.Float32:    unary(not[float32]),
			array.Float64:    unary(not[float64]),
			array.Complex64:  unary(not[complex64]),
			array.Complex128: unary(not[complex128]),
		},
		object: func(x any) (any, error) { return truth(!array.Truth(x)), nil },
	})

	BitwiseNot = registerUnary(&Unary{
		name: "bitwise_not",
		kernels: [array.NumKinds]*unaryKernel{
			array.Int8:  unary(invert[int8]),
			array.Int16: unary(invert[int16]),
			array.Int32: unary(invert[int32]),
			array.Int64: unary(invert[int64]),
		},
	})
)
