package ufunc

import (
	"github.com/born-ml/ndarray/internal/array"
	"gonum.org/v1/gonum/floats"
)

// Arithmetic ufuncs.
var (
	Add = register(&Binary{
		name:     "add",
		identity: int64(0),
		kernels: numericKernels(add[int8], add[int16], add[int32], add[int64],
			add[float32], add[float64], add[complex64], add[complex128]),
		float64s: floats.AddTo,
	})

	Subtract = register(&Binary{
		name:     "subtract",
		identity: int64(0),
		kernels: numericKernels(subtract[int8], subtract[int16], subtract[int32], subtract[int64],
			subtract[float32], subtract[float64], subtract[complex64], subtract[complex128]),
		float64s: floats.SubTo,
	})

	Multiply = register(&Binary{
		name:     "multiply",
		identity: int64(1),
		kernels: numericKernels(multiply[int8], multiply[int16], multiply[int32], multiply[int64],
			multiply[float32], multiply[float64], multiply[complex64], multiply[complex128]),
		float64s: floats.MulTo,
	})

	// Divide truncates integer quotients and reports ErrDivideByZero for an
	// integer zero divisor. Floating and complex division follow IEEE 754.
	Divide = register(&Binary{
		name:     "divide",
		identity: int64(1),
		kernels: kernels{
			array.Int8:       fallible(divideInt[int8]),
			array.Int16:      fallible(divideInt[int16]),
			array.Int32:      fallible(divideInt[int32]),
			array.Int64:      fallible(divideInt[int64]),
			array.Float32:    total(divideExact[float32]),
			array.Float64:    total(divideExact[float64]),
			array.Complex64:  total(divideExact[complex64]),
			array.Complex128: total(divideExact[complex128]),
		},
		float64s: floats.DivTo,
	})

	// Remainder has the sign of the dividend for real kinds. For complex
	// kinds it is a - floor(Re(a/b))*b.
	Remainder = register(&Binary{
		name:     "remainder",
		identity: int64(1),
		kernels: kernels{
			array.Int8:       fallible(remainderInt[int8]),
			array.Int16:      fallible(remainderInt[int16]),
			array.Int32:      fallible(remainderInt[int32]),
			array.Int64:      fallible(remainderInt[int64]),
			array.Float32:    total(remainder32),
			array.Float64:    total(remainder64),
			array.Complex64:  total(remainderComplex[complex64]),
			array.Complex128: total(remainderComplex[complex128]),
		},
	})

	// Power reports ErrOverflow when an integer result would not fit and
	// ErrValue for negative integer exponents.
	Power = register(&Binary{
		name:     "power",
		identity: int64(1),
		kernels: kernels{
			array.Int8:       fallible(powerInt[int8]),
			array.Int16:      fallible(powerInt[int16]),
			array.Int32:      fallible(powerInt[int32]),
			array.Int64:      fallible(powerInt[int64]),
			array.Float32:    total(power32),
			array.Float64:    total(power64),
			array.Complex64:  total(powerComplex[complex64]),
			array.Complex128: total(powerComplex[complex128]),
		},
	})

	// Maximum and Minimum have no identity and are not defined for complex
	// kinds.
	Maximum = register(&Binary{
		name: "maximum",
		kernels: orderedKernels(maximum[int8], maximum[int16], maximum[int32], maximum[int64],
			maximum[float32], maximum[float64]),
	})

	Minimum = register(&Binary{
		name: "minimum",
		kernels: orderedKernels(minimum[int8], minimum[int16], minimum[int32], minimum[int64],
			minimum[float32], minimum[float64]),
	})
)

// Comparison ufuncs produce IntKind truth values. Ordering comparisons are not
// defined for complex kinds.
var (
	Equal = register(&Binary{
		name:      "equal",
		identity:  int64(1),
		predicate: true,
		kernels: numericKernels(equal[int8], equal[int16], equal[int32], equal[int64],
			equal[float32], equal[float64], equal[complex64], equal[complex128]),
		object: objectEqual,
	})

	NotEqual = register(&Binary{
		name:      "not_equal",
		identity:  int64(1),
		predicate: true,
		kernels: numericKernels(notEqual[int8], notEqual[int16], notEqual[int32], notEqual[int64],
			notEqual[float32], notEqual[float64], notEqual[complex64], notEqual[complex128]),
		object: objectNotEqual,
	})

	Less = register(&Binary{
		name:      "less",
		identity:  int64(1),
		predicate: true,
		kernels: orderedKernels(less[int8], less[int16], less[int32], less[int64],
			less[float32], less[float64]),
	})

	LessEqual = register(&Binary{
		name:      "less_equal",
		identity:  int64(1),
		predicate: true,
		kernels: orderedKernels(lessEqual[int8], lessEqual[int16], lessEqual[int32], lessEqual[int64],
			lessEqual[float32], lessEqual[float64]),
	})

	Greater = register(&Binary{
		name:      "greater",
		identity:  int64(1),
		predicate: true,
		kernels: orderedKernels(greater[int8], greater[int16], greater[int32], greater[int64],
			greater[float32], greater[float64]),
	})

	GreaterEqual = register(&Binary{
		name:      "greater_equal",
		identity:  int64(1),
		predicate: true,
		kernels: orderedKernels(greaterEqual[int8], greaterEqual[int16], greaterEqual[int32], greaterEqual[int64],
			greaterEqual[float32], greaterEqual[float64]),
	})
)

// Logical ufuncs treat any non-zero element as true.
var (
	LogicalAnd = register(&Binary{
		name:      "logical_and",
		identity:  int64(1),
		predicate: true,
		logical:   true,
		kernels: numericKernels(logicalAnd[int8], logicalAnd[int16], logicalAnd[int32], logicalAnd[int64],
			logicalAnd[float32], logicalAnd[float64], logicalAnd[complex64], logicalAnd[complex128]),
		object: objectAnd,
	})

	LogicalOr = register(&Binary{
		name:      "logical_or",
		identity:  int64(0),
		predicate: true,
		logical:   true,
		kernels: numericKernels(logicalOr[int8], logicalOr[int16], logicalOr[int32], logicalOr[int64],
			logicalOr[float32], logicalOr[float64], logicalOr[complex64], logicalOr[complex128]),
		object: objectOr,
	})

	LogicalXor = register(&Binary{
		name:      "logical_xor",
		identity:  int64(0),
		predicate: true,
		logical:   true,
		kernels: numericKernels(logicalXor[int8], logicalXor[int16], logicalXor[int32], logicalXor[int64],
			logicalXor[float32], logicalXor[float64], logicalXor[complex64], logicalXor[complex128]),
		object: objectXor,
	})
)

// Bitwise ufuncs are defined for integer kinds only.
var (
	BitwiseAnd = register(&Binary{
		name:     "bitwise_and",
		identity: int64(-1),
		kernels:  integerKernels(bitwiseAnd[int8], bitwiseAnd[int16], bitwiseAnd[int32], bitwiseAnd[int64]),
	})

	BitwiseOr = register(&Binary{
		name:     "bitwise_or",
		identity: int64(0),
		kernels:  integerKernels(bitwiseOr[int8], bitwiseOr[int16], bitwiseOr[int32], bitwiseOr[int64]),
	})

	BitwiseXor = register(&Binary{
		name:     "bitwise_xor",
		identity: int64(0),
		kernels:  integerKernels(bitwiseXor[int8], bitwiseXor[int16], bitwiseXor[int32], bitwiseXor[int64]),
	})
)
