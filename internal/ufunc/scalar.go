package ufunc

import (
	"fmt"
	"math"
	"math/cmplx"
	"reflect"

	"github.com/born-ml/ndarray/internal/array"
	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

type signed interface {
	constraints.Signed
}

type ordered interface {
	constraints.Signed | constraints.Float
}

type number interface {
	constraints.Signed | constraints.Float | constraints.Complex
}

func truth(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// ============================================================================
// Arithmetic
// ============================================================================

func add[T number](a, b T) T { return a + b }

func subtract[T number](a, b T) T { return a - b }

func multiply[T number](a, b T) T { return a * b }

// divideExact is IEEE division for floating and complex kinds.
func divideExact[T constraints.Float | constraints.Complex](a, b T) T { return a / b }

// divideInt truncates toward zero.
func divideInt[T signed](a, b T) (T, error) {
	if b == 0 {
		return 0, array.ErrDivideByZero
	}
	return a / b, nil
}

// remainderInt has the sign of the dividend.
func remainderInt[T signed](a, b T) (T, error) {
	if b == 0 {
		return 0, array.ErrDivideByZero
	}
	return a % b, nil
}

func remainder64(a, b float64) float64 { return math.Mod(a, b) }

func remainder32(a, b float32) float32 { return math32.Mod(a, b) }

// remainderComplex subtracts floor(Re(a/b)) multiples of b from a.
func remainderComplex[T constraints.Complex](a, b T) T {
	q := math.Floor(real(complex128(a / b)))
	return a - T(complex(q, 0))*b
}

func bitsOf[T signed]() int {
	var zero T
	switch any(zero).(type) {
	case int8:
		return 8
	case int16:
		return 16
	case int32:
		return 32
	default:
		return 64
	}
}

// powerInt raises base to a non-negative exponent, failing when the magnitude
// of the result cannot be represented.
func powerInt[T signed](base, exp T) (T, error) {
	if exp < 0 {
		return 0, fmt.Errorf("%w: negative integer exponent %d", array.ErrValue, exp)
	}
	if base != 0 && base != 1 && base != -1 {
		mag := math.Abs(float64(base))
		if math.Log2(mag)*float64(exp) >= float64(bitsOf[T]()-1) {
			return 0, fmt.Errorf("%w: %d**%d overflows", array.ErrOverflow, base, exp)
		}
	}
	result := T(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		exp >>= 1
		base *= base
	}
	return result, nil
}

func power64(a, b float64) float64 { return math.Pow(a, b) }

func power32(a, b float32) float32 { return math32.Pow(a, b) }

func powerComplex[T constraints.Complex](a, b T) T {
	return T(cmplx.Pow(complex128(a), complex128(b)))
}

// isNaN is false for every integer.
func isNaN[T ordered](x T) bool {
	return x != x
}

// maximum propagates NaN.
func maximum[T ordered](a, b T) T {
	if isNaN(a) || a >= b {
		return a
	}
	return b
}

func minimum[T ordered](a, b T) T {
	if isNaN(a) || a <= b {
		return a
	}
	return b
}

// ============================================================================
// Comparisons and logic
// ============================================================================

func equal[T number](a, b T) int64 { return truth(a == b) }

func notEqual[T number](a, b T) int64 { return truth(a != b) }

func less[T ordered](a, b T) int64 { return truth(a < b) }

func lessEqual[T ordered](a, b T) int64 { return truth(a <= b) }

func greater[T ordered](a, b T) int64 { return truth(a > b) }

func greaterEqual[T ordered](a, b T) int64 { return truth(a >= b) }

func logicalAnd[T number](a, b T) int64 { return truth(a != 0 && b != 0) }

func logicalOr[T number](a, b T) int64 { return truth(a != 0 || b != 0) }

func logicalXor[T number](a, b T) int64 { return truth((a != 0) != (b != 0)) }

func bitwiseAnd[T signed](a, b T) T { return a & b }

func bitwiseOr[T signed](a, b T) T { return a | b }

func bitwiseXor[T signed](a, b T) T { return a ^ b }

func objectEqual(x, y any) (any, error) {
	return truth(reflect.DeepEqual(x, y)), nil
}

func objectNotEqual(x, y any) (any, error) {
	return truth(!reflect.DeepEqual(x, y)), nil
}

func objectAnd(x, y any) (any, error) {
	return truth(array.Truth(x) && array.Truth(y)), nil
}

func objectOr(x, y any) (any, error) {
	return truth(array.Truth(x) || array.Truth(y)), nil
}

func objectXor(x, y any) (any, error) {
	return truth(array.Truth(x) != array.Truth(y)), nil
}

// ============================================================================
// Kernel tables
// ============================================================================

func numericKernels[R8, R16, R32, R64, RF32, RF64, RC64, RC128 any](
	i8 func(int8, int8) R8, i16 func(int16, int16) R16,
	i32 func(int32, int32) R32, i64 func(int64, int64) R64,
	f32 func(float32, float32) RF32, f64 func(float64, float64) RF64,
	c64 func(complex64, complex64) RC64, c128 func(complex128, complex128) RC128,
) kernels {
	return kernels{
		array.Int8:       total(i8),
		array.Int16:      total(i16),
		array.Int32:      total(i32),
		array.Int64:      total(i64),
		array.Float32:    total(f32),
		array.Float64:    total(f64),
		array.Complex64:  total(c64),
		array.Complex128: total(c128),
	}
}

func orderedKernels[R8, R16, R32, R64, RF32, RF64 any](
	i8 func(int8, int8) R8, i16 func(int16, int16) R16,
	i32 func(int32, int32) R32, i64 func(int64, int64) R64,
	f32 func(float32, float32) RF32, f64 func(float64, float64) RF64,
) kernels {
	return kernels{
		array.Int8:    total(i8),
		array.Int16:   total(i16),
		array.Int32:   total(i32),
		array.Int64:   total(i64),
		array.Float32: total(f32),
		array.Float64: total(f64),
	}
}

func integerKernels(
	i8 func(int8, int8) int8, i16 func(int16, int16) int16,
	i32 func(int32, int32) int32, i64 func(int64, int64) int64,
) kernels {
	return kernels{
		array.Int8:  total(i8),
		array.Int16: total(i16),
		array.Int32: total(i32),
		array.Int64: total(i64),
	}
}
