package ops

import (
	"fmt"

	"github.com/born-ml/ndarray/internal/array"
	"github.com/born-ml/ndarray/internal/ufunc"
)

// InnerProduct sums a[..., k] * b[..., k] over axisA of a and axisB of b,
// which must have equal length. The result shape is a's remaining axes
// followed by b's remaining axes. Rank-0 operands are multiplied.
//
// Example:
//
//	// a is 2x3, b is 4x3
//	p, _ := ops.InnerProduct(a, b, -1, -1) // 2x4
func InnerProduct(av, bv any, axisA, axisB int) (*array.Array, error) {
	a, err := array.AsArray(av)
	if err != nil {
		return nil, fmt.Errorf("innerproduct: %w", err)
	}
	b, err := array.AsArray(bv)
	if err != nil {
		return nil, fmt.Errorf("innerproduct: %w", err)
	}
	if a.IsScalar() || b.IsScalar() {
		return ufunc.Multiply.Call(a, b)
	}

	am, err := array.MoveAxis(a, axisA, -1)
	if err != nil {
		return nil, fmt.Errorf("innerproduct: %w", err)
	}
	bm, err := array.MoveAxis(b, axisB, -1)
	if err != nil {
		return nil, fmt.Errorf("innerproduct: %w", err)
	}
	k := am.Shape()[am.Rank()-1]
	if bm.Shape()[bm.Rank()-1] != k {
		return nil, fmt.Errorf("innerproduct: %w: matrices not aligned, %v and %v",
			array.ErrShape, a.Shape(), b.Shape())
	}
	restA, restB := am.Shape()[:am.Rank()-1], bm.Shape()[:bm.Rank()-1]
	m, n := restA.NumElements(), restB.NumElements()

	// [m,1,k] * [1,n,k] summed over k.
	x, err := array.Reshape(am, m, 1, k)
	if err != nil {
		return nil, fmt.Errorf("innerproduct: %w", err)
	}
	y, err := array.Reshape(bm, 1, n, k)
	if err != nil {
		return nil, fmt.Errorf("innerproduct: %w", err)
	}
	prod, err := ufunc.Multiply.Call(x, y)
	if err != nil {
		return nil, fmt.Errorf("innerproduct: %w", err)
	}
	sum, err := ufunc.Add.Reduce(prod, -1)
	if err != nil {
		return nil, fmt.Errorf("innerproduct: %w", err)
	}
	shape := append(restA.Clone(), restB...)
	return array.Reshape(sum, shape...)
}

// Dot is the matrix product: it contracts the last axis of a with the
// second-to-last axis of b (the only axis when b is 1-D).
func Dot(a, bv any) (*array.Array, error) {
	b, err := array.AsArray(bv)
	if err != nil {
		return nil, fmt.Errorf("dot: %w", err)
	}
	axisB := -1
	if b.Rank() >= 2 {
		axisB = -2
	}
	return InnerProduct(a, b, -1, axisB)
}
