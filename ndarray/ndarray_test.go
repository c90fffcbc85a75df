// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/born-ml/ndarray/ndarray"
)

// TestPublicAPI exercises creation, views and ufuncs through the public package.
func TestPublicAPI(t *testing.T) {
	m, err := ndarray.FromSequence([][]float64{{1, 2, 3}, {4, 5, 6}})
	if err != nil {
		t.Fatalf("FromSequence failed: %v", err)
	}
	if !m.Shape().Equal(ndarray.Shape{2, 3}) {
		t.Errorf("Shape() = %v, want [2 3]", m.Shape())
	}

	col, err := ndarray.View(m, ndarray.All(), ndarray.Int(0))
	if err != nil {
		t.Fatalf("View failed: %v", err)
	}
	if got := ndarray.Values[float64](col); !slices.Equal(got, []float64{1, 4}) {
		t.Errorf("m[:, 0] = %v, want [1 4]", got)
	}

	rows, err := ndarray.Add.Reduce(m, 1)
	if err != nil {
		t.Fatalf("Add.Reduce failed: %v", err)
	}
	if got := ndarray.Values[float64](rows); !slices.Equal(got, []float64{6, 15}) {
		t.Errorf("Add.Reduce(m, 1) = %v, want [6 15]", got)
	}

	outer, err := ndarray.Multiply.Outer(col, col)
	if err != nil {
		t.Fatalf("Multiply.Outer failed: %v", err)
	}
	if got := ndarray.Values[float64](outer); !slices.Equal(got, []float64{1, 4, 4, 16}) {
		t.Errorf("Multiply.Outer = %v, want [1 4 4 16]", got)
	}
}

// TestViewsShareBuffer verifies that writes through a view reach the source.
func TestViewsShareBuffer(t *testing.T) {
	v, err := ndarray.Arange(0, 6, 1, ndarray.Int64)
	if err != nil {
		t.Fatalf("Arange failed: %v", err)
	}
	m, err := ndarray.Reshape(v, 2, 3)
	if err != nil {
		t.Fatalf("Reshape failed: %v", err)
	}
	if err := ndarray.Assign(m, 9, ndarray.Int(1), ndarray.Reverse()); err != nil {
		t.Fatalf("Assign failed: %v", err)
	}
	if got := ndarray.Values[int64](v); !slices.Equal(got, []int64{0, 1, 2, 9, 9, 9}) {
		t.Errorf("source after Assign = %v, want [0 1 2 9 9 9]", got)
	}
}

// TestErrorsMatch verifies the sentinel errors survive wrapping.
func TestErrorsMatch(t *testing.T) {
	a, _ := ndarray.Zeros(ndarray.Shape{3, 2}, ndarray.Float64)
	b, _ := ndarray.Zeros(ndarray.Shape{1, 4}, ndarray.Float64)
	if _, err := ndarray.Add.Call(a, b); !errors.Is(err, ndarray.ErrShape) {
		t.Errorf("Add.Call error = %v, want ErrShape", err)
	}
	if _, err := ndarray.Divide.Call([]int{1}, []int{0}); !errors.Is(err, ndarray.ErrDivideByZero) {
		t.Errorf("Divide.Call error = %v, want ErrDivideByZero", err)
	}
	if _, err := ndarray.Less.Call([]complex128{1}, 2); !errors.Is(err, ndarray.ErrUnsupportedKind) {
		t.Errorf("Less.Call error = %v, want ErrUnsupportedKind", err)
	}
}

// TestKinds verifies kind codes and promotion through the public aliases.
func TestKinds(t *testing.T) {
	k, err := ndarray.ParseKind('D')
	if err != nil {
		t.Fatalf("ParseKind failed: %v", err)
	}
	if k != ndarray.Complex128 {
		t.Errorf("ParseKind('D') = %v, want Complex128", k)
	}
	if got := ndarray.CommonType(ndarray.Int64, ndarray.Float32); got != ndarray.Float64 {
		t.Errorf("CommonType(Int64, Float32) = %v, want Float64", got)
	}
}

// TestRegistry verifies lookups by name.
func TestRegistry(t *testing.T) {
	u, ok := ndarray.LookupBinary("add")
	if !ok || u != ndarray.Add {
		t.Errorf("LookupBinary(add) = %v, %v", u, ok)
	}
	if _, ok := ndarray.LookupUnary("sqrt"); !ok {
		t.Error("LookupUnary(sqrt) not found")
	}
	if n := len(ndarray.BinaryNames()); n != 20 {
		t.Errorf("len(BinaryNames()) = %d, want 20", n)
	}
}

func TestDot(t *testing.T) {
	a, _ := ndarray.FromSequence([][]int{{1, 2}, {3, 4}})
	id, _ := ndarray.Identity(2, ndarray.Int64)
	p, err := ndarray.Dot(a, id)
	if err != nil {
		t.Fatalf("Dot failed: %v", err)
	}
	if got := ndarray.Values[int64](p); !slices.Equal(got, []int64{1, 2, 3, 4}) {
		t.Errorf("Dot(a, I) = %v, want [1 2 3 4]", got)
	}
}
