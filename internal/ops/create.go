package ops

import (
	"fmt"
	"math"

	"github.com/born-ml/ndarray/internal/array"
)

// Arange returns the values start, start+step, ... below stop (above stop
// for a negative step), converted to kind.
//
// Example:
//
//	r, _ := ops.Arange(0, 10, 3, array.Int64) // [0 3 6 9]
func Arange(start, stop, step float64, kind array.Kind) (*array.Array, error) {
	if step == 0 {
		return nil, fmt.Errorf("arange: %w: step must not be zero", array.ErrValue)
	}
	n := max(0, int(math.Ceil((stop-start)/step)))
	out, err := array.New(array.Shape{n}, kind)
	if err != nil {
		return nil, fmt.Errorf("arange: %w", err)
	}
	for i := 0; i < n; i++ {
		if err := out.Store(i, start+float64(i)*step); err != nil {
			return nil, fmt.Errorf("arange: %w", err)
		}
	}
	return out, nil
}

// Linspace returns num evenly spaced Float64 values from start to stop, stop
// included when endpoint is set, together with the spacing.
func Linspace(start, stop float64, num int, endpoint bool) (*array.Array, float64, error) {
	if num < 0 {
		return nil, 0, fmt.Errorf("linspace: %w: negative count %d", array.ErrValue, num)
	}
	div := num
	if endpoint {
		div = num - 1
	}
	step := math.NaN()
	if div > 0 {
		step = (stop - start) / float64(div)
	}
	data := make([]float64, num)
	for i := range data {
		data[i] = start + float64(i)*step
	}
	if endpoint && num > 1 {
		data[num-1] = stop
	}
	if num == 1 {
		data[0] = start
	}
	out, err := array.FromSlice(data, array.Shape{num})
	if err != nil {
		return nil, 0, fmt.Errorf("linspace: %w", err)
	}
	return out, step, nil
}

// Identity returns the n x n identity matrix.
func Identity(n int, kind array.Kind) (*array.Array, error) {
	out, err := array.New(array.Shape{n, n}, kind)
	if err != nil {
		return nil, fmt.Errorf("identity: %w", err)
	}
	for i := 0; i < n; i++ {
		if err := out.SetAt(int64(1), i, i); err != nil {
			return nil, fmt.Errorf("identity: %w", err)
		}
	}
	return out, nil
}

// Indices returns an array of shape [len(shape)]+shape whose slice k holds the
// index along axis k at every position.
//
// Example:
//
//	g, _ := ops.Indices(array.Shape{2, 3}, array.Int64)
//	// g[0] = [[0 0 0] [1 1 1]], g[1] = [[0 1 2] [0 1 2]]
func Indices(shape array.Shape, kind array.Kind) (*array.Array, error) {
	out, err := array.New(append(array.Shape{len(shape)}, shape...), kind)
	if err != nil {
		return nil, fmt.Errorf("indices: %w", err)
	}
	for k := range shape {
		grid, err := out.Index(k)
		if err != nil {
			return nil, fmt.Errorf("indices: %w", err)
		}
		w := array.Walk(shape, grid.Operand())
		for w.Next() {
			if err := grid.Store(w.Offset(0), int64(w.Index()[k])); err != nil {
				return nil, fmt.Errorf("indices: %w", err)
			}
		}
	}
	return out, nil
}

// FromFunction builds an array of the given shape and kind whose element at
// idx is f(idx). The idx slice is reused between calls.
func FromFunction(shape array.Shape, kind array.Kind, f func(idx []int) any) (*array.Array, error) {
	out, err := array.New(shape, kind)
	if err != nil {
		return nil, fmt.Errorf("fromfunction: %w", err)
	}
	w := array.Walk(out.Shape(), out.Operand())
	for w.Next() {
		if err := out.Store(w.Offset(0), f(w.Index())); err != nil {
			return nil, fmt.Errorf("fromfunction: %w", err)
		}
	}
	return out, nil
}

// Resize returns a new array of the given shape filled by cycling through
// the elements of a in row-major order. An empty a leaves the result zeroed.
func Resize(av any, shape ...int) (*array.Array, error) {
	a, err := array.AsArray(av)
	if err != nil {
		return nil, fmt.Errorf("resize: %w", err)
	}
	out, err := array.New(shape, a.Kind())
	if err != nil {
		return nil, fmt.Errorf("resize: %w", err)
	}
	src, err := array.Ravel(a)
	if err != nil {
		return nil, fmt.Errorf("resize: %w", err)
	}
	flat, err := array.Ravel(out)
	if err != nil {
		return nil, fmt.Errorf("resize: %w", err)
	}
	n, size := src.Size(), out.Size()
	if n == 0 {
		return out, nil
	}
	for pos := 0; pos < size; pos += n {
		m := min(n, size-pos)
		from, err := array.View(src, array.To(m))
		if err != nil {
			return nil, fmt.Errorf("resize: %w", err)
		}
		to, err := array.View(flat, array.Span(pos, pos+m, 1))
		if err != nil {
			return nil, fmt.Errorf("resize: %w", err)
		}
		if err := array.Copy(from, to); err != nil {
			return nil, fmt.Errorf("resize: %w", err)
		}
	}
	return out, nil
}
