package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsType(t *testing.T) {
	a, err := FromSlice([]float64{2.7, -2.7, 0.5}, Shape{3})
	require.NoError(t, err)

	i, err := AsType(a, Int8)
	require.NoError(t, err)
	assert.Equal(t, []int8{2, -2, 0}, Values[int8](i))

	c, err := AsType(a, Complex64)
	require.NoError(t, err)
	assert.Equal(t, []complex64{2.7, -2.7, 0.5}, Values[complex64](c))

	same, err := AsType(a, Float64)
	require.NoError(t, err)
	assert.False(t, same.SharesBuffer(a))

	g, err := AsType(a, Generic)
	require.NoError(t, err)
	assert.Equal(t, []any{2.7, -2.7, 0.5}, g.Objects())

	back, err := AsType(g, Int32)
	require.NoError(t, err)
	assert.Equal(t, []int32{2, -2, 0}, Values[int32](back))
}

func TestAsType_ComplexDropsImaginary(t *testing.T) {
	a, err := FromSlice([]complex128{1 + 2i, -3.5 - 1i}, Shape{2})
	require.NoError(t, err)
	f, err := AsType(a, Float32)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, -3.5}, Values[float32](f))
}

func TestAsType_GenericFailure(t *testing.T) {
	g, err := FromSlice([]string{"a"}, Shape{1})
	require.NoError(t, err)
	_, err = AsType(g, Float64)
	assert.ErrorIs(t, err, ErrUnsupportedKind)
}

func TestCopy(t *testing.T) {
	src := arange(t, 6, 2, 3)
	tr, err := Transpose(src)
	require.NoError(t, err)

	dst, err := New(Shape{3, 2}, Float32)
	require.NoError(t, err)
	require.NoError(t, Copy(tr, dst))
	assert.Equal(t, []float32{0, 3, 1, 4, 2, 5}, Values[float32](dst))

	assert.ErrorIs(t, Copy(src, dst), ErrShape)

	row := arange(t, 3)
	wide, err := BroadcastTo(row, Shape{2, 3})
	require.NoError(t, err)
	assert.ErrorIs(t, Copy(src, wide), ErrShape)

	require.NoError(t, Copy(wide, src))
	assert.Equal(t, []int64{0, 1, 2, 0, 1, 2}, Values[int64](src))
}

func TestCopy_Overlapping(t *testing.T) {
	a := arange(t, 5)
	src, err := View(a, Span(0, 4, 1))
	require.NoError(t, err)
	dst, err := View(a, Span(1, 5, 1))
	require.NoError(t, err)

	require.NoError(t, Copy(src, dst))
	assert.Equal(t, []int64{0, 0, 1, 2, 3}, Values[int64](a))

	rev, err := View(a, Reverse())
	require.NoError(t, err)
	require.NoError(t, Copy(rev, a))
	assert.Equal(t, []int64{3, 2, 1, 0, 0}, Values[int64](a))
}

func TestAsContiguous(t *testing.T) {
	a := arange(t, 4)
	same, err := AsContiguous(a)
	require.NoError(t, err)
	assert.Same(t, a, same)

	r, err := View(a, Reverse())
	require.NoError(t, err)
	c, err := AsContiguous(r)
	require.NoError(t, err)
	assert.True(t, c.IsContiguous())
	assert.Equal(t, []int64{3, 2, 1, 0}, Values[int64](c))
}

func TestRealImag(t *testing.T) {
	a, err := FromSlice([]complex64{1 + 2i, 3 - 4i}, Shape{2})
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 3}, Values[float32](Real(a)))
	assert.Equal(t, []float32{2, -4}, Values[float32](Imag(a)))

	r := arange(t, 2)
	assert.Same(t, r, Real(r))
	assert.Equal(t, []int64{0, 0}, Values[int64](Imag(r)))
}
