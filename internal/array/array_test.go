package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func arange(t *testing.T, n int, shape ...int) *Array {
	t.Helper()
	data := make([]int64, n)
	for i := range data {
		data[i] = int64(i)
	}
	if len(shape) == 0 {
		shape = []int{n}
	}
	a, err := FromSlice(data, Shape(shape))
	require.NoError(t, err)
	return a
}

func TestNew(t *testing.T) {
	a, err := New(Shape{2, 3}, Float64)
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 3}, a.Shape())
	assert.Equal(t, []int{3, 1}, a.Strides())
	assert.True(t, a.IsContiguous())
	assert.Equal(t, 6, a.Size())
	assert.Equal(t, []float64{0, 0, 0, 0, 0, 0}, Values[float64](a))

	_, err = New(Shape{2, -1}, Float64)
	assert.ErrorIs(t, err, ErrShape)

	_, err = New(Shape{2}, Kind(42))
	assert.ErrorIs(t, err, ErrUnsupportedKind)
}

func TestFullAndOnes(t *testing.T) {
	a, err := Full(Shape{3}, Int16, 2.9)
	require.NoError(t, err)
	assert.Equal(t, []int16{2, 2, 2}, Values[int16](a))

	o, err := Ones(Shape{2}, Complex128)
	require.NoError(t, err)
	assert.Equal(t, []complex128{1, 1}, Values[complex128](o))

	g, err := Zeros(Shape{2}, Generic)
	require.NoError(t, err)
	assert.Equal(t, []any{int64(0), int64(0)}, g.Objects())
}

func TestFromSlice(t *testing.T) {
	a, err := FromSlice([]float32{1, 2, 3, 4}, Shape{2, 2})
	require.NoError(t, err)
	assert.Equal(t, Float32, a.Kind())

	_, err = FromSlice([]float32{1, 2, 3}, Shape{2, 2})
	assert.ErrorIs(t, err, ErrShape)

	s, err := FromSlice([]string{"a", "b"}, Shape{2})
	require.NoError(t, err)
	assert.Equal(t, Generic, s.Kind())
	assert.Equal(t, []any{"a", "b"}, s.Objects())

	n, err := FromSlice([]int{4, -5}, Shape{2})
	require.NoError(t, err)
	assert.Equal(t, Int64, n.Kind())
	assert.Equal(t, []int64{4, -5}, Values[int64](n))

	b, err := FromSlice([]bool{true, false}, Shape{2})
	require.NoError(t, err)
	assert.Equal(t, Int8, b.Kind())
	assert.Equal(t, []int8{1, 0}, Values[int8](b))
}

func TestFromSlice_Copies(t *testing.T) {
	data := []int32{1, 2, 3}
	a, err := FromSlice(data, Shape{3})
	require.NoError(t, err)
	data[0] = 9
	v, err := a.At(0)
	require.NoError(t, err)
	assert.Equal(t, int32(1), v)
}

func TestAtSetAt(t *testing.T) {
	a := arange(t, 6, 2, 3)

	v, err := a.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), v)

	v, err = a.At(-1, -3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), v)

	_, err = a.At(2, 0)
	assert.ErrorIs(t, err, ErrIndex)
	_, err = a.At(0)
	assert.ErrorIs(t, err, ErrIndex)

	require.NoError(t, a.SetAt(7.9, 0, 1))
	v, err = a.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(7), v)

	assert.ErrorIs(t, a.SetAt("x", 0, 0), ErrUnsupportedKind)
}

func TestItem(t *testing.T) {
	s, err := Scalar(2.5)
	require.NoError(t, err)
	assert.True(t, s.IsScalar())
	assert.Equal(t, 1, s.Size())
	v, err := s.Item()
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)

	_, err = arange(t, 3).Item()
	assert.ErrorIs(t, err, ErrShape)
}

func TestGet(t *testing.T) {
	m := arange(t, 6, 2, 3)

	row, err := m.Get(1)
	require.NoError(t, err)
	sub, ok := row.(*Array)
	require.True(t, ok)
	assert.Equal(t, Shape{3}, sub.Shape())
	assert.True(t, sub.SharesBuffer(m))
	assert.Equal(t, []int64{3, 4, 5}, Values[int64](sub))

	x, err := sub.Get(-1)
	require.NoError(t, err)
	assert.Equal(t, int64(5), x)

	_, err = m.Get(2)
	assert.ErrorIs(t, err, ErrIndex)
}

func TestScalarKinds(t *testing.T) {
	a, err := Scalar(3)
	require.NoError(t, err)
	assert.Equal(t, Int64, a.Kind())

	b, err := Scalar(true)
	require.NoError(t, err)
	assert.Equal(t, Int8, b.Kind())

	c, err := Scalar("hello")
	require.NoError(t, err)
	assert.Equal(t, Generic, c.Kind())
	v, err := c.Item()
	require.NoError(t, err)
	assert.Equal(t, "hello", v)
}

func TestConvertScalar(t *testing.T) {
	v, err := ConvertScalar(-2.7, Int32)
	require.NoError(t, err)
	assert.Equal(t, int32(-2), v)

	v, err = ConvertScalar(3+4i, Float64)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	v, err = ConvertScalar(int8(5), Complex64)
	require.NoError(t, err)
	assert.Equal(t, complex64(5), v)

	v, err = ConvertScalar(int64(300), Int8)
	require.NoError(t, err)
	assert.Equal(t, int8(44), v)

	_, err = ConvertScalar(struct{}{}, Float64)
	assert.ErrorIs(t, err, ErrUnsupportedKind)
}

func TestTruth(t *testing.T) {
	assert.False(t, Truth(0))
	assert.False(t, Truth(0.0))
	assert.False(t, Truth(complex64(0)))
	assert.False(t, Truth(nil))
	assert.True(t, Truth(int8(-1)))
	assert.True(t, Truth(1i))
	assert.True(t, Truth("x"))
}

func TestWalker(t *testing.T) {
	t.Run("transposed", func(t *testing.T) {
		w := Walk(Shape{3, 2}, Operand{Offset: 0, Strides: []int{1, 3}})
		var got []int
		for w.Next() {
			got = append(got, w.Offset(0))
		}
		assert.Equal(t, []int{0, 3, 1, 4, 2, 5}, got)
	})

	t.Run("scalar", func(t *testing.T) {
		w := Walk(Shape{}, Operand{Offset: 4})
		n := 0
		for w.Next() {
			assert.Equal(t, 4, w.Offset(0))
			n++
		}
		assert.Equal(t, 1, n)
	})

	t.Run("empty", func(t *testing.T) {
		w := Walk(Shape{3, 0}, Operand{Strides: []int{0, 1}})
		assert.False(t, w.Next())
	})

	t.Run("broadcast and reversed", func(t *testing.T) {
		w := Walk(Shape{2, 3},
			Operand{Offset: 2, Strides: []int{0, -1}},
			Operand{Offset: 0, Strides: []int{3, 1}})
		var a, b []int
		for w.Next() {
			a = append(a, w.Offset(0))
			b = append(b, w.Offset(1))
		}
		assert.Equal(t, []int{2, 1, 0, 2, 1, 0}, a)
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, b)
	})
}

func TestNewView(t *testing.T) {
	a := arange(t, 6)
	v, err := a.NewView(Shape{3}, []int{-2}, 5)
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 3, 1}, Values[int64](v))

	_, err = a.NewView(Shape{4}, []int{2}, 0)
	assert.ErrorIs(t, err, ErrIndex)
}

func TestEmptyViews(t *testing.T) {
	z, err := New(Shape{0, 3}, Int32)
	require.NoError(t, err)
	tr, err := Transpose(z)
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 0}, tr.Shape())

	row, err := tr.Index(2)
	require.NoError(t, err)
	assert.Equal(t, 0, row.Offset())
	assert.Empty(t, Values[int32](row))
	assert.Empty(t, row.Objects())

	raw, err := row.Bytes()
	require.NoError(t, err)
	assert.Empty(t, raw)

	moved, err := MoveAxis(z, 0, -1)
	require.NoError(t, err)
	sub, err := moved.Index(1)
	require.NoError(t, err)
	assert.Equal(t, 0, sub.Offset())
	assert.Empty(t, Values[int32](Clone(sub)))

	tail, err := View(arange(t, 4), From(4))
	require.NoError(t, err)
	assert.Equal(t, 0, tail.Size())
	assert.Empty(t, Values[int64](tail))
}
