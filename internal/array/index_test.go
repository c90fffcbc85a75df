package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliceIndices(t *testing.T) {
	tests := []struct {
		name           string
		s              Slice
		length         int
		start, n, step int
	}{
		{"all", All(), 10, 0, 10, 1},
		{"span", Span(2, 8, 2), 10, 2, 3, 2},
		{"negative bounds", Span(-3, -1, 1), 10, 7, 2, 1},
		{"clamped", Span(-100, 100, 1), 10, 0, 10, 1},
		{"from", From(7), 10, 7, 3, 1},
		{"to", To(3), 10, 0, 3, 1},
		{"reverse", Reverse(), 10, 9, 10, -1},
		{"negative step", Span(8, 2, -2), 10, 8, 3, -2},
		{"empty", Span(5, 2, 1), 10, 5, 0, 1},
		{"empty axis", All(), 0, 0, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, n, step, err := tt.s.Indices(tt.length)
			require.NoError(t, err)
			assert.Equal(t, tt.n, n)
			if n > 0 {
				assert.Equal(t, tt.start, start)
			}
			assert.Equal(t, tt.step, step)
		})
	}

	_, _, _, err := Slice{Start: 1, Stop: 3}.Indices(10)
	assert.ErrorIs(t, err, ErrIndex)
}

func TestView_Slices(t *testing.T) {
	a := arange(t, 10)

	v, err := View(a, Span(2, 8, 2))
	require.NoError(t, err)
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, []int64{2, 4, 6}, Values[int64](v))
	assert.True(t, v.SharesBuffer(a))

	r, err := View(a, Reverse())
	require.NoError(t, err)
	assert.Equal(t, []int64{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}, Values[int64](r))

	rr, err := View(r, Span(1, 4, 1))
	require.NoError(t, err)
	assert.Equal(t, []int64{8, 7, 6}, Values[int64](rr))
}

func TestView_Mixed(t *testing.T) {
	m := arange(t, 6, 2, 3)

	col, err := View(m, All(), Int(1))
	require.NoError(t, err)
	assert.Equal(t, Shape{2}, col.Shape())
	assert.Equal(t, []int64{1, 4}, Values[int64](col))

	row, err := View(m, Int(-1))
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 4, 5}, Values[int64](row))

	x, err := View(m, Int(1), Int(2))
	require.NoError(t, err)
	assert.True(t, x.IsScalar())
	v, err := x.Item()
	require.NoError(t, err)
	assert.Equal(t, int64(5), v)

	_, err = View(m, Int(2))
	assert.ErrorIs(t, err, ErrIndex)
	_, err = View(m, Int(0), Int(0), Int(0))
	assert.ErrorIs(t, err, ErrIndex)
}

func TestView_EllipsisAndNewAxis(t *testing.T) {
	a := arange(t, 24, 2, 3, 4)

	last, err := View(a, Ellipsis, Int(-1))
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 3}, last.Shape())
	assert.Equal(t, []int64{3, 7, 11, 15, 19, 23}, Values[int64](last))

	mid, err := View(a, Int(1), Ellipsis, Int(0))
	require.NoError(t, err)
	assert.Equal(t, Shape{3}, mid.Shape())
	assert.Equal(t, []int64{12, 16, 20}, Values[int64](mid))

	col, err := View(arange(t, 4), All(), NewAxis)
	require.NoError(t, err)
	assert.Equal(t, Shape{4, 1}, col.Shape())

	row, err := View(arange(t, 4), NewAxis)
	require.NoError(t, err)
	assert.Equal(t, Shape{1, 4}, row.Shape())

	_, err = View(a, Ellipsis, Ellipsis)
	assert.ErrorIs(t, err, ErrIndex)
}

func TestView_Aliasing(t *testing.T) {
	m := arange(t, 6, 2, 3)
	row, err := View(m, Int(0))
	require.NoError(t, err)
	require.NoError(t, row.SetAt(100, 1))

	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(100), v)
}

func TestAssign(t *testing.T) {
	m, err := Zeros(Shape{3, 3}, Float64)
	require.NoError(t, err)

	require.NoError(t, Assign(m, 7, All(), Int(1)))
	assert.Equal(t, []float64{0, 7, 0, 0, 7, 0, 0, 7, 0}, Values[float64](m))

	require.NoError(t, Assign(m, []int{1, 2, 3}, Int(2)))
	assert.Equal(t, []float64{0, 7, 0, 0, 7, 0, 1, 2, 3}, Values[float64](m))

	err = Assign(m, []int{1, 2}, Int(0))
	assert.ErrorIs(t, err, ErrShape)
}
