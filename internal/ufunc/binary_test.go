package ufunc

import (
	"math"
	"testing"

	"github.com/born-ml/ndarray/internal/array"
	"github.com/born-ml/ndarray/internal/parallel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustArray(t *testing.T, v any) *array.Array {
	t.Helper()
	a, err := array.FromSequence(v)
	require.NoError(t, err)
	return a
}

func mustReshape(t *testing.T, a *array.Array, shape ...int) *array.Array {
	t.Helper()
	r, err := array.Reshape(a, shape...)
	require.NoError(t, err)
	return r
}

func item(t *testing.T, a *array.Array) any {
	t.Helper()
	v, err := a.Item()
	require.NoError(t, err)
	return v
}

func TestAdd_Promotion(t *testing.T) {
	a := mustArray(t, []int8{1, 2, 3})
	b := mustArray(t, []float32{0.5, 0.5, 0.5})

	got, err := Add.Call(a, b)
	require.NoError(t, err)
	assert.Equal(t, array.Float32, got.Kind())
	assert.Equal(t, []float32{1.5, 2.5, 3.5}, array.Values[float32](got))

	c, err := Add.Call(a, 1i)
	require.NoError(t, err)
	assert.Equal(t, array.Complex128, c.Kind())
	assert.Equal(t, []complex128{1 + 1i, 2 + 1i, 3 + 1i}, array.Values[complex128](c))
}

func TestAdd_Broadcast(t *testing.T) {
	a, err := array.Zeros(array.Shape{3, 1}, array.Float64)
	require.NoError(t, err)
	b, err := array.Zeros(array.Shape{1, 4}, array.Float64)
	require.NoError(t, err)

	got, err := Add.Call(a, b)
	require.NoError(t, err)
	assert.Equal(t, array.Shape{3, 4}, got.Shape())

	c, err := array.Zeros(array.Shape{3, 2}, array.Float64)
	require.NoError(t, err)
	_, err = Add.Call(c, b)
	assert.ErrorIs(t, err, array.ErrShape)

	col := mustReshape(t, mustArray(t, []int64{0, 10, 20}), 3, 1)
	row := mustArray(t, []int64{1, 2})
	sum, err := Add.Call(col, row)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 11, 12, 21, 22}, array.Values[int64](sum))
}

func TestAdd_ScalarResult(t *testing.T) {
	got, err := Add.Call(1, 2)
	require.NoError(t, err)
	assert.True(t, got.IsScalar())
	assert.Equal(t, int64(3), item(t, got))
}

func TestFloat64FastPathMatchesLoop(t *testing.T) {
	a := mustArray(t, []float64{1, 2, 3, 4})
	b := mustArray(t, []float64{4, 3, 2, 1})
	rev, err := array.View(b, array.Reverse())
	require.NoError(t, err)

	fast, err := Divide.Call(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.25, 2.0 / 3.0, 1.5, 4}, array.Values[float64](fast))

	strided, err := Multiply.Call(a, rev)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 4, 9, 16}, array.Values[float64](strided))
}

func TestDivide(t *testing.T) {
	got, err := Divide.Call([]int64{-7, 7}, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{-3, 3}, array.Values[int64](got))

	_, err = Divide.Call([]int32{1, 2}, []int32{1, 0})
	assert.ErrorIs(t, err, array.ErrDivideByZero)

	f, err := Divide.Call(1.0, 0.0)
	require.NoError(t, err)
	assert.True(t, math.IsInf(item(t, f).(float64), 1))
}

func TestRemainder(t *testing.T) {
	got, err := Remainder.Call([]int16{-7, 7}, int16(3))
	require.NoError(t, err)
	assert.Equal(t, []int16{-1, 1}, array.Values[int16](got))

	f, err := Remainder.Call(-7.5, 2.0)
	require.NoError(t, err)
	assert.Equal(t, -1.5, item(t, f))

	c, err := Remainder.Call(7+0i, 2+0i)
	require.NoError(t, err)
	assert.Equal(t, 1+0i, item(t, c))

	_, err = Remainder.Call(1, 0)
	assert.ErrorIs(t, err, array.ErrDivideByZero)
}

func TestPower(t *testing.T) {
	got, err := Power.Call([]int8{2, -3, 1}, []int8{6, 3, 100})
	require.NoError(t, err)
	assert.Equal(t, []int8{64, -27, 1}, array.Values[int8](got))

	_, err = Power.Call(int8(2), int8(7))
	assert.ErrorIs(t, err, array.ErrOverflow)

	_, err = Power.Call(int64(3), int64(40))
	assert.ErrorIs(t, err, array.ErrOverflow)

	_, err = Power.Call(2, -1)
	assert.ErrorIs(t, err, array.ErrValue)

	f, err := Power.Call(2.0, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, item(t, f), 1e-15)

	c, err := Power.Call(1i, 2+0i)
	require.NoError(t, err)
	z := item(t, c).(complex128)
	assert.InDelta(t, -1, real(z), 1e-12)
	assert.InDelta(t, 0, imag(z), 1e-12)
}

func TestMaximumMinimum(t *testing.T) {
	got, err := Maximum.Call([]float64{1, math.NaN(), 5}, []float64{3, 2, math.NaN()})
	require.NoError(t, err)
	v := array.Values[float64](got)
	assert.Equal(t, 3.0, v[0])
	assert.True(t, math.IsNaN(v[1]))
	assert.True(t, math.IsNaN(v[2]))

	m, err := Minimum.Call([]int32{4, -2}, int32(0))
	require.NoError(t, err)
	assert.Equal(t, []int32{0, -2}, array.Values[int32](m))

	_, err = Maximum.Call(1i, 2i)
	assert.ErrorIs(t, err, array.ErrUnsupportedKind)
}

func TestComparisons(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{3, 2, 1}
	tests := []struct {
		u    *Binary
		want []int64
	}{
		{Equal, []int64{0, 1, 0}},
		{NotEqual, []int64{1, 0, 1}},
		{Less, []int64{1, 0, 0}},
		{LessEqual, []int64{1, 1, 0}},
		{Greater, []int64{0, 0, 1}},
		{GreaterEqual, []int64{0, 1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.u.Name(), func(t *testing.T) {
			got, err := tt.u.Call(a, b)
			require.NoError(t, err)
			assert.Equal(t, array.IntKind, got.Kind())
			assert.Equal(t, tt.want, array.Values[int64](got))
		})
	}

	eq, err := Equal.Call(1+2i, 1+2i)
	require.NoError(t, err)
	assert.Equal(t, int64(1), item(t, eq))

	for _, u := range []*Binary{Less, LessEqual, Greater, GreaterEqual} {
		_, err := u.Call(1i, 2i)
		assert.ErrorIs(t, err, array.ErrUnsupportedKind, u.Name())
	}
}

func TestLogicalAndBitwise(t *testing.T) {
	a := []int64{0, 0, 3, 5}
	b := []int64{0, 2, 0, -1}

	and, err := LogicalAnd.Call(a, b)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 0, 0, 1}, array.Values[int64](and))

	or, err := LogicalOr.Call(a, b)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 1, 1}, array.Values[int64](or))

	xor, err := LogicalXor.Call(a, b)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 1, 0}, array.Values[int64](xor))

	band, err := BitwiseAnd.Call([]int8{6, -1}, int8(3))
	require.NoError(t, err)
	assert.Equal(t, []int8{2, 3}, array.Values[int8](band))

	bor, err := BitwiseOr.Call(int16(4), int16(1))
	require.NoError(t, err)
	assert.Equal(t, int16(5), item(t, bor))

	bxor, err := BitwiseXor.Call(int32(6), int32(3))
	require.NoError(t, err)
	assert.Equal(t, int32(5), item(t, bxor))

	_, err = BitwiseAnd.Call(1.5, 2.0)
	assert.ErrorIs(t, err, array.ErrUnsupportedKind)
}

func TestCallInto(t *testing.T) {
	out, err := array.Zeros(array.Shape{3}, array.Float64)
	require.NoError(t, err)

	got, err := Add.CallInto([]float64{1, 2, 3}, 1.0, out)
	require.NoError(t, err)
	assert.Same(t, out, got)
	assert.Equal(t, []float64{2, 3, 4}, array.Values[float64](out))

	wrongKind, err := array.Zeros(array.Shape{3}, array.Float32)
	require.NoError(t, err)
	_, err = Add.CallInto([]float64{1, 2, 3}, 1.0, wrongKind)
	assert.ErrorIs(t, err, array.ErrValue)

	wrongShape, err := array.Zeros(array.Shape{2}, array.Float64)
	require.NoError(t, err)
	_, err = Add.CallInto([]float64{1, 2, 3}, 1.0, wrongShape)
	assert.ErrorIs(t, err, array.ErrShape)
}

func TestCallInto_Aliased(t *testing.T) {
	a := mustArray(t, []int64{1, 2, 3})
	rev, err := array.View(a, array.Reverse())
	require.NoError(t, err)

	_, err = Add.CallInto(a, rev, a)
	require.NoError(t, err)
	assert.Equal(t, []int64{4, 4, 4}, array.Values[int64](a))
}

func TestGenericKind(t *testing.T) {
	objects := mustArray(t, []any{1, 2.5})
	require.Equal(t, array.Float64, objects.Kind())

	g, err := array.FromSequenceKind([]any{1, 2.5}, array.Generic)
	require.NoError(t, err)

	sum, err := Add.Call(g, []int{1, 1})
	require.NoError(t, err)
	assert.Equal(t, array.Generic, sum.Kind())
	assert.Equal(t, []any{int64(2), 3.5}, sum.Objects())

	words := mustArray(t, []string{"a", "b"})
	eq, err := Equal.Call(words, []string{"a", "c"})
	require.NoError(t, err)
	assert.Equal(t, array.IntKind, eq.Kind())
	assert.Equal(t, []int64{1, 0}, array.Values[int64](eq))

	_, err = Add.Call(words, words)
	assert.ErrorIs(t, err, array.ErrUnsupportedKind)

	and, err := LogicalAnd.Call(words, []any{"x", 0})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 0}, array.Values[int64](and))
}

func TestReduce(t *testing.T) {
	m := mustArray(t, [][]int64{{1, 2, 3}, {4, 5, 6}})

	cols, err := Add.Reduce(m, 0)
	require.NoError(t, err)
	assert.Equal(t, array.Shape{3}, cols.Shape())
	assert.Equal(t, []int64{5, 7, 9}, array.Values[int64](cols))

	rows, err := Add.Reduce(m, -1)
	require.NoError(t, err)
	assert.Equal(t, []int64{6, 15}, array.Values[int64](rows))

	prod, err := Multiply.Reduce(m, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{6, 120}, array.Values[int64](prod))

	mx, err := Maximum.Reduce([]float64{3, 9, 1}, 0)
	require.NoError(t, err)
	assert.True(t, mx.IsScalar())
	assert.Equal(t, 9.0, item(t, mx))

	diff, err := Subtract.Reduce([]int64{10, 1, 2}, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(-13), item(t, diff))

	_, err = Add.Reduce(m, 2)
	assert.ErrorIs(t, err, array.ErrIndex)

	_, err = Maximum.Reduce([]complex128{1, 2}, 0)
	assert.ErrorIs(t, err, array.ErrUnsupportedKind)
}

func TestReduce_LeftFold(t *testing.T) {
	a := mustArray(t, [][][]float64{
		{{1, 2}, {3, 4}, {5, 6}},
		{{7, 8}, {9, 10}, {11, 12}},
	})
	got, err := Add.Reduce(a, 1)
	require.NoError(t, err)
	assert.Equal(t, array.Shape{2, 2}, got.Shape())
	assert.Equal(t, []float64{9, 12, 27, 30}, array.Values[float64](got))
}

func TestReduce_EmptyAxis(t *testing.T) {
	empty, err := array.Zeros(array.Shape{0, 3}, array.Float32)
	require.NoError(t, err)

	sum, err := Add.Reduce(empty, 0)
	require.NoError(t, err)
	assert.Equal(t, array.Shape{3}, sum.Shape())
	assert.Equal(t, []float32{0, 0, 0}, array.Values[float32](sum))

	prod, err := Multiply.Reduce(empty, 0)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 1, 1}, array.Values[float32](prod))

	rows, err := Add.Reduce(empty, 1)
	require.NoError(t, err)
	assert.Equal(t, array.Shape{0}, rows.Shape())

	_, err = Maximum.Reduce(empty, 0)
	assert.ErrorIs(t, err, array.ErrValue)
}

func TestReduce_EmptyViews(t *testing.T) {
	empty, err := array.Zeros(array.Shape{0, 3}, array.Int32)
	require.NoError(t, err)

	sums, err := Add.Reduce(empty, 1)
	require.NoError(t, err)
	assert.Equal(t, array.Shape{0}, sums.Shape())

	acc, err := Add.Accumulate(empty, 1)
	require.NoError(t, err)
	assert.Equal(t, array.Shape{0, 3}, acc.Shape())

	floats, err := array.Zeros(array.Shape{0, 3}, array.Float64)
	require.NoError(t, err)
	tr, err := array.Transpose(floats)
	require.NoError(t, err)
	row, err := tr.Index(2)
	require.NoError(t, err)
	got, err := Add.Call(row, row)
	require.NoError(t, err)
	assert.Equal(t, array.Shape{0}, got.Shape())
	assert.Empty(t, array.Values[float64](got))

	neg, err := Negative.Call(row)
	require.NoError(t, err)
	assert.Equal(t, 0, neg.Size())
}

func TestReduce_StepsFromIdentity(t *testing.T) {
	tests := []struct {
		name string
		u    *Binary
		in   any
		want any
	}{
		{"subtract", Subtract, []int64{5, 1, 1}, int64(-7)},
		{"divide int", Divide, []int64{8, 2}, int64(0)},
		{"divide float", Divide, []float64{2, 4}, 0.125},
		{"power", Power, []int64{2, 3}, int64(1)},
		{"remainder", Remainder, []int64{7, 3}, int64(1)},
		{"bitwise xor", BitwiseXor, []int32{6, 3}, int32(5)},
		{"maximum", Maximum, []int64{2, 9, 4}, int64(9)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.u.Reduce(tt.in, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.want, item(t, got))
		})
	}

	steps, err := Subtract.Accumulate([]int64{5, 1, 1}, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{-5, -6, -7}, array.Values[int64](steps))

	m := mustArray(t, [][]float64{{8, 2}, {4, 0.5}})
	cols, err := Divide.Reduce(m, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.03125, 1}, array.Values[float64](cols))

	none, err := Remainder.Reduce([]int64{}, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), item(t, none))
}

func TestReduce_PredicateKind(t *testing.T) {
	one, err := Equal.Reduce([]float64{2}, 0)
	require.NoError(t, err)
	assert.Equal(t, array.IntKind, one.Kind())
	assert.Equal(t, int64(2), item(t, one))

	two, err := Equal.Reduce([]float64{2, 2}, 0)
	require.NoError(t, err)
	assert.Equal(t, array.IntKind, two.Kind())
	assert.Equal(t, int64(1), item(t, two))
}

func TestReduce_Logical(t *testing.T) {
	all, err := LogicalAnd.Reduce([]float64{5, 3}, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), item(t, all))

	all, err = LogicalAnd.Reduce([]float64{5, 0, 2}, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), item(t, all))

	some, err := LogicalOr.Reduce([]int8{0, 7}, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), item(t, some))

	single, err := LogicalAnd.Reduce([]float64{0.5}, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), item(t, single))
}

func TestAccumulate(t *testing.T) {
	m := mustArray(t, [][]int32{{1, 2, 3}, {4, 5, 6}})

	rows, err := Add.Accumulate(m, 1)
	require.NoError(t, err)
	assert.Equal(t, m.Shape(), rows.Shape())
	assert.True(t, rows.IsContiguous())
	assert.Equal(t, []int32{1, 3, 6, 4, 9, 15}, array.Values[int32](rows))

	cols, err := Multiply.Accumulate(m, 0)
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 2, 3, 4, 10, 18}, array.Values[int32](cols))

	red, err := Add.Reduce(m, 1)
	require.NoError(t, err)
	last, err := array.View(rows, array.All(), array.Int(-1))
	require.NoError(t, err)
	assert.Equal(t, array.Values[int32](red), array.Values[int32](last))

	empty, err := array.Zeros(array.Shape{2, 0}, array.Float64)
	require.NoError(t, err)
	acc, err := Add.Accumulate(empty, 1)
	require.NoError(t, err)
	assert.Equal(t, array.Shape{2, 0}, acc.Shape())
}

func TestOuter(t *testing.T) {
	got, err := Subtract.Outer([]int64{1, 2, 3}, []int64{10, 20})
	require.NoError(t, err)
	assert.Equal(t, array.Shape{3, 2}, got.Shape())
	assert.Equal(t, []int64{-9, -19, -8, -18, -7, -17}, array.Values[int64](got))

	m := mustArray(t, [][]float64{{1, 2}, {3, 4}})
	prod, err := Multiply.Outer(m, []int8{1, 10, 100})
	require.NoError(t, err)
	assert.Equal(t, array.Shape{2, 2, 3}, prod.Shape())
	v, err := prod.At(1, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, 300.0, v)

	lt, err := Less.Outer([]int64{1, 2}, []int64{2})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 0}, array.Values[int64](lt))

	_, err = Divide.Outer([]int64{1}, []int64{0})
	assert.ErrorIs(t, err, array.ErrDivideByZero)
}

func TestOuter_Parallel(t *testing.T) {
	SetParallel(parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 2})
	t.Cleanup(func() { SetParallel(parallel.Config{}) })

	n := 64
	a := make([]int64, n)
	for i := range a {
		a[i] = int64(i)
	}
	got, err := Multiply.Outer(a, a)
	require.NoError(t, err)
	for i := 0; i < n; i += 7 {
		for j := 0; j < n; j += 5 {
			v, err := got.At(i, j)
			require.NoError(t, err)
			assert.Equal(t, int64(i*j), v)
		}
	}
}

func TestReduceAt(t *testing.T) {
	a := mustArray(t, []int64{0, 1, 2, 3, 4, 5, 6, 7})

	got, err := Add.ReduceAt(a, []int{0, 4, 6}, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{6, 9, 13}, array.Values[int64](got))

	back, err := Add.ReduceAt(a, []int{4, 1}, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 28}, array.Values[int64](back))

	_, err = Add.ReduceAt(a, []int{0, 8}, 0)
	assert.ErrorIs(t, err, array.ErrIndex)

	_, err = Maximum.ReduceAt(a, []int{3, 3}, 0)
	assert.ErrorIs(t, err, array.ErrValue)

	m := mustReshape(t, a, 2, 4)
	cols, err := Add.ReduceAt(m, []int{0, 2}, 1)
	require.NoError(t, err)
	assert.Equal(t, array.Shape{2, 2}, cols.Shape())
	assert.Equal(t, []int64{1, 5, 9, 13}, array.Values[int64](cols))
}

func TestRegistry(t *testing.T) {
	u, ok := LookupBinary("add")
	require.True(t, ok)
	assert.Same(t, Add, u)

	_, ok = LookupBinary("nope")
	assert.False(t, ok)
	assert.Len(t, BinaryNames(), 20)

	id, ok := Add.Identity()
	assert.True(t, ok)
	assert.Equal(t, int64(0), id)
	_, ok = Minimum.Identity()
	assert.False(t, ok)
}
