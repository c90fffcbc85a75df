package ops

import (
	"fmt"

	"github.com/born-ml/ndarray/internal/array"
	"github.com/born-ml/ndarray/internal/ufunc"
)

// Take gathers the slices of a at indices along axis. The result shape is
// a's shape with that axis replaced by the shape of indices.
//
// Example:
//
//	// m is 3x4
//	cols, _ := ops.Take(m, []int{3, 0}, 1) // 3x2
func Take(av, indices any, axis int) (*array.Array, error) {
	a, err := array.AsArray(av)
	if err != nil {
		return nil, fmt.Errorf("take: %w", err)
	}
	ind, err := toIndices(indices)
	if err != nil {
		return nil, fmt.Errorf("take: %w", err)
	}
	ax, err := array.NormalizeAxis(axis, a.Rank())
	if err != nil {
		return nil, fmt.Errorf("take: %w", err)
	}
	moved, err := array.MoveAxis(a, ax, 0)
	if err != nil {
		return nil, fmt.Errorf("take: %w", err)
	}

	picks := array.Values[int64](ind)
	rest := moved.Shape()[1:]
	out, err := array.New(append(array.Shape{len(picks)}, rest...), a.Kind())
	if err != nil {
		return nil, fmt.Errorf("take: %w", err)
	}
	for i, p := range picks {
		src, err := moved.Index(int(p))
		if err != nil {
			return nil, fmt.Errorf("take: %w", err)
		}
		dst, err := out.Index(i)
		if err != nil {
			return nil, fmt.Errorf("take: %w", err)
		}
		if err := array.Copy(src, dst); err != nil {
			return nil, fmt.Errorf("take: %w", err)
		}
	}

	// Split the gathered axis into the index shape, then put those axes
	// where the original axis was.
	r := ind.Rank()
	shaped, err := array.Reshape(out, append(ind.Shape().Clone(), rest...)...)
	if err != nil {
		return nil, fmt.Errorf("take: %w", err)
	}
	perm := make([]int, 0, shaped.Rank())
	for i := 0; i < ax; i++ {
		perm = append(perm, r+i)
	}
	for i := 0; i < r; i++ {
		perm = append(perm, i)
	}
	for i := r + ax; i < shaped.Rank(); i++ {
		perm = append(perm, i)
	}
	result, err := array.Transpose(shaped, perm...)
	if err != nil {
		return nil, fmt.Errorf("take: %w", err)
	}
	return array.AsContiguous(result)
}

// Repeat repeats each slice of a along axis. repeats is either one count for
// every slice or a sequence with one count per slice.
//
// Example:
//
//	r, _ := ops.Repeat([]int{1, 2, 3}, []int{2, 0, 1}, 0) // [1 1 3]
func Repeat(av, repeats any, axis int) (*array.Array, error) {
	a, err := array.AsArray(av)
	if err != nil {
		return nil, fmt.Errorf("repeat: %w", err)
	}
	ax, err := array.NormalizeAxis(axis, a.Rank())
	if err != nil {
		return nil, fmt.Errorf("repeat: %w", err)
	}
	moved, err := array.MoveAxis(a, ax, 0)
	if err != nil {
		return nil, fmt.Errorf("repeat: %w", err)
	}
	n := moved.Len()

	reps, err := toIndices(repeats)
	if err != nil {
		return nil, fmt.Errorf("repeat: %w", err)
	}
	if reps.IsScalar() {
		if reps, err = array.BroadcastTo(reps, array.Shape{n}); err != nil {
			return nil, fmt.Errorf("repeat: %w", err)
		}
	}
	counts := array.Values[int64](reps)
	if len(counts) != n || reps.Rank() != 1 {
		return nil, fmt.Errorf("repeat: %w: %d repeat counts for axis of length %d", array.ErrShape, len(counts), n)
	}
	total := 0
	for _, c := range counts {
		if c < 0 {
			return nil, fmt.Errorf("repeat: %w: negative repeat count %d", array.ErrValue, c)
		}
		total += int(c)
	}

	out, err := array.New(append(array.Shape{total}, moved.Shape()[1:]...), a.Kind())
	if err != nil {
		return nil, fmt.Errorf("repeat: %w", err)
	}
	pos := 0
	for i, c := range counts {
		if c == 0 {
			continue
		}
		src, err := moved.Index(i)
		if err != nil {
			return nil, fmt.Errorf("repeat: %w", err)
		}
		for j := 0; j < int(c); j++ {
			dst, err := out.Index(pos)
			if err != nil {
				return nil, fmt.Errorf("repeat: %w", err)
			}
			if err := array.Copy(src, dst); err != nil {
				return nil, fmt.Errorf("repeat: %w", err)
			}
			pos++
		}
	}
	result, err := fromFirst(out, ax)
	if err != nil {
		return nil, fmt.Errorf("repeat: %w", err)
	}
	return result, nil
}

// Concatenate joins arrays along axis. All arrays must have the same rank
// and agree on every other axis; the result has their common kind.
func Concatenate(values []any, axis int) (*array.Array, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("concatenate: %w: need at least one array", array.ErrValue)
	}
	arrays := make([]*array.Array, len(values))
	kinds := make([]array.Kind, len(values))
	for i, v := range values {
		a, err := array.AsArray(v)
		if err != nil {
			return nil, fmt.Errorf("concatenate: %w", err)
		}
		arrays[i], kinds[i] = a, a.Kind()
	}

	first := arrays[0]
	ax, err := array.NormalizeAxis(axis, first.Rank())
	if err != nil {
		return nil, fmt.Errorf("concatenate: %w", err)
	}
	shape := first.Shape().Clone()
	shape[ax] = 0
	for _, a := range arrays {
		if a.Rank() != first.Rank() {
			return nil, fmt.Errorf("concatenate: %w: rank %d does not match rank %d",
				array.ErrShape, a.Rank(), first.Rank())
		}
		for i, dim := range a.Shape() {
			if i != ax && dim != first.Shape()[i] {
				return nil, fmt.Errorf("concatenate: %w: shape %v does not match %v off axis %d",
					array.ErrShape, a.Shape(), first.Shape(), ax)
			}
		}
		shape[ax] += a.Shape()[ax]
	}

	out, err := array.New(shape, array.CommonTypeOf(kinds...))
	if err != nil {
		return nil, fmt.Errorf("concatenate: %w", err)
	}
	outMoved, err := array.MoveAxis(out, ax, 0)
	if err != nil {
		return nil, fmt.Errorf("concatenate: %w", err)
	}
	pos := 0
	for _, a := range arrays {
		src, err := array.MoveAxis(a, ax, 0)
		if err != nil {
			return nil, fmt.Errorf("concatenate: %w", err)
		}
		dst, err := array.View(outMoved, array.Span(pos, pos+src.Len(), 1))
		if err != nil {
			return nil, fmt.Errorf("concatenate: %w", err)
		}
		if err := array.Copy(src, dst); err != nil {
			return nil, fmt.Errorf("concatenate: %w", err)
		}
		pos += src.Len()
	}
	return out, nil
}

// Choose builds an array by picking, at every position, the element of
// choices[selector]. The selector and all choices broadcast together; the
// result has the choices' common kind.
func Choose(selector any, choices []any) (*array.Array, error) {
	sel, err := toIndices(selector)
	if err != nil {
		return nil, fmt.Errorf("choose: %w", err)
	}
	if len(choices) == 0 {
		return nil, fmt.Errorf("choose: %w: no choices", array.ErrValue)
	}
	all := make([]*array.Array, 0, len(choices)+1)
	all = append(all, sel)
	kinds := make([]array.Kind, len(choices))
	for i, c := range choices {
		a, err := array.AsArray(c)
		if err != nil {
			return nil, fmt.Errorf("choose: %w", err)
		}
		all = append(all, a)
		kinds[i] = a.Kind()
	}
	kind := array.CommonTypeOf(kinds...)
	for i := 1; i < len(all); i++ {
		if all[i].Kind() != kind {
			if all[i], err = array.AsType(all[i], kind); err != nil {
				return nil, fmt.Errorf("choose: %w", err)
			}
		}
	}
	if all, err = array.BroadcastArrays(all...); err != nil {
		return nil, fmt.Errorf("choose: %w", err)
	}

	out, err := array.New(all[0].Shape(), kind)
	if err != nil {
		return nil, fmt.Errorf("choose: %w", err)
	}
	operands := make([]array.Operand, 0, len(all)+1)
	operands = append(operands, out.Operand())
	for _, a := range all {
		operands = append(operands, a.Operand())
	}
	picks := array.Data[int64](sel)
	w := array.Walk(out.Shape(), operands...)
	for w.Next() {
		c := picks[w.Offset(1)]
		if c < 0 || int(c) >= len(choices) {
			return nil, fmt.Errorf("choose: %w: selector %d out of range for %d choices",
				array.ErrIndex, c, len(choices))
		}
		if err := out.Store(w.Offset(0), all[c+1].Load(w.Offset(int(c)+2))); err != nil {
			return nil, fmt.Errorf("choose: %w", err)
		}
	}
	return out, nil
}

// Where picks x where cond is non-zero and y elsewhere.
func Where(cond, x, y any) (*array.Array, error) {
	sel, err := ufunc.NotEqual.Call(cond, 0)
	if err != nil {
		return nil, fmt.Errorf("where: %w", err)
	}
	return Choose(sel, []any{y, x})
}

// Clip limits the elements of a to [lo, hi].
func Clip(a, lo, hi any) (*array.Array, error) {
	below, err := ufunc.Less.Call(a, lo)
	if err != nil {
		return nil, fmt.Errorf("clip: %w", err)
	}
	above, err := ufunc.Greater.Call(a, hi)
	if err != nil {
		return nil, fmt.Errorf("clip: %w", err)
	}
	if above, err = ufunc.Multiply.Call(above, int64(2)); err != nil {
		return nil, fmt.Errorf("clip: %w", err)
	}
	sel, err := ufunc.Add.Call(below, above)
	if err != nil {
		return nil, fmt.Errorf("clip: %w", err)
	}
	return Choose(sel, []any{a, lo, hi})
}

// Nonzero returns the positions of the non-zero elements of the 1-D array a.
func Nonzero(av any) (*array.Array, error) {
	a, err := array.AsArray(av)
	if err != nil {
		return nil, fmt.Errorf("nonzero: %w", err)
	}
	if a.Rank() != 1 {
		return nil, fmt.Errorf("nonzero: %w: need a 1-D array, got shape %v", array.ErrShape, a.Shape())
	}
	var idx []int64
	for i, v := range a.Objects() {
		if array.Truth(v) {
			idx = append(idx, int64(i))
		}
	}
	return array.FromSlice(idx, array.Shape{len(idx)})
}

// Compress keeps the slices of a along axis whose position is non-zero in
// the 1-D cond.
func Compress(cond, a any, axis int) (*array.Array, error) {
	idx, err := Nonzero(cond)
	if err != nil {
		return nil, fmt.Errorf("compress: %w", err)
	}
	return Take(a, idx, axis)
}
