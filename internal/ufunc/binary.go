package ufunc

import (
	"fmt"

	"github.com/born-ml/ndarray/internal/array"
	"github.com/born-ml/ndarray/internal/parallel"
)

// Call applies the ufunc elementwise. Operands may be arrays, nested
// sequences, or Go scalars; they are promoted to their common kind and
// broadcast against each other.
//
// Example:
//
//	sum, err := ufunc.Add.Call(a, 1.5)
func (u *Binary) Call(a, b any) (*array.Array, error) {
	return u.call(a, b, nil)
}

// CallInto is Call writing into out, which must already have the broadcast
// shape and the result kind. out is returned.
//
// CallInto is not atomic: if an element fails (division by zero, overflow),
// out may be left partially written.
func (u *Binary) CallInto(a, b any, out *array.Array) (*array.Array, error) {
	if out == nil {
		return nil, fmt.Errorf("%s: %w: nil output", u.name, array.ErrValue)
	}
	return u.call(a, b, out)
}

func (u *Binary) call(av, bv any, out *array.Array) (*array.Array, error) {
	a, err := array.AsArray(av)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", u.name, err)
	}
	b, err := array.AsArray(bv)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", u.name, err)
	}

	k := array.CommonType(a.Kind(), b.Kind())
	if !u.Supports(k) {
		return nil, fmt.Errorf("%s: %w: not defined for %s operands", u.name, array.ErrUnsupportedKind, k)
	}
	if a, err = coerce(a, k); err != nil {
		return nil, fmt.Errorf("%s: %w", u.name, err)
	}
	if b, err = coerce(b, k); err != nil {
		return nil, fmt.Errorf("%s: %w", u.name, err)
	}
	if a, b, err = array.Broadcast(a, b); err != nil {
		return nil, fmt.Errorf("%s: %w", u.name, err)
	}

	result := u.ResultKind(k)
	dst := out
	if out != nil {
		if err := checkOutput(out, a.Shape(), result); err != nil {
			return nil, fmt.Errorf("%s: %w", u.name, err)
		}
	}
	if out == nil || out.SharesBuffer(a) || out.SharesBuffer(b) {
		if dst, err = array.New(a.Shape(), result); err != nil {
			return nil, fmt.Errorf("%s: %w", u.name, err)
		}
	}

	if err := u.run(k, a, b, dst); err != nil {
		return nil, fmt.Errorf("%s: %w", u.name, err)
	}
	if out != nil && dst != out {
		if err := array.Copy(dst, out); err != nil {
			return nil, fmt.Errorf("%s: %w", u.name, err)
		}
		return out, nil
	}
	return dst, nil
}

func coerce(a *array.Array, k array.Kind) (*array.Array, error) {
	if a.Kind() == k {
		return a, nil
	}
	return array.AsType(a, k)
}

func checkOutput(out *array.Array, shape array.Shape, kind array.Kind) error {
	if !out.Shape().Equal(shape) {
		return fmt.Errorf("%w: output shape %v, need %v", array.ErrShape, out.Shape(), shape)
	}
	if out.Kind() != kind {
		return fmt.Errorf("%w: output kind %s, need %s", array.ErrValue, out.Kind(), kind)
	}
	for i, dim := range out.Shape() {
		if dim > 1 && out.Strides()[i] == 0 {
			return fmt.Errorf("%w: output axis %d is a broadcast axis", array.ErrShape, i)
		}
	}
	return nil
}

// run dispatches the loop for compute kind k. a and b are of kind k and share
// out's shape.
func (u *Binary) run(k array.Kind, a, b, out *array.Array) error {
	if k == array.Generic {
		return u.runObjects(a, b, out)
	}
	if u.float64s != nil && k == array.Float64 && out.Kind() == array.Float64 &&
		a.IsContiguous() && b.IsContiguous() && out.IsContiguous() {
		n := out.Size()
		x, y, z := a.AsFloat64(), b.AsFloat64(), out.AsFloat64()
		u.float64s(z[out.Offset():out.Offset()+n], x[a.Offset():a.Offset()+n], y[b.Offset():b.Offset()+n])
		return nil
	}
	return u.kernels[k].loop(a, b, out)
}

// runObjects unboxes each pair of Generic elements, computes in their common
// numeric kind and stores the boxed result.
func (u *Binary) runObjects(a, b, out *array.Array) error {
	x, y := a.AsObjects(), b.AsObjects()
	w := array.Walk(out.Shape(), a.Operand(), b.Operand(), out.Operand())
	for w.Next() {
		r, err := u.objectScalar(x[w.Offset(0)], y[w.Offset(1)])
		if err != nil {
			return err
		}
		if err := out.Store(w.Offset(2), r); err != nil {
			return err
		}
	}
	return nil
}

func (u *Binary) objectScalar(x, y any) (any, error) {
	xv, kx := array.Unbox(x)
	yv, ky := array.Unbox(y)
	if kx == array.Generic || ky == array.Generic {
		if u.object == nil {
			return nil, fmt.Errorf("%w: operands %T and %T", array.ErrUnsupportedKind, x, y)
		}
		return u.object(x, y)
	}
	k := array.CommonType(kx, ky)
	kern := u.kernels[k]
	if kern == nil {
		return nil, fmt.Errorf("%w: not defined for %s operands", array.ErrUnsupportedKind, k)
	}
	cx, err := array.ConvertScalar(xv, k)
	if err != nil {
		return nil, err
	}
	cy, err := array.ConvertScalar(yv, k)
	if err != nil {
		return nil, err
	}
	return kern.boxed(cx, cy)
}

// ============================================================================
// Generalized forms
// ============================================================================

// Reduce folds a along axis (negative axes count from the end), removing the
// axis. The fold steps from the identity when the ufunc has one (see fold); a
// zero-length axis yields the identity broadcast to the remaining shape, or
// ErrValue if the ufunc has none.
//
// Example:
//
//	colSums, err := ufunc.Add.Reduce(m, 0)
func (u *Binary) Reduce(av any, axis int) (*array.Array, error) {
	a, ax, err := u.prepareAxis(av, axis, "reduce")
	if err != nil {
		return nil, err
	}
	moved, err := array.MoveAxis(a, ax, 0)
	if err != nil {
		return nil, fmt.Errorf("%s.reduce: %w", u.name, err)
	}
	if moved.Len() == 0 {
		out, err := u.identityArray(moved.Shape()[1:], u.ResultKind(a.Kind()))
		if err != nil {
			return nil, fmt.Errorf("%s.reduce: %w", u.name, err)
		}
		return out, nil
	}
	out, err := u.fold(moved, nil)
	if err != nil {
		return nil, fmt.Errorf("%s.reduce: %w", u.name, err)
	}
	return out, nil
}

// Accumulate is Reduce keeping every intermediate result; the output has a's
// shape and its last slice along axis equals Reduce(a, axis).
func (u *Binary) Accumulate(av any, axis int) (*array.Array, error) {
	a, ax, err := u.prepareAxis(av, axis, "accumulate")
	if err != nil {
		return nil, err
	}
	moved, err := array.MoveAxis(a, ax, 0)
	if err != nil {
		return nil, fmt.Errorf("%s.accumulate: %w", u.name, err)
	}
	out, err := array.New(moved.Shape(), u.ResultKind(a.Kind()))
	if err != nil {
		return nil, fmt.Errorf("%s.accumulate: %w", u.name, err)
	}
	if moved.Len() > 0 {
		_, err = u.fold(moved, func(i int, acc *array.Array) error {
			row, err := out.Index(i)
			if err != nil {
				return err
			}
			return array.Copy(acc, row)
		})
		if err != nil {
			return nil, fmt.Errorf("%s.accumulate: %w", u.name, err)
		}
	}
	return restoreAxis(out, ax)
}

// ReduceAt reduces the segments [indices[i], indices[i+1]) of axis, the last
// segment ending at the axis length. Every index must lie in [0, len(axis)).
// A segment whose end does not exceed its start reduces to the identity.
//
// Example:
//
//	// a = [0 1 2 3 4 5 6 7]
//	s, _ := ufunc.Add.ReduceAt(a, []int{0, 4, 6}, 0) // [6 9 13]
func (u *Binary) ReduceAt(av any, indices []int, axis int) (*array.Array, error) {
	a, ax, err := u.prepareAxis(av, axis, "reduceat")
	if err != nil {
		return nil, err
	}
	moved, err := array.MoveAxis(a, ax, 0)
	if err != nil {
		return nil, fmt.Errorf("%s.reduceat: %w", u.name, err)
	}
	n := moved.Len()
	for _, idx := range indices {
		if idx < 0 || idx >= n {
			return nil, fmt.Errorf("%s.reduceat: %w: index %d out of range for axis of length %d",
				u.name, array.ErrIndex, idx, n)
		}
	}

	rest := moved.Shape()[1:]
	shape := append(array.Shape{len(indices)}, rest...)
	out, err := array.New(shape, u.ResultKind(a.Kind()))
	if err != nil {
		return nil, fmt.Errorf("%s.reduceat: %w", u.name, err)
	}
	for i, lo := range indices {
		hi := n
		if i+1 < len(indices) {
			hi = indices[i+1]
		}
		var seg *array.Array
		if hi > lo {
			view, err := array.View(moved, array.Span(lo, hi, 1))
			if err != nil {
				return nil, fmt.Errorf("%s.reduceat: %w", u.name, err)
			}
			seg, err = u.fold(view, nil)
			if err != nil {
				return nil, fmt.Errorf("%s.reduceat: %w", u.name, err)
			}
		} else {
			if seg, err = u.identityArray(rest, out.Kind()); err != nil {
				return nil, fmt.Errorf("%s.reduceat: %w", u.name, err)
			}
		}
		row, err := out.Index(i)
		if err != nil {
			return nil, fmt.Errorf("%s.reduceat: %w", u.name, err)
		}
		if err := array.Copy(seg, row); err != nil {
			return nil, fmt.Errorf("%s.reduceat: %w", u.name, err)
		}
	}
	return restoreAxis(out, ax)
}

// Outer computes op(a[i], b[j]) for every pair of elements. The result shape is
// a's shape followed by b's shape. Rows are independent and may run on the
// workers configured with SetParallel.
func (u *Binary) Outer(av, bv any) (*array.Array, error) {
	a, err := array.AsArray(av)
	if err != nil {
		return nil, fmt.Errorf("%s.outer: %w", u.name, err)
	}
	b, err := array.AsArray(bv)
	if err != nil {
		return nil, fmt.Errorf("%s.outer: %w", u.name, err)
	}
	k := array.CommonType(a.Kind(), b.Kind())
	if !u.Supports(k) {
		return nil, fmt.Errorf("%s.outer: %w: not defined for %s operands", u.name, array.ErrUnsupportedKind, k)
	}

	fa, err := flatten(a, k)
	if err != nil {
		return nil, fmt.Errorf("%s.outer: %w", u.name, err)
	}
	fb, err := flatten(b, k)
	if err != nil {
		return nil, fmt.Errorf("%s.outer: %w", u.name, err)
	}
	m, n := fa.Size(), fb.Size()
	out, err := array.New(array.Shape{m, n}, u.ResultKind(k))
	if err != nil {
		return nil, fmt.Errorf("%s.outer: %w", u.name, err)
	}

	err = parallel.ForErr(m, func(i int) error {
		x, err := fa.Index(i)
		if err != nil {
			return err
		}
		xs, err := array.BroadcastTo(x, array.Shape{n})
		if err != nil {
			return err
		}
		row, err := out.Index(i)
		if err != nil {
			return err
		}
		return u.run(k, xs, fb, row)
	}, parallelConfig())
	if err != nil {
		return nil, fmt.Errorf("%s.outer: %w", u.name, err)
	}

	shape := append(a.Shape().Clone(), b.Shape()...)
	return array.Reshape(out, shape...)
}

func flatten(a *array.Array, k array.Kind) (*array.Array, error) {
	c, err := coerce(a, k)
	if err != nil {
		return nil, err
	}
	return array.Ravel(c)
}

func (u *Binary) prepareAxis(av any, axis int, form string) (*array.Array, int, error) {
	a, err := array.AsArray(av)
	if err != nil {
		return nil, 0, fmt.Errorf("%s.%s: %w", u.name, form, err)
	}
	if !u.Supports(a.Kind()) {
		return nil, 0, fmt.Errorf("%s.%s: %w: not defined for %s operands",
			u.name, form, array.ErrUnsupportedKind, a.Kind())
	}
	ax, err := array.NormalizeAxis(axis, a.Rank())
	if err != nil {
		return nil, 0, fmt.Errorf("%s.%s: %w", u.name, form, err)
	}
	return a, ax, nil
}

// fold reduces the leading axis of a, which must be non-empty, calling visit
// with the running result after every step.
//
// Ufuncs with an identity step from it over every element, so subtract on
// [1 2 3] is 0-1-2-3 = -6. Comparisons, and Generic arrays of the other
// non-logical ufuncs, step from the first element instead. Predicate results
// are always IntKind.
func (u *Binary) fold(a *array.Array, visit func(i int, acc *array.Array) error) (*array.Array, error) {
	k := a.Kind()
	seeded := u.identity != nil && (u.logical || (!u.predicate && k != array.Generic))

	var acc *array.Array
	start := 0
	if seeded {
		var err error
		if acc, err = u.identityArray(a.Shape()[1:], u.ResultKind(k)); err != nil {
			return nil, err
		}
	} else {
		first, err := a.Index(0)
		if err != nil {
			return nil, err
		}
		acc = array.Clone(first)
		if visit != nil {
			if err := visit(0, acc); err != nil {
				return nil, err
			}
		}
		start = 1
	}

	inPlace := !u.predicate
	for i := start; i < a.Len(); i++ {
		next, err := a.Index(i)
		if err != nil {
			return nil, err
		}
		if inPlace {
			err = u.run(k, acc, next, acc)
		} else {
			acc, err = u.call(acc, next, nil)
		}
		if err != nil {
			return nil, err
		}
		if visit != nil {
			if err := visit(i, acc); err != nil {
				return nil, err
			}
		}
	}
	if want := u.ResultKind(k); acc.Kind() != want {
		return array.AsType(acc, want)
	}
	return acc, nil
}

func (u *Binary) identityArray(shape array.Shape, kind array.Kind) (*array.Array, error) {
	if u.identity == nil {
		return nil, fmt.Errorf("%w: %s has no identity for an empty reduction", array.ErrValue, u.name)
	}
	return array.Full(shape, kind, u.identity)
}

// restoreAxis moves the leading axis back to position ax and returns a
// contiguous result.
func restoreAxis(out *array.Array, ax int) (*array.Array, error) {
	if ax == 0 {
		return out, nil
	}
	moved, err := array.MoveAxis(out, 0, ax)
	if err != nil {
		return nil, err
	}
	return array.AsContiguous(moved)
}
