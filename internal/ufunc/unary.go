package ufunc

import (
	"fmt"

	"github.com/born-ml/ndarray/internal/array"
)

// Call applies the ufunc elementwise into a fresh array. Integer inputs to
// transcendental and rounding functions are computed in Float64.
//
// Example:
//
//	roots, err := ufunc.Sqrt.Call([]float64{1, 4, 9})
func (u *Unary) Call(a any) (*array.Array, error) {
	return u.call(a, nil)
}

// CallInto is Call writing into out, which must already have a's shape and the
// result kind. out is returned.
func (u *Unary) CallInto(a any, out *array.Array) (*array.Array, error) {
	if out == nil {
		return nil, fmt.Errorf("%s: %w: nil output", u.name, array.ErrValue)
	}
	return u.call(a, out)
}

// ResultKind returns the kind produced for input kind k, or false when the
// ufunc does not support k.
func (u *Unary) ResultKind(k array.Kind) (array.Kind, bool) {
	if k == array.Generic {
		if u.predicate {
			return array.IntKind, true
		}
		return array.Generic, true
	}
	kern, _ := u.kernelFor(k)
	if kern == nil {
		return 0, false
	}
	return kern.result, true
}

// kernelFor returns the kernel serving input kind k and the kind the input
// must be converted to first.
func (u *Unary) kernelFor(k array.Kind) (*unaryKernel, array.Kind) {
	if !k.Valid() || k == array.Generic {
		return nil, k
	}
	if u.promote && k.Category() == array.Integer {
		return u.kernels[array.Float64], array.Float64
	}
	return u.kernels[k], k
}

func (u *Unary) call(av any, out *array.Array) (*array.Array, error) {
	a, err := array.AsArray(av)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", u.name, err)
	}
	result, ok := u.ResultKind(a.Kind())
	if !ok {
		return nil, fmt.Errorf("%s: %w: not defined for %s", u.name, array.ErrUnsupportedKind, a.Kind())
	}

	dst := out
	if out != nil {
		if err := checkOutput(out, a.Shape(), result); err != nil {
			return nil, fmt.Errorf("%s: %w", u.name, err)
		}
	}
	if out == nil || out.SharesBuffer(a) {
		if dst, err = array.New(a.Shape(), result); err != nil {
			return nil, fmt.Errorf("%s: %w", u.name, err)
		}
	}

	if a.Kind() == array.Generic {
		err = u.runObjects(a, dst)
	} else {
		kern, k := u.kernelFor(a.Kind())
		if a, err = coerce(a, k); err == nil {
			err = kern.loop(a, dst)
		}
	}
	if err != nil {
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

func (u *Unary) runObjects(a, out *array.Array) error {
	x := a.AsObjects()
	w := array.Walk(out.Shape(), a.Operand(), out.Operand())
	for w.Next() {
		r, err := u.objectScalar(x[w.Offset(0)])
		if err != nil {
			return err
		}
		if err := out.Store(w.Offset(1), r); err != nil {
			return err
		}
	}
	return nil
}

func (u *Unary) objectScalar(x any) (any, error) {
	xv, kx := array.Unbox(x)
	if kx == array.Generic {
		if u.object == nil {
			return nil, fmt.Errorf("%w: operand %T", array.ErrUnsupportedKind, x)
		}
		return u.object(x)
	}
	kern, k := u.kernelFor(kx)
	if kern == nil {
		return nil, fmt.Errorf("%w: not defined for %s", array.ErrUnsupportedKind, kx)
	}
	cx, err := array.ConvertScalar(xv, k)
	if err != nil {
		return nil, err
	}
	return kern.boxed(cx)
}
