package fft

import (
	"fmt"
	"math"

	"github.com/born-ml/ndarray/internal/array"
	"github.com/born-ml/ndarray/internal/ufunc"
)

// Mode selects the output window of a correlation or convolution.
type Mode int

// Correlation modes, numbered as the callable front-end numbers them.
const (
	// Valid keeps the lags at which the shorter input lies entirely inside
	// the longer one: max(n, m) - min(n, m) + 1 values.
	Valid Mode = iota
	// Same keeps max(n, m) values centred on the full output.
	Same
	// Full keeps every lag with any overlap: n + m - 1 values.
	Full
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Valid:
		return "valid"
	case Same:
		return "same"
	case Full:
		return "full"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps "valid", "same" and "full" (or their numbers 0, 1, 2) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "valid", "0":
		return Valid, nil
	case "same", "1":
		return Same, nil
	case "full", "2":
		return Full, nil
	default:
		return 0, fmt.Errorf("%w: unknown correlation mode %q", array.ErrValue, s)
	}
}

// window returns the start and length of the mode's slice of the full output.
func (m Mode) window(n, k int) (start, length int, err error) {
	lo, hi := min(n, k), max(n, k)
	switch m {
	case Valid:
		return lo - 1, hi - lo + 1, nil
	case Same:
		return (lo - 1) / 2, hi, nil
	case Full:
		return 0, n + k - 1, nil
	default:
		return 0, 0, fmt.Errorf("%w: invalid correlation mode %d", array.ErrValue, int(m))
	}
}

// CrossCorrelate returns c[k] = sum over j of a[j+k-(len(v)-1)] * conj(v[j])
// for the lags selected by mode. It is computed with zero-padded FFTs of
// length NextPowerOfTwo(2*max(len(a), len(v))).
//
// The result has the common kind of a and v. Integer results are rounded
// half up.
//
// Example:
//
//	c, _ := fft.CrossCorrelate([]float64{1, 2, 3}, []float64{0, 1, 0.5}, fft.Full)
//	// [0.5 2 3.5 3 0]
func CrossCorrelate(av, vv any, mode Mode) (*array.Array, error) {
	a, v, err := operands(av, vv)
	if err != nil {
		return nil, fmt.Errorf("cross_correlate: %w", err)
	}
	out, err := correlate(a, v, mode)
	if err != nil {
		return nil, fmt.Errorf("cross_correlate: %w", err)
	}
	return out, nil
}

// Convolve returns the convolution sum over j of a[j] * v[k-j] for the lags
// selected by mode: the cross-correlation of a with v reversed and
// conjugated.
func Convolve(av, vv any, mode Mode) (*array.Array, error) {
	a, v, err := operands(av, vv)
	if err != nil {
		return nil, fmt.Errorf("convolve: %w", err)
	}
	rev, err := array.View(v, array.Reverse())
	if err != nil {
		return nil, fmt.Errorf("convolve: %w", err)
	}
	if rev.Kind().Category() == array.Complex {
		if rev, err = ufunc.Conjugate.Call(rev); err != nil {
			return nil, fmt.Errorf("convolve: %w", err)
		}
	}
	out, err := correlate(a, rev, mode)
	if err != nil {
		return nil, fmt.Errorf("convolve: %w", err)
	}
	return out, nil
}

func operands(av, vv any) (*array.Array, *array.Array, error) {
	a, err := array.AsArray(av)
	if err != nil {
		return nil, nil, err
	}
	v, err := array.AsArray(vv)
	if err != nil {
		return nil, nil, err
	}
	for _, x := range []*array.Array{a, v} {
		if x.Rank() != 1 {
			return nil, nil, fmt.Errorf("%w: need 1-D arrays, got shape %v", array.ErrShape, x.Shape())
		}
		if x.Len() == 0 {
			return nil, nil, fmt.Errorf("%w: empty input", array.ErrValue)
		}
	}
	if k := array.CommonType(a.Kind(), v.Kind()); k == array.Generic {
		return nil, nil, fmt.Errorf("%w: %s", array.ErrUnsupportedKind, k)
	}
	return a, v, nil
}

func correlate(a, v *array.Array, mode Mode) (*array.Array, error) {
	n, m := a.Len(), v.Len()
	start, length, err := mode.window(n, m)
	if err != nil {
		return nil, err
	}
	p := NextPowerOfTwo(2 * max(n, m))

	fa, err := paddedFFT(a, p)
	if err != nil {
		return nil, err
	}
	fv, err := paddedFFT(v, p)
	if err != nil {
		return nil, err
	}
	if fv, err = ufunc.Conjugate.Call(fv); err != nil {
		return nil, err
	}
	prod, err := ufunc.Multiply.Call(fa, fv)
	if err != nil {
		return nil, err
	}
	circ, err := InverseFFT(prod)
	if err != nil {
		return nil, err
	}

	// Circular lag L sits at index L mod p; full output index j is lag
	// j-(m-1). p >= n+m-1, so no lags alias.
	r := circ.AsComplex128()
	kind := array.CommonType(a.Kind(), v.Kind())
	out, err := array.New(array.Shape{length}, kind)
	if err != nil {
		return nil, err
	}
	for i := 0; i < length; i++ {
		lag := start + i - (m - 1)
		c := r[((lag%p)+p)%p]
		var x any = c
		switch kind.Category() {
		case array.Integer:
			x = math.Floor(real(c) + 0.5)
		case array.Floating:
			x = real(c)
		}
		if err := out.Store(i, x); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// paddedFFT transforms x zero-padded to length p.
func paddedFFT(x *array.Array, p int) (*array.Array, error) {
	padded, err := array.New(array.Shape{p}, array.Complex128)
	if err != nil {
		return nil, err
	}
	head, err := array.View(padded, array.To(x.Len()))
	if err != nil {
		return nil, err
	}
	if err := array.Copy(x, head); err != nil {
		return nil, err
	}
	return FFT(padded)
}
