// Package fft implements an iterative radix-2 Cooley-Tukey transform over
// 1-D arrays and the FFT-based cross-correlation and convolution built on it.
//
// Inputs of any numeric kind are copied into a contiguous Complex128 work
// array, so the caller's data is never modified. Lengths must be powers of
// two; the correlation functions pad internally and accept any length.
package fft

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/born-ml/ndarray/internal/array"
)

// Direction selects the sign of the twiddle angle.
type Direction int

// Transform directions.
const (
	Forward Direction = iota
	Inverse
)

// String returns the direction name.
func (d Direction) String() string {
	if d == Inverse {
		return "inverse"
	}
	return "forward"
}

// FFT returns the discrete Fourier transform of the 1-D array a as a new
// Complex128 array. len(a) must be a power of two.
//
// Example:
//
//	spec, err := fft.FFT([]float64{1, 0, 0, 0}) // [1 1 1 1]
func FFT(a any) (*array.Array, error) {
	return Transform(a, Forward)
}

// InverseFFT returns the inverse transform of a, scaled by 1/len(a), so that
// InverseFFT(FFT(x)) reproduces x.
func InverseFFT(a any) (*array.Array, error) {
	return Transform(a, Inverse)
}

// Transform runs the transform in the given direction.
func Transform(av any, dir Direction) (*array.Array, error) {
	a, err := array.AsArray(av)
	if err != nil {
		return nil, fmt.Errorf("fft: %w", err)
	}
	if a.Rank() != 1 {
		return nil, fmt.Errorf("fft: %w: need a 1-D array, got shape %v", array.ErrShape, a.Shape())
	}
	n := a.Len()
	if !IsPowerOfTwo(n) {
		return nil, fmt.Errorf("fft: %w: length %d is not a power of two", array.ErrValue, n)
	}
	if a.Kind() == array.Generic {
		return nil, fmt.Errorf("fft: %w: %s", array.ErrUnsupportedKind, a.Kind())
	}

	work, err := bitReversed(a)
	if err != nil {
		return nil, fmt.Errorf("fft: %w", err)
	}
	butterflies(work.AsComplex128(), dir)
	return work, nil
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// NextPowerOfTwo returns the smallest power of two >= n (1 for n <= 1).
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// bitReversed returns a fresh contiguous Complex128 copy of the 1-D array a
// with its elements in bit-reversed order. Splitting the axis into log2(n)
// binary axes and reversing them permutes index b(k-1)...b(0) into
// b(0)...b(k-1).
func bitReversed(a *array.Array) (*array.Array, error) {
	n := a.Len()
	if n == 1 {
		return array.AsType(a, array.Complex128)
	}
	levels := bits.TrailingZeros(uint(n))
	binary := make([]int, levels)
	for i := range binary {
		binary[i] = 2
	}
	split, err := array.Reshape(a, binary...)
	if err != nil {
		return nil, err
	}
	reversed, err := array.Transpose(split)
	if err != nil {
		return nil, err
	}
	work, err := array.AsType(reversed, array.Complex128)
	if err != nil {
		return nil, err
	}
	return array.Reshape(work, n)
}

// butterflies runs the log2(len(d)) combining passes in place over data that
// is already in bit-reversed order.
func butterflies(d []complex128, dir Direction) {
	n := len(d)
	sign := -1.0
	if dir == Inverse {
		sign = 1.0
	}
	twiddle := make([]complex128, n/2)
	for size := 2; size <= n; size <<= 1 {
		half := size / 2
		theta := sign * 2 * math.Pi / float64(size)
		for j := 0; j < half; j++ {
			s, c := math.Sincos(theta * float64(j))
			twiddle[j] = complex(c, s)
		}
		for start := 0; start < n; start += size {
			for j := 0; j < half; j++ {
				u := d[start+j]
				t := twiddle[j] * d[start+j+half]
				d[start+j] = u + t
				d[start+j+half] = u - t
			}
		}
	}
	if dir == Inverse {
		scale := complex(1/float64(n), 0)
		for i := range d {
			d[i] *= scale
		}
	}
}
