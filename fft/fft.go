// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package fft provides the radix-2 fast Fourier transform of 1-D arrays and
// FFT-based cross-correlation and convolution.
//
// Example:
//
//	spec, err := fft.FFT([]float64{1, 0, 0, 0})
//	back, err := fft.InverseFFT(spec)
//	c, err := fft.CrossCorrelate(a, v, fft.Same)
package fft

import (
	"github.com/born-ml/ndarray/internal/fft"
	"github.com/born-ml/ndarray/ndarray"
)

// Direction selects a forward or inverse transform.
type Direction = fft.Direction

// Transform directions.
const (
	Forward Direction = fft.Forward
	Inverse Direction = fft.Inverse
)

// Mode selects the output window of a correlation or convolution.
type Mode = fft.Mode

// Correlation modes.
const (
	Valid Mode = fft.Valid
	Same  Mode = fft.Same
	Full  Mode = fft.Full
)

// FFT returns the Complex128 transform of the 1-D array a, whose length must
// be a power of two.
func FFT(a any) (*ndarray.Array, error) {
	return fft.FFT(a)
}

// InverseFFT returns the inverse transform of a, scaled by 1/len(a).
func InverseFFT(a any) (*ndarray.Array, error) {
	return fft.InverseFFT(a)
}

// Transform runs the transform in direction dir.
func Transform(a any, dir Direction) (*ndarray.Array, error) {
	return fft.Transform(a, dir)
}

// CrossCorrelate returns the cross-correlation of a and v for the lags
// selected by mode.
func CrossCorrelate(a, v any, mode Mode) (*ndarray.Array, error) {
	return fft.CrossCorrelate(a, v, mode)
}

// Convolve returns the convolution of a and v for the lags selected by mode.
func Convolve(a, v any, mode Mode) (*ndarray.Array, error) {
	return fft.Convolve(a, v, mode)
}

// ParseMode maps "valid", "same" and "full" to their Mode.
func ParseMode(s string) (Mode, error) {
	return fft.ParseMode(s)
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return fft.IsPowerOfTwo(n)
}

// NextPowerOfTwo returns the smallest power of two >= n.
func NextPowerOfTwo(n int) int {
	return fft.NextPowerOfTwo(n)
}
