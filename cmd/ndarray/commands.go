package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/born-ml/ndarray/fft"
	"github.com/born-ml/ndarray/ndarray"
	"github.com/spf13/cobra"
)

// NewFFTCmd transforms a power-of-two list of values.
func NewFFTCmd() *cobra.Command {
	var inverse bool
	cmd := &cobra.Command{
		Use:   "fft [--inverse] VALUE...",
		Short: "Fourier transform of a power-of-two length vector",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseValues(args, ndarray.Complex128)
			if err != nil {
				return err
			}
			dir := fft.Forward
			if inverse {
				dir = fft.Inverse
			}
			slog.Debug("fft", "direction", dir, "length", x.Len())
			out, err := fft.Transform(x, dir)
			if err != nil {
				return err
			}
			return renderVector(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().BoolVar(&inverse, "inverse", false, "Compute the inverse transform")
	return cmd
}

// NewCorrelateCmd cross-correlates two vectors separated by "--".
func NewCorrelateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "correlate [--mode valid|same|full] A... -- V...",
		Short: "FFT cross-correlation of two vectors",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCorrelation(cmd, args, fft.CrossCorrelate)
		},
	}
	cmd.Flags().String("mode", "valid", "Output window: valid, same or full")
	return cmd
}

// NewConvolveCmd convolves two vectors separated by "--".
func NewConvolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convolve [--mode valid|same|full] A... -- V...",
		Short: "FFT convolution of two vectors",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCorrelation(cmd, args, fft.Convolve)
		},
	}
	cmd.Flags().String("mode", "valid", "Output window: valid, same or full")
	return cmd
}

type correlation func(a, v any, mode fft.Mode) (*ndarray.Array, error)

func runCorrelation(cmd *cobra.Command, args []string, f correlation) error {
	dash := cmd.ArgsLenAtDash()
	if dash < 1 || dash >= len(args) {
		return errors.New("expected A... -- V...")
	}
	kind, err := kindFlag(cmd)
	if err != nil {
		return err
	}
	modeName, err := cmd.Flags().GetString("mode")
	if err != nil {
		return err
	}
	mode, err := fft.ParseMode(modeName)
	if err != nil {
		return err
	}
	a, err := parseValues(args[:dash], kind)
	if err != nil {
		return err
	}
	v, err := parseValues(args[dash:], kind)
	if err != nil {
		return err
	}
	slog.Debug("correlation", "kind", kind, "mode", mode, "len_a", a.Len(), "len_v", v.Len(),
		"padded", fft.NextPowerOfTwo(2*max(a.Len(), v.Len())))

	out, err := f(a, v, mode)
	if err != nil {
		return err
	}
	return renderVector(cmd.OutOrStdout(), out)
}

// NewReduceCmd applies a binary ufunc's reduce or accumulate form.
func NewReduceCmd() *cobra.Command {
	var (
		op         string
		axis       int
		shape      string
		accumulate bool
	)
	cmd := &cobra.Command{
		Use:   "reduce --op NAME [--axis N] [--shape R,C] VALUE...",
		Short: "Reduce values along an axis with a binary ufunc",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, ok := ndarray.LookupBinary(op)
			if !ok {
				return fmt.Errorf("unknown ufunc %q (have %v)", op, ndarray.BinaryNames())
			}
			kind, err := kindFlag(cmd)
			if err != nil {
				return err
			}
			a, err := parseValues(args, kind)
			if err != nil {
				return err
			}
			dims, err := parseShape(shape)
			if err != nil {
				return err
			}
			if dims != nil {
				if a, err = ndarray.Reshape(a, dims...); err != nil {
					return err
				}
			}
			slog.Debug("reduce", "op", op, "kind", kind, "shape", a.Shape(), "axis", axis, "accumulate", accumulate)

			var out *ndarray.Array
			if accumulate {
				out, err = u.Accumulate(a, axis)
			} else {
				out, err = u.Reduce(a, axis)
			}
			if err != nil {
				return err
			}
			return renderArray(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVar(&op, "op", "add", "Binary ufunc name")
	cmd.Flags().IntVar(&axis, "axis", 0, "Axis to reduce (negative counts from the end)")
	cmd.Flags().StringVar(&shape, "shape", "", "Comma-separated shape for the values")
	cmd.Flags().BoolVar(&accumulate, "accumulate", false, "Keep every intermediate result")
	return cmd
}
