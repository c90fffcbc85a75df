package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/born-ml/ndarray/ndarray"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "ndarray",
		Short:         "N-dimensional array toolkit",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(newLogger(cmd.ErrOrStderr(), level))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().String("kind", "d", "Element kind: a code (1 s i l f d F D) or a name (float64, ...)")

	root.AddCommand(
		NewFFTCmd(),
		NewCorrelateCmd(),
		NewConvolveCmd(),
		NewReduceCmd(),
		NewSaveCmd(),
		NewLoadCmd(),
		NewVersionCmd(),
	)
	return root
}

// NewVersionCmd prints the tool version.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ndarray %s\n", version)
		},
	}
}

// kindFlag resolves the --kind flag.
func kindFlag(cmd *cobra.Command) (ndarray.Kind, error) {
	s, err := cmd.Flags().GetString("kind")
	if err != nil {
		return 0, err
	}
	if len(s) == 1 {
		return ndarray.ParseKind(s[0])
	}
	for _, k := range []ndarray.Kind{
		ndarray.Int8, ndarray.Int16, ndarray.Int32, ndarray.Int64,
		ndarray.Float32, ndarray.Float64, ndarray.Complex64, ndarray.Complex128,
	} {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown kind %q", s)
}

// parseValues parses numbers (complex literals such as 1+2i allowed) into a
// 1-D array of kind.
func parseValues(args []string, kind ndarray.Kind) (*ndarray.Array, error) {
	values := make([]complex128, len(args))
	for i, s := range args {
		c, err := strconv.ParseComplex(s, 128)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		values[i] = c
	}
	a, err := ndarray.FromSlice(values, ndarray.Shape{len(values)})
	if err != nil {
		return nil, err
	}
	return ndarray.AsType(a, kind)
}

// parseShape parses a comma-separated shape such as "2,3" or "-1,4".
func parseShape(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	shape := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("shape %q: %w", s, err)
		}
		shape[i] = n
	}
	return shape, nil
}
