package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/born-ml/ndarray/ndarray"
	"github.com/spf13/cobra"
)

// NewSaveCmd stores a vector (optionally reshaped) in a .nda archive.
func NewSaveCmd() *cobra.Command {
	var (
		name     string
		shape    string
		appendTo bool
	)
	cmd := &cobra.Command{
		Use:   "save FILE --name NAME [--shape R,C] VALUE...",
		Short: "Store values as a named array in an archive",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := kindFlag(cmd)
			if err != nil {
				return err
			}
			a, err := parseValues(args[1:], kind)
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

			path := args[0]
			var entries []ndarray.Entry
			metadata := map[string]string{}
			if appendTo {
				archive, err := ndarray.Load(path)
				switch {
				case errors.Is(err, os.ErrNotExist):
				case err != nil:
					return err
				default:
					for _, n := range archive.Names() {
						if n == name {
							continue
						}
						prev, _ := archive.Get(n)
						entries = append(entries, ndarray.Entry{Name: n, Array: prev})
					}
					for k, v := range archive.Header.Metadata {
						metadata[k] = v
					}
				}
			}
			entries = append(entries, ndarray.Entry{Name: name, Array: a})
			slog.Debug("save", "path", path, "name", name, "kind", a.Kind(), "shape", a.Shape(), "arrays", len(entries))
			return ndarray.Save(path, entries, metadata)
		},
	}
	cmd.Flags().StringVar(&name, "name", "x", "Array name")
	cmd.Flags().StringVar(&shape, "shape", "", "Comma-separated shape for the values")
	cmd.Flags().BoolVar(&appendTo, "append", false, "Keep the arrays already stored in FILE")
	return cmd
}

// NewLoadCmd lists an archive or prints one of its arrays.
func NewLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load FILE [NAME]",
		Short: "List the arrays of an archive or print one of them",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			archive, err := ndarray.Load(args[0])
			if err != nil {
				return err
			}
			if len(args) == 2 {
				a, err := archive.Array(args[1])
				if err != nil {
					return err
				}
				return renderArray(cmd.OutOrStdout(), a)
			}

			table := newTable(cmd.OutOrStdout())
			table.SetHeader([]string{"NAME", "KIND", "SHAPE", "BYTES"})
			for _, m := range archive.Header.Arrays {
				kind := m.Kind
				if len(m.Kind) == 1 {
					if k, err := ndarray.ParseKind(m.Kind[0]); err == nil {
						kind = k.String()
					}
				}
				table.Append([]string{m.Name, kind, fmt.Sprint(m.Shape), strconv.FormatInt(m.Size, 10)})
			}
			table.Render()
			return nil
		},
	}
}
