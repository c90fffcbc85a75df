package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/born-ml/ndarray/ndarray"
	"github.com/olekukonko/tablewriter"
)

func newTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	return table
}

// renderVector prints a 1-D array as INDEX / VALUE rows, splitting complex
// values into REAL and IMAG columns.
func renderVector(w io.Writer, a *ndarray.Array) error {
	table := newTable(w)
	values := a.Objects()
	cplx := a.Kind() == ndarray.Complex64 || a.Kind() == ndarray.Complex128
	if cplx {
		table.SetHeader([]string{"INDEX", "REAL", "IMAG"})
	} else {
		table.SetHeader([]string{"INDEX", "VALUE"})
	}
	for i, v := range values {
		if cplx {
			c := toComplex(v)
			table.Append([]string{strconv.Itoa(i), formatFloat(real(c)), formatFloat(imag(c))})
		} else {
			table.Append([]string{strconv.Itoa(i), formatValue(v)})
		}
	}
	table.Render()
	return nil
}

// renderArray prints a scalar, a vector or the rows of a matrix. Higher ranks
// are flattened to their trailing axis.
func renderArray(w io.Writer, a *ndarray.Array) error {
	switch a.Rank() {
	case 0:
		v, err := a.Item()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, formatValue(v))
		return err
	case 1:
		return renderVector(w, a)
	}

	cols := a.Shape()[a.Rank()-1]
	m, err := ndarray.Reshape(a, -1, cols)
	if err != nil {
		return err
	}
	table := newTable(w)
	header := []string{"ROW"}
	for j := 0; j < cols; j++ {
		header = append(header, strconv.Itoa(j))
	}
	table.SetHeader(header)
	for i := 0; i < m.Len(); i++ {
		row, err := m.Index(i)
		if err != nil {
			return err
		}
		line := []string{strconv.Itoa(i)}
		for _, v := range row.Objects() {
			line = append(line, formatValue(v))
		}
		table.Append(line)
	}
	table.Render()
	return nil
}

func toComplex(v any) complex128 {
	switch c := v.(type) {
	case complex64:
		return complex128(c)
	case complex128:
		return c
	default:
		return 0
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', 10, 64)
}

func formatValue(v any) string {
	switch x := v.(type) {
	case float32:
		return strconv.FormatFloat(float64(x), 'g', 7, 32)
	case float64:
		return formatFloat(x)
	case complex64, complex128:
		c := toComplex(x)
		return strconv.FormatComplex(c, 'g', 10, 128)
	default:
		return fmt.Sprint(v)
	}
}
