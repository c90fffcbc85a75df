package array

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Copy writes every element of src into dst, converting to dst's kind.
// Shapes must match exactly; src may carry broadcast (stride 0) axes, dst may
// not. Narrowing conversions truncate like native Go conversions and Generic
// elements are boxed or unboxed.
//
// Copy is the single sink behind Assign, AsType, AsContiguous and ufunc
// results written into caller-supplied outputs. Overlapping src and dst are
// handled by staging src first.
func Copy(src, dst *Array) error {
	if !src.shape.Equal(dst.shape) {
		return fmt.Errorf("copy: %w: source shape %v does not match destination shape %v",
			ErrShape, src.shape, dst.shape)
	}
	for i, dim := range dst.shape {
		if dim > 1 && dst.strides[i] == 0 {
			return fmt.Errorf("copy: %w: destination axis %d is a broadcast axis", ErrShape, i)
		}
	}
	if dst.Size() == 0 {
		return nil
	}
	if src.SharesBuffer(dst) {
		if src.offset == dst.offset && src.kind == dst.kind && sameStrides(src, dst) {
			return nil
		}
		staged, err := New(src.shape, src.kind)
		if err != nil {
			return err
		}
		if err := copyStrided(src, staged); err != nil {
			return err
		}
		src = staged
	}
	if src.kind == dst.kind && src.contiguous && dst.contiguous {
		copyBulk(src, dst)
		return nil
	}
	return copyStrided(src, dst)
}

func sameStrides(a, b *Array) bool {
	for i := range a.strides {
		if a.strides[i] != b.strides[i] {
			return false
		}
	}
	return true
}

// AsType returns a fresh contiguous copy of a converted to kind. It never
// aliases a, even when the kind is unchanged.
func AsType(a *Array, kind Kind) (*Array, error) {
	out, err := New(a.shape, kind)
	if err != nil {
		return nil, fmt.Errorf("astype: %w", err)
	}
	if err := Copy(a, out); err != nil {
		return nil, fmt.Errorf("astype: %w", err)
	}
	return out, nil
}

// Clone returns a fresh contiguous copy of a.
func Clone(a *Array) *Array {
	out, err := AsType(a, a.kind)
	if err != nil {
		// a's own kind and shape are always valid.
		panic(err)
	}
	return out
}

// AsContiguous returns a itself when it is already contiguous, and a fresh
// contiguous copy otherwise.
func AsContiguous(a *Array) (*Array, error) {
	if a.contiguous {
		return a, nil
	}
	return AsType(a, a.kind)
}

// Real returns the real part of a. Complex arrays yield a fresh array of the
// matching floating kind; other arrays are returned unchanged.
func Real(a *Array) *Array {
	switch src := a.buf.data.(type) {
	case []complex64:
		return complexPart(a, src, Float32, false)
	case []complex128:
		return complexPart(a, src, Float64, false)
	default:
		return a
	}
}

// Imag returns the imaginary part of a. Non-complex arrays yield zeros of the
// same kind.
func Imag(a *Array) *Array {
	switch src := a.buf.data.(type) {
	case []complex64:
		return complexPart(a, src, Float32, true)
	case []complex128:
		return complexPart(a, src, Float64, true)
	default:
		out, _ := New(a.shape, a.kind)
		return out
	}
}

func complexPart[C constraints.Complex](a *Array, src []C, kind Kind, imaginary bool) *Array {
	out, _ := New(a.shape, kind)
	w := Walk(a.shape, a.Operand())
	i := 0
	for w.Next() {
		c := complex128(src[w.Offset(0)])
		x := real(c)
		if imaginary {
			x = imag(c)
		}
		if kind == Float32 {
			out.AsFloat32()[i] = float32(x)
		} else {
			out.AsFloat64()[i] = x
		}
		i++
	}
	return out
}

// ============================================================================
// Bulk and strided copy kernels
// ============================================================================

type realNumber interface {
	constraints.Integer | constraints.Float
}

func copyBulk(src, dst *Array) {
	n := src.Size()
	switch s := src.buf.data.(type) {
	case []int8:
		bulk(s, dst, src.offset, n)
	case []int16:
		bulk(s, dst, src.offset, n)
	case []int32:
		bulk(s, dst, src.offset, n)
	case []int64:
		bulk(s, dst, src.offset, n)
	case []float32:
		bulk(s, dst, src.offset, n)
	case []float64:
		bulk(s, dst, src.offset, n)
	case []complex64:
		bulk(s, dst, src.offset, n)
	case []complex128:
		bulk(s, dst, src.offset, n)
	case []any:
		bulk(s, dst, src.offset, n)
	}
}

func bulk[T any](s []T, dst *Array, off, n int) {
	d := Data[T](dst)
	copy(d[dst.offset:dst.offset+n], s[off:off+n])
}

func copyStrided(src, dst *Array) error {
	switch s := src.buf.data.(type) {
	case []int8:
		copyFromReal(s, src, dst)
	case []int16:
		copyFromReal(s, src, dst)
	case []int32:
		copyFromReal(s, src, dst)
	case []int64:
		copyFromReal(s, src, dst)
	case []float32:
		copyFromReal(s, src, dst)
	case []float64:
		copyFromReal(s, src, dst)
	case []complex64:
		copyFromComplex(s, src, dst)
	case []complex128:
		copyFromComplex(s, src, dst)
	case []any:
		return copyFromObjects(s, src, dst)
	}
	return nil
}

func copyFromReal[S realNumber](s []S, src, dst *Array) {
	w := Walk(dst.shape, src.Operand(), dst.Operand())
	switch d := dst.buf.data.(type) {
	case []int8:
		convertReal(s, d, w)
	case []int16:
		convertReal(s, d, w)
	case []int32:
		convertReal(s, d, w)
	case []int64:
		convertReal(s, d, w)
	case []float32:
		convertReal(s, d, w)
	case []float64:
		convertReal(s, d, w)
	case []complex64:
		for w.Next() {
			d[w.Offset(1)] = complex(float32(s[w.Offset(0)]), 0)
		}
	case []complex128:
		for w.Next() {
			d[w.Offset(1)] = complex(float64(s[w.Offset(0)]), 0)
		}
	case []any:
		for w.Next() {
			d[w.Offset(1)] = s[w.Offset(0)]
		}
	}
}

func convertReal[S, D realNumber](s []S, d []D, w *Walker) {
	for w.Next() {
		d[w.Offset(1)] = D(s[w.Offset(0)])
	}
}

func copyFromComplex[S constraints.Complex](s []S, src, dst *Array) {
	w := Walk(dst.shape, src.Operand(), dst.Operand())
	switch d := dst.buf.data.(type) {
	case []int8:
		complexToReal(s, d, w)
	case []int16:
		complexToReal(s, d, w)
	case []int32:
		complexToReal(s, d, w)
	case []int64:
		complexToReal(s, d, w)
	case []float32:
		complexToReal(s, d, w)
	case []float64:
		complexToReal(s, d, w)
	case []complex64:
		for w.Next() {
			d[w.Offset(1)] = complex64(s[w.Offset(0)])
		}
	case []complex128:
		for w.Next() {
			d[w.Offset(1)] = complex128(s[w.Offset(0)])
		}
	case []any:
		for w.Next() {
			d[w.Offset(1)] = s[w.Offset(0)]
		}
	}
}

// complexToReal drops the imaginary part.
func complexToReal[S constraints.Complex, D realNumber](s []S, d []D, w *Walker) {
	for w.Next() {
		d[w.Offset(1)] = D(real(complex128(s[w.Offset(0)])))
	}
}

func copyFromObjects(s []any, src, dst *Array) error {
	w := Walk(dst.shape, src.Operand(), dst.Operand())
	for w.Next() {
		if err := dst.store(w.Offset(1), s[w.Offset(0)]); err != nil {
			return fmt.Errorf("copy: %w", err)
		}
	}
	return nil
}
