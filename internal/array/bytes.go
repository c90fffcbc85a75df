package array

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Bytes encodes the elements of a in row-major order as little-endian machine
// values. Complex elements are written real part first.
func (a *Array) Bytes() ([]byte, error) {
	if a.kind == Generic {
		return nil, fmt.Errorf("bytes: %w: generic arrays have no binary form", ErrUnsupportedKind)
	}
	src, err := AsContiguous(a)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.Grow(a.Size() * a.kind.Size())
	var values any
	switch d := src.buf.data.(type) {
	case []int8:
		values = d[src.offset : src.offset+a.Size()]
	case []int16:
		values = d[src.offset : src.offset+a.Size()]
	case []int32:
		values = d[src.offset : src.offset+a.Size()]
	case []int64:
		values = d[src.offset : src.offset+a.Size()]
	case []float32:
		values = d[src.offset : src.offset+a.Size()]
	case []float64:
		values = d[src.offset : src.offset+a.Size()]
	case []complex64:
		values = d[src.offset : src.offset+a.Size()]
	case []complex128:
		values = d[src.offset : src.offset+a.Size()]
	}
	if err := binary.Write(&buf, binary.LittleEndian, values); err != nil {
		return nil, fmt.Errorf("bytes: %w", err)
	}
	return buf.Bytes(), nil
}

// FromBytes decodes little-endian machine values of the given kind into a 1-D
// array. len(data) must be a multiple of the element size.
func FromBytes(data []byte, kind Kind) (*Array, error) {
	if !kind.Valid() || kind == Generic {
		return nil, fmt.Errorf("from bytes: %w: kind %s has no binary form", ErrUnsupportedKind, kind)
	}
	size := kind.Size()
	if len(data)%size != 0 {
		return nil, fmt.Errorf("from bytes: %w: %d bytes is not a multiple of the %s element size %d",
			ErrValue, len(data), kind, size)
	}
	out, err := New(Shape{len(data) / size}, kind)
	if err != nil {
		return nil, err
	}
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, out.buf.data); err != nil {
		return nil, fmt.Errorf("from bytes: %w", err)
	}
	return out, nil
}
