package serialization

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Limits applied to untrusted headers.
const (
	MaxHeaderSize = 16 * 1024 * 1024
	MaxArrayCount = 100_000
	MaxArrayName  = 1024
	MaxArrayRank  = 64
)

// ValidateName rejects empty, oversized and control-character names.
func ValidateName(name string) error {
	switch {
	case name == "":
		return &ValidationError{Type: "invalid_name", Details: "empty name"}
	case len(name) > MaxArrayName:
		return &ValidationError{
			Type:    "name_too_long",
			Array:   name,
			Details: fmt.Sprintf("length %d > max %d", len(name), MaxArrayName),
		}
	case strings.ContainsAny(name, "\x00\n\r"):
		return &ValidationError{Type: "invalid_name", Array: name, Details: "contains a control character"}
	}
	return nil
}

// ValidateEntry checks that the byte size recorded for an array agrees with
// its kind and shape.
func ValidateEntry(m ArrayMeta) error {
	k, err := m.kind()
	if err != nil {
		return err
	}
	if len(m.Shape) > MaxArrayRank {
		return &ValidationError{Type: "invalid_shape", Array: m.Name, Details: fmt.Sprintf("rank %d > max %d", len(m.Shape), MaxArrayRank)}
	}
	// The byte count must fit in int64 for the size and bounds checks to hold.
	limit := math.MaxInt64 / int64(k.Size())
	n := int64(1)
	for _, d := range m.Shape {
		if d < 0 {
			return &ValidationError{Type: "invalid_shape", Array: m.Name, Details: fmt.Sprintf("negative dimension in %v", m.Shape)}
		}
		if d > 0 && n > limit/int64(d) {
			return &ValidationError{Type: "invalid_shape", Array: m.Name, Details: fmt.Sprintf("shape %v is too large", m.Shape)}
		}
		n *= int64(d)
	}
	if want := n * int64(k.Size()); want != m.Size {
		return &ValidationError{
			Type:    "size_mismatch",
			Array:   m.Name,
			Details: fmt.Sprintf("shape %v of %s needs %d bytes, header says %d", m.Shape, k, want, m.Size),
		}
	}
	return nil
}

// ValidateOffsets checks that array regions are non-negative, inside the data
// section and pairwise disjoint.
func ValidateOffsets(arrays []ArrayMeta, dataSize int64) error {
	sorted := slices.Clone(arrays)
	slices.SortFunc(sorted, func(a, b ArrayMeta) int {
		switch {
		case a.Offset < b.Offset:
			return -1
		case a.Offset > b.Offset:
			return 1
		}
		return 0
	})

	for i, m := range sorted {
		if m.Offset < 0 || m.Size < 0 {
			return &ValidationError{
				Type:    "negative_offset",
				Array:   m.Name,
				Details: fmt.Sprintf("offset=%d, size=%d", m.Offset, m.Size),
			}
		}
		if m.Offset > dataSize || m.Size > dataSize-m.Offset {
			return &ValidationError{
				Type:    "out_of_bounds",
				Array:   m.Name,
				Details: fmt.Sprintf("offset %d + size %d > data size %d", m.Offset, m.Size, dataSize),
			}
		}
		if i+1 < len(sorted) {
			next := sorted[i+1]
			if m.Offset+m.Size > next.Offset {
				return &ValidationError{
					Type:    "offset_overlap",
					Array:   m.Name,
					Array2:  next.Name,
					Details: fmt.Sprintf("regions [%d-%d] and [%d-%d] overlap", m.Offset, m.Offset+m.Size, next.Offset, next.Offset+next.Size),
				}
			}
		}
	}
	return nil
}

// ValidateHeader runs every header check against a data section of dataSize bytes.
func ValidateHeader(h *Header, dataSize int64) error {
	if h.FormatVersion != FormatVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, h.FormatVersion)
	}
	if len(h.Arrays) > MaxArrayCount {
		return &ValidationError{
			Type:    "too_many_arrays",
			Details: fmt.Sprintf("got %d, max %d", len(h.Arrays), MaxArrayCount),
		}
	}
	seen := make(map[string]bool, len(h.Arrays))
	for _, m := range h.Arrays {
		if err := ValidateName(m.Name); err != nil {
			return err
		}
		if seen[m.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateName, m.Name)
		}
		seen[m.Name] = true
		if err := ValidateEntry(m); err != nil {
			return err
		}
	}
	return ValidateOffsets(h.Arrays, dataSize)
}
