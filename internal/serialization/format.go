package serialization

import (
	"fmt"

	"github.com/born-ml/ndarray/internal/array"
)

// Format constants.
const (
	MagicBytes      = "NDAR"
	FormatVersion   = 1
	Alignment       = 64   // data section starts on a 64-byte boundary
	FixedHeaderSize = 64   // bytes before the JSON header
	ChecksumSize    = 32   // SHA-256
	ChecksumOffset  = 0x20 // checksum position in the fixed header
)

// Flags for the fixed header.
const (
	FlagHasMetadata uint32 = 1 << 0
)

// Header is the JSON header of an archive.
type Header struct {
	FormatVersion int               `json:"format_version"`
	CreatedBy     string            `json:"created_by"`
	Arrays        []ArrayMeta       `json:"arrays"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

// ArrayMeta describes one stored array.
type ArrayMeta struct {
	Name   string `json:"name"`
	Kind   string `json:"kind"`   // kind code, e.g. "d"
	Shape  []int  `json:"shape"`  // empty for rank-0 arrays
	Offset int64  `json:"offset"` // bytes from the start of the data section
	Size   int64  `json:"size"`   // bytes
}

// kind decodes the stored kind code.
func (m ArrayMeta) kind() (array.Kind, error) {
	if len(m.Kind) != 1 {
		return 0, &ValidationError{Type: "invalid_kind", Array: m.Name, Details: fmt.Sprintf("kind %q", m.Kind)}
	}
	k, err := array.ParseKind(m.Kind[0])
	if err != nil {
		return 0, err
	}
	if k == array.Generic {
		return 0, &ValidationError{Type: "invalid_kind", Array: m.Name, Details: "generic arrays cannot be stored"}
	}
	return k, nil
}

func padding(pos int64) int64 {
	return (Alignment - pos%Alignment) % Alignment
}
