package serialization

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/born-ml/ndarray/internal/array"
)

// Archive is a decoded set of named arrays.
type Archive struct {
	Header Header
	arrays map[string]*array.Array
}

// Names returns the array names in stored order.
func (a *Archive) Names() []string {
	names := make([]string, len(a.Header.Arrays))
	for i, m := range a.Header.Arrays {
		names[i] = m.Name
	}
	return names
}

// Get returns the named array.
func (a *Archive) Get(name string) (*array.Array, bool) {
	arr, ok := a.arrays[name]
	return arr, ok
}

// Array is Get with an ErrNotFound error for missing names.
func (a *Archive) Array(name string) (*array.Array, error) {
	arr, ok := a.arrays[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrNotFound, name, a.Names())
	}
	return arr, nil
}

// Decode reads an archive from r, verifying its checksum and header before
// any array is materialized.
func Decode(r io.Reader) (*Archive, error) {
	fixed := make([]byte, FixedHeaderSize)
	if _, err := io.ReadFull(r, fixed); err != nil {
		return nil, fmt.Errorf("failed to read fixed header: %w", err)
	}
	if string(fixed[:4]) != MagicBytes {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidMagic, fixed[:4])
	}
	if v := binary.LittleEndian.Uint32(fixed[4:]); v != FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, v)
	}
	headerSize := binary.LittleEndian.Uint64(fixed[16:])
	if headerSize > MaxHeaderSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrHeaderTooLarge, headerSize)
	}
	var stored [ChecksumSize]byte
	copy(stored[:], fixed[ChecksumOffset:])

	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read archive body: %w", err)
	}
	if err := ValidateChecksum(ComputeChecksum(body), stored); err != nil {
		return nil, err
	}

	hs := int64(headerSize)
	dataStart := hs + padding(FixedHeaderSize+hs)
	if dataStart > int64(len(body)) {
		return nil, fmt.Errorf("failed to read header: %w", io.ErrUnexpectedEOF)
	}
	var header Header
	if err := json.Unmarshal(body[:hs], &header); err != nil {
		return nil, fmt.Errorf("failed to parse header: %w", err)
	}
	data := body[dataStart:]
	if err := ValidateHeader(&header, int64(len(data))); err != nil {
		return nil, err
	}

	archive := &Archive{Header: header, arrays: make(map[string]*array.Array, len(header.Arrays))}
	for _, m := range header.Arrays {
		kind, err := m.kind()
		if err != nil {
			return nil, err
		}
		flat, err := array.FromBytes(data[m.Offset:m.Offset+m.Size], kind)
		if err != nil {
			return nil, fmt.Errorf("array %q: %w", m.Name, err)
		}
		arr, err := array.Reshape(flat, m.Shape...)
		if err != nil {
			return nil, fmt.Errorf("array %q: %w", m.Name, err)
		}
		archive.arrays[m.Name] = arr
	}
	return archive, nil
}

// Load reads the archive stored at path.
func Load(path string) (*Archive, error) {
	//nolint:gosec // G304: the path is chosen by the caller
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()
	return Decode(file)
}
