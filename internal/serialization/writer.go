package serialization

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/born-ml/ndarray/internal/array"
)

const createdBy = "ndarray"

// Entry is a named array to be stored.
type Entry struct {
	Name  string
	Array *array.Array
}

// Encode writes entries to w in archive order. Non-contiguous arrays are
// stored in row-major order.
func Encode(w io.Writer, entries []Entry, metadata map[string]string) error {
	header := Header{
		FormatVersion: FormatVersion,
		CreatedBy:     createdBy,
		Arrays:        make([]ArrayMeta, 0, len(entries)),
		Metadata:      metadata,
	}

	var data bytes.Buffer
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if err := ValidateName(e.Name); err != nil {
			return err
		}
		if seen[e.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateName, e.Name)
		}
		seen[e.Name] = true
		if e.Array == nil {
			return fmt.Errorf("array %q is nil", e.Name)
		}

		raw, err := e.Array.Bytes()
		if err != nil {
			return fmt.Errorf("array %q: %w", e.Name, err)
		}
		header.Arrays = append(header.Arrays, ArrayMeta{
			Name:   e.Name,
			Kind:   string(e.Array.Kind().Code()),
			Shape:  []int(e.Array.Shape()),
			Offset: int64(data.Len()),
			Size:   int64(len(raw)),
		})
		data.Write(raw)
	}

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("failed to marshal header: %w", err)
	}
	if len(headerJSON) > MaxHeaderSize {
		return fmt.Errorf("%w: %d bytes", ErrHeaderTooLarge, len(headerJSON))
	}

	var body bytes.Buffer
	body.Grow(len(headerJSON) + Alignment + data.Len())
	body.Write(headerJSON)
	body.Write(make([]byte, padding(int64(FixedHeaderSize+len(headerJSON)))))
	body.Write(data.Bytes())
	sum := ComputeChecksum(body.Bytes())

	fixed := make([]byte, FixedHeaderSize)
	copy(fixed, MagicBytes)
	binary.LittleEndian.PutUint32(fixed[4:], FormatVersion)
	var flags uint32
	if len(metadata) > 0 {
		flags |= FlagHasMetadata
	}
	binary.LittleEndian.PutUint32(fixed[8:], flags)
	binary.LittleEndian.PutUint64(fixed[16:], uint64(len(headerJSON)))
	copy(fixed[ChecksumOffset:], sum[:])

	if _, err := w.Write(fixed); err != nil {
		return fmt.Errorf("failed to write fixed header: %w", err)
	}
	if _, err := w.Write(body.Bytes()); err != nil {
		return fmt.Errorf("failed to write archive body: %w", err)
	}
	return nil
}

// Save writes entries to the file at path, replacing it if it exists.
func Save(path string, entries []Entry, metadata map[string]string) (err error) {
	//nolint:gosec // G304: the path is chosen by the caller
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close file: %w", cerr)
		}
	}()
	return Encode(file, entries, metadata)
}
