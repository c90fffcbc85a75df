// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"io"

	"github.com/born-ml/ndarray/internal/serialization"
)

// Entry is a named array stored in an archive.
type Entry = serialization.Entry

// Archive is a decoded .nda file.
type Archive = serialization.Archive

// Archive errors.
var (
	ErrChecksumMismatch = serialization.ErrChecksumMismatch
	ErrInvalidMagic     = serialization.ErrInvalidMagic
	ErrNotFound         = serialization.ErrNotFound
)

// Save writes named arrays to path in the .nda format.
//
// Example:
//
//	err := ndarray.Save("run.nda", []ndarray.Entry{{Name: "x", Array: x}}, nil)
func Save(path string, entries []Entry, metadata map[string]string) error {
	return serialization.Save(path, entries, metadata)
}

// Load reads a .nda file, verifying its checksum.
func Load(path string) (*Archive, error) { return serialization.Load(path) }

// Encode writes named arrays to w in the .nda format.
func Encode(w io.Writer, entries []Entry, metadata map[string]string) error {
	return serialization.Encode(w, entries, metadata)
}

// Decode reads a .nda stream from r.
func Decode(r io.Reader) (*Archive, error) { return serialization.Decode(r) }
