// Package serialization stores named arrays in the .nda archive format.
//
//	Layout:
//	  [4 bytes: Magic "NDAR"]
//	  [4 bytes: Version (uint32 LE)]
//	  [4 bytes: Flags (uint32 LE)]
//	  [4 bytes: reserved]
//	  [8 bytes: Header size (uint64 LE)]
//	  [8 bytes: reserved]
//	  [32 bytes: SHA-256 of everything after the fixed header]
//	  [Header: JSON metadata]
//	  [Padding to a 64-byte boundary]
//	  [Array data: little-endian elements, row-major]
//
// Every element kind except Generic can be stored. Arrays come back
// contiguous with their original shape and kind.
//
// Example:
//
//	err := serialization.Save("signal.nda", []serialization.Entry{
//	    {Name: "x", Array: x},
//	    {Name: "spectrum", Array: spec},
//	}, map[string]string{"source": "sensor-3"})
//
//	archive, err := serialization.Load("signal.nda")
//	x, ok := archive.Get("x")
package serialization
