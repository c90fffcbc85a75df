// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray_test

import (
	"bytes"
	"errors"
	"path/filepath"
	"slices"
	"testing"

	"github.com/born-ml/ndarray/ndarray"
)

// TestArchiveRoundTrip saves arrays to disk and reads them back.
func TestArchiveRoundTrip(t *testing.T) {
	m, err := ndarray.FromSequence([][]float32{{1, 2}, {3, 4}})
	if err != nil {
		t.Fatalf("FromSequence failed: %v", err)
	}
	path := filepath.Join(t.TempDir(), "m.nda")
	if err := ndarray.Save(path, []ndarray.Entry{{Name: "m", Array: m}}, map[string]string{"note": "2x2"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	archive, err := ndarray.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	got, err := archive.Array("m")
	if err != nil {
		t.Fatalf("Array failed: %v", err)
	}
	if got.Kind() != ndarray.Float32 || !got.Shape().Equal(ndarray.Shape{2, 2}) {
		t.Errorf("got %s %v, want float32 [2 2]", got.Kind(), got.Shape())
	}
	if v := ndarray.Values[float32](got); !slices.Equal(v, []float32{1, 2, 3, 4}) {
		t.Errorf("values = %v, want [1 2 3 4]", v)
	}
	if archive.Header.Metadata["note"] != "2x2" {
		t.Errorf("metadata = %v", archive.Header.Metadata)
	}
	if _, err := archive.Array("w"); !errors.Is(err, ndarray.ErrNotFound) {
		t.Errorf("missing array error = %v, want ErrNotFound", err)
	}
}

// TestArchiveCorrupted checks that a flipped data byte is detected.
func TestArchiveCorrupted(t *testing.T) {
	v, err := ndarray.FromSequence([]int64{1, 2, 3})
	if err != nil {
		t.Fatalf("FromSequence failed: %v", err)
	}
	var buf bytes.Buffer
	if err := ndarray.Encode(&buf, []ndarray.Entry{{Name: "v", Array: v}}, nil); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	data := buf.Bytes()
	data[len(data)-1] ^= 1
	if _, err := ndarray.Decode(bytes.NewReader(data)); !errors.Is(err, ndarray.ErrChecksumMismatch) {
		t.Errorf("Decode error = %v, want ErrChecksumMismatch", err)
	}
}
