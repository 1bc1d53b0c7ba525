// SPDX-License-Identifier: Apache-2.0
// Source: github.com/corvusforge/squeeze

package squeeze

import (
	"bytes"
	"compress/flate"
	"io"
	"testing"
)

// inflateRawDeflate decodes a raw DEFLATE stream using the standard
// library's decoder, serving as the round-trip oracle for tests that
// check emitted block bytes actually decode to the original input.
func inflateRawDeflate(t *testing.T, data []byte) []byte {
	t.Helper()
	r := flate.NewReader(bytes.NewReader(data))
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("inflate failed: %v", err)
	}
	return out
}

// bestEffortFlateBaseline runs the standard library's single-pass
// DEFLATE encoder at its best-compression level, serving as the
// external baseline the squeeze output is expected to beat.
func bestEffortFlateBaseline(t *testing.T, input []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		t.Fatalf("flate.NewWriter: %v", err)
	}
	if _, err := w.Write(input); err != nil {
		t.Fatalf("flate write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("flate close: %v", err)
	}
	return buf.Bytes()
}
