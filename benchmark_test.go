// SPDX-License-Identifier: Apache-2.0
// Source: github.com/corvusforge/squeeze

package squeeze

import (
	"bytes"
	"math/rand"
	"testing"
)

// pngGradientFixture synthesizes a PNG-filter-stream-shaped input: a
// 100x100 RGBA gradient put through a fixed
// Sub pre-filter (one filter-type byte per row, then smoothly
// varying pixel bytes), without depending on the PNG container itself
// (that belongs to cmd/pngsqueeze).
func pngGradientFixture() []byte {
	const w, h = 100, 100
	out := make([]byte, 0, h*(1+w*4))
	row := make([]byte, w*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			row[x*4+0] = byte(x * 255 / w)
			row[x*4+1] = byte(y * 255 / h)
			row[x*4+2] = byte((x + y) * 255 / (w + h))
			row[x*4+3] = 255
		}
		out = append(out, 1) // filter type "Sub"
		for x := 0; x < len(row); x++ {
			var left byte
			if x >= 4 {
				left = row[x-4]
			}
			out = append(out, row[x]-left)
		}
	}
	return out
}

// repeatedPatternCorpus returns a small set of highly repetitive
// inputs used to benchmark the squeeze loop's best case.
func repeatedPatternCorpus() map[string][]byte {
	return map[string][]byte{
		"repeated-8byte": bytes.Repeat([]byte("abcdefgh"), 4096),
		"repeated-text":  bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog. "), 1000),
		"sparse-runs":    append(make([]byte, 4096), bytes.Repeat([]byte{0xff}, 4096)...),
		"png-gradient":   pngGradientFixture(),
	}
}

// TestCompress_PNGGradientBeatsExternalBaseline checks that the
// squeeze output for a synthetic PNG filter stream is strictly
// smaller than flate's own best-effort single-pass encoder at
// its highest level (standing in for "libdeflate -12" as the external
// baseline, since no libdeflate binding is in this module's dependency
// surface) and must still round-trip to the original bytes.
func TestCompress_PNGGradientBeatsExternalBaseline(t *testing.T) {
	input := pngGradientFixture()

	squeezed, err := Compress(input, Iterations(len(input)), true)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	got := inflateRawDeflate(t, squeezed)
	if !bytes.Equal(got, input) {
		t.Fatalf("round trip mismatch on PNG gradient fixture")
	}

	baseline := bestEffortFlateBaseline(t, input)
	if len(squeezed) >= len(baseline) {
		t.Fatalf("squeeze output %d bytes not smaller than baseline %d bytes", len(squeezed), len(baseline))
	}
}

func BenchmarkCompress_PNGGradient(b *testing.B) {
	input := pngGradientFixture()
	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Compress(input, 15, true); err != nil {
			b.Fatalf("Compress: %v", err)
		}
	}
}

func BenchmarkCompress_RepeatedPatternCorpus(b *testing.B) {
	corpus := repeatedPatternCorpus()
	for name, input := range corpus {
		input := input
		b.Run(name, func(b *testing.B) {
			b.SetBytes(int64(len(input)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := Compress(input, 15, true); err != nil {
					b.Fatalf("Compress: %v", err)
				}
			}
		})
	}
}

func BenchmarkCompress_RandomKilobyte(b *testing.B) {
	rng := rand.New(rand.NewSource(0))
	input := make([]byte, 1024)
	rng.Read(input)
	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Compress(input, 15, true); err != nil {
			b.Fatalf("Compress: %v", err)
		}
	}
}
