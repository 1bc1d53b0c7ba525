// SPDX-License-Identifier: Apache-2.0
// Source: github.com/corvusforge/squeeze/cmd/pngsqueeze

package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPaeth_PicksTheNeighborClosestToTheLinearPredictor(t *testing.T) {
	// predictor = a+b-c = 100; distance(a)=0, distance(b)=100, distance(c)=100 -> a wins.
	require.Equal(t, byte(100), paeth(100, 0, 0))
	// predictor = a+b-c = 10; distance(a)=5, distance(b)=0, distance(c)=5 -> b wins.
	require.Equal(t, byte(10), paeth(5, 10, 5))
	require.Equal(t, byte(0), paeth(0, 0, 0))
}

func TestBytesPerPixel_MatchesEveryPNGColorType(t *testing.T) {
	cases := []struct {
		colorType, bitDepth, want int
	}{
		{0, 8, 1},  // grayscale
		{2, 8, 3},  // truecolor
		{4, 8, 2},  // grayscale + alpha
		{6, 8, 4},  // truecolor + alpha
		{0, 1, 1},  // sub-byte depth rounds up to 1
		{6, 16, 8}, // 16-bit truecolor + alpha
	}
	for _, c := range cases {
		got := bytesPerPixel(c.colorType, c.bitDepth)
		require.Equalf(t, c.want, got, "colorType=%d bitDepth=%d", c.colorType, c.bitDepth)
	}
}

func TestFilterScanline_SubFilterMatchesManualComputation(t *testing.T) {
	cur := []byte{10, 20, 30, 40}
	dst := make([]byte, len(cur))
	filterScanline(1, cur, nil, 2, dst)
	want := []byte{10, 20, 30 - 10, 40 - 20}
	require.Equal(t, want, dst)
}

func TestFilterScanline_UpFilterUsesThePreviousRow(t *testing.T) {
	cur := []byte{10, 20, 30, 40}
	prev := []byte{1, 2, 3, 4}
	dst := make([]byte, len(cur))
	filterScanline(2, cur, prev, 2, dst)
	for i := range cur {
		require.Equal(t, cur[i]-prev[i], dst[i])
	}
}

func TestChooseFilter_PicksTheLowestScoringFilterType(t *testing.T) {
	// A scanline identical to the previous row scores zero under the
	// "up" filter (type 2): every byte differences out to zero.
	prev := []byte{5, 6, 7, 8, 9, 10, 11, 12}
	cur := append([]byte(nil), prev...)
	ft, filtered := chooseFilter(cur, prev, 4)
	require.Equal(t, byte(2), ft)
	for _, b := range filtered {
		require.Equal(t, byte(0), b)
	}
}

func TestFilterImage_ProducesOneFilterTypeBytePerRow(t *testing.T) {
	const stride, height, bpp = 12, 4, 4
	raw := make([]byte, stride*height)
	for i := range raw {
		raw[i] = byte(i * 7)
	}
	out := filterImage(raw, stride, height, bpp)
	require.Len(t, out, height*(stride+1))

	for y := 0; y < height; y++ {
		ft := out[y*(stride+1)]
		require.LessOrEqualf(t, ft, byte(4), "row %d has invalid filter type %d", y, ft)
	}
}
