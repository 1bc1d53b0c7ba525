// SPDX-License-Identifier: Apache-2.0
// Source: github.com/corvusforge/squeeze

package squeeze

import (
	"math"
	"testing"
)

func TestEntropyBits_UnseenSymbolCostsLogTotal(t *testing.T) {
	freq := []uint32{3, 1, 0}
	out := make([]float64, 3)
	entropyBits(freq, out)
	want := math.Log2(4)
	if math.Abs(out[2]-want) > 1e-9 {
		t.Fatalf("out[2] = %v, want %v", out[2], want)
	}
}

func TestEntropyBits_AllZeroFrequenciesCostZero(t *testing.T) {
	freq := []uint32{0, 0, 0}
	out := make([]float64, 3)
	entropyBits(freq, out)
	for i, c := range out {
		if c != 0 {
			t.Fatalf("out[%d] = %v, want 0", i, c)
		}
	}
}

func TestEntropyBits_MoreFrequentSymbolCostsFewerBits(t *testing.T) {
	freq := []uint32{90, 10}
	out := make([]float64, 2)
	entropyBits(freq, out)
	if out[0] >= out[1] {
		t.Fatalf("cost of frequent symbol (%v) should be less than rare symbol (%v)", out[0], out[1])
	}
}

func TestDynamicCosts_MatchesStoreHistogram(t *testing.T) {
	store := newLZ77Store()
	store.append('a', 0, 0)
	store.append('a', 0, 1)
	store.append(5, 3, 2) // a match of length 5, distance 3

	costs := dynamicCosts(store, 0, store.size())
	if costs.literalCost('a') <= 0 {
		t.Fatalf("literalCost('a') = %v, want > 0", costs.literalCost('a'))
	}
	if costs.matchCost(5, 3) <= 0 {
		t.Fatalf("matchCost(5,3) = %v, want > 0", costs.matchCost(5, 3))
	}
}

func TestFixedCosts_MatchesFixedTreeLengths(t *testing.T) {
	costs := fixedCosts()
	if costs.literalCost('A') != 8 {
		t.Fatalf("literalCost('A') = %v, want 8", costs.literalCost('A'))
	}
	if costs.literalCost(200) != 9 {
		t.Fatalf("literalCost(200) = %v, want 9", costs.literalCost(200))
	}
}

func TestSymbolCosts_MatchCostIncludesExtraBits(t *testing.T) {
	costs := fixedCosts()
	// Lengths 11 (symbol 265, 1 extra bit) and 19 (symbol 269, 2 extra
	// bits) share a fixed-tree litlen length (both in 256..279 -> 7
	// bits), so the only difference between their match costs is the
	// extra-bit count.
	c11 := costs.matchCost(11, 1)
	c19 := costs.matchCost(19, 1)
	if c19 != c11+1 {
		t.Fatalf("matchCost(11,1) = %v, matchCost(19,1) = %v, want a 1-bit difference", c11, c19)
	}
}
