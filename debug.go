// SPDX-License-Identifier: Apache-2.0
// Source: github.com/corvusforge/squeeze

//go:build squeeze_debug

package squeeze

// Invariant checks, compiled in only under -tags squeeze_debug: these
// are construction invariants, not data-dependent error paths an end
// user can trigger, so release builds skip them.

func debugAssertStore(store *lz77Store) {
	for i, l := range store.litLens {
		if store.dists[i] == 0 {
			continue
		}
		if l < minMatchLength || l > maxMatchLength {
			panic("squeeze: match length out of range")
		}
		if store.dists[i] < minDistance || store.dists[i] > maxDistance {
			panic("squeeze: match distance out of range")
		}
	}
}

func debugAssertLengths(lengths []uint8, maxbits int) {
	var kraft float64
	for _, l := range lengths {
		if l == 0 {
			continue
		}
		if int(l) > maxbits {
			panic("squeeze: code length exceeds maxbits")
		}
		weight := 1.0
		for i := uint8(0); i < l; i++ {
			weight /= 2
		}
		kraft += weight
	}
	if kraft > 1.0+1e-9 {
		panic("squeeze: Kraft inequality violated")
	}
}

func debugAssertEndOfBlock(lengths []uint8) {
	if lengths[endOfBlockSymbol] == 0 {
		panic("squeeze: end-of-block symbol has zero code length")
	}
}
