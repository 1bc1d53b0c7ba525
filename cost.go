// SPDX-License-Identifier: Apache-2.0
// Source: github.com/corvusforge/squeeze

package squeeze

import "math"

// symbolCosts is a continuous, possibly fractional per-symbol bit cost
// estimate derived from an observed histogram. The shortest-path
// parser reads these to price literal/length/distance edges; it never
// builds a real canonical Huffman tree mid-parse, only at final
// emission.
type symbolCosts struct {
	litLen [numLitLenSymbols]float64
	dist   [numDistSymbols]float64
}

// entropyBits fills out[i] with an estimate of the bits needed to code
// symbol i given freq: -log2(freq[i]/total) for an observed symbol, or
// log2(total) for one that never occurred, so the parser isn't lured
// into leaning on a symbol the final tree will actually price high.
func entropyBits(freq []uint32, out []float64) {
	var total uint64
	for _, f := range freq {
		total += uint64(f)
	}
	if total == 0 {
		for i := range out {
			out[i] = 0
		}
		return
	}
	logTotal := math.Log2(float64(total))
	for i, f := range freq {
		if f == 0 {
			out[i] = logTotal
			continue
		}
		out[i] = logTotal - math.Log2(float64(f))
	}
}

// dynamicCosts derives symbolCosts from one LZ77 parse's histogram over
// [lstart, lend): re-derived every squeeze iteration from the previous
// parse's statistics.
func dynamicCosts(store *lz77Store, lstart, lend int) *symbolCosts {
	ll, d := store.histogram(lstart, lend)
	c := &symbolCosts{}
	entropyBits(ll[:], c.litLen[:])
	entropyBits(d[:], c.dist[:])
	return c
}

// fixedCosts returns the symbolCosts implied by the DEFLATE fixed
// Huffman tree (RFC 1951 §3.2.6), for the fixed-tree cost-model variant
// of the parser (no squeeze loop, one pass).
func fixedCosts() *symbolCosts {
	c := &symbolCosts{}
	ll := fixedLitLenLengths()
	d := fixedDistLengths()
	for i, l := range ll {
		c.litLen[i] = float64(l)
	}
	for i, l := range d {
		c.dist[i] = float64(l)
	}
	return c
}

// literalCost is the cost of coding input byte b as a literal.
func (c *symbolCosts) literalCost(b byte) float64 {
	return c.litLen[b]
}

// matchCost is the cost of coding a (length, dist) match: the litlen
// symbol's cost plus its extra bits, plus the dist symbol's cost plus
// its extra bits.
func (c *symbolCosts) matchCost(length, dist int) float64 {
	lsym := lengthSymbol(length)
	lextra, _ := lengthExtraBits(length)
	dsym := distSymbol(dist)
	dextra, _ := distExtraBits(dist)
	return c.litLen[lsym] + float64(lextra) + c.dist[dsym] + float64(dextra)
}
