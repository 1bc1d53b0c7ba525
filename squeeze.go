// SPDX-License-Identifier: Apache-2.0
// Source: github.com/corvusforge/squeeze

package squeeze

// squeezeLZ77 is the iterative controller: greedy-parse once to
// seed statistics, then repeatedly re-parse the same range under a cost
// model derived from the previous parse, keeping whichever parse so far
// has the lowest real coded cost. A stalled run (two consecutive
// iterations landing on the same cost) is kicked out of its local
// minimum by perturbing the best-seen statistics with the deterministic
// PRNG; once perturbed, each iteration's histogram is blended with the
// prior one at a 1:0.5 weight to keep convergence from whipsawing.
func squeezeLZ77(m *matcher, input []byte, instart, inend int, iterations int, out *lz77Store) {
	if inend <= instart {
		out.reset()
		return
	}

	current := newLZ77Store()
	greedyLZ77(m, input, instart, inend, current)

	best := newLZ77Store()
	best.copyFrom(current)
	bestCost := realCost(current, 0, current.size())

	ll, d := current.histogram(0, current.size())
	costs := costsFromHistogram(ll, d)

	var prevLL [numLitLenSymbols]uint32
	var prevD [numDistSymbols]uint32
	perturbed := false
	lastCost := bestCost
	rng := newDeterministicRNG()

	for iter := 0; iter < iterations; iter++ {
		current.reset()
		shortestPathParse(m, costs, input, instart, inend, current)
		cost := realCost(current, 0, current.size())

		if cost < bestCost {
			best.copyFrom(current)
			bestCost = cost
		}

		ll, d = current.histogram(0, current.size())
		if perturbed {
			ll = blendLLHistogram(ll, prevLL)
			d = blendDistHistogram(d, prevD)
		}

		if iter > 5 && cost == lastCost {
			ll, d = best.histogram(0, best.size())
			randomizeStats(rng, ll[:], d[:])
			perturbed = true
		}

		lastCost = cost
		prevLL, prevD = ll, d
		costs = costsFromHistogram(ll, d)
	}

	out.copyFrom(best)
}

// squeezeLZ77Fixed runs a single shortest-path pass under the DEFLATE
// fixed tree's cost model: no iteration, no perturbation. Used when a
// block will be emitted with the fixed tree, where re-parsing under a
// dynamic cost model would optimize for a tree the block never uses.
func squeezeLZ77Fixed(m *matcher, input []byte, instart, inend int, out *lz77Store) {
	if inend <= instart {
		out.reset()
		return
	}
	shortestPathParse(m, fixedCosts(), input, instart, inend, out)
}

// realCost measures the coded size, in bits, of store's records over
// [lstart, lend) emitted as a dynamic Huffman block: the 3 header
// bits, the encoded trees, and every record's codes and extra bits.
// Used to compare squeeze iterations against each other; the final
// block encoding is chosen separately by the emitter, which also
// weighs the stored and fixed candidates.
func realCost(store *lz77Store, lstart, lend int) float64 {
	ll, d := store.histogram(lstart, lend)
	tree := buildDynamicTree(ll, d)
	return 3 + tree.headerBits() + tree.dataBits(store, lstart, lend)
}

func costsFromHistogram(ll [numLitLenSymbols]uint32, d [numDistSymbols]uint32) *symbolCosts {
	c := &symbolCosts{}
	entropyBits(ll[:], c.litLen[:])
	entropyBits(d[:], c.dist[:])
	return c
}

func blendLLHistogram(cur, prev [numLitLenSymbols]uint32) [numLitLenSymbols]uint32 {
	var out [numLitLenSymbols]uint32
	for i := range out {
		out[i] = cur[i] + prev[i]/2
	}
	return out
}

func blendDistHistogram(cur, prev [numDistSymbols]uint32) [numDistSymbols]uint32 {
	var out [numDistSymbols]uint32
	for i := range out {
		out[i] = cur[i] + prev[i]/2
	}
	return out
}
