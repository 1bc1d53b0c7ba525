// SPDX-License-Identifier: Apache-2.0
// Source: github.com/corvusforge/squeeze

package squeeze

import (
	"math"
	"sort"
)

// minBlockSplitSize is the smallest record range worth considering for
// a further split; ranges below it are left alone.
const minBlockSplitSize = 1024

// blockSplitPoints picks record-index boundaries within store that
// reduce its total coded cost. It repeatedly takes the longest current
// block still worth splitting and divides it at the point that lowers
// the sum of the two halves' coded costs below the unsplit cost,
// until no candidate improves or maxBlocks is reached. The returned
// indices are sorted ascending.
func blockSplitPoints(store *lz77Store, maxBlocks int) []int {
	if store.size() < 10 || maxBlocks <= 1 {
		return nil
	}

	type span struct{ start, end int }
	blocks := []span{{0, store.size()}}
	done := map[span]bool{}
	var points []int

	for len(blocks) < maxBlocks {
		// Longest splittable block first: a long block has the most
		// cost to give back, and taking it first spends the block
		// budget where it matters.
		best := -1
		for i, b := range blocks {
			if b.end-b.start < minBlockSplitSize || done[b] {
				continue
			}
			if best == -1 || b.end-b.start > blocks[best].end-blocks[best].start {
				best = i
			}
		}
		if best == -1 {
			break
		}
		b := blocks[best]

		origCost := estimateBlockBits(store, b.start, b.end)
		split, splitCost := findBestSplit(store, b.start, b.end)
		if split <= b.start+1 || split >= b.end-1 || splitCost >= origCost {
			done[b] = true
			continue
		}

		points = append(points, split)
		blocks[best] = span{b.start, split}
		blocks = append(blocks, span{split, b.end})
	}

	sort.Ints(points)
	return points
}

// estimateBlockBits approximates the emitted size of records [lstart,
// lend) as the cheapest of the three block encodings, mirroring the
// choice writeBlock will ultimately make (its fixed candidate is a
// fresh parse, so the fixed figure here is an estimate over the
// existing records, not the final number).
func estimateBlockBits(store *lz77Store, lstart, lend int) float64 {
	dynamic := realCost(store, lstart, lend)
	fixed := 3 + fixedDataBits(store, lstart, lend)
	stored := storedBlockBits(store.byteRange(lstart, lend))
	return math.Min(stored, math.Min(fixed, dynamic))
}

// findBestSplit is a bracketing minimizer over candidate split points:
// an exhaustive scan for small ranges, and for large ones a probe
// window of 9 evenly spaced candidates that narrows around whichever
// probe scored lowest, repeated until the window is small enough to
// finish by exhaustive scan. This trades an O(n) scan for O(log n)
// rounds of O(1) probes on the ranges where it matters.
func findBestSplit(store *lz77Store, start, end int) (int, float64) {
	cost := func(p int) float64 {
		return estimateBlockBits(store, start, p) + estimateBlockBits(store, p, end)
	}

	const probes = 9
	lo, hi := start, end
	best, bestCost := start+1, math.MaxFloat64

	if end-start >= 1024 {
		for hi-lo > probes {
			width := (hi - lo) / (probes + 1)
			if width < 1 {
				width = 1
			}
			var p [probes]int
			var v [probes]float64
			bestIdx := 0
			for i := 0; i < probes; i++ {
				cand := lo + (i+1)*width
				if cand >= end {
					cand = end - 1
				}
				p[i] = cand
				v[i] = cost(cand)
				if v[i] < v[bestIdx] {
					bestIdx = i
				}
			}
			if v[bestIdx] < bestCost {
				bestCost, best = v[bestIdx], p[bestIdx]
			}
			newLo, newHi := lo, hi
			if bestIdx > 0 {
				newLo = p[bestIdx-1]
			}
			if bestIdx < probes-1 {
				newHi = p[bestIdx+1]
			}
			if newLo >= newHi {
				break
			}
			lo, hi = newLo, newHi
		}
	}

	for p := lo + 1; p < hi; p++ {
		c := cost(p)
		if c < bestCost {
			bestCost, best = c, p
		}
	}
	return best, bestCost
}
