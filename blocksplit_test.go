// SPDX-License-Identifier: Apache-2.0
// Source: github.com/corvusforge/squeeze

package squeeze

import "testing"

func buildLiteralStore(n int, pattern func(i int) byte) *lz77Store {
	store := newLZ77Store()
	for i := 0; i < n; i++ {
		store.append(int(pattern(i)), 0, i)
	}
	return store
}

func TestBlockSplitPoints_SmallStoreNeverSplits(t *testing.T) {
	store := buildLiteralStore(20, func(i int) byte { return byte('a' + i%5) })
	points := blockSplitPoints(store, 8)
	if points != nil {
		t.Fatalf("points = %v, want nil for a store below the split threshold", points)
	}
}

func TestBlockSplitPoints_RespectsMaxBlocksBudget(t *testing.T) {
	store := buildLiteralStore(4000, func(i int) byte {
		if i < 2000 {
			return 'a' + byte(i%3)
		}
		return 'x' + byte(i%3)
	})
	points := blockSplitPoints(store, 2)
	if len(points)+1 > 2 {
		t.Fatalf("len(points)+1 = %d, exceeds maxBlocks=2", len(points)+1)
	}
}

func TestBlockSplitPoints_ZeroOrOneMaxBlocksReturnsNil(t *testing.T) {
	store := buildLiteralStore(4000, func(i int) byte { return byte('a' + i%7) })
	if points := blockSplitPoints(store, 1); points != nil {
		t.Fatalf("points = %v, want nil when maxBlocks<=1", points)
	}
	if points := blockSplitPoints(store, 0); points != nil {
		t.Fatalf("points = %v, want nil when maxBlocks<=1", points)
	}
}

func TestFindBestSplit_ReturnsAnInteriorPointWithConsistentCost(t *testing.T) {
	store := buildLiteralStore(3000, func(i int) byte {
		if i < 1500 {
			if i%13 == 0 {
				return byte('b' + i%4)
			}
			return 'a'
		}
		if i%13 == 0 {
			return byte('y' + i%4)
		}
		return 'x'
	})

	split, splitCost := findBestSplit(store, 0, store.size())
	if split <= 0 || split >= store.size() {
		t.Fatalf("split = %d, want a strictly interior index", split)
	}
	want := estimateBlockBits(store, 0, split) + estimateBlockBits(store, split, store.size())
	if splitCost != want {
		t.Fatalf("splitCost = %v, want %v (recomputed from the returned split)", splitCost, want)
	}
}
