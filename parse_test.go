// SPDX-License-Identifier: Apache-2.0
// Source: github.com/corvusforge/squeeze

package squeeze

import "testing"

func decodeStore(store *lz77Store) []byte {
	var out []byte
	for i := 0; i < store.size(); i++ {
		length := int(store.litLens[i])
		dist := int(store.dists[i])
		if dist == 0 {
			out = append(out, byte(length))
			continue
		}
		start := len(out) - dist
		for k := 0; k < length; k++ {
			out = append(out, out[start+k])
		}
	}
	return out
}

func TestShortestPathParse_ReproducesInputExactly(t *testing.T) {
	input := []byte("the quick brown fox jumps over the lazy dog. the quick brown fox.")
	m := newMatcher(input, 0, len(input), 8192, 8)
	costs := fixedCosts()
	store := newLZ77Store()

	shortestPathParse(m, costs, input, 0, len(input), store)

	got := decodeStore(store)
	if string(got) != string(input) {
		t.Fatalf("decoded store = %q, want %q", got, input)
	}
}

func TestShortestPathParse_EmptyRangeProducesNoRecords(t *testing.T) {
	input := []byte("abc")
	m := newMatcher(input, 0, len(input), 8192, 8)
	costs := fixedCosts()
	store := newLZ77Store()

	shortestPathParse(m, costs, input, 1, 1, store)
	if store.size() != 0 {
		t.Fatalf("store.size() = %d, want 0 for an empty range", store.size())
	}
}

func TestShortestPathParse_PrefersMatchesOverLiteralsWhenCheaper(t *testing.T) {
	input := []byte("abcabcabcabcabc")
	m := newMatcher(input, 0, len(input), 8192, 8)
	costs := fixedCosts()
	store := newLZ77Store()

	shortestPathParse(m, costs, input, 0, len(input), store)

	sawMatch := false
	for i := 0; i < store.size(); i++ {
		if store.dists[i] != 0 {
			sawMatch = true
			break
		}
	}
	if !sawMatch {
		t.Fatalf("expected at least one match record in a highly repetitive input")
	}
	if got := decodeStore(store); string(got) != string(input) {
		t.Fatalf("decoded store = %q, want %q", got, input)
	}
}
