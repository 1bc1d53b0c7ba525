// SPDX-License-Identifier: Apache-2.0
// Source: github.com/corvusforge/squeeze

package squeeze

import "testing"

func TestMatcher_FindsExactRepeatedPhrase(t *testing.T) {
	data := []byte("the quick brown fox. the quick brown fox jumps.")
	m := newMatcher(data, 0, len(data), 8192, 8)
	m.resetHash(0)
	for i := 0; i <= len(data)-3; i++ {
		m.advance(i)
	}

	pos := 21 // second "the quick brown fox" starts here
	dist, length, _ := m.find(pos, maxMatchLength, false)
	if dist != 21 {
		t.Fatalf("dist = %d, want 21", dist)
	}
	if length < len("the quick brown fox") {
		t.Fatalf("length = %d, want at least %d", length, len("the quick brown fox"))
	}
}

func TestMatcher_NoMatchBelowMinLength(t *testing.T) {
	data := []byte("abcdefghij")
	m := newMatcher(data, 0, len(data), 8192, 8)
	m.resetHash(0)
	for i := 0; i <= len(data)-3; i++ {
		m.advance(i)
	}
	_, length, _ := m.find(5, maxMatchLength, false)
	if length != 0 {
		t.Fatalf("length = %d, want 0 for no prior occurrence", length)
	}
}

func TestMatcher_SublenRecoversDistancePerLength(t *testing.T) {
	data := []byte("AAAAAAAAAAXAAAAAAAAAA")
	m := newMatcher(data, 0, len(data), 8192, 8)
	m.resetHash(0)
	for i := 0; i <= len(data)-3; i++ {
		m.advance(i)
	}

	pos := 11
	_, length, sublen := m.find(pos, maxMatchLength, true)
	if length == 0 || sublen == nil {
		t.Fatalf("expected a match with sublen data at pos %d", pos)
	}
	for l := minMatchLength; l <= length; l++ {
		if sublen[l] != 0 && sublen[l] > pos {
			t.Fatalf("sublen[%d] = %d is not a valid backward distance at pos %d", l, sublen[l], pos)
		}
	}
}
