// SPDX-License-Identifier: Apache-2.0
// Source: github.com/corvusforge/squeeze

package squeeze

// matcher bundles the rolling hash and match cache that back the
// longest-match finder for one compression call. It owns a
// reusable sublen scratch buffer so repeated find() calls during a
// shortest-path parse don't each allocate one.
type matcher struct {
	input        []byte
	hash         *rollingHash
	cache        *matchCache
	maxChainHits int
	sameRunStart int // sameRun() above this triggers the secondary chain walk
	scratch      []int
}

// newMatcher allocates a matcher over input, with its cache scoped to
// [blockStart, blockStart+blockSize).
func newMatcher(input []byte, blockStart, blockSize, maxChainHits, sublenCap int) *matcher {
	return &matcher{
		input:        input,
		hash:         newRollingHash(input),
		cache:        newMatchCache(blockStart, blockSize, sublenCap),
		maxChainHits: maxChainHits,
		sameRunStart: 32,
		scratch:      make([]int, maxMatchLength+1),
	}
}

// resetHash re-warms the rolling hash ahead of scanning windowStart.
func (m *matcher) resetHash(windowStart int) { m.hash.reset(windowStart) }

// advance folds the byte 2 ahead of pos into the rolling hash and
// indexes pos. Must be called once per consecutive input position.
func (m *matcher) advance(pos int) { m.hash.update(pos) }

// find returns the longest back-reference for a
// 3-byte-prefix match at pos, capped at limit (<=258). When wantSublen
// is true, the returned sublen slice maps length -> best distance
// achieving at least that length, for length in [minMatchLength,
// returned length].
func (m *matcher) find(pos, limit int, wantSublen bool) (dist, length int, sublen []int) {
	if limit < minMatchLength {
		return 0, 0, nil
	}
	inend := len(m.input)
	if pos+minMatchLength > inend {
		return 0, 0, nil
	}
	if limit > maxMatchLength {
		limit = maxMatchLength
	}
	if avail := inend - pos; avail < limit {
		limit = avail
	}

	if res, ok := m.cache.tryGet(pos, limit, wantSublen); ok {
		if wantSublen && res.sublen != nil {
			sublen = expandSublen(res.sublen, res.Length, m.scratch)
		}
		return res.Dist, res.Length, sublen
	}

	bestLen, bestDist := 0, 0
	var sublenBuf []int
	if wantSublen {
		sublenBuf = m.scratch[:limit+1]
		for i := range sublenBuf {
			sublenBuf[i] = 0
		}
	}

	hits := 0
	consider := func(cand int32) bool {
		d := pos - int(cand)
		if d <= 0 || d > maxDistance {
			return false
		}
		l := commonPrefixLen(m.input, pos, int(cand), limit)
		if l >= minMatchLength {
			if wantSublen {
				for ll := minMatchLength; ll <= l; ll++ {
					if sublenBuf[ll] == 0 || d < sublenBuf[ll] {
						sublenBuf[ll] = d
					}
				}
			}
			if l > bestLen || (l == bestLen && d < bestDist) {
				bestLen, bestDist = l, d
			}
		}
		hits++
		return bestLen < limit && hits < m.maxChainHits
	}

	for node := m.hash.chainHead(pos); node != -1 && hits < m.maxChainHits; node = m.hash.chainNext(node) {
		if !consider(node) {
			break
		}
	}

	if m.hash.sameRun(pos) >= m.sameRunStart {
		for node := m.hash.secondaryChainHead(pos); node != -1 && hits < m.maxChainHits; node = m.hash.secondaryChainNext(node) {
			if !consider(node) {
				break
			}
		}
	}

	if wantSublen {
		m.cache.store(pos, limit, bestLen, bestDist, sublenBuf)
		if bestLen > 0 {
			sublen = append([]int(nil), sublenBuf[:bestLen+1]...)
		}
	} else {
		m.cache.store(pos, limit, bestLen, bestDist, nil)
	}
	return bestDist, bestLen, sublen
}

// commonPrefixLen returns the length of the common prefix of
// data[pos:] and data[cand:], capped at limit.
func commonPrefixLen(data []byte, pos, cand, limit int) int {
	n := 0
	for n < limit && data[pos+n] == data[cand+n] {
		n++
	}
	return n
}
