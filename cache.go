// SPDX-License-Identifier: Apache-2.0
// Source: github.com/corvusforge/squeeze

package squeeze

// sublenBreak is one point in a packed sublen table: the distance
// returned by distForLength changes to dist at length.
type sublenBreak struct {
	length uint16
	dist   uint32
}

// matchCache memoizes the longest-match query per position within one
// block. It is allocated at block start and discarded at block
// end; nothing outlives the call that owns it.
type matchCache struct {
	blockStart int
	sublenCap  int

	filled []bool
	limit  []uint16
	length []uint16
	dist   []uint32
	sublen [][]sublenBreak
	cov    []uint16 // max length the packed sublen authoritatively covers
}

func newMatchCache(blockStart, blockSize, sublenCap int) *matchCache {
	return &matchCache{
		blockStart: blockStart,
		sublenCap:  sublenCap,
		filled:     make([]bool, blockSize),
		limit:      make([]uint16, blockSize),
		length:     make([]uint16, blockSize),
		dist:       make([]uint32, blockSize),
		sublen:     make([][]sublenBreak, blockSize),
		cov:        make([]uint16, blockSize),
	}
}

// cacheResult is what tryGet returns on a hit.
type cacheResult struct {
	Length int
	Dist   int
	sublen []sublenBreak
}

// tryGet answers a query from the cache. ok is true when the cache is
// authoritative for this query, in which case result is final. A
// record is authoritative when the remembered limit covers the current
// one, or when the earlier search stopped naturally below its own
// limit; either way, if the query needs per-length distances (a
// shortened length, or wantSublen) the packed sublen must cover the
// returned length, else the caller re-scans (the packing may have
// dropped breakpoints past sublenCap).
func (c *matchCache) tryGet(pos, limit int, wantSublen bool) (result cacheResult, ok bool) {
	idx := pos - c.blockStart
	if !c.filled[idx] {
		return cacheResult{}, false
	}

	eLimit := int(c.limit[idx])
	eLength := int(c.length[idx])

	if eLimit < limit && !(eLength < eLimit && eLength <= limit) {
		return cacheResult{}, false
	}

	length := eLength
	if length > limit {
		length = limit
	}
	if wantSublen && int(c.cov[idx]) < length {
		return cacheResult{}, false
	}

	// The best distance for the full cached length also achieves any
	// capped shorter length; the packed sublen, when it covers the
	// capped length, may know a smaller one.
	dist := int(c.dist[idx])
	if length != eLength && int(c.cov[idx]) >= length {
		dist = c.distForLength(idx, length)
	}
	return cacheResult{
		Length: length,
		Dist:   dist,
		sublen: c.sublen[idx],
	}, true
}

// distForLength returns the best known distance achieving a match of
// at least `length`, from the packed sublen breakpoints (or the plain
// best distance when no sublen was recorded).
func (c *matchCache) distForLength(idx, length int) int {
	sub := c.sublen[idx]
	if len(sub) == 0 {
		return int(c.dist[idx])
	}
	best := int(c.dist[idx])
	for _, b := range sub {
		if int(b.length) > length {
			break
		}
		best = int(b.dist)
	}
	return best
}

// store records the result of an exhaustive search at pos under the
// given limit. sublenByLength, if non-nil, is indexed by match length
// (sublenByLength[l] = best distance achieving >= l, for l in
// [minMatchLength, length]); it is compressed to at most sublenCap
// breakpoints. Lengths at or past the first dropped breakpoint are not
// covered by the packed table (cov records the last covered length),
// and tryGet refuses per-length queries there.
func (c *matchCache) store(pos, limit, length, dist int, sublenByLength []int) {
	idx := pos - c.blockStart
	c.filled[idx] = true
	c.limit[idx] = uint16(limit)
	c.length[idx] = uint16(length)
	c.dist[idx] = uint32(dist)
	if sublenByLength != nil {
		var cov int
		c.sublen[idx], cov = packSublen(sublenByLength, length, c.sublenCap)
		c.cov[idx] = uint16(cov)
	}
}

// packSublen compresses a per-length distance table into at most cap
// change points, and reports the largest length the packed table still
// answers exactly (change points past the cap are dropped, so lengths
// at or beyond the first dropped one are not covered).
func packSublen(sublenByLength []int, length, cap int) (breaks []sublenBreak, cov int) {
	prev := -1
	for l := minMatchLength; l <= length; l++ {
		d := sublenByLength[l]
		if d != prev {
			if len(breaks) == cap {
				return breaks, l - 1
			}
			breaks = append(breaks, sublenBreak{length: uint16(l), dist: uint32(d)})
			prev = d
		}
	}
	return breaks, length
}

// expandSublen materializes a per-length distance array from packed
// breakpoints, into a caller-owned copy of scratch.
func expandSublen(breaks []sublenBreak, length int, scratch []int) []int {
	buf := scratch[:length+1]
	for i := range buf {
		buf[i] = 0
	}
	idx, cur := 0, 0
	for l := minMatchLength; l <= length; l++ {
		for idx < len(breaks) && int(breaks[idx].length) <= l {
			cur = int(breaks[idx].dist)
			idx++
		}
		buf[l] = cur
	}
	return append([]int(nil), buf...)
}
