// SPDX-License-Identifier: Apache-2.0
// Source: github.com/corvusforge/squeeze

package squeeze

import "math"

// shortestPathParse runs one forward dynamic-programming pass over
// [instart, inend) under costs, choosing at every position the
// cheapest way to reach it (literal or one of the match lengths the
// longest-match finder's sublen table offers), then reconstructs the
// winning path and appends it to store.
//
// cost[i] is the minimum bit cost to reach offset instart+i; lengthAt
// and distAt record the edge (length and dist, with dist 0 for a literal)
// that achieved it, enabling backward reconstruction.
func shortestPathParse(m *matcher, costs *symbolCosts, input []byte, instart, inend int, store *lz77Store) {
	n := inend - instart
	if n == 0 {
		return
	}

	cost := make([]float64, n+1)
	lengthAt := make([]int, n+1)
	distAt := make([]int, n+1)
	for i := 1; i <= n; i++ {
		cost[i] = math.MaxFloat64
	}

	m.resetHash(instart)
	advanced := instart - 1
	ensureAdvanced := func(p int) {
		for advanced < p {
			advanced++
			m.advance(advanced)
		}
	}

	for i := 0; i < n; i++ {
		pos := instart + i
		ensureAdvanced(pos)
		if cost[i] == math.MaxFloat64 {
			continue
		}

		litCost := cost[i] + costs.literalCost(input[pos])
		if litCost < cost[i+1] {
			cost[i+1] = litCost
			lengthAt[i+1] = 1
			distAt[i+1] = 0
		}

		maxLen := n - i
		if maxLen < minMatchLength {
			continue
		}
		_, bestLen, sublen := m.find(pos, maxLen, true)
		if bestLen < minMatchLength || sublen == nil {
			continue
		}
		for kk := minMatchLength; kk <= bestLen; kk++ {
			d := sublen[kk]
			if d == 0 {
				continue
			}
			c := cost[i] + costs.matchCost(kk, d)
			if c < cost[i+kk] {
				cost[i+kk] = c
				lengthAt[i+kk] = kk
				distAt[i+kk] = d
			}
		}
	}

	type edge struct{ length, dist int }
	var edges []edge
	for i := n; i > 0; {
		l := lengthAt[i]
		if l == 0 {
			l = 1 // unreachable-by-match fallback: never hit once cost[i] is finite
		}
		edges = append(edges, edge{length: l, dist: distAt[i]})
		i -= l
	}

	pos := instart
	for j := len(edges) - 1; j >= 0; j-- {
		e := edges[j]
		if e.dist == 0 {
			store.append(int(input[pos]), 0, pos)
			pos++
		} else {
			store.append(e.length, e.dist, pos)
			pos += e.length
		}
	}
}
