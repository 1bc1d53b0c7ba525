// SPDX-License-Identifier: Apache-2.0
// Source: github.com/corvusforge/squeeze

package squeeze

// greedyLZ77 runs a single lazy-matching pass over [instart, inend) and
// appends the result to store. It is used only to seed the
// first statistics for the iterative squeeze controller, never for
// final output.
func greedyLZ77(m *matcher, input []byte, instart, inend int, store *lz77Store) {
	m.resetHash(instart)

	// advanced tracks the last position whose hash update() has run;
	// ensureAdvanced lets lookahead and match-skip both call update()
	// exactly once per position, in order, regardless of which branch
	// below reaches a given position first.
	advanced := instart - 1
	ensureAdvanced := func(p int) {
		for advanced < p {
			advanced++
			m.advance(advanced)
		}
	}

	pos := instart
	for pos < inend {
		ensureAdvanced(pos)
		dist, length, _ := m.find(pos, maxMatchLength, false)

		if length >= minMatchLength && pos+1 < inend {
			ensureAdvanced(pos + 1)
			_, lookaheadLen, _ := m.find(pos+1, maxMatchLength, false)
			if lookaheadLen > length {
				store.append(int(input[pos]), 0, pos)
				pos++
				continue
			}
			store.append(length, dist, pos)
			pos += length
			continue
		}

		if length >= minMatchLength {
			store.append(length, dist, pos)
			pos += length
			continue
		}

		store.append(int(input[pos]), 0, pos)
		pos++
	}
}
