// SPDX-License-Identifier: Apache-2.0
// Source: github.com/corvusforge/squeeze

package squeeze

import "sort"

// huffmanCode is one symbol's canonical DEFLATE code: a bit length
// and, once assigned, the code value written MSB-first.
type huffmanCode struct {
	length uint8
	code   uint16
}

// buildLengthLimitedLengths runs the package-merge algorithm over
// freq, producing per-symbol code lengths bounded by
// maxbits with minimal total coded cost sum(freq[i]*bl[i]) subject to
// the Kraft inequality. Symbols with freq[i]==0 get bl[i]==0; if
// exactly one symbol is nonzero it gets length 1 (DEFLATE convention,
// not the theoretical 0).
//
// The algorithm: sort nonzero-frequency symbols ascending by weight as
// "leaf" items; build L_1 = the leaves. For each subsequent level up
// to maxbits, form the next list by packaging adjacent pairs from the
// previous (fully-resolved) list together with a fresh copy of the
// leaves, then re-sort by weight. After maxbits levels, the 2n-2
// lightest items in the final list are "taken"; each carries the
// fully-resolved multiset of original leaves it packages, and every
// leaf's occurrence count across the taken items is its code length.
func buildLengthLimitedLengths(freq []uint32, maxbits int) []uint8 {
	n := len(freq)
	bitlen := make([]uint8, n)

	type leaf struct {
		symbol int
		weight uint64
	}
	var leaves []leaf
	for i, f := range freq {
		if f > 0 {
			leaves = append(leaves, leaf{symbol: i, weight: uint64(f)})
		}
	}
	numSymbols := len(leaves)
	if numSymbols == 0 {
		return bitlen
	}
	if numSymbols == 1 {
		bitlen[leaves[0].symbol] = 1
		return bitlen
	}

	sort.SliceStable(leaves, func(i, j int) bool { return leaves[i].weight < leaves[j].weight })

	type item struct {
		weight uint64
		leaves []int // positions into the sorted `leaves` slice
	}

	base := make([]item, numSymbols)
	for i := range leaves {
		base[i] = item{weight: leaves[i].weight, leaves: []int{i}}
	}

	list := append([]item(nil), base...)
	for level := 2; level <= maxbits; level++ {
		next := append([]item(nil), base...)
		for j := 0; j+1 < len(list); j += 2 {
			a, b := list[j], list[j+1]
			merged := item{
				weight: a.weight + b.weight,
				leaves: append(append([]int(nil), a.leaves...), b.leaves...),
			}
			next = append(next, merged)
		}
		sort.SliceStable(next, func(i, j int) bool { return next[i].weight < next[j].weight })
		list = next
	}

	take := 2*numSymbols - 2
	if take > len(list) {
		take = len(list)
	}
	for i := 0; i < take; i++ {
		for _, pos := range list[i].leaves {
			bitlen[leaves[pos].symbol]++
		}
	}
	return bitlen
}

// assignCanonicalCodes converts code lengths into canonical DEFLATE
// codes (RFC 1951 §3.2.2): process symbols in ascending index order,
// handing out successive integers per length bucket, equivalent to
// sorting symbols by (length asc, symbol asc) and assigning integers
// scaled by length, since iterating by symbol already yields ascending
// symbol order within each length bucket.
func assignCanonicalCodes(lengths []uint8, maxbits int) []huffmanCode {
	codes := make([]huffmanCode, len(lengths))

	var blCount [16]int
	for _, l := range lengths {
		if l > 0 {
			blCount[l]++
		}
	}

	var nextCode [16]uint16
	code := uint16(0)
	for bits := 1; bits <= maxbits; bits++ {
		code = (code + uint16(blCount[bits-1])) << 1
		nextCode[bits] = code
	}

	for i, l := range lengths {
		if l == 0 {
			continue
		}
		codes[i] = huffmanCode{length: l, code: nextCode[l]}
		nextCode[l]++
	}
	return codes
}

// huffmanCost returns the total bit cost of encoding freq under
// lengths: sum(freq[i]*lengths[i]).
func huffmanCost(freq []uint32, lengths []uint8) float64 {
	var total float64
	for i, f := range freq {
		if f > 0 {
			total += float64(f) * float64(lengths[i])
		}
	}
	return total
}
