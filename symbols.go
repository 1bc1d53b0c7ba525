// SPDX-License-Identifier: Apache-2.0
// Source: github.com/corvusforge/squeeze

package squeeze

import "math/bits"

// DEFLATE symbol-space sizes. The code length arrays passed
// to the Huffman builder always have exactly these many entries.
const (
	numLitLenSymbols = 288
	numDistSymbols   = 32
	endOfBlockSymbol = 256

	minMatchLength = 3
	maxMatchLength = 258
	minDistance    = 1
	maxDistance    = 32768
)

// lengthBase[i] / lengthExtraBitsCount[i] describe length symbol 257+i:
// the base length and the number of extra bits that follow it.
var lengthBase = [29]int{
	3, 4, 5, 6, 7, 8, 9, 10, 11, 13, 15, 17, 19, 23, 27, 31,
	35, 43, 51, 59, 67, 83, 99, 115, 131, 163, 195, 227, 258,
}

var lengthExtraBitsCount = [29]int{
	0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2,
	3, 3, 3, 3, 4, 4, 4, 4, 5, 5, 5, 5, 0,
}

// lengthSymbolTable[L] is the litlen symbol for match length L, built
// once from lengthBase/lengthExtraBitsCount.
var lengthSymbolTable [maxMatchLength + 1]uint16

func init() {
	sym := 0
	for l := minMatchLength; l <= maxMatchLength; l++ {
		for sym < len(lengthBase)-1 && l >= lengthBase[sym+1] {
			sym++
		}
		lengthSymbolTable[l] = uint16(257 + sym)
	}
}

// lengthSymbol returns the DEFLATE litlen symbol (257..285) encoding a
// match of length L, L in [3,258].
func lengthSymbol(l int) int {
	return int(lengthSymbolTable[l])
}

// lengthExtraBits returns the extra-bit count and value for a match of
// length L, to be written after its litlen symbol.
func lengthExtraBits(l int) (count, value int) {
	sym := lengthSymbol(l) - 257
	count = lengthExtraBitsCount[sym]
	value = l - lengthBase[sym]
	return count, value
}

// distBase[i] / distExtraBitsCount[i] describe distance symbol i: the
// base distance and the number of extra bits that follow it.
var distBase = [30]int{
	1, 2, 3, 4, 5, 7, 9, 13, 17, 25, 33, 49, 65, 97, 129, 193,
	257, 385, 513, 769, 1025, 1537, 2049, 3073, 4097, 6145,
	8193, 12289, 16385, 24577,
}

var distExtraBitsCount = [30]int{
	0, 0, 0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6,
	7, 7, 8, 8, 9, 9, 10, 10, 11, 11, 12, 12, 13, 13,
}

// distSymbol returns the DEFLATE distance symbol (0..29) for distance D
// in [1,32768], computed for D>=5 as 2*floor(log2(D-1)) plus the bit of
// D-1 just below its top bit, rather than scanned from distBase (the
// closed form avoids a 30-step scan on
// the hottest path in the shortest-path parser).
func distSymbol(d int) int {
	if d < 5 {
		return d - 1
	}
	l := bits.Len32(uint32(d-1)) - 1
	t := ((d - 1) >> (l - 1)) & 1
	return l*2 + t
}

// distExtraBits returns the extra-bit count and value for distance D.
func distExtraBits(d int) (count, value int) {
	sym := distSymbol(d)
	count = distExtraBitsCount[sym]
	value = d - distBase[sym]
	return count, value
}

// fixedLitLenLengths returns the 288 code lengths DEFLATE btype 01
// mandates for the literal/length alphabet (RFC 1951 §3.2.6).
func fixedLitLenLengths() [numLitLenSymbols]uint8 {
	var lens [numLitLenSymbols]uint8
	for i := 0; i <= 143; i++ {
		lens[i] = 8
	}
	for i := 144; i <= 255; i++ {
		lens[i] = 9
	}
	for i := 256; i <= 279; i++ {
		lens[i] = 7
	}
	for i := 280; i <= 287; i++ {
		lens[i] = 8
	}
	return lens
}

// fixedDistLengths returns the 32 code lengths DEFLATE btype 01
// mandates for the distance alphabet: all 5 bits (only 30 are valid
// distance symbols; the remaining 2 slots are never used).
func fixedDistLengths() [numDistSymbols]uint8 {
	var lens [numDistSymbols]uint8
	for i := range lens {
		lens[i] = 5
	}
	return lens
}
