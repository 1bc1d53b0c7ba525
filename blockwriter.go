// SPDX-License-Identifier: Apache-2.0
// Source: github.com/corvusforge/squeeze

package squeeze

// clcOrder is the fixed permutation RFC 1951 §3.2.7 writes the code
// length alphabet's own code lengths in.
var clcOrder = [19]int{16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15}

// clcExtraBits[s] is the extra-bit count for code-length alphabet
// symbol s: 16 repeats the previous length 3-6 times, 17 repeats a
// zero length 3-10 times, 18 repeats a zero length 11-138 times.
var clcExtraBits = [19]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 2, 3, 7}

// clcSymbol is one entry in the RLE-encoded code-length sequence.
type clcSymbol struct {
	sym   uint8
	extra int
}

// rleEncode packs a code-length array into the run-length symbols the
// code-length alphabet understands.
func rleEncode(lengths []uint8) []clcSymbol {
	var out []clcSymbol
	n := len(lengths)
	i := 0
	for i < n {
		val := lengths[i]
		total := 1
		for i+total < n && lengths[i+total] == val {
			total++
		}
		remaining := total

		if val == 0 {
			for remaining > 0 {
				switch {
				case remaining >= 11:
					c := remaining
					if c > 138 {
						c = 138
					}
					out = append(out, clcSymbol{sym: 18, extra: c - 11})
					remaining -= c
				case remaining >= 3:
					c := remaining
					if c > 10 {
						c = 10
					}
					out = append(out, clcSymbol{sym: 17, extra: c - 3})
					remaining -= c
				default:
					out = append(out, clcSymbol{sym: 0})
					remaining--
				}
			}
		} else {
			out = append(out, clcSymbol{sym: val})
			remaining--
			for remaining > 0 {
				if remaining >= 3 {
					c := remaining
					if c > 6 {
						c = 6
					}
					out = append(out, clcSymbol{sym: 16, extra: c - 3})
					remaining -= c
				} else {
					for ; remaining > 0; remaining-- {
						out = append(out, clcSymbol{sym: val})
					}
				}
			}
		}
		i += total
	}
	return out
}

func clcFrequencies(symbols []clcSymbol) [19]uint32 {
	var freq [19]uint32
	for _, s := range symbols {
		freq[s.sym]++
	}
	return freq
}

// trimTrailingZeroLengths returns how many entries of lens to encode:
// trailing zero-length codes are dropped, down to minCount.
func trimTrailingZeroLengths(lens []uint8, minCount int) int {
	n := len(lens)
	for n > minCount && lens[n-1] == 0 {
		n--
	}
	return n
}

// patchDistanceCodesForBuggyDecoders forces at least two nonzero-length
// distance codes. Some third-party DEFLATE decoders reject a dynamic
// block whose distance tree has fewer than two codes; the wasted bits
// are cheaper than failing to decode. The dummy codes go to symbols 0
// and 1 so no length is ever assigned to the reserved symbols 30/31.
func patchDistanceCodesForBuggyDecoders(dLen []uint8) {
	count, only := 0, -1
	for i, l := range dLen {
		if l != 0 {
			count++
			only = i
		}
	}
	switch count {
	case 0:
		dLen[0], dLen[1] = 1, 1
	case 1:
		if only == 0 {
			dLen[1] = 1
		} else {
			dLen[0] = 1
		}
	}
}

// dynamicTree bundles the litlen, dist, and code-length trees needed
// to measure and emit one dynamic Huffman block.
type dynamicTree struct {
	llLen, dLen     []uint8
	llCodes, dCodes []huffmanCode
	clcSyms         []clcSymbol
	clcLen          []uint8
	clcCodes        []huffmanCode
	hlit, hdist     int
	hclen           int
}

func buildDynamicTree(ll [numLitLenSymbols]uint32, d [numDistSymbols]uint32) *dynamicTree {
	llLen := buildLengthLimitedLengths(ll[:], 15)
	dLen := buildLengthLimitedLengths(d[:], 15)
	patchDistanceCodesForBuggyDecoders(dLen)

	hlit := trimTrailingZeroLengths(llLen, 257)
	hdist := trimTrailingZeroLengths(dLen, 1)

	combined := append(append([]uint8(nil), llLen[:hlit]...), dLen[:hdist]...)
	clcSyms := rleEncode(combined)
	clcFreq := clcFrequencies(clcSyms)
	clcLen := buildLengthLimitedLengths(clcFreq[:], 7)

	hclen := 19
	for hclen > 4 && clcLen[clcOrder[hclen-1]] == 0 {
		hclen--
	}

	debugAssertLengths(llLen, 15)
	debugAssertLengths(dLen, 15)
	debugAssertEndOfBlock(llLen)

	return &dynamicTree{
		llLen:    llLen,
		dLen:     dLen,
		llCodes:  assignCanonicalCodes(llLen, 15),
		dCodes:   assignCanonicalCodes(dLen, 15),
		clcSyms:  clcSyms,
		clcLen:   clcLen[:],
		clcCodes: assignCanonicalCodes(clcLen[:], 7),
		hlit:     hlit,
		hdist:    hdist,
		hclen:    hclen,
	}
}

func (t *dynamicTree) headerBits() float64 {
	bits := 5 + 5 + 4 + t.hclen*3
	for _, s := range t.clcSyms {
		bits += int(t.clcCodes[s.sym].length) + clcExtraBits[s.sym]
	}
	return float64(bits)
}

func (t *dynamicTree) dataBits(store *lz77Store, lstart, lend int) float64 {
	var bits float64
	for i := lstart; i < lend; i++ {
		if store.dists[i] == 0 {
			bits += float64(t.llCodes[store.litLens[i]].length)
			continue
		}
		lsym := lengthSymbol(int(store.litLens[i]))
		lx, _ := lengthExtraBits(int(store.litLens[i]))
		dsym := distSymbol(int(store.dists[i]))
		dx, _ := distExtraBits(int(store.dists[i]))
		bits += float64(t.llCodes[lsym].length) + float64(t.dCodes[dsym].length) + float64(lx+dx)
	}
	bits += float64(t.llCodes[endOfBlockSymbol].length)
	return bits
}

func fixedDataBits(store *lz77Store, lstart, lend int) float64 {
	llLen := fixedLitLenLengths()
	dLen := fixedDistLengths()
	var bits float64
	for i := lstart; i < lend; i++ {
		if store.dists[i] == 0 {
			bits += float64(llLen[store.litLens[i]])
			continue
		}
		lsym := lengthSymbol(int(store.litLens[i]))
		lx, _ := lengthExtraBits(int(store.litLens[i]))
		dsym := distSymbol(int(store.dists[i]))
		dx, _ := distExtraBits(int(store.dists[i]))
		bits += float64(llLen[lsym]) + float64(dLen[dsym]) + float64(lx+dx)
	}
	bits += float64(llLen[endOfBlockSymbol])
	return bits
}

// fixedCandidate re-parses [instart, inend) under the fixed Huffman
// cost model into a fresh store, rather than reusing the
// dynamic-optimized parse's literal/match choices: a parse tuned for a
// dynamic tree's entropies is not the cheapest parse under the fixed
// tree's lengths.
func fixedCandidate(m *matcher, input []byte, instart, inend int) *lz77Store {
	fixedStore := newLZ77Store()
	squeezeLZ77Fixed(m, input, instart, inend, fixedStore)
	return fixedStore
}

// maxStoredBlockLen is the largest payload a single btype 00 block can
// carry: LEN/NLEN are 16-bit fields (RFC 1951 §3.2.4), so a stored
// range longer than this must be split across multiple stored blocks,
// each but the last non-final.
const maxStoredBlockLen = 65535

// storedBlockBits approximates the bit cost of a stored (btype 00)
// block: 3 header bits rounded up to a byte boundary in the worst
// case, a 4-byte LEN/NLEN pair per 65535-byte segment, and the raw
// bytes.
func storedBlockBits(n int) float64 {
	segments := (n + maxStoredBlockLen - 1) / maxStoredBlockLen
	if segments == 0 {
		segments = 1
	}
	return float64(segments)*(8+32) + float64(n)*8
}

func boolBit(b bool) uint {
	if b {
		return 1
	}
	return 0
}

func emitCode(w *bitWriter, c huffmanCode) {
	w.addHuffmanBits(uint(c.code), int(c.length))
}

func writeSymbols(w *bitWriter, store *lz77Store, lstart, lend int, llCodes, dCodes []huffmanCode) {
	for i := lstart; i < lend; i++ {
		if store.dists[i] == 0 {
			emitCode(w, llCodes[store.litLens[i]])
			continue
		}
		lsym := lengthSymbol(int(store.litLens[i]))
		emitCode(w, llCodes[lsym])
		if lx, lv := lengthExtraBits(int(store.litLens[i])); lx > 0 {
			w.addBits(uint(lv), lx)
		}
		dsym := distSymbol(int(store.dists[i]))
		emitCode(w, dCodes[dsym])
		if dx, dv := distExtraBits(int(store.dists[i])); dx > 0 {
			w.addBits(uint(dv), dx)
		}
	}
	emitCode(w, llCodes[endOfBlockSymbol])
}

func writeStoredBlock(w *bitWriter, input []byte, start, end int, final bool) {
	w.addBit(boolBit(final))
	w.addBits(0, 2)
	w.alignToByte()
	n := end - start
	w.addRawBytes([]byte{byte(n), byte(n >> 8)})
	w.addRawBytes([]byte{byte(^n), byte(^n >> 8)})
	w.addRawBytes(input[start:end])
}

// writeStoredBlocks splits [start,end) into maxStoredBlockLen-sized
// stored blocks: LEN/NLEN only have 16 bits to give, so a range wider
// than that cannot fit in one btype 00 block. Only the final segment
// of the final range carries BFINAL.
func writeStoredBlocks(w *bitWriter, input []byte, start, end int, final bool) {
	if end == start {
		writeStoredBlock(w, input, start, end, final)
		return
	}
	for start < end {
		n := end - start
		if n > maxStoredBlockLen {
			n = maxStoredBlockLen
		}
		segEnd := start + n
		writeStoredBlock(w, input, start, segEnd, final && segEnd == end)
		start = segEnd
	}
}

func writeFixedBlock(w *bitWriter, store *lz77Store, lstart, lend int, final bool) {
	w.addBit(boolBit(final))
	w.addBits(1, 2)
	llLen := fixedLitLenLengths()
	dLen := fixedDistLengths()
	llCodes := assignCanonicalCodes(llLen[:], 9)
	dCodes := assignCanonicalCodes(dLen[:], 5)
	writeSymbols(w, store, lstart, lend, llCodes, dCodes)
}

func writeDynamicBlock(w *bitWriter, store *lz77Store, lstart, lend int, tree *dynamicTree, final bool) {
	w.addBit(boolBit(final))
	w.addBits(2, 2)
	w.addBits(uint(tree.hlit-257), 5)
	w.addBits(uint(tree.hdist-1), 5)
	w.addBits(uint(tree.hclen-4), 4)
	for i := 0; i < tree.hclen; i++ {
		w.addBits(uint(tree.clcLen[clcOrder[i]]), 3)
	}
	for _, s := range tree.clcSyms {
		emitCode(w, tree.clcCodes[s.sym])
		if clcExtraBits[s.sym] > 0 {
			w.addBits(uint(s.extra), clcExtraBits[s.sym])
		}
	}
	writeSymbols(w, store, lstart, lend, tree.llCodes, tree.dCodes)
}

// writeBlock measures the stored, fixed, and dynamic encodings of
// store's records [lstart, lend) and emits whichever is cheapest. m
// is the matcher covering the master block these records
// were parsed from; it re-drives an independent fixed-cost-model parse
// for the fixed candidate rather than reusing the dynamic parse.
func writeBlock(w *bitWriter, input []byte, m *matcher, store *lz77Store, lstart, lend int, final bool) {
	if lend == lstart {
		writeFixedBlock(w, store, lstart, lend, final)
		return
	}

	instart := store.pos[lstart]
	inend := store.pos[lend-1] + advanceFor(store, lend-1)

	ll, d := store.histogram(lstart, lend)
	tree := buildDynamicTree(ll, d)

	fixedStore := fixedCandidate(m, input, instart, inend)

	dynamicBits := 3 + tree.headerBits() + tree.dataBits(store, lstart, lend)
	fixedBits := 3 + fixedDataBits(fixedStore, 0, fixedStore.size())
	storedBits := storedBlockBits(inend - instart)

	// Strict comparisons keep ties on the entropy-coded candidates,
	// and fixed only beats dynamic when genuinely smaller, so equal
	// costs always resolve the same way on every platform.
	switch {
	case storedBits < fixedBits && storedBits < dynamicBits:
		writeStoredBlocks(w, input, instart, inend, final)
	case fixedBits < dynamicBits:
		writeFixedBlock(w, fixedStore, 0, fixedStore.size(), final)
	default:
		writeDynamicBlock(w, store, lstart, lend, tree, final)
	}
}
