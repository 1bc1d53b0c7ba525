// SPDX-License-Identifier: Apache-2.0
// Source: github.com/corvusforge/squeeze

package squeeze

// Chunk sizes for the cumulative histogram snapshots: a new
// litlen snapshot every llChunkSize entries, a new dist snapshot every
// dChunkSize entries.
const (
	llChunkSize = numLitLenSymbols // 288
	dChunkSize  = 32
)

// lz77Store is the parsed LZ77 stream: parallel arrays of
// litlen-or-length values, distances (0 for literal), source
// positions, plus chunked cumulative histograms for O(1)-amortized
// range-histogram queries. Stores are owned by one compression call and
// reset for reuse across squeeze iterations; nothing outlives the call.
type lz77Store struct {
	litLens []uint16 // literal byte value, or match length, never 256
	dists   []uint32 // 0 for a literal record
	pos     []int    // source position covered by this record

	llHistChunks [][numLitLenSymbols]uint32 // snapshot at every llChunkSize-th entry
	dHistChunks  [][numDistSymbols]uint32   // snapshot at every dChunkSize-th entry

	llTotal [numLitLenSymbols]uint32
	dTotal  [numDistSymbols]uint32
}

func newLZ77Store() *lz77Store {
	return &lz77Store{}
}

// size returns the number of records.
func (s *lz77Store) size() int { return len(s.litLens) }

// reset empties the store for reuse across squeeze iterations.
func (s *lz77Store) reset() {
	s.litLens = s.litLens[:0]
	s.dists = s.dists[:0]
	s.pos = s.pos[:0]
	s.llHistChunks = s.llHistChunks[:0]
	s.dHistChunks = s.dHistChunks[:0]
	s.llTotal = [numLitLenSymbols]uint32{}
	s.dTotal = [numDistSymbols]uint32{}
}

// append adds one record: a literal (dist==0, length is the byte
// value) or a match (dist>0, length in [3,258]). It snapshots the
// cumulative histograms at chunk boundaries before folding the new
// record's symbol counts in.
func (s *lz77Store) append(length, dist, at int) {
	idx := len(s.litLens)
	if idx%llChunkSize == 0 {
		s.llHistChunks = append(s.llHistChunks, s.llTotal)
	}
	if idx%dChunkSize == 0 {
		s.dHistChunks = append(s.dHistChunks, s.dTotal)
	}

	if dist == 0 {
		s.llTotal[length]++
	} else {
		s.llTotal[lengthSymbol(length)]++
		s.dTotal[distSymbol(dist)]++
	}

	s.litLens = append(s.litLens, uint16(length))
	s.dists = append(s.dists, uint32(dist))
	s.pos = append(s.pos, at)
}

// copyFrom replaces s's contents with a copy of src's (used by the
// squeeze controller to promote a working store to the best-seen
// store).
func (s *lz77Store) copyFrom(src *lz77Store) {
	s.litLens = append(s.litLens[:0], src.litLens...)
	s.dists = append(s.dists[:0], src.dists...)
	s.pos = append(s.pos[:0], src.pos...)
	s.llHistChunks = append(s.llHistChunks[:0], src.llHistChunks...)
	s.dHistChunks = append(s.dHistChunks[:0], src.dHistChunks...)
	s.llTotal = src.llTotal
	s.dTotal = src.dTotal
}

// cumulativeLL returns the exact litlen symbol histogram for [0, idx):
// the snapshot taken at idx's chunk start, plus the records since.
// When idx sits exactly at the end of the newest complete chunk, that
// chunk's own snapshot does not exist yet (it is only taken by the
// next append), so the previous one is used and the gap recounted.
func (s *lz77Store) cumulativeLL(idx int) [numLitLenSymbols]uint32 {
	chunk := idx / llChunkSize
	if chunk >= len(s.llHistChunks) {
		chunk = len(s.llHistChunks) - 1
	}
	hist := s.llHistChunks[chunk]
	for i := chunk * llChunkSize; i < idx; i++ {
		s.addLLContribution(&hist, i)
	}
	return hist
}

// cumulativeD returns the exact dist symbol histogram for [0, idx),
// with the same boundary handling as cumulativeLL.
func (s *lz77Store) cumulativeD(idx int) [numDistSymbols]uint32 {
	chunk := idx / dChunkSize
	if chunk >= len(s.dHistChunks) {
		chunk = len(s.dHistChunks) - 1
	}
	hist := s.dHistChunks[chunk]
	for i := chunk * dChunkSize; i < idx; i++ {
		s.addDContribution(&hist, i)
	}
	return hist
}

func (s *lz77Store) addLLContribution(hist *[numLitLenSymbols]uint32, i int) {
	if s.dists[i] == 0 {
		hist[s.litLens[i]]++
	} else {
		hist[lengthSymbol(int(s.litLens[i]))]++
	}
}

func (s *lz77Store) addDContribution(hist *[numDistSymbols]uint32, i int) {
	if s.dists[i] != 0 {
		hist[distSymbol(int(s.dists[i]))]++
	}
}

// histogramLL returns the litlen histogram over [lstart, lend): the
// fast path subtracts two cumulative snapshots when the range spans at
// least 3 chunks, the slow path iterates directly otherwise.
//
// The end-of-block symbol (256) is never stored as a record, so no
// path above ever counts it; it is forced to 1 here regardless of
// range, since every consumer of the histogram (tree building, the
// entropy cost model, block-cost measurement) needs the block
// terminator to be representable.
func (s *lz77Store) histogramLL(lstart, lend int) [numLitLenSymbols]uint32 {
	var out [numLitLenSymbols]uint32
	if lend-lstart >= 3*llChunkSize {
		a := s.cumulativeLL(lstart)
		b := s.cumulativeLL(lend)
		for i := range out {
			out[i] = b[i] - a[i]
		}
	} else {
		for i := lstart; i < lend; i++ {
			s.addLLContribution(&out, i)
		}
	}
	out[endOfBlockSymbol] = 1
	return out
}

// histogramD returns the dist histogram over [lstart, lend), same
// fast/slow split as histogramLL but keyed on the dist chunk size.
func (s *lz77Store) histogramD(lstart, lend int) [numDistSymbols]uint32 {
	var out [numDistSymbols]uint32
	if lend-lstart >= 3*dChunkSize {
		a := s.cumulativeD(lstart)
		b := s.cumulativeD(lend)
		for i := range out {
			out[i] = b[i] - a[i]
		}
		return out
	}
	for i := lstart; i < lend; i++ {
		s.addDContribution(&out, i)
	}
	return out
}

// histogram returns both symbol histograms over [lstart, lend).
func (s *lz77Store) histogram(lstart, lend int) (ll [numLitLenSymbols]uint32, d [numDistSymbols]uint32) {
	return s.histogramLL(lstart, lend), s.histogramD(lstart, lend)
}

// byteRange returns the number of input bytes covered by records
// [lstart, lend).
func (s *lz77Store) byteRange(lstart, lend int) int {
	if lstart >= lend {
		return 0
	}
	return s.pos[lend-1] + advanceFor(s, lend-1) - s.pos[lstart]
}

// advanceFor returns how many input bytes record i covers.
func advanceFor(s *lz77Store, i int) int {
	if s.dists[i] == 0 {
		return 1
	}
	return int(s.litLens[i])
}
