// SPDX-License-Identifier: Apache-2.0
// Source: github.com/corvusforge/squeeze

package squeeze

// masterBlockSize caps how much input one top-level call feeds
// through the block splitter and squeeze controller at a time.
// Chunking oversized input this way keeps memory bounded without
// materially hurting the ratio, since the block splitter still
// subdivides within each chunk.
const masterBlockSize = 1 << 20

// Compress runs the full squeeze pipeline over input with the given
// iteration count and BFINAL flag, using default resource limits. It
// is a thin convenience wrapper over CompressWithOptions.
func Compress(input []byte, iterations int, final bool) ([]byte, error) {
	return CompressWithOptions(input, &CompressOptions{Iterations: iterations, Final: final})
}

// CompressWithOptions runs the full squeeze pipeline: the
// input is chunked into master blocks, each master block is parsed by
// the iterative squeeze controller, the resulting LZ77 stream is split
// into sub-blocks by the block splitter, and each sub-block is emitted
// as whichever of stored/fixed/dynamic DEFLATE encoding is cheapest. The result is a
// raw DEFLATE bit stream with no zlib or gzip framing; see
// internal/zlibframe for wrapping it for PNG IDAT use.
func CompressWithOptions(input []byte, options *CompressOptions) ([]byte, error) {
	opts := options.normalize()
	if opts.MaxInputSize > 0 && len(input) > opts.MaxInputSize {
		return nil, ErrOutOfMemory
	}

	w := newBitWriter(len(input))

	if len(input) == 0 {
		// An empty stored block is the cheapest possible encoding of
		// no data at all: 3 header bits, byte-align padding,
		// then a zero-length LEN/NLEN pair and no payload.
		writeStoredBlock(w, input, 0, 0, opts.Final)
		return w.bytes(), nil
	}

	for masterStart := 0; masterStart < len(input); masterStart += masterBlockSize {
		masterEnd := masterStart + masterBlockSize
		if masterEnd > len(input) {
			masterEnd = len(input)
		}
		isLastMaster := masterEnd == len(input)

		m := newMatcher(input, masterStart, masterEnd-masterStart, opts.MaxChainHits, opts.SublenCap)
		store := newLZ77Store()

		iterations := opts.Iterations
		if iterations <= 0 {
			iterations = Iterations(masterEnd - masterStart)
		}
		squeezeLZ77(m, input, masterStart, masterEnd, iterations, store)
		debugAssertStore(store)

		var splits []int
		if !opts.NoBlockSplitting {
			splits = blockSplitPoints(store, opts.MaxBlocks)
		}

		bounds := append(append([]int{0}, splits...), store.size())
		for i := 0; i+1 < len(bounds); i++ {
			lstart, lend := bounds[i], bounds[i+1]
			blockFinal := isLastMaster && i+2 == len(bounds) && opts.Final
			writeBlock(w, input, m, store, lstart, lend, blockFinal)
		}
	}

	return w.bytes(), nil
}
