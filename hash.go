// SPDX-License-Identifier: Apache-2.0
// Source: github.com/corvusforge/squeeze

package squeeze

// chainHashBits / chainHashMask size the primary and secondary hash
// tables at 2^15 entries. HASH_SHIFT=5 combined with a 15-bit mask
// means three successive folds exactly displace the oldest byte out
// of the hash value, turning the fold-and-mask step below into a true
// rolling hash of the 3-byte window ending at the folded-in
// position.
const (
	chainHashShift = 5
	chainHashBits  = 15
	chainHashMask  = (1 << chainHashBits) - 1
	chainHashSize  = 1 << chainHashBits

	maxSameRun = 65535
)

// rollingHash is the sliding-window chain index: for every
// position it can answer "where did an identical 3-byte prefix
// previously occur", with a secondary same-run-accelerated chain for
// long runs of identical bytes. Positions are absolute indices into
// the input the encoder context owns; distances are bounded by the
// caller comparing pos-candidate against maxDistance.
type rollingHash struct {
	data []byte

	head  [chainHashSize]int32 // most recent absolute pos with this hash, -1 if none
	prev  []int32              // prev occurrence sharing the same hash, -1 if none
	same  []uint16             // run length of bytes equal to data[pos], capped at maxSameRun
	head2 [chainHashSize]int32 // secondary ("same-hash") chain head
	prev2 []int32              // secondary chain links

	val uint32 // current rolling 3-byte hash value
}

// newRollingHash allocates chain storage sized to data. The caller
// must call reset before the first update.
func newRollingHash(data []byte) *rollingHash {
	return &rollingHash{
		data:  data,
		prev:  make([]int32, len(data)),
		same:  make([]uint16, len(data)),
		prev2: make([]int32, len(data)),
	}
}

func foldHashByte(val uint32, c byte) uint32 {
	return ((val << chainHashShift) ^ uint32(c)) & chainHashMask
}

// reset clears the chain heads and warms up the rolling hash at
// windowStart by folding in its first two bytes, so the following
// update(windowStart) folds in the third byte and completes the first
// 3-byte window.
func (h *rollingHash) reset(windowStart int) {
	for i := range h.head {
		h.head[i] = -1
		h.head2[i] = -1
	}
	h.val = 0
	if windowStart < len(h.data) {
		h.val = foldHashByte(h.val, h.data[windowStart])
	}
	if windowStart+1 < len(h.data) {
		h.val = foldHashByte(h.val, h.data[windowStart+1])
	}
}

// update folds array[pos+2] (or 0 past end of input) into the rolling
// hash, completing the 3-byte window starting at pos, then inserts pos
// into the primary and secondary chains and refreshes the same-run
// counter. Callers must invoke update once per consecutive position;
// it must never be skipped even when the caller advances by a whole
// match length.
func (h *rollingHash) update(pos int) {
	var c byte
	if pos+2 < len(h.data) {
		c = h.data[pos+2]
	}
	h.val = foldHashByte(h.val, c)

	if head := h.head[h.val]; head != -1 {
		h.prev[pos] = head
	} else {
		h.prev[pos] = -1
	}
	h.head[h.val] = int32(pos)

	amount := 0
	if pos > 0 && h.same[pos-1] > 1 {
		amount = int(h.same[pos-1]) - 1
	}
	for pos+amount+1 < len(h.data) && h.data[pos+amount+1] == h.data[pos] && amount < maxSameRun {
		amount++
	}
	h.same[pos] = uint16(amount)

	val2 := (uint32(h.same[pos]) << chainHashShift) ^ h.val
	val2 &= chainHashMask
	if head2 := h.head2[val2]; head2 != -1 {
		h.prev2[pos] = head2
	} else {
		h.prev2[pos] = -1
	}
	h.head2[val2] = int32(pos)
}

// chainHead returns the most recent position before pos sharing pos's
// 3-byte hash, or -1 if none. update(pos) must have already run.
func (h *rollingHash) chainHead(pos int) int32 {
	return h.prev[pos]
}

// chainNext walks to the next older node sharing the same hash.
func (h *rollingHash) chainNext(node int32) int32 {
	return h.prev[node]
}

// secondaryChainHead / secondaryChainNext walk the same-run-accelerated
// chain, consulted by the match finder when sameRun(pos) is large.
func (h *rollingHash) secondaryChainHead(pos int) int32 {
	return h.prev2[pos]
}

func (h *rollingHash) secondaryChainNext(node int32) int32 {
	return h.prev2[node]
}

// sameRun returns the number of bytes forward from pos equal to
// data[pos] (capped at maxSameRun).
func (h *rollingHash) sameRun(pos int) int {
	return int(h.same[pos])
}
