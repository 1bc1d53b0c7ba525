// SPDX-License-Identifier: Apache-2.0
// Source: github.com/corvusforge/squeeze

package squeeze

// bitWriter is a grow-only bit sink. Invariant:
// if bitPos==0 every byte in data is complete and the next bit starts a
// new byte; otherwise only the low bitPos bits of the last byte are
// meaningful.
type bitWriter struct {
	data   []byte
	bitPos uint // bits used in the last byte, in [0,7]
}

// newBitWriter returns an empty bit sink with its backing slice
// pre-sized to reduce reallocation for inputs around sizeHint bytes.
func newBitWriter(sizeHint int) *bitWriter {
	return &bitWriter{data: make([]byte, 0, sizeHint/2+16)}
}

// addBit appends one bit LSB-first into the current byte, starting a
// new zero byte whenever the bit pointer wraps from 7 back to 0.
func (w *bitWriter) addBit(b uint) {
	if w.bitPos == 0 {
		w.data = append(w.data, 0)
	}
	if b != 0 {
		w.data[len(w.data)-1] |= 1 << w.bitPos
	}
	w.bitPos = (w.bitPos + 1) & 7
}

// addBits appends the low n bits of v, LSB-first: used for all numeric
// fields and DEFLATE extra bits.
func (w *bitWriter) addBits(v uint, n int) {
	for i := 0; i < n; i++ {
		w.addBit((v >> uint(i)) & 1)
	}
}

// addHuffmanBits appends the n-bit code, MSB-first: Huffman codes are
// written in canonical bit order, opposite of numeric fields.
func (w *bitWriter) addHuffmanBits(code uint, n int) {
	for i := n - 1; i >= 0; i-- {
		w.addBit((code >> uint(i)) & 1)
	}
}

// alignToByte forces the bit pointer to 0. The current byte's unused
// high bits are already zero (addBit only ever sets bits), so nothing
// needs padding; the next write simply starts a fresh byte. Used
// before uncompressed (btype 00) blocks.
func (w *bitWriter) alignToByte() {
	w.bitPos = 0
}

// addRawBytes appends whole bytes verbatim. The writer must be
// byte-aligned (bitPos==0) before calling this, e.g. after
// alignToByte().
func (w *bitWriter) addRawBytes(b []byte) {
	w.data = append(w.data, b...)
}

// bitLength returns the current stream length in bits.
func (w *bitWriter) bitLength() int {
	if w.bitPos == 0 {
		return len(w.data) * 8
	}
	return (len(w.data)-1)*8 + int(w.bitPos)
}

// bytes returns the accumulated output.
func (w *bitWriter) bytes() []byte {
	return w.data
}
