// SPDX-License-Identifier: Apache-2.0
// Source: github.com/corvusforge/squeeze/internal/zlibframe

// Package zlibframe wraps a raw DEFLATE stream in the minimal zlib
// envelope (RFC 1950) a PNG IDAT chain expects: a 2-byte header and a
// big-endian Adler-32 trailer over the uncompressed bytes.
package zlibframe

import (
	"encoding/binary"
	"hash/adler32"
)

// cmf and levelFlags are the two header bytes (CMF, FLG) before the
// FCHECK adjustment, for method 8 with a 32 KiB window.
const (
	cmf        = 0x78 // CM=8 (deflate), CINFO=7 (32 KiB window)
	levelFlags = 0x01 // FLEVEL=0 (fastest), no preset dictionary
)

// Wrap prepends the zlib header and appends the Adler-32 checksum of
// raw (the original, uncompressed bytes) to a DEFLATE stream produced
// by squeeze.Compress.
func Wrap(deflateStream, raw []byte) []byte {
	header := [2]byte{cmf, levelFlags}
	// FCHECK: (CMF*256 + FLG) must be a multiple of 31.
	check := (uint16(header[0])<<8 | uint16(header[1]))
	if rem := check % 31; rem != 0 {
		header[1] += byte(31 - rem)
	}

	out := make([]byte, 0, 2+len(deflateStream)+4)
	out = append(out, header[0], header[1])
	out = append(out, deflateStream...)

	var trailer [4]byte
	binary.BigEndian.PutUint32(trailer[:], adler32.Checksum(raw))
	return append(out, trailer[:]...)
}
