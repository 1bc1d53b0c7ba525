// SPDX-License-Identifier: Apache-2.0
// Source: github.com/corvusforge/squeeze

/*
Package squeeze implements an iterative DEFLATE re-compressor: given raw
bytes, it searches for a smaller RFC 1951 bit-stream than a single-pass
encoder would produce, at the cost of many times more CPU. It is built to
shrink PNG IDAT payloads, but emits plain DEFLATE blocks with no zlib or
PNG framing of its own.

# Compress

Iterations may be 0 to use the size-keyed default schedule (see
Iterations), or a positive count to force a specific number of squeeze
passes:

	out, err := squeeze.Compress(data, 0, true)

CompressWithOptions exposes the tuning knobs (max chain depth, sublen
cap, block-splitting behavior):

	out, err := squeeze.CompressWithOptions(data, &squeeze.CompressOptions{
		Iterations: 40,
		Final:      true,
	})

The returned bytes are one or more DEFLATE blocks; the last block has
BFINAL=1 iff the final argument is true. Embedding the result as a PNG
IDAT payload requires the caller to prepend a 2-byte zlib header and
append a 4-byte Adler-32 trailer (see internal/zlibframe for a minimal
example of that framing).
*/
package squeeze
