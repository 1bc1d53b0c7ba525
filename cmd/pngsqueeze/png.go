// SPDX-License-Identifier: Apache-2.0
// Source: github.com/corvusforge/squeeze/cmd/pngsqueeze

package main

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
)

var pngSignature = [8]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// pngChunk is one PNG chunk's type and payload; length and CRC are
// derived, never stored, so a mutated chunk can't carry a stale CRC.
type pngChunk struct {
	typ  [4]byte
	data []byte
}

func (c pngChunk) typeString() string { return string(c.typ[:]) }

// readPNGChunks reads every chunk of a PNG stream, stopping after IEND.
func readPNGChunks(r io.Reader) ([]pngChunk, error) {
	var sig [8]byte
	if _, err := io.ReadFull(r, sig[:]); err != nil {
		return nil, fmt.Errorf("pngsqueeze: read signature: %w", err)
	}
	if sig != pngSignature {
		return nil, errors.New("pngsqueeze: not a PNG file")
	}

	var chunks []pngChunk
	for {
		var lenBuf [4]byte
		if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("pngsqueeze: read chunk length: %w", err)
		}
		length := binary.BigEndian.Uint32(lenBuf[:])

		var typ [4]byte
		if _, err := io.ReadFull(r, typ[:]); err != nil {
			return nil, fmt.Errorf("pngsqueeze: read chunk type: %w", err)
		}

		data := make([]byte, length)
		if _, err := io.ReadFull(r, data); err != nil {
			return nil, fmt.Errorf("pngsqueeze: read chunk data: %w", err)
		}

		var crcBuf [4]byte
		if _, err := io.ReadFull(r, crcBuf[:]); err != nil {
			return nil, fmt.Errorf("pngsqueeze: read chunk crc: %w", err)
		}

		chunk := pngChunk{typ: typ, data: data}
		chunks = append(chunks, chunk)
		if chunk.typeString() == "IEND" {
			break
		}
	}
	return chunks, nil
}

// writePNGChunks writes the signature followed by every chunk, each
// with a freshly computed CRC-32 over its type and data.
func writePNGChunks(w io.Writer, chunks []pngChunk) error {
	if _, err := w.Write(pngSignature[:]); err != nil {
		return err
	}
	for _, c := range chunks {
		var lenBuf [4]byte
		binary.BigEndian.PutUint32(lenBuf[:], uint32(len(c.data)))
		if _, err := w.Write(lenBuf[:]); err != nil {
			return err
		}
		if _, err := w.Write(c.typ[:]); err != nil {
			return err
		}
		if _, err := w.Write(c.data); err != nil {
			return err
		}

		crc := crc32.NewIEEE()
		crc.Write(c.typ[:])
		crc.Write(c.data)
		var crcBuf [4]byte
		binary.BigEndian.PutUint32(crcBuf[:], crc.Sum32())
		if _, err := w.Write(crcBuf[:]); err != nil {
			return err
		}
	}
	return nil
}

// ihdr is the parsed IHDR chunk payload (PNG §11.2.2).
type ihdr struct {
	width, height       uint32
	bitDepth, colorType uint8
	interlace           uint8
}

func parseIHDR(data []byte) (ihdr, error) {
	if len(data) < 13 {
		return ihdr{}, errors.New("pngsqueeze: truncated IHDR")
	}
	return ihdr{
		width:     binary.BigEndian.Uint32(data[0:4]),
		height:    binary.BigEndian.Uint32(data[4:8]),
		bitDepth:  data[8],
		colorType: data[9],
		interlace: data[12],
	}, nil
}

// findIHDR locates and parses the IHDR chunk.
func findIHDR(chunks []pngChunk) (ihdr, error) {
	for _, c := range chunks {
		if c.typeString() == "IHDR" {
			return parseIHDR(c.data)
		}
	}
	return ihdr{}, errors.New("pngsqueeze: missing IHDR chunk")
}

// extractIDAT concatenates every IDAT chunk's payload, in order, per
// PNG §12.9's requirement that IDAT chunks be contiguous and form one
// logical zlib stream when joined.
func extractIDAT(chunks []pngChunk) []byte {
	var out []byte
	for _, c := range chunks {
		if c.typeString() == "IDAT" {
			out = append(out, c.data...)
		}
	}
	return out
}

// replaceIDAT removes every existing IDAT chunk and inserts a single
// new one with newData, at the position of the first original IDAT.
func replaceIDAT(chunks []pngChunk, newData []byte) []pngChunk {
	out := make([]pngChunk, 0, len(chunks))
	inserted := false
	for _, c := range chunks {
		if c.typeString() != "IDAT" {
			out = append(out, c)
			continue
		}
		if !inserted {
			out = append(out, pngChunk{typ: [4]byte{'I', 'D', 'A', 'T'}, data: newData})
			inserted = true
		}
	}
	return out
}
