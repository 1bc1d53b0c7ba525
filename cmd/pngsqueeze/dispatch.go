// SPDX-License-Identifier: Apache-2.0
// Source: github.com/corvusforge/squeeze/cmd/pngsqueeze

package main

import (
	"bytes"
	"compress/zlib"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/corvusforge/squeeze"
	"github.com/corvusforge/squeeze/internal/zlibframe"
)

// jobResult reports one input file's outcome for the summary printed
// after a batch completes.
type jobResult struct {
	path         string
	originalIDAT int
	recompressed int
}

// runBatch fans inputs out across concurrency workers with an
// errgroup, the way the core squeeze codec leaves transport and
// scheduling concerns to its caller rather than owning them itself.
// The first worker error cancels ctx and is returned; files already in
// flight are allowed to finish.
func runBatch(ctx context.Context, log *slog.Logger, inputs []string, outputDir string, concurrency int, opts *squeeze.CompressOptions) ([]jobResult, error) {
	if concurrency < 1 {
		concurrency = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	results := make([]jobResult, len(inputs))
	for i, path := range inputs {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			outPath := filepath.Join(outputDir, filepath.Base(path))
			res, err := recompressFile(path, outPath, opts)
			if err != nil {
				log.Error("recompress failed", "path", path, "error", err)
				return fmt.Errorf("pngsqueeze: %s: %w", path, err)
			}
			log.Info("recompressed",
				"path", path,
				"original_idat", res.originalIDAT,
				"recompressed", res.recompressed)
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// recompressFile reads one PNG, replaces its IDAT payload with a
// squeeze-recompressed equivalent, and writes the result to outPath.
func recompressFile(inPath, outPath string, opts *squeeze.CompressOptions) (jobResult, error) {
	f, err := os.Open(inPath)
	if err != nil {
		return jobResult{}, err
	}
	defer f.Close()

	chunks, err := readPNGChunks(f)
	if err != nil {
		return jobResult{}, err
	}

	hdr, err := findIHDR(chunks)
	if err != nil {
		return jobResult{}, err
	}

	idat := extractIDAT(chunks)
	zr, err := zlib.NewReader(bytes.NewReader(idat))
	if err != nil {
		return jobResult{}, fmt.Errorf("inflate IDAT: %w", err)
	}
	raw, err := io.ReadAll(zr)
	if err != nil {
		return jobResult{}, fmt.Errorf("inflate IDAT: %w", err)
	}
	if err := zr.Close(); err != nil {
		return jobResult{}, fmt.Errorf("inflate IDAT: %w", err)
	}

	// A non-interlaced image's filter stream is exactly one type byte
	// plus one row of pixel bytes per scanline; a mismatch means the
	// chunks are corrupt and recompressing them would bake that in.
	if hdr.interlace == 0 && hdr.bitDepth >= 8 {
		rowBytes := int(hdr.width) * bytesPerPixel(int(hdr.colorType), int(hdr.bitDepth))
		if want := int(hdr.height) * (1 + rowBytes); want != len(raw) {
			return jobResult{}, fmt.Errorf("pngsqueeze: IDAT inflates to %d bytes, want %d for a %dx%d image", len(raw), want, hdr.width, hdr.height)
		}
	}

	deflated, err := squeeze.CompressWithOptions(raw, opts)
	if err != nil {
		return jobResult{}, fmt.Errorf("compress: %w", err)
	}
	framed := zlibframe.Wrap(deflated, raw)

	if len(framed) >= len(idat) {
		// Recompression didn't help; keep the original stream so the
		// output is never larger than the input.
		framed = idat
	}

	out := replaceIDAT(chunks, framed)

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return jobResult{}, err
	}
	outFile, err := os.Create(outPath)
	if err != nil {
		return jobResult{}, err
	}
	defer outFile.Close()

	if err := writePNGChunks(outFile, out); err != nil {
		return jobResult{}, err
	}

	return jobResult{path: inPath, originalIDAT: len(idat), recompressed: len(framed)}, nil
}
