// SPDX-License-Identifier: Apache-2.0
// Source: github.com/corvusforge/squeeze/cmd/pngsqueeze

package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/corvusforge/squeeze"
)

// batchConfig is the on-disk TOML shape for a multi-file recompression
// run, loaded with -config.
type batchConfig struct {
	Squeeze squeezeConfig `toml:"squeeze"`
	Job     jobConfig     `toml:"job"`
}

type squeezeConfig struct {
	Iterations         int  `toml:"iterations"`
	MaxChainHits       int  `toml:"max_chain_hits"`
	SublenCap          int  `toml:"sublen_cap"`
	MaxBlocks        int  `toml:"max_blocks"`
	NoBlockSplitting bool `toml:"no_block_splitting"`
}

type jobConfig struct {
	Concurrency int      `toml:"concurrency"`
	Inputs      []string `toml:"inputs"`
	OutputDir   string   `toml:"output_dir"`
}

// loadBatchConfig parses a TOML batch file from path.
func loadBatchConfig(path string) (*batchConfig, error) {
	var cfg batchConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("pngsqueeze: decode config %s: %w", path, err)
	}
	if cfg.Job.Concurrency <= 0 {
		cfg.Job.Concurrency = 1
	}
	return &cfg, nil
}

// squeezeOptions converts the TOML squeeze section into library
// options, leaving zero values to squeeze's own defaults.
func (c squeezeConfig) squeezeOptions() *squeeze.CompressOptions {
	return &squeeze.CompressOptions{
		Iterations:       c.Iterations,
		Final:            true,
		MaxChainHits:     c.MaxChainHits,
		SublenCap:        c.SublenCap,
		MaxBlocks:        c.MaxBlocks,
		NoBlockSplitting: c.NoBlockSplitting,
	}
}

func writeExampleConfig(path string) error {
	const example = `[squeeze]
iterations = 0           # 0 = use the size-based schedule
max_chain_hits = 0        # 0 = library default
sublen_cap = 0
max_blocks = 0
no_block_splitting = false

[job]
concurrency = 4
inputs = ["in1.png", "in2.png"]
output_dir = "out"
`
	return os.WriteFile(path, []byte(example), 0o644)
}
