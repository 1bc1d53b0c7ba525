// SPDX-License-Identifier: Apache-2.0
// Source: github.com/corvusforge/squeeze/cmd/pngsqueeze

// Command pngsqueeze recompresses the IDAT payload of one or more PNG
// files with the squeeze DEFLATE re-compressor, without touching pixel
// data or any other chunk.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/corvusforge/squeeze"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "pngsqueeze:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "pngsqueeze",
		Usage: "recompress PNG IDAT payloads with squeeze",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "TOML batch config (see init-config)"},
			&cli.StringFlag{Name: "output-dir", Value: ".", Usage: "directory for recompressed files"},
			&cli.IntFlag{Name: "concurrency", Value: 4, Usage: "number of files to process concurrently"},
			&cli.IntFlag{Name: "iterations", Value: 0, Usage: "squeeze iterations (0 = size-based schedule)"},
			&cli.BoolFlag{Name: "no-block-splitting", Usage: "disable the block splitter"},
			&cli.BoolFlag{Name: "json", Usage: "emit structured JSON logs"},
			&cli.BoolFlag{Name: "debug", Usage: "verbose logging"},
		},
		Commands: []*cli.Command{
			{
				Name:  "init-config",
				Usage: "write an example batch TOML config",
				Action: func(c *cli.Context) error {
					path := "pngsqueeze.toml"
					if c.Args().Present() {
						path = c.Args().First()
					}
					return writeExampleConfig(path)
				},
			},
		},
		Action: runRoot,
	}
}

func runRoot(c *cli.Context) error {
	log := newLogger(c.Bool("json"), c.Bool("debug"))

	var inputs []string
	outputDir := c.String("output-dir")
	concurrency := c.Int("concurrency")
	opts := &squeeze.CompressOptions{
		Iterations:       c.Int("iterations"),
		Final:            true,
		NoBlockSplitting: c.Bool("no-block-splitting"),
	}

	if cfgPath := c.String("config"); cfgPath != "" {
		cfg, err := loadBatchConfig(cfgPath)
		if err != nil {
			return err
		}
		inputs = cfg.Job.Inputs
		outputDir = cfg.Job.OutputDir
		concurrency = cfg.Job.Concurrency
		opts = cfg.Squeeze.squeezeOptions()
	} else {
		inputs = c.Args().Slice()
	}

	if len(inputs) == 0 {
		return errors.New("no input files given (pass paths or -config)")
	}

	results, err := runBatch(context.Background(), log, inputs, outputDir, concurrency, opts)
	if err != nil {
		return err
	}

	var originalTotal, newTotal int
	for _, r := range results {
		originalTotal += r.originalIDAT
		newTotal += r.recompressed
	}
	log.Info("batch complete",
		"files", len(results),
		"original_bytes", originalTotal,
		"recompressed_bytes", newTotal)
	return nil
}
