// SPDX-License-Identifier: Apache-2.0
// Source: github.com/corvusforge/squeeze/cmd/pngsqueeze

package main

import (
	"log/slog"
	"os"
)

// newLogger builds the driver's structured logger: text handler for an
// interactive terminal, JSON when machine-readable output is requested;
// debug lowers the level to Debug. The core squeeze package never logs; this is the outer
// driver's concern only.
func newLogger(jsonOutput bool, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if jsonOutput {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}
