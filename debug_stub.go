// SPDX-License-Identifier: Apache-2.0
// Source: github.com/corvusforge/squeeze

//go:build !squeeze_debug

package squeeze

// No-op stand-ins for the -tags squeeze_debug assertions in debug.go,
// compiled into ordinary builds so call sites don't need a build tag
// of their own.

func debugAssertStore(store *lz77Store)               {}
func debugAssertLengths(lengths []uint8, maxbits int) {}
func debugAssertEndOfBlock(lengths []uint8)           {}
