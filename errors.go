// SPDX-License-Identifier: Apache-2.0
// Source: github.com/corvusforge/squeeze

package squeeze

import "errors"

// Sentinel errors for Compress and CompressWithOptions.
var (
	// ErrOutOfMemory is returned when the input is larger than
	// MaxInputSize allows (see CompressOptions). Compression aborts
	// with no partial output.
	ErrOutOfMemory = errors.New("squeeze: out of memory")
)
