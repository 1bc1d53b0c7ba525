// SPDX-License-Identifier: Apache-2.0
// Source: github.com/corvusforge/squeeze

package squeeze

// Iteration schedule buckets: below each threshold, use the paired
// iteration count. The last entry is the fallback for anything larger.
type iterationBucket struct {
	maxSize    int // exclusive upper bound in bytes, 0 for "no bound"
	iterations int
}

var iterationSchedule = [...]iterationBucket{
	{maxSize: 8 * 1024, iterations: 60},
	{maxSize: 200 * 1024, iterations: 40},
	{maxSize: 5 * 1024 * 1024, iterations: 20},
	{maxSize: 0, iterations: 10},
}

// Iterations returns the recommended squeeze iteration count for an
// input of the given size:
//
//	size < 8 KiB    -> 60
//	size < 200 KiB  -> 40
//	size < 5 MiB    -> 20
//	otherwise       -> 10
func Iterations(size int) int {
	for _, b := range iterationSchedule {
		if b.maxSize == 0 || size < b.maxSize {
			return b.iterations
		}
	}
	return iterationSchedule[len(iterationSchedule)-1].iterations
}
