// SPDX-License-Identifier: Apache-2.0
// Source: github.com/corvusforge/squeeze

package squeeze

import "testing"

func TestIterations_FollowsTheSizeSchedule(t *testing.T) {
	cases := []struct {
		size int
		want int
	}{
		{0, 60},
		{8*1024 - 1, 60},
		{8 * 1024, 40},
		{200*1024 - 1, 40},
		{200 * 1024, 20},
		{5*1024*1024 - 1, 20},
		{5 * 1024 * 1024, 10},
		{100 * 1024 * 1024, 10},
	}
	for _, c := range cases {
		if got := Iterations(c.size); got != c.want {
			t.Fatalf("Iterations(%d) = %d, want %d", c.size, got, c.want)
		}
	}
}
