package climb_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/hillclimb/climb"
	"github.com/katalvlaran/hillclimb/heightmap"
)

// rampGrid builds an n×n map rising one level every n/26 diagonals, with S in
// the top-left and E in the bottom-right.
func rampGrid(b *testing.B, n int) *heightmap.Grid {
	b.Helper()
	step := (2*n)/26 + 1
	var sb strings.Builder
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			switch {
			case r == 0 && c == 0:
				sb.WriteByte('S')
			case r == n-1 && c == n-1:
				sb.WriteByte('E')
			default:
				lvl := (r + c) / step
				if lvl > 24 {
					lvl = 24
				}
				sb.WriteByte(byte('a' + lvl))
			}
		}
		sb.WriteByte('\n')
	}
	g, err := heightmap.Parse(sb.String())
	if err != nil {
		b.Fatalf("setup Parse failed: %v", err)
	}
	return g
}

// BenchmarkShortestPath measures a corner-to-corner search on a 300×300 ramp.
// Complexity: O(N log N), N = 90 000 cells.
func BenchmarkShortestPath(b *testing.B) {
	g := rampGrid(b, 300)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = climb.ShortestPath(g, g.Start(), g.End())
	}
}

// BenchmarkFewestStepsFromLowest measures the reverse search on the same ramp.
func BenchmarkFewestStepsFromLowest(b *testing.B) {
	g := rampGrid(b, 300)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = climb.FewestStepsFromLowest(g, g.End(), climb.WithReturnPath())
	}
}
