package astar_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

// benchGrid builds an n×n grid with ~25% random walls and open corners.
func benchGrid(b *testing.B, n int) *grid.Grid {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	values := make([][]int, n)
	for r := range values {
		values[r] = make([]int, n)
		for c := range values[r] {
			if rng.Intn(4) == 0 {
				values[r][c] = 1
			}
		}
	}
	values[0][0], values[n-1][n-1] = 0, 0
	g, err := grid.FromInts(values)
	if err != nil {
		b.Fatalf("setup FromInts failed: %v", err)
	}
	return g
}

// BenchmarkFindPath_Squared measures the default heuristic corner to corner on 256×256.
func BenchmarkFindPath_Squared(b *testing.B) {
	const n = 256
	g := benchGrid(b, n)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.FindPath(g, grid.C(0, 0), grid.C(n-1, n-1))
	}
}

// BenchmarkFindPath_Zero measures uniform-cost search, which expands most reachable cells.
func BenchmarkFindPath_Zero(b *testing.B) {
	const n = 256
	g := benchGrid(b, n)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.FindPath(g, grid.C(0, 0), grid.C(n-1, n-1), astar.WithHeuristic(astar.Zero))
	}
}
