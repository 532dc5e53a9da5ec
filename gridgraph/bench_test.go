package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/tilepath/gridgraph"
)

// BenchmarkNewGridGraph measures graph construction on a randomly generated
// 500×500 grid with values in [0,4].
// Complexity: O(W×H×d)
func BenchmarkNewGridGraph(b *testing.B) {
	const n = 500
	r := rand.New(rand.NewSource(42))
	grid := make([][]int, n)
	for y := 0; y < n; y++ {
		row := make([]int, n)
		for x := 0; x < n; x++ {
			row[x] = r.Intn(5)
		}
		grid[y] = row
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gridgraph.Build(grid); err != nil {
			b.Fatalf("Build failed: %v", err)
		}
	}
}
