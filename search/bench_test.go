package search_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/tilepath/gridgraph"
	"github.com/katalvlaran/tilepath/search"
)

// benchGrid returns a 200×200 grid with ~20% walls and mixed terrain.
func benchGrid(b *testing.B) *gridgraph.GridGraph {
	b.Helper()
	const n = 200
	r := rand.New(rand.NewSource(7))
	grid := make([][]int, n)
	for y := range grid {
		grid[y] = make([]int, n)
		for x := range grid[y] {
			if r.Float64() < 0.2 {
				grid[y][x] = 1
			} else {
				grid[y][x] = []int{0, 0, 2, 3, 4}[r.Intn(5)]
			}
		}
	}
	grid[0][0], grid[n-1][n-1] = 0, 0
	gg, err := gridgraph.Build(grid)
	if err != nil {
		b.Fatalf("Build failed: %v", err)
	}
	return gg
}

// BenchmarkRunToCompletion measures a full corner-to-corner search per mode.
// Complexity: O(V log V) per run.
func BenchmarkRunToCompletion(b *testing.B) {
	gg := benchGrid(b)
	start, goal := gridgraph.Point{X: 0, Y: 0}, gridgraph.Point{X: 199, Y: 199}
	for _, mode := range []search.Mode{search.BreadthFirst, search.Dijkstra, search.GreedyBestFirst, search.AStar} {
		b.Run(mode.String(), func(b *testing.B) {
			run, err := search.New(gg, start, goal, mode)
			if err != nil {
				b.Fatalf("New failed: %v", err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				run.Reset()
				if _, err := run.RunToCompletion(); err != nil {
					b.Fatalf("RunToCompletion failed: %v", err)
				}
			}
		})
	}
}
