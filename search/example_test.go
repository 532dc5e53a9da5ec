// File: search/example_test.go
package search_test

import (
	"fmt"

	"github.com/katalvlaran/tilepath/gridgraph"
	"github.com/katalvlaran/tilepath/search"
)

////////////////////////////////////////////////////////////////////////////////
// Example: RunToCompletion
////////////////////////////////////////////////////////////////////////////////

// ExampleRun_RunToCompletion compares the four strategies on an open 3×3 map.
// All of them take the diagonal; they differ in how much of the map they
// expand before the goal is confirmed.
func ExampleRun_RunToCompletion() {
	gg, _ := gridgraph.Build([][]int{
		{0, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	})
	start, goal := gridgraph.Point{X: 0, Y: 0}, gridgraph.Point{X: 2, Y: 2}

	for _, mode := range []search.Mode{search.BreadthFirst, search.Dijkstra, search.GreedyBestFirst, search.AStar} {
		run, err := search.New(gg, start, goal, mode)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		res, _ := run.RunToCompletion()
		fmt.Printf("%-8s %v cost=%.3f explored=%d\n", mode, res.Path, res.Cost, res.Explored)
	}

	// Output:
	// bfs      [(0,0) (1,1) (2,2)] cost=2.828 explored=7
	// dijkstra [(0,0) (1,1) (2,2)] cost=2.828 explored=9
	// greedy   [(0,0) (1,1) (2,2)] cost=2.828 explored=3
	// astar    [(0,0) (1,1) (2,2)] cost=2.828 explored=3
}

////////////////////////////////////////////////////////////////////////////////
// Example: Step
////////////////////////////////////////////////////////////////////////////////

// ExampleRun_Step drives a corridor search one expansion at a time.
func ExampleRun_Step() {
	gg, _ := gridgraph.Build([][]int{{0, 0, 0, 0}})
	run, _ := search.New(gg, gridgraph.Point{X: 0, Y: 0}, gridgraph.Point{X: 3, Y: 0}, search.BreadthFirst)

	for run.Status() == search.Running {
		res := run.Step()
		fmt.Println(res.Iteration, res.Current, res.NewlyFrontiered, res.Status, res.Path)
	}

	// Output:
	// 1 (0,0) [(1,0)] running []
	// 2 (1,0) [(2,0)] running []
	// 3 (2,0) [(3,0)] running [(0,0) (1,0) (2,0) (3,0)]
	// 4 (3,0) [] complete [(0,0) (1,0) (2,0) (3,0)]
}
