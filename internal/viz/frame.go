// Package viz encodes search observations as JSON frames and streams them to
// browsers over a websocket, one frame per tick.
package viz

import (
	"github.com/katalvlaran/tilepath/gridgraph"
	"github.com/katalvlaran/tilepath/search"
)

// Cell is one observed node on the wire.
type Cell struct {
	X    int     `json:"x" jsonschema:"required"`
	Y    int     `json:"y" jsonschema:"required"`
	Dir  string  `json:"dir,omitempty" jsonschema:"enum=N,enum=NE,enum=E,enum=SE,enum=S,enum=SW,enum=W,enum=NW"`
	Cost float64 `json:"cost" jsonschema:"required,minimum=0"`
}

// Grid describes the map. It is sent with the first frame only.
type Grid struct {
	Width  int `json:"width" jsonschema:"required,minimum=1"`
	Height int `json:"height" jsonschema:"required,minimum=1"`
	// Cells holds terrain codes indexed [y][x].
	Cells [][]int `json:"cells" jsonschema:"required"`
}

// Frame is one websocket message.
type Frame struct {
	Seq        int     `json:"seq" jsonschema:"required,minimum=0"`
	Mode       string  `json:"mode" jsonschema:"required,enum=bfs,enum=dijkstra,enum=greedy,enum=astar"`
	Status     string  `json:"status" jsonschema:"required,enum=idle,enum=running,enum=complete"`
	Iterations int     `json:"iterations" jsonschema:"required,minimum=0"`
	Start      [2]int  `json:"start" jsonschema:"required"`
	Goal       [2]int  `json:"goal" jsonschema:"required"`
	Current    *[2]int `json:"current,omitempty"`
	Grid       *Grid   `json:"grid,omitempty"`
	Frontier   []Cell  `json:"frontier"`
	Explored   []Cell  `json:"explored"`
	Path       []Cell  `json:"path"`
	Found      bool    `json:"found"`
}

// GridOf captures the terrain of g.
func GridOf(g *gridgraph.GridGraph) *Grid {
	cells := make([][]int, g.Height)
	for y := range cells {
		cells[y] = make([]int, g.Width)
	}
	for _, n := range g.Nodes() {
		cells[n.Y][n.X] = int(n.Terrain)
	}
	return &Grid{Width: g.Width, Height: g.Height, Cells: cells}
}

// NewFrame converts a snapshot. current is the node expanded by the step that
// produced s, or nil.
func NewFrame(seq int, s search.Snapshot, current *gridgraph.Point) Frame {
	f := Frame{
		Seq:        seq,
		Mode:       s.Mode.String(),
		Status:     s.Status.String(),
		Iterations: s.Iterations,
		Start:      [2]int{s.Start.X, s.Start.Y},
		Goal:       [2]int{s.Goal.X, s.Goal.Y},
		Frontier:   cells(s.Frontier),
		Explored:   cells(s.Explored),
		Path:       cells(s.Path),
		Found:      len(s.Path) > 0,
	}
	if current != nil {
		f.Current = &[2]int{current.X, current.Y}
	}
	return f
}

func cells(in []search.Cell) []Cell {
	out := make([]Cell, len(in))
	for i, c := range in {
		out[i] = Cell{X: c.Point.X, Y: c.Point.Y, Cost: c.Cost}
		if c.Dir != search.None {
			out[i].Dir = c.Dir.String()
		}
	}
	return out
}
