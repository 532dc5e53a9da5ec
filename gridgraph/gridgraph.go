package gridgraph

import (
	"fmt"
	"math"
)

// Neighbor offsets, starting north and going clockwise. Order is significant:
// it is the order in which search strategies discover neighbors.
var (
	offsets8 = [][2]int{{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}}
	offsets4 = [][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
)

// Build constructs a GridGraph from values using DefaultGridOptions.
// values[y][x] holds the terrain code of cell (x,y).
func Build(values [][]int) (*GridGraph, error) {
	return NewGridGraph(values, DefaultGridOptions())
}

// From2D constructs a GridGraph with the given connectivity and an
// input-derived width.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn
	return NewGridGraph(values, opts)
}

// NewGridGraph constructs a GridGraph from a non-empty 2D slice of terrain codes.
// Rows shorter than the width are padded with Open cells.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrMalformedGrid if any row is longer than opts.Width or opts.Conn is unknown,
// ErrInvalidTerrainCode if any code is not a known Terrain.
// No partial graph is ever returned.
// Algorithmic complexity: O(W×H×d) time, O(W×H) memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if opts.Width < 0 {
		return nil, fmt.Errorf("%w: negative width %d", ErrMalformedGrid, opts.Width)
	}
	var offsets [][2]int
	switch opts.Conn {
	case Conn8:
		offsets = offsets8
	case Conn4:
		offsets = offsets4
	default:
		return nil, fmt.Errorf("%w: unknown connectivity %d", ErrMalformedGrid, int(opts.Conn))
	}
	h := len(values)
	w := opts.Width
	if w == 0 {
		for _, row := range values {
			if len(row) > w {
				w = len(row)
			}
		}
	}
	if h == 0 || w == 0 {
		return nil, ErrEmptyGrid
	}
	for y, row := range values {
		if len(row) > w {
			return nil, fmt.Errorf("%w: row %d has %d cells, width is %d", ErrMalformedGrid, y, len(row), w)
		}
	}

	gg := &GridGraph{
		Width:           w,
		Height:          h,
		Conn:            opts.Conn,
		nodes:           make([]Node, w*h),
		neighborOffsets: offsets,
	}

	// First pass: every cell becomes a Node.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			code := 0
			if x < len(values[y]) {
				code = values[y][x]
			}
			t, err := ParseTerrain(code)
			if err != nil {
				return nil, fmt.Errorf("cell (%d,%d): %w", x, y, err)
			}
			id := gg.index(x, y)
			gg.nodes[id] = Node{ID: NodeID(id), X: x, Y: y, Terrain: t}
			if t == Blocked {
				gg.walls = append(gg.walls, NodeID(id))
			}
		}
	}

	// Second pass: adjacency, only once all Nodes exist.
	for i := range gg.nodes {
		n := &gg.nodes[i]
		if n.Blocked() {
			continue
		}
		n.Neighbors = gg.collectNeighbors(n.X, n.Y)
	}

	gg.labelRegions()

	return gg, nil
}

// collectNeighbors returns the in-bounds, non-blocked neighbors of (x,y)
// in offset order.
func (gg *GridGraph) collectNeighbors(x, y int) []NodeID {
	out := make([]NodeID, 0, len(gg.neighborOffsets))
	for _, d := range gg.neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if !gg.InBounds(nx, ny) {
			continue
		}
		id := gg.index(nx, ny)
		if gg.nodes[id].Blocked() {
			continue
		}
		out = append(out, NodeID(id))
	}
	return out
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Len returns the number of nodes (Width×Height).
func (gg *GridGraph) Len() int {
	return len(gg.nodes)
}

// Node returns the node with the given id, or nil if id is out of range.
// Complexity: O(1).
func (gg *GridGraph) Node(id NodeID) *Node {
	if id < 0 || int(id) >= len(gg.nodes) {
		return nil
	}
	return &gg.nodes[id]
}

// NodeAt returns the node at (x,y).
// Returns ErrNodeNotFound if (x,y) is outside the grid.
func (gg *GridGraph) NodeAt(x, y int) (*Node, error) {
	if !gg.InBounds(x, y) {
		return nil, fmt.Errorf("%w: (%d,%d) outside %dx%d grid", ErrNodeNotFound, x, y, gg.Width, gg.Height)
	}
	return &gg.nodes[gg.index(x, y)], nil
}

// Lookup returns the node at p, or nil if p is outside the grid.
func (gg *GridGraph) Lookup(p Point) *Node {
	if !gg.InBounds(p.X, p.Y) {
		return nil
	}
	return &gg.nodes[gg.index(p.X, p.Y)]
}

// Nodes returns every node in row-major order. The slice is shared; callers
// must not modify it.
func (gg *GridGraph) Nodes() []Node {
	return gg.nodes
}

// Walls returns the blocked nodes in row-major order.
func (gg *GridGraph) Walls() []*Node {
	out := make([]*Node, len(gg.walls))
	for i, id := range gg.walls {
		out[i] = &gg.nodes[id]
	}
	return out
}

// Distance returns the octile distance between a and b:
// diagonal steps cost √2 and straight steps cost 1.
// It is symmetric and Distance(a, a) == 0.
// Complexity: O(1).
func Distance(a, b *Node) float64 {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	diag := min(dx, dy)
	straight := max(dx, dy) - diag
	return float64(diag)*math.Sqrt2 + float64(straight)
}

// Distance is the method form of the package-level Distance.
func (gg *GridGraph) Distance(a, b *Node) float64 {
	return Distance(a, b)
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// ID returns the NodeID of (x,y). The caller must ensure InBounds(x,y).
func (gg *GridGraph) ID(x, y int) NodeID {
	return NodeID(gg.index(x, y))
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(id NodeID) (x, y int) {
	return int(id) % gg.Width, int(id) / gg.Width
}
