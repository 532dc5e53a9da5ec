package gridgraph

import "fmt"

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8 Connectivity = iota
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4
)

// Terrain is the traversal class of a cell. The zero value is Open.
type Terrain int

const (
	// Open is plain traversable ground with no penalty.
	Open Terrain = iota
	// Blocked cells are walls: never materialized as a neighbor.
	Blocked
	// LightTerrain adds a penalty of 1 per step taken from the cell.
	LightTerrain
	// MediumTerrain adds a penalty of 2 per step taken from the cell.
	MediumTerrain
	// HeavyTerrain adds a penalty of 3 per step taken from the cell.
	HeavyTerrain
)

var terrainPenalty = [...]int{
	Open:          0,
	Blocked:       0,
	LightTerrain:  1,
	MediumTerrain: 2,
	HeavyTerrain:  3,
}

var terrainNames = [...]string{
	Open:          "open",
	Blocked:       "blocked",
	LightTerrain:  "light",
	MediumTerrain: "medium",
	HeavyTerrain:  "heavy",
}

// ParseTerrain converts a raw grid code into a Terrain.
// Returns ErrInvalidTerrainCode for codes outside the known set.
func ParseTerrain(code int) (Terrain, error) {
	t := Terrain(code)
	if !t.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidTerrainCode, code)
	}
	return t, nil
}

// Valid reports whether t is one of the known terrain classes.
func (t Terrain) Valid() bool {
	return t >= Open && int(t) < len(terrainPenalty)
}

// Penalty returns the non-negative cost added to every step leaving a cell of this class.
func (t Terrain) Penalty() int {
	if !t.Valid() {
		return 0
	}
	return terrainPenalty[t]
}

func (t Terrain) String() string {
	if !t.Valid() {
		return fmt.Sprintf("terrain(%d)", int(t))
	}
	return terrainNames[t]
}

// NodeID is the row-major index of a node: y*Width + x.
// It is the only way nodes refer to each other; nothing holds a second pointer.
type NodeID int

// NoNode marks an absent node reference (e.g. a start node's predecessor).
const NoNode NodeID = -1

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Node is a single graph vertex. Topology only: per-run search state
// (cost so far, predecessor, priority) is kept by the search package.
type Node struct {
	ID        NodeID
	X, Y      int
	Terrain   Terrain
	Neighbors []NodeID // empty for blocked nodes; never contains a blocked or out-of-bounds node
}

// Point returns the node's coordinate.
func (n *Node) Point() Point {
	return Point{X: n.X, Y: n.Y}
}

// Blocked reports whether the node is a wall.
func (n *Node) Blocked() bool {
	return n.Terrain == Blocked
}

// GridOptions contains tunable parameters for graph construction.
type GridOptions struct {
	// Width is the declared grid width. Zero means "length of the longest row".
	// Rows shorter than Width are padded with Open cells; longer rows are rejected.
	Width int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// Width=0 (derived from the input), Conn=Conn8.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Width: 0,
		Conn:  Conn8,
	}
}

// GridGraph is the adjacency graph of a terrain grid. It is immutable once built.
// Width and Height define dimensions; nodes are stored densely in row-major order.
type GridGraph struct {
	Width, Height   int
	Conn            Connectivity
	nodes           []Node
	walls           []NodeID
	regions         []int // region label per node; -1 for blocked
	regionCount     int
	neighborOffsets [][2]int
}
