package search

import (
	"fmt"

	"github.com/katalvlaran/tilepath/gridgraph"
)

// StepCost is the cost of moving from a to its neighbor b: the octile
// distance plus the terrain penalty of the source cell.
func StepCost(a, b *gridgraph.Node) float64 {
	return gridgraph.Distance(a, b) + float64(a.Terrain.Penalty())
}

// PathCost sums StepCost along consecutive points of path.
// Returns ErrInvalidEndpoint if a point is outside g.
func PathCost(g *gridgraph.GridGraph, path []gridgraph.Point) (float64, error) {
	var total float64
	for i := 1; i < len(path); i++ {
		a, b := g.Lookup(path[i-1]), g.Lookup(path[i])
		if a == nil || b == nil {
			return 0, fmt.Errorf("%w: path step %d leaves the grid", ErrInvalidEndpoint, i)
		}
		total += StepCost(a, b)
	}
	return total, nil
}

// Reconstruct walks predecessor links from p back to the start and returns
// the path start → p inclusive.
// Returns ErrUnreachable if p has no predecessor and is not the start.
// Complexity: O(path length).
func (r *Run) Reconstruct(p gridgraph.Point) ([]gridgraph.Point, error) {
	n := r.graph.Lookup(p)
	if n == nil {
		return nil, fmt.Errorf("%w: %v outside grid", ErrUnreachable, p)
	}
	ids, err := r.reconstruct(n.ID)
	if err != nil {
		return nil, err
	}
	return r.points(ids), nil
}

func (r *Run) reconstruct(target gridgraph.NodeID) ([]gridgraph.NodeID, error) {
	if target != r.start.ID && r.prev[target] == gridgraph.NoNode {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, r.graph.Node(target).Point())
	}
	path := []gridgraph.NodeID{target}
	for cur := target; cur != r.start.ID; {
		cur = r.prev[cur]
		if cur == gridgraph.NoNode || len(path) > len(r.prev) {
			return nil, fmt.Errorf("%w: broken predecessor chain at %v", ErrUnreachable, r.graph.Node(path[len(path)-1]).Point())
		}
		path = append(path, cur)
	}
	// reverse to get start → target
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// Snapshot copies the observable state: frontier (dequeue order), explored
// (expansion order) and path, each cell carrying its predecessor direction.
func (r *Run) Snapshot() Snapshot {
	if r.graph == nil {
		return Snapshot{Status: r.status}
	}
	s := Snapshot{
		Mode:       r.mode,
		Status:     r.status,
		Iterations: r.iterations,
		Start:      r.start.Point(),
		Goal:       r.goal.Point(),
	}
	if r.frontier != nil {
		for _, id := range r.frontier.Keys() {
			s.Frontier = append(s.Frontier, r.cell(id))
		}
	}
	for _, id := range r.order {
		s.Explored = append(s.Explored, r.cell(id))
	}
	for _, id := range r.path {
		s.Path = append(s.Path, r.cell(id))
	}
	return s
}

func (r *Run) cell(id gridgraph.NodeID) Cell {
	n := r.graph.Node(id)
	c := Cell{Point: n.Point(), Cost: r.cost[id]}
	if p := r.prev[id]; p != gridgraph.NoNode {
		pn := r.graph.Node(p)
		c.Dir = directionOf(pn.X-n.X, pn.Y-n.Y)
	}
	return c
}
