package search

import (
	"fmt"
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/tilepath/frontier"
	"github.com/katalvlaran/tilepath/gridgraph"
)

// Run holds the mutable state of one search over a graph. The graph itself is
// only read; all per-node scratch state (cost so far, predecessor, priority)
// lives here, so several Runs may share one graph.
//
// A Run is not safe for concurrent use.
type Run struct {
	graph *gridgraph.GridGraph
	start *gridgraph.Node
	goal  *gridgraph.Node
	mode  Mode
	opts  Options

	status     Status
	iterations int

	cost     []float64
	prev     []gridgraph.NodeID
	priority []float64

	frontier *frontier.Queue[gridgraph.NodeID]
	explored mapset.Set[gridgraph.NodeID]
	order    []gridgraph.NodeID // explored, in expansion order
	path     []gridgraph.NodeID
}

// New validates the endpoints and prepares a Running search from start to
// goal using mode. No state is touched if validation fails.
//
// Returns ErrNilGraph, ErrOptionViolation, ErrUnknownMode, or
// ErrInvalidEndpoint (start or goal outside the graph or blocked).
//
// Complexity: O(W×H) for the scratch-state reset.
func New(g *gridgraph.GridGraph, start, goal gridgraph.Point, mode Mode, opts ...Option) (*Run, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !mode.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}

	s, err := endpoint(g, "start", start)
	if err != nil {
		return nil, err
	}
	t, err := endpoint(g, "goal", goal)
	if err != nil {
		return nil, err
	}

	n := g.Len()
	r := &Run{
		graph:    g,
		start:    s,
		goal:     t,
		mode:     mode,
		opts:     o,
		cost:     make([]float64, n),
		prev:     make([]gridgraph.NodeID, n),
		priority: make([]float64, n),
	}
	r.Reset()

	return r, nil
}

// endpoint resolves p to a traversable node of g.
func endpoint(g *gridgraph.GridGraph, role string, p gridgraph.Point) (*gridgraph.Node, error) {
	n := g.Lookup(p)
	if n == nil {
		return nil, fmt.Errorf("%w: %s %v outside %dx%d grid", ErrInvalidEndpoint, role, p, g.Width, g.Height)
	}
	if n.Blocked() {
		return nil, fmt.Errorf("%w: %s %v is blocked", ErrInvalidEndpoint, role, p)
	}
	return n, nil
}

// Reset returns the run to its initial Running state: every node's cost is
// +Inf and its predecessor is cleared, the start costs 0 and is the only
// frontier entry, and explored and path are empty. A zero Run stays Idle.
func (r *Run) Reset() {
	if r.graph == nil {
		return
	}
	inf := math.Inf(1)
	for i := range r.cost {
		r.cost[i] = inf
		r.prev[i] = gridgraph.NoNode
		r.priority[i] = 0
	}
	r.frontier = frontier.New[gridgraph.NodeID](r.graph.Width + r.graph.Height)
	r.explored = mapset.New[gridgraph.NodeID]()
	r.order = r.order[:0]
	r.path = nil
	r.iterations = 0

	r.cost[r.start.ID] = 0
	r.enqueue(r.start.ID, 0)
	r.status = Running
}

// Step performs one expansion:
//  1. an empty frontier completes the run (no path);
//  2. the minimum-priority node is dequeued and explored;
//  3. its neighbors are expanded according to the mode;
//  4. if the goal is in the frontier or explored, the path is rebuilt and the
//     goal policy decides whether the run completes.
//
// Step on a Complete (or never initialized) run changes nothing.
func (r *Run) Step() StepResult {
	if r.status != Running {
		return r.result()
	}
	if r.frontier.Len() == 0 {
		r.finish()
		r.logComplete()
		return r.result()
	}

	id, _, err := r.frontier.Dequeue()
	if err != nil {
		// unreachable: emptiness was checked above
		r.opts.Logger.Error("search: frontier dequeue failed", "error", err)
		r.finish()
		r.logComplete()
		return r.result()
	}
	r.iterations++

	current := r.graph.Node(id)
	res := r.result()
	res.Expanded = true
	res.Current = current.Point()

	if !r.explored.Has(id) {
		r.explored.Put(id)
		r.order = append(r.order, id)
		res.NewlyExplored = append(res.NewlyExplored, res.Current)
		r.opts.OnExplore(res.Current)
	}

	for _, nid := range r.expand(current) {
		res.NewlyFrontiered = append(res.NewlyFrontiered, r.graph.Node(nid).Point())
	}

	if r.goalDiscovered() {
		// goal has a predecessor chain or is the start; cannot fail
		r.path, _ = r.reconstruct(r.goal.ID)
		switch r.opts.Policy {
		case ExitOnDiscovery:
			r.finish()
		case ExitOnExpansion:
			if r.explored.Has(r.goal.ID) {
				r.finish()
			}
		}
	}

	res.Status = r.status
	res.Path = r.points(r.path)

	r.opts.Logger.Debug("search step",
		"mode", r.mode,
		"iteration", r.iterations,
		"current", res.Current,
		"frontier", r.frontier.Len(),
		"explored", len(r.order),
		"status", r.status,
	)
	if r.status == Complete {
		r.logComplete()
	}
	r.opts.OnStep(res)

	return res
}

// expand relaxes and enqueues the neighbors of current per the run's mode and
// returns the ids that entered the frontier.
func (r *Run) expand(current *gridgraph.Node) []gridgraph.NodeID {
	var added []gridgraph.NodeID
	penalty := float64(current.Terrain.Penalty())
	base := r.cost[current.ID]

	for _, nid := range current.Neighbors {
		if r.explored.Has(nid) {
			continue
		}
		n := r.graph.Node(nid)
		newCost := base + gridgraph.Distance(current, n) + penalty

		switch r.mode {
		case BreadthFirst, GreedyBestFirst:
			if r.frontier.Contains(nid) {
				continue
			}
			r.cost[nid] = newCost
			r.prev[nid] = current.ID
			var p float64
			if r.mode == BreadthFirst {
				p = float64(r.explored.Size())
			} else {
				p = gridgraph.Distance(n, r.goal)
			}
			r.enqueue(nid, p)
			added = append(added, nid)

		case Dijkstra, AStar:
			if !math.IsInf(r.cost[nid], 1) && newCost >= r.cost[nid] {
				continue
			}
			r.cost[nid] = newCost
			r.prev[nid] = current.ID
			p := newCost
			if r.mode == AStar {
				p += gridgraph.Distance(n, r.goal)
			}
			if r.frontier.Contains(nid) {
				r.priority[nid] = p
				r.frontier.Update(nid, p)
				continue
			}
			r.enqueue(nid, p)
			added = append(added, nid)
		}
	}
	return added
}

func (r *Run) enqueue(id gridgraph.NodeID, priority float64) {
	r.priority[id] = priority
	r.frontier.Enqueue(id, priority)
	r.opts.OnEnqueue(r.graph.Node(id).Point(), priority)
}

func (r *Run) goalDiscovered() bool {
	return r.frontier.Contains(r.goal.ID) || r.explored.Has(r.goal.ID)
}

func (r *Run) finish() { r.status = Complete }

// logComplete writes the completion record; it follows the record of the
// step that completed the run.
func (r *Run) logComplete() {
	r.opts.Logger.Info("search complete",
		"mode", r.mode,
		"start", r.start.Point(),
		"goal", r.goal.Point(),
		"iterations", r.iterations,
		"explored", len(r.order),
		"found", len(r.path) > 0,
		"path_len", len(r.path),
	)
}

// result builds a StepResult describing the current state without changes.
func (r *Run) result() StepResult {
	return StepResult{
		Status:    r.status,
		Iteration: r.iterations,
		Path:      r.points(r.path),
	}
}

// RunToCompletion calls Step until the run is Complete. It checks the
// configured context between steps and returns its error on cancellation;
// the run can be resumed afterwards by further Step calls.
//
// Complexity: at most W×H expansions, each O(d log n).
func (r *Run) RunToCompletion() (PathResult, error) {
	for r.status == Running {
		select {
		case <-r.opts.Ctx.Done():
			return r.PathResult(), r.opts.Ctx.Err()
		default:
		}
		r.Step()
	}
	return r.PathResult(), nil
}

// PathResult summarizes the run as it stands.
func (r *Run) PathResult() PathResult {
	res := PathResult{
		Path:       r.points(r.path),
		Found:      len(r.path) > 0,
		Explored:   len(r.order),
		Iterations: r.iterations,
	}
	if res.Found {
		res.Cost = r.cost[r.goal.ID]
	}
	return res
}

// Status returns the run state.
func (r *Run) Status() Status { return r.status }

// Mode returns the run's strategy.
func (r *Run) Mode() Mode { return r.mode }

// Iterations returns the number of nodes dequeued so far.
func (r *Run) Iterations() int { return r.iterations }

// Graph returns the graph being searched.
func (r *Run) Graph() *gridgraph.GridGraph { return r.graph }

// Start returns the start coordinate.
func (r *Run) Start() gridgraph.Point { return r.start.Point() }

// Goal returns the goal coordinate.
func (r *Run) Goal() gridgraph.Point { return r.goal.Point() }

// CostSoFar returns the recorded cost of p: +Inf if p was never reached or is
// outside the graph.
func (r *Run) CostSoFar(p gridgraph.Point) float64 {
	n := r.graph.Lookup(p)
	if n == nil {
		return math.Inf(1)
	}
	return r.cost[n.ID]
}

// Predecessor returns the node p was reached from, if any.
func (r *Run) Predecessor(p gridgraph.Point) (gridgraph.Point, bool) {
	n := r.graph.Lookup(p)
	if n == nil || r.prev[n.ID] == gridgraph.NoNode {
		return gridgraph.Point{}, false
	}
	return r.graph.Node(r.prev[n.ID]).Point(), true
}

// Priority returns the last priority assigned to p and whether p is queued.
func (r *Run) Priority(p gridgraph.Point) (float64, bool) {
	n := r.graph.Lookup(p)
	if n == nil {
		return 0, false
	}
	return r.priority[n.ID], r.frontier.Contains(n.ID)
}

// InFrontier reports whether p is queued.
func (r *Run) InFrontier(p gridgraph.Point) bool {
	n := r.graph.Lookup(p)
	return n != nil && r.frontier.Contains(n.ID)
}

// IsExplored reports whether p has been expanded.
func (r *Run) IsExplored(p gridgraph.Point) bool {
	n := r.graph.Lookup(p)
	return n != nil && r.explored.Has(n.ID)
}

// Path returns the current path, start → goal; empty until the goal is discovered.
func (r *Run) Path() []gridgraph.Point {
	return r.points(r.path)
}

func (r *Run) points(ids []gridgraph.NodeID) []gridgraph.Point {
	if len(ids) == 0 {
		return nil
	}
	out := make([]gridgraph.Point, len(ids))
	for i, id := range ids {
		out[i] = r.graph.Node(id).Point()
	}
	return out
}
