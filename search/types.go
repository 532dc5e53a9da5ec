package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/tilepath/gridgraph"
)

// Sentinel errors for search setup and path reconstruction.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrInvalidEndpoint is returned when start or goal is outside the graph or blocked.
	ErrInvalidEndpoint = errors.New("search: invalid endpoint")

	// ErrUnknownMode is returned for a Mode outside the four strategies.
	ErrUnknownMode = errors.New("search: unknown mode")

	// ErrUnreachable is returned when a path is requested for a node that
	// has no predecessor chain back to the start.
	ErrUnreachable = errors.New("search: node unreachable from start")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Mode selects the expansion strategy. The set is closed.
type Mode int

const (
	// BreadthFirst expands nodes in discovery order; shortest in edge count.
	BreadthFirst Mode = iota
	// Dijkstra expands nodes by accumulated cost; shortest in total cost.
	Dijkstra
	// GreedyBestFirst expands nodes by distance to goal only; fast, not optimal.
	GreedyBestFirst
	// AStar expands nodes by accumulated cost plus distance to goal; optimal.
	AStar
)

var modeNames = [...]string{
	BreadthFirst:    "bfs",
	Dijkstra:        "dijkstra",
	GreedyBestFirst: "greedy",
	AStar:           "astar",
}

func (m Mode) String() string {
	if !m.valid() {
		return fmt.Sprintf("mode(%d)", int(m))
	}
	return modeNames[m]
}

// MarshalText encodes the mode by name.
func (m Mode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m Mode) valid() bool {
	return m >= BreadthFirst && int(m) < len(modeNames)
}

// ParseMode maps "bfs", "dijkstra", "greedy" or "astar" to a Mode.
func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames {
		if name == s {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Status is the run state: Idle → Running → Complete.
type Status int

const (
	// Idle is the zero state of a Run that was never initialized.
	Idle Status = iota
	// Running means further Step calls may make progress.
	Running
	// Complete is terminal; Step becomes a no-op.
	Complete
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Complete:
		return "complete"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// GoalPolicy decides when a run that has discovered the goal completes.
type GoalPolicy int

const (
	// ExitOnExpansion completes once the goal itself has been expanded.
	// Dijkstra and AStar paths are optimal under this policy.
	ExitOnExpansion GoalPolicy = iota
	// ExitOnDiscovery completes as soon as the goal enters the frontier.
	ExitOnDiscovery
	// Exhaustive never stops early: the run ends when the frontier is empty,
	// and the reported path is refreshed after every step.
	Exhaustive
)

var policyNames = [...]string{
	ExitOnExpansion: "expansion",
	ExitOnDiscovery: "discovery",
	Exhaustive:      "exhaustive",
}

func (p GoalPolicy) String() string {
	if p < ExitOnExpansion || int(p) >= len(policyNames) {
		return fmt.Sprintf("policy(%d)", int(p))
	}
	return policyNames[p]
}

// ParseGoalPolicy maps "expansion", "discovery" or "exhaustive" to a GoalPolicy.
func ParseGoalPolicy(s string) (GoalPolicy, error) {
	for i, name := range policyNames {
		if name == s {
			return GoalPolicy(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown goal policy %q", ErrOptionViolation, s)
}

// Direction is the compass direction from a node toward its predecessor.
// North is +Y.
type Direction int

const (
	None Direction = iota
	N
	NE
	E
	SE
	S
	SW
	W
	NW
)

var directionNames = [...]string{"-", "N", "NE", "E", "SE", "S", "SW", "W", "NW"}

func (d Direction) String() string {
	if d < None || int(d) >= len(directionNames) {
		return fmt.Sprintf("direction(%d)", int(d))
	}
	return directionNames[d]
}

// MarshalText encodes the direction by name.
func (d Direction) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// directionOf returns the direction of the unit step (dx,dy).
func directionOf(dx, dy int) Direction {
	switch {
	case dx == 0 && dy > 0:
		return N
	case dx > 0 && dy > 0:
		return NE
	case dx > 0 && dy == 0:
		return E
	case dx > 0 && dy < 0:
		return SE
	case dx == 0 && dy < 0:
		return S
	case dx < 0 && dy < 0:
		return SW
	case dx < 0 && dy == 0:
		return W
	case dx < 0 && dy > 0:
		return NW
	}
	return None
}

// Cell is one observed node: its coordinate, the direction of the arrow
// pointing back to its predecessor, and its cost so far.
type Cell struct {
	Point gridgraph.Point
	Dir   Direction
	Cost  float64
}

// Snapshot is a read-only copy of a run's observable state.
//   - Frontier: queued nodes in dequeue order.
//   - Explored: expanded nodes in expansion order.
//   - Path:     start → goal, empty until the goal is discovered.
type Snapshot struct {
	Mode       Mode
	Status     Status
	Iterations int
	Start      gridgraph.Point
	Goal       gridgraph.Point
	Frontier   []Cell
	Explored   []Cell
	Path       []Cell
}

// StepResult reports what a single Step changed.
type StepResult struct {
	Status          Status
	Iteration       int
	Expanded        bool            // false for a no-op step or one that found the frontier empty
	Current         gridgraph.Point // valid only when Expanded
	NewlyExplored   []gridgraph.Point
	NewlyFrontiered []gridgraph.Point
	Path            []gridgraph.Point // nil until the goal is discovered
}

// Found reports whether the result carries a path.
func (r StepResult) Found() bool { return len(r.Path) > 0 }

// PathResult is the outcome of RunToCompletion.
type PathResult struct {
	Path       []gridgraph.Point
	Cost       float64 // cost so far of the goal; 0 when not found
	Found      bool
	Explored   int
	Iterations int
}

// Option configures a Run via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search run.
type Options struct {
	// Ctx is checked between steps by RunToCompletion.
	Ctx context.Context

	// Policy decides when a run that has discovered the goal completes.
	Policy GoalPolicy

	// Logger receives Debug records per step and an Info record on completion.
	Logger *slog.Logger

	// OnExplore is called when a node is added to the explored set.
	OnExplore func(p gridgraph.Point)

	// OnEnqueue is called when a node enters the frontier, with its priority.
	OnEnqueue func(p gridgraph.Point, priority float64)

	// OnStep is called with the result of every Step that expanded a node.
	OnStep func(StepResult)

	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - ExitOnExpansion
//   - a logger that discards everything
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Policy:    ExitOnExpansion,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		OnExplore: func(gridgraph.Point) {},
		OnEnqueue: func(gridgraph.Point, float64) {},
		OnStep:    func(StepResult) {},
	}
}

// WithContext sets a custom context for cancellation of RunToCompletion.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithGoalPolicy selects when the run completes after discovering the goal.
func WithGoalPolicy(p GoalPolicy) Option {
	return func(o *Options) {
		if p < ExitOnExpansion || int(p) >= len(policyNames) {
			o.err = fmt.Errorf("%w: goal policy %d", ErrOptionViolation, int(p))
			return
		}
		o.Policy = p
	}
}

// WithExitOnGoal is shorthand: true selects ExitOnDiscovery, false Exhaustive.
func WithExitOnGoal(exit bool) Option {
	if exit {
		return WithGoalPolicy(ExitOnDiscovery)
	}
	return WithGoalPolicy(Exhaustive)
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnExplore registers a callback to run when a node is explored.
func WithOnExplore(fn func(p gridgraph.Point)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExplore = fn
		}
	}
}

// WithOnEnqueue registers a callback to run when a node enters the frontier.
func WithOnEnqueue(fn func(p gridgraph.Point, priority float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnStep registers a callback to run after every expanding Step.
func WithOnStep(fn func(StepResult)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}
