// Package search provides a step-driven path search over a gridgraph.GridGraph
// with four interchangeable strategies sharing one expansion contract.
//
// What
//
//   - New(graph, start, goal, mode, opts...) validates the endpoints and
//     returns a Running *Run with only the start in its frontier.
//   - Step expands exactly one node and reports what changed (StepResult).
//   - RunToCompletion steps until the run is Complete and returns a PathResult.
//   - Snapshot exposes frontier, explored set and path as Cells carrying the
//     direction back to each node's predecessor, for renderers.
//
// Strategies
//
//	For each neighbor n of the expanded node c, the step cost is
//	Distance(c, n) + c.Terrain.Penalty().
//
//	  Mode             skip if                  relax            priority
//	  BreadthFirst     explored or queued       always           explored count
//	  Dijkstra         explored                 if cheaper       cost(n)
//	  GreedyBestFirst  explored or queued       always           Distance(n, goal)
//	  AStar            explored                 if cheaper       cost(n) + Distance(n, goal)
//
//	Every node enters the frontier at most once per run. Dijkstra and AStar
//	reposition an already queued node when a cheaper route to it is found, so
//	with ExitOnExpansion their paths are optimal.
//
// States
//
//	Idle → Running → Complete. Complete is terminal: further Step calls change
//	nothing. A Complete run with an empty path means no path exists.
//
// Concurrency
//
//	A Run is single-threaded and cooperative: the caller decides when to call
//	Step and stops a search by not calling it. The graph is read-only, so
//	several Runs may share one graph.
//
// Options
//
//   - WithContext(ctx):        cancellation checked by RunToCompletion.
//   - WithGoalPolicy(p):       ExitOnExpansion (default), ExitOnDiscovery, Exhaustive.
//   - WithExitOnGoal(bool):    shorthand for ExitOnDiscovery / Exhaustive.
//   - WithLogger(l):           slog logger for step and completion records.
//   - WithOnExplore(fn), WithOnEnqueue(fn), WithOnStep(fn): observation hooks.
//
// Errors
//
//   - ErrNilGraph          if the graph pointer is nil.
//   - ErrInvalidEndpoint   if start or goal is outside the grid or blocked.
//   - ErrUnknownMode       if mode is not one of the four strategies.
//   - ErrOptionViolation   if an Option is invalid.
//   - ErrUnreachable       from Reconstruct for a node with no predecessor chain.
package search
