// Package tilepath is a step-by-step pathfinding engine for tile maps:
// walls, open ground and slow terrain in one integer grid, searched with
// interchangeable strategies that can be paused, observed and replayed.
//
// What is tilepath?
//
//	A small library, plus a command, that brings together:
//		• Grid graphs: terrain classes, 8- or 4-connectivity, octile distance, regions
//		• A priority frontier with membership checks and decrease-key
//		• Four searches behind one contract: BFS, Dijkstra, Greedy best-first, A*
//		• One expansion per Step, with snapshots and hooks for renderers
//		• Map loading (text, PNG) and seeded random map generation
//		• A websocket stream of search frames for browser visualizers
//
// Why tilepath?
//
//   - Teaching and debugging: watch how each strategy floods the map.
//   - Games: the graph is immutable, so many searches share one map.
//   - Determinism: equal inputs give equal expansion order and paths.
//
// Packages:
//
//	gridgraph/     terrain, Node, GridGraph, Distance, connected regions
//	frontier/      generic min-priority queue with FIFO tie-breaking
//	search/        Mode, Run (New/Step/RunToCompletion), Snapshot, Reconstruct
//	mapdata/       text and PNG maps, random map generation
//	internal/viz/  JSON frames, websocket stream handler, frame schema
//	cmd/tilepath/  command line front end
//
// Quick ASCII example (A* from S to G, after completion):
//
//	ooGo
//	o*oo
//	Soo.
//
//	* path, x explored, o frontier, # wall, . open.
//
//	go install github.com/katalvlaran/tilepath/cmd/tilepath@latest
package tilepath
