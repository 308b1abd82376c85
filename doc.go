// Package gridsearch is a search and traversal kernel for grid and graph
// puzzles, plus the daily solvers built on it.
//
// What is in the box?
//
//	vec/       — 2D/3D integer vectors: arithmetic, quarter-turn rotation, distances
//	grid/      — rectangular grids, copy-on-write overrides, regions, perimeter and sides
//	bfs/       — unit-cost search over implicit state spaces
//	dijkstra/  — weighted search, multi-source runs and the optimal-state set
//	dfs/       — topological order and cycle detection over implicit states
//	dsu/       — union-find with union by size and path compression
//	cluster/   — sorted pairwise edges streamed into a dsu (Kruskal style)
//	memo/      — explicit memo tables, digit-splitting pebbles, constrained path counts
//	subset/    — minimal XOR toggle sets and minimal counter presses
//	vm/        — a 3-bit three-register machine and its inverse search
//	interval/  — merged inclusive ranges
//	parallel/  — bounded fan-out with per-worker accumulators
//	puzzle/    — solver contract, registry and input helpers
//	y2024/, y2025/ — registered daily solvers
//	cmd/gridsearch — command line runner
//
// A state is any comparable value, so a search can run over (position,
// direction) pairs, (node, bitmask) pairs or plain positions without a
// materialized graph:
//
//	type reindeer struct {
//		pos vec.Point
//		dir int
//	}
//	res, err := dijkstra.Dijkstra([]reindeer{start}, next)
//
// Not-found outcomes are always distinguishable from zero results: searches
// return (value, ok) pairs or sentinel errors such as dijkstra.ErrUnreachable,
// subset.ErrInfeasible and vm.ErrNoInverse.
package gridsearch
