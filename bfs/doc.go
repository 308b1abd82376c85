// Package bfs provides breadth-first search over implicit state spaces,
// returning unit-cost shortest distances, parent links, and visit order.
//
// What
//
//   - Explore states in non-decreasing distance (step count) from a start state.
//   - A state is any comparable value: a grid position, a (position, direction)
//     pair, a (node, bitmask) pair. Transitions come from a neighbor function,
//     so the state graph is never materialized.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from state → distance from start
//   - Parent: map from state → its predecessor in the BFS tree
//   - Goal: the goal state that stopped the search (nil if none)
//   - Supports an OnVisit hook (may abort with an error), transition
//     filtering, a MaxDepth limit and an early-exit goal predicate.
//
// Why
//
//   - Unit-cost puzzles (maze runs, flood fills, reachability) do not need a
//     priority queue; a FIFO queue gives shortest distances in O(V + E).
//   - Weighted state spaces use the dijkstra package instead.
//
// Determinism
//
//	Neighbors are enqueued in the order the neighbor function returns them,
//	so the visit sequence is reproducible for a deterministic function.
//
// Complexity (V = reachable states, E = transitions)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(start, next, bfs.WithGoal(isExit))
//	if err != nil {
//		// ErrNilNeighbors, ErrOptionViolation, or a hook error
//	}
//	if res.Goal == nil {
//		// goal unreachable; distinct from a distance of 0
//	}
package bfs
