// Package dijkstra provides Dijkstra's shortest-path algorithm over implicit
// state spaces with non-negative transition costs.
//
// Overview:
//
//   - A state is any comparable value; transitions come from a neighbor
//     function returning []Edge{To, Cost}. Nothing is materialized up front,
//     so rich states such as (position, facing) pairs cost nothing extra.
//   - Dijkstra accepts several sources, all at cost 0. This is how a backward
//     search is seeded from a goal position in every orientation at once.
//   - It relies on a min-heap with lazy decrease-key: improved costs push a
//     new entry and stale entries are dropped when popped.
//
// Queries:
//
//   - Full map: Result.Dist holds the minimum cost of every reached state.
//     Absence from the map means unreachable, never cost 0.
//   - Single goal: MinCost or WithTarget stop as soon as a goal is finalized.
//   - All optimal paths: run Dijkstra backward from the goal to get the
//     remaining cost of every state, then OptimalStates walks forward from the
//     start and keeps transitions with remaining(s) - cost == remaining(n).
//     This requires reversed transitions to carry the same cost as forward ones.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Error handling (sentinel errors):
//
//   - ErrNoSource:       no source state given.
//   - ErrNilNeighbors:   nil neighbor function.
//   - ErrNegativeWeight: a transition with negative cost was produced.
//   - ErrUnreachable:    a queried state has no distance.
//   - ErrBadMaxCost:     raised (via panic) by WithMaxCost on negative input.
//
// Thread safety:
//
//   - Each call owns its state; concurrent calls are safe as long as the
//     neighbor function is.
package dijkstra
