// Package dfs orders implicit directed state graphs depth first.
//
// What:
//
//   - TopologicalSort: every state reachable from a set of roots, ordered so
//     that for each transition u→v, u appears before v. A transition back
//     into a state still on the recursion stack is a cycle and yields
//     ErrCycleDetected.
//   - States are any comparable value; transitions come from a neighbor
//     function, so the graph is never materialized.
//
// Why:
//
//   - Memoized path counting is only well founded on acyclic graphs; a
//     topological pass proves that before the recursion starts.
//   - The order itself lets counts be accumulated without recursion.
//
// Key Types & Constants:
//
//   - White, Gray, Black: visitation markers.
//   - TopoOption: functional options (cancellation).
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the state map and recursion stack
//
// Errors:
//
//   - ErrNilNeighbors   neighbor function is nil
//   - ErrCycleDetected  a reachable cycle exists
//   - context.Canceled  sort canceled via context
package dfs
