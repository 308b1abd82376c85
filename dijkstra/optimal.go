package dijkstra

import (
	"fmt"
)

// OptimalStates returns every state lying on at least one minimum-cost path
// from start to the goal set, start included, in discovery order.
//
// remaining must hold, for each state, the minimum cost from that state to
// the goal. It is obtained by running Dijkstra with the goal states as
// sources over reversed transitions. A transition s → n taken from forward is
// on an optimal path iff
//
//	remaining[s] - cost(s, n) == remaining[n]
//
// Precondition: reversing a transition preserves its cost, i.e. the backward
// neighbor function used to build remaining yields (s, c) from n exactly when
// forward yields (n, c) from s. The function does not check this.
//
// Returns ErrUnreachable if start has no remaining cost.
//
// Complexity: O(V + E) over the optimal sub-graph.
func OptimalStates[S comparable](start S, forward func(S) []Edge[S], remaining map[S]int64) ([]S, error) {
	if forward == nil {
		return nil, ErrNilNeighbors
	}
	if _, ok := remaining[start]; !ok {
		return nil, fmt.Errorf("%w: start %v", ErrUnreachable, start)
	}

	visited := map[S]bool{start: true}
	queue := []S{start}
	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		rc := remaining[cur]
		for _, e := range forward(cur) {
			rn, ok := remaining[e.To]
			if !ok || rn != rc-e.Cost || visited[e.To] {
				continue
			}
			visited[e.To] = true
			queue = append(queue, e.To)
		}
	}

	return queue, nil
}

// Distinct projects states through key and drops duplicates, keeping the
// first occurrence. It is typically used to collapse (position, direction)
// states to positions.
func Distinct[S any, K comparable](states []S, key func(S) K) []K {
	seen := make(map[K]bool, len(states))
	out := make([]K, 0, len(states))
	for _, s := range states {
		k := key(s)
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}

// PathTo reconstructs one optimal path from a source to dest.
// It requires a run with WithReturnPath.
func (r *Result[S]) PathTo(dest S) ([]S, error) {
	if _, ok := r.Dist[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, dest)
	}
	if r.Prev == nil {
		return nil, fmt.Errorf("dijkstra: PathTo requires WithReturnPath")
	}
	path := []S{dest}
	for cur := dest; ; {
		p, ok := r.Prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
