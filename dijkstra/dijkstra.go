package dijkstra

import (
	"container/heap"
	"fmt"
)

// Dijkstra computes minimum costs from the given sources to every state
// reachable through next. All sources start at cost 0, which lets a caller
// seed a "backward" search from every orientation of a goal position at once.
//
// Returns:
//
//   - *Result: Dist holds the minimum cost per reached state; Prev is set when
//     WithReturnPath is given; Target is set when WithTarget stopped the search.
//   - error:   ErrNoSource, ErrNilNeighbors, or ErrNegativeWeight.
//
// Stale heap entries (popped with a cost larger than the recorded best) are
// discarded and never reprocessed.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra[S comparable](sources []S, next func(S) []Edge[S], opts ...Option[S]) (*Result[S], error) {
	// 1) Build options
	cfg := DefaultOptions[S]()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if len(sources) == 0 {
		return nil, ErrNoSource
	}
	if next == nil {
		return nil, ErrNilNeighbors
	}

	// 3) Prepare runner state
	r := &runner[S]{
		next:    next,
		options: cfg,
		dist:    make(map[S]int64, 64),
		done:    make(map[S]bool, 64),
		pq:      make(nodePQ[S], 0, 64),
	}
	if cfg.ReturnPath {
		r.prev = make(map[S]S, 64)
	}

	// 4) Seed and run
	r.init(sources)
	target, err := r.process()
	if err != nil {
		return nil, err
	}

	return &Result[S]{Dist: r.dist, Prev: r.prev, Target: target}, nil
}

// MinCost returns the minimum cost from source to the first finalized state
// satisfying target. found is false when no target state is reachable.
func MinCost[S comparable](source S, next func(S) []Edge[S], target func(S) bool) (cost int64, found bool, err error) {
	res, err := Dijkstra([]S{source}, next, WithTarget(target))
	if err != nil {
		return 0, false, err
	}
	if res.Target == nil {
		return 0, false, nil
	}
	return res.Dist[*res.Target], true, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[S comparable] struct {
	next    func(S) []Edge[S]
	options Options[S]
	dist    map[S]int64 // state → best known cost
	prev    map[S]S     // state → predecessor on an optimal path
	done    map[S]bool  // finalized states
	pq      nodePQ[S]
}

// init sets every source to cost 0 and pushes it onto the heap.
func (r *runner[S]) init(sources []S) {
	heap.Init(&r.pq)
	for _, s := range sources {
		if _, dup := r.dist[s]; dup {
			continue
		}
		r.dist[s] = 0
		heap.Push(&r.pq, &nodeItem[S]{state: s, dist: 0})
	}
}

// process repeatedly pops the cheapest state and relaxes its transitions.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable states processed).
//   - A target state is finalized.
//   - The minimum cost in the heap exceeds MaxCost.
func (r *runner[S]) process() (*S, error) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem[S])
		u, d := item.state, item.dist

		// Stale entry: a cheaper cost was recorded after this push.
		if r.done[u] || d > r.dist[u] {
			continue
		}
		if d > r.options.MaxCost {
			break
		}
		r.done[u] = true

		if r.options.Target != nil && r.options.Target(u) {
			return &u, nil
		}
		if err := r.relax(u, d); err != nil {
			return nil, err
		}
	}

	return nil, nil
}

// relax attempts to improve the cost of each neighbor of u.
func (r *runner[S]) relax(u S, du int64) error {
	for _, e := range r.next(u) {
		if e.Cost < 0 {
			return fmt.Errorf("%w: %v→%v cost=%d", ErrNegativeWeight, u, e.To, e.Cost)
		}
		nd := du + e.Cost
		if nd > r.options.MaxCost {
			continue
		}
		// Strictly better only; equal costs would only duplicate heap entries.
		if old, seen := r.dist[e.To]; seen && nd >= old {
			continue
		}
		r.dist[e.To] = nd
		if r.prev != nil {
			r.prev[e.To] = u
		}
		heap.Push(&r.pq, &nodeItem[S]{state: e.To, dist: nd})
	}

	return nil
}

// nodeItem represents a state and its cost at push time.
type nodeItem[S comparable] struct {
	state S
	dist  int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
// Outdated entries remain in the heap and are skipped when popped.
type nodePQ[S comparable] []*nodeItem[S]

func (pq nodePQ[S]) Len() int           { return len(pq) }
func (pq nodePQ[S]) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq nodePQ[S]) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap. Called by heap.Push.
func (pq *nodePQ[S]) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem[S])) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *nodePQ[S]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
