package dfs

import (
	"fmt"
)

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter[S comparable] struct {
	next  func(S) []S
	opts  topoOptions
	state map[S]int // White (absent), Gray or Black
	order []S       // post-order
}

// TopologicalSort orders every state reachable from roots so that each
// state precedes all of its successors. Roots are explored in the given
// order and duplicates are ignored.
//
// Returns ErrCycleDetected (wrapped with the state that closed the cycle)
// when a reachable cycle exists.
func TopologicalSort[S comparable](roots []S, next func(S) []S, options ...TopoOption) ([]S, error) {
	// 1. Validate
	if next == nil {
		return nil, ErrNilNeighbors
	}
	// 2. Apply optional settings
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 3. Drive DFS from every unvisited root
	sorter := &topoSorter[S]{
		next:  next,
		opts:  opts,
		state: make(map[S]int),
	}
	for _, r := range roots {
		if sorter.state[r] == White {
			if err := sorter.visit(r); err != nil {
				return nil, err
			}
		}
	}
	// 4. Reverse post-order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit performs a DFS from s, marking states and detecting back-edges.
func (t *topoSorter[S]) visit(s S) error {
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	switch t.state[s] {
	case Gray:
		return fmt.Errorf("%w: at %v", ErrCycleDetected, s)
	case Black:
		return nil
	}
	t.state[s] = Gray

	for _, n := range t.next(s) {
		if err := t.visit(n); err != nil {
			return err
		}
	}

	t.state[s] = Black
	t.order = append(t.order, s)

	return nil
}
