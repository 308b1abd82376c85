package bfs

import (
	"fmt"
)

// queueItem pairs a state with its BFS depth.
type queueItem[S comparable] struct {
	state S
	depth int
}

// walker encapsulates mutable BFS state.
type walker[S comparable] struct {
	next  func(S) []S
	opts  Options[S]
	queue []queueItem[S]
	res   *Result[S]
}

// BFS runs breadth-first search from start, expanding states with next
// and applying any number of functional Options.
// Returns ErrNilNeighbors for a nil next, ErrOptionViolation for bad options,
// or any user-supplied hook error.
func BFS[S comparable](start S, next func(S) []S, opts ...Option[S]) (*Result[S], error) {
	if next == nil {
		return nil, ErrNilNeighbors
	}
	o := DefaultOptions[S]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[S]{
		next:  next,
		opts:  o,
		queue: make([]queueItem[S], 0, 64),
		res: &Result[S]{
			Order:  make([]S, 0, 64),
			Depth:  make(map[S]int, 64),
			Parent: make(map[S]S, 64),
		},
	}

	w.enqueue(start, 0, nil)
	return w.res, w.loop()
}

// enqueue records s at depth d with its parent and appends it to the queue.
func (w *walker[S]) enqueue(s S, d int, parent *S) {
	w.res.Depth[s] = d
	if parent != nil {
		w.res.Parent[s] = *parent
	}
	w.queue = append(w.queue, queueItem[S]{state: s, depth: d})
}

// loop processes the queue until empty, a goal is dequeued, or a hook fails.
func (w *walker[S]) loop() error {
	for qi := 0; qi < len(w.queue); qi++ {
		item := w.queue[qi]
		w.res.Order = append(w.res.Order, item.state)
		if err := w.opts.OnVisit(item.state, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.state, err)
		}
		if w.opts.Goal != nil && w.opts.Goal(item.state) {
			g := item.state
			w.res.Goal = &g
			return nil
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, then enqueues each unseen neighbor.
func (w *walker[S]) enqueueNeighbors(item queueItem[S]) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.next(item.state) {
		if !w.opts.Filter(item.state, nbr) {
			continue
		}
		if _, seen := w.res.Depth[nbr]; !seen {
			w.enqueue(nbr, nextDepth, &item.state)
		}
	}
}

// ShortestPath returns the number of steps from start to the first state
// satisfying goal. found is false when no such state is reachable, which
// is distinct from a zero-length path (start itself is a goal).
func ShortestPath[S comparable](start S, next func(S) []S, goal func(S) bool) (steps int, found bool) {
	res, err := BFS(start, next, WithGoal(goal))
	if err != nil || res.Goal == nil {
		return 0, false
	}
	return res.Depth[*res.Goal], true
}
