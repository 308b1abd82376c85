package bfs

import (
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrNilNeighbors is returned if no neighbor function is supplied.
	ErrNilNeighbors = errors.New("bfs: neighbor function is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for states the search never reached.
	ErrNoPath = errors.New("bfs: state not reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option[S comparable] func(*Options[S])

// Options holds parameters and callbacks to customize BFS execution.
type Options[S comparable] struct {
	// OnVisit is called when a state is dequeued. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(s S, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 disables any depth limit.
	MaxDepth int

	// Filter can skip transitions by returning false.
	Filter func(curr, next S) bool

	// Goal, if set, stops the search as soon as a matching state is dequeued.
	Goal func(s S) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no depth limit, no filtering,
// no goal and a no-op visit hook.
func DefaultOptions[S comparable]() Options[S] {
	return Options[S]{
		OnVisit:  func(S, int) error { return nil },
		MaxDepth: 0,
		Filter:   func(_, _ S) bool { return true },
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit[S comparable](fn func(s S, depth int) error) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[S comparable](d int) Option[S] {
	return func(o *Options[S]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilter skips transitions when fn returns false.
func WithFilter[S comparable](fn func(curr, next S) bool) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.Filter = fn
		}
	}
}

// WithGoal stops the search once a state satisfying fn is dequeued.
func WithGoal[S comparable](fn func(s S) bool) Option[S] {
	return func(o *Options[S]) {
		o.Goal = fn
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: states visited, in visit sequence.
//   - Depth: map from state to its distance (in steps) from the start.
//   - Parent: map from state to its predecessor in the BFS tree.
//   - Goal: the goal state that stopped the search, if any.
type Result[S comparable] struct {
	Order  []S
	Depth  map[S]int
	Parent map[S]S
	Goal   *S
}

// Reached reports whether s was discovered.
func (r *Result[S]) Reached(s S) bool {
	_, ok := r.Depth[s]
	return ok
}

// PathTo reconstructs the path from the start state to dest.
// Returns ErrNoPath if dest was not reached.
func (r *Result[S]) PathTo(dest S) ([]S, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %v", ErrNoPath, dest)
	}
	path := []S{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
