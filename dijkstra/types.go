// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on implicit weighted state spaces.
//
// Dijkstra computes the minimum-cost path from one or more source states to
// all other reachable states, given a neighbor function producing
// (next state, edge cost) pairs with non-negative costs. The algorithm
// maintains a priority queue of states to explore and relaxes edges in
// increasing order of accumulated cost.
//
// Complexity:
//
//	– Time:  O((V + E) log V)   where V = reachable states, E = transitions
//	– Space: O(V + E)           lazy decrease-key keeps stale heap entries
//
// Options:
//
//	– Target:      optional predicate; the search stops once a matching state is finalized.
//	– ReturnPath:  if true, record predecessors for path reconstruction.
//	– MaxCost:     optional cap on costs to explore; states beyond this are skipped.
//
// Errors (sentinel):
//
//	– ErrNoSource        if no source state is provided.
//	– ErrNilNeighbors    if the neighbor function is nil.
//	– ErrNegativeWeight  if a negative edge cost is produced.
//	– ErrBadMaxCost      if MaxCost < 0.
//	– ErrUnreachable     if a query state has no recorded distance.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSource indicates that no source state was provided.
	ErrNoSource = errors.New("dijkstra: no source state")

	// ErrNilNeighbors indicates that a nil neighbor function was passed.
	ErrNilNeighbors = errors.New("dijkstra: neighbor function is nil")

	// ErrNegativeWeight indicates that a negative edge cost was produced.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxCost indicates that MaxCost was set to a negative value.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")

	// ErrUnreachable indicates that a state was never reached by the search.
	ErrUnreachable = errors.New("dijkstra: state unreachable")
)

// Edge is a transition to To with non-negative cost Cost.
type Edge[S comparable] struct {
	To   S
	Cost int64
}

// Options configures the behavior of the Dijkstra algorithm.
type Options[S comparable] struct {
	// Target, if set, stops the search once a matching state is popped with
	// its final cost. Other states may remain unfinalized.
	Target func(S) bool

	// ReturnPath populates Result.Prev.
	ReturnPath bool

	// MaxCost skips states whose cost would exceed it. Must be >= 0;
	// the default math.MaxInt64 means no cap.
	MaxCost int64
}

// Option represents a functional option for configuring Dijkstra.
type Option[S comparable] func(*Options[S])

// WithTarget stops the search once a state satisfying fn is finalized.
func WithTarget[S comparable](fn func(S) bool) Option[S] {
	return func(o *Options[S]) {
		o.Target = fn
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath[S comparable]() Option[S] {
	return func(o *Options[S]) {
		o.ReturnPath = true
	}
}

// WithMaxCost sets a maximum cost threshold.
// Must pass a non-negative value; negative values panic with ErrBadMaxCost,
// signalling an invalid configuration early.
func WithMaxCost[S comparable](max int64) Option[S] {
	return func(o *Options[S]) {
		if max < 0 {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// DefaultOptions returns an Options struct with no target, no predecessor
// map and no cost cap.
func DefaultOptions[S comparable]() Options[S] {
	return Options[S]{
		ReturnPath: false,
		MaxCost:    math.MaxInt64,
	}
}

// Result is the outcome of a Dijkstra run.
//
//   - Dist:   best known cost per reached state. States never reached have
//     no entry, which is how "unreachable" differs from cost 0.
//   - Prev:   predecessor per state on one optimal path (nil unless ReturnPath).
//   - Target: the target state that stopped the search, if any.
type Result[S comparable] struct {
	Dist   map[S]int64
	Prev   map[S]S
	Target *S
}

// Cost returns the distance of s and whether s was reached.
func (r *Result[S]) Cost(s S) (int64, bool) {
	d, ok := r.Dist[s]
	return d, ok
}
