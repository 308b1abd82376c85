package dfs

import (
	"context"
	"errors"
)

// Visitation states.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // fully explored
)

var (
	// ErrNilNeighbors is returned when no neighbor function is supplied.
	ErrNilNeighbors = errors.New("dfs: neighbor function is nil")

	// ErrCycleDetected indicates that a cycle was reached during TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort, currently only cancellation.
type topoOptions struct {
	ctx context.Context // allows cancellation; defaults to Background
}

func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
