// Package y2024 registers the 2024 solvers built on the search kernel.
//
// Importing the package for its side effects adds every day to the puzzle
// registry:
//
//	import _ "github.com/katalvlaran/gridsearch/y2024"
package y2024

import "errors"

// Sentinel errors shared by the 2024 solvers.
var (
	// ErrBadInput is returned for puzzle text or settings a solver cannot use.
	ErrBadInput = errors.New("y2024: malformed input")
	// ErrNoRoute is returned when a maze or memory space has no path to its exit.
	ErrNoRoute = errors.New("y2024: no route to the exit")
	// ErrNeverBlocked is returned when no prefix of falling bytes cuts off the exit.
	ErrNeverBlocked = errors.New("y2024: exit is never cut off")
)
