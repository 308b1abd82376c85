// Package y2025 registers the 2025 solvers built on the search kernel.
package y2025

import "errors"

// ErrBadInput is returned for input that does not match a day's format.
var ErrBadInput = errors.New("y2025: malformed input")
