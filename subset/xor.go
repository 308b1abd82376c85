// Package subset searches small families of toggle or counter operations
// for the cheapest combination that reaches a target.
//
//   - MinXor: each operation flips a fixed bit mask; find the fewest
//     operations whose XOR equals the target pattern.
//   - MinPresses: each operation adds one to a fixed set of counters and may
//     be applied any number of times; find the fewest total applications
//     that make every counter equal its target exactly.
//
// "No solution" is reported distinctly from a zero answer: MinXor returns
// ok == false and MinPresses returns ErrInfeasible.
package subset

import (
	"errors"
	"fmt"
	"math/bits"
)

// MaxToggleOps bounds the brute-force enumeration of MinXor.
const MaxToggleOps = 24

var (
	// ErrTooMany indicates more operations than MaxToggleOps.
	ErrTooMany = errors.New("subset: too many operations for exhaustive search")
)

// MinXor returns the minimum number of masks whose XOR equals target.
// ok is false when no subset reaches the target; target 0 is reached by the
// empty subset.
//
// Targets outside the GF(2) span of masks are rejected before enumeration.
// The enumeration walks all 2^n subsets in Gray-code order, so each step
// costs a single XOR.
func MinXor(masks []uint64, target uint64) (presses int, ok bool, err error) {
	n := len(masks)
	if n > MaxToggleOps {
		return 0, false, fmt.Errorf("%w: %d > %d", ErrTooMany, n, MaxToggleOps)
	}
	if target == 0 {
		return 0, true, nil
	}
	if !inSpan(masks, target) {
		return 0, false, nil
	}

	best := -1
	var cur uint64
	for i := uint64(1); i < 1<<uint(n); i++ {
		cur ^= masks[bits.TrailingZeros64(i)]
		if cur != target {
			continue
		}
		gray := i ^ (i >> 1)
		if c := bits.OnesCount64(gray); best < 0 || c < best {
			best = c
		}
	}
	if best < 0 {
		return 0, false, nil
	}
	return best, true, nil
}

// inSpan reports whether target is an XOR combination of masks, using an
// incremental GF(2) basis keyed by leading bit.
func inSpan(masks []uint64, target uint64) bool {
	var basis [64]uint64
	for _, m := range masks {
		for m != 0 {
			hb := 63 - bits.LeadingZeros64(m)
			if basis[hb] == 0 {
				basis[hb] = m
				break
			}
			m ^= basis[hb]
		}
	}
	for target != 0 {
		hb := 63 - bits.LeadingZeros64(target)
		if basis[hb] == 0 {
			return false
		}
		target ^= basis[hb]
	}
	return true
}

// IndicesToMask builds a mask with bit i set for every index. Indices must be
// in [0, 64).
func IndicesToMask(indices []int) uint64 {
	var m uint64
	for _, i := range indices {
		m |= 1 << uint(i)
	}
	return m
}
