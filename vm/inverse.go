package vm

import (
	"errors"
	"fmt"
	"slices"
)

// ErrNoInverse is returned when no register value reproduces the target.
var ErrNoInverse = errors.New("vm: no initial A produces the target output")

// inverseStepLimit bounds each trial run during inversion.
const inverseStepLimit = 1 << 16

// Inverse returns the smallest A such that Run({A, 0, 0}, prog) == prog.
func Inverse(prog Program) (int64, error) {
	return InverseFor(prog, prog)
}

// InverseFor returns the smallest A such that Run({A, 0, 0}, prog) equals
// target. A is assembled one octal digit per target value, most significant
// first; a trial run that exceeds the internal step budget counts as a
// mismatch.
func InverseFor(prog Program, target []int) (int64, error) {
	if len(target) == 0 {
		return 0, fmt.Errorf("%w: empty target", ErrNoInverse)
	}
	if len(target) > 21 {
		return 0, fmt.Errorf("%w: target of %d values overflows int64", ErrNoInverse, len(target))
	}
	a, ok, err := invert(prog, target, 0, 0)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrNoInverse
	}
	return a, nil
}

// invert extends prefix by one octal digit so that the output equals the
// last matched+1 target values.
func invert(prog Program, target []int, prefix int64, matched int) (int64, bool, error) {
	if matched == len(target) {
		return prefix, true, nil
	}
	want := target[len(target)-matched-1:]
	for d := int64(0); d < 8; d++ {
		cand := prefix<<3 | d
		out, err := Run(Registers{A: cand}, prog, WithStepLimit(inverseStepLimit))
		if errors.Is(err, ErrStepLimit) {
			continue
		}
		if err != nil {
			return 0, false, err
		}
		if !slices.Equal(out, want) {
			continue
		}
		if a, ok, err := invert(prog, target, cand, matched+1); err != nil || ok {
			return a, ok, err
		}
	}
	return 0, false, nil
}
