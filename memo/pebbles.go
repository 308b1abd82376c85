package memo

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNegativeSteps indicates a negative step budget.
	ErrNegativeSteps = errors.New("memo: steps must be non-negative")
	// ErrOverflow indicates a stone value or stone count beyond int64.
	ErrOverflow = errors.New("memo: int64 overflow")
)

// PebbleFactor multiplies stones that neither are zero nor split.
const PebbleFactor = 2024

// StoneKey identifies a pebble subproblem: a value with a remaining budget.
type StoneKey struct {
	Value int64
	Steps int
}

// Pebbles counts how many stones a single stone becomes after a number of
// blinks. Each blink applies the first matching rule:
//
//  1. 0 becomes 1;
//  2. a value with an even number of decimal digits splits into its left
//     and right halves (leading zeros dropped);
//  3. any other value is multiplied by PebbleFactor.
//
// With no steps left a stone counts as 1 regardless of its value.
type Pebbles struct {
	cache *Table[StoneKey, int64]
}

// NewPebbles returns a counter with an empty cache.
func NewPebbles() *Pebbles {
	return &Pebbles{cache: NewTable[StoneKey, int64]()}
}

// CountAll sums Count over values. The cache is cleared first so that a call
// never reuses entries from a previous top-level query.
func (p *Pebbles) CountAll(values []int64, steps int) (int64, error) {
	if steps < 0 {
		return 0, ErrNegativeSteps
	}
	p.cache.Clear()
	var total int64
	for _, v := range values {
		n, err := p.count(v, steps)
		if err != nil {
			return 0, err
		}
		if total, err = addCounts(total, n); err != nil {
			return 0, err
		}
	}
	return total, nil
}

// Count returns the number of stones value becomes after steps blinks,
// reusing the current cache.
func (p *Pebbles) Count(value int64, steps int) (int64, error) {
	if steps < 0 {
		return 0, ErrNegativeSteps
	}
	return p.count(value, steps)
}

// CacheLen reports the number of cached subproblems.
func (p *Pebbles) CacheLen() int { return p.cache.Len() }

func (p *Pebbles) count(value int64, steps int) (int64, error) {
	if steps == 0 {
		return 1, nil
	}
	key := StoneKey{Value: value, Steps: steps}
	if v, ok := p.cache.Get(key); ok {
		return v, nil
	}

	var (
		n   int64
		err error
	)
	switch {
	case value == 0:
		n, err = p.count(1, steps-1)
	default:
		if left, right, ok := SplitDigits(value); ok {
			var l, r int64
			if l, err = p.count(left, steps-1); err != nil {
				return 0, err
			}
			if r, err = p.count(right, steps-1); err != nil {
				return 0, err
			}
			n, err = addCounts(l, r)
		} else {
			if value > math.MaxInt64/PebbleFactor {
				return 0, fmt.Errorf("%w: %d * %d", ErrOverflow, value, PebbleFactor)
			}
			n, err = p.count(value*PebbleFactor, steps-1)
		}
	}
	if err != nil {
		return 0, err
	}
	return p.cache.Put(key, n), nil
}

func addCounts(a, b int64) (int64, error) {
	if a > math.MaxInt64-b {
		return 0, fmt.Errorf("%w: stone count", ErrOverflow)
	}
	return a + b, nil
}

// SplitDigits splits a non-negative value with an even number of decimal
// digits into its left and right halves. ok is false for odd digit counts.
func SplitDigits(v int64) (left, right int64, ok bool) {
	digits := 1
	pow := int64(10)
	for pow <= v {
		digits++
		if pow > (1<<63-1)/10 {
			break
		}
		pow *= 10
	}
	if digits%2 != 0 {
		return 0, 0, false
	}
	div := int64(1)
	for i := 0; i < digits/2; i++ {
		div *= 10
	}
	return v / div, v % div, true
}
