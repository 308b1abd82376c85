// Package interval stores inclusive integer ranges as a sorted, disjoint set.
package interval

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrBadRange is returned by ParseRange for malformed or reversed ranges.
var ErrBadRange = errors.New("interval: malformed range")

// Range is the inclusive span [Lo, Hi].
type Range struct {
	Lo, Hi int64
}

// Len returns the number of ids in r.
func (r Range) Len() int64 { return r.Hi - r.Lo + 1 }

// Contains reports whether x lies in r.
func (r Range) Contains(x int64) bool { return r.Lo <= x && x <= r.Hi }

func (r Range) String() string { return fmt.Sprintf("%d-%d", r.Lo, r.Hi) }

// ParseRange reads "lo-hi".
func ParseRange(s string) (Range, error) {
	lo, hi, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return Range{}, fmt.Errorf("%w: %q", ErrBadRange, s)
	}
	a, err := strconv.ParseInt(lo, 10, 64)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q: %v", ErrBadRange, s, err)
	}
	b, err := strconv.ParseInt(hi, 10, 64)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q: %v", ErrBadRange, s, err)
	}
	if b < a {
		return Range{}, fmt.Errorf("%w: %q is reversed", ErrBadRange, s)
	}
	return Range{Lo: a, Hi: b}, nil
}

// Set is a sorted list of disjoint, non-adjacent ranges.
type Set []Range

// Merge sorts ranges and coalesces those that overlap or touch.
// The input slice is not modified.
func Merge(ranges []Range) Set {
	if len(ranges) == 0 {
		return nil
	}
	rs := append([]Range(nil), ranges...)
	sort.Slice(rs, func(i, j int) bool {
		if rs[i].Lo != rs[j].Lo {
			return rs[i].Lo < rs[j].Lo
		}
		return rs[i].Hi < rs[j].Hi
	})

	out := Set{rs[0]}
	for _, r := range rs[1:] {
		last := &out[len(out)-1]
		if r.Lo <= last.Hi || r.Lo-1 == last.Hi {
			last.Hi = max(last.Hi, r.Hi)
			continue
		}
		out = append(out, r)
	}
	return out
}

// Contains reports whether x lies in any range, by binary search.
func (s Set) Contains(x int64) bool {
	i := sort.Search(len(s), func(i int) bool { return s[i].Hi >= x })
	return i < len(s) && s[i].Lo <= x
}

// Total returns the number of ids covered by s.
func (s Set) Total() int64 {
	var n int64
	for _, r := range s {
		n += r.Len()
	}
	return n
}
