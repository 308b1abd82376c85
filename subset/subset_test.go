package subset_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/subset"
)

type machine struct {
	lights  uint64
	ops     [][]int
	targets []int
}

var machines = []machine{
	{
		lights:  subset.IndicesToMask([]int{1, 2}),
		ops:     [][]int{{3}, {1, 3}, {2}, {2, 3}, {0, 2}, {0, 1}},
		targets: []int{3, 5, 4, 7},
	},
	{
		lights:  subset.IndicesToMask([]int{3}),
		ops:     [][]int{{0, 2, 3, 4}, {2, 3}, {0, 4}, {0, 1, 2}, {1, 2, 3, 4}},
		targets: []int{7, 5, 12, 7, 2},
	},
	{
		lights:  subset.IndicesToMask([]int{1, 2, 3, 5}),
		ops:     [][]int{{0, 1, 2, 3, 4}, {0, 3, 4}, {0, 1, 2, 4, 5}, {1, 2}},
		targets: []int{10, 11, 11, 5, 10, 5},
	},
}

func masksOf(ops [][]int) []uint64 {
	out := make([]uint64, len(ops))
	for i, op := range ops {
		out[i] = subset.IndicesToMask(op)
	}
	return out
}

func TestMinXor_Machines(t *testing.T) {
	want := []int{2, 3, 2}
	for i, m := range machines {
		got, ok, err := subset.MinXor(masksOf(m.ops), m.lights)
		require.NoError(t, err)
		require.True(t, ok, "machine %d", i)
		assert.Equal(t, want[i], got, "machine %d", i)
	}
}

func TestMinXor_EdgeCases(t *testing.T) {
	masks := []uint64{0b0011, 0b0110, 0b1000}

	got, ok, err := subset.MinXor(masks, 0)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 0, got)

	got, ok, err = subset.MinXor(masks, 0b0110)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, got, "a target equal to one mask needs one press")

	got, ok, err = subset.MinXor(masks, 0b1101)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 3, got)

	// Bit outside every mask.
	_, ok, err = subset.MinXor(masks, 0b10000)
	require.NoError(t, err)
	assert.False(t, ok)

	// Inside the OR of the masks but not in their span.
	_, ok, err = subset.MinXor([]uint64{0b011, 0b110}, 0b111)
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = subset.MinXor(make([]uint64, subset.MaxToggleOps+1), 1)
	assert.True(t, errors.Is(err, subset.ErrTooMany))
}

func TestMinPresses_Machines(t *testing.T) {
	want := []int{10, 12, 11}
	for i, m := range machines {
		got, err := subset.MinPresses(m.ops, m.targets)
		require.NoError(t, err, "machine %d", i)
		assert.Equal(t, want[i], got, "machine %d", i)
	}
}

func TestMinPresses_ZeroIsNotInfeasible(t *testing.T) {
	got, err := subset.MinPresses([][]int{{0}, {1}}, []int{0, 0})
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	got, err = subset.MinPresses(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestMinPresses_Infeasible(t *testing.T) {
	// Counter 2 is touched by nothing.
	_, err := subset.MinPresses([][]int{{0}, {1}}, []int{1, 1, 3})
	assert.True(t, errors.Is(err, subset.ErrInfeasible))

	// Inconsistent: one op drives both counters equally.
	_, err = subset.MinPresses([][]int{{0, 1}}, []int{1, 2})
	assert.True(t, errors.Is(err, subset.ErrInfeasible))

	// The only rational solution is x = 1/2 everywhere.
	_, err = subset.MinPresses([][]int{{0, 1}, {1, 2}, {0, 2}}, []int{1, 1, 1})
	assert.True(t, errors.Is(err, subset.ErrInfeasible))

	// Integer but negative: x0 = 2, x1 = -1.
	_, err = subset.MinPresses([][]int{{0, 1}, {1}}, []int{2, 1})
	assert.True(t, errors.Is(err, subset.ErrInfeasible))
}

func TestMinPresses_BadInput(t *testing.T) {
	_, err := subset.MinPresses([][]int{{0, 4}}, []int{1})
	assert.True(t, errors.Is(err, subset.ErrBadCounter))

	_, err = subset.MinPresses([][]int{{0}}, []int{-1})
	assert.True(t, errors.Is(err, subset.ErrNegativeTarget))
}

// TestMinPresses_PrefersWideOps checks the optimizer picks the cheaper of
// several exact decompositions.
func TestMinPresses_PrefersWideOps(t *testing.T) {
	ops := [][]int{{0}, {1}, {2}, {0, 1, 2}}
	got, err := subset.MinPresses(ops, []int{4, 4, 4})
	require.NoError(t, err)
	assert.Equal(t, 4, got)

	got, err = subset.MinPresses(ops, []int{5, 4, 4})
	require.NoError(t, err)
	assert.Equal(t, 5, got)
}
