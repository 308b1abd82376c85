package memo_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/dfs"
	"github.com/katalvlaran/gridsearch/memo"
)

func TestTable_DoCachesAndClears(t *testing.T) {
	tb := memo.NewTable[int, int]()
	calls := 0
	var fib func(n int) int
	fib = func(n int) int {
		if n < 2 {
			return n
		}
		return tb.Do(n, func() int {
			calls++
			return fib(n-1) + fib(n-2)
		})
	}
	assert.Equal(t, 832040, fib(30))
	assert.Equal(t, 29, calls)
	assert.Equal(t, 29, tb.Len())

	tb.Clear()
	assert.Equal(t, 0, tb.Len())
	_, ok := tb.Get(10)
	assert.False(t, ok)
}

func TestSplitDigits(t *testing.T) {
	cases := []struct {
		v           int64
		left, right int64
		ok          bool
	}{
		{0, 0, 0, false},
		{7, 0, 0, false},
		{10, 1, 0, true},
		{1000, 10, 0, true},
		{253000, 253, 0, true},
		{512072, 512, 72, true},
		{999, 0, 0, false},
		{1000000000000000000, 0, 0, false},
		{123456789012345678, 123456789, 12345678, true},
	}
	for _, c := range cases {
		l, r, ok := memo.SplitDigits(c.v)
		assert.Equal(t, c.ok, ok, "v=%d", c.v)
		if c.ok {
			assert.Equal(t, c.left, l, "v=%d", c.v)
			assert.Equal(t, c.right, r, "v=%d", c.v)
		}
	}
}

func TestPebbles_Examples(t *testing.T) {
	p := memo.NewPebbles()

	n, err := p.CountAll([]int64{0, 1, 10, 99, 999}, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)

	n, err = p.CountAll([]int64{125, 17}, 6)
	require.NoError(t, err)
	assert.Equal(t, int64(22), n)

	n, err = p.CountAll([]int64{125, 17}, 25)
	require.NoError(t, err)
	assert.Equal(t, int64(55312), n)

	n, err = p.Count(42, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = p.CountAll(nil, -1)
	assert.True(t, errors.Is(err, memo.ErrNegativeSteps))
}

// TestPebbles_ClearedCacheIsDeterministic runs the same query twice with a
// different-budget query in between; results must not leak across queries.
func TestPebbles_ClearedCacheIsDeterministic(t *testing.T) {
	p := memo.NewPebbles()
	first, err := p.CountAll([]int64{125, 17}, 25)
	require.NoError(t, err)
	_, err = p.CountAll([]int64{125, 17}, 40)
	require.NoError(t, err)
	second, err := p.CountAll([]int64{125, 17}, 25)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	fresh := memo.NewPebbles()
	third, err := fresh.CountAll([]int64{125, 17}, 25)
	require.NoError(t, err)
	assert.Equal(t, first, third)
	assert.Greater(t, fresh.CacheLen(), 0)
}

// TestPebbles_Overflow covers stones whose multiplied value no longer fits
// in int64: a 17-digit and a 19-digit value both have an odd digit count.
func TestPebbles_Overflow(t *testing.T) {
	p := memo.NewPebbles()

	_, err := p.Count(10_000_000_000_000_000, 1)
	assert.ErrorIs(t, err, memo.ErrOverflow)

	_, err = p.Count(1_000_000_000_000_000_000, 3)
	assert.ErrorIs(t, err, memo.ErrOverflow)

	_, err = p.CountAll([]int64{125, 1_000_000_000_000_000_000}, 2)
	assert.ErrorIs(t, err, memo.ErrOverflow)

	// 16 digits split without multiplying.
	n, err := p.Count(1234567812345678, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	// Failed queries leave nothing behind that breaks later ones.
	n, err = p.CountAll([]int64{125, 17}, 25)
	require.NoError(t, err)
	assert.Equal(t, int64(55312), n)
}

const reactor = `
svr: aaa bbb
aaa: fft
fft: ccc
bbb: tty
tty: ccc
ccc: ddd eee
ddd: hub
hub: fff
eee: dac
dac: fff
fff: ggg hhh
ggg: out
hhh: out
`

const youOut = `
aaa: you hhh
you: bbb ccc
bbb: ddd eee
ccc: ddd eee fff
ddd: ggg
eee: out
fff: out
ggg: out
hhh: ccc fff iii
iii: out
`

func TestCountPaths(t *testing.T) {
	g, err := memo.ParseDigraph(youOut)
	require.NoError(t, err)
	assert.Equal(t, int64(5), memo.CountPaths(g, "you", "out"))
	assert.Equal(t, int64(0), memo.CountPaths(g, "out", "you"))
}

func TestCountPathsVia_RequiredMask(t *testing.T) {
	g, err := memo.ParseDigraph(reactor)
	require.NoError(t, err)

	all, err := memo.CountPathsVia(g, "svr", "out", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(8), all)
	assert.Equal(t, all, memo.CountPaths(g, "svr", "out"))

	via, err := memo.CountPathsVia(g, "svr", "out", []string{"dac", "fft"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), via)

	// The start itself counts as visited when it is required.
	self, err := memo.CountPathsVia(g, "fft", "out", []string{"fft"})
	require.NoError(t, err)
	assert.Equal(t, int64(4), self)
}

func TestCountPathsVia_RepeatedRequiredCountsOnce(t *testing.T) {
	g, err := memo.ParseDigraph("a: b\nb: c\n")
	require.NoError(t, err)

	once, err := memo.CountPathsVia(g, "a", "c", []string{"b"})
	require.NoError(t, err)
	twice, err := memo.CountPathsVia(g, "a", "c", []string{"b", "b"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), once)
	assert.Equal(t, once, twice)

	names := make([]string, 0, 70)
	for i := 0; i < 70; i++ {
		names = append(names, "b")
	}
	n, err := memo.CountPathsVia(g, "a", "c", names)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestCountPathsVia_RejectsCycles(t *testing.T) {
	g, err := memo.ParseDigraph("a: b\nb: c\nc: a out\n")
	require.NoError(t, err)
	_, err = memo.CountPathsVia(g, "a", "out", nil)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)

	// Cycles beyond the target are never walked.
	g, err = memo.ParseDigraph("a: out\nout: a\n")
	require.NoError(t, err)
	n, err := memo.CountPathsVia(g, "a", "out", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestParseDigraph_Malformed(t *testing.T) {
	_, err := memo.ParseDigraph("abc def\n")
	assert.True(t, errors.Is(err, memo.ErrBadGraphLine))
}
