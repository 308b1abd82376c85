package puzzle_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/puzzle"
)

func TestRegistry(t *testing.T) {
	var r puzzle.Registry
	echo := puzzle.Func(func(in string) (puzzle.Answer, error) {
		return puzzle.NewAnswer(len(in), in), nil
	})
	require.NoError(t, r.Register(2025, 7, "b", echo))
	require.NoError(t, r.Register(2024, 16, "a", echo))
	require.NoError(t, r.Register(2025, 5, "c", echo))

	err := r.Register(2024, 16, "dup", echo)
	assert.True(t, errors.Is(err, puzzle.ErrDuplicate))

	e, err := r.Lookup(2024, 16)
	require.NoError(t, err)
	assert.Equal(t, "a", e.Name)
	assert.Equal(t, "2024/16", e.Key.String())

	ans, err := e.Solver.Solve("hey")
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Part1: "3", Part2: "hey"}, ans)

	_, err = r.Lookup(2023, 1)
	assert.True(t, errors.Is(err, puzzle.ErrNotRegistered))

	var order []string
	for _, e := range r.All() {
		order = append(order, e.Key.String())
	}
	assert.Equal(t, []string{"2024/16", "2025/05", "2025/07"}, order)
}

func TestLinesAndBlocks(t *testing.T) {
	in := "a\r\nb\r\n\r\nc\n\n\n"
	assert.Equal(t, "a\nb\n\nc", puzzle.Normalize(in))
	assert.Equal(t, []string{"a", "b", "", "c"}, puzzle.Lines(in))
	assert.Equal(t, []string{"a\nb", "c"}, puzzle.Blocks(in))
	assert.Nil(t, puzzle.Lines("\n\n"))
	assert.Nil(t, puzzle.Blocks(""))
}

func TestInts(t *testing.T) {
	got, err := puzzle.Ints("p=0,4 v=-3,-3 x 162,817,812")
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 4, -3, -3, 162, 817, 812}, got)

	_, err = puzzle.Ints("99999999999999999999")
	var numErr *strconv.NumError
	assert.True(t, errors.As(err, &numErr))
}

type mapSettings map[string]int

func (m mapSettings) IsSet(key string) bool {
	_, ok := m[key]
	return ok
}

func (m mapSettings) GetInt(key string) int { return m[key] }

// scaled multiplies the input length by a tunable factor.
type scaled struct{ factor int }

func (s scaled) Solve(in string) (puzzle.Answer, error) {
	return puzzle.NewAnswer(len(in)*s.factor, s.factor), nil
}

func (s scaled) WithSettings(set puzzle.Settings) puzzle.Solver {
	s.factor = puzzle.IntSetting(set, "factor", s.factor)
	return s
}

func TestConfigure(t *testing.T) {
	base := scaled{factor: 2}

	tuned := puzzle.Configure(base, mapSettings{"factor": 5})
	ans, err := tuned.Solve("abc")
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Part1: "15", Part2: "5"}, ans)
	assert.Equal(t, 2, base.factor, "receiver is left unchanged")

	kept := puzzle.Configure(base, mapSettings{"other": 9})
	ans, err = kept.Solve("abc")
	require.NoError(t, err)
	assert.Equal(t, "6", ans.Part1)

	plain := puzzle.Func(func(string) (puzzle.Answer, error) { return puzzle.Answer{}, nil })
	assert.NotNil(t, puzzle.Configure(plain, mapSettings{"factor": 5}))
	assert.Equal(t, 7, puzzle.IntSetting(nil, "factor", 7))
}
