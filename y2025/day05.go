package y2025

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridsearch/interval"
	"github.com/katalvlaran/gridsearch/parallel"
	"github.com/katalvlaran/gridsearch/puzzle"
)

func init() {
	puzzle.Register(2025, 5, "Cafeteria", Cafeteria{})
}

// Cafeteria checks ingredient ids against fresh-id ranges. Part one counts
// available ids that are fresh; part two counts every id the ranges cover.
type Cafeteria struct {
	// Workers bounds the membership checks; <= 0 uses GOMAXPROCS.
	Workers int
}

// WithSettings reads "workers".
func (d Cafeteria) WithSettings(s puzzle.Settings) puzzle.Solver {
	d.Workers = puzzle.IntSetting(s, "workers", d.Workers)
	return d
}

// Solve implements puzzle.Solver.
func (d Cafeteria) Solve(input string) (puzzle.Answer, error) {
	blocks := puzzle.Blocks(input)
	if len(blocks) != 2 {
		return puzzle.Answer{}, fmt.Errorf("%w: want ranges and ids separated by a blank line", ErrBadInput)
	}

	var ranges []interval.Range
	for _, line := range strings.Split(blocks[0], "\n") {
		r, err := interval.ParseRange(line)
		if err != nil {
			return puzzle.Answer{}, err
		}
		ranges = append(ranges, r)
	}
	fresh := interval.Merge(ranges)

	var ids []int64
	for _, line := range strings.Split(blocks[1], "\n") {
		id, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
		if err != nil {
			return puzzle.Answer{}, fmt.Errorf("%w: id %q", ErrBadInput, line)
		}
		ids = append(ids, id)
	}

	n, err := parallel.Count(context.Background(), ids, d.Workers, fresh.Contains)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.NewAnswer(n, fresh.Total()), nil
}
