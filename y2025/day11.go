package y2025

import (
	"github.com/katalvlaran/gridsearch/memo"
	"github.com/katalvlaran/gridsearch/puzzle"
)

func init() {
	puzzle.Register(2025, 11, "Reactor", puzzle.Func(Reactor))
}

// Reactor counts device paths to "out": every path from "you", then the
// paths from "svr" that pass through both "dac" and "fft".
func Reactor(input string) (puzzle.Answer, error) {
	g, err := memo.ParseDigraph(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	all := memo.CountPaths(g, "you", "out")
	via, err := memo.CountPathsVia(g, "svr", "out", []string{"dac", "fft"})
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.NewAnswer(all, via), nil
}
