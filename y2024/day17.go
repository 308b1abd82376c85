package y2024

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridsearch/puzzle"
	"github.com/katalvlaran/gridsearch/vm"
)

func init() {
	puzzle.Register(2024, 17, "Chronospatial Computer", puzzle.Func(ChronospatialComputer))
}

// runStepLimit guards part one against programs that never halt.
const runStepLimit = 1 << 20

// ChronospatialComputer prints the program's output, then the smallest
// register A that makes the program print itself. Programs that cannot
// print themselves report part two as puzzle.NotFound.
func ChronospatialComputer(input string) (puzzle.Answer, error) {
	regs, prog, err := vm.ParseProgram(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	out, err := vm.Run(regs, prog, vm.WithStepLimit(runStepLimit))
	if err != nil {
		return puzzle.Answer{}, err
	}
	ans := puzzle.Answer{Part1: vm.Join(out), Part2: puzzle.NotFound}
	a, err := vm.Inverse(prog)
	switch {
	case errors.Is(err, vm.ErrNoInverse):
		return ans, nil
	case err != nil:
		return puzzle.Answer{}, fmt.Errorf("program %s: %w", prog, err)
	}
	ans.Part2 = fmt.Sprint(a)
	return ans, nil
}
