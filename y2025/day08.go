package y2025

import (
	"fmt"

	"github.com/katalvlaran/gridsearch/cluster"
	"github.com/katalvlaran/gridsearch/puzzle"
	"github.com/katalvlaran/gridsearch/vec"
)

func init() {
	puzzle.Register(2025, 8, "Playground", Playground{Connections: 1000})
}

// Playground wires junction boxes closest-first. Part one multiplies the
// three largest circuits after Connections attempts; part two multiplies the
// X coordinates of the pair that joins the last two circuits.
type Playground struct {
	Connections int
}

// WithSettings reads "playground.connections".
func (d Playground) WithSettings(s puzzle.Settings) puzzle.Solver {
	d.Connections = puzzle.IntSetting(s, "playground.connections", d.Connections)
	return d
}

// Solve implements puzzle.Solver.
func (d Playground) Solve(input string) (puzzle.Answer, error) {
	var boxes []vec.Point3
	for i, line := range puzzle.Lines(input) {
		xyz, err := puzzle.Ints(line)
		if err != nil || len(xyz) != 3 {
			return puzzle.Answer{}, fmt.Errorf("%w: line %d: want x,y,z: %q", ErrBadInput, i+1, line)
		}
		boxes = append(boxes, vec.Point3{X: int(xyz[0]), Y: int(xyz[1]), Z: int(xyz[2])})
	}

	pairs := cluster.AllPairs(boxes)
	forest, err := cluster.ConnectN(len(boxes), pairs, d.Connections)
	if err != nil {
		return puzzle.Answer{}, err
	}
	product := 1
	for _, s := range cluster.TopSizes(forest, 3) {
		product *= s
	}

	last, ok := cluster.ConnectAll(len(boxes), pairs)
	if !ok {
		return puzzle.Answer{}, fmt.Errorf("%w: fewer than two junction boxes", ErrBadInput)
	}
	return puzzle.NewAnswer(product, int64(boxes[last.A].X)*int64(boxes[last.B].X)), nil
}
