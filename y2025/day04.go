package y2025

import (
	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/puzzle"
	"github.com/katalvlaran/gridsearch/vec"
)

func init() {
	puzzle.Register(2025, 4, "Printing Department", puzzle.Func(PrintingDepartment))
}

// forkliftLimit is the neighbor count below which a roll can be reached.
const forkliftLimit = 4

// PrintingDepartment counts paper rolls '@' with fewer than forkliftLimit
// rolls among their eight neighbors, then how many rolls can be removed in
// total when every removal may free up its neighbors.
func PrintingDepartment(input string) (puzzle.Answer, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}

	crowd := grid.New(g.Width, g.Height, 0)
	var queue []vec.Point
	for _, p := range g.FindAll('@') {
		n := 0
		for _, q := range grid.Neighbors8(p) {
			if g.Is(q, '@') {
				n++
			}
		}
		crowd.Set(p, n)
		if n < forkliftLimit {
			queue = append(queue, p)
		}
	}
	accessible := len(queue)

	removed := 0
	for qi := 0; qi < len(queue); qi++ {
		p := queue[qi]
		if !g.Is(p, '@') {
			continue
		}
		g.Set(p, '.')
		removed++
		for _, q := range grid.Neighbors8(p) {
			if !g.Is(q, '@') {
				continue
			}
			n := crowd.At(q) - 1
			crowd.Set(q, n)
			if n < forkliftLimit {
				queue = append(queue, q)
			}
		}
	}
	return puzzle.NewAnswer(accessible, removed), nil
}
