package y2024

import (
	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/puzzle"
)

func init() {
	puzzle.Register(2024, 12, "Garden Groups", puzzle.Func(GardenGroups))
}

// GardenGroups prices fencing for each plot region: area times perimeter,
// then area times number of sides.
func GardenGroups(input string) (puzzle.Answer, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	var byPerimeter, bySides int
	for _, r := range grid.Regions(g, grid.Equal[byte]) {
		byPerimeter += r.Area() * r.Perimeter()
		bySides += r.Area() * r.Sides()
	}
	return puzzle.NewAnswer(byPerimeter, bySides), nil
}
