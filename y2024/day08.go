package y2024

import (
	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/puzzle"
	"github.com/katalvlaran/gridsearch/vec"
)

func init() {
	puzzle.Register(2024, 8, "Resonant Collinearity", puzzle.Func(ResonantCollinearity))
}

// ResonantCollinearity counts antinode positions on the antenna map. For
// every ordered pair of same-frequency antennas (a, b) the first part marks
// b + (b - a); the second marks every point b + k(b - a), k >= 0, that lies
// on the map.
//
// Antenna positions are taken in a bottom-up frame (y grows toward the top
// line), the layout the city charts are drawn in.
func ResonantCollinearity(input string) (puzzle.Answer, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}

	byFreq := make(map[byte][]vec.Point)
	for _, p := range g.Points() {
		if c := g.At(p); c != '.' {
			byFreq[c] = append(byFreq[c], grid.FlipY(p, g.Height))
		}
	}
	onMap := func(p vec.Point) bool { return g.InBounds(grid.FlipY(p, g.Height)) }

	near := make(map[vec.Point]bool)
	inLine := make(map[vec.Point]bool)
	for _, antennas := range byFreq {
		for _, a := range antennas {
			for _, b := range antennas {
				if a == b {
					continue
				}
				step := b.Sub(a)
				if p := b.Add(step); onMap(p) {
					near[p] = true
				}
				for p := b; onMap(p); p = p.Add(step) {
					inLine[p] = true
				}
			}
		}
	}
	return puzzle.NewAnswer(len(near), len(inLine)), nil
}
