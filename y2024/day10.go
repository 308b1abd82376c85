package y2024

import (
	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/memo"
	"github.com/katalvlaran/gridsearch/puzzle"
	"github.com/katalvlaran/gridsearch/vec"
)

func init() {
	puzzle.Register(2024, 10, "Hoof It", puzzle.Func(HoofIt))
}

// HoofIt scores hiking trails on a height map. A trail climbs exactly one
// level per step from 0 to 9. A trailhead's score is the number of summits
// it reaches; its rating is the number of distinct trails it starts.
func HoofIt(input string) (puzzle.Answer, error) {
	g, err := grid.ParseFunc(input, grid.Digit)
	if err != nil {
		return puzzle.Answer{}, err
	}
	uphill := func(from, to int) bool { return to == from+1 }
	ratings := memo.NewTable[vec.Point, int]()

	score, rating := 0, 0
	for _, head := range g.FindAll(0) {
		for _, p := range grid.FloodFrom(g, head, uphill) {
			if g.At(p) == 9 {
				score++
			}
		}
		rating += trailRating(g, head, ratings)
	}
	return puzzle.NewAnswer(score, rating), nil
}

func trailRating(g *grid.Grid[int], p vec.Point, cache *memo.Table[vec.Point, int]) int {
	h := g.At(p)
	if h == 9 {
		return 1
	}
	return cache.Do(p, func() int {
		n := 0
		for _, q := range p.Neighbors4() {
			if v, ok := g.Get(q); ok && v == h+1 {
				n += trailRating(g, q, cache)
			}
		}
		return n
	})
}
