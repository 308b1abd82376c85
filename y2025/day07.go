package y2025

import (
	"fmt"

	"github.com/katalvlaran/gridsearch/bfs"
	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/memo"
	"github.com/katalvlaran/gridsearch/puzzle"
	"github.com/katalvlaran/gridsearch/vec"
)

func init() {
	puzzle.Register(2025, 7, "Laboratories", puzzle.Func(Laboratories))
}

// Laboratories follows a tachyon beam falling from S. A splitter '^' stops
// the beam and emits two new beams from its left and right neighbors; beams
// leaving the sides of the manifold vanish.
//
// Part one counts the splitters any beam reaches. Part two counts timelines:
// every split forks the current timeline in two.
func Laboratories(input string) (puzzle.Answer, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	start, err := g.Find('S')
	if err != nil {
		return puzzle.Answer{}, fmt.Errorf("beam source: %w", err)
	}
	m := manifold{g: g}

	hit := make(map[vec.Point]bool)
	next := func(p vec.Point) []vec.Point {
		split, exits := m.fall(p)
		if exits {
			return nil
		}
		hit[split] = true
		return m.sideways(split)
	}
	if _, err := bfs.BFS(start, next); err != nil {
		return puzzle.Answer{}, err
	}

	timelines := m.timelines(start, memo.NewTable[vec.Point, int64]())
	return puzzle.NewAnswer(len(hit), timelines), nil
}

type manifold struct {
	g *grid.Grid[byte]
}

// fall moves a beam down from p until it meets a splitter. exits is true
// when the beam leaves the bottom first.
func (m manifold) fall(p vec.Point) (splitter vec.Point, exits bool) {
	for {
		p = p.Add(vec.Down)
		c, ok := m.g.Get(p)
		if !ok {
			return p, true
		}
		if c == '^' {
			return p, false
		}
	}
}

// sideways returns the in-bounds beam origins beside a splitter.
func (m manifold) sideways(split vec.Point) []vec.Point {
	out := make([]vec.Point, 0, 2)
	for _, q := range []vec.Point{split.Add(vec.Left), split.Add(vec.Right)} {
		if m.g.InBounds(q) {
			out = append(out, q)
		}
	}
	return out
}

func (m manifold) timelines(p vec.Point, cache *memo.Table[vec.Point, int64]) int64 {
	return cache.Do(p, func() int64 {
		split, exits := m.fall(p)
		if exits {
			return 1
		}
		var n int64
		for _, q := range m.sideways(split) {
			n += m.timelines(q, cache)
		}
		return n
	})
}
