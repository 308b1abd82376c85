package y2024

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/parallel"
	"github.com/katalvlaran/gridsearch/puzzle"
	"github.com/katalvlaran/gridsearch/vec"
)

func init() {
	puzzle.Register(2024, 6, "Guard Gallivant", GuardGallivant{})
}

// GuardGallivant follows a guard who walks forward and turns right at
// obstacles. Part two counts the single extra obstacles that trap the guard
// in a loop; candidates are evaluated in parallel, each on its own copy of
// the map.
type GuardGallivant struct {
	// Workers bounds the loop search; <= 0 uses GOMAXPROCS.
	Workers int
}

// WithSettings reads "workers".
func (d GuardGallivant) WithSettings(s puzzle.Settings) puzzle.Solver {
	d.Workers = puzzle.IntSetting(s, "workers", d.Workers)
	return d
}

// Solve implements puzzle.Solver.
func (d GuardGallivant) Solve(input string) (puzzle.Answer, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	start, err := g.Find('^')
	if err != nil {
		return puzzle.Answer{}, fmt.Errorf("guard start: %w", err)
	}

	path, _ := patrol(g, start)
	candidates := make([]vec.Point, 0, len(path))
	for _, p := range path {
		if p != start {
			candidates = append(candidates, p)
		}
	}
	loops, err := parallel.Count(context.Background(), candidates, d.Workers, func(p vec.Point) bool {
		_, loop := patrol(g.WithOverride(p, '#'), start)
		return loop
	})
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.NewAnswer(len(path), loops), nil
}

// guard is a patrol state.
type guard struct {
	pos, dir vec.Point
}

// patrol walks from start facing up until the guard leaves the map or
// repeats a state. path lists distinct positions in first-visit order.
func patrol(g *grid.Grid[byte], start vec.Point) (path []vec.Point, loop bool) {
	seen := make(map[guard]bool)
	onPath := make(map[vec.Point]bool)
	cur := guard{pos: start, dir: vec.Up}
	for g.InBounds(cur.pos) {
		if seen[cur] {
			return path, true
		}
		seen[cur] = true
		if !onPath[cur.pos] {
			onPath[cur.pos] = true
			path = append(path, cur.pos)
		}
		ahead := cur.pos.Add(cur.dir)
		if g.Is(ahead, '#') {
			cur.dir = cur.dir.Rotate90()
			continue
		}
		cur.pos = ahead
	}
	return path, false
}
