package y2024

import (
	"fmt"

	"github.com/katalvlaran/gridsearch/dijkstra"
	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/puzzle"
	"github.com/katalvlaran/gridsearch/vec"
)

func init() {
	puzzle.Register(2024, 16, "Reindeer Maze", puzzle.Func(ReindeerMaze))
}

// Move and turn costs in the reindeer maze.
const (
	stepCost int64 = 1
	turnCost int64 = 1000
)

// reindeer is a maze state.
type reindeer struct {
	pos, dir vec.Point
}

// ReindeerMaze finds the cheapest route from S (facing east) to E and counts
// the tiles lying on any cheapest route.
//
// Costs are computed once, backward from every facing at E. The forward
// walk then keeps only transitions that spend exactly the remaining cost.
func ReindeerMaze(input string) (puzzle.Answer, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	start, err := g.Find('S')
	if err != nil {
		return puzzle.Answer{}, fmt.Errorf("maze start: %w", err)
	}
	end, err := g.Find('E')
	if err != nil {
		return puzzle.Answer{}, fmt.Errorf("maze end: %w", err)
	}

	open := func(p vec.Point) bool {
		c, ok := g.Get(p)
		return ok && c != '#'
	}
	turns := func(r reindeer) []dijkstra.Edge[reindeer] {
		return []dijkstra.Edge[reindeer]{
			{To: reindeer{r.pos, r.dir.Rotate90()}, Cost: turnCost},
			{To: reindeer{r.pos, r.dir.Rotate270()}, Cost: turnCost},
		}
	}
	forward := func(r reindeer) []dijkstra.Edge[reindeer] {
		edges := turns(r)
		if ahead := r.pos.Add(r.dir); open(ahead) {
			edges = append(edges, dijkstra.Edge[reindeer]{To: reindeer{ahead, r.dir}, Cost: stepCost})
		}
		return edges
	}
	backward := func(r reindeer) []dijkstra.Edge[reindeer] {
		edges := turns(r)
		if behind := r.pos.Sub(r.dir); open(behind) {
			edges = append(edges, dijkstra.Edge[reindeer]{To: reindeer{behind, r.dir}, Cost: stepCost})
		}
		return edges
	}

	goals := make([]reindeer, 0, len(vec.Dirs4))
	for _, d := range vec.Dirs4 {
		goals = append(goals, reindeer{end, d})
	}
	remaining, err := dijkstra.Dijkstra(goals, backward)
	if err != nil {
		return puzzle.Answer{}, err
	}

	east := reindeer{pos: start, dir: vec.Right}
	best, ok := remaining.Cost(east)
	if !ok {
		return puzzle.Answer{}, ErrNoRoute
	}
	states, err := dijkstra.OptimalStates(east, forward, remaining.Dist)
	if err != nil {
		return puzzle.Answer{}, err
	}
	tiles := dijkstra.Distinct(states, func(r reindeer) vec.Point { return r.pos })
	return puzzle.NewAnswer(best, len(tiles)), nil
}
