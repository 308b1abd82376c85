package y2024

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/gridsearch/bfs"
	"github.com/katalvlaran/gridsearch/puzzle"
	"github.com/katalvlaran/gridsearch/vec"
)

func init() {
	puzzle.Register(2024, 18, "RAM Run", RAMRun{Size: 71, Bytes: 1024})
}

// RAMRun walks a square memory space from the top-left to the bottom-right
// corner while bytes fall into it. Part one is the shortest path after the
// first Bytes have fallen; part two is the first byte that cuts the exit
// off.
type RAMRun struct {
	// Size is the side length of the memory space.
	Size int
	// Bytes is how many bytes have fallen for part one.
	Bytes int
}

// WithSettings reads "ram.size" and "ram.bytes".
func (d RAMRun) WithSettings(s puzzle.Settings) puzzle.Solver {
	d.Size = puzzle.IntSetting(s, "ram.size", d.Size)
	d.Bytes = puzzle.IntSetting(s, "ram.bytes", d.Bytes)
	return d
}

// Solve implements puzzle.Solver.
func (d RAMRun) Solve(input string) (puzzle.Answer, error) {
	var falling []vec.Point
	for i, line := range puzzle.Lines(input) {
		xy, err := puzzle.Ints(line)
		if err != nil || len(xy) != 2 {
			return puzzle.Answer{}, fmt.Errorf("line %d: want x,y: %q", i+1, line)
		}
		falling = append(falling, vec.Point{X: int(xy[0]), Y: int(xy[1])})
	}

	steps, ok := d.escape(falling[:max(0, min(d.Bytes, len(falling)))])
	if !ok {
		return puzzle.Answer{}, fmt.Errorf("%w after %d bytes", ErrNoRoute, d.Bytes)
	}

	// Reachability is monotone in the number of fallen bytes.
	cut := sort.Search(len(falling), func(i int) bool {
		_, ok := d.escape(falling[:i+1])
		return !ok
	})
	if cut == len(falling) {
		return puzzle.Answer{}, ErrNeverBlocked
	}
	b := falling[cut]
	return puzzle.Answer{Part1: fmt.Sprint(steps), Part2: fmt.Sprintf("%d,%d", b.X, b.Y)}, nil
}

// escape returns the number of steps from (0,0) to the far corner.
func (d RAMRun) escape(fallen []vec.Point) (int, bool) {
	corrupted := make(map[vec.Point]bool, len(fallen))
	for _, p := range fallen {
		corrupted[p] = true
	}
	if corrupted[vec.Zero] {
		return 0, false
	}
	exit := vec.Point{X: d.Size - 1, Y: d.Size - 1}
	next := func(p vec.Point) []vec.Point {
		out := make([]vec.Point, 0, 4)
		for _, q := range p.Neighbors4() {
			if q.X >= 0 && q.Y >= 0 && q.X < d.Size && q.Y < d.Size && !corrupted[q] {
				out = append(out, q)
			}
		}
		return out
	}
	return bfs.ShortestPath(vec.Zero, next, func(p vec.Point) bool { return p == exit })
}
