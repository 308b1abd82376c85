package y2024

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/puzzle"
	"github.com/katalvlaran/gridsearch/vec"
)

func init() {
	puzzle.Register(2024, 14, "Restroom Redoubt", RestroomRedoubt{Width: 101, Height: 103})
}

const (
	// safetySeconds is the time after which part one scores the quadrants.
	safetySeconds = 100
	// treeRun is the horizontal run of robots that marks the picture.
	treeRun = 17
)

// RestroomRedoubt moves robots across a room whose edges wrap around.
// Part one multiplies the robot counts of the four quadrants after 100
// seconds, ignoring robots on the middle row or column. Part two is the
// first second at which some row holds treeRun robots side by side, or
// puzzle.NotFound if no such second exists within one full period.
type RestroomRedoubt struct {
	Width, Height int
}

// WithSettings reads "robots.width" and "robots.height".
func (d RestroomRedoubt) WithSettings(s puzzle.Settings) puzzle.Solver {
	d.Width = puzzle.IntSetting(s, "robots.width", d.Width)
	d.Height = puzzle.IntSetting(s, "robots.height", d.Height)
	return d
}

type robot struct {
	pos, vel vec.Point32
}

// Solve implements puzzle.Solver.
func (d RestroomRedoubt) Solve(input string) (puzzle.Answer, error) {
	if d.Width <= 0 || d.Height <= 0 || d.Width > math.MaxInt16 || d.Height > math.MaxInt16 {
		return puzzle.Answer{}, fmt.Errorf("%w: room %dx%d", ErrBadInput, d.Width, d.Height)
	}
	room := vec.Point32{X: int32(d.Width), Y: int32(d.Height)}

	var robots []robot
	for i, line := range puzzle.Lines(input) {
		n, err := puzzle.Ints(line)
		if err != nil || len(n) != 4 {
			return puzzle.Answer{}, fmt.Errorf("%w: line %d: want p=x,y v=x,y: %q", ErrBadInput, i+1, line)
		}
		for _, v := range n {
			if v < math.MinInt32 || v > math.MaxInt32 {
				return puzzle.Answer{}, fmt.Errorf("%w: line %d: %d out of range", ErrBadInput, i+1, v)
			}
		}
		robots = append(robots, robot{
			pos: vec.Point32{X: int32(n[0]), Y: int32(n[1])}.Mod(room),
			vel: vec.Point32{X: int32(n[2]), Y: int32(n[3])}.Mod(room),
		})
	}

	state := append([]robot(nil), robots...)
	for s := 0; s < safetySeconds; s++ {
		tick(state, room)
	}
	safety := quadrantProduct(state, room)

	tree := puzzle.NotFound
	state = append(state[:0], robots...)
	for s := 1; s <= d.Width*d.Height; s++ {
		tick(state, room)
		if hasRun(state, d.Width, d.Height) {
			tree = fmt.Sprint(s)
			break
		}
	}
	return puzzle.Answer{Part1: fmt.Sprint(safety), Part2: tree}, nil
}

// tick advances every robot by one second. Positions and velocities are
// kept in [0, room), so the sum never leaves int32.
func tick(robots []robot, room vec.Point32) {
	for i := range robots {
		robots[i].pos = robots[i].pos.Add(robots[i].vel).Mod(room)
	}
}

func quadrantProduct(robots []robot, room vec.Point32) int {
	mid := vec.Point32{X: room.X / 2, Y: room.Y / 2}
	var quadrants [4]int
	for _, r := range robots {
		if r.pos.X == mid.X || r.pos.Y == mid.Y {
			continue
		}
		q := 0
		if r.pos.X > mid.X {
			q++
		}
		if r.pos.Y > mid.Y {
			q += 2
		}
		quadrants[q]++
	}
	return quadrants[0] * quadrants[1] * quadrants[2] * quadrants[3]
}

// hasRun reports whether some row holds treeRun occupied cells in a row.
func hasRun(robots []robot, w, h int) bool {
	floor := grid.New(w, h, false)
	for _, r := range robots {
		floor.Set(vec.Point{X: int(r.pos.X), Y: int(r.pos.Y)}, true)
	}
	for y := 0; y < h; y++ {
		run := 0
		for x := 0; x < w; x++ {
			if !floor.At(vec.Point{X: x, Y: y}) {
				run = 0
				continue
			}
			run++
			if run >= treeRun {
				return true
			}
		}
	}
	return false
}
