package y2024

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridsearch/bfs"
	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/puzzle"
	"github.com/katalvlaran/gridsearch/vec"
)

func init() {
	puzzle.Register(2024, 15, "Warehouse Woes", puzzle.Func(WarehouseWoes))
}

var (
	moveDirs = map[rune]vec.Point{'^': vec.Up, 'v': vec.Down, '<': vec.Left, '>': vec.Right}
	widen    = strings.NewReplacer("#", "##", "O", "[]", ".", "..", "@", "@.")
)

// WarehouseWoes replays the robot's moves through the warehouse and sums
// the GPS coordinates (100*row + column) of every box, first on the map as
// given, then on the map twice as wide where a box spans two cells.
func WarehouseWoes(input string) (puzzle.Answer, error) {
	blocks := puzzle.Blocks(input)
	if len(blocks) != 2 {
		return puzzle.Answer{}, fmt.Errorf("%w: want a map and moves separated by a blank line", ErrBadInput)
	}
	var moves []vec.Point
	for _, c := range blocks[1] {
		if c == '\n' {
			continue
		}
		d, ok := moveDirs[c]
		if !ok {
			return puzzle.Answer{}, fmt.Errorf("%w: move %q", ErrBadInput, c)
		}
		moves = append(moves, d)
	}

	narrow, err := warehouseGPS(blocks[0], moves)
	if err != nil {
		return puzzle.Answer{}, err
	}
	wide, err := warehouseGPS(widen.Replace(blocks[0]), moves)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.NewAnswer(narrow, wide), nil
}

func warehouseGPS(layout string, moves []vec.Point) (int, error) {
	g, err := grid.Parse(layout)
	if err != nil {
		return 0, err
	}
	bot, err := g.Find('@')
	if err != nil {
		return 0, fmt.Errorf("robot: %w", err)
	}

	for _, dir := range moves {
		pushed, ok, err := push(g, bot, dir)
		if err != nil {
			return 0, err
		}
		if !ok {
			continue
		}
		cells := make([]byte, len(pushed))
		for i, p := range pushed {
			cells[i] = g.At(p)
			g.Set(p, '.')
		}
		for i, p := range pushed {
			g.Set(p.Add(dir), cells[i])
		}
		bot = bot.Add(dir)
	}

	sum := 0
	for _, p := range g.Points() {
		if c := g.At(p); c == 'O' || c == '[' {
			sum += 100*p.Y + p.X
		}
	}
	return sum, nil
}

// push collects every cell that moves when the robot at bot steps in dir,
// starting with bot. ok is false when any of them would hit a wall. A wide box pushed
// vertically drags its other half along.
func push(g *grid.Grid[byte], bot, dir vec.Point) (cells []vec.Point, ok bool, err error) {
	blocked := false
	next := func(p vec.Point) []vec.Point {
		q := p.Add(dir)
		c, _ := g.Get(q)
		switch {
		case c == '.':
			return nil
		case c == 'O':
			return []vec.Point{q}
		case c == '[' && dir.Y != 0:
			return []vec.Point{q, q.Add(vec.Right)}
		case c == ']' && dir.Y != 0:
			return []vec.Point{q, q.Add(vec.Left)}
		case c == '[' || c == ']':
			return []vec.Point{q}
		}
		blocked = true
		return nil
	}
	res, err := bfs.BFS(bot, next)
	if err != nil || blocked {
		return nil, false, err
	}
	return res.Order, true, nil
}
