package y2024_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/puzzle"
	"github.com/katalvlaran/gridsearch/y2024"
)

// settings is a map-backed puzzle.Settings.
type settings map[string]int

func (s settings) IsSet(k string) bool {
	_, ok := s[k]
	return ok
}

func (s settings) GetInt(k string) int { return s[k] }

func solve(t *testing.T, s puzzle.Solver, input string) puzzle.Answer {
	t.Helper()
	ans, err := s.Solve(input)
	require.NoError(t, err)
	return ans
}

func TestRegistered(t *testing.T) {
	for _, day := range []int{6, 8, 10, 11, 12, 14, 15, 16, 17, 18} {
		e, err := puzzle.Lookup(2024, day)
		require.NoError(t, err, "day %d", day)
		assert.NotEmpty(t, e.Name)
	}
}

const guardMap = `....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...
`

func TestGuardGallivant(t *testing.T) {
	for _, workers := range []int{1, 4} {
		s := puzzle.Configure(y2024.GuardGallivant{}, settings{"workers": workers})
		assert.Equal(t, puzzle.Answer{Part1: "41", Part2: "6"}, solve(t, s, guardMap))
	}
}

func TestHoofIt(t *testing.T) {
	const topo = `89010123
78121874
87430965
96549874
45678903
32019012
01329801
10456732`
	assert.Equal(t, puzzle.Answer{Part1: "36", Part2: "81"}, solve(t, puzzle.Func(y2024.HoofIt), topo))
}

func TestPlutonianPebbles(t *testing.T) {
	ans := solve(t, puzzle.Func(y2024.PlutonianPebbles), "125 17\n")
	assert.Equal(t, "55312", ans.Part1)
	assert.NotEmpty(t, ans.Part2)
}

func TestGardenGroups(t *testing.T) {
	cases := []struct {
		name, in string
		want     puzzle.Answer
	}{
		{"small", "AAAA\nBBCD\nBBCC\nEEEC\n", puzzle.Answer{Part1: "140", Part2: "80"}},
		{"holes", "OOOOO\nOXOXO\nOOOOO\nOXOXO\nOOOOO\n", puzzle.Answer{Part1: "772", Part2: "436"}},
		{"large", `RRRRIICCFF
RRRRIICCCF
VVRRRCCFFF
VVRCCCJFFF
VVVVCJJCFE
VVIVCCJJEE
VVIIICJJEE
MIIIIIJJEE
MIIISIJEEE
MMMISSJEEE
`, puzzle.Answer{Part1: "1930", Part2: "1206"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, solve(t, puzzle.Func(y2024.GardenGroups), c.in))
		})
	}
}

func TestReindeerMaze(t *testing.T) {
	const first = `###############
#.......#....E#
#.#.###.#.###.#
#.....#.#...#.#
#.###.#####.#.#
#.#.#.......#.#
#.#.#####.###.#
#...........#.#
###.#.#####.#.#
#...#.....#.#.#
#.#.#.###.#.#.#
#.....#...#.#.#
#.###.#.#.#.#.#
#S..#.....#...#
###############
`
	const second = `#################
#...#...#...#..E#
#.#.#.#.#.#.#.#.#
#.#.#.#...#...#.#
#.#.#.#.###.#.#.#
#...#.#.#.....#.#
#.#.#.#.#.#####.#
#.#...#.#.#.....#
#.#.#####.#.###.#
#.#.#.......#...#
#.#.###.#####.###
#.#.#...#.....#.#
#.#.#.#####.###.#
#.#.#.........#.#
#.#.#.#########.#
#S#.............#
#################
`
	s := puzzle.Func(y2024.ReindeerMaze)
	assert.Equal(t, puzzle.Answer{Part1: "7036", Part2: "45"}, solve(t, s, first))
	assert.Equal(t, puzzle.Answer{Part1: "11048", Part2: "64"}, solve(t, s, second))

	_, err := s.Solve("#####\n#S#E#\n#####\n")
	assert.ErrorIs(t, err, y2024.ErrNoRoute)
}

func TestChronospatialComputer(t *testing.T) {
	const in = `Register A: 2024
Register B: 0
Register C: 0

Program: 0,3,5,4,3,0
`
	ans := solve(t, puzzle.Func(y2024.ChronospatialComputer), in)
	assert.Equal(t, puzzle.Answer{Part1: "5,7,3,0", Part2: "117440"}, ans)
}

// TestChronospatialComputer_NoQuine keeps part one when no register value
// makes the program print itself.
func TestChronospatialComputer_NoQuine(t *testing.T) {
	const in = `Register A: 729
Register B: 0
Register C: 0

Program: 0,1,5,4,3,0
`
	ans := solve(t, puzzle.Func(y2024.ChronospatialComputer), in)
	assert.Equal(t, puzzle.Answer{Part1: "4,6,3,5,6,3,5,2,1,0", Part2: puzzle.NotFound}, ans)
}

const bytesFalling = `5,4
4,2
4,5
3,0
2,1
6,3
2,4
1,5
0,6
3,3
2,6
5,1
1,2
5,5
2,5
6,5
1,4
0,4
6,4
1,1
6,1
1,0
0,5
1,6
2,0
`

func TestRAMRun(t *testing.T) {
	s := puzzle.Configure(y2024.RAMRun{Size: 71, Bytes: 1024}, settings{"ram.size": 7, "ram.bytes": 12})
	assert.Equal(t, puzzle.Answer{Part1: "22", Part2: "6,1"}, solve(t, s, bytesFalling))

	_, err := y2024.RAMRun{Size: 7, Bytes: 12}.Solve("6,0\n")
	assert.ErrorIs(t, err, y2024.ErrNeverBlocked)
}

func TestRAMRun_ByteOnStart(t *testing.T) {
	ans := solve(t, y2024.RAMRun{Size: 3, Bytes: 0}, "0,0\n")
	assert.Equal(t, puzzle.Answer{Part1: "4", Part2: "0,0"}, ans)

	_, err := y2024.RAMRun{Size: 3, Bytes: 1}.Solve("0,0\n")
	assert.ErrorIs(t, err, y2024.ErrNoRoute)
}

func TestResonantCollinearity(t *testing.T) {
	const in = `............
........0...
.....0......
.......0....
....0.......
......A.....
............
............
........A...
.........A..
............
............
`
	ans := solve(t, puzzle.Func(y2024.ResonantCollinearity), in)
	assert.Equal(t, puzzle.Answer{Part1: "14", Part2: "34"}, ans)

	// A lone antenna has no partner, so no antinodes.
	ans = solve(t, puzzle.Func(y2024.ResonantCollinearity), "...\n.a.\n...\n")
	assert.Equal(t, puzzle.Answer{Part1: "0", Part2: "0"}, ans)
}

const robots = `p=0,4 v=3,-3
p=6,3 v=-1,-3
p=10,3 v=-1,2
p=2,0 v=2,-1
p=0,0 v=1,3
p=3,0 v=-2,-2
p=7,6 v=-1,-3
p=3,0 v=-1,-2
p=9,3 v=2,3
p=7,3 v=-1,2
p=2,4 v=2,-3
p=9,5 v=-3,-3
`

func TestRestroomRedoubt(t *testing.T) {
	s := puzzle.Configure(y2024.RestroomRedoubt{Width: 101, Height: 103}, settings{"robots.width": 11, "robots.height": 7})
	// The room is narrower than the picture's run, so part two never fires.
	assert.Equal(t, puzzle.Answer{Part1: "12", Part2: puzzle.NotFound}, solve(t, s, robots))
}

// TestRestroomRedoubt_Picture lines up odd robots with the still even ones
// after three seconds.
func TestRestroomRedoubt_Picture(t *testing.T) {
	var in string
	for x := 0; x < 17; x++ {
		if x%2 == 0 {
			in += fmt.Sprintf("p=%d,0 v=0,0\n", x)
		} else {
			in += fmt.Sprintf("p=%d,2 v=0,1\n", x)
		}
	}
	ans := solve(t, y2024.RestroomRedoubt{Width: 20, Height: 5}, in)
	assert.Equal(t, puzzle.Answer{Part1: "0", Part2: "3"}, ans)

	_, err := y2024.RestroomRedoubt{Width: 0, Height: 5}.Solve(in)
	assert.ErrorIs(t, err, y2024.ErrBadInput)

	_, err = y2024.RestroomRedoubt{Width: 20, Height: 5}.Solve("p=1,2 v=3\n")
	assert.ErrorIs(t, err, y2024.ErrBadInput)
}

const warehouse = `##########
#..O..O.O#
#......O.#
#.OO..O.O#
#..O@..O.#
#O#..O...#
#O..O..O.#
#.OO.O.OO#
#....O...#
##########

<vv>^<v^>v>^vv^v>v<>v^v<v<^vv<<<^><<><>>v<vvv<>^v^>^<<<><<v<<<v^vv^v>^
vvv<<^>^v^^><<>>><>^<<><^vv^^<>vvv<>><^^v>^>vv<>v<<<<v<^v>^<^^>>>^<v<v
><>vv>v^v^<>><>>>><^^>vv>v<^^^>>v^v^<^^>v^^>v^<^v>v<>>v^v^<v>v^^<^^vv<
<<v<^>>^^^^>>>v^<>vvv^><v<<<>^^^vv^<vvv>^>v<^^^^v<>^>vvvv><>>v^<<^^^^^
^><^><>>><>^^<<^^v>>><^<v>^<vv>>v>>>^v><>^v><<<<v>>v<v<v>vvv>^<><<>^><
^>><>^v<><^vvv<^^<><v<<<<<><^v<<<><<<^^<v<^^^><^>>^<v^><<<^>>^v<v^v<v^
>^>>^v>vv>^<<^v<>><<><<v<<v><>v<^vv<<<>^^v^>^^>>><<^v>>v^v><^^>>^<>vv^
<><^^>^^^<><vvvvv^v<v<<>^v<v>v<<^><<><<><<<^^<<<^<<>><<><^^^>^^<>^>v<>
^^>vv<^v^v<vv>^<><v<^v>^^^>>>^^vvv^>vvv<>>>^<^>>>>>^<<^v>^vvv<>^<><<v>
v^^>>><<^^<>>^v^<v^vv<>v^<<>^<^v^v><^<<<><<^<v><v<>vv>>v><v^<vv<>v^<<^
`

func TestWarehouseWoes(t *testing.T) {
	ans := solve(t, puzzle.Func(y2024.WarehouseWoes), warehouse)
	assert.Equal(t, puzzle.Answer{Part1: "10092", Part2: "9021"}, ans)

	const small = `########
#..O.O.#
##@.O..#
#...O..#
#.#.O..#
#...O..#
#......#
########

<^^>>>vv<v>>v<<
`
	ans = solve(t, puzzle.Func(y2024.WarehouseWoes), small)
	assert.Equal(t, puzzle.Answer{Part1: "2028", Part2: "1751"}, ans)

	_, err := y2024.WarehouseWoes("#@#\n\n<x\n")
	assert.ErrorIs(t, err, y2024.ErrBadInput)
}
