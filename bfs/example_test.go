package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/gridsearch/bfs"
	"github.com/katalvlaran/gridsearch/vec"
)

// ExampleBFS_gridTraversal demonstrates BFS layering on an open 3×3 grid.
// Neighbors are produced in Up, Right, Down, Left order.
func ExampleBFS_gridTraversal() {
	next := func(p vec.Point) []vec.Point {
		var out []vec.Point
		for _, q := range p.Neighbors4() {
			if q.X >= 0 && q.X < 3 && q.Y >= 0 && q.Y < 3 {
				out = append(out, q)
			}
		}
		return out
	}

	res, err := bfs.BFS(vec.Point{X: 0, Y: 0}, next)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	fmt.Println(res.Depth[vec.Point{X: 2, Y: 2}])
	// Output:
	// [(0,0) (1,0) (0,1) (2,0) (1,1) (0,2) (2,1) (1,2) (2,2)]
	// 4
}
