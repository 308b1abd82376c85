package grid

import (
	"github.com/katalvlaran/gridsearch/vec"
)

// Region is a maximal 4-connected set of grid points.
type Region[T comparable] struct {
	Value  T // cell value of the region's seed
	points map[vec.Point]struct{}
	order  []vec.Point
}

// Area returns the number of cells in the region.
func (r *Region[T]) Area() int { return len(r.order) }

// Points returns the region's cells in discovery order.
func (r *Region[T]) Points() []vec.Point { return r.order }

// Contains reports whether p belongs to the region.
func (r *Region[T]) Contains(p vec.Point) bool {
	_, ok := r.points[p]
	return ok
}

// Perimeter counts the (point, direction) pairs whose neighbor lies outside
// the region.
func (r *Region[T]) Perimeter() int {
	n := 0
	for _, p := range r.order {
		for _, q := range p.Neighbors4() {
			if !r.Contains(q) {
				n++
			}
		}
	}
	return n
}

// cornerPairs are the four orthogonal direction pairs around a cell.
var cornerPairs = [4][2]vec.Point{
	{vec.Up, vec.Right},
	{vec.Right, vec.Down},
	{vec.Down, vec.Left},
	{vec.Left, vec.Up},
}

// Corners counts convex and concave corners of the region.
//
// For each cell and each direction pair (a, b):
//   - convex:  neither p+a nor p+b is in the region;
//   - concave: both are, but the diagonal p+a+b is not.
//
// A rectilinear polygon has as many sides as corners.
func (r *Region[T]) Corners() int {
	n := 0
	for _, p := range r.order {
		for _, pair := range cornerPairs {
			hasA := r.Contains(p.Add(pair[0]))
			hasB := r.Contains(p.Add(pair[1]))
			switch {
			case !hasA && !hasB:
				n++
			case hasA && hasB && !r.Contains(p.Add(pair[0]).Add(pair[1])):
				n++
			}
		}
	}
	return n
}

// Sides returns the number of straight sides of the region's outline,
// holes included. It equals Corners.
func (r *Region[T]) Sides() int { return r.Corners() }

// Regions partitions every grid point into maximal 4-connected components
// whose adjacent cells satisfy same. Regions are returned in row-major order
// of their first cell.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func Regions[T comparable](g *Grid[T], same func(a, b T) bool) []*Region[T] {
	seen := make([]bool, len(g.cells))
	var out []*Region[T]

	for i0, v0 := range g.cells {
		if seen[i0] {
			continue
		}
		seen[i0] = true
		queue := []int{i0}
		reg := &Region[T]{Value: v0, points: make(map[vec.Point]struct{})}

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			up := g.point(u)
			reg.points[up] = struct{}{}
			reg.order = append(reg.order, up)
			for _, vp := range up.Neighbors4() {
				if !g.InBounds(vp) {
					continue
				}
				vi := g.index(vp)
				if seen[vi] || !same(g.cells[u], g.cells[vi]) {
					continue
				}
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
		out = append(out, reg)
	}
	return out
}

// Equal is the plain same-value predicate for Regions.
func Equal[T comparable](a, b T) bool { return a == b }

// FloodFrom collects every point reachable from start through 4-adjacent
// steps accepted by step(fromValue, toValue). The start point is included.
// Each point is visited once.
func FloodFrom[T comparable](g *Grid[T], start vec.Point, step func(from, to T) bool) []vec.Point {
	if !g.InBounds(start) {
		return nil
	}
	seen := map[vec.Point]bool{start: true}
	queue := []vec.Point{start}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		fv := g.cells[g.index(u)]
		for _, v := range u.Neighbors4() {
			tv, ok := g.Get(v)
			if !ok || seen[v] || !step(fv, tv) {
				continue
			}
			seen[v] = true
			queue = append(queue, v)
		}
	}
	return queue
}
