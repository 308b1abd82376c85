// Package grid models rectangular character (or small-value) grids as
// immutable lookups from vec.Point to a cell value.
//
// Coordinate convention: Point{X: column, Y: row}, row 0 at the top, so
// vec.Up moves toward row 0. Inputs laid out with a flipped Y axis should be
// converted with FlipY at the parsing boundary, never inside a search.
//
// A Grid is treated as read-only once built. Counterfactual edits go
// through WithOverride, which returns a copy and leaves the receiver intact,
// so many "what if" variants may be evaluated concurrently against the same
// base grid.
package grid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridsearch/vec"
)

var (
	// ErrEmptyGrid indicates input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrNotFound indicates a searched-for cell value is absent.
	ErrNotFound = errors.New("grid: value not found")
)

// Grid is a dense, row-major W×H grid of cells.
type Grid[T comparable] struct {
	Width, Height int
	cells         []T
}

// New returns a w×h grid filled with fill.
func New[T comparable](w, h int, fill T) *Grid[T] {
	cells := make([]T, w*h)
	for i := range cells {
		cells[i] = fill
	}
	return &Grid[T]{Width: w, Height: h, cells: cells}
}

// FromRows builds a grid from a non-empty, rectangular 2D slice.
// The input is copied.
func FromRows[T comparable](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	cells := make([]T, 0, w*h)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		cells = append(cells, row...)
	}
	return &Grid[T]{Width: w, Height: h, cells: cells}, nil
}

// Parse reads a character grid. Lines are separated by '\n'; carriage
// returns and trailing blank lines are ignored.
func Parse(text string) (*Grid[byte], error) {
	return ParseFunc(text, func(b byte) (byte, error) { return b, nil })
}

// ParseFunc reads a grid converting each byte with conv.
// The first conversion error aborts parsing.
func ParseFunc[T comparable](text string, conv func(byte) (T, error)) (*Grid[T], error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r", ""), "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(lines[0])
	g := &Grid[T]{Width: w, Height: len(lines), cells: make([]T, 0, w*len(lines))}
	for y, line := range lines {
		if len(line) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(line), w)
		}
		for x := 0; x < w; x++ {
			v, err := conv(line[x])
			if err != nil {
				return nil, fmt.Errorf("grid: cell (%d,%d): %w", x, y, err)
			}
			g.cells = append(g.cells, v)
		}
	}
	return g, nil
}

// Digit converts '0'..'9' to its value. Other bytes are rejected.
func Digit(b byte) (int, error) {
	if b < '0' || b > '9' {
		return 0, fmt.Errorf("not a digit: %q", b)
	}
	return int(b - '0'), nil
}

// InBounds reports whether p lies inside the grid.
func (g *Grid[T]) InBounds(p vec.Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Get returns the cell at p. Out-of-bounds points report ok == false.
func (g *Grid[T]) Get(p vec.Point) (v T, ok bool) {
	if !g.InBounds(p) {
		return v, false
	}
	return g.cells[g.index(p)], true
}

// At returns the cell at p, or the zero value when p is outside the grid.
func (g *Grid[T]) At(p vec.Point) T {
	v, _ := g.Get(p)
	return v
}

// Is reports whether p is inside the grid and holds want.
func (g *Grid[T]) Is(p vec.Point, want T) bool {
	v, ok := g.Get(p)
	return ok && v == want
}

// Set writes v at p. It must only be used on a grid the caller owns
// exclusively; shared grids are edited through WithOverride.
// Out-of-bounds writes are ignored and reported as false.
func (g *Grid[T]) Set(p vec.Point, v T) bool {
	if !g.InBounds(p) {
		return false
	}
	g.cells[g.index(p)] = v
	return true
}

// WithOverride returns a copy of g that differs only at p.
// The receiver is never modified.
func (g *Grid[T]) WithOverride(p vec.Point, v T) *Grid[T] {
	c := g.Clone()
	c.Set(p, v)
	return c
}

// Clone returns a deep copy.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)
	return &Grid[T]{Width: g.Width, Height: g.Height, cells: cells}
}

// Find returns the first point (row-major) holding v.
func (g *Grid[T]) Find(v T) (vec.Point, error) {
	for i, c := range g.cells {
		if c == v {
			return g.point(i), nil
		}
	}
	return vec.Point{}, fmt.Errorf("%w: %v", ErrNotFound, v)
}

// FindAll returns every point holding v in row-major order.
func (g *Grid[T]) FindAll(v T) []vec.Point {
	var out []vec.Point
	for i, c := range g.cells {
		if c == v {
			out = append(out, g.point(i))
		}
	}
	return out
}

// Points returns every point of the grid in row-major order.
func (g *Grid[T]) Points() []vec.Point {
	out := make([]vec.Point, len(g.cells))
	for i := range g.cells {
		out[i] = g.point(i)
	}
	return out
}

// Neighbors4 returns the orthogonal neighbors of p. They are not filtered
// by grid membership; callers filter with Get.
func Neighbors4(p vec.Point) [4]vec.Point { return p.Neighbors4() }

// Neighbors8 returns all eight neighbors of p, unfiltered.
func Neighbors8(p vec.Point) [8]vec.Point { return p.Neighbors8() }

// FlipY converts a row index from a bottom-up layout: row 0 of the text
// becomes y = height-1.
func FlipY(p vec.Point, height int) vec.Point {
	return vec.Point{X: p.X, Y: height - 1 - p.Y}
}

// String renders a byte grid back to text, one row per line.
func String(g *Grid[byte]) string {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		sb.Write(g.cells[y*g.Width : (y+1)*g.Width])
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (g *Grid[T]) index(p vec.Point) int { return p.Y*g.Width + p.X }

func (g *Grid[T]) point(i int) vec.Point { return vec.Point{X: i % g.Width, Y: i / g.Width} }
