// Package vec provides small integer vector types for spatial puzzles.
//
// Vec2 and Vec3 are value types: every operation returns a new vector and
// never mutates its receiver, so vectors are safe to use as map keys and to
// share between goroutines.
//
// Coordinate convention:
//
//	The named directions (Up, Down, Left, Right) follow screen coordinates,
//	where X grows to the right and Y grows downward. Puzzles whose input is
//	laid out with a flipped Y axis convert at the parsing boundary.
//
// Rotation:
//
//	Rotate90 maps (x, y) to (-y, x). Under screen coordinates that turns
//	Up into Right, i.e. a clockwise quarter turn as seen on the page.
//
// Division and modulo by a zero component are not guarded; callers must
// check divisors themselves.
package vec

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ErrBadRotation is returned by Rotate for angles that are not a multiple of 90°.
var ErrBadRotation = errors.New("vec: rotation must be a multiple of 90 degrees")

// Vec2 is an immutable two-component integer vector.
type Vec2[T constraints.Signed] struct {
	X, Y T
}

// Point is the default grid coordinate.
type Point = Vec2[int]

// Point32 and Point64 are fixed-width variants for puzzles with large coordinates.
type (
	Point32 = Vec2[int32]
	Point64 = Vec2[int64]
)

// Named unit vectors in screen coordinates.
var (
	Zero  = Point{0, 0}
	One   = Point{1, 1}
	Up    = Point{0, -1}
	Down  = Point{0, 1}
	Left  = Point{-1, 0}
	Right = Point{1, 0}
)

// Dirs4 lists the orthogonal directions clockwise starting at Up.
var Dirs4 = [4]Point{Up, Right, Down, Left}

// Dirs8 lists all eight neighbor offsets clockwise starting at Up.
var Dirs8 = [8]Point{
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// New2 builds a Vec2 from its components.
func New2[T constraints.Signed](x, y T) Vec2[T] { return Vec2[T]{X: x, Y: y} }

func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X + o.X, v.Y + o.Y} }
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X - o.X, v.Y - o.Y} }

// Mul multiplies component-wise.
func (v Vec2[T]) Mul(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X * o.X, v.Y * o.Y} }

// Div divides component-wise, truncating toward zero.
func (v Vec2[T]) Div(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X / o.X, v.Y / o.Y} }

// Mod returns the component-wise Euclidean remainder, always in [0, |o|).
func (v Vec2[T]) Mod(o Vec2[T]) Vec2[T] { return Vec2[T]{emod(v.X, o.X), emod(v.Y, o.Y)} }

func (v Vec2[T]) Scale(k T) Vec2[T]     { return Vec2[T]{v.X * k, v.Y * k} }
func (v Vec2[T]) DivScalar(k T) Vec2[T] { return Vec2[T]{v.X / k, v.Y / k} }
func (v Vec2[T]) Neg() Vec2[T]          { return Vec2[T]{-v.X, -v.Y} }
func (v Vec2[T]) Abs() Vec2[T]          { return Vec2[T]{abs(v.X), abs(v.Y)} }

// Rotate90 turns v by +90°: (x, y) -> (-y, x).
func (v Vec2[T]) Rotate90() Vec2[T] { return Vec2[T]{-v.Y, v.X} }

// Rotate180 turns v by 180°.
func (v Vec2[T]) Rotate180() Vec2[T] { return Vec2[T]{-v.X, -v.Y} }

// Rotate270 turns v by +270°, the inverse of Rotate90.
func (v Vec2[T]) Rotate270() Vec2[T] { return Vec2[T]{v.Y, -v.X} }

// Rotate turns v by any multiple of 90 degrees, negative angles included.
func (v Vec2[T]) Rotate(degrees int) (Vec2[T], error) {
	if degrees%90 != 0 {
		return v, fmt.Errorf("%w: got %d", ErrBadRotation, degrees)
	}
	switch ((degrees/90)%4 + 4) % 4 {
	case 1:
		return v.Rotate90(), nil
	case 2:
		return v.Rotate180(), nil
	case 3:
		return v.Rotate270(), nil
	default:
		return v, nil
	}
}

// Manhattan returns |dx| + |dy|.
func (v Vec2[T]) Manhattan(o Vec2[T]) T { return abs(v.X-o.X) + abs(v.Y-o.Y) }

// DistSq returns the squared Euclidean distance.
func (v Vec2[T]) DistSq(o Vec2[T]) T {
	dx, dy := v.X-o.X, v.Y-o.Y
	return dx*dx + dy*dy
}

// Compare orders vectors lexicographically by X, then Y.
// It returns -1, 0 or +1.
func (v Vec2[T]) Compare(o Vec2[T]) int {
	switch {
	case v.X < o.X:
		return -1
	case v.X > o.X:
		return 1
	case v.Y < o.Y:
		return -1
	case v.Y > o.Y:
		return 1
	}
	return 0
}

func (v Vec2[T]) Less(o Vec2[T]) bool { return v.Compare(o) < 0 }

func (v Vec2[T]) String() string { return fmt.Sprintf("(%d,%d)", v.X, v.Y) }

// Neighbors4 returns the four orthogonal neighbors of v in Dirs4 order.
func (v Vec2[T]) Neighbors4() [4]Vec2[T] {
	return [4]Vec2[T]{
		{v.X, v.Y - 1}, {v.X + 1, v.Y}, {v.X, v.Y + 1}, {v.X - 1, v.Y},
	}
}

// Neighbors8 returns all eight neighbors of v in Dirs8 order.
func (v Vec2[T]) Neighbors8() [8]Vec2[T] {
	var out [8]Vec2[T]
	for i, d := range Dirs8 {
		out[i] = Vec2[T]{v.X + T(d.X), v.Y + T(d.Y)}
	}
	return out
}

func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func emod[T constraints.Signed](a, m T) T {
	r := a % m
	if r < 0 {
		r += abs(m)
	}
	return r
}
