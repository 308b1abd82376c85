package vec

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Vec3 is an immutable three-component integer vector.
type Vec3[T constraints.Signed] struct {
	X, Y, Z T
}

// Point3 is the default 3D coordinate.
type Point3 = Vec3[int]

func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3[T]) Scale(k T) Vec3[T]     { return Vec3[T]{v.X * k, v.Y * k, v.Z * k} }
func (v Vec3[T]) Abs() Vec3[T]          { return Vec3[T]{abs(v.X), abs(v.Y), abs(v.Z)} }

// Manhattan returns |dx| + |dy| + |dz|.
func (v Vec3[T]) Manhattan(o Vec3[T]) T {
	return abs(v.X-o.X) + abs(v.Y-o.Y) + abs(v.Z-o.Z)
}

// DistSq returns the squared Euclidean distance widened to int64,
// since squared coordinates overflow 32-bit inputs quickly.
func (v Vec3[T]) DistSq(o Vec3[T]) int64 {
	dx, dy, dz := int64(v.X-o.X), int64(v.Y-o.Y), int64(v.Z-o.Z)
	return dx*dx + dy*dy + dz*dz
}

// Compare orders vectors lexicographically by X, Y, then Z.
func (v Vec3[T]) Compare(o Vec3[T]) int {
	if c := (Vec2[T]{v.X, v.Y}).Compare(Vec2[T]{o.X, o.Y}); c != 0 {
		return c
	}
	switch {
	case v.Z < o.Z:
		return -1
	case v.Z > o.Z:
		return 1
	}
	return 0
}

func (v Vec3[T]) String() string { return fmt.Sprintf("(%d,%d,%d)", v.X, v.Y, v.Z) }
