package geom

import (
	"iter"

	"deedles.dev/xmath"
)

// Point is a position on an integer grid.
type Point[T xmath.Signed] struct {
	X, Y T
}

// Pt is shorthand for Point[T]{X: x, Y: y}.
func Pt[T xmath.Signed](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

// Clockwise returns p rotated by 90 degrees clockwise around the
// origin.
func (p Point[T]) Clockwise() Point[T] {
	return Point[T]{X: p.Y, Y: -p.X}
}

// CounterClockwise returns p rotated by 90 degrees counter-clockwise
// around the origin.
func (p Point[T]) CounterClockwise() Point[T] {
	return Point[T]{X: -p.Y, Y: p.X}
}

// Opposed returns p rotated by 180 degrees around the origin.
func (p Point[T]) Opposed() Point[T] {
	return Point[T]{X: -p.X, Y: -p.Y}
}

// Adjacent returns an iterator over the four points that share an
// edge with p, in the order up, right, down, left, where up is
// towards positive Y.
func (p Point[T]) Adjacent() iter.Seq[Point[T]] {
	return func(yield func(Point[T]) bool) {
		for _, d := range [...]Point[T]{{0, 1}, {1, 0}, {0, -1}, {-1, 0}} {
			if !yield(p.Add(d)) {
				return
			}
		}
	}
}

// Neighbors is the same as [Point.Adjacent] but returns the points in
// an array.
func (p Point[T]) Neighbors() (n [4]Point[T]) {
	insertFromSeq(n[:], p.Adjacent())
	return n
}

// Wrap wraps each component of p into the half-open range between
// the matching components of lo and hi as [xmath.WrapInt] does. This
// makes the grid behave like the surface of a torus.
func (p Point[T]) Wrap(lo, hi Point[T]) Point[T] {
	return Point[T]{
		X: xmath.WrapInt(p.X, lo.X, hi.X),
		Y: xmath.WrapInt(p.Y, lo.Y, hi.Y),
	}
}
