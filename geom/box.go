package geom

import (
	"iter"

	"deedles.dev/xmath"
)

// Box is an axis-aligned box in 3D space. Min is never greater than
// Max on any axis for a box returned from this package.
type Box[T xmath.Float] struct {
	Min, Max Vec3[T]
}

// BoxOf returns the smallest box containing both a and b.
func BoxOf[T xmath.Float](a, b Vec3[T]) Box[T] {
	return Box[T]{Min: a.Min(b), Max: a.Max(b)}
}

func (b Box[T]) Size() Vec3[T] {
	return b.Max.Sub(b.Min)
}

func (b Box[T]) Center() Vec3[T] {
	return b.Min.Add(b.Max).Scale(0.5)
}

// ContainsPoint reports whether p is inside of b or on its surface.
func (b Box[T]) ContainsPoint(p Vec3[T]) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// ToRect moves the corners of b into the coordinate space of to and
// returns the rectangle between them on the XY plane. A nil to leaves
// the corners where they are.
//
// If to mirrors an axis, the returned rectangle is flipped along it.
func (b Box[T]) ToRect(to Frame[T]) Rect[T] {
	min, max := b.Min, b.Max
	if to != nil {
		min, max = to.ToLocal(min), to.ToLocal(max)
	}
	return RectMinMax(min.XY(), max.XY())
}

// Corners returns the eight corners of b. The corner at index i uses
// the maximum X if bit 2 of i is set, the maximum Y if bit 1 is set
// and the maximum Z if bit 0 is set.
func (b Box[T]) Corners() (c [8]Vec3[T]) {
	insertFromSeq(c[:], b.corners())
	return c
}

func (b Box[T]) corners() iter.Seq[Vec3[T]] {
	return func(yield func(Vec3[T]) bool) {
		pick := func(i, bit int, lo, hi T) T {
			if i&(1<<bit) != 0 {
				return hi
			}
			return lo
		}

		for i := range 8 {
			c := V3(
				pick(i, 2, b.Min.X, b.Max.X),
				pick(i, 1, b.Min.Y, b.Max.Y),
				pick(i, 0, b.Min.Z, b.Max.Z),
			)
			if !yield(c) {
				return
			}
		}
	}
}
