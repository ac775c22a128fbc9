package geom

import (
	"iter"

	"deedles.dev/xmath"
)

// Segment is a line segment between two points.
type Segment[T xmath.Float] struct {
	A, B Vec3[T]
}

// Plane selects which plane of 3D space a rectangle is laid onto.
type Plane int

const (
	// PlaneXY keeps a rectangle's coordinates as X and Y with Z = 0.
	PlaneXY Plane = iota

	// PlaneXZ lays a rectangle flat, as [Vec2.XZ] does.
	PlaneXZ
)

// Wireframe returns an iterator over the segments of a wireframe
// outline of r, laid onto plane and then moved out of the coordinate
// space of frame if frame is not nil. The four edges are yielded
// first as (c0, c1), (c0, c2), (c3, c2), (c3, c1), where c is the
// result of [Rect.Corners]. If r is flipped along any axis, its two
// diagonals (c0, c3) and (c2, c1) follow to mark it as showing its
// back face.
func (r Rect[T]) Wireframe(plane Plane, frame Frame[T]) iter.Seq[Segment[T]] {
	return func(yield func(Segment[T]) bool) {
		var c [4]Vec3[T]
		for i, corner := range r.Corners() {
			c[i] = embed(plane, corner)
			if frame != nil {
				c[i] = frame.ToWorld(c[i])
			}
		}

		pairs := [][2]int{{0, 1}, {0, 2}, {3, 2}, {3, 1}}
		if r.Flipped() != AxisNone {
			pairs = append(pairs, [2]int{0, 3}, [2]int{2, 1})
		}
		for _, p := range pairs {
			if !yield(Segment[T]{A: c[p[0]], B: c[p[1]]}) {
				return
			}
		}
	}
}

func embed[T xmath.Float](plane Plane, v Vec2[T]) Vec3[T] {
	if plane == PlaneXZ {
		return v.XZ()
	}
	return v.Extend(0)
}

// boxEdges are the pairs of indices into the result of [Box.Corners]
// that form the edges of the box.
var boxEdges = [...][2]int{
	{0, 1}, {0, 2}, {0, 4},
	{1, 3}, {1, 5},
	{2, 3}, {2, 6},
	{4, 5}, {4, 6},
	{7, 6}, {7, 5}, {7, 3},
}

// Wireframe returns an iterator over the twelve edges of b, moved out
// of the coordinate space of frame if frame is not nil. Edges that
// meet at the minimum corner come first and edges that meet at the
// maximum corner last.
func (b Box[T]) Wireframe(frame Frame[T]) iter.Seq[Segment[T]] {
	return func(yield func(Segment[T]) bool) {
		c := b.Corners()
		if frame != nil {
			for i := range c {
				c[i] = frame.ToWorld(c[i])
			}
		}

		for _, e := range boxEdges {
			if !yield(Segment[T]{A: c[e[0]], B: c[e[1]]}) {
				return
			}
		}
	}
}

// LineDrawer is implemented by anything that can draw lines, such as
// a debug overlay.
type LineDrawer[T xmath.Float] interface {
	DrawLine(a, b Vec3[T])
}

// LineFunc implements LineDrawer with a function.
type LineFunc[T xmath.Float] func(a, b Vec3[T])

func (f LineFunc[T]) DrawLine(a, b Vec3[T]) { f(a, b) }

// Draw draws every segment yielded by segs using d.
//
//	geom.Draw(overlay, rect.Wireframe(geom.PlaneXZ, nil))
func Draw[T xmath.Float](d LineDrawer[T], segs iter.Seq[Segment[T]]) {
	for s := range segs {
		d.DrawLine(s.A, s.B)
	}
}
