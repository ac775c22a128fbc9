package geom

import (
	"deedles.dev/xmath"
	"deedles.dev/xmath/mask"
)

// Rect is an axis-aligned rectangle described by an origin and a
// size. Either component of the size may be negative, in which case
// the rectangle is flipped along that axis: it covers the same area
// as its unflipped equivalent but runs the other way.
type Rect[T xmath.Float] struct {
	Origin, Size Vec2[T]
}

// RectXYWH returns a rectangle with the origin (x, y) and the size
// (w, h).
func RectXYWH[T xmath.Float](x, y, w, h T) Rect[T] {
	return Rect[T]{Origin: V2(x, y), Size: V2(w, h)}
}

// RectMinMax returns a rectangle that starts at min and ends at max.
// If max is smaller than min on an axis, the result is flipped on that
// axis.
func RectMinMax[T xmath.Float](min, max Vec2[T]) Rect[T] {
	return Rect[T]{Origin: min, Size: max.Sub(min)}
}

func (r Rect[T]) Width() T  { return r.Size.X }
func (r Rect[T]) Height() T { return r.Size.Y }

// Min returns the corner of r with the smallest coordinates,
// regardless of whether or not r is flipped.
func (r Rect[T]) Min() Vec2[T] {
	return r.Origin.Min(r.Origin.Add(r.Size))
}

// Max returns the corner of r with the largest coordinates,
// regardless of whether or not r is flipped.
func (r Rect[T]) Max() Vec2[T] {
	return r.Origin.Max(r.Origin.Add(r.Size))
}

// Flipped returns the axes along which r has a negative size.
func (r Rect[T]) Flipped() Axes {
	a := AxisNone
	if r.Size.X < 0 {
		a = mask.Add(a, AxisX)
	}
	if r.Size.Y < 0 {
		a = mask.Add(a, AxisY)
	}
	return a
}

// FlipX flips r horizontally while preserving the area it covers.
func (r Rect[T]) FlipX() Rect[T] {
	r.Origin.X += r.Size.X
	r.Size.X = -r.Size.X
	return r
}

// FlipY flips r vertically while preserving the area it covers.
func (r Rect[T]) FlipY() Rect[T] {
	r.Origin.Y += r.Size.Y
	r.Size.Y = -r.Size.Y
	return r
}

// Unflip flips r along whichever axes it has a negative size on,
// returning a rectangle that covers the same area with a non-negative
// size.
func (r Rect[T]) Unflip() Rect[T] {
	f := r.Flipped()
	if mask.Contains(f, AxisX) {
		r = r.FlipX()
	}
	if mask.Contains(f, AxisY) {
		r = r.FlipY()
	}
	return r
}

// Lerp interpolates the origin and size of r towards those of to. t
// is clamped to [0, 1].
func (r Rect[T]) Lerp(to Rect[T], t T) Rect[T] {
	return Rect[T]{
		Origin: r.Origin.Lerp(to.Origin, t),
		Size:   r.Size.Lerp(to.Size, t),
	}
}

func (r Rect[T]) LerpUnclamped(to Rect[T], t T) Rect[T] {
	return Rect[T]{
		Origin: r.Origin.LerpUnclamped(to.Origin, t),
		Size:   r.Size.LerpUnclamped(to.Size, t),
	}
}

// LerpEach is like [Rect.Lerp], but t.X is used for the horizontal
// position and width and t.Y for the vertical position and height.
func (r Rect[T]) LerpEach(to Rect[T], t Vec2[T]) Rect[T] {
	return Rect[T]{
		Origin: r.Origin.LerpEach(to.Origin, t),
		Size:   r.Size.LerpEach(to.Size, t),
	}
}

func (r Rect[T]) LerpEachUnclamped(to Rect[T], t Vec2[T]) Rect[T] {
	return Rect[T]{
		Origin: r.Origin.LerpEachUnclamped(to.Origin, t),
		Size:   r.Size.LerpEachUnclamped(to.Size, t),
	}
}

// Contains reports whether r fully covers inner. Touching edges count
// as covered. Flipping either rectangle has no effect on the result.
func (r Rect[T]) Contains(inner Rect[T]) bool {
	rmin, rmax := r.Min(), r.Max()
	imin, imax := inner.Min(), inner.Max()
	return imin.X >= rmin.X && imax.X <= rmax.X &&
		imin.Y >= rmin.Y && imax.Y <= rmax.Y
}

// ClampPoint returns the point in r closest to p.
func (r Rect[T]) ClampPoint(p Vec2[T]) Vec2[T] {
	min, max := r.Min(), r.Max()
	return Vec2[T]{
		X: xmath.CeilTo(xmath.FloorTo(p.X, min.X), max.X),
		Y: xmath.CeilTo(xmath.FloorTo(p.Y, min.Y), max.Y),
	}
}

// WrapPoint wraps each coordinate of p into r as [xmath.Wrap] does,
// treating r as though its opposite edges were connected.
func (r Rect[T]) WrapPoint(p Vec2[T]) Vec2[T] {
	min, max := r.Min(), r.Max()
	return Vec2[T]{
		X: xmath.Wrap(p.X, min.X, max.X),
		Y: xmath.Wrap(p.Y, min.Y, max.Y),
	}
}

// NormalizedPivot returns the position of the coordinate origin
// relative to r in fractions of r's size. (0, 0) is r's origin and
// (1, 1) is the opposite corner.
func (r Rect[T]) NormalizedPivot() Vec2[T] {
	return Vec2[T]{
		X: -r.Origin.X / r.Size.X,
		Y: -r.Origin.Y / r.Size.Y,
	}
}

// ToWorld moves the corners of r out of the coordinate space of from
// and returns the box that they span. The rectangle lies on the XY
// plane at Z = 0. A nil from leaves the corners where they are.
func (r Rect[T]) ToWorld(from Frame[T]) Box[T] {
	a, b := r.Min().Extend(0), r.Max().Extend(0)
	if from != nil {
		a, b = from.ToWorld(a), from.ToWorld(b)
	}
	return BoxOf(a, b)
}

// Transform moves r from the coordinate space of from into that of
// to. Either may be nil, meaning that r is already in, or should be
// left in, world space. The world space box is always upright, so a
// from that mirrors an axis does not flip the result, while a to that
// mirrors an axis does.
func (r Rect[T]) Transform(from, to Frame[T]) Rect[T] {
	return r.ToWorld(from).ToRect(to)
}

// Corners returns the four corners of r, in the order min, (max.X,
// min.Y), (min.X, max.Y), max.
func (r Rect[T]) Corners() [4]Vec2[T] {
	min, max := r.Min(), r.Max()
	return [4]Vec2[T]{min, V2(max.X, min.Y), V2(min.X, max.Y), max}
}
