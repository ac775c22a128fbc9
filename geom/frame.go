package geom

import "deedles.dev/xmath"

// Frame is a coordinate space that points can be moved into and out
// of. Hosts with their own notion of a spatial hierarchy can
// implement it to use [Rect.Transform] and friends.
type Frame[T xmath.Float] interface {
	// ToWorld moves p from the frame's local space into world space.
	ToWorld(p Vec3[T]) Vec3[T]

	// ToLocal is the inverse of ToWorld.
	ToLocal(p Vec3[T]) Vec3[T]
}

// FrameFuncs implements Frame using a pair of functions. A nil
// function leaves points unchanged.
type FrameFuncs[T xmath.Float] struct {
	World func(Vec3[T]) Vec3[T]
	Local func(Vec3[T]) Vec3[T]
}

func (f FrameFuncs[T]) ToWorld(p Vec3[T]) Vec3[T] {
	if f.World == nil {
		return p
	}
	return f.World(p)
}

func (f FrameFuncs[T]) ToLocal(p Vec3[T]) Vec3[T] {
	if f.Local == nil {
		return p
	}
	return f.Local(p)
}

// Affine is a Frame that scales points per axis around the origin
// and then offsets them. A negative scale mirrors the axis. A zero
// scale can't be inverted, and ToLocal divides by zero for it.
type Affine[T xmath.Float] struct {
	Offset, Scale Vec3[T]
}

// Identity returns an Affine that leaves points where they are.
func Identity[T xmath.Float]() Affine[T] {
	return Affine[T]{Scale: V3[T](1, 1, 1)}
}

// Translate returns an Affine that moves points by offset.
func Translate[T xmath.Float](offset Vec3[T]) Affine[T] {
	return Affine[T]{Offset: offset, Scale: V3[T](1, 1, 1)}
}

// Scale returns an Affine that scales points by s.
func Scale[T xmath.Float](s Vec3[T]) Affine[T] {
	return Affine[T]{Scale: s}
}

func (a Affine[T]) ToWorld(p Vec3[T]) Vec3[T] {
	return p.Mul(a.Scale).Add(a.Offset)
}

func (a Affine[T]) ToLocal(p Vec3[T]) Vec3[T] {
	return p.Sub(a.Offset).Div(a.Scale)
}

// Then returns an Affine that applies a and then next.
func (a Affine[T]) Then(next Affine[T]) Affine[T] {
	return Affine[T]{
		Offset: a.Offset.Mul(next.Scale).Add(next.Offset),
		Scale:  a.Scale.Mul(next.Scale),
	}
}
