package geom

import (
	"fmt"
	"math"

	"deedles.dev/xmath"
)

// Vec2 is a 2D vector.
type Vec2[T xmath.Float] struct {
	X, Y T
}

// V2 is shorthand for Vec2[T]{X: x, Y: y}.
func V2[T xmath.Float](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

func (v Vec2[T]) Add(w Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X + w.X, Y: v.Y + w.Y}
}

func (v Vec2[T]) Sub(w Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X - w.X, Y: v.Y - w.Y}
}

func (v Vec2[T]) Neg() Vec2[T] {
	return Vec2[T]{X: -v.X, Y: -v.Y}
}

// Scale returns v with each component multiplied by s.
func (v Vec2[T]) Scale(s T) Vec2[T] {
	return Vec2[T]{X: v.X * s, Y: v.Y * s}
}

// Mul returns the component-wise product of v and w.
func (v Vec2[T]) Mul(w Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X * w.X, Y: v.Y * w.Y}
}

// Div returns the component-wise quotient of v and w.
func (v Vec2[T]) Div(w Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X / w.X, Y: v.Y / w.Y}
}

func (v Vec2[T]) Dot(w Vec2[T]) T {
	return v.X*w.X + v.Y*w.Y
}

// Len returns the length of v.
func (v Vec2[T]) Len() T {
	return T(math.Hypot(float64(v.X), float64(v.Y)))
}

// Min returns the component-wise minimum of v and w.
func (v Vec2[T]) Min(w Vec2[T]) Vec2[T] {
	return Vec2[T]{X: min(v.X, w.X), Y: min(v.Y, w.Y)}
}

// Max returns the component-wise maximum of v and w.
func (v Vec2[T]) Max(w Vec2[T]) Vec2[T] {
	return Vec2[T]{X: max(v.X, w.X), Y: max(v.Y, w.Y)}
}

// Approx reports whether every component of v is within epsilon of
// the matching component of w.
func (v Vec2[T]) Approx(w Vec2[T], epsilon T) bool {
	return math.Abs(float64(v.X-w.X)) <= float64(epsilon) &&
		math.Abs(float64(v.Y-w.Y)) <= float64(epsilon)
}

// Clamp clamps each component of v between the matching components
// of lo and hi. It fails with [xmath.ErrInvalidRange] if any
// component of lo is greater than that of hi, returning the zero
// vector.
func (v Vec2[T]) Clamp(lo, hi Vec2[T]) (Vec2[T], error) {
	x, err := xmath.Clamp(v.X, lo.X, hi.X)
	if err != nil {
		return Vec2[T]{}, fmt.Errorf("x: %w", err)
	}
	y, err := xmath.Clamp(v.Y, lo.Y, hi.Y)
	if err != nil {
		return Vec2[T]{}, fmt.Errorf("y: %w", err)
	}
	return Vec2[T]{X: x, Y: y}, nil
}

// Remap remaps each component of v as [xmath.Remap] does.
func (v Vec2[T]) Remap(iMin, iMax, oMin, oMax Vec2[T]) Vec2[T] {
	return Vec2[T]{
		X: xmath.Remap(v.X, iMin.X, iMax.X, oMin.X, oMax.X),
		Y: xmath.Remap(v.Y, iMin.Y, iMax.Y, oMin.Y, oMax.Y),
	}
}

// Lerp interpolates between v and w. t is clamped to [0, 1].
func (v Vec2[T]) Lerp(w Vec2[T], t T) Vec2[T] {
	return v.LerpEach(w, Vec2[T]{X: t, Y: t})
}

// LerpUnclamped interpolates between v and w without clamping t.
func (v Vec2[T]) LerpUnclamped(w Vec2[T], t T) Vec2[T] {
	return v.LerpEachUnclamped(w, Vec2[T]{X: t, Y: t})
}

// LerpEach is like [Vec2.Lerp] but interpolates each component by the
// matching component of t.
func (v Vec2[T]) LerpEach(w, t Vec2[T]) Vec2[T] {
	return Vec2[T]{
		X: xmath.Lerp(v.X, w.X, t.X),
		Y: xmath.Lerp(v.Y, w.Y, t.Y),
	}
}

// LerpEachUnclamped is like [Vec2.LerpEach] without clamping t.
func (v Vec2[T]) LerpEachUnclamped(w, t Vec2[T]) Vec2[T] {
	return Vec2[T]{
		X: xmath.LerpUnclamped(v.X, w.X, t.X),
		Y: xmath.LerpUnclamped(v.Y, w.Y, t.Y),
	}
}

// Clockwise returns v rotated by 90 degrees clockwise.
func (v Vec2[T]) Clockwise() Vec2[T] {
	return Vec2[T]{X: v.Y, Y: -v.X}
}

// CounterClockwise returns v rotated by 90 degrees counter-clockwise.
func (v Vec2[T]) CounterClockwise() Vec2[T] {
	return Vec2[T]{X: -v.Y, Y: v.X}
}

// Angle returns the angle, in degrees, of the direction v points in,
// measured counter-clockwise from the positive X axis.
func (v Vec2[T]) Angle() T {
	return xmath.Deg(T(math.Atan2(float64(v.Y), float64(v.X))))
}

// XZ lays v flat onto the horizontal plane, returning (x, 0, y).
func (v Vec2[T]) XZ() Vec3[T] {
	return Vec3[T]{X: v.X, Z: v.Y}
}

// Extend returns (x, y, z).
func (v Vec2[T]) Extend(z T) Vec3[T] {
	return Vec3[T]{X: v.X, Y: v.Y, Z: z}
}

// Vec3 is a 3D vector.
type Vec3[T xmath.Float] struct {
	X, Y, Z T
}

// V3 is shorthand for Vec3[T]{X: x, Y: y, Z: z}.
func V3[T xmath.Float](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

func (v Vec3[T]) Add(w Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

func (v Vec3[T]) Sub(w Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

func (v Vec3[T]) Neg() Vec3[T] {
	return Vec3[T]{X: -v.X, Y: -v.Y, Z: -v.Z}
}

func (v Vec3[T]) Scale(s T) Vec3[T] {
	return Vec3[T]{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Mul returns the component-wise product of v and w.
func (v Vec3[T]) Mul(w Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X * w.X, Y: v.Y * w.Y, Z: v.Z * w.Z}
}

// Div returns the component-wise quotient of v and w.
func (v Vec3[T]) Div(w Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X / w.X, Y: v.Y / w.Y, Z: v.Z / w.Z}
}

func (v Vec3[T]) Dot(w Vec3[T]) T {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

func (v Vec3[T]) Len() T {
	return T(math.Sqrt(float64(v.Dot(v))))
}

func (v Vec3[T]) Min(w Vec3[T]) Vec3[T] {
	return Vec3[T]{X: min(v.X, w.X), Y: min(v.Y, w.Y), Z: min(v.Z, w.Z)}
}

func (v Vec3[T]) Max(w Vec3[T]) Vec3[T] {
	return Vec3[T]{X: max(v.X, w.X), Y: max(v.Y, w.Y), Z: max(v.Z, w.Z)}
}

func (v Vec3[T]) Approx(w Vec3[T], epsilon T) bool {
	return v.XY().Approx(w.XY(), epsilon) &&
		math.Abs(float64(v.Z-w.Z)) <= float64(epsilon)
}

// Clamp is the 3D equivalent of [Vec2.Clamp].
func (v Vec3[T]) Clamp(lo, hi Vec3[T]) (Vec3[T], error) {
	xy, err := v.XY().Clamp(lo.XY(), hi.XY())
	if err != nil {
		return Vec3[T]{}, err
	}
	z, err := xmath.Clamp(v.Z, lo.Z, hi.Z)
	if err != nil {
		return Vec3[T]{}, fmt.Errorf("z: %w", err)
	}
	return xy.Extend(z), nil
}

// Remap remaps each component of v as [xmath.Remap] does.
func (v Vec3[T]) Remap(iMin, iMax, oMin, oMax Vec3[T]) Vec3[T] {
	return v.XY().Remap(iMin.XY(), iMax.XY(), oMin.XY(), oMax.XY()).
		Extend(xmath.Remap(v.Z, iMin.Z, iMax.Z, oMin.Z, oMax.Z))
}

func (v Vec3[T]) Lerp(w Vec3[T], t T) Vec3[T] {
	return v.LerpEach(w, Vec3[T]{X: t, Y: t, Z: t})
}

func (v Vec3[T]) LerpUnclamped(w Vec3[T], t T) Vec3[T] {
	return v.LerpEachUnclamped(w, Vec3[T]{X: t, Y: t, Z: t})
}

func (v Vec3[T]) LerpEach(w, t Vec3[T]) Vec3[T] {
	return v.XY().LerpEach(w.XY(), t.XY()).Extend(xmath.Lerp(v.Z, w.Z, t.Z))
}

func (v Vec3[T]) LerpEachUnclamped(w, t Vec3[T]) Vec3[T] {
	return v.XY().LerpEachUnclamped(w.XY(), t.XY()).Extend(xmath.LerpUnclamped(v.Z, w.Z, t.Z))
}

// XY drops the Z component of v.
func (v Vec3[T]) XY() Vec2[T] {
	return Vec2[T]{X: v.X, Y: v.Y}
}

// XZ is the inverse of [Vec2.XZ]. It returns (x, z), dropping the Y
// component.
func (v Vec3[T]) XZ() Vec2[T] {
	return Vec2[T]{X: v.X, Y: v.Z}
}

// EulerAngles returns the rotation, in degrees, that turns the
// forward direction (0, 0, 1) to point along v. Y is up, yaw is
// around the Y axis and pitch around the X axis. Pitching upwards is
// negative. The Z component, the roll, is always zero.
func (v Vec3[T]) EulerAngles() Vec3[T] {
	hzt := Vec2[T]{X: v.Z, Y: v.X}
	vtc := Vec2[T]{X: hzt.Len(), Y: -v.Y}

	return Vec3[T]{X: vtc.Angle(), Y: hzt.Angle()}
}
