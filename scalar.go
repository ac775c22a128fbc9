package xmath

import (
	"fmt"
	"math"
)

// Clamp returns v limited to the range [min, max]. If min is greater
// than max, the returned error wraps [ErrInvalidRange], no matter the
// value of v.
func Clamp[T Scalar](v, min, max T) (T, error) {
	if min > max {
		return *new(T), fmt.Errorf("clamp to [%v, %v]: %w", min, max, ErrInvalidRange)
	}
	return clamp(v, min, max), nil
}

// clamp is Clamp without the range check.
func clamp[T Scalar](v, min, max T) T {
	switch {
	case v < min:
		return min
	case v > max:
		return max
	default:
		return v
	}
}

const maxWrapSteps = 1 << 16

// Wrap brings v into the range [min, max] by repeatedly adding or
// subtracting the width of the range. Both ends are inclusive, so a v
// equal to max is returned as is. For example,
//
//	xmath.Wrap(370.0, 0, 360)
//
// returns 10.
//
// If min and max are equal, min is returned. An infinite v can't be
// brought into any range and produces NaN. Reversed bounds are
// swapped. A v very far outside of the range is first reduced with
// math.Mod, as stepping that far may never terminate once the width
// falls below the precision of v. The result is the same as stepping,
// so a v above the range that lands on a multiple of the width still
// ends at max.
func Wrap[T Float](v, min, max T) T {
	if min == max {
		return min
	}
	if min > max {
		min, max = max, min
	}
	if math.IsInf(float64(v), 0) {
		return T(math.NaN())
	}

	r := max - min
	if math.Abs(float64(v-min))/float64(r) > maxWrapSteps {
		d := T(math.Mod(float64(v-min), float64(r)))
		if d == 0 && v > max {
			return max
		}
		v = min + d
	}
	for v < min {
		v += r
	}
	for v > max {
		v -= r
	}
	return v
}

// WrapInt brings v into the range [min, max). Unlike [Wrap], max is
// exclusive, so a v equal to max becomes min.
//
// If min and max are equal, min is returned. Reversed bounds are
// swapped.
func WrapInt[T Signed](v, min, max T) T {
	if min == max {
		return min
	}
	if min > max {
		min, max = max, min
	}

	r := max - min
	d := (v - min) % r
	if d < 0 {
		d += r
	}
	return min + d
}

// CeilTo returns the smaller of v and max.
func CeilTo[T Scalar](v, max T) T {
	if v > max {
		return max
	}
	return v
}

// FloorTo returns the larger of v and min.
func FloorTo[T Scalar](v, min T) T {
	if v < min {
		return min
	}
	return v
}

// Remap maps v from the range [iMin, iMax] to the range [oMin, oMax].
// Values outside of the input range are extrapolated. An empty input
// range divides by zero.
func Remap[T Float](v, iMin, iMax, oMin, oMax T) T {
	return (v-iMin)*((oMax-oMin)/(iMax-iMin)) + oMin
}

// SetSign returns the magnitude of v with the sign of sign. A sign of
// zero is positive.
func SetSign[T Float](v, sign T) T {
	abs := T(math.Abs(float64(v)))
	if sign >= 0 {
		return abs
	}
	return -abs
}

// Lerp linearly interpolates between a and b. t is clamped to [0, 1].
func Lerp[T Float](a, b, t T) T {
	return LerpUnclamped(a, b, clamp(t, 0, 1))
}

// LerpUnclamped linearly interpolates between a and b, extrapolating
// when t is outside of [0, 1].
func LerpUnclamped[T Float](a, b, t T) T {
	return a + (b-a)*t
}

// AntiLerpA returns the a such that LerpUnclamped(a, b, t) == lerp.
// It is undefined for a t of 1.
func AntiLerpA[T Float](b, t, lerp T) T {
	return (lerp - b*t) / (1 - t)
}

// AntiLerpB returns the b such that LerpUnclamped(a, b, t) == lerp.
// It is undefined for a t of 0.
func AntiLerpB[T Float](a, t, lerp T) T {
	return (lerp - a*(1-t)) / t
}

// Deg converts radians to degrees.
func Deg[T Float](rad T) T {
	return rad * (180 / math.Pi)
}

// Rad converts degrees to radians.
func Rad[T Float](deg T) T {
	return deg * (math.Pi / 180)
}
