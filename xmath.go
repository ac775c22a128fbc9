// Package xmath provides small, pure helpers for working with ranges
// of numbers: clamping, wrapping, remapping and interpolation.
//
// Vector, rectangle and box helpers built on top of these live in
// [deedles.dev/xmath/geom], and bit flag helpers in
// [deedles.dev/xmath/mask].
package xmath

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Scalar is a constraint for the types that xmath functions can
// handle.
type Scalar interface {
	Float | Integer
}

// Float is a constraint for any floating-point type.
type Float interface {
	constraints.Float
}

// Integer is a constraint for any integer type.
type Integer interface {
	constraints.Integer
}

// Signed is a constraint for any signed integer type.
type Signed interface {
	constraints.Signed
}

// ErrInvalidRange is returned when a range's minimum is greater than
// its maximum.
var ErrInvalidRange = errors.New("invalid range")
