// Package geom provides helpers for 2D and 3D vectors, integer grid
// points, rectangles and boxes.
//
// It is patterned after image.Rectangle and image.Point, but works
// with floating-point coordinates, allows rectangles with negative
// sizes, and can move rectangles between coordinate spaces described
// by a [Frame].
package geom

import (
	"iter"
	"strings"

	"deedles.dev/xiter"
	"deedles.dev/xmath/mask"
)

// Axes is a bitmask representing zero or more coordinate axes.
type Axes uint8

const (
	AxisNone Axes = 0
	AxisX    Axes = 1 << (iota - 1)
	AxisY
	AxisZ
)

func (a Axes) String() string {
	if a == AxisNone {
		return "none"
	}

	var names []string
	for _, axis := range [...]struct {
		axis Axes
		name string
	}{{AxisX, "x"}, {AxisY, "y"}, {AxisZ, "z"}} {
		if mask.Contains(a, axis.axis) {
			names = append(names, axis.name)
		}
	}
	return strings.Join(names, "|")
}

// insertFromSeq fills dst with the values yielded by s. s must not
// yield more than len(dst) values.
func insertFromSeq[T any](dst []T, s iter.Seq[T]) {
	for i, v := range xiter.Enumerate(s) {
		dst[i] = v
	}
}
