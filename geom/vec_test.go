package geom_test

import (
	"testing"

	"deedles.dev/xmath"
	"deedles.dev/xmath/geom"
	"github.com/stretchr/testify/require"
)

func TestVec2Clamp(t *testing.T) {
	v, err := geom.V2(5.0, -3).Clamp(geom.V2(0.0, 0), geom.V2(10.0, 10))
	require.NoError(t, err)
	require.Equal(t, geom.V2(5.0, 0), v)

	v, err = geom.V2(15.0, 12).Clamp(geom.V2(0.0, 0), geom.V2(10.0, 10))
	require.NoError(t, err)
	require.Equal(t, geom.V2(10.0, 10), v)

	v, err = geom.V2(1.0, 1).Clamp(geom.V2(0.0, 5), geom.V2(10.0, 1))
	require.ErrorIs(t, err, xmath.ErrInvalidRange)
	require.ErrorContains(t, err, "y:")
	require.Zero(t, v)

	v, err = geom.V2(3.0, 4).Clamp(geom.V2(5.0, 0), geom.V2(1.0, 10))
	require.ErrorIs(t, err, xmath.ErrInvalidRange)
	require.Zero(t, v)
}

func TestVec3Clamp(t *testing.T) {
	v, err := geom.V3(-1.0, 0.5, 9).Clamp(geom.V3(0.0, 0, 0), geom.V3(1.0, 1, 1))
	require.NoError(t, err)
	require.Equal(t, geom.V3(0.0, 0.5, 1), v)

	v, err = geom.V3(0.5, 0.5, 0.5).Clamp(geom.V3(0.0, 0, 5), geom.V3(1.0, 1, 1))
	require.ErrorIs(t, err, xmath.ErrInvalidRange)
	require.ErrorContains(t, err, "z:")
	require.Zero(t, v)

	v, err = geom.V3(0.5, 0.5, 0.5).Clamp(geom.V3(2.0, 0, 0), geom.V3(1.0, 1, 1))
	require.ErrorIs(t, err, xmath.ErrInvalidRange)
	require.ErrorContains(t, err, "x:")
	require.Zero(t, v)
}

func TestVecRemap(t *testing.T) {
	v := geom.V2(5.0, 0).Remap(
		geom.V2(0.0, 0), geom.V2(10.0, 10),
		geom.V2(0.0, -1), geom.V2(100.0, 1),
	)
	require.Equal(t, geom.V2(50.0, -1), v)

	v3 := geom.V3(5.0, 0, 2).Remap(
		geom.V3(0.0, 0, 0), geom.V3(10.0, 10, 4),
		geom.V3(0.0, -1, 0), geom.V3(100.0, 1, -8),
	)
	require.Equal(t, geom.V3(50.0, -1, -4), v3)
}

func TestVecMulDiv(t *testing.T) {
	a := geom.V2(2.0, 3)
	b := geom.V2(4.0, 5)
	require.Equal(t, geom.V2(8.0, 15), a.Mul(b))
	require.Equal(t, a, a.Mul(b).Div(b))
	require.Equal(t, geom.V2(2.0, 3), a)

	a3 := geom.V3(2.0, 3, -1)
	b3 := geom.V3(4.0, 5, 0.5)
	require.Equal(t, geom.V3(8.0, 15, -0.5), a3.Mul(b3))
	require.Equal(t, geom.V3(0.5, 0.6, -2), a3.Div(b3))
}

func TestZUp(t *testing.T) {
	require.Equal(t, geom.V3(1.0, 0, 2), geom.V2(1.0, 2).XZ())
	require.Equal(t, geom.V2(1.0, 3), geom.V3(1.0, 2, 3).XZ())
	require.Equal(t, geom.V2(4.0, -5), geom.V2(4.0, -5).XZ().XZ())
}

func TestVecLerp(t *testing.T) {
	a, b := geom.V2(0.0, 0), geom.V2(10.0, 20)
	require.Equal(t, geom.V2(5.0, 10), a.Lerp(b, 0.5))
	require.Equal(t, b, a.Lerp(b, 2))
	require.Equal(t, a, a.Lerp(b, -1))
	require.Equal(t, geom.V2(20.0, 40), a.LerpUnclamped(b, 2))
	require.Equal(t, geom.V2(5.0, 20), a.LerpEach(b, geom.V2(0.5, 2)))
	require.Equal(t, geom.V2(5.0, 40), a.LerpEachUnclamped(b, geom.V2(0.5, 2)))

	a3, b3 := geom.V3(0.0, 0, 0), geom.V3(10.0, 20, 30)
	require.Equal(t, geom.V3(5.0, 10, 15), a3.Lerp(b3, 0.5))
	require.Equal(t, geom.V3(-10.0, -20, -30), a3.LerpUnclamped(b3, -1))
	require.Equal(t, geom.V3(0.0, 20, 15), a3.LerpEach(b3, geom.V3(-1.0, 3, 0.5)))
	require.Equal(t, geom.V3(-10.0, 60, 15), a3.LerpEachUnclamped(b3, geom.V3(-1.0, 3, 0.5)))
}

func TestPerpendicular(t *testing.T) {
	require.Equal(t, geom.V2(2.0, -1), geom.V2(1.0, 2).Clockwise())
	require.Equal(t, geom.V2(-2.0, 1), geom.V2(1.0, 2).CounterClockwise())

	for _, v := range []geom.Vec2[float64]{{0, 0}, {1, 0}, {-3.5, 2.25}, {1e9, -1e-9}} {
		require.Equal(t, v, v.CounterClockwise().Clockwise())
		require.Equal(t, v, v.Clockwise().CounterClockwise())
		require.Equal(t, v.Neg(), v.Clockwise().Clockwise())
	}
}

func TestAngle(t *testing.T) {
	require.InDelta(t, 0, geom.V2(1.0, 0).Angle(), 1e-12)
	require.InDelta(t, 45, geom.V2(1.0, 1).Angle(), 1e-12)
	require.InDelta(t, 180, geom.V2(-1.0, 0).Angle(), 1e-12)
	require.InDelta(t, -90, geom.V2(0.0, -1).Angle(), 1e-12)
	require.InDelta(t, 90, geom.V2[float32](0, 2).Angle(), 1e-4)
}

func TestEulerAngles(t *testing.T) {
	tests := []struct {
		name     string
		dir      geom.Vec3[float64]
		expected geom.Vec3[float64]
	}{
		{name: "Forward", dir: geom.V3(0.0, 0, 1), expected: geom.V3(0.0, 0, 0)},
		{name: "Right", dir: geom.V3(1.0, 0, 0), expected: geom.V3(0.0, 90, 0)},
		{name: "Back", dir: geom.V3(0.0, 0, -1), expected: geom.V3(0.0, 180, 0)},
		{name: "Up", dir: geom.V3(0.0, 1, 0), expected: geom.V3(-90.0, 0, 0)},
		{name: "DownForward", dir: geom.V3(0.0, -1, 1), expected: geom.V3(45.0, 0, 0)},
		{name: "Scaled", dir: geom.V3(3.0, 0, 3), expected: geom.V3(0.0, 45, 0)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			angles := test.dir.EulerAngles()
			require.True(t, angles.Approx(test.expected, 1e-9), "got %v", angles)
			require.Zero(t, angles.Z)
		})
	}
}

func TestVecLen(t *testing.T) {
	require.Equal(t, 5.0, geom.V2(3.0, -4).Len())
	require.Equal(t, 3.0, geom.V3(1.0, 2, -2).Len())
	require.Equal(t, 11.0, geom.V2(1.0, 2).Dot(geom.V2(3.0, 4)))
}
