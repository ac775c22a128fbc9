package geom_test

import (
	"testing"

	"deedles.dev/xmath/geom"
	"github.com/stretchr/testify/require"
)

func TestAxesString(t *testing.T) {
	require.Equal(t, "none", geom.AxisNone.String())
	require.Equal(t, "x", geom.AxisX.String())
	require.Equal(t, "x|z", (geom.AxisX | geom.AxisZ).String())
	require.Equal(t, "x|y|z", (geom.AxisX | geom.AxisY | geom.AxisZ).String())
}
