package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func TestNormalizeAngleRange(t *testing.T) {
	for x := -20.0; x <= 20.0; x += 0.173 {
		n := NormalizeAngle(x)
		require.Greater(t, n, -math.Pi, "x=%v", x)
		require.LessOrEqual(t, n, math.Pi, "x=%v", x)
		require.InDelta(t, n, NormalizeAngle(x+TwoPi), 1e-9, "x=%v", x)
		require.InDelta(t, 0, math.Sin(n-x), 1e-9, "x=%v", x)
	}
}

func TestNormalizeAngleBoundary(t *testing.T) {
	assert.Equal(t, math.Pi, NormalizeAngle(math.Pi))
	assert.Equal(t, math.Pi, NormalizeAngle(-math.Pi))
	assert.InDelta(t, math.Pi, math.Abs(NormalizeAngle(3*math.Pi)), eps)
	assert.Equal(t, 0.0, NormalizeAngle(0))
	assert.InDelta(t, -math.Pi/2, NormalizeAngle(3*math.Pi/2), eps)

	// a naive subtraction across the ±π seam would give nearly 2π
	d := AngleDiff(-math.Pi+0.1, math.Pi-0.1)
	assert.InDelta(t, 0.2, d, eps)
	d = AngleDiff(math.Pi-0.1, -math.Pi+0.1)
	assert.InDelta(t, -0.2, d, eps)
}

func TestWrapAngle(t *testing.T) {
	assert.Equal(t, 0.0, WrapAngle(0))
	assert.InDelta(t, 3*math.Pi/2, WrapAngle(-math.Pi/2), eps)
	assert.InDelta(t, 0, WrapAngle(TwoPi), eps)
	for x := -20.0; x <= 20.0; x += 0.31 {
		w := WrapAngle(x)
		require.GreaterOrEqual(t, w, 0.0)
		require.Less(t, w, TwoPi)
	}
}

func TestBearing(t *testing.T) {
	origin := Pt(0, 0)
	assert.InDelta(t, 0, Bearing(origin, Pt(10, 0)), eps)
	assert.InDelta(t, math.Pi/2, Bearing(origin, Pt(0, 3)), eps)
	assert.InDelta(t, 3*math.Pi/4, Bearing(origin, Pt(-1, 1)), eps)
	assert.Equal(t, math.Pi, Bearing(origin, Pt(-4, 0)))
}

func TestVectorOps(t *testing.T) {
	v := Vec(3, 4)
	assert.Equal(t, 5.0, v.Len())
	assert.True(t, v.Normalize().Equal(Vec(0.6, 0.8), eps))
	assert.True(t, Vector{}.Normalize().IsZero())
	assert.Equal(t, Vec(-4, 3), v.Perp())
	assert.Equal(t, Vec(3, -4), v.ReflectX())
	assert.Equal(t, Pt(1, 2).Sub(Pt(4, 6)), Vec(-3, -4))
	assert.Equal(t, Pt(1, 2).Add(v), Pt(4, 6))
	assert.Equal(t, 5.0, Pt(1, 2).DistanceTo(Pt(4, 6)))
	assert.Equal(t, Pt(1, -2), Pt(1, 2).ReflectX(0))
	assert.True(t, Unit(math.Pi/2).Equal(Vec(0, 1), eps))
	assert.False(t, Pt(math.NaN(), 0).Finite())
	assert.False(t, Vec(math.Inf(1), 0).Finite())
}

func TestAngleTo(t *testing.T) {
	a, ok := Vec(1, 0).AngleTo(Vec(0, 2))
	require.True(t, ok)
	assert.InDelta(t, math.Pi/2, a, eps)

	a, ok = Vec(1, 1).AngleTo(Vec(-2, -2))
	require.True(t, ok)
	assert.InDelta(t, math.Pi, a, eps)

	_, ok = Vec(0, 0).AngleTo(Vec(1, 0))
	assert.False(t, ok)
}
