package geometry

import "math"

// TwoPi is a full turn.
const TwoPi = 2 * math.Pi

// NormalizeAngle maps a into (-π, π]. Bearings are stored through it and
// bearing differences are taken through it, so a difference always picks
// the shorter rotation.
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, TwoPi)
	if a <= 0 {
		a += TwoPi
	}
	return a - math.Pi
}

// AngleDiff returns the signed shortest rotation from `from` to `to`.
func AngleDiff(to, from float64) float64 {
	return NormalizeAngle(to - from)
}

// WrapAngle maps a into [0, 2π).
func WrapAngle(a float64) float64 {
	a = math.Mod(a, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	if a >= TwoPi {
		a = 0
	}
	return a
}
