// Package geometry holds the planar value types shared by the homing model.
// Angles are radians measured counter-clockwise from the +x axis.
package geometry

import "math"

// Point is a position in the plane.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Vector is a displacement in the plane.
type Vector struct {
	DX float64 `json:"dx" yaml:"dx"`
	DY float64 `json:"dy" yaml:"dy"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Vec is shorthand for Vector{DX: dx, DY: dy}.
func Vec(dx, dy float64) Vector { return Vector{DX: dx, DY: dy} }

// Sub returns the vector pointing from o to p.
func (p Point) Sub(o Point) Vector { return Vector{p.X - o.X, p.Y - o.Y} }

// Add translates p by v.
func (p Point) Add(v Vector) Point { return Point{p.X + v.DX, p.Y + v.DY} }

// DistanceTo computes Euclidean distance between two points.
func (p Point) DistanceTo(o Point) float64 { return Distance(p, o) }

// Finite reports whether both coordinates are finite numbers.
func (p Point) Finite() bool { return finite(p.X) && finite(p.Y) }

// ReflectX mirrors p across the horizontal line y = axisY.
func (p Point) ReflectX(axisY float64) Point { return Point{p.X, 2*axisY - p.Y} }

func (v Vector) Add(o Vector) Vector { return Vector{v.DX + o.DX, v.DY + o.DY} }
func (v Vector) Scale(s float64) Vector { return Vector{v.DX * s, v.DY * s} }
func (v Vector) Len() float64 { return math.Hypot(v.DX, v.DY) }
func (v Vector) Dot(o Vector) float64 { return v.DX*o.DX + v.DY*o.DY }
func (v Vector) IsZero() bool { return v.DX == 0 && v.DY == 0 }
func (v Vector) ReflectX() Vector { return Vector{v.DX, -v.DY} }
func (v Vector) Angle() float64 { return math.Atan2(v.DY, v.DX) }
func (v Vector) Finite() bool { return finite(v.DX) && finite(v.DY) }
func (v Vector) Perp() Vector { return Vector{-v.DY, v.DX} }
func (v Vector) Equal(o Vector, eps float64) bool {
	return math.Abs(v.DX-o.DX) <= eps && math.Abs(v.DY-o.DY) <= eps
}

// Normalize returns a unit vector in the same direction. The zero vector
// stays zero.
func (v Vector) Normalize() Vector {
	l := v.Len()
	if l == 0 {
		return Vector{}
	}
	return v.Scale(1 / l)
}

// AngleTo returns the unsigned angle in [0, π] between v and o. It reports
// false when either vector is zero.
func (v Vector) AngleTo(o Vector) (float64, bool) {
	lv, lo := v.Len(), o.Len()
	if lv == 0 || lo == 0 {
		return 0, false
	}
	c := v.Dot(o) / (lv * lo)
	return math.Acos(math.Max(-1, math.Min(1, c))), true
}

// Unit returns the unit vector with direction angle.
func Unit(angle float64) Vector {
	s, c := math.Sincos(angle)
	return Vector{c, s}
}

// Distance computes Euclidean distance between two points.
func Distance(a, b Point) float64 { return math.Hypot(b.X-a.X, b.Y-a.Y) }

// Bearing returns the normalised direction from observer to target.
func Bearing(observer, target Point) float64 {
	return NormalizeAngle(math.Atan2(target.Y-observer.Y, target.X-observer.X))
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
