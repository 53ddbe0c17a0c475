// Package landmark models the static circular landmarks a forager uses to
// recognise its goal.
package landmark

import (
	"math"

	"github.com/zeusync/homing/internal/core/fault"
	"github.com/zeusync/homing/internal/core/geometry"
)

// Landmark is a circular object at a fixed position. Its radius drives the
// apparent angular size seen by an observer.
type Landmark struct {
	position geometry.Point
	radius   float64
}

// New validates and creates a landmark.
func New(position geometry.Point, radius float64) (Landmark, error) {
	if !position.Finite() {
		return Landmark{}, fault.Configuration("landmark position (%v, %v) is not finite", position.X, position.Y)
	}
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius <= 0 {
		return Landmark{}, fault.Configuration("landmark radius must be positive, got %v", radius).
			WithContext("x", position.X).
			WithContext("y", position.Y)
	}
	return Landmark{position: position, radius: radius}, nil
}

// MustNew is New for literals known to be valid. It panics on error.
func MustNew(x, y, radius float64) Landmark {
	l, err := New(geometry.Pt(x, y), radius)
	if err != nil {
		panic(err)
	}
	return l
}

func (l Landmark) Position() geometry.Point { return l.position }
func (l Landmark) Radius() float64 { return l.radius }

// DistanceTo returns the distance from observer to the landmark centre.
func (l Landmark) DistanceTo(observer geometry.Point) float64 {
	return geometry.Distance(observer, l.position)
}

// BearingFrom returns the normalised direction from observer to the
// landmark centre.
func (l Landmark) BearingFrom(observer geometry.Point) float64 {
	return geometry.Bearing(observer, l.position)
}

// Contains reports whether observer lies strictly inside the landmark disc.
func (l Landmark) Contains(observer geometry.Point) bool {
	return l.DistanceTo(observer) < l.radius
}

// ReflectX mirrors the landmark across the line y = axisY.
func (l Landmark) ReflectX(axisY float64) Landmark {
	return Landmark{position: l.position.ReflectX(axisY), radius: l.radius}
}
