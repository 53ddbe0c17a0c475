// Package homing compares the current view with the goal snapshot and
// derives the vector that leads back to the goal.
package homing

import (
	"github.com/zeusync/homing/internal/core/geometry"
	"github.com/zeusync/homing/internal/core/retina"
	"github.com/zeusync/homing/internal/core/scene"
)

// Contribution is one landmark's vote.
type Contribution struct {
	Landmark int
	// BearingError is the shortest rotation from the current bearing to the
	// remembered one, in (-π, π].
	BearingError float64
	// SizeError is remembered size minus current size. Positive means the
	// landmark looked bigger from the goal.
	SizeError float64
	Rotation  geometry.Vector
	Radial    geometry.Vector
}

// Vector is the landmark's combined correction.
func (c Contribution) Vector() geometry.Vector { return c.Rotation.Add(c.Radial) }

// Computer matches landmarks by index between the snapshot and the current
// view.
type Computer struct {
	scene  *scene.Scene
	config Config
}

// NewComputer validates config and binds it to s.
func NewComputer(s *scene.Scene, config Config) (*Computer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Computer{scene: s, config: config}, nil
}

func (c *Computer) Scene() *scene.Scene { return c.scene }
func (c *Computer) Goal() geometry.Point { return c.scene.Goal() }
func (c *Computer) Config() Config { return c.config }

// Contributions returns every landmark's vote at p.
func (c *Computer) Contributions(p geometry.Point) ([]Contribution, error) {
	snapshot := c.scene.Snapshot()
	view, err := retina.Sample(c.scene.Landmarks(), p, snapshot.Model())
	if err != nil {
		return nil, err
	}

	out := make([]Contribution, view.Len())
	for i := range out {
		remembered, current := snapshot.At(i), view.At(i)
		toward := geometry.Unit(current.Bearing)
		// moving clockwise around the landmark turns its bearing
		// counter-clockwise
		clockwise := geometry.Vec(toward.DY, -toward.DX)

		dTheta := geometry.AngleDiff(remembered.Bearing, current.Bearing)
		dSize := remembered.ApparentSize - current.ApparentSize

		out[i] = Contribution{
			Landmark:     i,
			BearingError: dTheta,
			SizeError:    dSize,
			Rotation:     clockwise.Scale(c.config.Weights.Rotation * c.config.scale(dTheta)),
			Radial:       toward.Scale(c.config.Weights.Radial * c.config.scale(dSize)),
		}
	}
	return out, nil
}

// HomingVector averages the landmark votes at p. A scene without landmarks
// gives the zero vector.
func (c *Computer) HomingVector(p geometry.Point) (geometry.Vector, error) {
	votes, err := c.Contributions(p)
	if err != nil {
		return geometry.Vector{}, err
	}
	if len(votes) == 0 {
		return geometry.Vector{}, nil
	}

	var sum geometry.Vector
	for _, v := range votes {
		sum = sum.Add(v.Vector())
	}
	mean := sum.Scale(1 / float64(len(votes)))
	if c.config.Normalize {
		return mean.Normalize(), nil
	}
	return mean, nil
}
