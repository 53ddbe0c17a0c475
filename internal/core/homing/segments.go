package homing

import (
	"math"

	"github.com/zeusync/homing/internal/core/geometry"
	"github.com/zeusync/homing/internal/core/retina"
	"github.com/zeusync/homing/internal/core/scene"
)

// SegmentComputer matches every segment of the goal panorama with the
// nearest current segment of the same darkness, so it needs no landmark
// identities.
type SegmentComputer struct {
	scene  *scene.Scene
	config Config
}

// NewSegmentComputer validates config and binds it to s.
func NewSegmentComputer(s *scene.Scene, config Config) (*SegmentComputer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &SegmentComputer{scene: s, config: config}, nil
}

func (c *SegmentComputer) Scene() *scene.Scene { return c.scene }
func (c *SegmentComputer) Goal() geometry.Point { return c.scene.Goal() }
func (c *SegmentComputer) Config() Config { return c.config }

// HomingVector sums the turning and positioning corrections of all matched
// segments at p. Unmatched segments are skipped.
func (c *SegmentComputer) HomingVector(p geometry.Point) (geometry.Vector, error) {
	current, err := retina.CapturePanorama(c.scene.Landmarks(), p)
	if err != nil {
		return geometry.Vector{}, err
	}

	remembered := c.scene.Panorama()
	var turning, positioning geometry.Vector
	matched := 0
	for i := 0; i < remembered.Len(); i++ {
		snap := remembered.At(i)
		j := current.Nearest(snap.Bisector, snap.Dark)
		if j < 0 {
			continue
		}
		seen := current.At(j)
		matched++

		toward := geometry.Unit(seen.Bisector)
		clockwise := geometry.Vec(toward.DY, -toward.DX)

		turn := c.config.scale(geometry.AngleDiff(snap.Bisector, seen.Bisector))
		// a segment wider than a half circle has its edges swapped
		if seen.Width > math.Pi {
			turn = -turn
		}
		turning = turning.Add(clockwise.Scale(turn))
		positioning = positioning.Add(toward.Scale(c.config.scale(snap.Width - seen.Width)))
	}
	if matched == 0 {
		return geometry.Vector{}, nil
	}

	v := turning.Scale(c.config.Weights.Rotation).
		Add(positioning.Scale(c.config.Weights.Radial)).
		Scale(1 / float64(matched))
	if c.config.Normalize {
		return v.Normalize(), nil
	}
	return v, nil
}
