// Package field samples the homing vector over a grid of positions.
package field

import (
	"github.com/zeusync/homing/internal/core/geometry"
	"github.com/zeusync/homing/internal/core/scene"
)

// Estimator computes the homing vector at a position of its scene.
type Estimator interface {
	HomingVector(p geometry.Point) (geometry.Vector, error)
	Scene() *scene.Scene
}

// Sample is one arrow of the field.
type Sample struct {
	Point  geometry.Point  `json:"point" yaml:"point"`
	Vector geometry.Vector `json:"vector" yaml:"vector"`
}

// Skip records a grid point left out of the field.
type Skip struct {
	Point  geometry.Point `json:"point" yaml:"point"`
	Reason string         `json:"reason" yaml:"reason"`
}

// Outcome is the per-point result before aggregation: a vector or the
// error that prevented one.
type Outcome struct {
	Point  geometry.Point
	Vector geometry.Vector
	Err    error
}

func (o Outcome) sample() Sample { return Sample{Point: o.Point, Vector: o.Vector} }

func (o Outcome) skip() Skip { return Skip{Point: o.Point, Reason: o.Err.Error()} }

// Field is the output of one generation run.
type Field struct {
	RunID       string         `json:"run_id" yaml:"run_id"`
	Fingerprint string         `json:"scene_fingerprint" yaml:"scene_fingerprint"`
	Goal        geometry.Point `json:"goal" yaml:"goal"`
	Grid        Grid           `json:"grid" yaml:"grid"`
	Samples     []Sample       `json:"samples" yaml:"samples"`
	Skipped     []Skip         `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	// MeanAngularError is the mean angle between each sample vector and the
	// straight line to the goal, over the Evaluated samples.
	MeanAngularError float64 `json:"mean_angular_error" yaml:"mean_angular_error"`
	Evaluated        int     `json:"evaluated" yaml:"evaluated"`
}

// MeanAngularError averages the angle between every sample vector and the
// direction to goal. Samples at the goal or with a zero vector have no
// direction and are left out; n counts the rest.
func MeanAngularError(goal geometry.Point, samples []Sample) (mean float64, n int) {
	var sum float64
	for _, s := range samples {
		a, ok := s.Vector.AngleTo(goal.Sub(s.Point))
		if !ok {
			continue
		}
		sum += a
		n++
	}
	if n == 0 {
		return 0, 0
	}
	return sum / float64(n), n
}
