package homing

import (
	"fmt"
	"math"
	"strings"

	"github.com/zeusync/homing/internal/core/fault"
)

// Scaling selects how a bearing or size discrepancy sets the length of its
// correction vector.
type Scaling uint8

const (
	// ScaleProportional scales corrections by the signed discrepancy.
	ScaleProportional Scaling = iota
	// ScaleUnit uses unit corrections carrying only the discrepancy sign.
	ScaleUnit
)

func (s Scaling) String() string {
	switch s {
	case ScaleProportional:
		return "proportional"
	case ScaleUnit:
		return "unit"
	default:
		return fmt.Sprintf("Scaling(%d)", uint8(s))
	}
}

// ParseScaling accepts "proportional" and "unit". The empty string selects
// ScaleProportional.
func ParseScaling(s string) (Scaling, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "proportional":
		return ScaleProportional, nil
	case "unit":
		return ScaleUnit, nil
	default:
		return 0, fmt.Errorf("unknown scaling %q", s)
	}
}

// Weights balances the rotational (bearing) and radial (size) corrections.
type Weights struct {
	Rotation float64 `json:"rotation" yaml:"rotation"`
	Radial   float64 `json:"radial" yaml:"radial"`
}

// Config holds computer configuration
type Config struct {
	Weights   Weights
	Scaling   Scaling
	Normalize bool
}

// DefaultConfig weighs bearing and size corrections equally and keeps the
// averaged magnitude.
func DefaultConfig() Config {
	return Config{
		Weights: Weights{Rotation: 1, Radial: 1},
		Scaling: ScaleProportional,
	}
}

// DefaultSegmentConfig reproduces the classic segment-matching model: unit
// corrections, positioning weighed three times turning, unit-length output.
func DefaultSegmentConfig() Config {
	return Config{
		Weights:   Weights{Rotation: 1, Radial: 3},
		Scaling:   ScaleUnit,
		Normalize: true,
	}
}

// Validate rejects non-finite or negative weights, and weights that are both
// zero since they silence every correction.
func (c Config) Validate() error {
	for name, w := range map[string]float64{"rotation": c.Weights.Rotation, "radial": c.Weights.Radial} {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return fault.Configuration("%s weight must be a non-negative number, got %v", name, w)
		}
	}
	if c.Weights.Rotation == 0 && c.Weights.Radial == 0 {
		return fault.Configuration("rotation and radial weights must not both be zero")
	}
	if c.Scaling > ScaleUnit {
		return fault.Configuration("unknown scaling %v", c.Scaling)
	}
	return nil
}

// scale turns a discrepancy into a correction length.
func (c Config) scale(discrepancy float64) float64 {
	if c.Scaling == ScaleUnit {
		return sign(discrepancy)
	}
	return discrepancy
}

// signTolerance absorbs rounding noise between angles computed along
// different paths.
const signTolerance = 1e-12

func sign(x float64) float64 {
	switch {
	case x > signTolerance:
		return 1
	case x < -signTolerance:
		return -1
	default:
		return 0
	}
}
