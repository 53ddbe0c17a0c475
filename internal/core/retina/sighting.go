// Package retina computes how landmarks project onto an insect's panoramic
// eye: the bearing and apparent angular size of each landmark seen from an
// observer position.
package retina

import (
	"fmt"
	"math"
	"strings"
)

// Sighting is one landmark as seen from an observer. Bearing lies in
// (-π, π] and ApparentSize is the angle subtended by the landmark diameter.
type Sighting struct {
	Bearing      float64 `json:"bearing" yaml:"bearing"`
	ApparentSize float64 `json:"apparent_size" yaml:"apparent_size"`
}

// SizeModel selects the apparent size formula.
type SizeModel uint8

const (
	// SizeArctan is 2·atan(r/d).
	SizeArctan SizeModel = iota
	// SizeSmallAngle is 2·r/d.
	SizeSmallAngle
	// SizeTangent is 2·asin(r/d), the angle between the two tangent lines.
	// It saturates at π once the observer reaches the landmark edge.
	SizeTangent
)

var sizeModelNames = map[SizeModel]string{
	SizeArctan:     "atan",
	SizeSmallAngle: "small-angle",
	SizeTangent:    "tangent",
}

func (m SizeModel) String() string {
	if name, ok := sizeModelNames[m]; ok {
		return name
	}
	return fmt.Sprintf("SizeModel(%d)", uint8(m))
}

// ParseSizeModel accepts the names printed by String. The empty string
// selects SizeArctan.
func ParseSizeModel(s string) (SizeModel, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return SizeArctan, nil
	}
	for m, name := range sizeModelNames {
		if name == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown size model %q", s)
}

// ApparentSize returns the angular size of a landmark of the given radius
// at distance d > 0.
func (m SizeModel) ApparentSize(radius, d float64) float64 {
	switch m {
	case SizeSmallAngle:
		return 2 * radius / d
	case SizeTangent:
		if d <= radius {
			return math.Pi
		}
		return 2 * math.Asin(radius/d)
	default:
		return 2 * math.Atan(radius/d)
	}
}
