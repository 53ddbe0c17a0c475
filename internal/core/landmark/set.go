package landmark

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/zeusync/homing/internal/core/fault"
	"github.com/zeusync/homing/internal/core/geometry"
)

// Set is an ordered, immutable list of landmarks. Views and snapshots are
// aligned with it by index.
type Set struct {
	items       []Landmark
	fingerprint uint64
}

// NewSet copies landmarks into a set. Two landmarks at the same position
// are rejected.
func NewSet(landmarks ...Landmark) (Set, error) {
	items := make([]Landmark, len(landmarks))
	seen := make(map[geometry.Point]int, len(landmarks))
	for i, l := range landmarks {
		if l.radius <= 0 {
			return Set{}, fault.Configuration("landmark %d was not created with New", i)
		}
		if j, dup := seen[l.position]; dup {
			return Set{}, fault.Configuration("landmarks %d and %d share position (%v, %v)", j, i, l.position.X, l.position.Y)
		}
		seen[l.position] = i
		items[i] = l
	}
	return Set{items: items, fingerprint: fingerprint(items)}, nil
}

func (s Set) Len() int { return len(s.items) }

// At returns the landmark at index i.
func (s Set) At(i int) Landmark { return s.items[i] }

// All returns a copy of the landmarks in order.
func (s Set) All() []Landmark {
	out := make([]Landmark, len(s.items))
	copy(out, s.items)
	return out
}

// Fingerprint identifies the set contents. Equal sets in equal order have
// equal fingerprints.
func (s Set) Fingerprint() uint64 { return s.fingerprint }

// ReflectX returns a set with every landmark mirrored across y = axisY.
func (s Set) ReflectX(axisY float64) Set {
	items := make([]Landmark, len(s.items))
	for i, l := range s.items {
		items[i] = l.ReflectX(axisY)
	}
	return Set{items: items, fingerprint: fingerprint(items)}
}

func fingerprint(items []Landmark) uint64 {
	d := xxhash.New()
	var buf [24]byte
	for _, l := range items {
		binary.LittleEndian.PutUint64(buf[0:], math.Float64bits(l.position.X))
		binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(l.position.Y))
		binary.LittleEndian.PutUint64(buf[16:], math.Float64bits(l.radius))
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}
