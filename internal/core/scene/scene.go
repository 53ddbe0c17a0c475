// Package scene bundles the static input of the homing model: the
// landmarks, the goal and the snapshots remembered at the goal.
package scene

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/zeusync/homing/internal/core/fault"
	"github.com/zeusync/homing/internal/core/geometry"
	"github.com/zeusync/homing/internal/core/landmark"
	"github.com/zeusync/homing/internal/core/retina"
)

// Options controls scene construction.
type Options struct {
	// SizeModel is used for the snapshot and every view compared against it.
	SizeModel retina.SizeModel
	// RequireLandmarks rejects a scene with no landmarks. Without it an empty
	// scene is valid and yields a zero field.
	RequireLandmarks bool
}

// Scene is immutable after New returns and safe for concurrent readers.
type Scene struct {
	landmarks   landmark.Set
	goal        geometry.Point
	snapshot    retina.Snapshot
	panorama    retina.Panorama
	fingerprint uint64
}

// New validates the input and records both goal snapshots.
func New(landmarks landmark.Set, goal geometry.Point, opts Options) (*Scene, error) {
	if !goal.Finite() {
		return nil, fault.Configuration("goal (%v, %v) is not finite", goal.X, goal.Y)
	}
	if opts.RequireLandmarks && landmarks.Len() == 0 {
		return nil, fault.Configuration("scene needs at least one landmark")
	}

	snapshot, err := retina.TakeSnapshot(landmarks, goal, opts.SizeModel)
	if err != nil {
		return nil, err
	}
	panorama, err := retina.CapturePanorama(landmarks, goal)
	if err != nil {
		return nil, fmt.Errorf("panorama at goal: %w", err)
	}

	return &Scene{
		landmarks:   landmarks,
		goal:        goal,
		snapshot:    snapshot,
		panorama:    panorama,
		fingerprint: sceneFingerprint(landmarks, goal, opts.SizeModel),
	}, nil
}

func (s *Scene) Landmarks() landmark.Set { return s.landmarks }
func (s *Scene) Goal() geometry.Point { return s.goal }
func (s *Scene) Snapshot() retina.Snapshot { return s.snapshot }
func (s *Scene) Panorama() retina.Panorama { return s.panorama }
func (s *Scene) SizeModel() retina.SizeModel { return s.snapshot.Model() }

// Fingerprint identifies the landmarks, goal and size model together.
func (s *Scene) Fingerprint() uint64 { return s.fingerprint }

// FingerprintHex is Fingerprint formatted for logs and output documents.
func (s *Scene) FingerprintHex() string { return fmt.Sprintf("%016x", s.fingerprint) }

func sceneFingerprint(landmarks landmark.Set, goal geometry.Point, model retina.SizeModel) uint64 {
	var buf [25]byte
	binary.LittleEndian.PutUint64(buf[0:], landmarks.Fingerprint())
	binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(goal.X))
	binary.LittleEndian.PutUint64(buf[16:], math.Float64bits(goal.Y))
	buf[24] = byte(model)
	return xxhash.Sum64(buf[:])
}
