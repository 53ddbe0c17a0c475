package scene

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeusync/homing/internal/core/fault"
	"github.com/zeusync/homing/internal/core/geometry"
	"github.com/zeusync/homing/internal/core/landmark"
	"github.com/zeusync/homing/internal/core/retina"
)

func threeLandmarks(t *testing.T) landmark.Set {
	t.Helper()
	set, err := landmark.NewSet(
		landmark.MustNew(3.5, 2, 0.5),
		landmark.MustNew(3.5, -2, 0.5),
		landmark.MustNew(0, -4, 0.5),
	)
	require.NoError(t, err)
	return set
}

func TestNewScene(t *testing.T) {
	s, err := New(threeLandmarks(t), geometry.Pt(0, 0), Options{})
	require.NoError(t, err)

	assert.Equal(t, geometry.Pt(0, 0), s.Goal())
	assert.Equal(t, 3, s.Landmarks().Len())
	assert.Equal(t, 3, s.Snapshot().Len())
	assert.Equal(t, s.Goal(), s.Snapshot().Goal())
	assert.Equal(t, 6, s.Panorama().Len())
	assert.Equal(t, retina.SizeArctan, s.SizeModel())
	assert.Len(t, s.FingerprintHex(), 16)
}

func TestSceneFingerprint(t *testing.T) {
	a, err := New(threeLandmarks(t), geometry.Pt(0, 0), Options{})
	require.NoError(t, err)
	b, err := New(threeLandmarks(t), geometry.Pt(0, 0), Options{})
	require.NoError(t, err)
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	moved, err := New(threeLandmarks(t), geometry.Pt(1, 0), Options{})
	require.NoError(t, err)
	assert.NotEqual(t, a.Fingerprint(), moved.Fingerprint())

	model, err := New(threeLandmarks(t), geometry.Pt(0, 0), Options{SizeModel: retina.SizeTangent})
	require.NoError(t, err)
	assert.NotEqual(t, a.Fingerprint(), model.Fingerprint())
}

func TestSceneErrors(t *testing.T) {
	empty, err := landmark.NewSet()
	require.NoError(t, err)

	s, err := New(empty, geometry.Pt(0, 0), Options{})
	require.NoError(t, err)
	assert.Zero(t, s.Snapshot().Len())

	_, err = New(empty, geometry.Pt(0, 0), Options{RequireLandmarks: true})
	require.ErrorIs(t, err, fault.ErrConfiguration)

	_, err = New(threeLandmarks(t), geometry.Pt(math.NaN(), 0), Options{})
	require.ErrorIs(t, err, fault.ErrConfiguration)

	_, err = New(threeLandmarks(t), geometry.Pt(0, -4), Options{})
	require.ErrorIs(t, err, fault.ErrDegenerateGeometry)
}
