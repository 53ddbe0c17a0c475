package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeusync/homing/internal/core/fault"
	"github.com/zeusync/homing/internal/core/geometry"
	"github.com/zeusync/homing/internal/core/homing"
	"github.com/zeusync/homing/internal/core/observability/log"
	"github.com/zeusync/homing/internal/core/retina"
)

func TestDefaultBuilds(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())

	setup, err := c.Build()
	require.NoError(t, err)
	assert.Equal(t, 3, setup.Scene.Landmarks().Len())
	assert.Equal(t, geometry.Pt(0, 0), setup.Scene.Goal())
	assert.Equal(t, 225, setup.Grid.Size())
	assert.Equal(t, log.LevelInfo, setup.LogLevel)

	comp, ok := setup.Estimator.(*homing.Computer)
	require.True(t, ok, "default matching is by index")
	assert.Equal(t, homing.DefaultConfig(), comp.Config())
}

func TestLoadFullDocument(t *testing.T) {
	doc := `
goal: {x: 1, y: -1}
landmarks:
  - {x: 4, y: 0, radius: 1}
region: {min_x: -2, max_x: 2, min_y: -2, max_y: 2}
resolution: {step_x: 0.5, step_y: 0.5}
homing:
  matching: segment
  scaling: proportional
  weights: {rotation: 2, radial: 1}
  normalize: false
  size_model: tangent
workers: 3
log_level: warn
`
	c, err := Load(strings.NewReader(doc))
	require.NoError(t, err)

	setup, err := c.Build()
	require.NoError(t, err)
	assert.Equal(t, 81, setup.Grid.Size())
	assert.Equal(t, 3, setup.Generator.Workers)
	assert.Equal(t, log.LevelWarn, setup.LogLevel)
	assert.Equal(t, retina.SizeTangent, setup.Scene.SizeModel())

	comp, ok := setup.Estimator.(*homing.SegmentComputer)
	require.True(t, ok)
	assert.Equal(t, homing.Config{
		Weights:   homing.Weights{Rotation: 2, Radial: 1},
		Scaling:   homing.ScaleProportional,
		Normalize: false,
	}, comp.Config())
}

func TestSegmentDefaults(t *testing.T) {
	c := Default()
	c.Homing.Matching = "Segment"
	setup, err := c.Build()
	require.NoError(t, err)
	comp, ok := setup.Estimator.(*homing.SegmentComputer)
	require.True(t, ok)
	assert.Equal(t, homing.DefaultSegmentConfig(), comp.Config())
}

func TestLoadFile(t *testing.T) {
	c, err := LoadFile(filepath.Join("testdata", "ring.yaml"))
	require.NoError(t, err)
	assert.Len(t, c.Landmarks, 4)
	assert.True(t, c.RequireLandmarks)

	setup, err := c.Build()
	require.NoError(t, err)
	assert.Equal(t, 441, setup.Grid.Size())
	assert.Equal(t, log.LevelDebug, setup.LogLevel)

	_, err = LoadFile(filepath.Join("testdata", "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Default().Marshal()
	require.NoError(t, err)
	c, err := Load(strings.NewReader(string(data)))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadRejects(t *testing.T) {
	cases := map[string]string{
		"empty":           ``,
		"unknown key":     "goal: {x: 0, y: 0}\ncolour: red\n",
		"bad yaml":        "landmarks: [",
		"zero radius":     base + "landmarks: [{x: 1, y: 1}]\n",
		"duplicate":       base + "landmarks: [{x: 1, y: 1, radius: 1}, {x: 1, y: 1, radius: 2}]\n",
		"no resolution":   "region: {min_x: 0, max_x: 1, min_y: 0, max_y: 1}\n",
		"bad matching":    base + "homing: {matching: nearest}\n",
		"bad scaling":     base + "homing: {scaling: cubic}\n",
		"bad size model":  base + "homing: {size_model: huge}\n",
		"negative weight": base + "homing: {weights: {rotation: -1, radial: 1}}\n",
		"zero weights":    base + "homing: {weights: {rotation: 0, radial: 0}}\n",
		"workers":         base + "workers: -1\n",
		"log level":       base + "log_level: loud\n",
		"need landmarks":  base + "require_landmarks: true\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(strings.NewReader(doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, fault.ErrConfiguration)
		})
	}
}

const base = "region: {min_x: 0, max_x: 1, min_y: 0, max_y: 1}\nresolution: {step_x: 1, step_y: 1}\n"

func TestEmptyLandmarksAllowed(t *testing.T) {
	c, err := Load(strings.NewReader(base))
	require.NoError(t, err)
	setup, err := c.Build()
	require.NoError(t, err)
	assert.Zero(t, setup.Scene.Landmarks().Len())
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(base), 0o644))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte(base), 0o644))
	require.NoError(t, os.WriteFile(path, []byte(base+"workers: 2\n"), 0o644))

	select {
	case got := <-w.Events:
		assert.Equal(t, path, got)
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no event for the watched file")
	}

	require.NoError(t, w.Close())
	require.Eventually(t, func() bool {
		select {
		case _, ok := <-w.Events:
			return !ok
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)
}

func TestWatcherReportsLastSaveOfBurst(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(base), 0o644))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	// a half written document followed shortly by the complete one
	require.NoError(t, os.WriteFile(path, []byte("region: ["), 0o644))
	time.Sleep(40 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(base+"workers: 3\n"), 0o644))
	saved := time.Now()

	select {
	case got := <-w.Events:
		assert.Equal(t, path, got)
		assert.GreaterOrEqual(t, time.Since(saved), DefaultDebounce/2, "event must follow the last save")
		c, err := LoadFile(got)
		require.NoError(t, err)
		assert.Equal(t, 3, c.Workers)
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("final save never reported")
	}

	select {
	case got := <-w.Events:
		t.Fatalf("burst reported twice: %s", got)
	case <-time.After(3 * DefaultDebounce):
	}
}

func TestWatcherCloseStopsEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(base), 0o644))
	w, err := NewWatcher(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte(base+"workers: 1\n"), 0o644))
	require.NoError(t, w.Close())
	require.Eventually(t, func() bool {
		select {
		case _, ok := <-w.Events:
			return !ok
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)
}
