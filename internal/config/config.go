// Package config reads a homing scene from YAML and builds the core types
// needed to generate its field.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/zeusync/homing/internal/core/fault"
	"github.com/zeusync/homing/internal/core/field"
	"github.com/zeusync/homing/internal/core/geometry"
	"github.com/zeusync/homing/internal/core/homing"
	"github.com/zeusync/homing/internal/core/landmark"
	"github.com/zeusync/homing/internal/core/observability/log"
	"github.com/zeusync/homing/internal/core/retina"
	"github.com/zeusync/homing/internal/core/scene"
	"gopkg.in/yaml.v3"
)

// Matching strategies
const (
	// MatchIndex pairs each landmark with its own remembered sighting.
	MatchIndex = "index"
	// MatchSegment pairs panorama segments by nearest bearing.
	MatchSegment = "segment"
)

// Config is a scene document.
type Config struct {
	Goal             geometry.Point   `json:"goal" yaml:"goal"`
	Landmarks        []Landmark       `json:"landmarks" yaml:"landmarks"`
	Region           Region           `json:"region" yaml:"region"`
	Resolution       field.Resolution `json:"resolution" yaml:"resolution"`
	Homing           Homing           `json:"homing" yaml:"homing"`
	RequireLandmarks bool             `json:"require_landmarks,omitempty" yaml:"require_landmarks,omitempty"`
	Workers          int              `json:"workers,omitempty" yaml:"workers,omitempty"`
	LogLevel         string           `json:"log_level,omitempty" yaml:"log_level,omitempty"`
}

// Landmark describes one circular landmark.
type Landmark struct {
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Radius float64 `json:"radius" yaml:"radius"`
}

// Region is the rectangle the field is sampled over.
type Region struct {
	MinX float64 `json:"min_x" yaml:"min_x"`
	MaxX float64 `json:"max_x" yaml:"max_x"`
	MinY float64 `json:"min_y" yaml:"min_y"`
	MaxY float64 `json:"max_y" yaml:"max_y"`
}

// Homing selects and tunes the homing vector computer. Unset fields take the
// defaults of the chosen matching strategy.
type Homing struct {
	Matching  string          `json:"matching,omitempty" yaml:"matching,omitempty"`
	Scaling   string          `json:"scaling,omitempty" yaml:"scaling,omitempty"`
	Weights   *homing.Weights `json:"weights,omitempty" yaml:"weights,omitempty"`
	Normalize *bool           `json:"normalize,omitempty" yaml:"normalize,omitempty"`
	SizeModel string          `json:"size_model,omitempty" yaml:"size_model,omitempty"`
}

// Setup is a validated scene ready for field generation.
type Setup struct {
	Scene     *scene.Scene
	Grid      field.Grid
	Estimator field.Estimator
	Generator field.Config
	LogLevel  log.Level
}

// Default returns the classic three landmark scene with the goal at the
// origin, sampled at unit steps over [-7, 7] on both axes.
func Default() *Config {
	return &Config{
		Goal: geometry.Pt(0, 0),
		Landmarks: []Landmark{
			{X: 3.5, Y: 2, Radius: 0.5},
			{X: 3.5, Y: -2, Radius: 0.5},
			{X: 0, Y: -4, Radius: 0.5},
		},
		Region:     Region{MinX: -7, MaxX: 7, MinY: -7, MaxY: 7},
		Resolution: field.Resolution{StepX: 1, StepY: 1},
		Homing:     Homing{Matching: MatchIndex},
		LogLevel:   "info",
	}
}

// Load decodes and validates a YAML scene document. Unknown keys are
// rejected.
func Load(r io.Reader) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fault.Configuration("scene document is empty")
		}
		return nil, fault.New(fault.CodeConfiguration, "decode scene", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadFile reads a scene document from path.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Marshal encodes the document as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Grid returns the sample grid described by Region and Resolution.
func (c *Config) Grid() field.Grid {
	return field.Grid{
		MinX:       c.Region.MinX,
		MaxX:       c.Region.MaxX,
		MinY:       c.Region.MinY,
		MaxY:       c.Region.MaxY,
		Resolution: c.Resolution,
	}
}

// Validate checks the whole document without building the scene snapshots.
// Every failure is a configuration error.
func (c *Config) Validate() error {
	_, err := c.resolve()
	return err
}

// Build validates the document and constructs the scene, grid and computer.
func (c *Config) Build() (*Setup, error) {
	r, err := c.resolve()
	if err != nil {
		return nil, err
	}

	s, err := scene.New(r.landmarks, c.Goal, r.scene)
	if err != nil {
		return nil, err
	}

	var est field.Estimator
	if r.matching == MatchSegment {
		est, err = homing.NewSegmentComputer(s, r.homing)
	} else {
		est, err = homing.NewComputer(s, r.homing)
	}
	if err != nil {
		return nil, err
	}

	return &Setup{
		Scene:     s,
		Grid:      r.grid,
		Estimator: est,
		Generator: field.Config{Workers: c.Workers},
		LogLevel:  r.level,
	}, nil
}

type resolved struct {
	landmarks landmark.Set
	scene     scene.Options
	grid      field.Grid
	matching  string
	homing    homing.Config
	level     log.Level
}

func (c *Config) resolve() (resolved, error) {
	var r resolved

	if !c.Goal.Finite() {
		return r, fault.Configuration("goal (%v, %v) is not finite", c.Goal.X, c.Goal.Y)
	}

	items := make([]landmark.Landmark, 0, len(c.Landmarks))
	for i, l := range c.Landmarks {
		lm, err := landmark.New(geometry.Pt(l.X, l.Y), l.Radius)
		if err != nil {
			return r, fmt.Errorf("landmarks[%d]: %w", i, err)
		}
		items = append(items, lm)
	}
	set, err := landmark.NewSet(items...)
	if err != nil {
		return r, err
	}
	if c.RequireLandmarks && set.Len() == 0 {
		return r, fault.Configuration("scene needs at least one landmark")
	}
	r.landmarks = set

	r.grid = c.Grid()
	if err = r.grid.Validate(); err != nil {
		return r, err
	}

	if r.scene, err = c.sceneOptions(); err != nil {
		return r, err
	}
	if r.matching, r.homing, err = c.Homing.resolve(); err != nil {
		return r, err
	}

	if c.Workers < 0 {
		return r, fault.Configuration("workers must not be negative, got %d", c.Workers)
	}
	if r.level, err = parseLevel(c.LogLevel); err != nil {
		return r, err
	}
	return r, nil
}

func (c *Config) sceneOptions() (scene.Options, error) {
	model, err := retina.ParseSizeModel(c.Homing.SizeModel)
	if err != nil {
		return scene.Options{}, fault.New(fault.CodeConfiguration, "homing.size_model", err)
	}
	return scene.Options{SizeModel: model, RequireLandmarks: c.RequireLandmarks}, nil
}

func (h Homing) resolve() (string, homing.Config, error) {
	matching := strings.ToLower(strings.TrimSpace(h.Matching))
	var cfg homing.Config
	switch matching {
	case "", MatchIndex:
		matching = MatchIndex
		cfg = homing.DefaultConfig()
	case MatchSegment:
		cfg = homing.DefaultSegmentConfig()
	default:
		return "", cfg, fault.Configuration("homing.matching must be %q or %q, got %q", MatchIndex, MatchSegment, h.Matching)
	}

	if h.Scaling != "" {
		s, err := homing.ParseScaling(h.Scaling)
		if err != nil {
			return "", cfg, fault.New(fault.CodeConfiguration, "homing.scaling", err)
		}
		cfg.Scaling = s
	}
	if h.Weights != nil {
		cfg.Weights = *h.Weights
	}
	if h.Normalize != nil {
		cfg.Normalize = *h.Normalize
	}
	if err := cfg.Validate(); err != nil {
		return "", cfg, fmt.Errorf("homing: %w", err)
	}
	return matching, cfg, nil
}

func parseLevel(name string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "info", "debug", "warn", "warning", "error":
		return log.ParseLevel(strings.ToLower(strings.TrimSpace(name))), nil
	default:
		return log.LevelInfo, fault.Configuration("unknown log_level %q", name)
	}
}
