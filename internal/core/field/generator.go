package field

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/zeusync/homing/internal/core/fault"
	"github.com/zeusync/homing/internal/core/geometry"
	"github.com/zeusync/homing/internal/core/observability/log"
	"github.com/zeusync/homing/pkg/concurrent"
	"github.com/zeusync/homing/pkg/sequence"
)

// Config holds generator configuration
type Config struct {
	// Workers bounds the goroutines evaluating grid points. Zero means
	// GOMAXPROCS.
	Workers int
}

// DefaultConfig returns default generator configuration
func DefaultConfig() Config {
	return Config{Workers: 0}
}

// Generator evaluates an Estimator over every point of a grid.
type Generator struct {
	config Config
	logger log.Log
}

// NewGenerator creates a generator. A nil logger discards output.
func NewGenerator(config Config, logger log.Log) *Generator {
	if logger == nil {
		logger = log.NewNop()
	}
	return &Generator{config: config, logger: logger}
}

// Evaluate computes the outcome of every grid point in grid order.
// Degenerate points carry their error in the outcome. Any other error
// stops the run and is returned.
func (g *Generator) Evaluate(ctx context.Context, est Estimator, grid Grid) ([]Outcome, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	return g.evaluate(ctx, est, grid)
}

// evaluate expects a validated grid.
func (g *Generator) evaluate(ctx context.Context, est Estimator, grid Grid) ([]Outcome, error) {
	return concurrent.ParallelMap(ctx, grid.Points(), g.config.Workers,
		func(ctx context.Context, p geometry.Point) (Outcome, error) {
			v, err := est.HomingVector(p)
			switch {
			case err == nil:
				if !v.Finite() {
					return Outcome{}, fmt.Errorf("non-finite vector %v at (%v, %v)", v, p.X, p.Y)
				}
				return Outcome{Point: p, Vector: v}, nil
			case fault.IsDegenerate(err):
				return Outcome{Point: p, Err: err}, nil
			default:
				return Outcome{}, fmt.Errorf("grid point (%v, %v): %w", p.X, p.Y, err)
			}
		})
}

// Generate samples the homing vector over grid. Degenerate grid points are
// skipped and reported, so len(Samples) + len(Skipped) == grid.Size().
func (g *Generator) Generate(ctx context.Context, est Estimator, grid Grid) (*Field, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	s := est.Scene()
	f := &Field{
		RunID:       uuid.NewString(),
		Fingerprint: s.FingerprintHex(),
		Goal:        s.Goal(),
		Grid:        grid,
	}
	logger := g.logger.With(log.String("run_id", f.RunID), log.String("scene", f.Fingerprint))
	started := time.Now()
	logger.Debug("generating field", log.Int("points", grid.Size()), log.Int("landmarks", s.Landmarks().Len()))

	outcomes, err := g.evaluate(ctx, est, grid)
	if err != nil {
		logger.Error("field generation failed", log.Error(err))
		return nil, err
	}

	failed, ok := sequence.From(outcomes).Partition(func(o Outcome) bool { return o.Err != nil })
	for _, o := range failed {
		logger.Warn("skipping degenerate grid point",
			log.Float64("x", o.Point.X),
			log.Float64("y", o.Point.Y),
			log.Error(o.Err),
		)
	}
	f.Skipped = sequence.Map(sequence.From(failed), Outcome.skip).Collect()
	f.Samples = sequence.Map(sequence.From(ok), Outcome.sample).Collect()
	f.MeanAngularError, f.Evaluated = MeanAngularError(f.Goal, f.Samples)

	logger.Info("field generated",
		log.Int("samples", len(f.Samples)),
		log.Int("skipped", len(f.Skipped)),
		log.Float64("mean_angular_error", f.MeanAngularError),
		log.Duration("took", time.Since(started)),
	)
	return f, nil
}
