package field

import (
	"math"

	"github.com/zeusync/homing/internal/core/fault"
	"github.com/zeusync/homing/internal/core/geometry"
	"github.com/zeusync/homing/pkg/sequence"
)

// MaxPoints caps the number of grid points a single field may hold.
const MaxPoints = 1 << 22

// stepSlack keeps a bound reachable when (max-min)/step lands a rounding
// error short of an integer.
const stepSlack = 1e-9

// Resolution sets grid density either by step length or by point count per
// axis. Exactly one of the two must be given.
type Resolution struct {
	StepX  float64 `json:"step_x,omitempty" yaml:"step_x,omitempty"`
	StepY  float64 `json:"step_y,omitempty" yaml:"step_y,omitempty"`
	CountX int     `json:"count_x,omitempty" yaml:"count_x,omitempty"`
	CountY int     `json:"count_y,omitempty" yaml:"count_y,omitempty"`
}

func (r Resolution) byStep() bool { return r.StepX != 0 || r.StepY != 0 }

func (r Resolution) byCount() bool { return r.CountX != 0 || r.CountY != 0 }

// Grid is a rectangular sample region. Points run row by row from MinY
// upward, x ascending within a row.
type Grid struct {
	MinX       float64    `json:"min_x" yaml:"min_x"`
	MaxX       float64    `json:"max_x" yaml:"max_x"`
	MinY       float64    `json:"min_y" yaml:"min_y"`
	MaxY       float64    `json:"max_y" yaml:"max_y"`
	Resolution Resolution `json:"resolution" yaml:"resolution"`
}

// Validate reports malformed bounds or resolution as configuration errors.
func (g Grid) Validate() error {
	for _, v := range []float64{g.MinX, g.MaxX, g.MinY, g.MaxY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fault.Configuration("grid bounds must be finite")
		}
	}
	if g.MinX > g.MaxX || g.MinY > g.MaxY {
		return fault.Configuration("grid bounds are inverted: x [%v, %v], y [%v, %v]", g.MinX, g.MaxX, g.MinY, g.MaxY)
	}

	r := g.Resolution
	switch {
	case r.byStep() && r.byCount():
		return fault.Configuration("grid resolution takes steps or counts, not both")
	case r.byStep():
		if !(r.StepX > 0) || !(r.StepY > 0) || math.IsInf(r.StepX, 0) || math.IsInf(r.StepY, 0) {
			return fault.Configuration("grid steps must be positive, got (%v, %v)", r.StepX, r.StepY)
		}
	case r.byCount():
		if r.CountX < 1 || r.CountY < 1 {
			return fault.Configuration("grid counts must be at least 1, got (%d, %d)", r.CountX, r.CountY)
		}
	default:
		return fault.Configuration("grid resolution is missing")
	}

	nx, ny := g.dims()
	if nx*ny > MaxPoints {
		return fault.Configuration("grid of %.0f x %.0f points exceeds %d", nx, ny, MaxPoints)
	}
	return nil
}

// Dims returns the point count along each axis. It assumes a valid grid.
func (g Grid) Dims() (nx, ny int) {
	fx, fy := g.dims()
	return int(fx), int(fy)
}

func (g Grid) dims() (nx, ny float64) {
	r := g.Resolution
	if r.byCount() {
		return float64(r.CountX), float64(r.CountY)
	}
	return axisCount(g.MinX, g.MaxX, r.StepX), axisCount(g.MinY, g.MaxY, r.StepY)
}

// Size is the total number of grid points.
func (g Grid) Size() int {
	nx, ny := g.Dims()
	return nx * ny
}

// At returns the point in column ix and row iy. Coordinates are computed
// from the bounds, not accumulated.
func (g Grid) At(ix, iy int) geometry.Point {
	nx, ny := g.Dims()
	return g.at(ix, iy, nx, ny)
}

func (g Grid) at(ix, iy, nx, ny int) geometry.Point {
	byCount := g.Resolution.byCount()
	return geometry.Pt(
		axisAt(g.MinX, g.MaxX, g.Resolution.StepX, nx, ix, byCount),
		axisAt(g.MinY, g.MaxY, g.Resolution.StepY, ny, iy, byCount),
	)
}

// Points streams the grid in row order.
func (g Grid) Points() *sequence.Iterator[geometry.Point] {
	return sequence.FromSeq(func(yield func(geometry.Point) bool) {
		nx, ny := g.Dims()
		for iy := 0; iy < ny; iy++ {
			for ix := 0; ix < nx; ix++ {
				if !yield(g.at(ix, iy, nx, ny)) {
					return
				}
			}
		}
	})
}

func axisCount(lo, hi, step float64) float64 {
	return math.Floor((hi-lo)/step+stepSlack) + 1
}

func axisAt(lo, hi, step float64, n, i int, byCount bool) float64 {
	if !byCount {
		return lo + float64(i)*step
	}
	if n == 1 {
		return lo
	}
	if i == n-1 {
		return hi
	}
	return lo + float64(i)*(hi-lo)/float64(n-1)
}
