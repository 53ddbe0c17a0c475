package retina

import (
	"math"
	"sort"

	"github.com/zeusync/homing/internal/core/fault"
	"github.com/zeusync/homing/internal/core/geometry"
	"github.com/zeusync/homing/internal/core/landmark"
)

// Segment is an arc of the panoramic image. Dark segments are one or more
// overlapping landmarks, light segments are the gaps between them.
type Segment struct {
	// Bisector is the arc centre in [0, 2π).
	Bisector float64 `json:"bisector" yaml:"bisector"`
	Width    float64 `json:"width" yaml:"width"`
	Dark     bool    `json:"dark" yaml:"dark"`
}

// Panorama is a full-circle image of alternating dark and light segments,
// ordered by bisector. Widths sum to 2π unless no landmark is visible.
type Panorama struct {
	observer geometry.Point
	segments []Segment
}

type arc struct{ start, end float64 }

// CapturePanorama projects every landmark in set onto the eye at observer.
// Landmarks that enclose the observer are not visible. An observer exactly
// on a landmark centre is degenerate.
func CapturePanorama(set landmark.Set, observer geometry.Point) (Panorama, error) {
	arcs := make([]arc, 0, set.Len())
	for i := 0; i < set.Len(); i++ {
		l := set.At(i)
		d := l.DistanceTo(observer)
		if d == 0 {
			return Panorama{}, fault.Degenerate("observer (%v, %v) coincides with landmark %d", observer.X, observer.Y, i).
				WithContext("landmark", i)
		}
		if d < l.Radius() {
			continue
		}
		width := SizeTangent.ApparentSize(l.Radius(), d)
		start := geometry.WrapAngle(l.BearingFrom(observer) - width/2)
		arcs = append(arcs, arc{start: start, end: start + width})
	}

	p := Panorama{observer: observer}
	if len(arcs) == 0 {
		return p, nil
	}

	merged := mergeArcs(arcs)
	if len(merged) == 1 && merged[0].end-merged[0].start >= geometry.TwoPi {
		p.segments = []Segment{{
			Bisector: math.Pi,
			Width:    geometry.TwoPi,
			Dark:     true,
		}}
		return p, nil
	}

	segments := make([]Segment, 0, 2*len(merged))
	for i, a := range merged {
		segments = append(segments, segmentOf(a.start, a.end, true))

		next := merged[(i+1)%len(merged)].start
		if i == len(merged)-1 {
			next += geometry.TwoPi
		}
		if next > a.end {
			segments = append(segments, segmentOf(a.end, next, false))
		}
	}
	sort.Slice(segments, func(i, j int) bool { return segments[i].Bisector < segments[j].Bisector })
	p.segments = segments
	return p, nil
}

// mergeArcs joins overlapping or touching arcs, including across the 0/2π
// seam. Input starts lie in [0, 2π).
func mergeArcs(arcs []arc) []arc {
	sort.Slice(arcs, func(i, j int) bool { return arcs[i].start < arcs[j].start })

	merged := []arc{arcs[0]}
	for _, a := range arcs[1:] {
		last := &merged[len(merged)-1]
		if a.start <= last.end {
			last.end = math.Max(last.end, a.end)
			continue
		}
		merged = append(merged, a)
	}

	// the last arc may run past 2π into the first ones
	for len(merged) > 1 {
		last := &merged[len(merged)-1]
		first := merged[0]
		if last.end < first.start+geometry.TwoPi {
			break
		}
		last.end = math.Max(last.end, first.end+geometry.TwoPi)
		merged = merged[1:]
	}
	if len(merged) == 1 && merged[0].end-merged[0].start >= geometry.TwoPi {
		merged[0] = arc{start: 0, end: geometry.TwoPi}
	}
	return merged
}

func segmentOf(start, end float64, dark bool) Segment {
	return Segment{
		Bisector: geometry.WrapAngle((start + end) / 2),
		Width:    end - start,
		Dark:     dark,
	}
}

func (p Panorama) Observer() geometry.Point { return p.observer }
func (p Panorama) Len() int { return len(p.segments) }
func (p Panorama) At(i int) Segment { return p.segments[i] }

// Segments returns a copy of the segments in bisector order.
func (p Panorama) Segments() []Segment {
	out := make([]Segment, len(p.segments))
	copy(out, p.segments)
	return out
}

// TotalWidth sums the segment widths.
func (p Panorama) TotalWidth() float64 {
	var sum float64
	for _, s := range p.segments {
		sum += s.Width
	}
	return sum
}

// Nearest returns the index of the segment with the given darkness whose
// bisector is angularly closest to bearing, or -1 if there is none.
func (p Panorama) Nearest(bearing float64, dark bool) int {
	best, bestDist := -1, math.Inf(1)
	for i, s := range p.segments {
		if s.Dark != dark {
			continue
		}
		if d := math.Abs(geometry.AngleDiff(s.Bisector, bearing)); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
