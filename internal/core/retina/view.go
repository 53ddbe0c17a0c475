package retina

import (
	"math"

	"github.com/zeusync/homing/internal/core/fault"
	"github.com/zeusync/homing/internal/core/geometry"
	"github.com/zeusync/homing/internal/core/landmark"
)

// View is the set of sightings from one observer position. Sightings are
// index aligned with the landmark set that produced them.
type View struct {
	observer  geometry.Point
	sightings []Sighting
}

// Sample computes the view of every landmark in set from observer.
// An observer exactly on a landmark centre, or so close that the apparent
// size overflows, yields a degenerate geometry error naming that landmark.
func Sample(set landmark.Set, observer geometry.Point, model SizeModel) (View, error) {
	sightings := make([]Sighting, set.Len())
	for i := range sightings {
		l := set.At(i)
		d := l.DistanceTo(observer)
		if d == 0 {
			return View{}, fault.Degenerate("observer (%v, %v) coincides with landmark %d", observer.X, observer.Y, i).
				WithContext("landmark", i)
		}
		size := model.ApparentSize(l.Radius(), d)
		if math.IsInf(size, 0) || math.IsNaN(size) {
			return View{}, fault.Degenerate("landmark %d has no finite size from (%v, %v)", i, observer.X, observer.Y).
				WithContext("landmark", i)
		}
		sightings[i] = Sighting{
			Bearing:      l.BearingFrom(observer),
			ApparentSize: size,
		}
	}
	return View{observer: observer, sightings: sightings}, nil
}

func (v View) Observer() geometry.Point { return v.observer }
func (v View) Len() int { return len(v.sightings) }
func (v View) At(i int) Sighting { return v.sightings[i] }

// Sightings returns a copy of the sightings in landmark order.
func (v View) Sightings() []Sighting {
	out := make([]Sighting, len(v.sightings))
	copy(out, v.sightings)
	return out
}
