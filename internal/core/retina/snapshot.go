package retina

import (
	"fmt"

	"github.com/zeusync/homing/internal/core/geometry"
	"github.com/zeusync/homing/internal/core/landmark"
)

// Snapshot is the remembered view from the goal. It is taken once and only
// read afterwards.
type Snapshot struct {
	View
	model SizeModel
}

// TakeSnapshot records the view of set from goal. A landmark placed on the
// goal makes the snapshot undefined and is reported as degenerate geometry.
func TakeSnapshot(set landmark.Set, goal geometry.Point, model SizeModel) (Snapshot, error) {
	view, err := Sample(set, goal, model)
	if err != nil {
		return Snapshot{}, fmt.Errorf("snapshot at goal: %w", err)
	}
	return Snapshot{View: view, model: model}, nil
}

// Goal is the position the snapshot was taken from.
func (s Snapshot) Goal() geometry.Point { return s.observer }

// Model is the size model the snapshot was recorded with. Views compared
// against it must use the same model.
func (s Snapshot) Model() SizeModel { return s.model }
