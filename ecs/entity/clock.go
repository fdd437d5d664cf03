package entity

import (
	"fmt"

	"github.com/milk9111/simplezoom/ecs"
	"github.com/milk9111/simplezoom/ecs/component"
)

// NewClock spawns the TimeScale singleton running at normal speed.
func NewClock(w *ecs.World) (ecs.Entity, *component.TimeScale, error) {
	clock := ecs.CreateEntity(w)
	ts := &component.TimeScale{Scale: 1}
	if err := ecs.Add(w, clock, component.TimeScaleComponent.Kind(), ts); err != nil {
		return 0, nil, fmt.Errorf("clock: add time scale: %w", err)
	}
	return clock, ts, nil
}
