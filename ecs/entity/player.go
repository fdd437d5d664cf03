package entity

import (
	"fmt"

	"github.com/milk9111/simplezoom/ecs"
	"github.com/milk9111/simplezoom/ecs/component"
)

func NewPlayer(w *ecs.World) (ecs.Entity, error) {
	player := ecs.CreateEntity(w)
	if err := ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}

	if err := ecs.Add(w, player, component.ZoomInputComponent.Kind(), &component.ZoomInput{}); err != nil {
		return 0, fmt.Errorf("player: add zoom input: %w", err)
	}

	return player, nil
}
