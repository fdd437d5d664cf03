package entity

import (
	"fmt"

	"github.com/milk9111/simplezoom/ecs"
	"github.com/milk9111/simplezoom/ecs/component"
)

// NewSettingsLabel spawns a named entity exposing source as a TextLabel.
func NewSettingsLabel(w *ecs.World, name string, source component.TextSource) (ecs.Entity, error) {
	if source == nil {
		return 0, fmt.Errorf("settings label: %w", component.ErrNilComponent)
	}

	label := ecs.CreateEntity(w)
	if err := ecs.Add(w, label, component.NameComponent.Kind(), &component.Name{Value: name}); err != nil {
		return 0, fmt.Errorf("settings label: add name: %w", err)
	}
	if err := ecs.Add(w, label, component.TextLabelComponent.Kind(), &component.TextLabel{Source: source}); err != nil {
		return 0, fmt.Errorf("settings label: add text label: %w", err)
	}
	return label, nil
}
