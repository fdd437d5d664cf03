package entity

import (
	"fmt"

	"github.com/milk9111/simplezoom/ecs"
	"github.com/milk9111/simplezoom/ecs/component"
)

// NewFPSCamera spawns a named first-person camera with the given vertical FOV.
func NewFPSCamera(w *ecs.World, name string, fov float64) (ecs.Entity, error) {
	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}

	if err := ecs.Add(w, camera, component.NameComponent.Kind(), &component.Name{Value: name}); err != nil {
		return 0, fmt.Errorf("camera: add name: %w", err)
	}

	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{FieldOfView: fov}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}

	return camera, nil
}

// NewDecoyCamera spawns a camera-tagged entity carrying name but no Camera
// capability.
func NewDecoyCamera(w *ecs.World, name string) (ecs.Entity, error) {
	decoy := ecs.CreateEntity(w)
	if err := ecs.Add(w, decoy, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("decoy camera: add camera tag: %w", err)
	}
	if err := ecs.Add(w, decoy, component.NameComponent.Kind(), &component.Name{Value: name}); err != nil {
		return 0, fmt.Errorf("decoy camera: add name: %w", err)
	}
	return decoy, nil
}
