package system

import (
	"testing"

	"github.com/milk9111/simplezoom/config"
	"github.com/milk9111/simplezoom/ecs"
	"github.com/milk9111/simplezoom/ecs/component"
	"github.com/stretchr/testify/require"
)

type fakeInput struct {
	down, held bool
	scroll     float64
	keys       []string
}

func (f *fakeInput) IsKeyDown(key string) bool {
	f.keys = append(f.keys, key)
	return f.down
}

func (f *fakeInput) IsKeyHeld(key string) bool { return f.held }

func (f *fakeInput) ScrollAxis() float64 { return f.scroll }

func snapshot(cfg config.Config) func() config.Config {
	return func() config.Config { return cfg }
}

func spawnCamera(t *testing.T, w *ecs.World, name string, fov float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.NameComponent.Kind(), &component.Name{Value: name}))
	require.NoError(t, ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{FieldOfView: fov}))
	return e
}

func spawnLabel(t *testing.T, w *ecs.World, name, text string) (ecs.Entity, *component.StaticText) {
	t.Helper()
	src := &component.StaticText{Value: text}
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.NameComponent.Kind(), &component.Name{Value: name}))
	require.NoError(t, ecs.Add(w, e, component.TextLabelComponent.Kind(), &component.TextLabel{Source: src}))
	return e, src
}

func spawnClock(t *testing.T, w *ecs.World) *component.TimeScale {
	t.Helper()
	ts := &component.TimeScale{Scale: 1}
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.TimeScaleComponent.Kind(), ts))
	return ts
}
