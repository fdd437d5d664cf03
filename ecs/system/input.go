package system

import (
	"github.com/milk9111/simplezoom/config"
	"github.com/milk9111/simplezoom/ecs"
	"github.com/milk9111/simplezoom/ecs/component"
)

// InputSource is the host's keyboard and mouse wheel.
type InputSource interface {
	// IsKeyDown reports whether key went down this frame.
	IsKeyDown(key string) bool
	// IsKeyHeld reports whether key is currently held.
	IsKeyHeld(key string) bool
	// ScrollAxis returns the signed scroll wheel delta for this frame.
	ScrollAxis() float64
}

type InputSystem struct {
	source InputSource
	cfg    func() config.Config
}

func NewInputSystem(source InputSource, cfg func() config.Config) *InputSystem {
	return &InputSystem{source: source, cfg: cfg}
}

// Update samples the configured keybind and the scroll wheel once and copies
// the result to every ZoomInput component.
func (i *InputSystem) Update(w *ecs.World) {
	if w == nil || i.source == nil {
		return
	}

	key := i.cfg().Keybind
	sample := component.ZoomInput{
		KeyDown: i.source.IsKeyDown(key),
		KeyHeld: i.source.IsKeyHeld(key),
		Scroll:  i.source.ScrollAxis(),
	}

	ecs.ForEach(w, component.ZoomInputComponent.Kind(), func(e ecs.Entity, input *component.ZoomInput) {
		*input = sample
	})
}
