package system

import (
	"github.com/milk9111/simplezoom/config"
	"github.com/milk9111/simplezoom/ecs"
	"github.com/milk9111/simplezoom/ecs/component"
	"github.com/milk9111/simplezoom/zoom"
)

// ZoomSystem ticks the zoom session with the player's ZoomInput. dt returns
// the scaled seconds elapsed this frame.
type ZoomSystem struct {
	session *zoom.Session
	cfg     func() config.Config
	dt      func() float64
}

func NewZoomSystem(session *zoom.Session, cfg func() config.Config, dt func() float64) *ZoomSystem {
	return &ZoomSystem{session: session, cfg: cfg, dt: dt}
}

func (s *ZoomSystem) Update(w *ecs.World) {
	if w == nil || !s.session.Bound() {
		return
	}

	var in zoom.Input
	if _, input, ok := ecs.First(w, component.ZoomInputComponent.Kind()); ok {
		in = zoom.Input{KeyDown: input.KeyDown, KeyHeld: input.KeyHeld, Scroll: input.Scroll}
	}

	dt := 0.0
	if s.dt != nil {
		dt = s.dt()
	}
	s.session.Tick(in, s.cfg(), dt)
}
