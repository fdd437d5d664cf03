package zoom

import (
	"github.com/milk9111/simplezoom/config"
	"github.com/milk9111/simplezoom/ecs/component"
	"github.com/samber/lo"
)

// DefaultBaseline is the baseline FOV used until a camera is bound or the
// settings menu reports a value.
const DefaultBaseline = 75.0

// scrollFactor scales a scroll reading relative to the current target.
const scrollFactor = 0.4

// State is the zoom state of a session.
type State int

const (
	Idle State = iota
	Zoomed
)

func (s State) String() string {
	if s == Zoomed {
		return "zoomed"
	}
	return "idle"
}

// Input is one frame of keybind and scroll state.
type Input struct {
	KeyDown bool
	KeyHeld bool
	Scroll  float64
}

// Session is the process-wide zoom state.
//
// Camera and Baseline are written by Bind/Unbind and PublishBaseline; Target,
// Zoomed and Velocity are only written by Tick (and reset by Bind).
type Session struct {
	Camera   *component.Camera
	Baseline float64
	Target   float64
	Zoomed   bool
	Velocity float64

	initialized bool
	baselineSet bool
}

func NewSession() *Session {
	return &Session{Baseline: DefaultBaseline, Target: DefaultBaseline}
}

// Bound reports whether a camera is bound and the session may tick.
func (s *Session) Bound() bool {
	return s != nil && s.Camera != nil && s.initialized
}

// BaselineSet reports whether Baseline came from a camera or the settings
// menu rather than DefaultBaseline.
func (s *Session) BaselineSet() bool {
	return s != nil && s.baselineSet
}

// State returns Zoomed or Idle.
func (s *Session) State() State {
	if s != nil && s.Zoomed {
		return Zoomed
	}
	return Idle
}

// Bind attaches cam. The first bind of the process adopts the camera's FOV as
// the baseline; later binds keep the baseline and push it to the camera. The
// session starts Idle with Target at the baseline. It reports whether the
// baseline was adopted from cam.
func (s *Session) Bind(cam *component.Camera) bool {
	if cam == nil {
		return false
	}
	adopted := false
	if !s.baselineSet {
		s.Baseline = cam.FieldOfView
		s.baselineSet = true
		adopted = true
	}
	cam.FieldOfView = s.Baseline
	s.Camera = cam
	s.Target = s.Baseline
	s.Zoomed = false
	s.Velocity = 0
	s.initialized = true
	return adopted
}

// Unbind drops the camera handle. The baseline is kept.
func (s *Session) Unbind() {
	s.Camera = nil
	s.initialized = false
	s.Velocity = 0
}

// PublishBaseline records a baseline read from the settings menu. With a
// camera bound the target follows it, and with animation disabled the camera
// jumps to it immediately.
func (s *Session) PublishBaseline(fov float64, cfg config.Config) {
	s.Baseline = fov
	s.baselineSet = true
	if s.Camera == nil {
		return
	}
	s.Target = fov
	if !cfg.EnableAnimation {
		s.Camera.FieldOfView = fov
	}
}

// Tick advances the session by one frame of dt scaled seconds. It does
// nothing while unbound.
func (s *Session) Tick(in Input, cfg config.Config, dt float64) {
	if !s.Bound() {
		return
	}

	if cfg.ToggleMode {
		if in.KeyDown {
			s.setZoomed(!s.Zoomed, cfg)
		}
	} else if in.KeyHeld != s.Zoomed {
		s.setZoomed(in.KeyHeld, cfg)
	}

	// Scroll is applied after the mode branch, so a zoom-in and a scroll can
	// combine in one frame.
	if in.KeyHeld && in.Scroll != 0 {
		s.Target -= in.Scroll * cfg.ScrollSensitivity * s.Target * scrollFactor
	}

	s.Target = lo.Clamp(s.Target, cfg.MinCap, cfg.MaxCap)

	if cfg.EnableAnimation {
		s.Camera.FieldOfView = SmoothDamp(s.Camera.FieldOfView, s.Target, &s.Velocity, cfg.ZoomSpeed, dt)
	} else {
		s.Camera.FieldOfView = s.Target
	}
}

func (s *Session) setZoomed(zoomed bool, cfg config.Config) {
	s.Zoomed = zoomed
	if zoomed {
		s.Target = cfg.ZoomAmount
	} else {
		s.Target = s.Baseline
	}
}
