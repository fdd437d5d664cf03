package system

import (
	"github.com/milk9111/simplezoom/common"
	"github.com/milk9111/simplezoom/config"
	"github.com/milk9111/simplezoom/ecs"
	"github.com/milk9111/simplezoom/ecs/component"
	"github.com/milk9111/simplezoom/zoom"
	"go.uber.org/zap"
)

type bindStatus int

const (
	bindSearching bindStatus = iota
	bindNoCamera
	bindBound
)

// CameraBinderSystem finds the named first-person camera and binds it to the
// zoom session. It must run before ZoomSystem.
type CameraBinderSystem struct {
	session *zoom.Session
	cfg     func() config.Config
	log     *zap.SugaredLogger

	entity   ecs.Entity
	rejected ecs.Entity
	status   bindStatus
}

func NewCameraBinderSystem(session *zoom.Session, cfg func() config.Config, log *zap.SugaredLogger) *CameraBinderSystem {
	return &CameraBinderSystem{
		session: session,
		cfg:     cfg,
		log:     common.OrNop(log).With("system", "camera_binder"),
	}
}

// Entity returns the bound camera entity, or 0.
func (s *CameraBinderSystem) Entity() ecs.Entity {
	return s.entity
}

func (s *CameraBinderSystem) Update(w *ecs.World) {
	if w == nil || s.session == nil {
		return
	}

	if s.session.Bound() {
		cam, ok := ecs.Get(w, s.entity, component.CameraComponent.Kind())
		if ok && cam == s.session.Camera {
			return
		}
		s.log.Infow("camera lost, searching again", "entity", s.entity)
		s.session.Unbind()
		s.entity = 0
		s.status = bindSearching
	}

	name := s.cfg().CameraName
	e, ok := ecs.FindByName(w, name)
	if !ok {
		if s.status != bindSearching {
			s.log.Infow("camera not found", "name", name)
		}
		s.status = bindSearching
		s.rejected = 0
		return
	}
	if e == s.rejected {
		return
	}

	cam, ok := ecs.Get(w, e, component.CameraComponent.Kind())
	if !ok {
		s.log.Warnw("found camera entity, but it has no camera component", "name", name, "entity", e)
		s.rejected = e
		s.status = bindNoCamera
		return
	}

	adopted := s.session.Bind(cam)
	s.entity = e
	s.rejected = 0
	s.status = bindBound
	s.log.Infow("camera bound", "name", name, "entity", e, "fov", s.session.Baseline)
	if adopted {
		s.log.Infow("baseline initialized from camera", "fov", s.session.Baseline)
	}
}
