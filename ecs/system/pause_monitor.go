package system

import (
	"github.com/milk9111/simplezoom/common"
	"github.com/milk9111/simplezoom/ecs"
	"github.com/milk9111/simplezoom/ecs/component"
	"go.uber.org/zap"
)

// PauseMonitor is a task that watches the TimeScale singleton every frame and
// keeps exactly one settings watcher running while the game is paused.
type PauseMonitor struct {
	runner     *ecs.Runner
	newWatcher func() ecs.System
	log        *zap.SugaredLogger

	paused  bool
	watcher *ecs.TaskHandle
}

func NewPauseMonitor(runner *ecs.Runner, newWatcher func() ecs.System, log *zap.SugaredLogger) *PauseMonitor {
	return &PauseMonitor{
		runner:     runner,
		newWatcher: newWatcher,
		log:        common.OrNop(log).With("system", "pause_monitor"),
	}
}

// IsPaused reports whether the world's time scale is zero. A world without a
// TimeScale is running.
func IsPaused(w *ecs.World) bool {
	_, ts, ok := ecs.First(w, component.TimeScaleComponent.Kind())
	return ok && ts.Paused()
}

// WatcherActive reports whether a settings watcher is running.
func (m *PauseMonitor) WatcherActive() bool {
	return m.runner.Running(m.watcher)
}

func (m *PauseMonitor) Update(w *ecs.World) {
	paused := IsPaused(w)
	if paused == m.paused {
		return
	}
	m.paused = paused

	if paused {
		m.runner.Stop(m.watcher)
		m.watcher = m.runner.Start(m.newWatcher())
		m.log.Debugw("paused, watching settings")
		return
	}

	if m.watcher != nil {
		m.runner.Stop(m.watcher)
		m.watcher = nil
		m.log.Debugw("resumed, stopped watching settings")
	}
}
