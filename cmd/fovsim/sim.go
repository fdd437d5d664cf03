package main

import (
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/milk9111/simplezoom/common"
	"github.com/milk9111/simplezoom/config"
	"github.com/milk9111/simplezoom/ecs"
	"github.com/milk9111/simplezoom/ecs/component"
	"github.com/milk9111/simplezoom/ecs/entity"
	"github.com/milk9111/simplezoom/ecs/system"
	"github.com/milk9111/simplezoom/zoom"
	"go.uber.org/zap"
)

// Row is the state after one simulated frame.
type Row struct {
	Tick     int
	Paused   bool
	KeyHeld  bool
	Scroll   float64
	Bound    bool
	State    zoom.State
	Target   float64
	FOV      float64
	Baseline float64
	Watching bool
}

// scriptedInput replays the current step's input.
type scriptedInput struct {
	step Step
}

func (s *scriptedInput) IsKeyDown(string) bool { return s.step.KeyDown }
func (s *scriptedInput) IsKeyHeld(string) bool { return s.step.KeyHeld }
func (s *scriptedInput) ScrollAxis() float64   { return s.step.Scroll }

// Simulator drives the zoom systems headlessly with a mock clock, in the same
// order as the game: input, camera binder, zoom, then background tasks.
type Simulator struct {
	cfg   config.Config
	frame time.Duration
	clk   *clock.Mock
	log   *zap.SugaredLogger

	world     *ecs.World
	session   *zoom.Session
	scheduler *ecs.Scheduler
	runner    *ecs.Runner
	monitor   *system.PauseMonitor
	input     *scriptedInput
	timeScale *component.TimeScale

	camera ecs.Entity
	label  ecs.Entity
	text   *component.StaticText
	tick   int
}

func NewSimulator(cfg config.Config, frame time.Duration, log *zap.SugaredLogger) (*Simulator, error) {
	s := &Simulator{
		cfg:     cfg,
		frame:   frame,
		clk:     clock.NewMock(),
		log:     common.OrNop(log),
		world:   ecs.NewWorld(),
		session: zoom.NewSession(),
		runner:  ecs.NewRunner(),
		input:   &scriptedInput{},
		text:    &component.StaticText{},
	}

	if _, err := entity.NewPlayer(s.world); err != nil {
		return nil, err
	}
	_, ts, err := entity.NewClock(s.world)
	if err != nil {
		return nil, err
	}
	s.timeScale = ts

	snapshot := func() config.Config { return s.cfg }
	s.scheduler = ecs.NewScheduler(
		system.NewInputSystem(s.input, snapshot),
		system.NewCameraBinderSystem(s.session, snapshot, s.log),
		system.NewZoomSystem(s.session, snapshot, func() float64 {
			return s.timeScale.Scale * s.frame.Seconds()
		}),
	)
	s.monitor = system.NewPauseMonitor(s.runner, func() ecs.System {
		return system.NewSettingsWatcher(s.session, snapshot, s.clk, s.log)
	}, s.log)
	s.runner.Start(s.monitor)

	return s, nil
}

// Session returns the zoom session being driven.
func (s *Simulator) Session() *zoom.Session {
	return s.session
}

// SpawnCamera replaces any camera with a new one at fov.
func (s *Simulator) SpawnCamera(fov float64) error {
	s.DespawnCamera()
	e, err := entity.NewFPSCamera(s.world, s.cfg.CameraName, fov)
	if err != nil {
		return err
	}
	s.camera = e
	return nil
}

func (s *Simulator) DespawnCamera() {
	if s.camera != 0 {
		ecs.DestroyEntity(s.world, s.camera)
		s.camera = 0
	}
}

func (s *Simulator) spawnDecoy() error {
	s.DespawnCamera()
	e, err := entity.NewDecoyCamera(s.world, s.cfg.CameraName)
	if err != nil {
		return err
	}
	s.camera = e
	return nil
}

func (s *Simulator) setLabel(text string) error {
	s.text.Value = text
	if s.label != 0 {
		return nil
	}
	e, err := entity.NewSettingsLabel(s.world, s.cfg.SettingsLabel, s.text)
	if err != nil {
		return err
	}
	s.label = e
	return nil
}

func (s *Simulator) hideLabel() {
	if s.label != 0 {
		ecs.DestroyEntity(s.world, s.label)
		s.label = 0
	}
}

func (s *Simulator) apply(step Step) error {
	if step.DespawnCamera {
		s.DespawnCamera()
	}
	if step.DecoyCamera {
		if err := s.spawnDecoy(); err != nil {
			return err
		}
	}
	if step.SpawnCamera != nil {
		if err := s.SpawnCamera(*step.SpawnCamera); err != nil {
			return err
		}
	}
	if step.HideLabel {
		s.hideLabel()
	}
	if step.Label != nil {
		if err := s.setLabel(*step.Label); err != nil {
			return err
		}
	}
	if step.Paused != nil {
		s.timeScale.Scale = 1
		if *step.Paused {
			s.timeScale.Scale = 0
		}
	}
	return nil
}

// Step runs step.frames() frames. World changes in step apply before the
// first of them.
func (s *Simulator) Step(step Step) ([]Row, error) {
	if err := s.apply(step); err != nil {
		return nil, fmt.Errorf("tick %d: %w", s.tick+1, err)
	}
	s.input.step = step

	rows := make([]Row, 0, step.frames())
	for i := 0; i < step.frames(); i++ {
		s.tick++
		s.scheduler.Update(s.world)
		s.runner.Update(s.world)
		s.clk.Add(s.frame + time.Duration(step.AdvanceMS)*time.Millisecond)
		rows = append(rows, s.row(step))
	}
	return rows, nil
}

func (s *Simulator) row(step Step) Row {
	r := Row{
		Tick:     s.tick,
		Paused:   s.timeScale.Paused(),
		KeyHeld:  step.KeyHeld,
		Scroll:   step.Scroll,
		Bound:    s.session.Bound(),
		State:    s.session.State(),
		Target:   s.session.Target,
		Baseline: s.session.Baseline,
		Watching: s.monitor.WatcherActive(),
	}
	if r.Bound {
		r.FOV = s.session.Camera.FieldOfView
	}
	return r
}

// Run plays every step of sc and returns one row per frame.
func Run(sc *Scenario, log *zap.SugaredLogger) ([]Row, error) {
	cfg, err := sc.Settings()
	if err != nil {
		return nil, err
	}
	sim, err := NewSimulator(cfg, sc.frame(), log)
	if err != nil {
		return nil, err
	}
	defer sim.runner.Close()

	if sc.CameraFOV != nil {
		if err := sim.SpawnCamera(*sc.CameraFOV); err != nil {
			return nil, err
		}
	}

	var rows []Row
	for _, step := range sc.Steps {
		out, err := sim.Step(step)
		if err != nil {
			return rows, err
		}
		rows = append(rows, out...)
	}
	return rows, nil
}
