package main

import (
	"fmt"

	"github.com/benbjohnson/clock"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/simplezoom/common"
	"github.com/milk9111/simplezoom/config"
	"github.com/milk9111/simplezoom/ecs"
	"github.com/milk9111/simplezoom/ecs/component"
	"github.com/milk9111/simplezoom/ecs/entity"
	"github.com/milk9111/simplezoom/ecs/system"
	"github.com/milk9111/simplezoom/zoom"
	"go.uber.org/zap"
)

type gameOptions struct {
	ConfigPath  string
	CameraDelay int
	CameraFOV   float64
	SettingsFOV int
}

type Game struct {
	frames int
	opts   gameOptions
	log    *zap.SugaredLogger

	cfg     config.Config
	watcher *config.Watcher

	world     *ecs.World
	scheduler *ecs.Scheduler
	runner    *ecs.Runner
	session   *zoom.Session
	monitor   *system.PauseMonitor
	timeScale *component.TimeScale

	pause  *pauseMenu
	ui     *ebitenui.UI
	scene  *scene
	label  ecs.Entity
	camera ecs.Entity
	// frame on which the camera spawns when camera is 0
	spawnAt int
}

func NewGame(opts gameOptions, log *zap.SugaredLogger) (*Game, error) {
	log = common.OrNop(log)

	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		log.Warnw("using default zoom settings", "path", opts.ConfigPath, "error", err)
		cfg = config.Default()
	}

	g := &Game{
		opts:    opts,
		log:     log,
		cfg:     cfg,
		world:   ecs.NewWorld(),
		runner:  ecs.NewRunner(),
		session: zoom.NewSession(),
		scene:   newScene(),
		spawnAt: opts.CameraDelay,
	}

	if _, err := entity.NewPlayer(g.world); err != nil {
		return nil, err
	}
	_, ts, err := entity.NewClock(g.world)
	if err != nil {
		return nil, err
	}
	g.timeScale = ts

	snapshot := g.config
	g.scheduler = ecs.NewScheduler(
		system.NewInputSystem(newEbitenInput(), snapshot),
		system.NewCameraBinderSystem(g.session, snapshot, log),
		system.NewZoomSystem(g.session, snapshot, g.deltaTime),
	)

	g.monitor = system.NewPauseMonitor(g.runner, func() ecs.System {
		return system.NewSettingsWatcher(g.session, snapshot, clock.New(), log)
	}, log)
	g.runner.Start(g.monitor)

	g.pause = newPauseMenu(opts.SettingsFOV, func() { g.setPaused(false) })
	g.ui = g.pause.ui

	if opts.ConfigPath != "" {
		w, err := config.NewWatcher(opts.ConfigPath)
		if err != nil {
			log.Warnw("zoom settings hot reload disabled", "path", opts.ConfigPath, "error", err)
		} else {
			g.watcher = w
		}
	}

	return g, nil
}

func loadConfig(path string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if err := validateKeybind(cfg); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func (g *Game) config() config.Config {
	return g.cfg
}

// deltaTime is the scaled frame time in seconds.
func (g *Game) deltaTime() float64 {
	tps := ebiten.TPS()
	if tps <= 0 || g.timeScale == nil {
		return 0
	}
	return g.timeScale.Scale / float64(tps)
}

func (g *Game) Update() error {
	g.frames++

	g.reloadConfig()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.setPaused(!g.timeScale.Paused())
	}
	if !g.timeScale.Paused() && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.despawnCamera()
	}
	if g.camera == 0 && g.frames >= g.spawnAt {
		g.spawnCamera()
	}

	g.scheduler.Update(g.world)
	g.runner.Update(g.world)

	if g.timeScale.Paused() {
		g.ui.Update()
	}

	return nil
}

func (g *Game) reloadConfig() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path := <-g.watcher.Events:
			cfg, err := loadConfig(path)
			if err != nil {
				g.log.Warnw("keeping previous zoom settings", "path", path, "error", err)
				continue
			}
			g.cfg = cfg
			g.log.Infow("zoom settings reloaded", "path", path)
		case err := <-g.watcher.Errors:
			g.log.Warnw("zoom settings watcher", "error", err)
		default:
			return
		}
	}
}

func (g *Game) setPaused(paused bool) {
	if paused == g.timeScale.Paused() {
		return
	}
	if paused {
		g.timeScale.Scale = 0
		label, err := entity.NewSettingsLabel(g.world, g.cfg.SettingsLabel, g.pause.Source())
		if err != nil {
			g.log.Errorw("failed to create settings label", "error", err)
			return
		}
		g.label = label
		return
	}

	g.timeScale.Scale = 1
	if g.label != 0 {
		ecs.DestroyEntity(g.world, g.label)
		g.label = 0
	}
}

func (g *Game) spawnCamera() {
	camera, err := entity.NewFPSCamera(g.world, g.cfg.CameraName, g.opts.CameraFOV)
	if err != nil {
		g.log.Errorw("failed to spawn camera", "error", err)
		g.spawnAt = g.frames + g.opts.CameraDelay
		return
	}
	g.camera = camera
}

func (g *Game) despawnCamera() {
	if g.camera == 0 {
		return
	}
	ecs.DestroyEntity(g.world, g.camera)
	g.camera = 0
	g.spawnAt = g.frames + g.opts.CameraDelay
}

func (g *Game) Draw(screen *ebiten.Image) {
	status := "searching for camera"
	if g.session.Bound() {
		g.scene.Draw(screen, g.session.Camera.FieldOfView)
		status = fmt.Sprintf("FOV: %.1f  target: %.1f  baseline: %.1f  %s",
			g.session.Camera.FieldOfView, g.session.Target, g.session.Baseline, g.session.State())
	}

	mode := "hold"
	if g.cfg.ToggleMode {
		mode = "toggle"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f    %s\n[%s] zoom (%s)  wheel adjust  R respawn camera  Esc pause",
		ebiten.ActualFPS(), status, g.cfg.Keybind, mode))

	if g.timeScale.Paused() {
		g.ui.Draw(screen)
	}
}

// Close releases the config watcher and background tasks.
func (g *Game) Close() error {
	g.runner.Close()
	if g.watcher != nil {
		return g.watcher.Close()
	}
	return nil
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
