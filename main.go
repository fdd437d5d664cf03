package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/simplezoom/common"
)

type cli struct {
	Config      string  `help:"Zoom settings file; the built-in settings are used when it does not exist." default:"zoom.yaml" type:"path"`
	Debug       bool    `help:"Enable debug logging."`
	Monitor     bool    `short:"m" help:"Use the base monitor instead of the primary one."`
	CameraDelay int     `help:"Frames to wait before spawning the camera, and again after a respawn." default:"60"`
	CameraFOV   float64 `name:"camera-fov" help:"Field of view the camera spawns with." default:"70"`
	SettingsFOV int     `name:"settings-fov" help:"Initial field of view shown in the pause menu." default:"90"`
}

func main() {
	var c cli
	kong.Parse(&c,
		kong.Name("simplezoom"),
		kong.Description("First-person FOV zoom demo. Hold the keybind to zoom, scroll while zoomed to adjust, Esc to pause."),
		kong.UsageOnError(),
	)

	log, err := common.NewLogger(c.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if c.Monitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("simplezoom")

	game, err := NewGame(gameOptions{
		ConfigPath:  c.Config,
		CameraDelay: c.CameraDelay,
		CameraFOV:   c.CameraFOV,
		SettingsFOV: c.SettingsFOV,
	}, log)
	if err != nil {
		log.Fatalw("failed to create game", "error", err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Errorw("game exited", "error", err)
	}
}
