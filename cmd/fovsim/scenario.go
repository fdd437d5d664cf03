package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/milk9111/simplezoom/config"
	"gopkg.in/yaml.v3"
)

const defaultFrameMS = 16

// Scenario is a scripted run of the zoom systems.
type Scenario struct {
	// Config overrides the built-in zoom settings.
	Config yaml.Node `yaml:"config"`
	// FrameMS is the wall time of one frame.
	FrameMS int `yaml:"frame_ms"`
	// CameraFOV spawns the camera before the first frame when set.
	CameraFOV *float64 `yaml:"camera_fov"`
	Steps     []Step   `yaml:"steps"`
}

// Step describes one or more identical frames. Paused and Label persist
// until a later step changes them; input fields apply only to these frames.
type Step struct {
	Repeat  int     `yaml:"repeat"`
	KeyDown bool    `yaml:"key_down"`
	KeyHeld bool    `yaml:"key_held"`
	Scroll  float64 `yaml:"scroll"`

	Paused    *bool   `yaml:"paused"`
	Label     *string `yaml:"label"`
	HideLabel bool    `yaml:"hide_label"`

	// AdvanceMS adds extra wall time after each frame of the step.
	AdvanceMS int `yaml:"advance_ms"`

	SpawnCamera   *float64 `yaml:"spawn_camera"`
	DespawnCamera bool     `yaml:"despawn_camera"`
	// DecoyCamera spawns an entity with the camera name but no camera.
	DecoyCamera bool `yaml:"decoy_camera"`
}

func (s Step) frames() int {
	if s.Repeat <= 0 {
		return 1
	}
	return s.Repeat
}

// LoadScenario reads a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: load %s: %w", path, err)
	}
	sc, err := ParseScenario(data)
	if err != nil {
		return nil, fmt.Errorf("scenario: %s: %w", path, err)
	}
	return sc, nil
}

// ParseScenario decodes a scenario document.
func ParseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if sc.FrameMS < 0 {
		return nil, fmt.Errorf("frame_ms must not be negative, got %d", sc.FrameMS)
	}
	if sc.FrameMS == 0 {
		sc.FrameMS = defaultFrameMS
	}
	return &sc, nil
}

// Settings returns the zoom settings with the scenario's overrides applied.
func (sc *Scenario) Settings() (config.Config, error) {
	return config.Decode(&sc.Config, config.Default())
}

func (sc *Scenario) frame() time.Duration {
	return time.Duration(sc.FrameMS) * time.Millisecond
}
