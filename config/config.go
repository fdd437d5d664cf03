package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is an immutable snapshot of the zoom settings. Systems receive it by
// value once per tick.
type Config struct {
	ZoomAmount        float64 `yaml:"zoom_amount"        env:"SIMPLEZOOM_ZOOM_AMOUNT"`
	Keybind           string  `yaml:"keybind"            env:"SIMPLEZOOM_KEYBIND"`
	ToggleMode        bool    `yaml:"toggle_mode"        env:"SIMPLEZOOM_TOGGLE_MODE"`
	ZoomSpeed         float64 `yaml:"zoom_speed"         env:"SIMPLEZOOM_ZOOM_SPEED"`
	EnableAnimation   bool    `yaml:"enable_animation"   env:"SIMPLEZOOM_ENABLE_ANIMATION"`
	ScrollSensitivity float64 `yaml:"scroll_sensitivity" env:"SIMPLEZOOM_SCROLL_SENSITIVITY"`
	MinCap            float64 `yaml:"min_cap"            env:"SIMPLEZOOM_MIN_CAP"`
	MaxCap            float64 `yaml:"max_cap"            env:"SIMPLEZOOM_MAX_CAP"`

	// CameraName is the entity name the camera binder looks for.
	CameraName string `yaml:"camera_name" env:"SIMPLEZOOM_CAMERA_NAME"`
	// SettingsLabel is the entity name of the settings menu FOV text.
	SettingsLabel        string        `yaml:"settings_label"         env:"SIMPLEZOOM_SETTINGS_LABEL"`
	SettingsPollInterval time.Duration `yaml:"settings_poll_interval" env:"SIMPLEZOOM_SETTINGS_POLL_INTERVAL"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		ZoomAmount:           20,
		Keybind:              "C",
		ToggleMode:           false,
		ZoomSpeed:            0.08,
		EnableAnimation:      true,
		ScrollSensitivity:    5,
		MinCap:               0.2,
		MaxCap:               130,
		CameraName:           "FPSCamera",
		SettingsLabel:        "FOVValueLabel",
		SettingsPollInterval: 500 * time.Millisecond,
	}
}

// Validate reports the first setting that the zoom systems cannot work with.
func (c Config) Validate() error {
	switch {
	case c.Keybind == "":
		return fmt.Errorf("%w: keybind is empty", ErrInvalid)
	case c.ZoomAmount <= 0:
		return fmt.Errorf("%w: zoom_amount %v must be positive", ErrInvalid, c.ZoomAmount)
	case c.ZoomSpeed < 0:
		return fmt.Errorf("%w: zoom_speed %v must not be negative", ErrInvalid, c.ZoomSpeed)
	case c.ScrollSensitivity < 0:
		return fmt.Errorf("%w: scroll_sensitivity %v must not be negative", ErrInvalid, c.ScrollSensitivity)
	case c.MinCap <= 0:
		return fmt.Errorf("%w: min_cap %v must be positive", ErrInvalid, c.MinCap)
	case c.MaxCap >= 180:
		return fmt.Errorf("%w: max_cap %v must be below 180", ErrInvalid, c.MaxCap)
	case c.MinCap > c.MaxCap:
		return fmt.Errorf("%w: min_cap %v is above max_cap %v", ErrInvalid, c.MinCap, c.MaxCap)
	case c.CameraName == "":
		return fmt.Errorf("%w: camera_name is empty", ErrInvalid)
	case c.SettingsLabel == "":
		return fmt.Errorf("%w: settings_label is empty", ErrInvalid)
	case c.SettingsPollInterval <= 0:
		return fmt.Errorf("%w: settings_poll_interval %v must be positive", ErrInvalid, c.SettingsPollInterval)
	}
	return nil
}
