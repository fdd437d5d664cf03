package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

//go:embed zoom.yaml
var defaultYAML []byte

// Load reads the settings file at path, falling back to the embedded defaults
// when path is empty or does not exist, then applies SIMPLEZOOM_* environment
// overrides and validates the result.
func Load(path string) (Config, error) {
	data, err := read(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := decode(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: unmarshal %s: %w", displayName(path), err)
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse decodes a settings document on top of Default and validates it.
// Environment overrides are not applied.
func Parse(data []byte) (Config, error) {
	cfg, err := decode(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Decode overlays node onto base, for documents that embed settings under
// their own key.
func Decode(node *yaml.Node, base Config) (Config, error) {
	if node == nil || node.Kind == 0 {
		return base, base.Validate()
	}
	cfg := base
	if err := node.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decode(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	return cfg, nil
}

func read(path string) ([]byte, error) {
	if path == "" {
		return defaultYAML, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return defaultYAML, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	return data, nil
}

func displayName(path string) string {
	if path == "" {
		return "embedded zoom.yaml"
	}
	return path
}
