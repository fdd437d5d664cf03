package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/simplezoom/config"
)

// wheelScale maps Ebiten wheel notches onto a scroll axis where one notch is
// roughly 0.1.
const wheelScale = 0.1

// ebitenInput adapts Ebiten's keyboard and wheel to system.InputSource. Key
// names are resolved with ebiten.Key's text form, e.g. "C" or "ShiftLeft".
type ebitenInput struct {
	keys map[string]ebiten.Key
}

func newEbitenInput() *ebitenInput {
	return &ebitenInput{keys: make(map[string]ebiten.Key)}
}

func parseKey(name string) (ebiten.Key, error) {
	var key ebiten.Key
	if err := key.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("input: parse key %q: %w", name, err)
	}
	return key, nil
}

// validateKeybind checks that the configured keybind names an Ebiten key.
func validateKeybind(cfg config.Config) error {
	if _, err := parseKey(cfg.Keybind); err != nil {
		return fmt.Errorf("%w: keybind: %v", config.ErrInvalid, err)
	}
	return nil
}

func (i *ebitenInput) key(name string) (ebiten.Key, bool) {
	if k, ok := i.keys[name]; ok {
		return k, true
	}
	k, err := parseKey(name)
	if err != nil {
		return 0, false
	}
	i.keys[name] = k
	return k, true
}

func (i *ebitenInput) IsKeyDown(name string) bool {
	k, ok := i.key(name)
	return ok && inpututil.IsKeyJustPressed(k)
}

func (i *ebitenInput) IsKeyHeld(name string) bool {
	k, ok := i.key(name)
	return ok && ebiten.IsKeyPressed(k)
}

func (i *ebitenInput) ScrollAxis() float64 {
	_, wy := ebiten.Wheel()
	return wy * wheelScale
}
