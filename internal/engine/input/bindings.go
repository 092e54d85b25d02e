package input

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/locomotion/internal/config"
	"github.com/Faultbox/locomotion/internal/locomotion"
)

// Bindings maps controller actions to physical keys.
type Bindings struct {
	Forward   sdl.Scancode
	TurnLeft  sdl.Scancode
	TurnRight sdl.Scancode
	Jump      sdl.Scancode
	Dance     sdl.Scancode
	Quit      sdl.Scancode
}

// NewBindings resolves every key name in cfg. Unknown names are an error.
func NewBindings(cfg config.KeysConfig) (Bindings, error) {
	var b Bindings
	entries := []struct {
		action string
		name   string
		dst    *sdl.Scancode
	}{
		{"forward", cfg.Forward, &b.Forward},
		{"turn_left", cfg.TurnLeft, &b.TurnLeft},
		{"turn_right", cfg.TurnRight, &b.TurnRight},
		{"jump", cfg.Jump, &b.Jump},
		{"dance", cfg.Dance, &b.Dance},
		{"quit", cfg.Quit, &b.Quit},
	}
	for _, e := range entries {
		sc, err := Scancode(e.name)
		if err != nil {
			return Bindings{}, fmt.Errorf("keys.%s: %w", e.action, err)
		}
		*e.dst = sc
	}
	return b, nil
}

// Sample reads the controller keys from the current keyboard snapshot.
func (i *Input) Sample(b Bindings) locomotion.Keys {
	return locomotion.Keys{
		Forward:   i.IsKeyDown(b.Forward),
		TurnLeft:  i.IsKeyDown(b.TurnLeft),
		TurnRight: i.IsKeyDown(b.TurnRight),
		Jump:      i.IsKeyDown(b.Jump),
		Dance:     i.IsKeyDown(b.Dance),
	}
}
