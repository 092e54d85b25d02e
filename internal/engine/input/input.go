// Package input handles SDL2 events and keyboard state.
package input

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

// EventType classifies the events the frame loop reacts to.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
}

// Input polls SDL once per frame and keeps a snapshot of key levels.
type Input struct {
	events []Event
	keys   []uint8 // Copy of the SDL keyboard state for this frame
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
		keys:   make([]uint8, sdl.NUM_SCANCODES),
	}
}

// Update drains pending SDL events and samples the keyboard.
// Returns true if the window was asked to close.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	quit := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Repeat != 0 {
				continue
			}
			if e.Type == sdl.KEYDOWN {
				i.events = append(i.events, Event{Type: EventKeyDown, Key: e.Keysym.Scancode})
			} else if e.Type == sdl.KEYUP {
				i.events = append(i.events, Event{Type: EventKeyUp, Key: e.Keysym.Scancode})
			}
		}
	}

	// SDL owns this slice and rewrites it on the next pump; keep our own copy
	// so every query in a frame sees the same levels.
	copy(i.keys, sdl.GetKeyboardState())
	return quit
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyDown reports whether the key was held when Update last ran.
func (i *Input) IsKeyDown(scancode sdl.Scancode) bool {
	idx := int(scancode)
	return idx > 0 && idx < len(i.keys) && i.keys[idx] != 0
}

// IsKeyPressed checks if a key went down this frame.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode {
			return true
		}
	}
	return false
}

// Scancode resolves an SDL key name such as "W", "Space" or "Escape".
func Scancode(name string) (sdl.Scancode, error) {
	sc := sdl.GetScancodeFromName(name)
	if sc == sdl.SCANCODE_UNKNOWN {
		return 0, fmt.Errorf("unknown key name %q", name)
	}
	return sc, nil
}
