package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/locomotion/internal/config"
	"github.com/Faultbox/locomotion/internal/locomotion"
)

func TestIsKeyPressedOnlyForKeyDown(t *testing.T) {
	in := New()
	in.events = append(in.events,
		Event{Type: EventKeyUp, Key: sdl.SCANCODE_W},
		Event{Type: EventKeyDown, Key: sdl.SCANCODE_ESCAPE},
	)

	assert.True(t, in.IsKeyPressed(sdl.SCANCODE_ESCAPE))
	assert.False(t, in.IsKeyPressed(sdl.SCANCODE_W), "a release is not a press")
	assert.False(t, in.IsKeyPressed(sdl.SCANCODE_SPACE))
}

func TestIsKeyDownBounds(t *testing.T) {
	in := New()
	in.keys[sdl.SCANCODE_A] = 1

	assert.True(t, in.IsKeyDown(sdl.SCANCODE_A))
	assert.False(t, in.IsKeyDown(sdl.SCANCODE_D))
	assert.False(t, in.IsKeyDown(sdl.SCANCODE_UNKNOWN))
	assert.False(t, in.IsKeyDown(sdl.Scancode(len(in.keys))))
}

func TestSampleMapsBindings(t *testing.T) {
	b, err := NewBindings(config.Default().Keys)
	require.NoError(t, err)
	assert.Equal(t, sdl.Scancode(sdl.SCANCODE_W), b.Forward)
	assert.Equal(t, sdl.Scancode(sdl.SCANCODE_ESCAPE), b.Quit)

	in := New()
	in.keys[b.Forward] = 1
	in.keys[b.Dance] = 1

	assert.Equal(t, locomotion.Keys{Forward: true, Dance: true}, in.Sample(b))
}

func TestNewBindingsRejectsUnknownName(t *testing.T) {
	keys := config.Default().Keys
	keys.Jump = "NoSuchKey"

	_, err := NewBindings(keys)
	assert.ErrorContains(t, err, "keys.jump")
}
