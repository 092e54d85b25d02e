package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks values that would otherwise fail at runtime.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Graphics.Width, c.Graphics.Height)
	}

	ctl := c.Controller
	if ctl.MoveSpeed < 0 {
		return fmt.Errorf("%w: controller.move_speed must be >= 0, got %v", ErrInvalid, ctl.MoveSpeed)
	}
	if ctl.TurnDuration <= 0 {
		return fmt.Errorf("%w: controller.turn_duration must be > 0, got %v", ErrInvalid, ctl.TurnDuration)
	}
	if ctl.TurnAngleDeg <= 0 {
		return fmt.Errorf("%w: controller.turn_angle_deg must be > 0, got %v", ErrInvalid, ctl.TurnAngleDeg)
	}
	if ctl.JumpDuration <= 0 {
		return fmt.Errorf("%w: controller.jump_duration must be > 0, got %v", ErrInvalid, ctl.JumpDuration)
	}
	if ctl.ModelScale <= 0 {
		return fmt.Errorf("%w: controller.model_scale must be > 0, got %v", ErrInvalid, ctl.ModelScale)
	}

	keys := map[string]string{
		"forward":    c.Keys.Forward,
		"turn_left":  c.Keys.TurnLeft,
		"turn_right": c.Keys.TurnRight,
		"jump":       c.Keys.Jump,
		"dance":      c.Keys.Dance,
		"quit":       c.Keys.Quit,
	}
	for action, name := range keys {
		if name == "" {
			return fmt.Errorf("%w: keys.%s is empty", ErrInvalid, action)
		}
	}

	for state, clip := range c.Clips.ByState() {
		if clip.Name == "" {
			return fmt.Errorf("%w: clips.%s.name is empty", ErrInvalid, state)
		}
		if clip.Duration <= 0 {
			return fmt.Errorf("%w: clips.%s.duration must be > 0, got %v", ErrInvalid, state, clip.Duration)
		}
	}

	for state := range c.Audio.Cues {
		if _, ok := c.Clips.ByState()[state]; !ok {
			return fmt.Errorf("%w: audio.cues has unknown state %q", ErrInvalid, state)
		}
	}
	return nil
}
