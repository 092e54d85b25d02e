// Package character assembles a controllable character from configuration:
// the clip library, the animator that plays it and the locomotion controller
// that picks clips and moves the pose.
package character

import (
	"fmt"

	"github.com/Faultbox/locomotion/internal/config"
	"github.com/Faultbox/locomotion/internal/engine/animation"
	"github.com/Faultbox/locomotion/internal/locomotion"
	"github.com/Faultbox/locomotion/pkg/math"
)

// Character couples a controller with the animator it drives.
type Character struct {
	Controller *locomotion.Controller
	Animator   *animation.Animator
	Library    *animation.Library

	scale float32
}

// New builds a character in Idle at the configured start position.
// opts are passed through to the controller after the start pose.
func New(cfg *config.Config, opts ...locomotion.Option) (*Character, error) {
	lib, err := LibraryFromConfig(cfg.Clips)
	if err != nil {
		return nil, err
	}

	clips, err := locomotion.ClipSetFromLibrary(lib)
	if err != nil {
		return nil, err
	}

	anim := animation.New(nil)
	start := locomotion.Pose{Position: math.FromArray(cfg.Controller.StartPosition)}
	opts = append([]locomotion.Option{locomotion.WithPose(start)}, opts...)

	ctrl, err := locomotion.NewController(TuningFromConfig(cfg.Controller), clips, anim, opts...)
	if err != nil {
		return nil, fmt.Errorf("controller: %w", err)
	}

	return &Character{
		Controller: ctrl,
		Animator:   anim,
		Library:    lib,
		scale:      cfg.Controller.ModelScale,
	}, nil
}

// TuningFromConfig converts the config section to controller tuning.
// The turn angle is configured in degrees.
func TuningFromConfig(c config.ControllerConfig) locomotion.Tuning {
	return locomotion.Tuning{
		MoveSpeed:    c.MoveSpeed,
		TurnDuration: c.TurnDuration,
		TurnAngle:    math.Radians(c.TurnAngleDeg),
		JumpDuration: c.JumpDuration,
	}
}

// LibraryFromConfig builds one clip per state, keyed by state name.
func LibraryFromConfig(c config.ClipsConfig) (*animation.Library, error) {
	byState := c.ByState()
	defs := make([]animation.Definition, 0, len(byState))
	for _, s := range locomotion.States() {
		cc, ok := byState[s.String()]
		if !ok {
			return nil, fmt.Errorf("%w: %s", locomotion.ErrMissingClip, s)
		}
		defs = append(defs, animation.Definition{
			Key:      s.String(),
			Name:     cc.Name,
			Duration: cc.Duration,
			Loop:     cc.Loop,
		})
	}
	return animation.NewLibrary(defs)
}

// Update runs the controller for one frame and then advances the clip it
// selected.
func (c *Character) Update(dt float32, keys locomotion.Keys) {
	c.Controller.Update(dt, keys)
	c.Animator.UpdateAnimation(dt)
}

// ApplyConfig pushes new tuning and model scale. Invalid tuning is rejected
// and leaves the character unchanged.
func (c *Character) ApplyConfig(cfg config.ControllerConfig) error {
	if err := c.Controller.SetTuning(TuningFromConfig(cfg)); err != nil {
		return err
	}
	c.scale = cfg.ModelScale
	return nil
}

// ModelMatrix returns the world transform for the current pose.
func (c *Character) ModelMatrix() math.Mat4 {
	return c.Controller.Pose().ModelMatrix(c.scale)
}

// Snapshot returns the controller snapshot.
func (c *Character) Snapshot() locomotion.Snapshot {
	return c.Controller.Snapshot()
}

// State returns the controller state.
func (c *Character) State() locomotion.State {
	return c.Controller.State()
}
