package locomotion

import (
	"errors"
	"fmt"

	"github.com/Faultbox/locomotion/internal/engine/animation"
)

// Animator is the playback side the controller drives.
type Animator interface {
	PlayAnimation(clip *animation.Clip)
}

// TransitionFunc is called after every state change.
type TransitionFunc func(from, to State)

// Option configures a Controller.
type Option func(*Controller)

// WithPose sets the starting pose.
func WithPose(p Pose) Option {
	return func(c *Controller) {
		c.pose = p
	}
}

// WithTransitionObserver registers fn to be called on every state change.
func WithTransitionObserver(fn TransitionFunc) Option {
	return func(c *Controller) {
		c.observers = append(c.observers, fn)
	}
}

// Controller owns the character's state, pose and clip selection.
// It is driven once per frame from a single goroutine.
type Controller struct {
	tuning   Tuning
	clips    ClipSet
	animator Animator

	state     State
	pose      Pose
	active    *animation.Clip
	turn      *TurnSession // non-nil iff state.IsTurning()
	jumpTimer float32
	edges     keyEdges

	observers []TransitionFunc
}

// NewController validates tuning and clips and returns a controller in Idle.
// The animator is told to play the idle clip once during construction.
func NewController(tuning Tuning, clips ClipSet, animator Animator, opts ...Option) (*Controller, error) {
	if err := tuning.Validate(); err != nil {
		return nil, err
	}
	for _, s := range States() {
		if clips.For(s) == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingClip, s)
		}
	}
	if animator == nil {
		return nil, errors.New("nil animator")
	}

	c := &Controller{
		tuning:   tuning,
		clips:    clips,
		animator: animator,
		state:    Idle,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.play(clips.For(Idle))
	return c, nil
}

// Update runs one frame. dt is in seconds; negative values count as zero.
func (c *Controller) Update(dt float32, keys Keys) {
	if dt < 0 {
		dt = 0
	}

	in := c.edges.sample(keys)

	if !c.state.IsTurning() {
		switch {
		case in.turnLeft:
			c.beginTurn(TurningLeft, -c.tuning.TurnAngle)
		case in.turnRight:
			c.beginTurn(TurningRight, c.tuning.TurnAngle)
		}
	}

	// A turn is exclusive: nothing else is evaluated until it completes.
	if c.turn != nil {
		c.stepTurn(dt)
		return
	}

	c.stepWalk(dt, keys.Forward)

	if in.jump && c.state != Jumping && c.state != Dancing {
		c.jumpTimer = 0
		c.enter(Jumping)
	}

	if in.dance {
		if c.state != Dancing {
			c.enter(Dancing)
		} else {
			c.enter(Idle)
		}
	}

	if c.state == Jumping {
		c.jumpTimer += dt
		if c.jumpTimer > c.tuning.JumpDuration {
			c.enter(Idle)
		}
	}

	if !keys.Forward && c.state != Idle && !c.state.sustained() {
		c.enter(Idle)
	}
}

func (c *Controller) beginTurn(s State, delta float32) {
	c.turn = newTurn(c.pose.Facing, delta, c.tuning.TurnDuration)
	c.enter(s)
}

func (c *Controller) stepTurn(dt float32) {
	facing, done := c.turn.advance(dt)
	c.pose.Facing = facing
	if done {
		c.turn = nil
		c.enter(Idle)
	}
}

func (c *Controller) stepWalk(dt float32, forward bool) {
	if !forward {
		if c.state == Walking {
			c.enter(Idle)
		}
		return
	}

	c.pose = c.pose.Advance(c.tuning.MoveSpeed * dt)
	if c.state != Walking && c.state != Dancing {
		c.enter(Walking)
	}
}

// enter switches to s and selects its clip in the same step. Leaving
// Jumping by any rule clears the jump timer.
func (c *Controller) enter(s State) {
	from := c.state
	c.state = s
	c.play(c.clips.For(s))
	if from == s {
		return
	}
	if from == Jumping {
		c.jumpTimer = 0
	}
	for _, fn := range c.observers {
		fn(from, s)
	}
}

// play forwards clip to the animator unless it is already active.
func (c *Controller) play(clip *animation.Clip) {
	if clip == c.active {
		return
	}
	c.animator.PlayAnimation(clip)
	c.active = clip
}

// SetTuning replaces the tuning. A turn already in progress keeps the
// duration it started with.
func (c *Controller) SetTuning(t Tuning) error {
	if err := t.Validate(); err != nil {
		return err
	}
	c.tuning = t
	return nil
}

// Tuning returns the current tuning.
func (c *Controller) Tuning() Tuning {
	return c.tuning
}

// State returns the active state.
func (c *Controller) State() State {
	return c.state
}

// Pose returns the current pose.
func (c *Controller) Pose() Pose {
	return c.pose
}

// ActiveClip returns the clip last sent to the animator.
func (c *Controller) ActiveClip() *animation.Clip {
	return c.active
}

// Turn returns a copy of the active turn session, if any.
func (c *Controller) Turn() (TurnSession, bool) {
	if c.turn == nil {
		return TurnSession{}, false
	}
	return *c.turn, true
}

// JumpTimer returns the seconds spent in the current jump.
func (c *Controller) JumpTimer() float32 {
	return c.jumpTimer
}

// Snapshot is a read-only view of the controller after a frame.
type Snapshot struct {
	State        State
	Pose         Pose
	Clip         string
	Turning      bool
	TurnProgress float32
	JumpTimer    float32
}

// Snapshot captures the controller's current state.
func (c *Controller) Snapshot() Snapshot {
	s := Snapshot{
		State:     c.state,
		Pose:      c.pose,
		Clip:      c.active.String(),
		JumpTimer: c.jumpTimer,
	}
	if c.turn != nil {
		s.Turning = true
		s.TurnProgress = c.turn.Progress
	}
	return s
}
