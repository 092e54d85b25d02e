package animation

import "math"

// Animator plays one clip at a time and advances its local time.
// Bone evaluation is left to the renderer; the animator only tracks time.
type Animator struct {
	current  *Clip
	time     float32 // Seconds into the current clip
	switches int     // Number of PlayAnimation calls
}

// New creates an animator already playing initial.
func New(initial *Clip) *Animator {
	return &Animator{current: initial}
}

// PlayAnimation switches to clip and rewinds to its start.
func (a *Animator) PlayAnimation(clip *Clip) {
	a.current = clip
	a.time = 0
	a.switches++
}

// UpdateAnimation advances the current clip by dt seconds.
// Looping clips wrap; one-shot clips hold on their last frame.
func (a *Animator) UpdateAnimation(dt float32) {
	if a.current == nil || dt <= 0 {
		return
	}

	a.time += dt
	if a.time < a.current.Duration {
		return
	}
	if a.current.Loop {
		a.time = float32(math.Mod(float64(a.time), float64(a.current.Duration)))
		// float32 rounding can land exactly on the end
		if a.time >= a.current.Duration {
			a.time = 0
		}
		return
	}
	a.time = a.current.Duration
}

// Current returns the clip being played.
func (a *Animator) Current() *Clip {
	return a.current
}

// Time returns the playback position in seconds.
func (a *Animator) Time() float32 {
	return a.time
}

// Progress returns the playback position normalized to [0, 1].
func (a *Animator) Progress() float32 {
	if a.current == nil {
		return 0
	}
	return a.time / a.current.Duration
}

// Finished reports whether a one-shot clip has reached its end.
func (a *Animator) Finished() bool {
	return a.current != nil && !a.current.Loop && a.time >= a.current.Duration
}

// Switches returns how many times PlayAnimation has been called.
func (a *Animator) Switches() int {
	return a.switches
}
