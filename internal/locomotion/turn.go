package locomotion

import "github.com/Faultbox/locomotion/pkg/math"

// TurnSession tracks an eased turn from Start to Target.
type TurnSession struct {
	Start    float32 // Facing at entry (radians)
	Target   float32 // Facing on completion (radians)
	Progress float32 // Linear progress in [0, 1)
	Duration float32 // Seconds, captured at entry
}

func newTurn(start, delta, duration float32) *TurnSession {
	return &TurnSession{
		Start:    start,
		Target:   start + delta,
		Duration: duration,
	}
}

// advance moves the session forward by dt and returns the facing angle for
// this frame. done is true on the frame progress reaches 1, in which case
// the returned angle is exactly Target.
func (t *TurnSession) advance(dt float32) (facing float32, done bool) {
	t.Progress += dt / t.Duration
	if t.Progress >= 1 {
		t.Progress = 1
		return t.Target, true
	}
	return t.At(t.Progress), false
}

// At returns the eased facing angle at linear progress p.
func (t *TurnSession) At(p float32) float32 {
	return math.Lerp(t.Start, t.Target, math.Smoothstep(p))
}
