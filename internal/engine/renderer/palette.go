package renderer

import "github.com/Faultbox/locomotion/internal/locomotion"

// Tint is a linear RGB multiplier applied to the marker.
type Tint [3]float32

var stateTints = map[locomotion.State]Tint{
	locomotion.Idle:         {0.6, 0.6, 0.7},
	locomotion.Walking:      {0.3, 0.9, 0.4},
	locomotion.TurningLeft:  {0.3, 0.6, 1.0},
	locomotion.TurningRight: {1.0, 0.6, 0.3},
	locomotion.Jumping:      {1.0, 0.9, 0.2},
	locomotion.Dancing:      {0.9, 0.3, 0.9},
}

// TintFor returns the marker tint for s. Unknown states draw white.
func TintFor(s locomotion.State) Tint {
	if t, ok := stateTints[s]; ok {
		return t
	}
	return Tint{1, 1, 1}
}
