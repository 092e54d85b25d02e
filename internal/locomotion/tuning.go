package locomotion

import (
	"errors"
	"fmt"
	gomath "math"

	"github.com/Faultbox/locomotion/pkg/math"
)

// ErrInvalidTuning is returned for tuning values the controller cannot run with.
var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning holds the controller's numeric parameters.
type Tuning struct {
	MoveSpeed    float32 // World units per second while walking
	TurnDuration float32 // Seconds for one turn
	TurnAngle    float32 // Radians per turn
	JumpDuration float32 // Seconds before a jump returns to idle
}

// DefaultTuning returns the stock tuning: 2 u/s, 0.5 s quarter turns, 1 s jumps.
func DefaultTuning() Tuning {
	return Tuning{
		MoveSpeed:    2.0,
		TurnDuration: 0.5,
		TurnAngle:    math.Radians(90),
		JumpDuration: 1.0,
	}
}

// Validate checks every field.
func (t Tuning) Validate() error {
	switch {
	case !finite(t.MoveSpeed) || t.MoveSpeed < 0:
		return fmt.Errorf("%w: move speed %v", ErrInvalidTuning, t.MoveSpeed)
	case !finite(t.TurnDuration) || t.TurnDuration <= 0:
		return fmt.Errorf("%w: turn duration %v", ErrInvalidTuning, t.TurnDuration)
	case !finite(t.TurnAngle) || t.TurnAngle <= 0:
		return fmt.Errorf("%w: turn angle %v", ErrInvalidTuning, t.TurnAngle)
	case !finite(t.JumpDuration) || t.JumpDuration <= 0:
		return fmt.Errorf("%w: jump duration %v", ErrInvalidTuning, t.JumpDuration)
	}
	return nil
}

func finite(v float32) bool {
	f := float64(v)
	return !gomath.IsNaN(f) && !gomath.IsInf(f, 0)
}
