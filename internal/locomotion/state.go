// Package locomotion turns per-frame key levels into character states,
// eased turns and forward motion for a single animated character.
package locomotion

import "fmt"

// State is the animation state of the character. Exactly one is active.
type State uint8

const (
	Idle State = iota
	Walking
	TurningLeft
	TurningRight
	Jumping
	Dancing

	stateCount
)

var stateNames = [stateCount]string{
	Idle:         "idle",
	Walking:      "walking",
	TurningLeft:  "turning_left",
	TurningRight: "turning_right",
	Jumping:      "jumping",
	Dancing:      "dancing",
}

// States lists every state in declaration order.
func States() []State {
	all := make([]State, stateCount)
	for i := range all {
		all[i] = State(i)
	}
	return all
}

func (s State) String() string {
	if s < stateCount {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// IsTurning reports whether s is one of the two turning states.
func (s State) IsTurning() bool {
	return s == TurningLeft || s == TurningRight
}

// sustained reports whether s persists without a held key.
func (s State) sustained() bool {
	return s == Dancing || s == Jumping || s.IsTurning()
}

// ParseState converts a state name as written in config files.
func ParseState(name string) (State, error) {
	for i, n := range stateNames {
		if n == name {
			return State(i), nil
		}
	}
	return 0, fmt.Errorf("unknown state %q", name)
}
