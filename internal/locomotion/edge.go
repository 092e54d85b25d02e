package locomotion

// EdgeDetector turns a level-triggered key into a press event.
type EdgeDetector struct {
	wasDown bool
}

// Pressed returns true only when down is true and was false on the previous
// call. It records down for the next call.
func (e *EdgeDetector) Pressed(down bool) bool {
	pressed := down && !e.wasDown
	e.wasDown = down
	return pressed
}

// Keys holds the level of each bound key for one frame.
type Keys struct {
	Forward   bool
	TurnLeft  bool
	TurnRight bool
	Jump      bool
	Dance     bool
}

// presses holds the edge-triggered view of Keys. Forward has no edge.
type presses struct {
	turnLeft  bool
	turnRight bool
	jump      bool
	dance     bool
}

type keyEdges struct {
	turnLeft  EdgeDetector
	turnRight EdgeDetector
	jump      EdgeDetector
	dance     EdgeDetector
}

// sample updates every detector exactly once per frame, including frames
// spent turning, so a key held through a turn does not fire afterwards.
func (k *keyEdges) sample(keys Keys) presses {
	return presses{
		turnLeft:  k.turnLeft.Pressed(keys.TurnLeft),
		turnRight: k.turnRight.Pressed(keys.TurnRight),
		jump:      k.jump.Pressed(keys.Jump),
		dance:     k.dance.Pressed(keys.Dance),
	}
}
