package locomotion

import "github.com/Faultbox/locomotion/pkg/math"

// Pose is the character's placement in the world.
type Pose struct {
	Position math.Vec3
	Facing   float32 // Yaw in radians; 0 faces +Z
}

// Forward returns the unit direction the character faces.
func (p Pose) Forward() math.Vec3 {
	return math.Heading(p.Facing)
}

// Advance returns the pose moved distance units along its facing.
func (p Pose) Advance(distance float32) Pose {
	p.Position = p.Position.Add(p.Forward().Scale(distance))
	return p
}

// ModelMatrix builds translate * rotateY * scale for rendering.
func (p Pose) ModelMatrix(scale float32) math.Mat4 {
	return math.Translate(p.Position).
		Mul(math.RotateY(p.Facing)).
		Mul(math.Scale(scale))
}
