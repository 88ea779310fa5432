package render

import (
	"github.com/taigrr/painter/pkg/math3d"
)

// Camera movement rates.
const (
	MoveSpeed = 8.0 // World units per second
	TurnSpeed = 2.0 // Radians per second
)

// Camera is a yaw-only first person camera. The look direction is derived
// from Yaw on every call and never stored, so repeated turns do not drift.
type Camera struct {
	// Position in world space
	Position math3d.Vec3

	// Rotation around the Y axis in radians; positive turns left
	Yaw float64
}

// Controls is the held-key snapshot for one frame.
type Controls struct {
	Forward   bool
	Back      bool
	Up        bool
	Down      bool
	TurnLeft  bool
	TurnRight bool
}

// Any reports whether any control is held.
func (c Controls) Any() bool {
	return c.Forward || c.Back || c.Up || c.Down || c.TurnLeft || c.TurnRight
}

// NewCamera creates a camera at the origin looking down +Z.
func NewCamera() *Camera {
	return &Camera{}
}

// LookDirection returns the unit vector the camera faces.
func (c *Camera) LookDirection() math3d.Vec3 {
	return math3d.RotateY(c.Yaw).MulDir(math3d.Forward())
}

// Right returns the unit vector to the camera's right.
func (c *Camera) Right() math3d.Vec3 {
	return math3d.Up().Cross(c.LookDirection())
}

// ViewMatrix returns the world-to-view transform.
func (c *Camera) ViewMatrix() math3d.Mat4 {
	target := c.Position.Add(c.LookDirection())
	return math3d.InvertRigid(math3d.PointAt(c.Position, target, math3d.Up()))
}

// MoveForward moves the camera along its look direction (backward if negative).
func (c *Camera) MoveForward(distance float64) {
	c.Position = c.Position.Add(c.LookDirection().Scale(distance))
}

// MoveUp moves the camera along world Y (down if negative).
func (c *Camera) MoveUp(distance float64) {
	c.Position.Y += distance
}

// Turn adds delta radians of yaw.
func (c *Camera) Turn(delta float64) {
	c.Yaw += delta
}

// Step applies one frame of held controls scaled by dt seconds.
func (c *Camera) Step(in Controls, dt float64) {
	move := MoveSpeed * dt
	turn := TurnSpeed * dt

	if in.Up {
		c.MoveUp(move)
	}
	if in.Down {
		c.MoveUp(-move)
	}
	if in.Forward {
		c.MoveForward(move)
	}
	if in.Back {
		c.MoveForward(-move)
	}
	if in.TurnLeft {
		c.Turn(turn)
	}
	if in.TurnRight {
		c.Turn(-turn)
	}
}
