package scene

import (
	"github.com/charmbracelet/harmonica"
)

// SpinSpeed is the mesh rotation rate while spinning, in radians per second.
const SpinSpeed = 1.0

// SpinAxis tracks the mesh rotation angle. The speed follows its target
// through a critically damped spring, so starting and stopping ease in and
// out instead of snapping.
type SpinAxis struct {
	Angle  float64 // Radians turned so far
	Speed  float64 // Current rate, radians per second
	Target float64 // Rate the spring is pulling Speed toward

	spring harmonica.Spring
	accel  float64 // internal spring velocity (for animating Speed toward Target)
}

// NewSpinAxis creates a stopped axis whose spring steps at the given frame
// rate.
func NewSpinAxis(fps int) SpinAxis {
	return SpinAxis{
		// Frequency 4.0 = moderate speed, damping 1.0 = critically damped (no overshoot)
		spring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Start spins at full speed immediately.
func (a *SpinAxis) Start() {
	a.Speed = SpinSpeed
	a.Target = SpinSpeed
}

// Toggle eases toward full speed if stopping or stopped, and toward rest
// otherwise.
func (a *SpinAxis) Toggle() {
	if a.Target == 0 {
		a.Target = SpinSpeed
	} else {
		a.Target = 0
	}
}

// Update advances the spring one step and the angle by dt seconds. The
// spring always steps by the frame period given to NewSpinAxis, not by dt,
// so easing stretches out in wall-clock time when frames run late.
func (a *SpinAxis) Update(dt float64) {
	a.Speed, a.accel = a.spring.Update(a.Speed, a.accel, a.Target)
	a.Angle += a.Speed * dt
}

// Active reports whether the mesh has ever turned or is about to.
func (a *SpinAxis) Active() bool {
	return a.Angle != 0 || a.Target != 0
}
