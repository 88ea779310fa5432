package main

import (
	"sync"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/painter/pkg/render"
)

// Mouse sensitivity.
const (
	dragTurnPerCell = 0.03 // Radians of yaw per column dragged
	wheelMoveStep   = 0.5  // Distance moved per wheel notch
)

// action is a held camera control.
type action int

const (
	actForward action = iota
	actBack
	actUp
	actDown
	actTurnLeft
	actTurnRight
	numActions
)

// bindings maps keys to camera controls.
var bindings = [numActions][]string{
	actForward:   {"w"},
	actBack:      {"s"},
	actUp:        {"up"},
	actDown:      {"down"},
	actTurnLeft:  {"a", "left"},
	actTurnRight: {"d", "right"},
}

// keyMatcher is satisfied by uv.KeyPressEvent and uv.KeyReleaseEvent.
type keyMatcher interface {
	MatchString(s ...string) bool
}

// actionFor returns the camera control bound to a key event.
func actionFor(k keyMatcher) (action, bool) {
	for a, keys := range bindings {
		if k.MatchString(keys...) {
			return action(a), true
		}
	}
	return 0, false
}

// keyTracker turns key events into a per-frame held-keys snapshot. Many
// terminals never report key releases, so until one is seen a press only
// counts as held for the hold window; auto-repeat presses refresh it.
type keyTracker struct {
	mu       sync.Mutex
	pressed  [numActions]time.Time
	down     [numActions]bool
	releases bool // terminal reports key releases
	hold     time.Duration
}

func newKeyTracker(hold time.Duration) *keyTracker {
	return &keyTracker{hold: hold}
}

func (k *keyTracker) press(a action, now time.Time) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.pressed[a] = now
	k.down[a] = true
}

func (k *keyTracker) release(a action) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.down[a] = false
	k.releases = true
}

func (k *keyTracker) held(a action, now time.Time) bool {
	if !k.down[a] {
		return false
	}
	return k.releases || now.Sub(k.pressed[a]) <= k.hold
}

// controls returns the snapshot for the frame starting at now.
func (k *keyTracker) controls(now time.Time) render.Controls {
	k.mu.Lock()
	defer k.mu.Unlock()
	return render.Controls{
		Forward:   k.held(actForward, now),
		Back:      k.held(actBack, now),
		Up:        k.held(actUp, now),
		Down:      k.held(actDown, now),
		TurnLeft:  k.held(actTurnLeft, now),
		TurnRight: k.held(actTurnRight, now),
	}
}

// dragTracker follows a mouse drag across motion events. It is only used
// from the event goroutine.
type dragTracker struct {
	down  bool
	lastX int
}

func (d *dragTracker) press(x int) {
	d.down = true
	d.lastX = x
}

func (d *dragTracker) release() {
	d.down = false
}

// move returns the columns moved since the last event while dragging.
func (d *dragTracker) move(x int) (int, bool) {
	if !d.down {
		return 0, false
	}
	dx := x - d.lastX
	d.lastX = x
	return dx, dx != 0
}

// dragTurn converts a horizontal drag to yaw. Dragging right turns right.
func dragTurn(dx int) float64 {
	return -float64(dx) * dragTurnPerCell
}

// wheelStep returns how far a wheel event moves the camera forward.
func wheelStep(b uv.MouseButton) (float64, bool) {
	switch b {
	case uv.MouseWheelUp:
		return wheelMoveStep, true
	case uv.MouseWheelDown:
		return -wheelMoveStep, true
	}
	return 0, false
}
