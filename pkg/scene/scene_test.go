package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/taigrr/painter/pkg/math3d"
	"github.com/taigrr/painter/pkg/models"
	"github.com/taigrr/painter/pkg/render"
)

func testConfig(spin bool) render.Config {
	cfg := render.DefaultConfig()
	cfg.Width, cfg.Height = 100, 100
	cfg.Spin = spin
	return cfg
}

func newTestScene(t *testing.T, spin bool) *Scene {
	t.Helper()
	s, err := New(testConfig(spin), models.Cube(), 60)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestNewValidates(t *testing.T) {
	bad := testConfig(false)
	bad.Near = 0
	if _, err := New(bad, models.Cube(), 60); !errors.Is(err, render.ErrInvalidConfig) {
		t.Errorf("bad config: got %v, want ErrInvalidConfig", err)
	}
	if _, err := New(testConfig(false), models.Cube(), 0); err == nil {
		t.Error("zero fps: expected error")
	}
}

func TestUpdateStill(t *testing.T) {
	s := newTestScene(t, false)

	frame := s.Update(1.0/60, render.Controls{})
	if frame.Stats.Emitted != 2 {
		t.Errorf("emitted %d triangles, want 2", frame.Stats.Emitted)
	}
	if s.Spin.Active() {
		t.Error("spin should be inactive")
	}
}

func TestUpdateMovesCamera(t *testing.T) {
	s := newTestScene(t, false)

	s.Update(0.5, render.Controls{Forward: true, TurnLeft: true})
	// Movement happens along the old heading, then the turn
	if !s.Camera.Position.ApproxEqual(math3d.V3(0, 0, 4), 1e-9) {
		t.Errorf("position = %v, want (0,0,4)", s.Camera.Position)
	}
	if math.Abs(s.Camera.Yaw-1) > 1e-9 {
		t.Errorf("yaw = %v, want 1", s.Camera.Yaw)
	}
}

func TestSpinAdvances(t *testing.T) {
	s := newTestScene(t, true)

	for range 10 {
		s.Update(0.1, render.Controls{})
	}
	if math.Abs(s.Spin.Angle-1) > 1e-9 {
		t.Errorf("angle = %v, want 1", s.Spin.Angle)
	}
}

func TestToggleSpinEasesToRest(t *testing.T) {
	s := newTestScene(t, true)
	s.ToggleSpin()

	var prev float64
	for range 600 {
		prev = s.Spin.Angle
		s.Update(1.0/60, render.Controls{})
	}
	if s.Spin.Angle-prev > 1e-6 {
		t.Errorf("still turning %v rad per frame after stopping", s.Spin.Angle-prev)
	}
	if !s.Spin.Active() {
		t.Error("a turned mesh keeps its rotation")
	}
	if s.Spinning() {
		t.Error("Spinning after toggling off")
	}
}

func TestToggleSpinEasesIn(t *testing.T) {
	s := newTestScene(t, false)
	s.ToggleSpin()

	s.Update(1.0/60, render.Controls{})
	if s.Spin.Speed <= 0 || s.Spin.Speed >= SpinSpeed {
		t.Errorf("speed after one frame = %v, want between 0 and %v", s.Spin.Speed, SpinSpeed)
	}
	for range 600 {
		s.Update(1.0/60, render.Controls{})
	}
	if math.Abs(s.Spin.Speed-SpinSpeed) > 1e-6 {
		t.Errorf("speed = %v, want %v", s.Spin.Speed, SpinSpeed)
	}
}

func TestResize(t *testing.T) {
	s := newTestScene(t, false)
	s.Camera.Yaw = 0.3

	if err := s.Resize(40, 20); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if cfg := s.Config(); cfg.Width != 40 || cfg.Height != 20 {
		t.Errorf("size = %dx%d, want 40x20", cfg.Width, cfg.Height)
	}
	if s.Camera.Yaw != 0.3 {
		t.Error("Resize should keep the camera")
	}

	if err := s.Resize(0, 20); !errors.Is(err, render.ErrInvalidConfig) {
		t.Errorf("Resize(0, 20) = %v, want ErrInvalidConfig", err)
	}
	if cfg := s.Config(); cfg.Width != 40 {
		t.Errorf("failed resize changed width to %d", cfg.Width)
	}
}

func TestReset(t *testing.T) {
	s := newTestScene(t, true)
	for range 30 {
		s.Update(1.0/60, render.Controls{Forward: true, TurnRight: true})
	}
	s.ToggleSpin()

	s.Reset()
	if s.Camera != (render.Camera{}) {
		t.Errorf("camera = %+v, want origin", s.Camera)
	}
	if s.Spin.Angle != 0 || s.Spin.Speed != SpinSpeed {
		t.Errorf("spin = %v at %v, want 0 at full speed", s.Spin.Angle, s.Spin.Speed)
	}
}

type strokeCounter struct{ fills, strokes int }

func (c *strokeCounter) Fill(render.Triangle)                 { c.fills++ }
func (c *strokeCounter) Stroke(render.Triangle, render.Shade) { c.strokes++ }

func TestDrawWireframe(t *testing.T) {
	s := newTestScene(t, false)
	frame := s.Update(1.0/60, render.Controls{})

	var c strokeCounter
	s.Draw(frame, &c)
	if c.fills != 2 || c.strokes != 0 {
		t.Errorf("filled %d stroked %d, want 2 and 0", c.fills, c.strokes)
	}

	s.ToggleWireframe()
	if !s.Wireframe() {
		t.Fatal("wireframe not enabled")
	}
	c = strokeCounter{}
	s.Draw(frame, &c)
	if c.fills != 2 || c.strokes != 2 {
		t.Errorf("filled %d stroked %d, want 2 and 2", c.fills, c.strokes)
	}
}

func TestSpinSpringStepsPerFrame(t *testing.T) {
	fast, slow := NewSpinAxis(60), NewSpinAxis(60)
	fast.Toggle()
	slow.Toggle()

	fast.Update(1.0 / 60)
	slow.Update(0.5)

	// Easing advances one frame period per Update whatever dt is; only the
	// angle scales with dt
	if fast.Speed != slow.Speed {
		t.Errorf("speeds %v and %v, want equal", fast.Speed, slow.Speed)
	}
	if math.Abs(slow.Angle-30*fast.Angle) > 1e-12 {
		t.Errorf("angles %v and %v, want a 30x ratio", slow.Angle, fast.Angle)
	}
}
