// Package scene owns the per-frame state around a render pipeline: the
// camera, the mesh spin and the display toggles.
package scene

import (
	"fmt"
	"log/slog"

	"github.com/taigrr/painter/pkg/render"
)

// Scene renders one mesh from a movable camera.
type Scene struct {
	Camera render.Camera
	Spin   SpinAxis

	mesh      render.MeshSource
	pipeline  *render.Pipeline
	wireframe bool
	fps       int
}

// New creates a scene for mesh. fps sets the step of the spin spring.
func New(cfg render.Config, mesh render.MeshSource, fps int) (*Scene, error) {
	if fps <= 0 {
		return nil, fmt.Errorf("new scene: fps %d must be positive", fps)
	}
	p, err := render.NewPipeline(cfg)
	if err != nil {
		return nil, fmt.Errorf("new scene: %w", err)
	}

	s := &Scene{
		mesh:      mesh,
		pipeline:  p,
		wireframe: cfg.Wireframe,
		fps:       fps,
	}
	s.Reset()

	render.Logger().Info("scene created",
		slog.Int("triangles", mesh.TriangleCount()),
		slog.Int("width", cfg.Width),
		slog.Int("height", cfg.Height),
	)
	return s, nil
}

// Config returns the active pipeline configuration.
func (s *Scene) Config() render.Config {
	return s.pipeline.Config()
}

// Update applies one frame of input and time, then renders. The frame is
// valid until the next Update.
func (s *Scene) Update(dt float64, in render.Controls) render.Frame {
	s.Camera.Step(in, dt)
	s.Spin.Update(dt)

	cfg := s.pipeline.Config()
	world := render.WorldMatrix(s.Spin.Angle, s.Spin.Active(), cfg.ObjectDepth)
	return s.pipeline.Render(s.mesh, s.Camera, world)
}

// Draw paints f with p, honoring the wireframe toggle.
func (s *Scene) Draw(f render.Frame, p render.Painter) {
	render.Present(f, p, s.wireframe)
}

// Resize rebuilds the pipeline for a new frame size, keeping camera and
// spin.
func (s *Scene) Resize(width, height int) error {
	cfg := s.pipeline.Config()
	if cfg.Width == width && cfg.Height == height {
		return nil
	}
	cfg.Width, cfg.Height = width, height

	p, err := render.NewPipeline(cfg)
	if err != nil {
		return fmt.Errorf("resize scene: %w", err)
	}
	s.pipeline = p
	render.Logger().Debug("scene resized", slog.Int("width", width), slog.Int("height", height))
	return nil
}

// ToggleSpin starts or stops the mesh rotation, easing the speed.
func (s *Scene) ToggleSpin() {
	s.Spin.Toggle()
}

// ToggleWireframe switches edge stroking on or off.
func (s *Scene) ToggleWireframe() {
	s.wireframe = !s.wireframe
}

// Spinning reports whether the mesh is spinning or spinning up.
func (s *Scene) Spinning() bool {
	return s.Spin.Target != 0
}

// Wireframe reports whether edges are stroked.
func (s *Scene) Wireframe() bool {
	return s.wireframe
}

// Reset puts the camera back at the origin and the spin at its configured
// starting state.
func (s *Scene) Reset() {
	s.Camera = render.Camera{}
	s.Spin = NewSpinAxis(s.fps)
	if s.pipeline.Config().Spin {
		s.Spin.Start()
	}
}
