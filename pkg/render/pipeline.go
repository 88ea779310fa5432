// Package render turns object-space triangle meshes into depth-sorted,
// flat-shaded screen-space triangles, and paints them onto a glyph cell grid
// or an RGBA image.
//
// A frame runs through these stages in order: world transform, back-face
// cull, lighting, view transform, near-plane clip, projection and
// perspective divide, viewport clip, and a far-to-near depth sort.
package render

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taigrr/painter/pkg/math3d"
)

// FrameStats counts what happened to the submitted triangles in one frame.
type FrameStats struct {
	Submitted   int // Triangles read from the mesh
	Degenerate  int // Zero-area triangles dropped before culling
	Culled      int // Back faces
	NearClipped int // Faces removed entirely by the near plane
	Emitted     int // Screen-space triangles in the frame
}

// LogValue implements slog.LogValuer.
func (s FrameStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("submitted", s.Submitted),
		slog.Int("degenerate", s.Degenerate),
		slog.Int("culled", s.Culled),
		slog.Int("near_clipped", s.NearClipped),
		slog.Int("emitted", s.Emitted),
	)
}

// Frame is the output of one Render call: screen-space triangles sorted far
// to near, ready to paint in order.
type Frame struct {
	Triangles []Triangle
	Stats     FrameStats
}

// Pipeline turns a mesh into a Frame. It owns the projection matrix and the
// scratch buffers reused between frames, so a Frame's Triangles are only
// valid until the next Render.
type Pipeline struct {
	cfg     Config
	proj    math3d.Mat4
	near    Plane
	clipper *Clipper
	out     []Triangle
}

// NewPipeline validates cfg and builds a pipeline for it.
func NewPipeline(cfg Config) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new pipeline: %w", err)
	}
	return &Pipeline{
		cfg:     cfg,
		proj:    math3d.Perspective(cfg.FOVDegrees, cfg.Aspect(), cfg.Near, cfg.Far),
		near:    NearPlane(cfg.Near),
		clipper: NewClipper(cfg.Width, cfg.Height),
	}, nil
}

// Config returns the configuration the pipeline was built with.
func (p *Pipeline) Config() Config {
	return p.cfg
}

// Render runs one frame: world transform, back-face cull, lighting, view
// transform, near clip, projection, viewport clip and depth sort.
func (p *Pipeline) Render(mesh MeshSource, cam Camera, world math3d.Mat4) Frame {
	var stats FrameStats
	view := cam.ViewMatrix()
	p.out = p.out[:0]

	for i := range mesh.TriangleCount() {
		stats.Submitted++
		obj := mesh.TriangleAt(i)
		tri := TransformTriangle(world, NewTriangle(obj[0], obj[1], obj[2]))

		normal, err := FaceNormal(tri)
		if err != nil {
			stats.Degenerate++
			continue
		}
		if !Facing(normal, tri.P[0].Vec3(), cam.Position) {
			stats.Culled++
			continue
		}
		tri.Shade = ShadeFor(Quantize(Illumination(normal)))

		clipped, n := ClipTriangle(p.near, TransformTriangle(view, tri))
		if n == 0 {
			stats.NearClipped++
			continue
		}
		for _, c := range clipped[:n] {
			p.out = append(p.out, p.clipper.ClipToViewport(p.Project(c))...)
		}
	}

	SortByDepth(p.out)
	stats.Emitted = len(p.out)

	if log := Logger(); log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("frame rendered", slog.Any("stats", stats))
	}

	return Frame{Triangles: p.out, Stats: stats}
}

// Project maps a view-space triangle to screen space: projection,
// perspective divide, then scaling from [-1, 1] to pixels with Y growing
// downward. W keeps the view-space depth.
func (p *Pipeline) Project(t Triangle) Triangle {
	w := float64(p.cfg.Width)
	h := float64(p.cfg.Height)
	for i := range t.P {
		v := p.proj.MulVec4(t.P[i]).PerspectiveDivide()
		v.X = (v.X + 1) * 0.5 * w
		v.Y = (1 - v.Y) * 0.5 * h
		t.P[i] = v
	}
	return t
}
