// Package models provides mesh loading and representation for painter.
package models

import (
	"errors"
	"fmt"

	"github.com/taigrr/painter/pkg/math3d"
)

var (
	// ErrIndexOutOfRange is returned when a face references a vertex that
	// does not exist.
	ErrIndexOutOfRange = errors.New("face index out of range")

	// ErrEmptyMesh is returned by loaders that produced no triangles.
	ErrEmptyMesh = errors.New("mesh has no triangles")
)

// Mesh is an indexed triangle mesh. Faces keep the winding they were
// authored with (clockwise when viewed from the front).
type Mesh struct {
	Name     string
	Vertices []math3d.Vec3
	Faces    []Face

	// Bounding box (calculated on load)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// Face represents a triangle face as indices into Mesh.Vertices.
type Face struct {
	V [3]int
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: make([]math3d.Vec3, 0),
		Faces:    make([]Face, 0),
	}
}

// AddVertex appends a vertex and returns its index.
func (m *Mesh) AddVertex(v math3d.Vec3) int {
	m.Vertices = append(m.Vertices, v)
	return len(m.Vertices) - 1
}

// AddFace appends a triangle referencing existing vertices.
// Indices are 0-based and must already exist.
func (m *Mesh) AddFace(a, b, c int) error {
	for _, i := range [3]int{a, b, c} {
		if i < 0 || i >= len(m.Vertices) {
			return fmt.Errorf("%w: %d (have %d vertices)", ErrIndexOutOfRange, i, len(m.Vertices))
		}
	}
	m.Faces = append(m.Faces, Face{V: [3]int{a, b, c}})
	return nil
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		return
	}

	m.BoundsMin = m.Vertices[0]
	m.BoundsMax = m.Vertices[0]

	for _, v := range m.Vertices[1:] {
		m.BoundsMin = m.BoundsMin.Min(v)
		m.BoundsMax = m.BoundsMax.Max(v)
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// TriangleCount returns the number of triangles.
// Implements render.MeshSource.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleAt returns the three object-space vertices of face i.
// Implements render.MeshSource.
func (m *Mesh) TriangleAt(i int) [3]math3d.Vec3 {
	f := m.Faces[i].V
	return [3]math3d.Vec3{m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]}
}

// Transform applies an affine transformation matrix to all vertices.
func (m *Mesh) Transform(mat math3d.Mat4) {
	for i := range m.Vertices {
		m.Vertices[i] = mat.MulPoint(m.Vertices[i])
	}
	m.CalculateBounds()
}

// FitTo recenters the mesh on the origin and scales it uniformly so its
// largest dimension equals size. Meshes with no extent are left untouched.
func (m *Mesh) FitTo(size float64) {
	m.CalculateBounds()
	dims := m.Size()
	maxDim := max(dims.X, dims.Y, dims.Z)
	if maxDim <= 0 {
		return
	}
	scale := size / maxDim
	center := m.Center()
	m.Transform(math3d.Translate(center.Negate()).Mul(math3d.Scale(math3d.V3(scale, scale, scale))))
}
