package models

import "github.com/taigrr/painter/pkg/math3d"

// Cube returns the unit cube spanning (0,0,0)-(1,1,1), two clockwise
// triangles per side with outward normals.
func Cube() *Mesh {
	m := NewMesh("cube")
	m.Vertices = []math3d.Vec3{
		{X: 0, Y: 0, Z: 0}, // 0
		{X: 0, Y: 1, Z: 0}, // 1
		{X: 1, Y: 1, Z: 0}, // 2
		{X: 1, Y: 0, Z: 0}, // 3
		{X: 1, Y: 1, Z: 1}, // 4
		{X: 1, Y: 0, Z: 1}, // 5
		{X: 0, Y: 1, Z: 1}, // 6
		{X: 0, Y: 0, Z: 1}, // 7
	}
	m.Faces = []Face{
		// South (z = 0)
		{V: [3]int{0, 1, 2}},
		{V: [3]int{0, 2, 3}},
		// East (x = 1)
		{V: [3]int{3, 2, 4}},
		{V: [3]int{3, 4, 5}},
		// North (z = 1)
		{V: [3]int{5, 4, 6}},
		{V: [3]int{5, 6, 7}},
		// West (x = 0)
		{V: [3]int{7, 6, 1}},
		{V: [3]int{7, 1, 0}},
		// Top (y = 1)
		{V: [3]int{1, 6, 4}},
		{V: [3]int{1, 4, 2}},
		// Bottom (y = 0)
		{V: [3]int{5, 7, 0}},
		{V: [3]int{5, 0, 3}},
	}
	m.CalculateBounds()
	return m
}
