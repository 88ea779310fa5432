package render

import (
	"github.com/taigrr/painter/pkg/math3d"
)

// Plane represents a plane in 3D space using the equation: Ax + By + Cz + D = 0
// where (A, B, C) is the unit normal. Points on the normal's side are inside.
type Plane struct {
	Normal math3d.Vec3
	D      float64
}

// NewPlane builds a plane through point with the given normal. The normal
// is normalized and must not be zero.
func NewPlane(point, normal math3d.Vec3) Plane {
	n := normal.Normalize()
	return Plane{Normal: n, D: -n.Dot(point)}
}

// SignedDistance returns the signed distance from the plane to a point.
// Positive = inside (same side as normal), negative = outside.
func (p Plane) SignedDistance(point math3d.Vec3) float64 {
	return p.Normal.Dot(point) + p.D
}

// NearPlane returns the view-space near clip plane, keeping z >= near.
func NearPlane(near float64) Plane {
	return NewPlane(math3d.V3(0, 0, near), math3d.V3(0, 0, 1))
}

// ViewportPlanes returns the four screen-edge planes of a width×height
// frame, in clip order: top, bottom, left, right.
func ViewportPlanes(width, height int) [4]Plane {
	w := float64(width - 1)
	h := float64(height - 1)
	return [4]Plane{
		NewPlane(math3d.V3(0, 0, 0), math3d.V3(0, 1, 0)),
		NewPlane(math3d.V3(0, h, 0), math3d.V3(0, -1, 0)),
		NewPlane(math3d.V3(0, 0, 0), math3d.V3(1, 0, 0)),
		NewPlane(math3d.V3(w, 0, 0), math3d.V3(-1, 0, 0)),
	}
}
