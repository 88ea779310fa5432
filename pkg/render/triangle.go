package render

import (
	"github.com/taigrr/painter/pkg/math3d"
)

// Triangle is three homogeneous vertices in clockwise winding plus the shade
// assigned by the lighting stage. Clipping copies Shade verbatim.
type Triangle struct {
	P     [3]math3d.Vec4
	Shade Shade
}

// MeshSource supplies object-space triangles to the pipeline.
type MeshSource interface {
	TriangleCount() int
	TriangleAt(i int) [3]math3d.Vec3
}

// NewTriangle builds a triangle from three object-space positions with W=1.
func NewTriangle(a, b, c math3d.Vec3) Triangle {
	return Triangle{P: [3]math3d.Vec4{
		math3d.V4FromV3(a, 1),
		math3d.V4FromV3(b, 1),
		math3d.V4FromV3(c, 1),
	}}
}

// Points returns the X/Y of each vertex. For a projected triangle these are
// pixel positions.
func (t Triangle) Points() [3]math3d.Vec2 {
	return [3]math3d.Vec2{
		math3d.V2(t.P[0].X, t.P[0].Y),
		math3d.V2(t.P[1].X, t.P[1].Y),
		math3d.V2(t.P[2].X, t.P[2].Y),
	}
}

// Depth returns the mean Z of the three vertices.
func (t Triangle) Depth() float64 {
	return (t.P[0].Z + t.P[1].Z + t.P[2].Z) / 3
}

// Area2D returns the signed area of the X/Y projection. With screen Y
// pointing down, clockwise triangles have positive area.
func (t Triangle) Area2D() float64 {
	p := t.Points()
	return p[1].Sub(p[0]).Cross(p[2].Sub(p[0])) / 2
}
