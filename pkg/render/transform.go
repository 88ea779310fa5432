package render

import (
	"github.com/taigrr/painter/pkg/math3d"
)

// WorldMatrix places the mesh in world space. When spinning, the mesh turns
// angle radians about Z and half that about X before being pushed depth units
// down the Z axis.
func WorldMatrix(angle float64, spinning bool, depth float64) math3d.Mat4 {
	translate := math3d.Translate(math3d.V3(0, 0, depth))
	if !spinning {
		return translate
	}
	return math3d.RotateZ(angle).Mul(math3d.RotateX(angle * 0.5)).Mul(translate)
}

// TransformTriangle applies m to every vertex of t, keeping its shade.
func TransformTriangle(m math3d.Mat4, t Triangle) Triangle {
	t.P[0] = m.MulVec4(t.P[0])
	t.P[1] = m.MulVec4(t.P[1])
	t.P[2] = m.MulVec4(t.P[2])
	return t
}
