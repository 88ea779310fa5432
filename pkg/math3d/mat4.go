package math3d

import "math"

// Mat4 is a 4x4 matrix stored row-major and applied to row vectors (v' = v * M).
// The zero value is the all-zero matrix, not the identity; use the builders
// below to obtain a meaningful transform.
//
// Cell layout for a rigid transform:
// | Xx Xy Xz 0 |   X,Y,Z = basis vectors (rotation/scale)
// | Yx Yy Yz 0 |   T = translation
// | Zx Zy Zz 0 |
// | Tx Ty Tz 1 |
type Mat4 [4][4]float64

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Translate creates a translation matrix.
func Translate(v Vec3) Mat4 {
	m := Identity()
	m[3][0] = v.X
	m[3][1] = v.Y
	m[3][2] = v.Z
	return m
}

// Scale creates a scaling matrix.
func Scale(v Vec3) Mat4 {
	return Mat4{
		{v.X, 0, 0, 0},
		{0, v.Y, 0, 0},
		{0, 0, v.Z, 0},
		{0, 0, 0, 1},
	}
}

// RotateX creates a rotation matrix around the X axis.
func RotateX(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat4{
		{1, 0, 0, 0},
		{0, c, s, 0},
		{0, -s, c, 0},
		{0, 0, 0, 1},
	}
}

// RotateY creates a rotation matrix around the Y axis.
func RotateY(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat4{
		{c, 0, s, 0},
		{0, 1, 0, 0},
		{-s, 0, c, 0},
		{0, 0, 0, 1},
	}
}

// RotateZ creates a rotation matrix around the Z axis.
func RotateZ(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat4{
		{c, s, 0, 0},
		{-s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Perspective creates a perspective projection matrix.
// fovDegrees is the field of view in degrees.
// aspect is height/width of the viewport.
// near and far are the clip distances along view-space z.
//
// View-space z is copied into the output W so the caller can perform the
// perspective divide after projecting.
func Perspective(fovDegrees, aspect, near, far float64) Mat4 {
	fovRad := 1.0 / math.Tan(fovDegrees*0.5/180.0*math.Pi)

	var m Mat4
	m[0][0] = aspect * fovRad
	m[1][1] = fovRad
	m[2][2] = far / (far - near)
	m[3][2] = -far * near / (far - near)
	m[2][3] = 1
	m[3][3] = 0
	return m
}

// PointAt places an object at pos oriented toward target.
// This is the camera's own transform; invert it with InvertRigid to obtain
// a view matrix.
func PointAt(pos, target, up Vec3) Mat4 {
	forward := target.Sub(pos).Normalize()
	newUp := up.Sub(forward.Scale(up.Dot(forward))).Normalize()
	right := newUp.Cross(forward)

	return Mat4{
		{right.X, right.Y, right.Z, 0},
		{newUp.X, newUp.Y, newUp.Z, 0},
		{forward.X, forward.Y, forward.Z, 0},
		{pos.X, pos.Y, pos.Z, 1},
	}
}

// InvertRigid inverts a rotation+translation matrix such as PointAt output by
// transposing the rotation block and rotating the negated translation.
//
// The result is only correct when the upper 3x3 block is orthonormal (no
// scale, no shear). This is not checked.
func InvertRigid(m Mat4) Mat4 {
	var inv Mat4
	for r := range 3 {
		for c := range 3 {
			inv[r][c] = m[c][r]
		}
	}
	t := m.Translation()
	for c := range 3 {
		inv[3][c] = -(t.X*inv[0][c] + t.Y*inv[1][c] + t.Z*inv[2][c])
	}
	inv[3][3] = 1
	return inv
}

// Mul multiplies two matrices: a * b.
// With row vectors, v * (a * b) applies a first, then b.
//
//nolint:st1016 // a*b naming convention is clearer for matrix multiplication
func (a Mat4) Mul(b Mat4) Mat4 {
	var m Mat4
	for r := range 4 {
		for c := range 4 {
			m[r][c] = a[r][0]*b[0][c] + a[r][1]*b[1][c] + a[r][2]*b[2][c] + a[r][3]*b[3][c]
		}
	}
	return m
}

// MulVec4 transforms a homogeneous vector. W is carried through unchanged
// in meaning; no divide is performed.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		v.X*m[0][0] + v.Y*m[1][0] + v.Z*m[2][0] + v.W*m[3][0],
		v.X*m[0][1] + v.Y*m[1][1] + v.Z*m[2][1] + v.W*m[3][1],
		v.X*m[0][2] + v.Y*m[1][2] + v.Z*m[2][2] + v.W*m[3][2],
		v.X*m[0][3] + v.Y*m[1][3] + v.Z*m[2][3] + v.W*m[3][3],
	}
}

// MulPoint transforms a Vec3 as a point (w=1) and drops W.
// Only meaningful for affine matrices.
func (m Mat4) MulPoint(v Vec3) Vec3 {
	return m.MulVec4(V4FromV3(v, 1)).Vec3()
}

// MulDir transforms a Vec3 as a direction (w=0, no translation).
func (m Mat4) MulDir(v Vec3) Vec3 {
	return m.MulVec4(V4FromV3(v, 0)).Vec3()
}

// ApproxEqual reports whether every cell of a and b differs by at most eps.
func (a Mat4) ApproxEqual(b Mat4, eps float64) bool {
	for r := range 4 {
		for c := range 4 {
			if math.Abs(a[r][c]-b[r][c]) > eps {
				return false
			}
		}
	}
	return true
}

// Translation extracts the translation component.
func (m Mat4) Translation() Vec3 {
	return Vec3{m[3][0], m[3][1], m[3][2]}
}
