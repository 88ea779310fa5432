package render

import (
	"fmt"

	"github.com/taigrr/painter/pkg/math3d"
)

// ClipTriangle clips t against plane, keeping the part on the normal's side.
// It returns up to two triangles and how many are valid. Vertices with a
// signed distance of exactly zero count as inside. Output triangles keep the
// parent's shade and winding.
func ClipTriangle(plane Plane, t Triangle) ([2]Triangle, int) {
	var out [2]Triangle
	var d [3]float64
	var inside, outside [3]int
	var nIn, nOut int

	for i := range 3 {
		d[i] = plane.SignedDistance(t.P[i].Vec3())
		if d[i] >= 0 {
			inside[nIn] = i
			nIn++
		} else {
			outside[nOut] = i
			nOut++
		}
	}

	switch nIn {
	case 0:
		return out, 0

	case 3:
		out[0] = t
		return out, 1

	case 1:
		// Shrink toward the single inside vertex, keeping vertex slots
		i := inside[0]
		a, b := (i+1)%3, (i+2)%3
		out[0] = t
		out[0].P[a] = intersect(t.P[i], t.P[a], d[i], d[a])
		out[0].P[b] = intersect(t.P[i], t.P[b], d[i], d[b])
		return out, 1

	case 2:
		// The inside region is the quad a, b, Ib, Ia; split it into a fan
		// from a so both halves wind like the parent
		o := outside[0]
		a, b := (o+1)%3, (o+2)%3
		ib := intersect(t.P[b], t.P[o], d[b], d[o])
		ia := intersect(t.P[a], t.P[o], d[a], d[o])

		out[0] = t
		out[0].P = [3]math3d.Vec4{t.P[a], t.P[b], ib}
		out[1] = t
		out[1].P = [3]math3d.Vec4{t.P[a], ib, ia}
		return out, 2
	}

	panic(fmt.Sprintf("render: clip partition of %d inside vertices", nIn))
}

// ClipAgainstPlane clips t against the plane through point with the given
// normal.
func ClipAgainstPlane(point, normal math3d.Vec3, t Triangle) ([2]Triangle, int) {
	return ClipTriangle(NewPlane(point, normal), t)
}

// intersect returns the point where the edge from p0 (distance d0, inside)
// to p1 (distance d1, outside) crosses the plane. All four components are
// interpolated.
func intersect(p0, p1 math3d.Vec4, d0, d1 float64) math3d.Vec4 {
	return p0.Lerp(p1, -d0/(d1-d0))
}

// Clipper clips screen-space triangles against the frame edges. Its
// worklist is reused between calls.
type Clipper struct {
	planes [4]Plane
	work   []Triangle
}

// NewClipper creates a clipper for a width×height frame.
func NewClipper(width, height int) *Clipper {
	return &Clipper{
		planes: ViewportPlanes(width, height),
		work:   make([]Triangle, 0, 64),
	}
}

// ClipToViewport clips t against the top, bottom, left and right edges in
// turn. Each edge consumes the fragments the previous edge produced.
// Fragments that collapse to zero area, such as a lone vertex touching an
// edge, are dropped. The returned slice is only valid until the next call.
func (c *Clipper) ClipToViewport(t Triangle) []Triangle {
	c.work = append(c.work[:0], t)
	start, end := 0, 1

	for _, plane := range c.planes {
		for i := start; i < end; i++ {
			out, n := ClipTriangle(plane, c.work[i])
			c.work = append(c.work, out[:n]...)
		}
		start, end = end, len(c.work)
	}

	out := c.work[start:end]
	n := 0
	for _, f := range out {
		if f.Area2D() != 0 {
			out[n] = f
			n++
		}
	}
	return out[:n]
}
