package render

// Painter draws screen-space triangles onto a surface.
type Painter interface {
	// Fill paints the interior of t with its shade.
	Fill(t Triangle)
	// Stroke outlines t with s.
	Stroke(t Triangle, s Shade)
}

// Present paints a frame in order, far to near. With wireframe set each
// triangle is also outlined.
func Present(f Frame, p Painter, wireframe bool) {
	for _, t := range f.Triangles {
		p.Fill(t)
		if wireframe {
			p.Stroke(t, WireframeShade)
		}
	}
}
