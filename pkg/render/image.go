package render

import (
	"image"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/taigrr/painter/pkg/math3d"
)

// ImagePainter paints triangles into an RGBA image using each shade's
// flattened color. It implements Painter, and Draw shows the image on a
// terminal at two pixel rows per cell.
type ImagePainter struct {
	Img *image.RGBA

	// StrokeWidth is the outline width in pixels.
	StrokeWidth float64

	z *vector.Rasterizer
}

// NewImagePainter creates a painter targeting img.
func NewImagePainter(img *image.RGBA) *ImagePainter {
	b := img.Bounds()
	return &ImagePainter{
		Img:         img,
		StrokeWidth: 1,
		z:           vector.NewRasterizer(b.Dx(), b.Dy()),
	}
}

// Resize replaces the image with a blank width×height one when the size
// changes.
func (p *ImagePainter) Resize(width, height int) {
	if b := p.Img.Bounds(); b.Dx() == width && b.Dy() == height {
		return
	}
	p.Img = image.NewRGBA(image.Rect(0, 0, width, height))
}

// Clear fills the whole image with the flattened color of s.
func (p *ImagePainter) Clear(s Shade) {
	draw.Draw(p.Img, p.Img.Bounds(), image.NewUniform(s.Flatten()), image.Point{}, draw.Src)
}

// Fill paints the interior of t.
func (p *ImagePainter) Fill(t Triangle) {
	pts := t.Points()
	p.begin()
	p.polygon(pts[:]...)
	p.paint(t.Shade)
}

// Stroke outlines t with s as three thin quads.
func (p *ImagePainter) Stroke(t Triangle, s Shade) {
	pts := t.Points()
	half := p.StrokeWidth / 2
	p.begin()
	for i := range 3 {
		a, b := pts[i], pts[(i+1)%3]
		d := b.Sub(a)
		length := d.Len()
		if length == 0 {
			continue
		}
		// Perpendicular offset of half the stroke width
		n := math3d.V2(-d.Y/length*half, d.X/length*half)
		p.polygon(
			math3d.V2(a.X+n.X, a.Y+n.Y),
			math3d.V2(b.X+n.X, b.Y+n.Y),
			math3d.V2(b.X-n.X, b.Y-n.Y),
			math3d.V2(a.X-n.X, a.Y-n.Y),
		)
	}
	p.paint(s)
}

func (p *ImagePainter) begin() {
	b := p.Img.Bounds()
	p.z.Reset(b.Dx(), b.Dy())
}

func (p *ImagePainter) polygon(pts ...math3d.Vec2) {
	p.z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, pt := range pts[1:] {
		p.z.LineTo(float32(pt.X), float32(pt.Y))
	}
	p.z.ClosePath()
}

func (p *ImagePainter) paint(s Shade) {
	p.z.Draw(p.Img, p.Img.Bounds(), image.NewUniform(s.Flatten()), image.Point{})
}
