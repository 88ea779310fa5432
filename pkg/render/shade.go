package render

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/taigrr/painter/pkg/math3d"
)

// Shade glyphs, from least to most foreground coverage.
const (
	GlyphQuarter       = '░'
	GlyphHalf          = '▒'
	GlyphThreeQuarters = '▓'
	GlyphSolid         = '█'
)

// Console palette.
var (
	ColorBlack    = color.RGBA{0, 0, 0, 255}
	ColorDarkGrey = color.RGBA{128, 128, 128, 255}
	ColorGrey     = color.RGBA{192, 192, 192, 255}
	ColorWhite    = color.RGBA{255, 255, 255, 255}
)

// Levels is the number of quantized illumination levels.
const Levels = 13

// MinIllumination is the ambient floor applied to every visible face.
const MinIllumination = 0.1

// LightDirection is the single directional light, in world space.
var LightDirection = math3d.V3(0, 0, -1)

// Shade is the color/glyph attribute of a face. The zero value (Glyph 0)
// marks a triangle that has not been through the lighting stage.
type Shade struct {
	Fg    color.RGBA
	Bg    color.RGBA
	Glyph rune
	Level int
}

// WireframeShade is used to stroke triangle edges.
var WireframeShade = Shade{Fg: ColorBlack, Bg: ColorBlack, Glyph: GlyphSolid}

// shadeTable maps a quantized level to a background, foreground and glyph.
// Each band of four levels steps through the coverage glyphs before moving
// to the next pair of greys.
var shadeTable = [Levels]Shade{
	{Bg: ColorBlack, Fg: ColorBlack, Glyph: GlyphSolid},
	{Bg: ColorBlack, Fg: ColorDarkGrey, Glyph: GlyphQuarter},
	{Bg: ColorBlack, Fg: ColorDarkGrey, Glyph: GlyphHalf},
	{Bg: ColorBlack, Fg: ColorDarkGrey, Glyph: GlyphThreeQuarters},
	{Bg: ColorBlack, Fg: ColorDarkGrey, Glyph: GlyphSolid},
	{Bg: ColorDarkGrey, Fg: ColorGrey, Glyph: GlyphQuarter},
	{Bg: ColorDarkGrey, Fg: ColorGrey, Glyph: GlyphHalf},
	{Bg: ColorDarkGrey, Fg: ColorGrey, Glyph: GlyphThreeQuarters},
	{Bg: ColorDarkGrey, Fg: ColorGrey, Glyph: GlyphSolid},
	{Bg: ColorGrey, Fg: ColorWhite, Glyph: GlyphQuarter},
	{Bg: ColorGrey, Fg: ColorWhite, Glyph: GlyphHalf},
	{Bg: ColorGrey, Fg: ColorWhite, Glyph: GlyphThreeQuarters},
	{Bg: ColorGrey, Fg: ColorWhite, Glyph: GlyphSolid},
}

// FaceNormal returns the unit normal (p1-p0)×(p2-p0) of a world-space
// triangle. Zero-area triangles return math3d.ErrZeroLength.
func FaceNormal(t Triangle) (math3d.Vec3, error) {
	p0 := t.P[0].Vec3()
	n := t.P[1].Vec3().Sub(p0).Cross(t.P[2].Vec3().Sub(p0))
	return n.Unit()
}

// Facing reports whether a face with the given normal, containing p0, faces
// the camera.
func Facing(normal, p0, camera math3d.Vec3) bool {
	return normal.Dot(p0.Sub(camera)) < 0
}

// Illumination returns the flat light intensity of a face, never below
// MinIllumination.
func Illumination(normal math3d.Vec3) float64 {
	return max(MinIllumination, normal.Dot(LightDirection.Normalize()))
}

// Quantize maps an intensity in [0, 1] to a level in [0, Levels-1].
func Quantize(illum float64) int {
	level := int(math.Floor(Levels * illum))
	return min(max(level, 0), Levels-1)
}

// ShadeFor returns the shade of a quantized level. Levels outside the table
// get black solid.
func ShadeFor(level int) Shade {
	if level < 0 || level >= Levels {
		return Shade{Fg: ColorBlack, Bg: ColorBlack, Glyph: GlyphSolid, Level: level}
	}
	s := shadeTable[level]
	s.Level = level
	return s
}

// Coverage returns the fraction of a cell the glyph paints in Fg.
func (s Shade) Coverage() float64 {
	switch s.Glyph {
	case GlyphQuarter:
		return 0.25
	case GlyphHalf:
		return 0.5
	case GlyphThreeQuarters:
		return 0.75
	case GlyphSolid:
		return 1
	}
	return 0
}

// Flatten blends Fg over Bg by glyph coverage, giving the single color a
// pixel painter should use.
func (s Shade) Flatten() color.RGBA {
	fg, _ := colorful.MakeColor(s.Fg)
	bg, _ := colorful.MakeColor(s.Bg)
	r, g, b := bg.BlendLinearRgb(fg, s.Coverage()).Clamped().RGB255()
	return color.RGBA{r, g, b, 255}
}
