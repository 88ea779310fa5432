package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// HalfBlock is the glyph ImagePainter.Draw uses: the foreground paints the
// upper half of the cell and the background the lower half.
const HalfBlock = "▀"

// Draw copies the buffer onto the screen area, one cell per terminal cell.
func (b *CellBuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y && row-area.Min.Y < b.Height; row++ {
		for col := area.Min.X; col < area.Max.X && col-area.Min.X < b.Width; col++ {
			c := b.Cells[(row-area.Min.Y)*b.Width+(col-area.Min.X)]
			scr.SetCell(col, row, &uv.Cell{
				Content: string(c.Glyph),
				Width:   1,
				Style: uv.Style{
					Fg: rgbaToColor(c.Fg),
					Bg: rgbaToColor(c.Bg),
				},
			})
		}
	}
}

// Draw converts the image to half-block cells on the screen area. Each
// terminal row shows two pixel rows, so the image should be twice as tall
// as the area.
func (p *ImagePainter) Draw(scr uv.Screen, area uv.Rectangle) {
	b := p.Img.Bounds()

	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := b.Min.Y + (row-area.Min.Y)*2
		if topY >= b.Max.Y {
			break
		}
		botY := topY + 1

		for col := area.Min.X; col < area.Max.X && col-area.Min.X < b.Dx(); col++ {
			x := b.Min.X + col - area.Min.X
			scr.SetCell(col, row, &uv.Cell{
				Content: HalfBlock,
				Width:   1,
				Style: uv.Style{
					Fg: rgbaToColor(p.Img.RGBAAt(x, topY)),
					Bg: rgbaToColor(p.Img.RGBAAt(x, botY)),
				},
			})
		}
	}
}

// rgbaToColor converts color.RGBA to Go's color.Color interface.
func rgbaToColor(c color.RGBA) color.Color {
	if c.A == 0 {
		return nil // Transparent = no color
	}
	return c
}
