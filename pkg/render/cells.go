package render

import (
	"image/color"
	"math"

	"github.com/taigrr/painter/pkg/math3d"
)

// Cell is one character position of a console grid.
type Cell struct {
	Glyph rune
	Fg    color.RGBA
	Bg    color.RGBA
}

// BlankCell is a space on black.
var BlankCell = Cell{Glyph: ' ', Fg: ColorWhite, Bg: ColorBlack}

// CellFor returns the cell a shade paints.
func CellFor(s Shade) Cell {
	return Cell{Glyph: s.Glyph, Fg: s.Fg, Bg: s.Bg}
}

// CellBuffer is a grid of glyph cells, one per pixel of the frame. It
// implements Painter and can be drawn onto a terminal screen.
type CellBuffer struct {
	Width  int    // Width in cells (terminal columns)
	Height int    // Height in cells (terminal rows)
	Cells  []Cell // Row-major cell data
}

// NewCellBuffer creates a blank cell buffer with the given dimensions.
func NewCellBuffer(width, height int) *CellBuffer {
	b := &CellBuffer{
		Width:  width,
		Height: height,
		Cells:  make([]Cell, width*height),
	}
	b.Clear(BlankCell)
	return b
}

// Resize changes the dimensions, reusing storage when it is large enough.
// The contents are cleared.
func (b *CellBuffer) Resize(width, height int) {
	n := width * height
	if cap(b.Cells) < n {
		b.Cells = make([]Cell, n)
	}
	b.Cells = b.Cells[:n]
	b.Width = width
	b.Height = height
	b.Clear(BlankCell)
}

// Clear fills every cell with c.
func (b *CellBuffer) Clear(c Cell) {
	for i := range b.Cells {
		b.Cells[i] = c
	}
}

// Set sets the cell at (x, y). Out-of-bounds writes are ignored.
func (b *CellBuffer) Set(x, y int, c Cell) {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return
	}
	b.Cells[y*b.Width+x] = c
}

// At returns the cell at (x, y), or the zero Cell if out of bounds.
func (b *CellBuffer) At(x, y int) Cell {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return Cell{}
	}
	return b.Cells[y*b.Width+x]
}

// edge is an edge function of a directed segment: zero on the line,
// positive on one side. It steps incrementally across a scanline.
type edge struct {
	a, b         math3d.Vec2
	stepX, stepY float64
}

func newEdge(a, b math3d.Vec2) edge {
	return edge{a: a, b: b, stepX: -(b.Y - a.Y), stepY: b.X - a.X}
}

func (e edge) at(x, y float64) float64 {
	return (e.b.X-e.a.X)*(y-e.a.Y) - (e.b.Y-e.a.Y)*(x-e.a.X)
}

// Fill paints every cell whose integer coordinate lies inside t, including
// its edges. Either winding is accepted.
func (b *CellBuffer) Fill(t Triangle) {
	p := t.Points()
	area := p[1].Sub(p[0]).Cross(p[2].Sub(p[0]))
	if area == 0 {
		return
	}
	sign := 1.0
	if area < 0 {
		sign = -1
	}

	minX := max(0, int(math.Ceil(min(p[0].X, p[1].X, p[2].X))))
	maxX := min(b.Width-1, int(math.Floor(max(p[0].X, p[1].X, p[2].X))))
	minY := max(0, int(math.Ceil(min(p[0].Y, p[1].Y, p[2].Y))))
	maxY := min(b.Height-1, int(math.Floor(max(p[0].Y, p[1].Y, p[2].Y))))
	if minX > maxX || minY > maxY {
		return
	}

	e0 := newEdge(p[1], p[2])
	e1 := newEdge(p[2], p[0])
	e2 := newEdge(p[0], p[1])

	cell := CellFor(t.Shade)
	fx, fy := float64(minX), float64(minY)
	row0, row1, row2 := e0.at(fx, fy)*sign, e1.at(fx, fy)*sign, e2.at(fx, fy)*sign

	for y := minY; y <= maxY; y++ {
		w0, w1, w2 := row0, row1, row2
		for x := minX; x <= maxX; x++ {
			if w0 >= 0 && w1 >= 0 && w2 >= 0 {
				b.Cells[y*b.Width+x] = cell
			}
			w0 += e0.stepX * sign
			w1 += e1.stepX * sign
			w2 += e2.stepX * sign
		}
		row0 += e0.stepY * sign
		row1 += e1.stepY * sign
		row2 += e2.stepY * sign
	}
}

// Stroke outlines t with s.
func (b *CellBuffer) Stroke(t Triangle, s Shade) {
	c := CellFor(s)
	p := t.Points()
	for i := range 3 {
		a, e := p[i], p[(i+1)%3]
		b.DrawLine(int(math.Round(a.X)), int(math.Round(a.Y)), int(math.Round(e.X)), int(math.Round(e.Y)), c)
	}
}

// DrawLine draws a line from (x0, y0) to (x1, y1) using Bresenham's algorithm.
func (b *CellBuffer) DrawLine(x0, y0, x1, y1 int, c Cell) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		b.Set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
