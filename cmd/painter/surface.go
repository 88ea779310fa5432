package main

import (
	"image"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/painter/pkg/render"
)

// surface is a painter that can be shown on the terminal.
type surface interface {
	render.Painter

	// rowsPerCell is how many pixel rows one terminal row holds.
	rowsPerCell() int
	resize(cols, rows int)
	clear()
	Draw(scr uv.Screen, area uv.Rectangle)
}

// newSurface creates a surface for a cols×rows terminal: one shade glyph per
// cell, or two flat-colored pixels per cell in half-block mode.
func newSurface(halfBlock bool, cols, rows int) surface {
	if halfBlock {
		return &halfBlockSurface{render.NewImagePainter(image.NewRGBA(image.Rect(0, 0, cols, rows*2)))}
	}
	return &cellSurface{render.NewCellBuffer(cols, rows)}
}

// pixelSize returns the frame size a surface needs for a cols×rows
// terminal.
func pixelSize(s surface, cols, rows int) (int, int) {
	return cols, rows * s.rowsPerCell()
}

type cellSurface struct {
	*render.CellBuffer
}

func (s *cellSurface) rowsPerCell() int      { return 1 }
func (s *cellSurface) resize(cols, rows int) { s.Resize(cols, rows) }
func (s *cellSurface) clear()                { s.Clear(render.BlankCell) }

type halfBlockSurface struct {
	*render.ImagePainter
}

func (s *halfBlockSurface) rowsPerCell() int      { return 2 }
func (s *halfBlockSurface) resize(cols, rows int) { s.Resize(cols, rows*2) }
func (s *halfBlockSurface) clear()                { s.Clear(render.ShadeFor(0)) }
