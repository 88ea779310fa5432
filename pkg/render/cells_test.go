package render

import (
	"testing"

	uv "github.com/charmbracelet/ultraviolet"
)

func countCells(b *CellBuffer, c Cell) int {
	n := 0
	for _, got := range b.Cells {
		if got == c {
			n++
		}
	}
	return n
}

func TestCellBufferSetAt(t *testing.T) {
	b := NewCellBuffer(4, 3)
	c := Cell{Glyph: 'x', Fg: ColorWhite, Bg: ColorGrey}

	b.Set(3, 2, c)
	b.Set(4, 0, c)  // out of bounds
	b.Set(-1, 0, c) // out of bounds

	if got := b.At(3, 2); got != c {
		t.Errorf("At(3,2) = %+v, want %+v", got, c)
	}
	if got := countCells(b, c); got != 1 {
		t.Errorf("%d cells set, want 1", got)
	}
	if got := b.At(9, 9); got != (Cell{}) {
		t.Errorf("out of bounds At = %+v, want zero", got)
	}
}

func TestCellBufferFill(t *testing.T) {
	b := NewCellBuffer(10, 10)
	tri := flat(0, 0, 9, 0, 0, 9)
	tri.Shade = ShadeFor(12)
	want := CellFor(tri.Shade)

	b.Fill(tri)

	// Every cell on or below the diagonal x+y <= 9, edges included
	for y := range 10 {
		for x := range 10 {
			inside := x+y <= 9
			if got := b.At(x, y) == want; got != inside {
				t.Errorf("cell (%d,%d) filled = %v, want %v", x, y, got, inside)
			}
		}
	}
}

func TestCellBufferFillEitherWinding(t *testing.T) {
	a := NewCellBuffer(20, 20)
	b := NewCellBuffer(20, 20)
	cw := flat(2, 3, 15, 6, 5, 17)
	ccw := flat(2, 3, 5, 17, 15, 6)
	cw.Shade, ccw.Shade = ShadeFor(5), ShadeFor(5)

	a.Fill(cw)
	b.Fill(ccw)

	filled := countCells(a, CellFor(cw.Shade))
	if filled == 0 {
		t.Fatal("nothing filled")
	}
	for i := range a.Cells {
		if a.Cells[i] != b.Cells[i] {
			t.Fatalf("windings differ at cell %d", i)
		}
	}
}

func TestCellBufferFillClipsToBuffer(t *testing.T) {
	b := NewCellBuffer(8, 8)
	tri := flat(-20, -20, 40, -20, -20, 40)
	tri.Shade = ShadeFor(1)

	b.Fill(tri)
	if got := countCells(b, CellFor(tri.Shade)); got != 64 {
		t.Errorf("filled %d cells, want 64", got)
	}
}

func TestCellBufferFillDegenerate(t *testing.T) {
	b := NewCellBuffer(8, 8)
	b.Fill(flat(1, 1, 4, 4, 6, 6))
	if got := countCells(b, BlankCell); got != 64 {
		t.Errorf("degenerate fill touched %d cells", 64-got)
	}
}

func TestCellBufferStroke(t *testing.T) {
	b := NewCellBuffer(10, 10)
	b.Stroke(flat(0, 0, 9, 0, 0, 9), WireframeShade)
	want := CellFor(WireframeShade)

	for _, p := range [][2]int{{0, 0}, {9, 0}, {0, 9}, {5, 0}, {0, 5}, {5, 4}} {
		if b.At(p[0], p[1]) != want {
			t.Errorf("cell %v not stroked", p)
		}
	}
	if b.At(3, 3) == want {
		t.Error("interior cell stroked")
	}
}

func TestCellBufferDrawLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		cells          int
	}{
		{"horizontal", 1, 2, 6, 2, 6},
		{"vertical", 3, 0, 3, 4, 5},
		{"diagonal", 0, 0, 4, 4, 5},
		{"reversed", 6, 2, 1, 2, 6},
		{"point", 2, 2, 2, 2, 1},
	}

	c := Cell{Glyph: '*', Fg: ColorWhite, Bg: ColorBlack}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewCellBuffer(8, 8)
			b.DrawLine(tc.x0, tc.y0, tc.x1, tc.y1, c)
			if got := countCells(b, c); got != tc.cells {
				t.Errorf("drew %d cells, want %d", got, tc.cells)
			}
			if b.At(tc.x0, tc.y0) != c || b.At(tc.x1, tc.y1) != c {
				t.Error("endpoints not drawn")
			}
		})
	}
}

func TestCellBufferResize(t *testing.T) {
	b := NewCellBuffer(4, 4)
	b.Set(1, 1, Cell{Glyph: 'x'})

	b.Resize(6, 2)
	if b.Width != 6 || b.Height != 2 || len(b.Cells) != 12 {
		t.Fatalf("size = %dx%d (%d cells), want 6x2", b.Width, b.Height, len(b.Cells))
	}
	if got := countCells(b, BlankCell); got != 12 {
		t.Errorf("%d blank cells after resize, want 12", got)
	}
}

func TestCellBufferDraw(t *testing.T) {
	b := NewCellBuffer(3, 2)
	b.Set(1, 0, CellFor(ShadeFor(7)))

	scr := uv.NewScreenBuffer(5, 4)
	b.Draw(scr, uv.Rect(1, 1, 4, 3))

	got := scr.CellAt(2, 1)
	if got == nil || got.Content != string(GlyphThreeQuarters) {
		t.Fatalf("screen cell = %+v, want %q", got, GlyphThreeQuarters)
	}
	if got.Style.Fg != ColorGrey || got.Style.Bg != ColorDarkGrey {
		t.Errorf("style = %v/%v, want grey on dark grey", got.Style.Fg, got.Style.Bg)
	}

	// Past the buffer's width the screen is untouched
	if got := scr.CellAt(4, 1); got != nil && got.Content != " " {
		t.Errorf("cell beyond buffer = %q, want blank", got.Content)
	}
}

func TestPresent(t *testing.T) {
	frame := Frame{Triangles: []Triangle{
		{Shade: ShadeFor(1)},
		{Shade: ShadeFor(2)},
	}}

	tests := []struct {
		name      string
		wireframe bool
		want      []string
	}{
		{"filled", false, []string{"fill 1", "fill 2"}},
		{"wireframe", true, []string{"fill 1", "stroke 1", "fill 2", "stroke 2"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := &recorder{}
			Present(frame, rec, tc.wireframe)
			if len(rec.calls) != len(tc.want) {
				t.Fatalf("calls = %v, want %v", rec.calls, tc.want)
			}
			for i := range tc.want {
				if rec.calls[i] != tc.want[i] {
					t.Errorf("call %d = %q, want %q", i, rec.calls[i], tc.want[i])
				}
			}
		})
	}
}

// recorder is a Painter that logs what it was asked to do.
type recorder struct {
	calls []string
}

func (r *recorder) Fill(t Triangle) {
	r.calls = append(r.calls, "fill "+string(rune('0'+t.Shade.Level)))
}

func (r *recorder) Stroke(t Triangle, s Shade) {
	if s != WireframeShade {
		panic("unexpected stroke shade")
	}
	r.calls = append(r.calls, "stroke "+string(rune('0'+t.Shade.Level)))
}

var (
	_ Painter    = (*CellBuffer)(nil)
	_ Painter    = (*ImagePainter)(nil)
	_ MeshSource = triangles(nil)
)
