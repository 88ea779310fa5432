package main

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/painter/pkg/render"
)

var (
	hudBg     = color.RGBA{0, 0, 0, 255}
	fpsStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#5fff5f")).Background(hudBg)
	nameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(hudBg).Bold(true)
	polyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5fffff")).Background(hudBg).Bold(true)
	modeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(hudBg)
	hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffff5f")).Background(hudBg).Faint(true)
)

// hud renders an overlay with model info, frame stats and mode toggles.
type hud struct {
	filename  string
	polyCount int
	visible   bool

	fps       float64
	fpsFrames int
	fpsTime   time.Time
}

func newHUD(filename string, polyCount int, now time.Time) *hud {
	return &hud{
		filename:  filename,
		polyCount: polyCount,
		visible:   true,
		fpsTime:   now,
	}
}

// tick updates the FPS counter (call once per frame)
func (h *hud) tick(now time.Time) {
	h.fpsFrames++
	elapsed := now.Sub(h.fpsTime)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = now
	}
}

// spread lays out left, center and right segments across width columns.
func spread(width int, left, center, right string) string {
	lw, cw, rw := lipgloss.Width(left), lipgloss.Width(center), lipgloss.Width(right)
	gap := width - lw - cw - rw
	if gap < 2 {
		return left + " " + right
	}
	before := max((width-cw)/2-lw, 1)
	after := max(gap-before, 1)
	return left + strings.Repeat(" ", before) + center + strings.Repeat(" ", after) + right
}

func checkbox(on bool) string {
	if on {
		return "[✓]"
	}
	return "[ ]"
}

func (h *hud) topLine(width int) string {
	return spread(width,
		fpsStyle.Render(fmt.Sprintf(" %.0f FPS ", h.fps)),
		nameStyle.Render(" "+h.filename+" "),
		polyStyle.Render(fmt.Sprintf(" %d polys ", h.polyCount)),
	)
}

func (h *hud) bottomLine(width int, stats render.FrameStats, wireframe, spinning bool) string {
	mode := modeStyle.Render(fmt.Sprintf(" %s Wireframe  %s Spin  drawn %d  culled %d ",
		checkbox(wireframe), checkbox(spinning), stats.Emitted, stats.Culled))
	hint := hintStyle.Render(" WASD/arrows: move  ?: HUD ")
	return spread(width, mode, "", hint)
}

// draw paints the overlay onto the top and bottom rows of area.
func (h *hud) draw(scr uv.Screen, area uv.Rectangle, stats render.FrameStats, wireframe, spinning bool) {
	if !h.visible || area.Dy() < 2 {
		return
	}
	width := area.Dx()
	top := uv.Rect(area.Min.X, area.Min.Y, width, 1)
	bottom := uv.Rect(area.Min.X, area.Max.Y-1, width, 1)

	uv.NewStyledString(h.topLine(width)).Draw(scr, top)
	uv.NewStyledString(h.bottomLine(width, stats, wireframe, spinning)).Draw(scr, bottom)
}
