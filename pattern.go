package eink

import (
	"image"
	"math"

	"github.com/gogpu/eink/internal/raster"
)

// Hatch is a 1-bit texture used to tell donut sectors apart without grey
// levels.
type Hatch int

const (
	// HatchHorizontal inks every spacing-th row.
	HatchHorizontal Hatch = iota
	// HatchVertical inks every spacing-th column.
	HatchVertical
	// HatchDiagonalDown inks diagonals of constant x-y, running from top
	// left to bottom right.
	HatchDiagonalDown
	// HatchDiagonalUp inks diagonals of constant x+y.
	HatchDiagonalUp
	// HatchDots inks the intersections of a square grid.
	HatchDots
	// HatchCrosshatch is HatchHorizontal and HatchVertical together.
	HatchCrosshatch
)

// DefaultHatches is the round-robin order sectors are textured in.
var DefaultHatches = []Hatch{
	HatchHorizontal,
	HatchVertical,
	HatchDiagonalDown,
	HatchDiagonalUp,
	HatchDots,
	HatchCrosshatch,
}

// DefaultHatchSpacing is the on/off period of every texture, in pixels.
const DefaultHatchSpacing = 3

// String returns the hatch name.
func (h Hatch) String() string {
	switch h {
	case HatchHorizontal:
		return "horizontal"
	case HatchVertical:
		return "vertical"
	case HatchDiagonalDown:
		return "diagonal1"
	case HatchDiagonalUp:
		return "diagonal2"
	case HatchDots:
		return "dots"
	case HatchCrosshatch:
		return "crosshatch"
	default:
		return "unknown"
	}
}

// rowStride describes the inked pixels of row dy of a box of height h:
// every x offset congruent to phase modulo step. ok is false when the row
// carries no ink at all.
func (h Hatch) rowStride(dy, height, spacing int) (phase, step int, ok bool) {
	onGrid := dy%spacing == 0
	switch h {
	case HatchHorizontal:
		return 0, 1, onGrid
	case HatchVertical:
		return 0, spacing, true
	case HatchDiagonalDown:
		return dy - height, spacing, true
	case HatchDiagonalUp:
		return -dy, spacing, true
	case HatchDots:
		return 0, spacing, onGrid
	case HatchCrosshatch:
		if onGrid {
			return 0, 1, true
		}
		return 0, spacing, true
	}
	return 0, 0, false
}

// wedgeStencil returns the pixels of the pie slice inscribed in box
// between start and end degrees, minus the disc inscribed in hole. A hole
// with no area is ignored.
func wedgeStencil(box, hole Rect, start, end float64) *raster.Stencil {
	cx, cy, rx, ry, window := ellipseGeometry(box)
	window = window.Inset(-10)

	p := raster.NewPath(window)
	a1, a2, _ := sweepRadians(start, end)
	p.Pie(cx, cy, rx, ry, a1, a2)
	m := p.Mask()

	if hole.Dx() > 0 && hole.Dy() > 0 {
		hx, hy, hrx, hry, _ := ellipseGeometry(hole)
		h := raster.NewPath(window)
		h.Ellipse(hx, hy, hrx, hry)
		m.Subtract(h.Mask())
	}
	return m.Stencil()
}

// fillHatch inks every stencil pixel inside box that the texture selects.
// Phases are measured from the box's top-left pixel in exact integer
// arithmetic.
func fillHatch(dst *Bitmap, st *raster.Stencil, box image.Rectangle, h Hatch, spacing int, ink Color) {
	if spacing < 1 {
		spacing = 1
	}
	height := box.Dy()
	for y := box.Min.Y; y < box.Max.Y; y++ {
		dy := y - box.Min.Y
		phase, step, ok := h.rowStride(dy, height, spacing)
		if !ok {
			continue
		}
		for _, sp := range st.Row(y) {
			a := max(sp.X0, box.Min.X) - box.Min.X
			b := min(sp.X1, box.Max.X) - box.Min.X
			for dx := a + mod(phase-a, step); dx < b; dx += step {
				dst.SetColor(box.Min.X+dx, y, ink)
			}
		}
	}
}

// sweepRadians converts a clockwise degree range into radians with
// a2 >= a1. Sweeps of 360 degrees or more are reported as full and span
// exactly one turn.
func sweepRadians(start, end float64) (a1, a2 float64, full bool) {
	for end < start {
		end += 360
	}
	a1 = start * math.Pi / 180
	if end-start >= 360 {
		return a1, a1 + 2*math.Pi, true
	}
	return a1, end * math.Pi / 180, false
}

func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
