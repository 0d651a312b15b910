package eink

import "math"

// NotchGauge is a vertical level meter made of discrete cells filled
// from the bottom up.
type NotchGauge struct {
	Origin
	Extent
	// Level is a percentage; the filled cell count is clamped to
	// [0, Notches].
	Level   float64
	Notches int
	// Spacing is the gap in pixels between cells.
	Spacing int
}

// NewNotchGauge creates a five-cell gauge with 3 px gaps.
func NewNotchGauge(x, y, width, height int, level float64) *NotchGauge {
	return &NotchGauge{
		Origin:  Origin{X: x, Y: y},
		Extent:  Extent{Width: width, Height: height},
		Level:   level,
		Notches: 5,
		Spacing: 3,
	}
}

// Filled returns how many cells are on: level*notches/100 rounded half
// to even, clamped to [0, Notches].
func (g *NotchGauge) Filled() int {
	if g.Notches <= 0 || math.IsNaN(g.Level) {
		return 0
	}
	n := int(math.RoundToEven(g.Level * float64(g.Notches) / 100))
	return min(g.Notches, max(0, n))
}

// NotchHeight returns the height of one cell. Remainder pixels left by
// the integer division are not redistributed.
func (g *NotchGauge) NotchHeight() int {
	if g.Notches <= 0 {
		return 0
	}
	return (g.Height - g.Spacing*(g.Notches-1)) / g.Notches
}

// Draw implements Widget.
func (g *NotchGauge) Draw(s Surface, _ *Bitmap, _ *FontRegistry) error {
	filled := g.Filled()
	h := g.NotchHeight()
	for i := 0; i < g.Notches; i++ {
		bottom := g.Y + g.Height - i*(h+g.Spacing)
		top := bottom - h
		s.Rectangle(R(g.X, top, g.X+g.Width, bottom), White, Black, 1)
		if i < filled {
			s.Rectangle(R(g.X+2, top+2, g.X+g.Width-2, bottom-2), Black, None, 0)
		}
	}
	return nil
}
