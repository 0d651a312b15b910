package eink

import (
	"math"
	"strconv"
)

// ProgressBar is a horizontal bar filled in proportion to Progress.
//
// Style fields used: Font and FontSize (default small) for the
// percentage label.
type ProgressBar struct {
	Origin
	Extent
	Style
	// Progress is a percentage; values outside [0, 100] are clamped.
	Progress float64
	// ShowPercentage draws a centred "NN%" label on a white backing box.
	ShowPercentage bool
}

// NewProgressBar creates a progress bar showing its percentage.
func NewProgressBar(x, y, width, height int, progress float64, opts ...StyleOption) *ProgressBar {
	return &ProgressBar{
		Origin:         Origin{X: x, Y: y},
		Extent:         Extent{Width: width, Height: height},
		Style:          newStyle(Style{Fill: Black, Outline: Black, FontSize: FontSmall}, opts),
		Progress:       clamp(progress, 0, 100),
		ShowPercentage: true,
	}
}

// FillWidth returns the width in pixels of the filled part of the track:
// floor((Width-4) * progress / 100) with progress clamped.
func (p *ProgressBar) FillWidth() int {
	return int(math.Floor(float64(p.Width-4) * clamp(p.Progress, 0, 100) / 100))
}

// Draw implements Widget.
func (p *ProgressBar) Draw(s Surface, _ *Bitmap, fonts *FontRegistry) error {
	s.Rectangle(p.box(p.Origin), White, Black, 1)

	if fw := p.FillWidth(); fw > 0 {
		s.Rectangle(R(p.X+2, p.Y+2, p.X+2+fw, p.Y+p.Height-2), Black, None, 0)
	}

	if !p.ShowPercentage {
		return nil
	}
	text := strconv.Itoa(int(clamp(p.Progress, 0, 100))) + "%"
	face := fonts.Face(p.Font, p.FontSize, FontSmall)
	center := Pt(float64(p.X)+float64(p.Width)/2, float64(p.Y)+float64(p.Height)/2)

	s.Rectangle(s.TextBounds(center, text, face, AnchorMiddleMiddle), White, None, 0)
	s.Text(center, text, face, Black, AnchorMiddleMiddle)
	return nil
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
