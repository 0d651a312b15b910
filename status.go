package eink

// StatusIndicator is a labelled box that inverts when active.
//
// The outer box is always white with a black border; the inner box,
// inset by two pixels, is black when Active. The label is centred and
// drawn in the complement of the inner fill, so it stays legible in both
// states.
//
// Style fields used: Font and FontSize (default medium).
type StatusIndicator struct {
	Origin
	Extent
	Style
	Text   string
	Active bool
}

// NewStatusIndicator creates a status box.
func NewStatusIndicator(x, y, width, height int, text string, active bool, opts ...StyleOption) *StatusIndicator {
	return &StatusIndicator{
		Origin: Origin{X: x, Y: y},
		Extent: Extent{Width: width, Height: height},
		Style:  newStyle(Style{Fill: None, Outline: None, FontSize: FontMedium}, opts),
		Text:   text,
		Active: active,
	}
}

// InnerFill returns the inner box colour for the current state.
func (si *StatusIndicator) InnerFill() Color {
	if si.Active {
		return Black
	}
	return White
}

// LabelFill returns the label colour for the current state.
func (si *StatusIndicator) LabelFill() Color {
	return si.InnerFill().Invert()
}

// Draw implements Widget.
func (si *StatusIndicator) Draw(s Surface, _ *Bitmap, fonts *FontRegistry) error {
	outer := si.box(si.Origin)
	s.Rectangle(outer, White, Black, 1)
	s.Rectangle(outer.Inset(2), si.InnerFill(), Black, 1)

	center := Pt(float64(si.X)+float64(si.Width)/2, float64(si.Y)+float64(si.Height)/2+1)
	s.Text(center, label(si.Text), si.face(fonts), si.LabelFill(), AnchorMiddleMiddle)
	return nil
}
