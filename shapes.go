package eink

// Rectangle draws an axis-aligned box from (X, Y) to (X+Width, Y+Height).
//
// Style fields used: Fill (default White), Outline (default Black) and
// OutlineWidth (default 1).
type Rectangle struct {
	Origin
	Extent
	Style
}

// NewRectangle creates a box widget.
func NewRectangle(x, y, width, height int, opts ...StyleOption) *Rectangle {
	return &Rectangle{
		Origin: Origin{X: x, Y: y},
		Extent: Extent{Width: width, Height: height},
		Style:  newStyle(Style{Fill: White, Outline: Black, OutlineWidth: 1}, opts),
	}
}

// Draw implements Widget.
func (r *Rectangle) Draw(s Surface, _ *Bitmap, _ *FontRegistry) error {
	s.Rectangle(r.box(r.Origin), r.Fill, r.Outline, r.OutlineWidth)
	return nil
}

// LineSegment draws a straight line from (X, Y) to (X2, Y2).
// Moving the segment with SetPosition moves only its first end point.
//
// Style fields used: Fill (default Black) and OutlineWidth as the stroke
// width (default 1).
type LineSegment struct {
	Origin
	Style
	X2, Y2 int
}

// NewLineSegment creates a line widget.
func NewLineSegment(x1, y1, x2, y2 int, opts ...StyleOption) *LineSegment {
	return &LineSegment{
		Origin: Origin{X: x1, Y: y1},
		Style:  newStyle(Style{Fill: Black, Outline: None, OutlineWidth: 1}, opts),
		X2:     x2,
		Y2:     y2,
	}
}

// Draw implements Widget.
func (l *LineSegment) Draw(s Surface, _ *Bitmap, _ *FontRegistry) error {
	s.Line([]Point{
		Pt(float64(l.X), float64(l.Y)),
		Pt(float64(l.X2), float64(l.Y2)),
	}, l.Fill, l.OutlineWidth)
	return nil
}
