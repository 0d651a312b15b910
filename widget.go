package eink

// Widget is anything that can be placed on a Canvas.
//
// Draw renders the widget through s, which targets img, resolving fonts
// through fonts. Widgets hold no reference to the canvas; they are drawn
// once and may be discarded afterwards.
type Widget interface {
	Position() (x, y int)
	Draw(s Surface, img *Bitmap, fonts *FontRegistry) error
}

// Placeable is a widget a layout can move.
type Placeable interface {
	Widget
	SetPosition(x, y int)
}

// Sizer is implemented by widgets with a fixed footprint.
type Sizer interface {
	Size() (width, height int)
}

// Origin is the position every widget embeds.
type Origin struct {
	X, Y int
}

// Position returns the widget position.
func (o *Origin) Position() (x, y int) {
	return o.X, o.Y
}

// SetPosition moves the widget.
func (o *Origin) SetPosition(x, y int) {
	o.X, o.Y = x, y
}

// Extent is the width and height embedded in box-shaped widgets.
type Extent struct {
	Width, Height int
}

// Size returns the widget footprint.
func (e *Extent) Size() (width, height int) {
	return e.Width, e.Height
}

func (e *Extent) box(o Origin) Rect {
	return R(o.X, o.Y, o.X+e.Width, o.Y+e.Height)
}
