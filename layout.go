package eink

// HorizontalLayout places widgets left to right on a common row.
//
// Example:
//
//	row := eink.NewHorizontalLayout(5, 30, 10)
//	c.AddWidget(row.Add(eink.NewStatusIndicator(0, 0, 60, 20, "WiFi", true)))
//	c.AddWidget(row.Add(eink.NewStatusIndicator(0, 0, 60, 20, "BT", false)))
type HorizontalLayout struct {
	X, Y    int
	Spacing int
	// CurrentX is where the next widget goes.
	CurrentX int
}

// NewHorizontalLayout starts a row at (x, y).
func NewHorizontalLayout(x, y, spacing int) *HorizontalLayout {
	return &HorizontalLayout{X: x, Y: y, Spacing: spacing, CurrentX: x}
}

// Add moves w to the cursor and advances by its width plus spacing.
// Widgets that do not implement Sizer leave the cursor where it is.
func (l *HorizontalLayout) Add(w Placeable) Placeable {
	w.SetPosition(l.CurrentX, l.Y)
	if sz, ok := w.(Sizer); ok {
		width, _ := sz.Size()
		l.CurrentX += width + l.Spacing
	}
	return w
}

// AddSized moves w to the cursor and advances by width plus spacing. A
// non-positive width falls back to Add.
func (l *HorizontalLayout) AddSized(w Placeable, width int) Placeable {
	if width <= 0 {
		return l.Add(w)
	}
	w.SetPosition(l.CurrentX, l.Y)
	l.CurrentX += width + l.Spacing
	return w
}

// VerticalLayout stacks widgets top to bottom in a common column.
type VerticalLayout struct {
	X, Y    int
	Spacing int
	// CurrentY is where the next widget goes.
	CurrentY int
}

// NewVerticalLayout starts a column at (x, y).
func NewVerticalLayout(x, y, spacing int) *VerticalLayout {
	return &VerticalLayout{X: x, Y: y, Spacing: spacing, CurrentY: y}
}

// Add moves w to the cursor and advances by its height plus spacing.
func (l *VerticalLayout) Add(w Placeable) Placeable {
	w.SetPosition(l.X, l.CurrentY)
	if sz, ok := w.(Sizer); ok {
		_, height := sz.Size()
		l.CurrentY += height + l.Spacing
	}
	return w
}

// AddSized moves w to the cursor and advances by height plus spacing.
func (l *VerticalLayout) AddSized(w Placeable, height int) Placeable {
	if height <= 0 {
		return l.Add(w)
	}
	w.SetPosition(l.X, l.CurrentY)
	l.CurrentY += height + l.Spacing
	return w
}
