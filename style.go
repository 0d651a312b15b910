package eink

import "golang.org/x/image/font"

// Style holds the paint and font settings shared by widgets. Each widget
// documents which fields it reads and starts from its own defaults.
type Style struct {
	Fill    Color
	Outline Color
	// OutlineWidth is the border width of boxes and the stroke width of
	// lines.
	OutlineWidth int
	// Font is an explicitly registered font name. It wins over FontSize
	// when registered.
	Font string
	// FontSize is a size bucket such as FontSmall.
	FontSize string
	Anchor   Anchor
}

// StyleOption adjusts a widget Style.
type StyleOption func(*Style)

// WithFill sets the fill colour.
func WithFill(c Color) StyleOption {
	return func(s *Style) { s.Fill = c }
}

// WithOutline sets the outline colour.
func WithOutline(c Color) StyleOption {
	return func(s *Style) { s.Outline = c }
}

// WithOutlineWidth sets the outline or stroke width in pixels.
func WithOutlineWidth(w int) StyleOption {
	return func(s *Style) { s.OutlineWidth = w }
}

// WithFont selects a registered font by name.
func WithFont(name string) StyleOption {
	return func(s *Style) { s.Font = name }
}

// WithFontSize selects a font size bucket.
func WithFontSize(size string) StyleOption {
	return func(s *Style) { s.FontSize = size }
}

// WithAnchor sets the text anchor.
func WithAnchor(a Anchor) StyleOption {
	return func(s *Style) { s.Anchor = a }
}

func newStyle(def Style, opts []StyleOption) Style {
	for _, opt := range opts {
		opt(&def)
	}
	return def
}

// face resolves the style's font: explicit name, size bucket, medium,
// built-in.
func (s *Style) face(fonts *FontRegistry) font.Face {
	return fonts.Face(s.Font, s.FontSize)
}
