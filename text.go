package eink

import (
	"golang.org/x/text/unicode/norm"
)

// Text draws a single line of text.
//
// Style fields used: Fill (default Black), Font, FontSize (default
// medium) and Anchor (default left-ascender).
type Text struct {
	Origin
	Style
	Text string
}

// NewText creates a text widget at (x, y).
func NewText(x, y int, text string, opts ...StyleOption) *Text {
	return &Text{
		Origin: Origin{X: x, Y: y},
		Style:  newStyle(Style{Fill: Black, Outline: None, FontSize: FontMedium}, opts),
		Text:   text,
	}
}

// Draw implements Widget.
func (t *Text) Draw(s Surface, _ *Bitmap, fonts *FontRegistry) error {
	s.Text(Pt(float64(t.X), float64(t.Y)), label(t.Text), t.face(fonts), t.Fill, t.Anchor)
	return nil
}

// label prepares user text for glyph-by-glyph drawing: combining marks
// are composed so accented letters map to their precomposed glyphs.
func label(s string) string {
	return norm.NFC.String(s)
}
