package eink

import (
	"path/filepath"
)

// Canvas is a 1-bit frame under construction.
//
// The canvas exclusively owns its bitmap and font registry. Each
// AddWidget call lends both to the widget for the duration of its Draw,
// so draws happen strictly in call order and later widgets overwrite
// earlier ones. A Canvas is not safe for concurrent use.
type Canvas struct {
	width   int
	height  int
	bitmap  *Bitmap
	surface Surface
	fonts   *FontRegistry
}

// NewCanvas creates a white canvas and loads the default font family from
// fontDir. If the family cannot be loaded every standard size falls back
// to a built-in face; NewCanvas itself never fails.
func NewCanvas(width, height int, fontDir string, opts ...Option) *Canvas {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	bitmap := NewBitmap(width, height)
	fonts := NewFontRegistry(options.loader)
	fonts.LoadDefaults(filepath.Join(fontDir, options.fontFile), options.sizes)

	return &Canvas{
		width:   bitmap.Width(),
		height:  bitmap.Height(),
		bitmap:  bitmap,
		surface: NewSurface(bitmap),
		fonts:   fonts,
	}
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.height
}

// Fonts returns the canvas font registry.
func (c *Canvas) Fonts() *FontRegistry {
	return c.fonts
}

// RegisterFont loads path at size under name. Failures are logged and
// leave name aliased to the medium font.
//
// Example:
//
//	c.RegisterFont("title", "/usr/share/fonts/Lato-Bold.ttf", 30)
//	c.AddWidget(eink.NewText(10, 10, "Hello", eink.WithFont("title")))
func (c *Canvas) RegisterFont(name, path string, size float64) {
	c.fonts.Register(name, path, size)
}

// RegisterFontFamily registers prefix_small, prefix_medium and so on from
// one file. A nil sizes map uses DefaultSizes.
func (c *Canvas) RegisterFontFamily(prefix, path string, sizes SizeMap) {
	c.fonts.RegisterFamily(prefix, path, sizes)
}

// Clear fills the whole canvas with col.
func (c *Canvas) Clear(col Color) {
	c.bitmap.Clear(col)
}

// AddWidget draws w onto the canvas immediately and returns it.
// Only vector images report errors; see ErrVectorRead and ErrVectorRender.
func (c *Canvas) AddWidget(w Widget) (Widget, error) {
	if err := w.Draw(c.surface, c.bitmap, c.fonts); err != nil {
		return w, err
	}
	return w, nil
}

// Image returns the live canvas bitmap.
func (c *Canvas) Image() *Bitmap {
	return c.bitmap
}

// Export returns a copy of the frame rotated for a panel.
func (c *Canvas) Export(o Orientation) *Bitmap {
	return c.bitmap.Rotate(o)
}
