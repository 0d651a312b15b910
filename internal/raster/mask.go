package raster

import (
	"image"
)

// Threshold is the coverage at and above which a pixel counts as inside.
const Threshold = 0x80

// Mask is rasterized coverage positioned in canvas space.
type Mask struct {
	origin image.Point
	alpha  *image.Alpha
}

// Bounds returns the canvas rectangle the mask covers.
func (m *Mask) Bounds() image.Rectangle {
	return m.alpha.Rect.Add(m.origin)
}

// Coverage returns the raw coverage at canvas position (x, y).
func (m *Mask) Coverage(x, y int) uint8 {
	p := image.Pt(x, y).Sub(m.origin)
	if !p.In(m.alpha.Rect) {
		return 0
	}
	return m.alpha.Pix[m.alpha.PixOffset(p.X, p.Y)]
}

// In reports whether (x, y) is inside the thresholded mask.
func (m *Mask) In(x, y int) bool {
	return m.Coverage(x, y) >= Threshold
}

// Subtract removes every pixel of o from m.
func (m *Mask) Subtract(o *Mask) {
	r := m.Bounds().Intersect(o.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if o.In(x, y) {
				p := image.Pt(x, y).Sub(m.origin)
				m.alpha.Pix[m.alpha.PixOffset(p.X, p.Y)] = 0
			}
		}
	}
}

// Stencil converts the mask into per-row spans.
func (m *Mask) Stencil() *Stencil {
	b := m.Bounds()
	s := &Stencil{rect: b, rows: make([][]Span, b.Dy())}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		var row []Span
		start := -1
		for x := b.Min.X; x < b.Max.X; x++ {
			in := m.In(x, y)
			switch {
			case in && start < 0:
				start = x
			case !in && start >= 0:
				row = append(row, Span{X0: start, X1: x})
				start = -1
			}
		}
		if start >= 0 {
			row = append(row, Span{X0: start, X1: b.Max.X})
		}
		s.rows[y-b.Min.Y] = row
	}
	return s
}
