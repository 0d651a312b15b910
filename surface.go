package eink

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/eink/internal/raster"
)

// Surface is the set of drawing primitives widgets render with.
//
// Boxes are given by inclusive corners, angles in degrees measured
// clockwise from 3 o'clock, and stroke widths in pixels. Outlines are
// drawn inside the shape they belong to. A None fill or outline is
// skipped. Coordinates outside the target are clipped silently.
type Surface interface {
	Rectangle(r Rect, fill, outline Color, width int)
	Ellipse(r Rect, fill, outline Color, width int)
	PieSlice(r Rect, start, end float64, fill, outline Color, width int)
	Line(pts []Point, fill Color, width int)
	Point(x, y int, fill Color)
	Text(at Point, s string, face font.Face, fill Color, anchor Anchor)
	TextBounds(at Point, s string, face font.Face, anchor Anchor) Rect
}

// bitmapSurface implements Surface directly on a Bitmap.
type bitmapSurface struct {
	dst *Bitmap
}

// NewSurface returns a Surface that draws onto b.
func NewSurface(b *Bitmap) Surface {
	return &bitmapSurface{dst: b}
}

func (s *bitmapSurface) Rectangle(r Rect, fill, outline Color, width int) {
	pr := r.Pixels()
	s.dst.FillRect(pr, fill)
	if !outline.Valid() || width <= 0 {
		return
	}
	w := width
	s.dst.FillRect(image.Rect(pr.Min.X, pr.Min.Y, pr.Max.X, pr.Min.Y+w), outline)
	s.dst.FillRect(image.Rect(pr.Min.X, pr.Max.Y-w, pr.Max.X, pr.Max.Y), outline)
	s.dst.FillRect(image.Rect(pr.Min.X, pr.Min.Y, pr.Min.X+w, pr.Max.Y), outline)
	s.dst.FillRect(image.Rect(pr.Max.X-w, pr.Min.Y, pr.Max.X, pr.Max.Y), outline)
}

// ellipseGeometry returns the centre and radii of the ellipse inscribed in
// the pixels of r, plus a rasterization window with a margin.
func ellipseGeometry(r Rect) (cx, cy, rx, ry float64, window image.Rectangle) {
	pr := r.Pixels()
	cx = float64(pr.Min.X+pr.Max.X) / 2
	cy = float64(pr.Min.Y+pr.Max.Y) / 2
	rx = float64(pr.Dx()) / 2
	ry = float64(pr.Dy()) / 2
	return cx, cy, rx, ry, pr.Inset(-2)
}

func (s *bitmapSurface) Ellipse(r Rect, fill, outline Color, width int) {
	cx, cy, rx, ry, window := ellipseGeometry(r)
	if rx <= 0 || ry <= 0 {
		return
	}
	outer := raster.NewPath(window)
	outer.Ellipse(cx, cy, rx, ry)
	m := outer.Mask()

	if fill.Valid() {
		s.fillMask(m, fill)
	}
	if !outline.Valid() || width <= 0 {
		return
	}
	w := float64(width)
	if rx > w && ry > w {
		inner := raster.NewPath(window)
		inner.Ellipse(cx, cy, rx-w, ry-w)
		m.Subtract(inner.Mask())
	}
	s.fillMask(m, outline)
}

func (s *bitmapSurface) PieSlice(r Rect, start, end float64, fill, outline Color, width int) {
	cx, cy, rx, ry, window := ellipseGeometry(r)
	if rx <= 0 || ry <= 0 {
		return
	}
	a1, a2, full := sweepRadians(start, end)

	pie := raster.NewPath(window)
	pie.Pie(cx, cy, rx, ry, a1, a2)
	outer := pie.Mask()
	if fill.Valid() {
		s.fillMask(outer, fill)
	}
	if !outline.Valid() || width <= 0 {
		return
	}

	w := float64(width)
	var inner *raster.Mask
	if rx > w && ry > w {
		p := raster.NewPath(window)
		p.Pie(cx, cy, rx-w, ry-w, a1, a2)
		inner = p.Mask()
	}
	var edges *raster.Mask
	if !full {
		p := raster.NewPath(window)
		// Each radial edge is stroked on the inner side of the wedge.
		sx, sy := math.Cos(a1), math.Sin(a1)
		ex, ey := math.Cos(a2), math.Sin(a2)
		ox, oy := -sy*w/2, sx*w/2
		p.Segment(cx+ox, cy+oy, cx+rx*sx+ox, cy+ry*sy+oy, w)
		ox, oy = ey*w/2, -ex*w/2
		p.Segment(cx+ox, cy+oy, cx+rx*ex+ox, cy+ry*ey+oy, w)
		edges = p.Mask()
	}

	b := window.Intersect(s.dst.Bounds())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if !outer.In(x, y) {
				continue
			}
			if inner == nil || !inner.In(x, y) || (edges != nil && edges.In(x, y)) {
				s.dst.SetColor(x, y, outline)
			}
		}
	}
}

func (s *bitmapSurface) Line(pts []Point, fill Color, width int) {
	if !fill.Valid() || len(pts) == 0 {
		return
	}
	if len(pts) == 1 {
		s.Point(int(math.Round(pts[0].X)), int(math.Round(pts[0].Y)), fill)
		return
	}
	if width <= 1 {
		for i := 1; i < len(pts); i++ {
			s.bresenham(pts[i-1], pts[i], fill)
		}
		return
	}

	window := image.Rectangle{}
	for _, p := range pts {
		q := image.Rect(int(math.Floor(p.X)), int(math.Floor(p.Y)), int(math.Ceil(p.X))+1, int(math.Ceil(p.Y))+1)
		window = window.Union(q)
	}
	window = window.Inset(-width)

	path := raster.NewPath(window)
	w := float64(width)
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		path.Segment(a.X+0.5, a.Y+0.5, b.X+0.5, b.Y+0.5, w)
	}
	s.fillMask(path.Mask(), fill)
}

// bresenham draws a one pixel wide line including both end points.
func (s *bitmapSurface) bresenham(a, b Point, c Color) {
	x0, y0 := int(math.Round(a.X)), int(math.Round(a.Y))
	x1, y1 := int(math.Round(b.X)), int(math.Round(b.Y))
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		s.dst.SetColor(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func (s *bitmapSurface) Point(x, y int, fill Color) {
	s.dst.SetColor(x, y, fill)
}

// textOrigin returns the dot (baseline start) for drawing str anchored at at.
func textOrigin(at Point, str string, face font.Face, anchor Anchor) fixed.Point26_6 {
	if anchor == "" {
		anchor = DefaultAnchor
	}
	m := face.Metrics()
	adv := fromFixed(font.MeasureString(face, str))
	x := at.X - adv*anchor.horizontal()
	y := at.Y + anchor.baseline(fromFixed(m.Ascent), fromFixed(m.Descent))
	return fixed.Point26_6{X: toFixed(x), Y: toFixed(y)}
}

func (s *bitmapSurface) Text(at Point, str string, face font.Face, fill Color, anchor Anchor) {
	if str == "" || face == nil || !fill.Valid() {
		return
	}
	src := image.NewUniform(color.Gray{Y: uint8(fill.Binary())})
	d := &font.Drawer{
		Dst:  s.dst,
		Src:  src,
		Face: face,
		Dot:  textOrigin(at, str, face, anchor),
	}
	d.DrawString(str)
}

func (s *bitmapSurface) TextBounds(at Point, str string, face font.Face, anchor Anchor) Rect {
	if face == nil {
		return Rect{X0: at.X, Y0: at.Y, X1: at.X, Y1: at.Y}
	}
	dot := textOrigin(at, str, face, anchor)
	b, _ := font.BoundString(face, str)
	return Rect{
		X0: fromFixed(dot.X + b.Min.X),
		Y0: fromFixed(dot.Y + b.Min.Y),
		X1: fromFixed(dot.X + b.Max.X),
		Y1: fromFixed(dot.Y + b.Max.Y),
	}
}

// fillMask paints every inside pixel of m.
func (s *bitmapSurface) fillMask(m *raster.Mask, c Color) {
	m.Stencil().Each(func(y int, sp raster.Span) {
		for x := sp.X0; x < sp.X1; x++ {
			s.dst.SetColor(x, y, c)
		}
	})
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
