// Package raster turns closed outlines into binary coverage for a 1-bit
// surface. Outlines are accumulated with golang.org/x/image/vector, the
// resulting coverage is thresholded at 50% and kept as per-row spans.
package raster

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// Path accumulates closed outlines in canvas coordinates and rasterizes
// them over a fixed window of the canvas.
type Path struct {
	z      *vector.Rasterizer
	window image.Rectangle
	open   bool
}

// NewPath creates a path whose coverage is computed over window.
func NewPath(window image.Rectangle) *Path {
	w, h := max(window.Dx(), 0), max(window.Dy(), 0)
	z := vector.NewRasterizer(w, h)
	z.DrawOp = draw.Src
	return &Path{z: z, window: window}
}

func (p *Path) local(x, y float64) (float32, float32) {
	return float32(x - float64(p.window.Min.X)), float32(y - float64(p.window.Min.Y))
}

// MoveTo starts a new subpath, closing the previous one.
func (p *Path) MoveTo(x, y float64) {
	if p.open {
		p.z.ClosePath()
	}
	p.z.MoveTo(p.local(x, y))
	p.open = true
}

// LineTo adds a straight segment.
func (p *Path) LineTo(x, y float64) {
	lx, ly := p.local(x, y)
	p.z.LineTo(lx, ly)
}

// CubicTo adds a cubic Bézier segment.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	ax, ay := p.local(c1x, c1y)
	bx, by := p.local(c2x, c2y)
	cx, cy := p.local(x, y)
	p.z.CubeTo(ax, ay, bx, by, cx, cy)
}

// Close closes the current subpath.
func (p *Path) Close() {
	if p.open {
		p.z.ClosePath()
		p.open = false
	}
}

// Arc continues the current subpath with an elliptical arc around
// (cx, cy) from angle a1 to a2 (radians, clockwise on screen because y
// grows downwards). The arc is split into quarter-turn cubic segments.
// If no subpath is open, one is started at the arc's first point.
func (p *Path) Arc(cx, cy, rx, ry, a1, a2 float64) {
	if !p.open {
		p.MoveTo(cx+rx*math.Cos(a1), cy+ry*math.Sin(a1))
	}
	if a2 <= a1 {
		return
	}
	const maxAngle = math.Pi / 2
	n := int(math.Ceil((a2 - a1) / maxAngle))
	step := (a2 - a1) / float64(n)
	for i := 0; i < n; i++ {
		s := a1 + float64(i)*step
		p.arcSegment(cx, cy, rx, ry, s, s+step)
	}
}

// arcSegment appends one cubic approximating the arc from a1 to a2,
// which must span at most a quarter turn.
func (p *Path) arcSegment(cx, cy, rx, ry, a1, a2 float64) {
	t := math.Tan((a2 - a1) / 2)
	alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*t*t) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	x1, y1 := cx+rx*cos1, cy+ry*sin1
	x2, y2 := cx+rx*cos2, cy+ry*sin2

	p.CubicTo(
		x1-alpha*rx*sin1, y1+alpha*ry*cos1,
		x2+alpha*rx*sin2, y2-alpha*ry*cos2,
		x2, y2,
	)
}

// Ellipse adds a closed ellipse.
func (p *Path) Ellipse(cx, cy, rx, ry float64) {
	p.MoveTo(cx+rx, cy)
	p.Arc(cx, cy, rx, ry, 0, 2*math.Pi)
	p.Close()
}

// Pie adds a closed wedge: centre, arc from a1 to a2, back to centre.
func (p *Path) Pie(cx, cy, rx, ry, a1, a2 float64) {
	p.MoveTo(cx, cy)
	p.LineTo(cx+rx*math.Cos(a1), cy+ry*math.Sin(a1))
	p.Arc(cx, cy, rx, ry, a1, a2)
	p.Close()
}

// Polygon adds a closed polygon through pts, given as x, y pairs.
func (p *Path) Polygon(pts ...float64) {
	if len(pts) < 6 {
		return
	}
	p.MoveTo(pts[0], pts[1])
	for i := 2; i+1 < len(pts); i += 2 {
		p.LineTo(pts[i], pts[i+1])
	}
	p.Close()
}

// Segment adds the quad covering a straight stroke of the given width
// between two points.
func (p *Path) Segment(x0, y0, x1, y1, width float64) {
	dx, dy := x1-x0, y1-y0
	l := math.Hypot(dx, dy)
	if l == 0 {
		h := width / 2
		p.Polygon(x0-h, y0-h, x0+h, y0-h, x0+h, y0+h, x0-h, y0+h)
		return
	}
	nx, ny := -dy/l*width/2, dx/l*width/2
	p.Polygon(x0+nx, y0+ny, x1+nx, y1+ny, x1-nx, y1-ny, x0-nx, y0-ny)
}

// Mask rasterizes everything added so far.
func (p *Path) Mask() *Mask {
	p.Close()
	a := image.NewAlpha(image.Rect(0, 0, max(p.window.Dx(), 0), max(p.window.Dy(), 0)))
	if !a.Rect.Empty() {
		p.z.Draw(a, a.Rect, image.Opaque, image.Point{})
	}
	return &Mask{origin: p.window.Min, alpha: a}
}
