package eink

import (
	"image"
	"math"
)

// Point is a position on the canvas. Coordinates may be fractional;
// text anchors in particular are often placed on half pixels.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Rect is an axis-aligned box given by two corners. Both corners are
// inclusive: Rect{0, 0, 9, 9} covers a 10x10 block of pixels.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// R is a convenience function to create a Rect from integer corners.
func R(x0, y0, x1, y1 int) Rect {
	return Rect{X0: float64(x0), Y0: float64(y0), X1: float64(x1), Y1: float64(y1)}
}

// Canon returns r with X0 <= X1 and Y0 <= Y1.
func (r Rect) Canon() Rect {
	if r.X1 < r.X0 {
		r.X0, r.X1 = r.X1, r.X0
	}
	if r.Y1 < r.Y0 {
		r.Y0, r.Y1 = r.Y1, r.Y0
	}
	return r
}

// Pixels returns the half-open pixel rectangle covered by r.
func (r Rect) Pixels() image.Rectangle {
	r = r.Canon()
	return image.Rect(
		int(math.Round(r.X0)), int(math.Round(r.Y0)),
		int(math.Round(r.X1))+1, int(math.Round(r.Y1))+1,
	)
}

// Inset shrinks r by d on every side.
func (r Rect) Inset(d float64) Rect {
	return Rect{X0: r.X0 + d, Y0: r.Y0 + d, X1: r.X1 - d, Y1: r.Y1 - d}
}

// Dx returns the distance between the horizontal corners.
func (r Rect) Dx() float64 { return r.X1 - r.X0 }

// Dy returns the distance between the vertical corners.
func (r Rect) Dy() float64 { return r.Y1 - r.Y0 }
