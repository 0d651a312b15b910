package eink

import "math"

// LineGraph plots a series as a polyline inside a bordered box.
// Values are normalised between Min and Max; with fewer than two points
// or an empty range nothing is drawn.
type LineGraph struct {
	Origin
	Extent
	Data     []float64
	Min, Max float64
}

// NewLineGraph creates a graph scaled to the range of the finite values
// in data. A series without any gets the range [0, 100].
func NewLineGraph(x, y, width, height int, data []float64) *LineGraph {
	g := &LineGraph{
		Origin: Origin{X: x, Y: y},
		Extent: Extent{Width: width, Height: height},
		Data:   data,
		Max:    100,
	}
	if lo, hi, ok := finiteRange(data); ok {
		g.Min, g.Max = lo, hi
	}
	return g
}

// finiteRange returns the extremes of data ignoring NaN and infinities.
func finiteRange(data []float64) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo, hi = min(lo, v), max(hi, v)
		ok = true
	}
	return lo, hi, ok
}

// WithRange fixes the value range instead of using the data extremes.
func (g *LineGraph) WithRange(lo, hi float64) *LineGraph {
	g.Min, g.Max = lo, hi
	return g
}

// Points returns the polyline vertices, or nil when nothing would be drawn.
// Non-finite values keep their slot on the x axis but get no vertex.
func (g *LineGraph) Points() []Point {
	span := g.Max - g.Min
	if len(g.Data) < 2 || span == 0 || math.IsNaN(span) || math.IsInf(span, 0) {
		return nil
	}
	step := float64(g.Width-4) / float64(len(g.Data)-1)
	pts := make([]Point, 0, len(g.Data))
	for i, v := range g.Data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		n := (v - g.Min) / span
		pts = append(pts, Pt(
			float64(g.X+2+int(float64(i)*step)),
			float64(g.Y+g.Height-2-int(n*float64(g.Height-4))),
		))
	}
	if len(pts) < 2 {
		return nil
	}
	return pts
}

// Draw implements Widget.
func (g *LineGraph) Draw(s Surface, _ *Bitmap, _ *FontRegistry) error {
	pts := g.Points()
	if pts == nil {
		return nil
	}
	s.Rectangle(g.box(g.Origin), White, Black, 1)
	s.Line(pts, Black, 2)
	return nil
}
