// Package eink renders dashboard widgets onto 1-bit frames for e-paper
// panels.
//
// # Overview
//
// A Canvas owns a white Bitmap and a FontRegistry. Widgets are drawn onto
// it immediately, in the order they are added; later widgets overwrite
// earlier ones. The finished frame is exported, optionally rotated, in
// the packed row-major format panel drivers expect (1 = white, MSB first).
//
// # Quick Start
//
//	import "github.com/gogpu/eink"
//
//	c := eink.NewCanvas(250, 122, "pic")
//	c.AddWidget(eink.NewText(5, 5, "Server"))
//	c.AddWidget(eink.NewProgressBar(5, 30, 120, 14, 72))
//	c.AddWidget(eink.NewDonutChart(190, 60, 70, []float64{3, 2, 1}, nil))
//
//	frame := c.Export(eink.Rotate180)
//	epd.Display(frame.Bytes())
//
// # Widgets
//
//   - Text, Rectangle, LineSegment: primitives
//   - StatusIndicator: labelled box that inverts when active
//   - ProgressBar, NotchGauge: continuous and stepped levels
//   - LineGraph: polyline of a series inside a border
//   - DonutChart: ring chart with hatch textures and outside labels
//   - VectorImage: SVG markup or files converted to 1-bit
//
// HorizontalLayout and VerticalLayout position widgets in rows and
// columns before they are added.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left, X right, Y down
//   - Boxes use inclusive corners: (x0, y0, x1, y1) covers x1-x0+1 columns
//   - Angles in degrees, 0 is 3 o'clock, increasing clockwise
//
// # Errors
//
// Only vector images fail loudly (ErrVectorRead, ErrVectorRender). Missing
// fonts fall back to a built-in face, and out-of-range levels, progress
// values and hole ratios are clamped.
package eink
