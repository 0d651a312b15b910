package eink

import (
	"fmt"
	"image"
	"log/slog"
	"math"
)

// labelThreshold is the smallest sweep, in degrees, that gets a label.
const labelThreshold = 3

// DonutChart is a ring chart centred on (X, Y).
//
// Sectors start at 12 o'clock and run clockwise. With UsePatterns each
// sector is white with a hatch texture chosen round-robin from Patterns;
// otherwise sectors alternate solid black and white. The central hole is
// drawn last and erases any ink near the centre.
//
// Style fields used: Outline and OutlineWidth (default black, 2) for the
// sector and hole borders, Font and FontSize (default small) for labels.
type DonutChart struct {
	Origin
	Style
	Diameter int
	// Data holds the sector magnitudes. Negative and NaN values count as
	// zero.
	Data []float64
	// Labels name the sectors; missing entries read "SegN".
	Labels []string
	// HoleRatio is the hole radius as a fraction of the chart radius,
	// clamped to [0, 1].
	HoleRatio   float64
	ShowLabels  bool
	UsePatterns bool
	// Spacing is the hatch period in pixels.
	Spacing  int
	Patterns []Hatch
}

// Sector is the computed geometry of one chart entry. Angles are in
// degrees, clockwise from 3 o'clock.
type Sector struct {
	Index   int
	Value   float64
	Start   float64
	End     float64
	Sweep   float64
	Percent float64
}

// NewDonutChart creates a patterned, labelled chart with a half-radius
// hole. Without labels the sectors are named "Seg 1", "Seg 2" and so on.
func NewDonutChart(x, y, diameter int, data []float64, labels []string, opts ...StyleOption) *DonutChart {
	if labels == nil {
		labels = make([]string, len(data))
		for i := range labels {
			labels[i] = fmt.Sprintf("Seg %d", i+1)
		}
	}
	return &DonutChart{
		Origin:      Origin{X: x, Y: y},
		Style:       newStyle(Style{Outline: Black, OutlineWidth: 2, FontSize: FontSmall}, opts),
		Diameter:    diameter,
		Data:        data,
		Labels:      labels,
		HoleRatio:   0.5,
		ShowLabels:  true,
		UsePatterns: true,
		Spacing:     DefaultHatchSpacing,
		Patterns:    DefaultHatches,
	}
}

// Sectors returns the chart geometry, or nil when Data is empty or sums
// to zero. Sectors are contiguous and the last one ends exactly one turn
// after the first starts.
func (d *DonutChart) Sectors() []Sector {
	var total float64
	for _, v := range d.Data {
		total += magnitude(v)
	}
	if len(d.Data) == 0 || total == 0 || math.IsInf(total, 0) {
		return nil
	}

	const start0 = -90.0
	sectors := make([]Sector, len(d.Data))
	start := start0
	for i, v := range d.Data {
		v = magnitude(v)
		sweep := 360 * v / total
		end := start + sweep
		if i == len(d.Data)-1 {
			end = start0 + 360
		}
		sectors[i] = Sector{
			Index:   i,
			Value:   v,
			Start:   start,
			End:     end,
			Sweep:   sweep,
			Percent: v / total * 100,
		}
		start = end
	}
	return sectors
}

// Radius returns the integer chart radius.
func (d *DonutChart) Radius() int {
	return d.Diameter / 2
}

// HoleRadius returns the radius of the central hole.
func (d *DonutChart) HoleRadius() int {
	return int(float64(d.Radius()) * clamp(d.HoleRatio, 0, 1))
}

// Draw implements Widget.
func (d *DonutChart) Draw(s Surface, img *Bitmap, fonts *FontRegistry) error {
	sectors := d.Sectors()
	if sectors == nil {
		Logger().Debug("donut chart skipped", slog.Int("values", len(d.Data)))
		return nil
	}

	r := d.Radius()
	box := R(d.X-r, d.Y-r, d.X+r, d.Y+r)
	texture := image.Rect(d.X-r, d.Y-r, d.X+r, d.Y+r)
	hr := d.HoleRadius()
	hole := R(d.X-hr, d.Y-hr, d.X+hr, d.Y+hr)
	if hr <= 0 {
		hole = Rect{}
	}
	patterns := d.Patterns
	if len(patterns) == 0 {
		patterns = DefaultHatches
	}

	for _, sec := range sectors {
		if d.UsePatterns {
			s.PieSlice(box, sec.Start, sec.End, White, d.Outline, d.OutlineWidth)
			st := wedgeStencil(box, hole, sec.Start, sec.End)
			fillHatch(img, st, texture, patterns[sec.Index%len(patterns)], d.Spacing, Black)
		} else {
			fill := White
			if sec.Index%2 == 0 {
				fill = Black
			}
			s.PieSlice(box, sec.Start, sec.End, fill, d.Outline, d.OutlineWidth)
		}

		if d.ShowLabels && sec.Sweep > labelThreshold {
			d.drawLabel(s, fonts, sec, r)
		}
	}

	if hr > 0 {
		s.Ellipse(hole, White, d.Outline, d.OutlineWidth)
	}
	return nil
}

func (d *DonutChart) drawLabel(s Surface, fonts *FontRegistry, sec Sector, r int) {
	mid := (sec.Start + sec.End) / 2
	rad := mid * math.Pi / 180
	lr := float64(r) * 1.3
	at := Pt(float64(d.X)+lr*math.Cos(rad), float64(d.Y)+lr*math.Sin(rad))

	name := fmt.Sprintf("Seg%d", sec.Index+1)
	if sec.Index < len(d.Labels) {
		name = d.Labels[sec.Index]
	}
	face := fonts.Face(d.Font, d.FontSize, FontSmall)
	anchor := labelAnchor(mid)
	s.Text(Pt(at.X, at.Y-6), label(name), face, Black, anchor)
	s.Text(Pt(at.X, at.Y+6), fmt.Sprintf("%.0f%%", sec.Percent), face, Black, anchor)
}

// labelAnchor picks the anchor that makes a label read away from the ring
// for a sector whose middle lies at mid degrees.
func labelAnchor(mid float64) Anchor {
	mid = math.Mod(mid, 360)
	if mid > 180 {
		mid -= 360
	} else if mid <= -180 {
		mid += 360
	}
	switch {
	case mid > -45 && mid <= 45:
		return AnchorLeftMiddle
	case mid > 45 && mid <= 135:
		return AnchorMiddleTop
	case mid > 135 || mid <= -135:
		return AnchorRightMiddle
	default:
		return AnchorMiddleBottom
	}
}

func magnitude(v float64) float64 {
	if v > 0 && !math.IsNaN(v) {
		return v
	}
	return 0
}
