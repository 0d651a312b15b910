package eink

// Anchor positions text relative to the point it is drawn at. It is a
// two-letter code: the first letter picks the horizontal reference
// (l left, m middle, r right), the second the vertical one
// (a ascender, t top, m middle, s baseline, b bottom, d descender).
type Anchor string

// Common anchors.
const (
	AnchorLeftAscender  Anchor = "la"
	AnchorLeftTop       Anchor = "lt"
	AnchorLeftMiddle    Anchor = "lm"
	AnchorLeftBaseline  Anchor = "ls"
	AnchorMiddleTop     Anchor = "mt"
	AnchorMiddleMiddle  Anchor = "mm"
	AnchorMiddleBottom  Anchor = "mb"
	AnchorRightMiddle   Anchor = "rm"
	AnchorRightBaseline Anchor = "rs"
)

// DefaultAnchor is used when no anchor is given.
const DefaultAnchor = AnchorLeftAscender

// horizontal returns the fraction of the text advance left of the anchor.
func (a Anchor) horizontal() float64 {
	if len(a) < 1 {
		return 0
	}
	switch a[0] {
	case 'm':
		return 0.5
	case 'r':
		return 1
	default:
		return 0
	}
}

// baseline returns the distance from the anchor down to the baseline for
// a face with the given ascent and descent (both positive).
func (a Anchor) baseline(ascent, descent float64) float64 {
	if len(a) < 2 {
		return ascent
	}
	switch a[1] {
	case 's':
		return 0
	case 'm':
		return (ascent - descent) / 2
	case 'b', 'd':
		return -descent
	default: // 'a', 't'
		return ascent
	}
}
