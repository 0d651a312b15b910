package raster

import (
	"image"
	"sort"
)

// Span is a half-open run [X0, X1) of inside pixels on one row.
type Span struct {
	X0, X1 int
}

// Stencil is a binary region stored as sorted, disjoint spans per row.
// Scanning a stencil visits only inside pixels, so callers can run
// strided generators over it without re-testing the region geometry.
type Stencil struct {
	rect image.Rectangle
	rows [][]Span
}

// Bounds returns the rectangle the stencil was computed over.
func (s *Stencil) Bounds() image.Rectangle {
	return s.rect
}

// Row returns the spans of row y. The result must not be modified.
func (s *Stencil) Row(y int) []Span {
	if y < s.rect.Min.Y || y >= s.rect.Max.Y {
		return nil
	}
	return s.rows[y-s.rect.Min.Y]
}

// Contains reports whether (x, y) is inside the stencil.
func (s *Stencil) Contains(x, y int) bool {
	row := s.Row(y)
	i := sort.Search(len(row), func(i int) bool { return row[i].X1 > x })
	return i < len(row) && row[i].X0 <= x
}

// Area returns the number of inside pixels.
func (s *Stencil) Area() int {
	n := 0
	for _, row := range s.rows {
		for _, sp := range row {
			n += sp.X1 - sp.X0
		}
	}
	return n
}

// Empty reports whether the stencil has no inside pixels.
func (s *Stencil) Empty() bool {
	for _, row := range s.rows {
		if len(row) > 0 {
			return false
		}
	}
	return true
}

// Each calls fn for every span, top to bottom.
func (s *Stencil) Each(fn func(y int, sp Span)) {
	for i, row := range s.rows {
		for _, sp := range row {
			fn(s.rect.Min.Y+i, sp)
		}
	}
}
