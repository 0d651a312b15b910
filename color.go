package eink

import (
	"image/color"

	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Color is a paint value on a binary surface.
// 0 is ink (black) and 255 is paper (white). Values below 128 ink a pixel,
// values from 128 up leave it white. None means "do not paint", the way an
// omitted fill or outline behaves.
type Color int16

// Standard paint values.
const (
	Black Color = 0
	White Color = 255
	None  Color = -1
)

// Valid reports whether c paints anything.
func (c Color) Valid() bool {
	return c >= 0
}

// Ink reports whether c sets a pixel to black.
func (c Color) Ink() bool {
	return c >= 0 && c < 128
}

// Invert returns the complement of c on the binary surface.
// None stays None.
func (c Color) Invert() Color {
	if !c.Valid() {
		return None
	}
	if c.Ink() {
		return White
	}
	return Black
}

// Binary snaps c to Black or White.
func (c Color) Binary() Color {
	if c.Ink() {
		return Black
	}
	return White
}

// Bit converts c to the 1-bit colour model: image1bit.On is paper.
func (c Color) Bit() image1bit.Bit {
	return image1bit.Bit(!c.Ink())
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.Bit().RGBA()
}

// FromColor maps an arbitrary colour to Black or White by luminance,
// splitting at 50% grey. Transparent colours map to White.
func FromColor(c color.Color) Color {
	switch v := c.(type) {
	case Color:
		return v.Binary()
	case image1bit.Bit:
		if v {
			return White
		}
		return Black
	}
	_, _, _, a := c.RGBA()
	if a == 0 {
		return White
	}
	y := color.Gray16Model.Convert(c).(color.Gray16).Y
	if y < 0x8000 {
		return Black
	}
	return White
}
