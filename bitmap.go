package eink

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Bitmap is a packed 1-bit pixel buffer.
//
// Rows are stored top to bottom, each padded to a whole byte, with the
// leftmost pixel in the most significant bit. A set bit is paper (white)
// and a clear bit is ink (black), which is the layout e-paper controllers
// expect for a frame transfer.
//
// Bitmap implements draw.Image so the standard and x/image drawing
// routines can target it directly; every colour written through Set is
// snapped to black or white.
type Bitmap struct {
	width  int
	height int
	stride int
	data   []uint8
}

// NewBitmap creates a white bitmap with the given dimensions.
func NewBitmap(width, height int) *Bitmap {
	width, height = max(width, 0), max(height, 0)
	stride := (width + 7) / 8
	b := &Bitmap{
		width:  width,
		height: height,
		stride: stride,
		data:   make([]uint8, stride*height),
	}
	b.Clear(White)
	return b
}

// FromImage creates a bitmap from any image by luminance threshold.
func FromImage(img image.Image) *Bitmap {
	bounds := img.Bounds()
	b := NewBitmap(bounds.Dx(), bounds.Dy())
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			b.SetColor(x, y, FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y)))
		}
	}
	return b
}

// Width returns the width of the bitmap.
func (b *Bitmap) Width() int {
	return b.width
}

// Height returns the height of the bitmap.
func (b *Bitmap) Height() int {
	return b.height
}

// Stride returns the number of bytes per row.
func (b *Bitmap) Stride() int {
	return b.stride
}

// Bytes returns the packed pixel data. The slice aliases the bitmap.
func (b *Bitmap) Bytes() []uint8 {
	return b.data
}

// Color returns the colour of a single pixel.
// Coordinates outside the bitmap read as White.
func (b *Bitmap) Color(x, y int) Color {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return White
	}
	if b.data[y*b.stride+x>>3]&(0x80>>(x&7)) != 0 {
		return White
	}
	return Black
}

// SetColor sets a single pixel. Coordinates outside the bitmap and None
// are ignored.
func (b *Bitmap) SetColor(x, y int, c Color) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height || !c.Valid() {
		return
	}
	i := y*b.stride + x>>3
	mask := uint8(0x80 >> (x & 7))
	if c.Ink() {
		b.data[i] &^= mask
	} else {
		b.data[i] |= mask
	}
}

// FillRect paints every pixel of r, clipped to the bitmap.
func (b *Bitmap) FillRect(r image.Rectangle, c Color) {
	r = r.Intersect(b.Bounds())
	if r.Empty() || !c.Valid() {
		return
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		b.fillSpan(y, r.Min.X, r.Max.X, c)
	}
}

// fillSpan paints pixels [x0, x1) of row y. The span must already be
// clipped to the bitmap.
func (b *Bitmap) fillSpan(y, x0, x1 int, c Color) {
	row := b.data[y*b.stride : (y+1)*b.stride]
	ink := c.Ink()
	for x := x0; x < x1; {
		if x&7 == 0 && x+8 <= x1 {
			if ink {
				row[x>>3] = 0x00
			} else {
				row[x>>3] = 0xFF
			}
			x += 8
			continue
		}
		mask := uint8(0x80 >> (x & 7))
		if ink {
			row[x>>3] &^= mask
		} else {
			row[x>>3] |= mask
		}
		x++
	}
}

// Clear fills the entire bitmap with a colour.
func (b *Bitmap) Clear(c Color) {
	v := uint8(0xFF)
	if c.Ink() {
		v = 0x00
	}
	for i := range b.data {
		b.data[i] = v
	}
}

// InkCount returns the number of black pixels.
func (b *Bitmap) InkCount() int {
	n := 0
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if b.Color(x, y).Ink() {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy of the bitmap.
func (b *Bitmap) Clone() *Bitmap {
	c := *b
	c.data = bytes.Clone(b.data)
	return &c
}

// Equal reports whether two bitmaps have the same size and pixels.
func (b *Bitmap) Equal(o *Bitmap) bool {
	if b.width != o.width || b.height != o.height {
		return false
	}
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if b.Color(x, y) != o.Color(x, y) {
				return false
			}
		}
	}
	return true
}

// Rotate returns a copy of the bitmap turned clockwise by o.
// Quarter turns swap width and height.
func (b *Bitmap) Rotate(o Orientation) *Bitmap {
	switch o {
	case Rotate90:
		r := NewBitmap(b.height, b.width)
		for y := 0; y < b.height; y++ {
			for x := 0; x < b.width; x++ {
				r.SetColor(b.height-1-y, x, b.Color(x, y))
			}
		}
		return r
	case Rotate180:
		r := NewBitmap(b.width, b.height)
		for y := 0; y < b.height; y++ {
			for x := 0; x < b.width; x++ {
				r.SetColor(b.width-1-x, b.height-1-y, b.Color(x, y))
			}
		}
		return r
	case Rotate270:
		r := NewBitmap(b.height, b.width)
		for y := 0; y < b.height; y++ {
			for x := 0; x < b.width; x++ {
				r.SetColor(y, b.width-1-x, b.Color(x, y))
			}
		}
		return r
	default:
		return b.Clone()
	}
}

// ToGray converts the bitmap to an 8-bit greyscale image.
func (b *Bitmap) ToGray() *image.Gray {
	img := image.NewGray(b.Bounds())
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if !b.Color(x, y).Ink() {
				img.Pix[y*img.Stride+x] = 0xFF
			}
		}
	}
	return img
}

// EncodePNG writes the bitmap as a greyscale PNG.
func (b *Bitmap) EncodePNG(w io.Writer) error {
	return png.Encode(w, b.ToGray())
}

// SavePNG saves the bitmap to a PNG file.
func (b *Bitmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := b.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// At implements the image.Image interface.
func (b *Bitmap) At(x, y int) color.Color {
	return b.Color(x, y).Bit()
}

// Set implements the draw.Image interface.
func (b *Bitmap) Set(x, y int, c color.Color) {
	b.SetColor(x, y, FromColor(c))
}

// Bounds implements the image.Image interface.
func (b *Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// ColorModel implements the image.Image interface.
func (b *Bitmap) ColorModel() color.Model {
	return image1bit.BitModel
}

// Orientation is a clockwise rotation applied when a frame leaves the
// canvas for a panel mounted in a different orientation.
type Orientation int

// Supported orientations.
const (
	Rotate0 Orientation = iota
	Rotate90
	Rotate180
	Rotate270
)

// String implements fmt.Stringer.
func (o Orientation) String() string {
	switch o {
	case Rotate0:
		return "0"
	case Rotate90:
		return "90"
	case Rotate180:
		return "180"
	case Rotate270:
		return "270"
	default:
		return "unknown"
	}
}
