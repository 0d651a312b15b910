package eink

import (
	"image/color"
	"testing"

	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Verify at compile time that Color implements color.Color.
var _ color.Color = Black

func TestColor_Ink(t *testing.T) {
	tests := []struct {
		name  string
		c     Color
		valid bool
		ink   bool
	}{
		{"black", Black, true, true},
		{"white", White, true, false},
		{"none", None, false, false},
		{"dark grey", 127, true, true},
		{"light grey", 128, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Valid(); got != tt.valid {
				t.Errorf("Valid() = %v, want %v", got, tt.valid)
			}
			if got := tt.c.Ink(); got != tt.ink {
				t.Errorf("Ink() = %v, want %v", got, tt.ink)
			}
		})
	}
}

func TestColor_Invert(t *testing.T) {
	if got := Black.Invert(); got != White {
		t.Errorf("Black.Invert() = %d, want White", got)
	}
	if got := White.Invert(); got != Black {
		t.Errorf("White.Invert() = %d, want Black", got)
	}
	if got := None.Invert(); got != None {
		t.Errorf("None.Invert() = %d, want None", got)
	}
	if got := Color(40).Invert().Invert(); got != Black {
		t.Errorf("double Invert() = %d, want Black", got)
	}
}

func TestColor_Bit(t *testing.T) {
	if Black.Bit() != image1bit.Off {
		t.Error("Black.Bit() should be Off")
	}
	if White.Bit() != image1bit.On {
		t.Error("White.Bit() should be On")
	}

	r, g, b, a := White.RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff || a != 0xffff {
		t.Errorf("White.RGBA() = (%d, %d, %d, %d), want opaque white", r, g, b, a)
	}
}

func TestFromColor(t *testing.T) {
	tests := []struct {
		name string
		c    color.Color
		want Color
	}{
		{"black", color.Black, Black},
		{"white", color.White, White},
		{"dark gray", color.Gray{Y: 0x40}, Black},
		{"light gray", color.Gray{Y: 0xC0}, White},
		{"red", color.RGBA{R: 0xff, A: 0xff}, Black},
		{"yellow", color.RGBA{R: 0xff, G: 0xff, A: 0xff}, White},
		{"transparent", color.RGBA{}, White},
		{"bit off", image1bit.Off, Black},
		{"bit on", image1bit.On, White},
		{"paint value", Color(200), White},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromColor(tt.c); got != tt.want {
				t.Errorf("FromColor(%v) = %d, want %d", tt.c, got, tt.want)
			}
		})
	}
}
