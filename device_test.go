package eink

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestPNGDevice_Display(t *testing.T) {
	c := NewCanvas(20, 10, t.TempDir())
	c.Image().SetColor(0, 0, Black)

	path := filepath.Join(t.TempDir(), "panel.png")
	dev := &PNGDevice{Path: path, Rotation: Rotate90}
	if err := c.Show(dev); err != nil {
		t.Fatalf("Show() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 10 || b.Dy() != 20 {
		t.Errorf("frame size = %v, want 10x20", b.Size())
	}
	if FromColor(img.At(9, 0)) != Black {
		t.Error("rotated ink pixel not found at (9, 0)")
	}
}

func TestPNGDevice_Error(t *testing.T) {
	dev := &PNGDevice{Path: filepath.Join(t.TempDir(), "missing", "panel.png")}
	if err := dev.Display(NewBitmap(4, 4)); err == nil {
		t.Error("Display() into a missing directory should fail")
	}
}
