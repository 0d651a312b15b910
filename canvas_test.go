package eink

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestNewCanvas_MissingFontDir(t *testing.T) {
	c := NewCanvas(250, 122, t.TempDir())
	if c.Width() != 250 || c.Height() != 122 {
		t.Fatalf("size = %dx%d, want 250x122", c.Width(), c.Height())
	}
	if n := c.Image().InkCount(); n != 0 {
		t.Errorf("new canvas has %d ink pixels, want 0", n)
	}
	if c.Fonts().Face(FontSmall) != c.Fonts().Builtin() {
		t.Error("missing default font should fall back to the built-in face")
	}
}

func TestNewCanvas_Options(t *testing.T) {
	path := writeFont(t)
	c := NewCanvas(100, 50, filepath.Dir(path),
		WithFontFile(filepath.Base(path)),
		WithDefaultSizes(SizeMap{FontSmall: 10, FontMedium: 12}))

	info, ok := c.Fonts().Info(FontSmall)
	if !ok || info.Fallback || info.Size != 10 {
		t.Errorf("Info(small) = %+v, want loaded at 10", info)
	}
	if info, _ := c.Fonts().Info(FontLarge); !info.Fallback {
		t.Error("sizes outside the override should stay on the built-in face")
	}
}

func TestNewCanvas_WithFontLoader(t *testing.T) {
	l := &recordingLoader{}
	c := NewCanvas(10, 10, "fonts", WithFontLoader(l))
	if len(l.calls) != len(DefaultSizes) {
		t.Fatalf("loader called %d times, want %d", len(l.calls), len(DefaultSizes))
	}
	if l.calls[0].path != filepath.Join("fonts", "Font.ttc") {
		t.Errorf("default font path = %q", l.calls[0].path)
	}

	c.RegisterFontFamily("lato", "Lato.ttf", nil)
	if !c.Fonts().Has("lato_xlarge") {
		t.Error("RegisterFontFamily() did not register lato_xlarge")
	}
	c.RegisterFont("title", "Lato-Bold.ttf", 30)
	if info, _ := c.Fonts().Info("title"); info.Size != 30 {
		t.Errorf("Info(title).Size = %v, want 30", info.Size)
	}
}

func TestCanvas_AddWidget(t *testing.T) {
	c := NewCanvas(50, 50, t.TempDir())
	r := NewRectangle(5, 5, 9, 9, WithFill(Black))
	got, err := c.AddWidget(r)
	if err != nil {
		t.Fatalf("AddWidget() error = %v", err)
	}
	if got != Widget(r) {
		t.Error("AddWidget() should return the widget it was given")
	}
	if n := c.Image().InkCount(); n != 100 {
		t.Errorf("InkCount() = %d, want 100", n)
	}

	// Later widgets overwrite earlier ones.
	if _, err := c.AddWidget(NewRectangle(5, 5, 9, 9, WithOutline(None))); err != nil {
		t.Fatal(err)
	}
	if n := c.Image().InkCount(); n != 0 {
		t.Errorf("InkCount() after overwrite = %d, want 0", n)
	}
}

func TestCanvas_AddWidgetError(t *testing.T) {
	c := NewCanvas(20, 20, t.TempDir())
	v := NewVectorImageFile(0, 0, filepath.Join(t.TempDir(), "missing.svg"))
	got, err := c.AddWidget(v)
	if !errors.Is(err, ErrVectorRead) {
		t.Errorf("AddWidget() error = %v, want ErrVectorRead", err)
	}
	if got != Widget(v) {
		t.Error("AddWidget() should return the widget even on error")
	}
}

func TestCanvas_ClearAndExport(t *testing.T) {
	c := NewCanvas(8, 4, t.TempDir())
	c.Clear(Black)
	if n := c.Image().InkCount(); n != 32 {
		t.Errorf("InkCount() = %d, want 32", n)
	}
	c.Clear(White)
	c.Image().SetColor(0, 0, Black)

	e := c.Export(Rotate90)
	if e.Width() != 4 || e.Height() != 8 {
		t.Errorf("Export(Rotate90) size = %dx%d, want 4x8", e.Width(), e.Height())
	}
	e.SetColor(1, 1, Black)
	if c.Image().Color(1, 1) != White {
		t.Error("Export() should return a copy")
	}
	if !c.Export(Rotate0).Equal(c.Image()) {
		t.Error("Export(Rotate0) should equal the live image")
	}
}
