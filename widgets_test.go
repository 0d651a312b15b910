package eink

import (
	"math"
	"testing"

	"golang.org/x/image/font"
)

type textCall struct {
	at     Point
	s      string
	fill   Color
	anchor Anchor
}

type rectCall struct {
	r             Rect
	fill, outline Color
	width         int
}

// recordingSurface draws through a real surface and remembers rectangle
// and text calls.
type recordingSurface struct {
	Surface
	rects []rectCall
	texts []textCall
}

func newRecordingSurface(b *Bitmap) *recordingSurface {
	return &recordingSurface{Surface: NewSurface(b)}
}

func (s *recordingSurface) Rectangle(r Rect, fill, outline Color, width int) {
	s.rects = append(s.rects, rectCall{r, fill, outline, width})
	s.Surface.Rectangle(r, fill, outline, width)
}

func (s *recordingSurface) Text(at Point, str string, face font.Face, fill Color, anchor Anchor) {
	s.texts = append(s.texts, textCall{at, str, fill, anchor})
	s.Surface.Text(at, str, face, fill, anchor)
}

func drawWidget(t *testing.T, w Widget, width, height int) (*Bitmap, *recordingSurface) {
	t.Helper()
	b := NewBitmap(width, height)
	s := newRecordingSurface(b)
	if err := w.Draw(s, b, NewFontRegistry(nil)); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	return b, s
}

func TestText_Draw(t *testing.T) {
	w := NewText(3, 4, "Cafe\u0301", WithAnchor(AnchorLeftTop))
	b, s := drawWidget(t, w, 80, 30)
	if b.InkCount() == 0 {
		t.Error("Text drew nothing")
	}
	if len(s.texts) != 1 {
		t.Fatalf("got %d text calls, want 1", len(s.texts))
	}
	got := s.texts[0]
	if got.s != "Caf\u00e9" {
		t.Errorf("text = %q, want composed form", got.s)
	}
	if got.at != Pt(3, 4) || got.anchor != AnchorLeftTop || got.fill != Black {
		t.Errorf("text call = %+v", got)
	}
}

func TestRectangle_Draw(t *testing.T) {
	b, _ := drawWidget(t, NewRectangle(2, 2, 9, 9), 20, 20)
	if n := b.InkCount(); n != 36 {
		t.Errorf("InkCount() = %d, want 36 outline pixels", n)
	}
	if w, h := NewRectangle(0, 0, 7, 3).Size(); w != 7 || h != 3 {
		t.Errorf("Size() = %d, %d, want 7, 3", w, h)
	}
}

func TestLineSegment_Draw(t *testing.T) {
	b, _ := drawWidget(t, NewLineSegment(0, 5, 9, 5), 20, 20)
	if n := b.InkCount(); n != 10 {
		t.Errorf("InkCount() = %d, want 10", n)
	}
	l := NewLineSegment(0, 0, 5, 5)
	l.SetPosition(2, 3)
	if x, y := l.Position(); x != 2 || y != 3 || l.X2 != 5 || l.Y2 != 5 {
		t.Error("SetPosition() should move only the first end point")
	}
}

func TestStatusIndicator_Inversion(t *testing.T) {
	for _, active := range []bool{false, true} {
		si := NewStatusIndicator(0, 0, 60, 20, "OK", active)
		b, s := drawWidget(t, si, 70, 30)

		inner := b.Color(3, 3)
		if active && inner != Black || !active && inner != White {
			t.Errorf("active=%v: inner fill pixel = %d", active, inner)
		}
		if b.Color(0, 0) != Black || b.Color(1, 1) != White {
			t.Errorf("active=%v: outer box should be white with a black border", active)
		}
		if si.LabelFill() != si.InnerFill().Invert() {
			t.Errorf("active=%v: label fill is not the complement of the inner fill", active)
		}
		if len(s.texts) != 1 || s.texts[0].fill != si.LabelFill() || s.texts[0].anchor != AnchorMiddleMiddle {
			t.Errorf("active=%v: text calls = %+v", active, s.texts)
		}
	}

	si := NewStatusIndicator(0, 0, 10, 10, "x", false)
	off := si.InnerFill()
	si.Active = true
	if si.InnerFill() != off.Invert() || si.LabelFill() != off {
		t.Error("toggling Active should swap both fills")
	}
}

func TestProgressBar_FillWidth(t *testing.T) {
	tests := []struct {
		progress float64
		want     int
	}{
		{0, 0},
		{100, 100},
		{50, 50},
		{-10, 0},
		{150, 100},
		{33.9, 33},
	}

	for _, tt := range tests {
		p := NewProgressBar(0, 0, 104, 12, tt.progress)
		if got := p.FillWidth(); got != tt.want {
			t.Errorf("FillWidth(%v) = %d, want %d", tt.progress, got, tt.want)
		}
	}

	p := NewProgressBar(0, 0, 104, 12, 0)
	p.Progress = 500
	if got := p.FillWidth(); got != 100 {
		t.Errorf("unclamped field: FillWidth() = %d, want 100", got)
	}
}

func TestProgressBar_Draw(t *testing.T) {
	empty := NewProgressBar(0, 0, 50, 10, 0)
	empty.ShowPercentage = false
	b, _ := drawWidget(t, empty, 60, 20)
	if n := b.InkCount(); n != 120 {
		t.Errorf("empty bar InkCount() = %d, want 120 track pixels", n)
	}

	full := NewProgressBar(0, 0, 50, 10, 100)
	full.ShowPercentage = false
	b, _ = drawWidget(t, full, 60, 20)
	if n := b.InkCount(); n != 120+47*7 {
		t.Errorf("full bar InkCount() = %d, want %d", n, 120+47*7)
	}
	if b.Color(1, 5) != White {
		t.Error("gap between track and fill should stay white")
	}
}

func TestProgressBar_Label(t *testing.T) {
	p := NewProgressBar(0, 0, 80, 16, 42.7)
	_, s := drawWidget(t, p, 90, 20)
	if len(s.texts) != 1 || s.texts[0].s != "42%" {
		t.Fatalf("text calls = %+v, want one 42%% label", s.texts)
	}
	if s.texts[0].fill != Black || s.texts[0].anchor != AnchorMiddleMiddle {
		t.Errorf("label call = %+v", s.texts[0])
	}
	last := s.rects[len(s.rects)-1]
	if last.fill != White || last.outline != None {
		t.Errorf("label backing = %+v, want white box", last)
	}
}

func TestNotchGauge_Filled(t *testing.T) {
	tests := []struct {
		level float64
		want  int
	}{
		{60, 3},
		{0, 0},
		{100, 5},
		{150, 5},
		{-20, 0},
		{50, 2},
		{70, 4},
	}

	for _, tt := range tests {
		g := NewNotchGauge(0, 0, 20, 40, tt.level)
		if got := g.Filled(); got != tt.want {
			t.Errorf("Filled(%v) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestNotchGauge_Draw(t *testing.T) {
	g := NewNotchGauge(0, 0, 20, 40, 20)
	if h := g.NotchHeight(); h != 5 {
		t.Fatalf("NotchHeight() = %d, want 5", h)
	}
	b, _ := drawWidget(t, g, 30, 50)
	if b.Color(10, 37) != Black {
		t.Error("bottom notch should be filled")
	}
	if b.Color(10, 29) != White {
		t.Error("second notch should be empty")
	}
	if b.Color(10, 34) != White {
		t.Error("gap between notches should stay white")
	}
}

func TestLineGraph_NoOp(t *testing.T) {
	tests := []struct {
		name  string
		graph *LineGraph
	}{
		{"empty", NewLineGraph(0, 0, 40, 20, nil)},
		{"one point", NewLineGraph(0, 0, 40, 20, []float64{5})},
		{"flat", NewLineGraph(0, 0, 40, 20, []float64{3, 3, 3})},
		{"flat range", NewLineGraph(0, 0, 40, 20, []float64{1, 2}).WithRange(7, 7)},
		{"no finite values", NewLineGraph(0, 0, 40, 20, []float64{math.NaN(), math.Inf(1)})},
		{"one finite value", NewLineGraph(0, 0, 40, 20, []float64{math.NaN(), 5})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _ := drawWidget(t, tt.graph, 50, 30)
			if !b.Equal(NewBitmap(50, 30)) {
				t.Error("graph should leave the buffer unchanged")
			}
		})
	}
}

func TestLineGraph_Points(t *testing.T) {
	g := NewLineGraph(0, 0, 24, 14, []float64{0, 10})
	pts := g.Points()
	want := []Point{Pt(2, 12), Pt(22, 2)}
	if len(pts) != len(want) {
		t.Fatalf("Points() = %v, want %v", pts, want)
	}
	for i := range want {
		if pts[i] != want[i] {
			t.Errorf("Points()[%d] = %v, want %v", i, pts[i], want[i])
		}
	}

	b, _ := drawWidget(t, g, 30, 20)
	if b.Color(0, 0) != Black || b.Color(12, 7) != Black {
		t.Error("graph should draw a border and the polyline")
	}

	ranged := NewLineGraph(0, 0, 24, 14, []float64{0, 10}).WithRange(0, 20)
	if p := ranged.Points()[1]; p != Pt(22, 7) {
		t.Errorf("ranged Points()[1] = %v, want (22, 7)", p)
	}
}

func TestLineGraph_NonFinite(t *testing.T) {
	g := NewLineGraph(0, 0, 24, 14, []float64{0, math.NaN(), 10, math.Inf(-1)})
	if g.Min != 0 || g.Max != 10 {
		t.Fatalf("range = [%v, %v], want [0, 10]", g.Min, g.Max)
	}
	step := 20.0 / 3
	want := []Point{Pt(2, 12), Pt(float64(2+int(2*step)), 2)}
	pts := g.Points()
	if len(pts) != len(want) {
		t.Fatalf("Points() = %v, want %v", pts, want)
	}
	for i := range want {
		if pts[i] != want[i] {
			t.Errorf("Points()[%d] = %v, want %v", i, pts[i], want[i])
		}
	}
}
