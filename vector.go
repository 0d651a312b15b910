package eink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"image"
	"image/color"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"

	"github.com/gogpu/eink/internal/cache"
)

// iconKey identifies one conversion of inline markup.
type iconKey struct {
	markup string
	size   image.Point
	dither bool
}

// icons holds converted inline markup drawn with the default rasterizer.
// Dashboards redraw the same few icons on every refresh.
var icons = cache.New[iconKey, *image.Paletted](64)

// VectorRasterizer turns vector markup into a true-colour image that may
// carry an alpha channel.
type VectorRasterizer interface {
	Rasterize(markup io.Reader) (image.Image, error)
}

// OkSVG rasterizes SVG with oksvg at the document's intrinsic size.
type OkSVG struct {
	// Strict rejects markup containing elements oksvg does not support
	// instead of skipping them.
	Strict bool
}

// Rasterize implements VectorRasterizer. The raster takes the root
// element's width and height when given and the viewBox size otherwise;
// the viewBox is scaled to fill it.
func (o OkSVG) Rasterize(markup io.Reader) (image.Image, error) {
	data, err := io.ReadAll(markup)
	if err != nil {
		return nil, err
	}
	mode := oksvg.IgnoreErrorMode
	if o.Strict {
		mode = oksvg.StrictErrorMode
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), mode)
	if err != nil {
		return nil, err
	}

	vw, vh := icon.ViewBox.W, icon.ViewBox.H
	tw, th, viewBox := documentSize(data)
	if !viewBox && tw > 0 && th > 0 {
		// Without a viewBox user units are pixels.
		vw, vh = tw, th
	}
	switch {
	case tw > 0 && th > 0:
	case tw > 0 && vw > 0:
		th = tw * vh / vw
	case th > 0 && vh > 0:
		tw = th * vw / vh
	default:
		tw, th = vw, vh
	}
	w, h := int(tw+0.5), int(th+0.5)
	if w <= 0 || h <= 0 || vw <= 0 || vh <= 0 {
		return nil, fmt.Errorf("document has no size (viewBox %gx%g)", vw, vh)
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	// Scale after moving the viewBox origin to zero; SetTarget applies
	// the two the other way round.
	icon.Transform = rasterx.Identity.
		Scale(float64(w)/vw, float64(h)/vh).
		Translate(-icon.ViewBox.X, -icon.ViewBox.Y)
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1)
	return img, nil
}

// documentSize returns the width and height attributes of the root
// element in pixels and whether it declares a viewBox. Missing, relative
// or unparsable lengths are 0.
func documentSize(data []byte) (w, h float64, viewBox bool) {
	d := xml.NewDecoder(bytes.NewReader(data))
	d.Strict = false
	for {
		tok, err := d.Token()
		if err != nil {
			return 0, 0, false
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		for _, a := range se.Attr {
			switch a.Name.Local {
			case "width":
				w = svgLength(a.Value)
			case "height":
				h = svgLength(a.Value)
			case "viewBox":
				viewBox = true
			}
		}
		return w, h, viewBox
	}
}

// svgUnits converts absolute CSS units to pixels at 96 dpi.
var svgUnits = map[string]float64{
	"":   1,
	"px": 1,
	"pt": 96.0 / 72,
	"pc": 16,
	"mm": 96 / 25.4,
	"cm": 96 / 2.54,
	"in": 96,
}

// svgLength parses an absolute SVG length such as "48", "48px" or
// "10mm". Percentages, font-relative units and garbage give 0.
func svgLength(s string) float64 {
	s = strings.TrimSpace(s)
	i := strings.IndexFunc(s, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.' && r != '-' && r != '+' && r != 'e' && r != 'E'
	})
	num, unit := s, ""
	if i >= 0 {
		num, unit = s[:i], strings.ToLower(strings.TrimSpace(s[i:]))
	}
	scale, ok := svgUnits[unit]
	if !ok {
		return 0
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil || v <= 0 || math.IsInf(v, 0) {
		return 0
	}
	return v * scale
}

// VectorImage pastes rasterized vector markup onto the canvas.
//
// The markup is rasterized, flattened over white, optionally resized to
// Size and converted to 1-bit before being copied at (X, Y). Read and
// rasterizer failures are returned from Draw wrapped in ErrVectorRead and
// ErrVectorRender.
type VectorImage struct {
	Origin
	// Markup is inline SVG. It is ignored when Path is set.
	Markup string
	// Path names an SVG file read at draw time.
	Path string
	// Size resizes the raster when both dimensions are positive.
	Size image.Point
	// Dither selects Floyd-Steinberg error diffusion for the 1-bit
	// conversion; otherwise pixels are thresholded at 50%.
	Dither bool
	// Rasterizer defaults to OkSVG.
	Rasterizer VectorRasterizer
}

// NewVectorImage creates an icon from inline markup.
func NewVectorImage(x, y int, markup string) *VectorImage {
	return &VectorImage{Origin: Origin{X: x, Y: y}, Markup: markup, Dither: true}
}

// NewVectorImageFile creates an image from an SVG file.
func NewVectorImageFile(x, y int, path string) *VectorImage {
	return &VectorImage{Origin: Origin{X: x, Y: y}, Path: path, Dither: true}
}

// Draw implements Widget.
func (v *VectorImage) Draw(_ Surface, img *Bitmap, _ *FontRegistry) error {
	src, err := v.render()
	if err != nil {
		return err
	}
	b := src.Bounds()
	draw.Draw(img, b.Sub(b.Min).Add(image.Pt(v.X, v.Y)), src, b.Min, draw.Src)
	return nil
}

// render produces the 1-bit raster without placing it. Inline markup
// using the default rasterizer is served from a shared cache.
func (v *VectorImage) render() (*image.Paletted, error) {
	if v.Path != "" || v.Rasterizer != nil {
		return v.convert()
	}
	return icons.GetOrLoad(iconKey{v.Markup, v.Size, v.Dither}, v.convert)
}

func (v *VectorImage) convert() (*image.Paletted, error) {
	markup, err := v.markup()
	if err != nil {
		return nil, err
	}
	r := v.Rasterizer
	if r == nil {
		r = OkSVG{}
	}
	raw, err := r.Rasterize(markup)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrVectorRender, err)
	}

	flat := flatten(raw)
	if v.Size.X > 0 && v.Size.Y > 0 && v.Size != flat.Bounds().Size() {
		scaled := image.NewRGBA(image.Rectangle{Max: v.Size})
		draw.CatmullRom.Scale(scaled, scaled.Bounds(), flat, flat.Bounds(), draw.Src, nil)
		flat = scaled
	}

	out := image.NewPaletted(flat.Bounds(), color.Palette{color.Black, color.White})
	var d draw.Drawer = draw.Src
	if v.Dither {
		d = draw.FloydSteinberg
	}
	d.Draw(out, out.Bounds(), flat, flat.Bounds().Min)
	Logger().Debug("vector image rendered",
		slog.Int("width", out.Bounds().Dx()),
		slog.Int("height", out.Bounds().Dy()),
		slog.Bool("dither", v.Dither))
	return out, nil
}

func (v *VectorImage) markup() (io.Reader, error) {
	if v.Path == "" {
		return strings.NewReader(v.Markup), nil
	}
	data, err := os.ReadFile(v.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrVectorRead, err)
	}
	return bytes.NewReader(data), nil
}

// flatten composites src over an opaque white background.
func flatten(src image.Image) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rectangle{Max: b.Size()})
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Over)
	return dst
}
