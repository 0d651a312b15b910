package eink

import (
	"bytes"
	"fmt"
	"maps"
	"os"
	"slices"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"

	"github.com/gogpu/eink/internal/cache"
)

// Standard font names.
const (
	FontSmall  = "small"
	FontMedium = "medium"
	FontLarge  = "large"
	FontXLarge = "xlarge"
)

// SizeMap maps a font name suffix to a pixel size.
type SizeMap map[string]float64

// DefaultSizes are the sizes of the standard font names.
var DefaultSizes = SizeMap{
	FontSmall:  14,
	FontMedium: 18,
	FontLarge:  24,
	FontXLarge: 48,
}

// FontLoader opens a font file at a given pixel size.
type FontLoader interface {
	LoadFont(path string, size float64) (font.Face, error)
}

// OpenTypeLoader loads TrueType and OpenType fonts, including the first
// face of a .ttc collection. Parsed files are cached by path, so loading
// several sizes of one file reads it once.
type OpenTypeLoader struct {
	// Hinting is applied to every face. The zero value is no hinting.
	Hinting font.Hinting

	parsed *cache.Cache[string, *opentype.Font]
}

// NewOpenTypeLoader returns a loader with full hinting, which keeps glyph
// stems on whole pixels once thresholded to one bit.
func NewOpenTypeLoader() *OpenTypeLoader {
	return &OpenTypeLoader{Hinting: font.HintingFull, parsed: cache.New[string, *opentype.Font](16)}
}

// LoadFont implements FontLoader.
func (l *OpenTypeLoader) LoadFont(path string, size float64) (font.Face, error) {
	f, err := l.parse(path)
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: l.Hinting,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s at %gpx: %w", ErrFontLoad, path, size, err)
	}
	return face, nil
}

func (l *OpenTypeLoader) parse(path string) (*opentype.Font, error) {
	if l.parsed == nil {
		l.parsed = cache.New[string, *opentype.Font](16)
	}
	return l.parsed.GetOrLoad(path, func() (*opentype.Font, error) {
		return parseFontFile(path)
	})
}

// parseFontFile reads a font file, taking the first face of a collection.
func parseFontFile(path string) (*opentype.Font, error) {
	data, err := os.ReadFile(path) //nolint:gosec // font path is provided by the caller
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFontLoad, err)
	}

	if !bytes.HasPrefix(data, []byte("ttcf")) {
		f, err := opentype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrFontLoad, path, err)
		}
		return f, nil
	}
	c, err := opentype.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFontLoad, path, err)
	}
	f, err := c.Font(0)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFontLoad, path, err)
	}
	return f, nil
}

// FontInfo describes a registered font name.
type FontInfo struct {
	Name string
	Path string
	Size float64
	// Fallback is set when the name resolves to a substitute because its
	// own file could not be loaded.
	Fallback bool
}

type fontEntry struct {
	face font.Face
	info FontInfo
}

// FontRegistry resolves symbolic font names to faces.
//
// Lookups never fail: a missing name falls back to "medium", and that to
// a built-in bitmap face. Registration failures are logged and leave the
// name aliased to whatever "medium" resolves to at that moment.
type FontRegistry struct {
	loader  FontLoader
	entries map[string]fontEntry
	builtin font.Face
}

// NewFontRegistry returns a registry whose standard names all resolve to
// the built-in face. A nil loader selects NewOpenTypeLoader.
func NewFontRegistry(loader FontLoader) *FontRegistry {
	if loader == nil {
		loader = NewOpenTypeLoader()
	}
	r := &FontRegistry{
		loader:  loader,
		entries: make(map[string]fontEntry),
		builtin: basicfont.Face7x13,
	}
	r.useBuiltin(DefaultSizes)
	return r
}

func (r *FontRegistry) useBuiltin(sizes SizeMap) {
	for _, name := range sortedNames(sizes) {
		r.entries[name] = fontEntry{
			face: r.builtin,
			info: FontInfo{Name: name, Size: sizes[name], Fallback: true},
		}
	}
}

// LoadDefaults loads one face per entry of sizes from path under the
// bare suffix names. If any size fails, every name in sizes resolves to
// the built-in face instead.
func (r *FontRegistry) LoadDefaults(path string, sizes SizeMap) {
	if sizes == nil {
		sizes = DefaultSizes
	}
	loaded := make(map[string]fontEntry, len(sizes))
	for _, name := range sortedNames(sizes) {
		face, err := r.loader.LoadFont(path, sizes[name])
		if err != nil {
			Logger().Warn("default font unavailable, using built-in face",
				"path", path, "err", err)
			r.useBuiltin(sizes)
			return
		}
		loaded[name] = fontEntry{face: face, info: FontInfo{Name: name, Path: path, Size: sizes[name]}}
	}
	maps.Copy(r.entries, loaded)
}

// Register loads path at size under name. On failure the error is logged
// and name is aliased to the current "medium" face.
func (r *FontRegistry) Register(name, path string, size float64) {
	face, err := r.loader.LoadFont(path, size)
	if err != nil {
		Logger().Warn("font registration failed, aliasing to medium",
			"name", name, "path", path, "size", size, "err", err)
		r.entries[name] = fontEntry{
			face: r.Face(FontMedium),
			info: FontInfo{Name: name, Path: path, Size: size, Fallback: true},
		}
		return
	}
	r.entries[name] = fontEntry{face: face, info: FontInfo{Name: name, Path: path, Size: size}}
}

// RegisterFamily registers one face per entry of sizes under the names
// prefix_suffix. A nil sizes map uses DefaultSizes.
func (r *FontRegistry) RegisterFamily(prefix, path string, sizes SizeMap) {
	if sizes == nil {
		sizes = DefaultSizes
	}
	for _, suffix := range sortedNames(sizes) {
		r.Register(prefix+"_"+suffix, path, sizes[suffix])
	}
}

// Face resolves the first registered name among names, then "medium",
// then the built-in face. Empty names are skipped.
func (r *FontRegistry) Face(names ...string) font.Face {
	for _, name := range names {
		if e, ok := r.entries[name]; ok && name != "" {
			return e.face
		}
	}
	if e, ok := r.entries[FontMedium]; ok {
		return e.face
	}
	Logger().Debug("no registered font, using built-in face", "names", names)
	return r.builtin
}

// Has reports whether name is registered.
func (r *FontRegistry) Has(name string) bool {
	_, ok := r.entries[name]
	return ok
}

// Info returns what name was registered with.
func (r *FontRegistry) Info(name string) (FontInfo, bool) {
	e, ok := r.entries[name]
	return e.info, ok
}

// Names returns every registered name in sorted order.
func (r *FontRegistry) Names() []string {
	return slices.Sorted(maps.Keys(r.entries))
}

// Builtin returns the face used when nothing else resolves.
func (r *FontRegistry) Builtin() font.Face {
	return r.builtin
}

func sortedNames(sizes SizeMap) []string {
	return slices.Sorted(maps.Keys(sizes))
}
