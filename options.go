package eink

// Option configures a Canvas during creation.
//
// Example:
//
//	c := eink.NewCanvas(250, 122, "pic",
//	    eink.WithFontFile("Lato-Regular.ttf"),
//	    eink.WithDefaultSizes(eink.SizeMap{"small": 12, "medium": 16}))
type Option func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	loader   FontLoader
	fontFile string
	sizes    SizeMap
}

// defaultOptions returns the default canvas options.
func defaultOptions() canvasOptions {
	return canvasOptions{
		loader:   nil, // Will be set to an OpenTypeLoader if nil
		fontFile: "Font.ttc",
		sizes:    DefaultSizes,
	}
}

// WithFontLoader sets the loader used for the default family and every
// later registration.
func WithFontLoader(l FontLoader) Option {
	return func(o *canvasOptions) {
		o.loader = l
	}
}

// WithFontFile sets the file name, relative to the font directory, of the
// default family. The default is "Font.ttc".
func WithFontFile(name string) Option {
	return func(o *canvasOptions) {
		o.fontFile = name
	}
}

// WithDefaultSizes overrides the sizes the default family is loaded at.
func WithDefaultSizes(sizes SizeMap) Option {
	return func(o *canvasOptions) {
		if sizes != nil {
			o.sizes = sizes
		}
	}
}
