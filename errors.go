package eink

import "errors"

// Sentinel errors for eink.
var (
	// ErrVectorRead is returned when a vector image file cannot be read.
	ErrVectorRead = errors.New("eink: cannot read vector image")

	// ErrVectorRender is returned when vector markup cannot be rasterized.
	ErrVectorRender = errors.New("eink: cannot render vector image")

	// ErrFontLoad is returned by FontLoader implementations for missing
	// or corrupt font files. FontRegistry never surfaces it.
	ErrFontLoad = errors.New("eink: cannot load font")
)
