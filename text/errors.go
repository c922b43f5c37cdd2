package text

import "errors"

// Sentinel errors for the text package.
var (
	// ErrEmptyFontData is returned when a font is registered without data.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrUnknownFont is returned when a font number has no registered face.
	ErrUnknownFont = errors.New("text: unknown font")
)
