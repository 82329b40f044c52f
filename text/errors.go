package text

import "errors"

var (
	// ErrEmptyFontData is returned when registering a font with no data.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrUnknownFont is returned when a font id does not name a registered font.
	ErrUnknownFont = errors.New("text: unknown font")
)
