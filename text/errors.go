package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrEmptyFamily is returned when a font family is registered without a name.
	ErrEmptyFamily = errors.New("text: empty font family name")
)
