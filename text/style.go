package text

import (
	"math"
	"strconv"
	"strings"
)

const (
	// DefaultFamily is the family used when a style names none.
	DefaultFamily = "Go"

	// DefaultSize is the default font size in canvas pixels.
	DefaultSize = 16

	// DefaultLineHeight is the default line height multiplier.
	DefaultLineHeight = 1.2
)

// Style is the font style of a text area.
type Style struct {
	// Family is the font family name, e.g. "Go" or "Go Mono".
	Family string

	// Size is the font size in canvas pixels.
	Size float64

	// LineHeight is a multiplier applied to Size to get the line advance.
	LineHeight float64
}

// DefaultStyle returns the style used for newly created text areas.
func DefaultStyle() Style {
	return Style{Family: DefaultFamily, Size: DefaultSize, LineHeight: DefaultLineHeight}
}

// Normalize fills zero fields with defaults.
func (s Style) Normalize() Style {
	if strings.TrimSpace(s.Family) == "" {
		s.Family = DefaultFamily
	}
	if !(s.Size > 0) || math.IsInf(s.Size, 0) {
		s.Size = DefaultSize
	}
	if !(s.LineHeight > 0) || math.IsInf(s.LineHeight, 0) {
		s.LineHeight = DefaultLineHeight
	}
	return s
}

// LinePixels returns the vertical advance of one line.
func (s Style) LinePixels() float64 {
	n := s.Normalize()
	return n.Size * n.LineHeight
}

// Key returns a stable identifier of the style for caching. Two styles with
// the same key measure identically.
func (s Style) Key() string {
	n := s.Normalize()
	return strings.ToLower(n.Family) + "/" + strconv.FormatFloat(n.Size, 'g', -1, 64)
}
