// Package device classifies the host viewport and carries the fit math used
// to size the canvas inside it.
package device

import "math"

// Class is a coarse device category derived from the viewport width.
type Class uint8

const (
	// Desktop is the zero value so an unknown viewport gets the roomiest layout.
	Desktop Class = iota
	// Tablet covers medium widths.
	Tablet
	// Mobile covers narrow widths.
	Mobile
)

// String returns the string representation of the class.
func (c Class) String() string {
	switch c {
	case Desktop:
		return "desktop"
	case Tablet:
		return "tablet"
	case Mobile:
		return "mobile"
	default:
		return "unknown"
	}
}

// Orientation of the viewport.
type Orientation uint8

const (
	// Landscape is used for wide and square viewports.
	Landscape Orientation = iota
	// Portrait is used when the viewport is taller than it is wide.
	Portrait
)

// String returns the string representation of the orientation.
func (o Orientation) String() string {
	if o == Portrait {
		return "portrait"
	}
	return "landscape"
}

// Breakpoints are the minimum widths (in CSS pixels) of each class.
type Breakpoints struct {
	Tablet  float64
	Desktop float64
}

// DefaultBreakpoints match the dashboard's responsive layout.
var DefaultBreakpoints = Breakpoints{Tablet: 768, Desktop: 1024}

// Classify returns the class of a viewport width.
func (b Breakpoints) Classify(width float64) Class {
	switch {
	case width < b.Tablet:
		return Mobile
	case width < b.Desktop:
		return Tablet
	default:
		return Desktop
	}
}

// Classify uses DefaultBreakpoints.
func Classify(width float64) Class {
	return DefaultBreakpoints.Classify(width)
}

// OrientationOf returns Portrait when height exceeds width.
func OrientationOf(width, height float64) Orientation {
	if height > width {
		return Portrait
	}
	return Landscape
}

// Info describes a viewport.
type Info struct {
	Width, Height float64
	PixelRatio    float64
	Class         Class
	Orientation   Orientation
}

// Describe builds an Info. A non-positive or NaN pixel ratio becomes 1.
func Describe(width, height, pixelRatio float64) Info {
	if !(pixelRatio > 0) {
		pixelRatio = 1
	}
	return Info{
		Width:       width,
		Height:      height,
		PixelRatio:  pixelRatio,
		Class:       Classify(width),
		Orientation: OrientationOf(width, height),
	}
}

// DevicePixels returns the renderer dimensions for the viewport.
func (i Info) DevicePixels() (w, h int) {
	return int(math.Round(i.Width * i.PixelRatio)), int(math.Round(i.Height * i.PixelRatio))
}

// Size is a width/height pair.
type Size struct {
	Width, Height float64
}

// Empty reports whether either dimension is not positive.
func (s Size) Empty() bool {
	return !(s.Width > 0) || !(s.Height > 0)
}

// FitScale returns the largest scale at which content fits inside container
// after removing padding on every side, capped at 1 so content is never
// upscaled. Empty content fits at 1; a container fully consumed by padding
// yields 0.
func FitScale(content, container Size, padding float64) float64 {
	if content.Empty() {
		return 1
	}
	if padding < 0 {
		padding = 0
	}
	availW := container.Width - 2*padding
	availH := container.Height - 2*padding
	if availW <= 0 || availH <= 0 {
		return 0
	}
	return math.Min(math.Min(availW/content.Width, availH/content.Height), 1)
}

// RecommendedPadding returns the fit padding used for a device class.
func RecommendedPadding(c Class) float64 {
	switch c {
	case Mobile:
		return 16
	case Tablet:
		return 24
	default:
		return 40
	}
}
