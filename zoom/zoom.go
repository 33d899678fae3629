// Package zoom defines the discrete zoom scale used by the canvas camera.
//
// Every zoom the camera can hold is one of twenty levels between Min and Max
// in steps of Step. Continuous inputs (wheel deltas, fit computations,
// configuration values) are snapped onto the table before use.
package zoom

import (
	"fmt"
	"math"
)

const (
	// Min is the smallest zoom level.
	Min = 0.25

	// Max is the largest zoom level.
	Max = 5.0

	// Step is the distance between adjacent levels.
	Step = 0.25

	// Default is the zoom used on creation and after a view reset.
	Default = 1.0

	// Count is the number of levels in the table.
	Count = 20

	// epsilon absorbs float noise when comparing against table entries.
	epsilon = 1e-9
)

// levels is built once; Levels hands out copies.
var levels = func() [Count]float64 {
	var out [Count]float64
	for i := range out {
		out[i] = Min + float64(i)*Step
	}
	return out
}()

// Levels returns the zoom table in ascending order.
func Levels() []float64 {
	out := make([]float64, Count)
	copy(out, levels[:])
	return out
}

// Level returns the table entry at index i, clamped to the table bounds.
func Level(i int) float64 {
	if i < 0 {
		i = 0
	}
	if i >= Count {
		i = Count - 1
	}
	return levels[i]
}

// Clamp limits x to [Min, Max]. NaN becomes Default.
func Clamp(x float64) float64 {
	if math.IsNaN(x) {
		return Default
	}
	return math.Max(Min, math.Min(Max, x))
}

// Index returns the table index of Snap(x).
func Index(x float64) int {
	x = Clamp(x)
	// Levels are evenly spaced, so the nearest index is a rounded division.
	// Ties (exactly half a step) round up.
	return int(math.Floor((x-Min)/Step + 0.5))
}

// Snap rounds x to the nearest table entry after clamping it to [Min, Max].
// Exact ties go to the larger level. Snap is idempotent.
func Snap(x float64) float64 {
	return levels[Index(x)]
}

// SnapDown returns the largest table entry at or below x, or Min when x is
// below the table.
func SnapDown(x float64) float64 {
	if math.IsNaN(x) {
		return Default
	}
	if x <= Min {
		return Min
	}
	if x >= Max {
		return Max
	}
	i := int(math.Floor((x - Min + epsilon) / Step))
	return Level(i)
}

// Next returns the smallest table entry strictly greater than x.
// At or above Max it returns Max.
func Next(x float64) float64 {
	if math.IsNaN(x) {
		return Default
	}
	for _, l := range levels {
		if l > x+epsilon {
			return l
		}
	}
	return Max
}

// Previous returns the largest table entry strictly smaller than x.
// At or below Min it returns Min.
func Previous(x float64) float64 {
	if math.IsNaN(x) {
		return Default
	}
	for i := Count - 1; i >= 0; i-- {
		if levels[i] < x-epsilon {
			return levels[i]
		}
	}
	return Min
}

// Contains reports whether x is a table entry.
func Contains(x float64) bool {
	if math.IsNaN(x) || x < Min-epsilon || x > Max+epsilon {
		return false
	}
	return math.Abs(Snap(x)-x) < epsilon
}

// Percent formats a zoom level as a whole percentage, e.g. "125%".
func Percent(x float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(x*100)))
}
