package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Measurer backends.
const (
	MeasurerFace    = "face"
	MeasurerShaping = "shaping"
	MeasurerCell    = "cell"
	MeasurerFixed   = "fixed"
)

// Word classes.
const (
	WordsASCII   = "ascii"
	WordsUnicode = "unicode"
)

// Validate reports every invalid field. Each failure wraps ErrInvalid.
func (c Config) Validate() error {
	var errs []error
	bad := func(field, format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s: %s", ErrInvalid, field, fmt.Sprintf(format, args...)))
	}

	t := c.Text
	if !positive(t.Size) {
		bad("text.size", "%v is not a positive size", t.Size)
	}
	if !positive(t.LineHeight) {
		bad("text.line_height", "%v is not a positive multiplier", t.LineHeight)
	}
	switch strings.ToLower(t.Measurer) {
	case MeasurerFace, MeasurerShaping, MeasurerCell, MeasurerFixed:
	default:
		bad("text.measurer", "unknown backend %q", t.Measurer)
	}
	if t.CacheCapacity < 0 {
		bad("text.cache_capacity", "%d is negative", t.CacheCapacity)
	}

	e := c.Editor
	if e.TabWidth < 1 || e.TabWidth > 16 {
		bad("editor.tab_width", "%d is outside 1..16", e.TabWidth)
	}
	if e.BlinkInterval < 0 {
		bad("editor.blink_interval", "%v is negative", e.BlinkInterval)
	}
	switch strings.ToLower(e.Words) {
	case WordsASCII, WordsUnicode:
	default:
		bad("editor.words", "unknown word class %q", e.Words)
	}

	v := c.Viewport
	if !positive(v.GridCell) {
		bad("viewport.grid_cell", "%v is not positive", v.GridCell)
	}
	if v.FitPadding < 0 || math.IsNaN(v.FitPadding) {
		bad("viewport.fit_padding", "%v is negative", v.FitPadding)
	}
	if !positive(v.PixelRatio) {
		bad("viewport.pixel_ratio", "%v is not positive", v.PixelRatio)
	}

	if _, err := c.ResizeMode(); err != nil {
		errs = append(errs, err)
	}
	if c.Resize.Throttle < 0 {
		bad("resize.throttle", "%v is negative", c.Resize.Throttle)
	}

	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func positive(f float64) bool {
	return f > 0 && !math.IsInf(f, 0)
}
