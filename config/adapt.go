package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/ggedit/edit"
	"github.com/gogpu/ggedit/text"
	"github.com/gogpu/ggedit/viewport"
)

// Style returns the text style.
func (c Config) Style() text.Style {
	return text.Style{Family: c.Text.Family, Size: c.Text.Size, LineHeight: c.Text.LineHeight}.Normalize()
}

// Measurer builds the configured measurement backend, loads the extra
// font files and wraps it in a width cache when the capacity is positive.
// cellWidth is only used by the cell backend.
func (c Config) Measurer(cellWidth float64) (text.Measurer, error) {
	opts := []text.MeasurerOption{text.WithFallbackFamily(c.Text.Fallback)}
	if c.Text.Language != "" {
		opts = append(opts, text.WithLanguage(c.Text.Language))
	}

	type registrar interface {
		RegisterFamily(name string, data []byte) error
	}
	var m text.Measurer
	var reg registrar
	switch strings.ToLower(c.Text.Measurer) {
	case MeasurerFace, "":
		fm := text.NewFaceMeasurer(opts...)
		m, reg = fm, fm
	case MeasurerShaping:
		sm := text.NewShapingMeasurer(opts...)
		m, reg = sm, sm
	case MeasurerCell:
		m = text.CellMeasurer{CellWidth: cellWidth}
	case MeasurerFixed:
		m = text.FixedMeasurer{}
	default:
		return nil, fmt.Errorf("%w: text.measurer: unknown backend %q", ErrInvalid, c.Text.Measurer)
	}

	for name, path := range c.Text.Fonts {
		if reg == nil {
			return nil, fmt.Errorf("%w: text.fonts: backend %q cannot load fonts", ErrInvalid, c.Text.Measurer)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: font %q: %w", name, err)
		}
		if err := reg.RegisterFamily(name, data); err != nil {
			return nil, fmt.Errorf("config: font %q: %w", name, err)
		}
	}

	if c.Text.CacheCapacity > 0 {
		m = text.NewCachedMeasurer(m, c.Text.CacheCapacity)
	}
	return m, nil
}

// WordPredicate returns the configured word class.
func (c Config) WordPredicate() edit.WordPredicate {
	if strings.EqualFold(c.Editor.Words, WordsUnicode) {
		return edit.UnicodeWord
	}
	return edit.ASCIIWord
}

// EditorOptions returns the editor options for c. Callbacks are left to
// the host.
func (c Config) EditorOptions() []edit.Option {
	return []edit.Option{
		edit.WithTabWidth(c.Editor.TabWidth),
		edit.WithBlinkInterval(c.Editor.BlinkInterval.Std()),
		edit.WithAutoHeight(c.Editor.AutoHeight),
		edit.WithWordPredicate(c.WordPredicate()),
	}
}

// ViewportOptions returns the controller options for c.
func (c Config) ViewportOptions() []viewport.Option {
	return []viewport.Option{
		viewport.WithGrid(c.Viewport.Grid),
		viewport.WithGridCell(c.Viewport.GridCell),
		viewport.WithFitPadding(c.Viewport.FitPadding),
		viewport.WithPixelRatio(c.Viewport.PixelRatio),
	}
}

// ResizeMode parses the resize mode.
func (c Config) ResizeMode() (viewport.ResizeMode, error) {
	switch strings.ToLower(c.Resize.Mode) {
	case "window", "":
		return viewport.ResizeWindow, nil
	case "element":
		return viewport.ResizeElement, nil
	case "manual":
		return viewport.ResizeManual, nil
	}
	return 0, fmt.Errorf("%w: resize.mode: unknown mode %q", ErrInvalid, c.Resize.Mode)
}

// ResizeOptions returns the resize coordinator options for c.
func (c Config) ResizeOptions() []viewport.ResizeOption {
	return []viewport.ResizeOption{
		viewport.WithThrottle(c.Resize.Throttle.Std()),
		viewport.WithResizePixelRatio(c.Viewport.PixelRatio),
	}
}

// levelOff disables logging.
const levelOff = slog.Level(100)

// LogLevel parses the log level. "off" maps to a level above every
// record.
func (c Config) LogLevel() (slog.Level, error) {
	switch strings.ToLower(c.Log.Level) {
	case "off", "":
		return levelOff, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("%w: log.level: unknown level %q", ErrInvalid, c.Log.Level)
}

// Logger returns a text logger writing to w at the configured level, or
// nil when logging is off so callers keep the silent default.
func (c Config) Logger(w io.Writer) *slog.Logger {
	level, err := c.LogLevel()
	if err != nil || level == levelOff {
		return nil
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
