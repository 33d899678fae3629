package config

import (
	"github.com/gogpu/ggedit/edit"
	"github.com/gogpu/ggedit/text"
	"github.com/gogpu/ggedit/viewport"
)

// Default returns the configuration every component uses when given no
// options.
func Default() Config {
	return Config{
		Text: TextConfig{
			Family:        text.DefaultFamily,
			Size:          text.DefaultSize,
			LineHeight:    text.DefaultLineHeight,
			Measurer:      MeasurerFace,
			Fallback:      text.DefaultFamily,
			CacheCapacity: text.DefaultCacheCapacity,
		},
		Editor: EditorConfig{
			TabWidth:      edit.DefaultTabWidth,
			BlinkInterval: Duration(edit.DefaultBlinkInterval),
			AutoHeight:    true,
			Words:         WordsASCII,
		},
		Viewport: ViewportConfig{
			Grid:       true,
			GridCell:   viewport.DefaultGridCell,
			FitPadding: viewport.DefaultFitPadding,
			PixelRatio: 1,
		},
		Resize: ResizeConfig{
			Mode:     "window",
			Throttle: Duration(viewport.DefaultThrottle),
		},
		Log: LogConfig{Level: "off"},
	}
}
