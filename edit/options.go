package edit

import (
	"log/slog"
	"time"

	"github.com/gogpu/ggedit"
)

// Option configures an Editor during creation.
//
// Example:
//
//	ed := edit.NewEditor(measurer,
//		edit.WithConverter(viewportController),
//		edit.WithRenderFunc(requestRedraw),
//	)
type Option func(*editorOptions)

// Converter maps screen points to canvas points. A viewport controller is
// the usual implementation.
type Converter interface {
	ScreenToCanvas(p ggedit.Point) ggedit.Point
}

// ConverterFunc adapts a function to Converter.
type ConverterFunc func(p ggedit.Point) ggedit.Point

// ScreenToCanvas implements Converter.
func (f ConverterFunc) ScreenToCanvas(p ggedit.Point) ggedit.Point { return f(p) }

// Caret describes where the caret graphic goes. Area is nil when no text
// area is active and the caret should be hidden.
type Caret struct {
	Area   *TextArea
	Pos    ggedit.Point
	Height float64
}

// DefaultTabWidth is the number of spaces Tab inserts.
const DefaultTabWidth = 4

// editorOptions holds optional configuration for Editor creation.
type editorOptions struct {
	render     func()
	change     func(*TextArea)
	caret      func(Caret)
	conv       Converter
	clipboard  Clipboard
	isWord     WordPredicate
	tabWidth   int
	blink      time.Duration
	now        func() time.Time
	autoHeight bool
	logger     *slog.Logger
}

func defaultOptions() editorOptions {
	return editorOptions{
		isWord:     ASCIIWord,
		tabWidth:   DefaultTabWidth,
		blink:      DefaultBlinkInterval,
		now:        time.Now,
		autoHeight: true,
	}
}

// WithRenderFunc sets the callback that requests a redraw after any
// visible change.
func WithRenderFunc(f func()) Option {
	return func(o *editorOptions) {
		o.render = f
	}
}

// WithChangeFunc sets the callback run after the text of an area changed.
// Persisting the text is up to the callback.
func WithChangeFunc(f func(area *TextArea)) Option {
	return func(o *editorOptions) {
		o.change = f
	}
}

// WithCaretFunc sets the callback that repositions the caret graphic.
func WithCaretFunc(f func(Caret)) Option {
	return func(o *editorOptions) {
		o.caret = f
	}
}

// WithConverter sets the screen to canvas mapping for pointer events.
// Without one, screen and canvas coordinates are the same.
func WithConverter(c Converter) Option {
	return func(o *editorOptions) {
		o.conv = c
	}
}

// WithClipboard enables Ctrl/Cmd+C, X and V.
func WithClipboard(c Clipboard) Option {
	return func(o *editorOptions) {
		o.clipboard = c
	}
}

// WithWordPredicate replaces the ASCII word class used for word jumps,
// word deletion and double-click selection.
func WithWordPredicate(p WordPredicate) Option {
	return func(o *editorOptions) {
		if p != nil {
			o.isWord = p
		}
	}
}

// WithTabWidth sets how many spaces Tab inserts. Values below 1 are
// ignored.
func WithTabWidth(n int) Option {
	return func(o *editorOptions) {
		if n >= 1 {
			o.tabWidth = n
		}
	}
}

// WithBlinkInterval sets the caret blink half-period. Zero keeps the caret
// solid.
func WithBlinkInterval(d time.Duration) Option {
	return func(o *editorOptions) {
		o.blink = max(d, 0)
	}
}

// WithClock sets the time source used for blinking.
func WithClock(now func() time.Time) Option {
	return func(o *editorOptions) {
		if now != nil {
			o.now = now
		}
	}
}

// WithAutoHeight controls whether active areas grow and shrink to fit
// their lines. It is on by default.
func WithAutoHeight(on bool) Option {
	return func(o *editorOptions) {
		o.autoHeight = on
	}
}

// WithLogger sets the logger for this editor. By default the package-wide
// ggedit logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(o *editorOptions) {
		o.logger = l
	}
}
