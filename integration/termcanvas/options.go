package termcanvas

import (
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/ggedit/edit"
	"github.com/gogpu/ggedit/text"
	"github.com/gogpu/ggedit/viewport"
)

// Option configures a Host.
type Option func(*hostOptions)

// Theme holds the cell styles the host draws with.
type Theme struct {
	Background tcell.Style
	Grid       tcell.Style
	Border     tcell.Style
	Active     tcell.Style
	Text       tcell.Style
	Selection  tcell.Style
	Preview    tcell.Style
	Status     tcell.Style
}

// DefaultTheme returns the default styles.
func DefaultTheme() Theme {
	base := tcell.StyleDefault
	return Theme{
		Background: base,
		Grid:       base.Foreground(tcell.ColorDarkGray),
		Border:     base.Foreground(tcell.ColorGray),
		Active:     base.Foreground(tcell.ColorYellow),
		Text:       base,
		Selection:  base.Reverse(true),
		Preview:    base.Foreground(tcell.ColorGreen),
		Status:     base.Reverse(true),
	}
}

type hostOptions struct {
	measurer  text.Measurer
	style     text.Style
	theme     Theme
	editor    []edit.Option
	viewport  []viewport.Option
	resize    []viewport.ResizeOption
	now       func() time.Time
	status    bool
	logger    *slog.Logger
	clipboard edit.Clipboard
}

func defaultOptions() hostOptions {
	return hostOptions{
		measurer: text.CellMeasurer{CellWidth: 1},
		style:    TerminalStyle(),
		theme:    DefaultTheme(),
		status:   true,
	}
}

// TerminalStyle is the text style whose line advance is one cell.
func TerminalStyle() text.Style {
	return text.Style{Family: text.DefaultFamily, Size: 1, LineHeight: 1}
}

// WithMeasurer sets the measurer. The default counts cells.
func WithMeasurer(m text.Measurer) Option {
	return func(o *hostOptions) {
		if m != nil {
			o.measurer = m
		}
	}
}

// WithStyle sets the style of areas added or created through the host.
func WithStyle(s text.Style) Option {
	return func(o *hostOptions) { o.style = s }
}

// WithTheme sets the cell styles.
func WithTheme(t Theme) Option {
	return func(o *hostOptions) { o.theme = t }
}

// WithEditorOptions appends options for the editor. The host's own
// render, converter and clock options are applied first.
func WithEditorOptions(opts ...edit.Option) Option {
	return func(o *hostOptions) { o.editor = append(o.editor, opts...) }
}

// WithViewportOptions appends options for the viewport controller.
func WithViewportOptions(opts ...viewport.Option) Option {
	return func(o *hostOptions) { o.viewport = append(o.viewport, opts...) }
}

// WithResizeOptions appends options for the resize coordinator.
func WithResizeOptions(opts ...viewport.ResizeOption) Option {
	return func(o *hostOptions) { o.resize = append(o.resize, opts...) }
}

// WithClipboard sets the clipboard. The default is process-local.
func WithClipboard(c edit.Clipboard) Option {
	return func(o *hostOptions) { o.clipboard = c }
}

// WithNow overrides the time source for blinking and click counting.
func WithNow(now func() time.Time) Option {
	return func(o *hostOptions) { o.now = now }
}

// WithStatusLine turns the bottom status line on or off.
func WithStatusLine(on bool) Option {
	return func(o *hostOptions) { o.status = on }
}

// WithLogger sets the logger of the host and its components.
func WithLogger(l *slog.Logger) Option {
	return func(o *hostOptions) { o.logger = l }
}
