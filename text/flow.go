package text

import (
	"math"

	"github.com/gogpu/ggedit"
)

// LineInfo is one wrapped line.
type LineInfo struct {
	// Text is the content of the line, without the consumed separator.
	Text string

	// Width is the measured advance of Text in canvas pixels.
	Width float64

	// Start is the rune offset of the first rune of the line.
	Start int

	// End is the rune offset one past the last rune of the line. When the
	// line is not the last one, the rune at End is the consumed space or
	// newline and the next line starts at End+1.
	End int
}

// Len returns the number of runes on the line.
func (l LineInfo) Len() int {
	return l.End - l.Start
}

// Wrap wraps s into lines no wider than maxWidth.
//
// Hard newlines always break. Within a paragraph words are separated by
// single spaces, so a run of spaces yields empty words and every rune stays
// accounted for. A word joins the current line when the measured width of
// the line plus a space plus the word fits in maxWidth, or unconditionally
// when the line has no word yet; that keeps an over-wide word on a line of
// its own instead of stalling. An empty string yields no lines.
//
// The result is a pure function of (s, maxWidth, style, m) and is never
// cached here.
func Wrap(s string, maxWidth float64, style Style, m Measurer) []LineInfo {
	if s == "" {
		return nil
	}
	if math.IsNaN(maxWidth) {
		maxWidth = 0
	}

	runes := []rune(s)
	lines := make([]LineInfo, 0, 4)
	paraStart := 0
	for i := 0; i <= len(runes); i++ {
		if i == len(runes) || runes[i] == '\n' {
			lines = wrapParagraph(lines, runes, paraStart, i, maxWidth, style, m)
			paraStart = i + 1
		}
	}
	return lines
}

// wrapParagraph appends the lines of runes[start:end], which holds no
// newline, to lines.
func wrapParagraph(lines []LineInfo, runes []rune, start, end int, maxWidth float64, style Style, m Measurer) []LineInfo {
	if start == end {
		return append(lines, LineInfo{Start: start, End: end})
	}

	lineStart := start
	lineEnd := start
	hasWord := false

	for wordStart := start; wordStart <= end; {
		wordEnd := wordStart
		for wordEnd < end && runes[wordEnd] != ' ' {
			wordEnd++
		}

		if hasWord && width(m, string(runes[lineStart:wordEnd]), style) > maxWidth {
			lines = append(lines, newLine(runes, lineStart, lineEnd, style, m))
			lineStart = wordStart
		}
		lineEnd = wordEnd
		hasWord = true
		wordStart = wordEnd + 1
	}

	return append(lines, newLine(runes, lineStart, lineEnd, style, m))
}

func newLine(runes []rune, start, end int, style Style, m Measurer) LineInfo {
	s := string(runes[start:end])
	return LineInfo{Text: s, Width: width(m, s, style), Start: start, End: end}
}

// Flow binds a Measurer and a Style so callers can run the flow operations
// without threading both through every call.
type Flow struct {
	m     Measurer
	style Style
}

// NewFlow returns a Flow measuring with m in style.
func NewFlow(m Measurer, style Style) Flow {
	return Flow{m: m, style: style.Normalize()}
}

// Style returns the flow's style.
func (f Flow) Style() Style { return f.style }

// Measurer returns the flow's measurer.
func (f Flow) Measurer() Measurer { return f.m }

// Measure returns the width of s in the flow's style.
func (f Flow) Measure(s string) float64 { return width(f.m, s, f.style) }

// Wrap is Wrap with the flow's style and measurer.
func (f Flow) Wrap(s string, maxWidth float64) []LineInfo {
	return Wrap(s, maxWidth, f.style, f.m)
}

// Bounds is Bounds with the flow's style and measurer.
func (f Flow) Bounds(s string, maxWidth float64) (w, h float64) {
	return Bounds(s, maxWidth, f.style, f.m)
}

// OptimalHeight is OptimalHeight with the flow's style.
func (f Flow) OptimalHeight(lines []LineInfo) float64 {
	return OptimalHeight(len(lines), f.style)
}

// IndexAt is IndexAt with the flow's style and measurer.
func (f Flow) IndexAt(lines []LineInfo, x, y float64) int {
	return IndexAt(lines, x, y, f.style, f.m)
}

// CaretPosition is CaretPosition with the flow's style and measurer.
func (f Flow) CaretPosition(lines []LineInfo, index int) ggedit.Point {
	return CaretPosition(lines, index, f.style, f.m)
}

// SelectionRects is SelectionRects with the flow's style and measurer.
func (f Flow) SelectionRects(lines []LineInfo, start, end int) []ggedit.Rect {
	return SelectionRects(lines, start, end, f.style, f.m)
}
