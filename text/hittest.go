package text

import (
	"math"

	"github.com/gogpu/ggedit"
)

// LineAt returns the index of the line holding caret index. A caret sitting
// on a consumed separator belongs to the line it ends. Indices past the
// text map to the last line; an empty layout maps everything to 0.
func LineAt(lines []LineInfo, index int) int {
	if len(lines) == 0 || index <= 0 {
		return 0
	}
	for i, l := range lines {
		if index <= l.End {
			return i
		}
	}
	return len(lines) - 1
}

// IndexAt maps a text-local point to the closest caret index.
//
// The line is chosen by y. Within the line every caret position is measured
// and the one whose x offset is closest to x wins; the leftmost wins a tie.
// Empty lines return their Start.
func IndexAt(lines []LineInfo, x, y float64, style Style, m Measurer) int {
	if len(lines) == 0 {
		return 0
	}
	li := 0
	if lh := style.LinePixels(); !math.IsNaN(y) && y > 0 {
		li = min(int(y/lh), len(lines)-1)
	}
	line := lines[li]
	return line.Start + nearestColumn(line, x, style, m)
}

func nearestColumn(line LineInfo, x float64, style Style, m Measurer) int {
	if math.IsNaN(x) || x <= 0 || line.Text == "" {
		return 0
	}
	runes := []rune(line.Text)
	best := 0
	bestDist := math.Abs(x)
	for i := 1; i <= len(runes); i++ {
		d := math.Abs(x - width(m, string(runes[:i]), style))
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// CaretPosition returns the text-local top-left of the caret graphic for
// index.
func CaretPosition(lines []LineInfo, index int, style Style, m Measurer) ggedit.Point {
	if len(lines) == 0 {
		return ggedit.Point{}
	}
	li := LineAt(lines, index)
	return ggedit.Pt(columnX(lines[li], index, style, m), float64(li)*style.LinePixels())
}

// columnX is the x offset of caret index inside line.
func columnX(line LineInfo, index int, style Style, m Measurer) float64 {
	runes := []rune(line.Text)
	col := min(max(index-line.Start, 0), len(runes))
	return width(m, string(runes[:col]), style)
}

// SelectionRects returns one text-local rectangle per line touched by the
// range [start, end). A consumed separator inside the range is drawn as a
// space-wide stub so selected line ends stay visible.
func SelectionRects(lines []LineInfo, start, end int, style Style, m Measurer) []ggedit.Rect {
	if start > end {
		start, end = end, start
	}
	if start == end || len(lines) == 0 {
		return nil
	}
	lh := style.LinePixels()
	stub := width(m, " ", style)

	var rects []ggedit.Rect
	for i, l := range lines {
		if end <= l.Start || start > l.End {
			continue
		}
		x0 := columnX(l, max(start, l.Start), style, m)
		x1 := columnX(l, min(end, l.End), style, m)
		if end > l.End && i < len(lines)-1 {
			x1 += stub
		}
		if x1 <= x0 {
			continue
		}
		rects = append(rects, ggedit.Rect{X: x0, Y: float64(i) * lh, Width: x1 - x0, Height: lh})
	}
	return rects
}
