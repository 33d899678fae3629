package edit

// Logical line helpers. These work on hard lines split on '\n', not on
// wrapped lines, so Home/End and Up/Down behave the same at any width.

// lineStart returns the index of the first rune of the line holding pos.
func lineStart(runes []rune, pos int) int {
	pos = clamp(pos, len(runes))
	for pos > 0 && runes[pos-1] != '\n' {
		pos--
	}
	return pos
}

// lineEnd returns the index of the '\n' ending the line holding pos, or
// len(runes) on the last line.
func lineEnd(runes []rune, pos int) int {
	n := len(runes)
	pos = clamp(pos, n)
	for pos < n && runes[pos] != '\n' {
		pos++
	}
	return pos
}

// lineUp returns the caret index one line above pos, keeping the column
// clamped to the destination line length. On the first line it returns 0.
func lineUp(runes []rune, pos int) int {
	start := lineStart(runes, pos)
	if start == 0 {
		return 0
	}
	col := clamp(pos, len(runes)) - start
	prevStart := lineStart(runes, start-1)
	return prevStart + min(col, start-1-prevStart)
}

// lineDown returns the caret index one line below pos. On the last line it
// returns len(runes).
func lineDown(runes []rune, pos int) int {
	n := len(runes)
	end := lineEnd(runes, pos)
	if end == n {
		return n
	}
	col := clamp(pos, n) - lineStart(runes, pos)
	nextStart := end + 1
	return nextStart + min(col, lineEnd(runes, nextStart)-nextStart)
}
