package edit

import "testing"

func TestWordJumps(t *testing.T) {
	runes := []rune("foo bar_baz  qux")

	var right []int
	for pos := 0; pos < len(runes); {
		pos = wordRight(runes, pos, ASCIIWord)
		right = append(right, pos)
	}
	wantRight := []int{3, 11, 16}
	if !equalInts(right, wantRight) {
		t.Errorf("forward jumps = %v, want %v", right, wantRight)
	}

	var left []int
	for pos := len(runes); pos > 0; {
		pos = wordLeft(runes, pos, ASCIIWord)
		left = append(left, pos)
	}
	wantLeft := []int{13, 4, 0}
	if !equalInts(left, wantLeft) {
		t.Errorf("backward jumps = %v, want %v", left, wantLeft)
	}
}

func TestWordJumpsOverPunctuation(t *testing.T) {
	runes := []rune("a.b")
	if got := wordLeft(runes, 3, ASCIIWord); got != 2 {
		t.Errorf("wordLeft(3) = %d, want 2", got)
	}
	if got := wordLeft(runes, 2, ASCIIWord); got != 1 {
		t.Errorf("wordLeft(2) = %d, want 1", got)
	}
	if got := wordRight(runes, 1, ASCIIWord); got != 2 {
		t.Errorf("wordRight(1) = %d, want 2", got)
	}
	if got := wordLeft(runes, 0, ASCIIWord); got != 0 {
		t.Errorf("wordLeft(0) = %d", got)
	}
	if got := wordRight(runes, 3, ASCIIWord); got != 3 {
		t.Errorf("wordRight(len) = %d", got)
	}
}

func TestWordAt(t *testing.T) {
	runes := []rune("fast brown fox, ok")
	tests := []struct {
		name       string
		index      int
		start, end int
	}{
		{"word start", 5, 5, 10},
		{"inside word", 7, 5, 10},
		{"word end", 10, 5, 10},
		{"text start", 0, 0, 4},
		{"text end", 18, 16, 18},
		{"word before punctuation", 14, 11, 14},
		{"space after punctuation", 15, 15, 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, e := wordAt(runes, tt.index, ASCIIWord)
			if s != tt.start || e != tt.end {
				t.Errorf("wordAt(%d) = [%d,%d), want [%d,%d)", tt.index, s, e, tt.start, tt.end)
			}
		})
	}

	if s, e := wordAt(nil, 3, ASCIIWord); s != 0 || e != 0 {
		t.Errorf("wordAt on empty text = [%d,%d)", s, e)
	}
	if s, e := wordAt([]rune("a--b"), 2, ASCIIWord); s != 1 || e != 3 {
		t.Errorf("wordAt inside punctuation = [%d,%d), want [1,3)", s, e)
	}
	if s, e := wordAt([]rune("a   b"), 2, ASCIIWord); s != 1 || e != 4 {
		t.Errorf("wordAt inside spaces = [%d,%d), want [1,4)", s, e)
	}
}

func TestWordPredicates(t *testing.T) {
	for _, r := range "az_AZ09" {
		if !ASCIIWord(r) {
			t.Errorf("ASCIIWord(%q) = false", r)
		}
	}
	for _, r := range " -.é日" {
		if ASCIIWord(r) {
			t.Errorf("ASCIIWord(%q) = true", r)
		}
	}
	for _, r := range "é日_9" {
		if !UnicodeWord(r) {
			t.Errorf("UnicodeWord(%q) = false", r)
		}
	}
}

func TestLogicalLines(t *testing.T) {
	runes := []rune("abc\nde\nfghij")
	tests := []struct {
		name string
		fn   func([]rune, int) int
		pos  int
		want int
	}{
		{"start of middle line", lineStart, 5, 4},
		{"end of middle line", lineEnd, 5, 6},
		{"end of last line", lineEnd, 8, 12},
		{"up on first line", lineUp, 2, 0},
		{"up keeps column", lineUp, 9, 6},
		{"up clamps column", lineUp, 11, 6},
		{"down keeps column", lineDown, 2, 6},
		{"down clamps column", lineDown, 3, 6},
		{"down into longer line", lineDown, 6, 9},
		{"down on last line", lineDown, 8, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(runes, tt.pos); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
