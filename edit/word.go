package edit

import "unicode"

// WordPredicate reports whether r belongs to a word. It drives Ctrl+Arrow
// jumps, word deletion and double-click selection.
type WordPredicate func(r rune) bool

// ASCIIWord matches ASCII letters, digits and underscore. Scripts that do
// not separate words with spaces get one "word" per run of non-ASCII text.
func ASCIIWord(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

// UnicodeWord matches Unicode letters, digits, marks and underscore.
func UnicodeWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

// wordLeft returns the boundary reached from pos by skipping whitespace and
// then word runes backwards. When neither moves, it steps one rune so the
// caret never sticks on punctuation.
func wordLeft(runes []rune, pos int, isWord WordPredicate) int {
	pos = clamp(pos, len(runes))
	start := pos
	for pos > 0 && unicode.IsSpace(runes[pos-1]) {
		pos--
	}
	for pos > 0 && isWord(runes[pos-1]) {
		pos--
	}
	if pos == start && pos > 0 {
		pos--
	}
	return pos
}

// wordRight is the forward counterpart of wordLeft.
func wordRight(runes []rune, pos int, isWord WordPredicate) int {
	n := len(runes)
	pos = clamp(pos, n)
	start := pos
	for pos < n && unicode.IsSpace(runes[pos]) {
		pos++
	}
	for pos < n && isWord(runes[pos]) {
		pos++
	}
	if pos == start && pos < n {
		pos++
	}
	return pos
}

// wordAt returns the range of the word containing i or ending at i. Off a
// word it returns the run of same-class runes (spaces or punctuation)
// around i.
func wordAt(runes []rune, i int, isWord WordPredicate) (start, end int) {
	n := len(runes)
	if n == 0 {
		return 0, 0
	}
	i = clamp(i, n)
	switch {
	case i < n && isWord(runes[i]):
	case i > 0 && isWord(runes[i-1]):
		i--
	case i == n:
		i--
	}

	class := runeClass(runes[i], isWord)
	start, end = i, i+1
	for start > 0 && runeClass(runes[start-1], isWord) == class {
		start--
	}
	for end < n && runeClass(runes[end], isWord) == class {
		end++
	}
	return start, end
}

type charClass uint8

const (
	classWord charClass = iota
	classSpace
	classNewline
	classOther
)

func runeClass(r rune, isWord WordPredicate) charClass {
	switch {
	case isWord(r):
		return classWord
	case r == '\n':
		return classNewline
	case unicode.IsSpace(r):
		return classSpace
	}
	return classOther
}
