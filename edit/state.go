package edit

// Selection is a directed range. Anchor is where the selection started and
// Focus is the end that moves; the caret sits at Focus.
type Selection struct {
	Anchor int
	Focus  int
}

// Start returns the smaller endpoint.
func (s Selection) Start() int { return min(s.Anchor, s.Focus) }

// End returns the larger endpoint.
func (s Selection) End() int { return max(s.Anchor, s.Focus) }

// Len returns the number of selected runes.
func (s Selection) Len() int { return s.End() - s.Start() }

// Empty reports whether the selection covers no runes.
func (s Selection) Empty() bool { return s.Anchor == s.Focus }

// Clamp returns s with both endpoints clamped to [0, n].
func (s Selection) Clamp(n int) Selection {
	return Selection{Anchor: clamp(s.Anchor, n), Focus: clamp(s.Focus, n)}
}

// State is the caret and optional selection of a text area. A State with no
// selection differs from one with an empty selection; movement without
// Shift clears the selection entirely.
//
// Every mutator takes the text length and clamps, so 0 <= Caret() <= n
// holds after any call.
type State struct {
	caret  int
	sel    Selection
	hasSel bool
}

// Caret returns the caret index.
func (s State) Caret() int { return s.caret }

// Selection returns the selection and whether one exists.
func (s State) Selection() (Selection, bool) { return s.sel, s.hasSel }

// HasSelection reports whether a selection exists, empty or not.
func (s State) HasSelection() bool { return s.hasSel }

// Range returns the ordered bounds of a non-empty selection.
func (s State) Range() (start, end int, ok bool) {
	if !s.hasSel || s.sel.Empty() {
		return 0, 0, false
	}
	return s.sel.Start(), s.sel.End(), true
}

// SetCaret moves the caret to i and drops the selection.
func (s *State) SetCaret(i, n int) {
	s.caret = clamp(i, n)
	s.sel = Selection{}
	s.hasSel = false
}

// Select sets the selection to anchor..focus and puts the caret at focus.
func (s *State) Select(anchor, focus, n int) {
	s.sel = Selection{Anchor: anchor, Focus: focus}.Clamp(n)
	s.caret = s.sel.Focus
	s.hasSel = true
}

// ClearSelection drops the selection and leaves the caret in place.
func (s *State) ClearSelection() {
	s.sel = Selection{}
	s.hasSel = false
}

// Clamp re-establishes the index bounds after the text changed length.
func (s *State) Clamp(n int) {
	s.caret = clamp(s.caret, n)
	if s.hasSel {
		s.sel = s.sel.Clamp(n)
	}
}

func clamp(i, n int) int {
	if n < 0 {
		n = 0
	}
	return min(max(i, 0), n)
}
