package editor

// Selection returns the active range in document order
func (e *Editor) Selection() (start, end Position, ok bool) {
	if e.anchor == nil {
		return Position{}, Position{}, false
	}
	a, c := *e.anchor, e.cursor
	if a == c {
		return Position{}, Position{}, false
	}
	if c.Less(a) {
		return c, a, true
	}
	return a, c, true
}

// HasSelection reports whether a non-empty selection is active
func (e *Editor) HasSelection() bool {
	_, _, ok := e.Selection()
	return ok
}

// SelectedText returns the selected content, or "" without a selection
func (e *Editor) SelectedText() string {
	start, end, ok := e.Selection()
	if !ok {
		return ""
	}
	return e.textRange(start, end)
}

// ClearSelection drops the anchor without moving the cursor
func (e *Editor) ClearSelection() {
	e.anchor = nil
}

// SelectAll selects the whole buffer, cursor at the end
func (e *Editor) SelectAll() {
	e.anchor = &Position{}
	e.cursor = Position{
		Line: len(e.lines) - 1,
		Col:  e.lineLen(len(e.lines) - 1),
	}
}

// SelectRange sets an explicit selection; positions are clamped
func (e *Editor) SelectRange(start, end Position) {
	e.cursor = start
	e.clampCursor()
	a := e.cursor
	e.anchor = &a
	e.cursor = end
	e.clampCursor()
}

// beginExtend establishes the anchor before an extending motion
func (e *Editor) beginExtend(extend bool) {
	if !extend {
		e.anchor = nil
		return
	}
	if e.anchor == nil {
		a := e.cursor
		e.anchor = &a
	}
}
