package editor

// FollowCursor records the viewport size and adjusts scroll so the
// cursor stays visible. Called once per render with the content area
// dimensions (excluding any gutter).
func (e *Editor) FollowCursor(viewW, viewH int) {
	e.viewW, e.viewH = viewW, viewH
	if viewW < 1 || viewH < 1 {
		return
	}

	if e.cursor.Line < e.scrollY {
		e.scrollY = e.cursor.Line
	}
	if e.cursor.Line >= e.scrollY+viewH {
		e.scrollY = e.cursor.Line - viewH + 1
	}
	if e.scrollY < 0 {
		e.scrollY = 0
	}

	if e.cursor.Col < e.scrollX {
		e.scrollX = e.cursor.Col
	}
	if e.cursor.Col >= e.scrollX+viewW {
		e.scrollX = e.cursor.Col - viewW + 1
	}
	if e.scrollX < 0 {
		e.scrollX = 0
	}
}

// Scroll returns the current scroll offsets
func (e *Editor) Scroll() (x, y int) {
	return e.scrollX, e.scrollY
}

// ViewportH returns the last recorded viewport height
func (e *Editor) ViewportH() int {
	return e.viewH
}
