package editor

// Cursor motions. extend=true grows a selection from the current anchor
// (establishing one if needed); extend=false clears it.

// MoveLeft moves one rune left, wrapping to the previous line end
func (e *Editor) MoveLeft(extend bool) {
	e.beginExtend(extend)
	if e.cursor.Col > 0 {
		e.cursor.Col--
	} else if e.cursor.Line > 0 {
		e.cursor.Line--
		e.cursor.Col = e.lineLen(e.cursor.Line)
	}
}

// MoveRight moves one rune right, wrapping to the next line start
func (e *Editor) MoveRight(extend bool) {
	e.beginExtend(extend)
	if e.cursor.Col < e.lineLen(e.cursor.Line) {
		e.cursor.Col++
	} else if e.cursor.Line < len(e.lines)-1 {
		e.cursor.Line++
		e.cursor.Col = 0
	}
}

// MoveUp moves to the previous line, clamping the column
func (e *Editor) MoveUp(extend bool) {
	e.beginExtend(extend)
	if e.cursor.Line > 0 {
		e.cursor.Line--
		e.clampCursor()
	}
}

// MoveDown moves to the next line, clamping the column
func (e *Editor) MoveDown(extend bool) {
	e.beginExtend(extend)
	if e.cursor.Line < len(e.lines)-1 {
		e.cursor.Line++
		e.clampCursor()
	}
}

// MoveWordLeft moves to the start of the previous word: skip the
// non-word run, then the word run
func (e *Editor) MoveWordLeft(extend bool) {
	e.beginExtend(extend)
	if e.cursor.Col == 0 {
		if e.cursor.Line > 0 {
			e.cursor.Line--
			e.cursor.Col = e.lineLen(e.cursor.Line)
		}
		return
	}
	line := []rune(e.lines[e.cursor.Line])
	for e.cursor.Col > 0 && !isWordChar(line[e.cursor.Col-1]) {
		e.cursor.Col--
	}
	for e.cursor.Col > 0 && isWordChar(line[e.cursor.Col-1]) {
		e.cursor.Col--
	}
}

// MoveWordRight moves past the current word: skip the word run, then
// the non-word run
func (e *Editor) MoveWordRight(extend bool) {
	e.beginExtend(extend)
	line := []rune(e.lines[e.cursor.Line])
	if e.cursor.Col >= len(line) {
		if e.cursor.Line < len(e.lines)-1 {
			e.cursor.Line++
			e.cursor.Col = 0
		}
		return
	}
	for e.cursor.Col < len(line) && isWordChar(line[e.cursor.Col]) {
		e.cursor.Col++
	}
	for e.cursor.Col < len(line) && !isWordChar(line[e.cursor.Col]) {
		e.cursor.Col++
	}
}

// MoveLineStart moves to column zero
func (e *Editor) MoveLineStart(extend bool) {
	e.beginExtend(extend)
	e.cursor.Col = 0
}

// MoveLineEnd moves past the last rune of the line
func (e *Editor) MoveLineEnd(extend bool) {
	e.beginExtend(extend)
	e.cursor.Col = e.lineLen(e.cursor.Line)
}

// MoveDocStart moves to the first position of the buffer
func (e *Editor) MoveDocStart(extend bool) {
	e.beginExtend(extend)
	e.cursor = Position{}
}

// MoveDocEnd moves past the last rune of the buffer
func (e *Editor) MoveDocEnd(extend bool) {
	e.beginExtend(extend)
	e.cursor.Line = len(e.lines) - 1
	e.cursor.Col = e.lineLen(e.cursor.Line)
}

// pageSize is the viewport height, or a fixed fallback before the
// first render
func (e *Editor) pageSize() int {
	if e.viewH > 0 {
		return e.viewH
	}
	return fallbackPageSize
}

// MovePageUp moves the cursor up by one viewport height
func (e *Editor) MovePageUp(extend bool) {
	e.beginExtend(extend)
	e.cursor.Line -= e.pageSize()
	e.clampCursor()
}

// MovePageDown moves the cursor down by one viewport height
func (e *Editor) MovePageDown(extend bool) {
	e.beginExtend(extend)
	e.cursor.Line += e.pageSize()
	e.clampCursor()
}

// SetCursor places the cursor directly, clamping to bounds
func (e *Editor) SetCursor(p Position) {
	e.anchor = nil
	e.cursor = p
	e.clampCursor()
}
