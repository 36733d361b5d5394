package editor

import "strings"

// InsertRune inserts a printable rune at the cursor, replacing any
// active selection
func (e *Editor) InsertRune(r rune) {
	e.replaceSelectionWith(string(r), editInsert)
}

// InsertText inserts a string (possibly multi-line) at the cursor as a
// single undo entry; used for paste
func (e *Editor) InsertText(s string) {
	if s == "" {
		return
	}
	e.replaceSelectionWith(s, editInsert)
}

// InsertTab inserts literal spaces, four by default
func (e *Editor) InsertTab() {
	w := e.tabWidth
	if w <= 0 {
		w = TabWidth
	}
	e.replaceSelectionWith(strings.Repeat(" ", w), editInsert)
}

// InsertNewline splits the line at the cursor and carries the current
// line's leading whitespace onto the new line
func (e *Editor) InsertNewline() {
	indent := leadingIndent(e.Line(e.cursor.Line))
	// do not indent past the cursor when breaking inside the indent
	if len([]rune(indent)) > e.cursor.Col && e.anchor == nil {
		indent = indent[:runeByteLen(indent, e.cursor.Col)]
	}
	e.replaceSelectionWith("\n"+indent, editInsert)
}

// Backspace deletes the selection, or the rune before the cursor, or
// joins with the previous line at column zero
func (e *Editor) Backspace() bool {
	e.clampCursor()
	if e.anchor != nil {
		return e.DeleteSelection()
	}
	if e.cursor.Col == 0 && e.cursor.Line == 0 {
		return false
	}

	var start Position
	if e.cursor.Col > 0 {
		start = Position{Line: e.cursor.Line, Col: e.cursor.Col - 1}
	} else {
		start = Position{Line: e.cursor.Line - 1, Col: e.lineLen(e.cursor.Line - 1)}
	}
	e.deleteAndRecord(start, e.cursor)
	return true
}

// DeleteForward deletes the selection, or the rune at the cursor, or
// joins with the next line at end of line
func (e *Editor) DeleteForward() bool {
	e.clampCursor()
	if e.anchor != nil {
		return e.DeleteSelection()
	}

	var end Position
	if e.cursor.Col < e.lineLen(e.cursor.Line) {
		end = Position{Line: e.cursor.Line, Col: e.cursor.Col + 1}
	} else if e.cursor.Line < len(e.lines)-1 {
		end = Position{Line: e.cursor.Line + 1, Col: 0}
	} else {
		return false
	}
	e.deleteAndRecord(e.cursor, end)
	return true
}

// DeleteWordBackward deletes from the word boundary left of the cursor
func (e *Editor) DeleteWordBackward() bool {
	e.clampCursor()
	if e.anchor != nil {
		return e.DeleteSelection()
	}
	if e.cursor.Col == 0 {
		return e.Backspace()
	}

	line := []rune(e.lines[e.cursor.Line])
	start := e.cursor.Col
	for start > 0 && !isWordChar(line[start-1]) {
		start--
	}
	for start > 0 && isWordChar(line[start-1]) {
		start--
	}
	if start == e.cursor.Col {
		start = e.cursor.Col - 1
	}
	e.deleteAndRecord(Position{Line: e.cursor.Line, Col: start}, e.cursor)
	return true
}

// DeleteWordForward deletes to the word boundary right of the cursor
func (e *Editor) DeleteWordForward() bool {
	e.clampCursor()
	if e.anchor != nil {
		return e.DeleteSelection()
	}
	line := []rune(e.lines[e.cursor.Line])
	if e.cursor.Col >= len(line) {
		return e.DeleteForward()
	}

	end := e.cursor.Col
	for end < len(line) && isWordChar(line[end]) {
		end++
	}
	for end < len(line) && !isWordChar(line[end]) {
		end++
	}
	if end == e.cursor.Col {
		end = e.cursor.Col + 1
	}
	e.deleteAndRecord(e.cursor, Position{Line: e.cursor.Line, Col: end})
	return true
}

// DeleteToEndOfLine removes from the cursor to end of line
func (e *Editor) DeleteToEndOfLine() bool {
	e.clampCursor()
	if e.cursor.Col >= e.lineLen(e.cursor.Line) {
		return e.DeleteForward()
	}
	e.anchor = nil
	e.deleteAndRecord(e.cursor, Position{Line: e.cursor.Line, Col: e.lineLen(e.cursor.Line)})
	return true
}

// DeleteToStartOfLine removes from start of line to the cursor
func (e *Editor) DeleteToStartOfLine() bool {
	e.clampCursor()
	if e.cursor.Col == 0 {
		return false
	}
	e.anchor = nil
	e.deleteAndRecord(Position{Line: e.cursor.Line}, e.cursor)
	return true
}

// DeleteSelection removes the selected range; no-op without a selection
func (e *Editor) DeleteSelection() bool {
	start, end, ok := e.Selection()
	if !ok {
		return false
	}
	e.anchor = nil
	e.deleteAndRecord(start, end)
	return true
}

// deleteAndRecord removes [start, end) and pushes the undo entry
func (e *Editor) deleteAndRecord(start, end Position) {
	before := e.cursor
	removed := e.deleteRange(start, end)
	e.cursor = start
	e.clampCursor()
	e.generation++
	e.record(undoEntry{
		kind:         editDelete,
		pos:          start,
		removed:      removed,
		cursorBefore: before,
		cursorAfter:  e.cursor,
		at:           e.now(),
	})
}

// replaceSelectionWith deletes any selection then inserts text, as one
// undo entry
func (e *Editor) replaceSelectionWith(text string, kind editKind) {
	e.clampCursor()
	before := e.cursor

	var removed string
	pos := e.cursor
	if start, end, ok := e.Selection(); ok {
		removed = e.deleteRange(start, end)
		pos = start
		kind = editReplace
		e.anchor = nil
	}

	e.cursor = e.insertAt(pos, text)
	e.clampCursor()
	e.generation++
	e.record(undoEntry{
		kind:         kind,
		pos:          pos,
		removed:      removed,
		inserted:     text,
		cursorBefore: before,
		cursorAfter:  e.cursor,
		at:           e.now(),
	})
}

// leadingIndent returns the run of spaces and tabs opening line
func leadingIndent(line string) string {
	for i, r := range line {
		if r != ' ' && r != '\t' {
			return line[:i]
		}
	}
	return line
}

// runeByteLen returns the byte offset of rune index n in s
func runeByteLen(s string, n int) int {
	count := 0
	for i := range s {
		if count == n {
			return i
		}
		count++
	}
	return len(s)
}
