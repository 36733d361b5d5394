package editor

import "time"

// editKind classifies history entries; only rune insertions coalesce
type editKind uint8

const (
	editInsert editKind = iota
	editDelete
	editReplace
)

// undoEntry records one reversible edit as a range replacement: at pos,
// removed was replaced by inserted. Undo deletes inserted and restores
// removed; redo does the opposite.
type undoEntry struct {
	kind         editKind
	pos          Position
	removed      string
	inserted     string
	cursorBefore Position
	cursorAfter  Position
	at           time.Time
}

// record pushes an entry, clears redo, and enforces the depth cap
func (e *Editor) record(entry undoEntry) {
	e.redo = e.redo[:0]

	if e.tryCoalesce(&entry) {
		return
	}

	e.undo = append(e.undo, entry)
	if len(e.undo) > e.maxUndo {
		copy(e.undo, e.undo[1:])
		e.undo = e.undo[:len(e.undo)-1]
	}
}

// tryCoalesce folds a single-rune insertion into the previous entry
// when it continues the same typing run within the window
func (e *Editor) tryCoalesce(entry *undoEntry) bool {
	if e.coalesceWindow <= 0 || len(e.undo) == 0 {
		return false
	}
	if entry.kind != editInsert || entry.removed != "" {
		return false
	}
	runes := []rune(entry.inserted)
	if len(runes) != 1 || runes[0] == '\n' {
		return false
	}

	prev := &e.undo[len(e.undo)-1]
	if prev.kind != editInsert || prev.removed != "" {
		return false
	}
	if containsNewline(prev.inserted) {
		return false
	}
	if entry.at.Sub(prev.at) > e.coalesceWindow {
		return false
	}
	// must extend the previous run exactly
	if prev.pos.Line != entry.pos.Line ||
		prev.pos.Col+len([]rune(prev.inserted)) != entry.pos.Col {
		return false
	}

	prev.inserted += entry.inserted
	prev.cursorAfter = entry.cursorAfter
	prev.at = entry.at
	return true
}

func containsNewline(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			return true
		}
	}
	return false
}

// CanUndo reports whether history holds an entry to revert
func (e *Editor) CanUndo() bool {
	return len(e.undo) > 0
}

// CanRedo reports whether a reverted entry can be reapplied
func (e *Editor) CanRedo() bool {
	return len(e.redo) > 0
}

// Undo reverts the most recent edit; returns false when history is empty
func (e *Editor) Undo() bool {
	if len(e.undo) == 0 {
		return false
	}
	entry := e.undo[len(e.undo)-1]
	e.undo = e.undo[:len(e.undo)-1]

	end := endOfText(entry.pos, entry.inserted)
	e.deleteRange(entry.pos, end)
	e.insertAt(entry.pos, entry.removed)
	e.cursor = entry.cursorBefore
	e.anchor = nil
	e.clampCursor()
	e.generation++

	e.redo = append(e.redo, entry)
	return true
}

// Redo reapplies the most recently undone edit
func (e *Editor) Redo() bool {
	if len(e.redo) == 0 {
		return false
	}
	entry := e.redo[len(e.redo)-1]
	e.redo = e.redo[:len(e.redo)-1]

	end := endOfText(entry.pos, entry.removed)
	e.deleteRange(entry.pos, end)
	e.insertAt(entry.pos, entry.inserted)
	e.cursor = entry.cursorAfter
	e.anchor = nil
	e.clampCursor()
	e.generation++

	e.undo = append(e.undo, entry)
	return true
}

// endOfText returns the position just past text inserted at pos
func endOfText(pos Position, text string) Position {
	if text == "" {
		return pos
	}
	line := pos.Line
	col := pos.Col
	lastStart := 0
	newlines := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			newlines++
			lastStart = i + 1
		}
	}
	if newlines == 0 {
		return Position{Line: line, Col: col + len([]rune(text))}
	}
	return Position{
		Line: line + newlines,
		Col:  len([]rune(text[lastStart:])),
	}
}
