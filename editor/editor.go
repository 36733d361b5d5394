// Package editor implements a plain-text editing buffer: line storage,
// cursor and selection, undo/redo with insert coalescing, word motions,
// and viewport follow. Columns are rune indices, not bytes; rendering
// concerns (highlighting, display width) live with the caller.
package editor

import (
	"strings"
	"time"
	"unicode"
)

const (
	// TabWidth is the number of spaces a Tab key inserts
	TabWidth = 4

	// DefaultCoalesceWindow groups rapid single-rune insertions into one
	// undo entry
	DefaultCoalesceWindow = 500 * time.Millisecond

	// DefaultMaxUndo bounds history depth; the oldest entry is dropped
	DefaultMaxUndo = 1000

	// fallbackPageSize is used for page motions before the first render
	// establishes a viewport height
	fallbackPageSize = 20
)

// Position addresses a rune within the buffer. Col may equal the line's
// rune length (cursor past the last rune).
type Position struct {
	Line int
	Col  int
}

// Less reports whether p precedes q in document order
func (p Position) Less(q Position) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Col < q.Col
}

// Editor is a single-buffer text editor. Not safe for concurrent use;
// the application event loop is its only caller.
type Editor struct {
	lines  []string
	cursor Position
	anchor *Position // selection anchor; nil when no selection

	scrollX, scrollY int
	viewW, viewH     int

	undo []undoEntry
	redo []undoEntry

	coalesceWindow time.Duration
	maxUndo        int
	tabWidth       int
	now            func() time.Time

	generation uint64
}

// New creates an editor seeded with content
func New(content string) *Editor {
	return &Editor{
		lines:          splitLines(content),
		coalesceWindow: DefaultCoalesceWindow,
		maxUndo:        DefaultMaxUndo,
		tabWidth:       TabWidth,
		now:            time.Now,
	}
}

// SetCoalesceWindow overrides the insert coalescing window; zero
// disables coalescing
func (e *Editor) SetCoalesceWindow(d time.Duration) {
	e.coalesceWindow = d
}

// SetMaxUndo overrides the history depth cap
func (e *Editor) SetMaxUndo(n int) {
	if n > 0 {
		e.maxUndo = n
	}
}

// SetTabWidth overrides the number of spaces a Tab key inserts
func (e *Editor) SetTabWidth(n int) {
	if n > 0 {
		e.tabWidth = n
	}
}

// SetClock substitutes the time source, used by coalescing tests
func (e *Editor) SetClock(now func() time.Time) {
	e.now = now
}

// Value returns the buffer as a single string
func (e *Editor) Value() string {
	return strings.Join(e.lines, "\n")
}

// SetValue replaces all content, resets cursor and scroll, and clears
// history
func (e *Editor) SetValue(content string) {
	e.lines = splitLines(content)
	e.cursor = Position{}
	e.anchor = nil
	e.scrollX, e.scrollY = 0, 0
	e.undo = e.undo[:0]
	e.redo = e.redo[:0]
	e.generation++
}

// Lines returns the backing line slice; callers must not mutate it
func (e *Editor) Lines() []string {
	return e.lines
}

// LineCount returns the number of lines, always at least 1
func (e *Editor) LineCount() int {
	return len(e.lines)
}

// Line returns line idx, or "" out of range
func (e *Editor) Line(idx int) string {
	if idx < 0 || idx >= len(e.lines) {
		return ""
	}
	return e.lines[idx]
}

// Cursor returns the current cursor position
func (e *Editor) Cursor() Position {
	return e.cursor
}

// Generation increments on every content mutation; callers key caches
// (e.g. highlight spans) on it
func (e *Editor) Generation() uint64 {
	return e.generation
}

// clampCursor restores the cursor invariant after structural changes
func (e *Editor) clampCursor() {
	if len(e.lines) == 0 {
		e.lines = []string{""}
	}
	if e.cursor.Line < 0 {
		e.cursor.Line = 0
	}
	if e.cursor.Line >= len(e.lines) {
		e.cursor.Line = len(e.lines) - 1
	}
	lineLen := e.lineLen(e.cursor.Line)
	if e.cursor.Col < 0 {
		e.cursor.Col = 0
	}
	if e.cursor.Col > lineLen {
		e.cursor.Col = lineLen
	}
}

func (e *Editor) lineLen(idx int) int {
	return len([]rune(e.lines[idx]))
}

// splitLines splits on \n; an empty string yields one empty line
func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}

func isWordChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
