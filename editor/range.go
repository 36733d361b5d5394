package editor

import "strings"

// textRange reads the buffer between start and end (exclusive) in
// document order; positions must already be ordered and in bounds
func (e *Editor) textRange(start, end Position) string {
	if start.Line == end.Line {
		runes := []rune(e.lines[start.Line])
		return string(runes[start.Col:end.Col])
	}
	var sb strings.Builder
	first := []rune(e.lines[start.Line])
	sb.WriteString(string(first[start.Col:]))
	for i := start.Line + 1; i < end.Line; i++ {
		sb.WriteByte('\n')
		sb.WriteString(e.lines[i])
	}
	last := []rune(e.lines[end.Line])
	sb.WriteByte('\n')
	sb.WriteString(string(last[:end.Col]))
	return sb.String()
}

// deleteRange removes [start, end) and returns the removed text
func (e *Editor) deleteRange(start, end Position) string {
	removed := e.textRange(start, end)

	if start.Line == end.Line {
		runes := []rune(e.lines[start.Line])
		e.lines[start.Line] = string(runes[:start.Col]) + string(runes[end.Col:])
	} else {
		first := []rune(e.lines[start.Line])
		last := []rune(e.lines[end.Line])
		e.lines[start.Line] = string(first[:start.Col]) + string(last[end.Col:])
		e.lines = append(e.lines[:start.Line+1], e.lines[end.Line+1:]...)
	}
	return removed
}

// insertAt splices text at pos and returns the position just past it
func (e *Editor) insertAt(pos Position, text string) Position {
	if text == "" {
		return pos
	}
	runes := []rune(e.lines[pos.Line])
	before := string(runes[:pos.Col])
	after := string(runes[pos.Col:])

	parts := strings.Split(text, "\n")
	if len(parts) == 1 {
		e.lines[pos.Line] = before + text + after
		return Position{Line: pos.Line, Col: pos.Col + len([]rune(text))}
	}

	newLines := make([]string, len(parts))
	newLines[0] = before + parts[0]
	copy(newLines[1:], parts[1:])
	endCol := len([]rune(parts[len(parts)-1]))
	newLines[len(parts)-1] += after

	e.lines = append(e.lines[:pos.Line],
		append(newLines, e.lines[pos.Line+1:]...)...)
	return Position{Line: pos.Line + len(parts) - 1, Col: endCol}
}
