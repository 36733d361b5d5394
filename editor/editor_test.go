package editor

import (
	"strings"
	"testing"
)

func TestInsertAndValue(t *testing.T) {
	e := New("")
	for _, r := range "hello" {
		e.InsertRune(r)
	}
	if e.Value() != "hello" {
		t.Fatalf("got %q", e.Value())
	}
	if e.Cursor() != (Position{Line: 0, Col: 5}) {
		t.Fatalf("cursor %+v", e.Cursor())
	}
}

func TestInsertNewlineSplitsLine(t *testing.T) {
	e := New("hello")
	e.SetCursor(Position{Line: 0, Col: 3})
	e.InsertNewline()
	if e.Value() != "hel\nlo" {
		t.Fatalf("got %q", e.Value())
	}
	if e.Cursor() != (Position{Line: 1, Col: 0}) {
		t.Fatalf("cursor %+v", e.Cursor())
	}
}

func TestInsertNewlineCarriesIndent(t *testing.T) {
	e := New("    return x")
	e.MoveLineEnd(false)
	e.InsertNewline()
	if e.Line(1) != "    " {
		t.Fatalf("new line %q", e.Line(1))
	}
	if e.Cursor() != (Position{Line: 1, Col: 4}) {
		t.Fatalf("cursor %+v", e.Cursor())
	}
}

func TestInsertTab(t *testing.T) {
	e := New("")
	e.InsertTab()
	if e.Value() != "    " {
		t.Fatalf("got %q", e.Value())
	}
}

func TestBackspaceJoinsLines(t *testing.T) {
	e := New("ab\ncd")
	e.SetCursor(Position{Line: 1, Col: 0})
	if !e.Backspace() {
		t.Fatal("backspace returned false")
	}
	if e.Value() != "abcd" {
		t.Fatalf("got %q", e.Value())
	}
	if e.Cursor() != (Position{Line: 0, Col: 2}) {
		t.Fatalf("cursor %+v", e.Cursor())
	}
}

func TestBackspaceAtBufferStartIsNoop(t *testing.T) {
	e := New("x")
	if e.Backspace() {
		t.Fatal("expected false at buffer start")
	}
	if e.Value() != "x" {
		t.Fatalf("got %q", e.Value())
	}
}

func TestDeleteForwardJoinsLines(t *testing.T) {
	e := New("ab\ncd")
	e.SetCursor(Position{Line: 0, Col: 2})
	if !e.DeleteForward() {
		t.Fatal("delete returned false")
	}
	if e.Value() != "abcd" {
		t.Fatalf("got %q", e.Value())
	}
}

func TestDeleteForwardAtBufferEndIsNoop(t *testing.T) {
	e := New("x")
	e.MoveDocEnd(false)
	if e.DeleteForward() {
		t.Fatal("expected false at buffer end")
	}
}

func TestPasteMultiline(t *testing.T) {
	e := New("startend")
	e.SetCursor(Position{Line: 0, Col: 5})
	e.InsertText("a\nb\nc")
	if e.Value() != "starta\nb\ncend" {
		t.Fatalf("got %q", e.Value())
	}
	if e.Cursor() != (Position{Line: 2, Col: 1}) {
		t.Fatalf("cursor %+v", e.Cursor())
	}
}

func TestWordMotionsAreSymmetric(t *testing.T) {
	e := New("foo bar_baz  qux")
	e.MoveWordRight(false)
	if e.Cursor().Col != 4 {
		t.Fatalf("after first word right: col %d", e.Cursor().Col)
	}
	e.MoveWordRight(false)
	if e.Cursor().Col != 13 {
		t.Fatalf("after second word right: col %d", e.Cursor().Col)
	}
	e.MoveWordLeft(false)
	if e.Cursor().Col != 4 {
		t.Fatalf("after word left: col %d", e.Cursor().Col)
	}
	e.MoveWordLeft(false)
	if e.Cursor().Col != 0 {
		t.Fatalf("after second word left: col %d", e.Cursor().Col)
	}
}

func TestWordMotionCrossesLines(t *testing.T) {
	e := New("abc\ndef")
	e.MoveLineEnd(false)
	e.MoveWordRight(false)
	if e.Cursor() != (Position{Line: 1, Col: 0}) {
		t.Fatalf("cursor %+v", e.Cursor())
	}
	e.MoveWordLeft(false)
	if e.Cursor() != (Position{Line: 0, Col: 3}) {
		t.Fatalf("cursor %+v", e.Cursor())
	}
}

func TestVerticalMotionClampsColumn(t *testing.T) {
	e := New("long line here\nab\nanother long line")
	e.SetCursor(Position{Line: 0, Col: 10})
	e.MoveDown(false)
	if e.Cursor() != (Position{Line: 1, Col: 2}) {
		t.Fatalf("cursor %+v", e.Cursor())
	}
	e.MoveDown(false)
	if e.Cursor().Line != 2 || e.Cursor().Col != 2 {
		t.Fatalf("cursor %+v", e.Cursor())
	}
}

func TestCursorInvariantUnderMotionStorm(t *testing.T) {
	e := New("short\na much longer line\nx\n\nlast")
	moves := []func(){
		func() { e.MoveUp(false) },
		func() { e.MoveDown(false) },
		func() { e.MoveLeft(false) },
		func() { e.MoveRight(false) },
		func() { e.MoveWordLeft(false) },
		func() { e.MoveWordRight(false) },
		func() { e.MoveLineEnd(false) },
		func() { e.MovePageDown(false) },
		func() { e.MovePageUp(false) },
		func() { e.MoveDocEnd(false) },
	}
	for i := 0; i < 500; i++ {
		moves[i%len(moves)]()
		c := e.Cursor()
		if c.Line < 0 || c.Line >= e.LineCount() {
			t.Fatalf("step %d: line %d out of range", i, c.Line)
		}
		if c.Col < 0 || c.Col > len([]rune(e.Line(c.Line))) {
			t.Fatalf("step %d: col %d out of range on %q", i, c.Col, e.Line(c.Line))
		}
	}
}

func TestSelectionExtendAndCollapse(t *testing.T) {
	e := New("hello world")
	e.MoveRight(true)
	e.MoveRight(true)
	if e.SelectedText() != "he" {
		t.Fatalf("got %q", e.SelectedText())
	}
	// plain motion collapses
	e.MoveRight(false)
	if e.HasSelection() {
		t.Fatal("selection should be cleared")
	}
}

func TestSelectionBackwards(t *testing.T) {
	e := New("hello")
	e.MoveLineEnd(false)
	e.MoveWordLeft(true)
	start, end, ok := e.Selection()
	if !ok {
		t.Fatal("no selection")
	}
	if start != (Position{Line: 0, Col: 0}) || end != (Position{Line: 0, Col: 5}) {
		t.Fatalf("start %+v end %+v", start, end)
	}
	if e.SelectedText() != "hello" {
		t.Fatalf("got %q", e.SelectedText())
	}
}

func TestTypingReplacesSelection(t *testing.T) {
	e := New("Solve LeetCode daily")
	e.SelectRange(Position{Line: 0, Col: 6}, Position{Line: 0, Col: 14})
	if e.SelectedText() != "LeetCode" {
		t.Fatalf("selected %q", e.SelectedText())
	}
	e.InsertRune('x')
	if e.Value() != "Solve x daily" {
		t.Fatalf("got %q", e.Value())
	}
	if e.HasSelection() {
		t.Fatal("selection should be consumed")
	}
}

func TestDeleteSelectionMultiline(t *testing.T) {
	e := New("one\ntwo\nthree")
	e.SelectRange(Position{Line: 0, Col: 2}, Position{Line: 2, Col: 3})
	if !e.DeleteSelection() {
		t.Fatal("delete returned false")
	}
	if e.Value() != "onee" {
		t.Fatalf("got %q", e.Value())
	}
}

func TestSelectAll(t *testing.T) {
	e := New("a\nb\nc")
	e.SelectAll()
	if e.SelectedText() != "a\nb\nc" {
		t.Fatalf("got %q", e.SelectedText())
	}
}

func TestDeleteWordBackward(t *testing.T) {
	e := New("foo bar")
	e.MoveLineEnd(false)
	e.DeleteWordBackward()
	if e.Value() != "foo " {
		t.Fatalf("got %q", e.Value())
	}
	e.DeleteWordBackward()
	if e.Value() != "" {
		t.Fatalf("got %q", e.Value())
	}
}

func TestDeleteToEndOfLine(t *testing.T) {
	e := New("hello world")
	e.SetCursor(Position{Line: 0, Col: 5})
	e.DeleteToEndOfLine()
	if e.Value() != "hello" {
		t.Fatalf("got %q", e.Value())
	}
}

func TestSetValueResetsState(t *testing.T) {
	e := New("old")
	e.MoveLineEnd(false)
	e.InsertRune('!')
	e.SetValue("new content")
	if e.Cursor() != (Position{}) {
		t.Fatalf("cursor %+v", e.Cursor())
	}
	if e.CanUndo() {
		t.Fatal("history should be cleared")
	}
}

func TestFollowCursorKeepsCursorVisible(t *testing.T) {
	content := strings.Repeat("line\n", 99) + "line"
	e := New(content)
	e.SetCursor(Position{Line: 50, Col: 0})
	e.FollowCursor(80, 10)
	_, sy := e.Scroll()
	if 50 < sy || 50 >= sy+10 {
		t.Fatalf("cursor line 50 not within [%d,%d)", sy, sy+10)
	}

	e.SetCursor(Position{Line: 0, Col: 0})
	e.FollowCursor(80, 10)
	if _, sy = e.Scroll(); sy != 0 {
		t.Fatalf("scrollY %d", sy)
	}
}

func TestPageMotionUsesViewportHeight(t *testing.T) {
	e := New(strings.Repeat("x\n", 99) + "x")
	e.FollowCursor(80, 25)
	e.MovePageDown(false)
	if e.Cursor().Line != 25 {
		t.Fatalf("line %d, want 25", e.Cursor().Line)
	}
	e.MovePageUp(false)
	if e.Cursor().Line != 0 {
		t.Fatalf("line %d, want 0", e.Cursor().Line)
	}
}

func TestPageMotionFallbackBeforeFirstRender(t *testing.T) {
	e := New(strings.Repeat("x\n", 99) + "x")
	e.MovePageDown(false)
	if e.Cursor().Line != fallbackPageSize {
		t.Fatalf("line %d, want %d", e.Cursor().Line, fallbackPageSize)
	}
}
