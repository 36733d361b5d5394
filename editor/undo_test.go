package editor

import (
	"testing"
	"time"
)

// fakeClock advances only when told, making coalescing deterministic
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newTestEditor(content string) (*Editor, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	e := New(content)
	e.SetClock(clock.now)
	return e, clock
}

func TestUndoTypingRunAsOneEntry(t *testing.T) {
	e, _ := newTestEditor("")
	for _, r := range "abc" {
		e.InsertRune(r)
	}
	if !e.Undo() {
		t.Fatal("undo returned false")
	}
	if e.Value() != "" {
		t.Fatalf("coalesced run should undo together, got %q", e.Value())
	}
	if e.Cursor() != (Position{}) {
		t.Fatalf("cursor %+v", e.Cursor())
	}
}

func TestCoalescingBreaksAfterWindow(t *testing.T) {
	e, clock := newTestEditor("")
	e.InsertRune('a')
	e.InsertRune('b')
	clock.advance(time.Second)
	e.InsertRune('c')

	if !e.Undo() {
		t.Fatal("undo returned false")
	}
	if e.Value() != "ab" {
		t.Fatalf("got %q", e.Value())
	}
	if !e.Undo() {
		t.Fatal("second undo returned false")
	}
	if e.Value() != "" {
		t.Fatalf("got %q", e.Value())
	}
}

func TestCoalescingBreaksOnCursorMove(t *testing.T) {
	e, _ := newTestEditor("")
	e.InsertRune('a')
	e.InsertRune('b')
	e.MoveLeft(false)
	e.InsertRune('x') // inserted at col 1, not extending the a-b run

	if !e.Undo() {
		t.Fatal("undo returned false")
	}
	if e.Value() != "ab" {
		t.Fatalf("got %q", e.Value())
	}
}

func TestCoalescingDisabled(t *testing.T) {
	e, _ := newTestEditor("")
	e.SetCoalesceWindow(0)
	e.InsertRune('a')
	e.InsertRune('b')
	e.Undo()
	if e.Value() != "a" {
		t.Fatalf("got %q", e.Value())
	}
}

func TestNewlineDoesNotCoalesce(t *testing.T) {
	e, _ := newTestEditor("")
	e.InsertRune('a')
	e.InsertNewline()
	e.InsertRune('b')

	e.Undo()
	if e.Value() != "a\n" {
		t.Fatalf("got %q", e.Value())
	}
	e.Undo()
	if e.Value() != "a" {
		t.Fatalf("got %q", e.Value())
	}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	e, clock := newTestEditor("base")
	e.MoveLineEnd(false)
	e.InsertRune('1')
	clock.advance(time.Second)
	e.InsertRune('2')

	e.Undo()
	e.Undo()
	if e.Value() != "base" {
		t.Fatalf("got %q", e.Value())
	}
	e.Redo()
	e.Redo()
	if e.Value() != "base12" {
		t.Fatalf("got %q", e.Value())
	}
	if e.Redo() {
		t.Fatal("redo past end should return false")
	}
}

func TestMutationClearsRedo(t *testing.T) {
	e, _ := newTestEditor("")
	e.InsertRune('a')
	e.Undo()
	if !e.CanRedo() {
		t.Fatal("expected redo available")
	}
	e.InsertRune('b')
	if e.CanRedo() {
		t.Fatal("redo should be cleared by new edit")
	}
}

func TestUndoDeleteRestoresText(t *testing.T) {
	e, _ := newTestEditor("hello world")
	e.SetCursor(Position{Line: 0, Col: 11})
	e.DeleteWordBackward()
	if e.Value() != "hello " {
		t.Fatalf("got %q", e.Value())
	}
	e.Undo()
	if e.Value() != "hello world" {
		t.Fatalf("got %q", e.Value())
	}
	if e.Cursor() != (Position{Line: 0, Col: 11}) {
		t.Fatalf("cursor %+v", e.Cursor())
	}
}

func TestUndoSelectionReplace(t *testing.T) {
	e, _ := newTestEditor("Solve LeetCode daily")
	e.SelectRange(Position{Line: 0, Col: 6}, Position{Line: 0, Col: 14})
	e.InsertRune('x')
	if e.Value() != "Solve x daily" {
		t.Fatalf("got %q", e.Value())
	}

	e.Undo()
	if e.Value() != "Solve LeetCode daily" {
		t.Fatalf("undo got %q", e.Value())
	}
	e.Redo()
	if e.Value() != "Solve x daily" {
		t.Fatalf("redo got %q", e.Value())
	}
}

func TestUndoMultilineDelete(t *testing.T) {
	e, _ := newTestEditor("one\ntwo\nthree")
	e.SelectRange(Position{Line: 0, Col: 2}, Position{Line: 2, Col: 3})
	e.DeleteSelection()
	if e.Value() != "onee" {
		t.Fatalf("got %q", e.Value())
	}
	e.Undo()
	if e.Value() != "one\ntwo\nthree" {
		t.Fatalf("got %q", e.Value())
	}
}

func TestUndoDepthCap(t *testing.T) {
	e, clock := newTestEditor("")
	e.SetMaxUndo(5)
	for i := 0; i < 10; i++ {
		e.InsertRune(rune('a' + i))
		clock.advance(time.Second) // defeat coalescing
	}
	undone := 0
	for e.Undo() {
		undone++
	}
	if undone != 5 {
		t.Fatalf("undid %d entries, want 5", undone)
	}
	// the oldest five insertions survive
	if e.Value() != "abcde" {
		t.Fatalf("got %q", e.Value())
	}
}

func TestUndoEmptyHistory(t *testing.T) {
	e, _ := newTestEditor("x")
	if e.Undo() {
		t.Fatal("undo on empty history should return false")
	}
}

func TestUndoSequenceRestoresInitialContent(t *testing.T) {
	e, clock := newTestEditor("def solve():\n    pass")
	ops := []func(){
		func() { e.MoveDocEnd(false); e.InsertNewline() },
		func() { e.InsertText("    return 42") },
		func() { e.SetCursor(Position{Line: 1, Col: 4}); e.DeleteWordForward() },
		func() { e.InsertRune('#') },
		func() { e.SelectRange(Position{}, Position{Line: 0, Col: 3}); e.InsertRune('f') },
	}
	for _, op := range ops {
		op()
		clock.advance(time.Second)
	}
	for e.Undo() {
	}
	if e.Value() != "def solve():\n    pass" {
		t.Fatalf("got %q", e.Value())
	}
}
