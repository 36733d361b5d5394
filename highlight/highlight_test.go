package highlight

import "testing"

func TestLinesProducesSpansForKnownLanguage(t *testing.T) {
	h := New(DefaultStyle)
	src := "def solve():\n    return 42"
	spans := h.Lines(src, "python", 1)
	if spans == nil {
		t.Fatal("expected spans for python")
	}
	if len(spans) != 2 {
		t.Fatalf("got %d lines, want 2", len(spans))
	}
	if len(spans[0]) == 0 {
		t.Fatal("first line should carry at least one span")
	}
	// spans stay within line bounds, in rune columns
	for lineIdx, line := range spans {
		for _, sp := range line {
			if sp.Start < 0 || sp.End <= sp.Start {
				t.Fatalf("line %d: bad span [%d,%d)", lineIdx, sp.Start, sp.End)
			}
		}
	}
}

func TestLinesUnknownLanguageReturnsNil(t *testing.T) {
	h := New(DefaultStyle)
	if spans := h.Lines("anything", "no-such-language-slug", 1); spans != nil {
		t.Fatalf("expected nil, got %d lines", len(spans))
	}
}

func TestCacheHitOnSameGeneration(t *testing.T) {
	h := New(DefaultStyle)
	a := h.Lines("x = 1", "python", 7)
	b := h.Lines("x = 1", "python", 7)
	if &a[0] != &b[0] {
		t.Fatal("same generation should return cached slice")
	}
	c := h.Lines("x = 2", "python", 8)
	if len(c) == 0 {
		t.Fatal("new generation should retokenize")
	}
}

func TestCacheInvalidatedOnLanguageSwitch(t *testing.T) {
	h := New(DefaultStyle)
	h.Lines("int x;", "python", 3)
	spans := h.Lines("int x;", "cpp", 3)
	if spans == nil {
		t.Fatal("expected spans after language switch")
	}
}

func TestStylerForBoundsChecks(t *testing.T) {
	h := New(DefaultStyle)
	styler := h.StylerFor("x = 1", "python", 1)
	if styler == nil {
		t.Fatal("expected styler")
	}
	if styler(-1) != nil || styler(99) != nil {
		t.Fatal("out of range lines must yield nil")
	}
}
