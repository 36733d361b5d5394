package app

import (
	"testing"

	"github.com/lixenwraith/leetterm/leetcode"
	"github.com/lixenwraith/leetterm/terminal"
)

func testApp() *App {
	return New(Options{Terminal: newFakeTerm(80, 24)})
}

func TestProblemListStaleCompletionDiscarded(t *testing.T) {
	a := testApp()
	s := &problemListScreen{}

	oldEpoch := s.reqs.begin(a, CompleteList)
	s.reqs.begin(a, CompleteList) // user refreshed before the reply landed

	stalePage := leetcode.Page{
		Problems: []leetcode.Problem{{Slug: "stale", Title: "Stale"}},
		Total:    1,
	}
	s.loading = true
	s.HandleCompletion(a, Completion{Kind: CompleteList, Epoch: oldEpoch, Payload: stalePage})

	if len(s.problems) != 0 {
		t.Error("stale page applied to screen state")
	}
	if !s.loading {
		t.Error("stale completion cleared the loading flag")
	}
}

func TestProblemListAppliesCurrentCompletion(t *testing.T) {
	a := testApp()
	s := &problemListScreen{cursor: 5, loading: true}

	epoch := s.reqs.begin(a, CompleteList)
	page := leetcode.Page{
		Problems: []leetcode.Problem{
			{Slug: "two-sum", Title: "Two Sum"},
			{Slug: "lru-cache", Title: "LRU Cache"},
		},
		Total: 2,
	}
	s.HandleCompletion(a, Completion{Kind: CompleteList, Epoch: epoch, Payload: page})

	if s.loading {
		t.Error("loading flag not cleared")
	}
	if len(s.problems) != 2 || s.total != 2 {
		t.Fatalf("page not applied: %d problems, total %d", len(s.problems), s.total)
	}
	if s.cursor != 1 {
		t.Errorf("cursor = %d, want clamped to 1", s.cursor)
	}
}

func TestProblemListErrorCompletionKeepsRows(t *testing.T) {
	a := testApp()
	s := &problemListScreen{
		problems: []leetcode.Problem{{Slug: "two-sum"}},
		total:    1,
	}

	epoch := s.reqs.begin(a, CompleteList)
	s.HandleCompletion(a, Completion{Kind: CompleteList, Epoch: epoch, Err: errFake})

	if len(s.problems) != 1 {
		t.Error("error completion dropped existing rows")
	}
	if s.status == "" {
		t.Error("error not surfaced in status")
	}
}

var errFake = fakeError("boom")

type fakeError string

func (e fakeError) Error() string { return string(e) }

func TestDetailStaleJudgeCompletionIgnored(t *testing.T) {
	a := testApp()
	s := &problemDetailScreen{slug: "two-sum"}

	oldEpoch := s.reqs.begin(a, CompleteTest)
	s.reqs.invalidate() // user left the screen

	act := s.HandleCompletion(a, Completion{
		Kind:    CompleteTest,
		Epoch:   oldEpoch,
		Payload: leetcode.TestRun{},
	})
	if act.kind != actContinue {
		t.Error("stale test completion pushed a result screen")
	}
}

func TestDetailViewModeCycleIsLocal(t *testing.T) {
	a := testApp()
	s := &problemDetailScreen{slug: "two-sum", mode: ViewSplit}

	ev := terminal.Event{Type: terminal.EventKey, Key: terminal.KeyCtrlD}
	for _, want := range []ViewMode{ViewEditor, ViewDescription, ViewSplit} {
		act := s.HandleEvent(a, ev)
		if act.kind != actContinue {
			t.Fatal("view cycle left the screen")
		}
		if s.mode != want {
			t.Fatalf("mode = %v, want %v", s.mode, want)
		}
	}
}

func TestSplitParagraphs(t *testing.T) {
	paras := splitParagraphs("first line\nstill first\n\nsecond\n\n\nthird")
	want := []string{"first line still first", "second", "third"}
	if len(paras) != len(want) {
		t.Fatalf("got %v", paras)
	}
	for i := range want {
		if paras[i] != want[i] {
			t.Errorf("para %d = %q, want %q", i, paras[i], want[i])
		}
	}
}

func TestDescriptionWrapCacheInvalidatesOnWidth(t *testing.T) {
	s := &problemDetailScreen{
		loaded: true,
		detail: leetcode.Detail{
			Statement: "Given an array of integers, return indices of the two numbers that add up to a target.",
		},
	}

	wide := s.wrappedDescription(60)
	if len(wide) == 0 {
		t.Fatal("no wrapped lines")
	}
	again := s.wrappedDescription(60)
	if &wide[0] != &again[0] {
		t.Error("same width rebuilt the cache")
	}

	narrow := s.wrappedDescription(20)
	if len(narrow) <= len(wide) {
		t.Error("narrower width did not produce more lines")
	}
}
