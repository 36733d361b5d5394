package offline

import (
	"context"
	"testing"

	"github.com/lixenwraith/leetterm/leetcode"
)

func newService(t *testing.T) *Service {
	t.Helper()
	s, err := NewService()
	if err != nil {
		t.Fatalf("load pack: %v", err)
	}
	return s
}

func TestListReturnsWholeCatalog(t *testing.T) {
	s := newService(t)
	page, err := s.List(context.Background(), leetcode.Query{})
	if err != nil {
		t.Fatal(err)
	}
	if page.Total < 5 {
		t.Fatalf("total %d, want at least 5", page.Total)
	}
	if len(page.Problems) != page.Total {
		t.Fatalf("unpaged listing returned %d of %d", len(page.Problems), page.Total)
	}
}

func TestListFiltersByDifficulty(t *testing.T) {
	s := newService(t)
	page, err := s.List(context.Background(), leetcode.Query{Difficulty: leetcode.DifficultyHard})
	if err != nil {
		t.Fatal(err)
	}
	if len(page.Problems) == 0 {
		t.Fatal("expected at least one hard problem")
	}
	for _, p := range page.Problems {
		if p.Difficulty != leetcode.DifficultyHard {
			t.Fatalf("%s has difficulty %v", p.Slug, p.Difficulty)
		}
	}
}

func TestListSearchMatchesTitle(t *testing.T) {
	s := newService(t)
	page, err := s.List(context.Background(), leetcode.Query{Search: "two sum"})
	if err != nil {
		t.Fatal(err)
	}
	if len(page.Problems) != 1 || page.Problems[0].Slug != "two-sum" {
		t.Fatalf("got %+v", page.Problems)
	}
}

func TestListPaging(t *testing.T) {
	s := newService(t)
	page, err := s.List(context.Background(), leetcode.Query{Offset: 1, Limit: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(page.Problems) != 2 {
		t.Fatalf("got %d problems", len(page.Problems))
	}
	if page.Total < 5 {
		t.Fatalf("total %d should count all matches", page.Total)
	}
}

func TestDetailCarriesLanguagesAndCases(t *testing.T) {
	s := newService(t)
	d, err := s.Detail(context.Background(), "two-sum")
	if err != nil {
		t.Fatal(err)
	}
	if d.Statement == "" {
		t.Fatal("missing statement")
	}
	if len(d.Languages) < 2 || len(d.TestCases) == 0 {
		t.Fatalf("languages=%d cases=%d", len(d.Languages), len(d.TestCases))
	}
	if d.StarterFor("python3") == "" {
		t.Fatal("missing python3 starter")
	}
	if d.StarterFor("cobol") != "" {
		t.Fatal("unknown language should have no starter")
	}
}

func TestDetailUnknownSlug(t *testing.T) {
	s := newService(t)
	if _, err := s.Detail(context.Background(), "nope"); err == nil {
		t.Fatal("expected error")
	}
}

func TestRunTestsReplaysOutcomes(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	run, err := s.RunTests(ctx, "two-sum", "python3", "for i, x in enumerate(nums): ...")
	if err != nil {
		t.Fatal(err)
	}
	if !run.Passed() {
		t.Fatalf("accept-token solution should pass: %+v", run)
	}

	run, err = s.RunTests(ctx, "two-sum", "python3", "return []")
	if err != nil {
		t.Fatal(err)
	}
	if run.Passed() {
		t.Fatal("non-matching solution should fail")
	}
	if run.Cases[0].Actual == run.Cases[0].Expected {
		t.Fatal("failing case should show the wrong output")
	}
}

func TestRunTestsEmptyCodeIsCompileError(t *testing.T) {
	s := newService(t)
	run, err := s.RunTests(context.Background(), "two-sum", "python3", "   \n  ")
	if err != nil {
		t.Fatal(err)
	}
	if run.CompileError == "" {
		t.Fatal("expected compile error")
	}
}

func TestSubmitAcceptedCarriesPercentiles(t *testing.T) {
	s := newService(t)
	sub, err := s.Submit(context.Background(), "valid-parentheses", "python3", "use a stack here")
	if err != nil {
		t.Fatal(err)
	}
	if sub.Verdict != leetcode.VerdictAccepted {
		t.Fatalf("verdict %v", sub.Verdict)
	}
	if sub.PassedCases != sub.TotalCases || sub.TotalCases == 0 {
		t.Fatalf("cases %d/%d", sub.PassedCases, sub.TotalCases)
	}
	if sub.RuntimeBeats <= 0 || sub.Runtime == "" {
		t.Fatalf("missing percentiles: %+v", sub)
	}
}

func TestSubmitRejectedCarriesFailingCase(t *testing.T) {
	s := newService(t)
	sub, err := s.Submit(context.Background(), "valid-parentheses", "python3", "return True")
	if err != nil {
		t.Fatal(err)
	}
	if sub.Verdict != leetcode.VerdictWrongAnswer {
		t.Fatalf("verdict %v", sub.Verdict)
	}
	if sub.FailingInput == "" || sub.Expected == "" {
		t.Fatalf("missing failing case: %+v", sub)
	}
}

func TestLoginRequiresToken(t *testing.T) {
	s := newService(t)
	if _, err := s.Login(context.Background(), "  ", ""); err == nil {
		t.Fatal("expected error for blank session")
	}
	u, err := s.Login(context.Background(), "token", "")
	if err != nil {
		t.Fatal(err)
	}
	if u.Username == "" {
		t.Fatal("expected username")
	}
}

func TestCanceledContextPropagates(t *testing.T) {
	s := newService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.List(ctx, leetcode.Query{}); err == nil {
		t.Fatal("expected context error")
	}
}
