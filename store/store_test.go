package store

import (
	"context"
	"testing"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenMemory()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	if err := s.EnsureSchema(context.Background()); err != nil {
		t.Fatal(err)
	}
	return s
}

func TestSaveAndLoadSolution(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	if err := s.SaveSolution(ctx, "two-sum", "python3", "code v1"); err != nil {
		t.Fatal(err)
	}
	code, ok, err := s.LoadSolution(ctx, "two-sum", "python3")
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if code != "code v1" {
		t.Fatalf("got %q", code)
	}
}

func TestSaveSolutionUpserts(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	_ = s.SaveSolution(ctx, "two-sum", "python3", "v1")
	if err := s.SaveSolution(ctx, "two-sum", "python3", "v2"); err != nil {
		t.Fatal(err)
	}
	code, _, _ := s.LoadSolution(ctx, "two-sum", "python3")
	if code != "v2" {
		t.Fatalf("got %q", code)
	}
}

func TestSolutionsKeyedByLanguage(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	_ = s.SaveSolution(ctx, "two-sum", "python3", "py")
	_ = s.SaveSolution(ctx, "two-sum", "golang", "go")

	code, _, _ := s.LoadSolution(ctx, "two-sum", "golang")
	if code != "go" {
		t.Fatalf("got %q", code)
	}
}

func TestLoadMissingSolution(t *testing.T) {
	s := newStore(t)
	_, ok, err := s.LoadSolution(context.Background(), "nope", "python3")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("expected ok=false")
	}
}

func TestSessionRoundTrip(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	if err := s.SaveSessionValue(ctx, "session", "tok"); err != nil {
		t.Fatal(err)
	}
	v, err := s.LoadSessionValue(ctx, "session")
	if err != nil || v != "tok" {
		t.Fatalf("v=%q err=%v", v, err)
	}

	if err := s.ClearSession(ctx); err != nil {
		t.Fatal(err)
	}
	v, _ = s.LoadSessionValue(ctx, "session")
	if v != "" {
		t.Fatalf("after clear: %q", v)
	}
}
