package offline

import (
	"context"
	"fmt"
	"strings"

	"github.com/lixenwraith/leetterm/leetcode"
)

// Service serves the embedded pack. It implements
// leetcode.Authenticator, leetcode.ProblemService, and leetcode.Judge.
type Service struct {
	problems []problemEntry
	bySlug   map[string]*problemEntry
}

// NewService loads the embedded pack
func NewService() (*Service, error) {
	problems, err := loadPack()
	if err != nil {
		return nil, err
	}
	s := &Service{
		problems: problems,
		bySlug:   make(map[string]*problemEntry, len(problems)),
	}
	for i := range s.problems {
		s.bySlug[s.problems[i].Slug] = &s.problems[i]
	}
	return s, nil
}

// Login accepts any non-empty session token; offline mode has no
// credential backend
func (s *Service) Login(ctx context.Context, session, csrf string) (leetcode.User, error) {
	if strings.TrimSpace(session) == "" {
		return leetcode.User{}, fmt.Errorf("session token is empty")
	}
	return leetcode.User{Username: "offline"}, nil
}

// List filters and pages the embedded catalog
func (s *Service) List(ctx context.Context, q leetcode.Query) (leetcode.Page, error) {
	if err := ctx.Err(); err != nil {
		return leetcode.Page{}, err
	}

	var matched []leetcode.Problem
	needle := strings.ToLower(q.Search)
	for _, p := range s.problems {
		prob := p.toProblem()
		if q.Difficulty != leetcode.DifficultyAny && prob.Difficulty != q.Difficulty {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(prob.Title), needle) &&
			!strings.Contains(prob.Slug, needle) {
			continue
		}
		matched = append(matched, prob)
	}

	total := len(matched)
	start := q.Offset
	if start > total {
		start = total
	}
	end := total
	if q.Limit > 0 && start+q.Limit < total {
		end = start + q.Limit
	}
	return leetcode.Page{Problems: matched[start:end], Total: total}, nil
}

// Detail returns the full problem for slug
func (s *Service) Detail(ctx context.Context, slug string) (leetcode.Detail, error) {
	if err := ctx.Err(); err != nil {
		return leetcode.Detail{}, err
	}
	p, ok := s.bySlug[slug]
	if !ok {
		return leetcode.Detail{}, fmt.Errorf("unknown problem %q", slug)
	}
	return p.toDetail(), nil
}

// RunTests replays the recorded sample-case outcomes. A solution
// containing the pack's accept token passes every case; an empty
// buffer is a compile error; anything else fails with the recorded
// wrong output.
func (s *Service) RunTests(ctx context.Context, slug, langSlug, code string) (leetcode.TestRun, error) {
	if err := ctx.Err(); err != nil {
		return leetcode.TestRun{}, err
	}
	p, ok := s.bySlug[slug]
	if !ok {
		return leetcode.TestRun{}, fmt.Errorf("unknown problem %q", slug)
	}
	if strings.TrimSpace(code) == "" {
		return leetcode.TestRun{CompileError: "empty solution"}, nil
	}

	accepted := s.accepts(p, code)
	run := leetcode.TestRun{
		Runtime: p.Judge.Runtime,
		Memory:  p.Judge.Memory,
	}
	for _, c := range p.Cases {
		result := leetcode.CaseResult{
			Input:    c.Input,
			Expected: c.Expected,
			Actual:   c.Expected,
			Passed:   true,
		}
		if !accepted {
			result.Actual = p.Judge.WrongOutput
			result.Passed = false
		}
		run.Cases = append(run.Cases, result)
	}
	return run, nil
}

// Submit replays the recorded submission outcome
func (s *Service) Submit(ctx context.Context, slug, langSlug, code string) (leetcode.Submission, error) {
	if err := ctx.Err(); err != nil {
		return leetcode.Submission{}, err
	}
	p, ok := s.bySlug[slug]
	if !ok {
		return leetcode.Submission{}, fmt.Errorf("unknown problem %q", slug)
	}
	if strings.TrimSpace(code) == "" {
		return leetcode.Submission{
			Verdict:     leetcode.VerdictCompileError,
			ErrorDetail: "empty solution",
		}, nil
	}

	total := p.Judge.TotalCases
	if total == 0 {
		total = len(p.Cases)
	}

	if s.accepts(p, code) {
		return leetcode.Submission{
			Verdict:      leetcode.VerdictAccepted,
			TotalCases:   total,
			PassedCases:  total,
			Runtime:      p.Judge.Runtime,
			RuntimeBeats: p.Judge.RuntimeBeats,
			Memory:       p.Judge.Memory,
			MemoryBeats:  p.Judge.MemoryBeats,
		}, nil
	}

	sub := leetcode.Submission{
		Verdict:     leetcode.VerdictWrongAnswer,
		TotalCases:  total,
		PassedCases: 0,
	}
	if len(p.Cases) > 0 {
		sub.FailingInput = p.Cases[0].Input
		sub.FailingOutput = p.Judge.WrongOutput
		sub.Expected = p.Cases[0].Expected
	}
	return sub, nil
}

// accepts applies the replay rule for one problem
func (s *Service) accepts(p *problemEntry, code string) bool {
	if p.Judge.AcceptToken == "" {
		return true
	}
	return strings.Contains(code, p.Judge.AcceptToken)
}
