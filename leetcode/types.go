// Package leetcode defines the problem-catalog domain model and the
// collaborator interfaces the TUI drives: authentication, catalog
// queries, and the test/submit judge. Implementations run on their own
// goroutines; every call takes a context and returns explicit errors.
package leetcode

import "context"

// Difficulty levels as the catalog reports them
type Difficulty uint8

const (
	DifficultyAny Difficulty = iota
	DifficultyEasy
	DifficultyMedium
	DifficultyHard
)

// String returns the display name
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	default:
		return "All"
	}
}

// Next cycles All → Easy → Medium → Hard → All
func (d Difficulty) Next() Difficulty {
	if d >= DifficultyHard {
		return DifficultyAny
	}
	return d + 1
}

// Status of the signed-in user's progress on a problem
type Status uint8

const (
	StatusNone Status = iota
	StatusAttempted
	StatusSolved
)

// Problem is one catalog row
type Problem struct {
	ID         int
	Slug       string
	Title      string
	Difficulty Difficulty
	Status     Status
	PaidOnly   bool
	AcRate     float64 // acceptance percentage, 0-100
}

// Page is one page of catalog results
type Page struct {
	Problems []Problem
	Total    int
}

// Query filters and pages a catalog listing
type Query struct {
	Difficulty Difficulty
	Search     string
	Offset     int
	Limit      int
}

// Language is one submission language with its starter code
type Language struct {
	Slug    string // e.g. "python3", "golang"
	Name    string // display name
	Starter string
}

// Detail is a problem opened for solving
type Detail struct {
	Problem
	Statement string // plain text with \n paragraphs
	Languages []Language
	TestCases []TestCase
}

// StarterFor returns the starter code for a language slug
func (d Detail) StarterFor(slug string) string {
	for _, l := range d.Languages {
		if l.Slug == slug {
			return l.Starter
		}
	}
	return ""
}

// TestCase pairs an input with its expected output
type TestCase struct {
	Input    string
	Expected string
}

// CaseResult is the outcome of one executed test case
type CaseResult struct {
	Input    string
	Expected string
	Actual   string
	Passed   bool
}

// TestRun is the outcome of a Ctrl+T run against sample cases
type TestRun struct {
	Cases        []CaseResult
	CompileError string
	RuntimeError string
	Runtime      string
	Memory       string
}

// Passed reports whether every case passed with no errors
func (t TestRun) Passed() bool {
	if t.CompileError != "" || t.RuntimeError != "" {
		return false
	}
	for _, c := range t.Cases {
		if !c.Passed {
			return false
		}
	}
	return len(t.Cases) > 0
}

// Verdict classifies a submission outcome
type Verdict uint8

const (
	VerdictAccepted Verdict = iota
	VerdictWrongAnswer
	VerdictCompileError
	VerdictRuntimeError
	VerdictTimeLimit
)

// String returns the display label
func (v Verdict) String() string {
	switch v {
	case VerdictAccepted:
		return "Accepted"
	case VerdictWrongAnswer:
		return "Wrong Answer"
	case VerdictCompileError:
		return "Compile Error"
	case VerdictRuntimeError:
		return "Runtime Error"
	case VerdictTimeLimit:
		return "Time Limit Exceeded"
	default:
		return "Unknown"
	}
}

// Submission is the judged outcome of a Ctrl+S submit
type Submission struct {
	Verdict       Verdict
	TotalCases    int
	PassedCases   int
	Runtime       string
	RuntimeBeats  float64
	Memory        string
	MemoryBeats   float64
	ErrorDetail   string
	FailingInput  string
	FailingOutput string
	Expected      string
}

// User identifies an authenticated session
type User struct {
	Username string
}

// Authenticator validates session credentials
type Authenticator interface {
	Login(ctx context.Context, session, csrf string) (User, error)
}

// ProblemService serves catalog listings and problem detail
type ProblemService interface {
	List(ctx context.Context, q Query) (Page, error)
	Detail(ctx context.Context, slug string) (Detail, error)
}

// Judge executes sample tests and full submissions
type Judge interface {
	RunTests(ctx context.Context, slug, langSlug, code string) (TestRun, error)
	Submit(ctx context.Context, slug, langSlug, code string) (Submission, error)
}
