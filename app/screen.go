package app

import (
	"github.com/lixenwraith/leetterm/terminal"
	"github.com/lixenwraith/leetterm/terminal/tui"
)

// Screen is one full-pane UI state. The loop calls OnEnter when the
// screen is pushed onto the stack, OnExit when it is popped or
// replaced, and Render once per frame while it is on top. A screen
// uncovered by a pop does not re-run OnEnter; its state survives
// suspension.
type Screen interface {
	OnEnter(a *App)
	OnExit(a *App)
	HandleEvent(a *App, ev terminal.Event) Action
	HandleCompletion(a *App, c Completion) Action
	Render(a *App, r tui.Region)
}

type actionKind uint8

const (
	actContinue actionKind = iota
	actPush
	actPop
	actReplace
	actQuit
)

// Action is the outcome of handling one event: stay, navigate, or quit.
// The set is closed; the loop switches over every kind.
type Action struct {
	kind actionKind
	next Screen
	n    int
}

// Continue keeps the current screen
func Continue() Action {
	return Action{kind: actContinue}
}

// Push places s on top of the current screen
func Push(s Screen) Action {
	return Action{kind: actPush, next: s}
}

// Pop removes the current screen, returning to the one below
func Pop() Action {
	return Action{kind: actPop, n: 1}
}

// PopN removes n screens at once (result overlay back to the list)
func PopN(n int) Action {
	return Action{kind: actPop, n: n}
}

// Replace swaps the current screen for s without growing the stack
func Replace(s Screen) Action {
	return Action{kind: actReplace, next: s}
}

// Quit ends the event loop
func Quit() Action {
	return Action{kind: actQuit}
}

func screenName(s Screen) string {
	switch s.(type) {
	case *loginScreen:
		return "login"
	case *problemListScreen:
		return "problem_list"
	case *problemDetailScreen:
		return "problem_detail"
	case *testResultScreen:
		return "test_result"
	case *submissionResultScreen:
		return "submission_result"
	default:
		return "screen"
	}
}
