package app

import (
	"fmt"

	"github.com/lixenwraith/leetterm/leetcode"
	"github.com/lixenwraith/leetterm/terminal"
	"github.com/lixenwraith/leetterm/terminal/tui"
)

// testResultScreen overlays the sample-case outcome of a test run. It
// keeps a handle to the detail screen below so `s` can go straight to
// submit after popping.
type testResultScreen struct {
	detail *problemDetailScreen
	run    leetcode.TestRun
	scroll int
}

func newTestResult(detail *problemDetailScreen, run leetcode.TestRun) Screen {
	return &testResultScreen{detail: detail, run: run}
}

func (s *testResultScreen) OnEnter(a *App) {}
func (s *testResultScreen) OnExit(a *App)  {}

func (s *testResultScreen) HandleEvent(a *App, ev terminal.Event) Action {
	if ev.Type == terminal.EventKey {
		switch ev.Key {
		case terminal.KeyEscape:
			return Pop()
		case terminal.KeyUp:
			s.scroll--
		case terminal.KeyDown:
			s.scroll++
		case terminal.KeyPageUp:
			s.scroll -= 10
		case terminal.KeyPageDown:
			s.scroll += 10
		}
		return Continue()
	}
	if ev.Type != terminal.EventRune {
		return Continue()
	}
	switch ev.Rune {
	case 'j':
		s.scroll++
	case 'k':
		s.scroll--
	case 'e':
		return Pop()
	case 's':
		// the detail screen is top of stack again when the submit
		// completion arrives
		s.detail.runJudge(a, CompleteSubmit)
		return Pop()
	}
	return Continue()
}

func (s *testResultScreen) HandleCompletion(a *App, c Completion) Action {
	return Continue()
}

func (s *testResultScreen) Render(a *App, r tui.Region) {
	t := a.theme

	title := "Test Results"
	outer := tui.Center(r, min(r.W-4, 70), min(r.H-2, 20))
	outer.Fill(t.Base)
	pane := outer.Frame(title, tui.LineRounded, t.Border)

	lines := s.buildLines(a)
	body := pane.Sub(0, 0, pane.W, pane.H-1)
	s.scroll = tui.ClampScroll(s.scroll, body.H, len(lines))
	for y := 0; y < body.H; y++ {
		idx := s.scroll + y
		if idx >= len(lines) {
			break
		}
		body.Text(0, y, lines[idx].text, lines[idx].style)
	}
	body.ScrollIndicator(body.H-1, s.scroll, body.H, len(lines), t.Dim)

	pane.Text(0, pane.H-1, "s submit   e/esc back   j/k scroll", t.Dim)
}

type styledLine struct {
	text  string
	style tui.Style
}

func (s *testResultScreen) buildLines(a *App) []styledLine {
	t := a.theme
	var out []styledLine

	switch {
	case s.run.CompileError != "":
		out = append(out, styledLine{"Compile Error", t.Error.Bold()})
		out = append(out, styledLine{"", t.Text})
		for _, l := range tui.WrapText(s.run.CompileError, 64) {
			out = append(out, styledLine{l, t.Error})
		}
		return out
	case s.run.RuntimeError != "":
		out = append(out, styledLine{"Runtime Error", t.Error.Bold()})
		out = append(out, styledLine{"", t.Text})
		for _, l := range tui.WrapText(s.run.RuntimeError, 64) {
			out = append(out, styledLine{l, t.Error})
		}
		return out
	}

	passed := 0
	for _, c := range s.run.Cases {
		if c.Passed {
			passed++
		}
	}
	headSt := t.Success.Bold()
	if passed < len(s.run.Cases) {
		headSt = t.Error.Bold()
	}
	out = append(out, styledLine{fmt.Sprintf("%d/%d cases passed", passed, len(s.run.Cases)), headSt})
	out = append(out, styledLine{"", t.Text})

	for i, c := range s.run.Cases {
		if c.Passed {
			out = append(out, styledLine{fmt.Sprintf("✔ Case %d", i+1), t.Success})
			continue
		}
		out = append(out, styledLine{fmt.Sprintf("✘ Case %d", i+1), t.Error})
		out = append(out, styledLine{"    input:    " + c.Input, t.Dim})
		out = append(out, styledLine{"    expected: " + c.Expected, t.Text})
		out = append(out, styledLine{"    actual:   " + c.Actual, t.Error})
	}

	if s.run.Runtime != "" {
		out = append(out, styledLine{"", t.Text})
		out = append(out, styledLine{
			fmt.Sprintf("runtime %s   memory %s", s.run.Runtime, s.run.Memory), t.Dim,
		})
	}
	return out
}
