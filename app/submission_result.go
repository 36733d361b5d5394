package app

import (
	"fmt"

	"github.com/lixenwraith/leetterm/leetcode"
	"github.com/lixenwraith/leetterm/terminal"
	"github.com/lixenwraith/leetterm/terminal/tui"
)

// submissionResultScreen shows a judged submission. Esc returns to
// the problem; q pops both this screen and the problem, back to the
// list.
type submissionResultScreen struct {
	sub    leetcode.Submission
	scroll int
}

func newSubmissionResult(sub leetcode.Submission) Screen {
	return &submissionResultScreen{sub: sub}
}

func (s *submissionResultScreen) OnEnter(a *App) {}
func (s *submissionResultScreen) OnExit(a *App)  {}

func (s *submissionResultScreen) HandleEvent(a *App, ev terminal.Event) Action {
	if ev.Type == terminal.EventKey {
		switch ev.Key {
		case terminal.KeyEscape:
			return Pop()
		case terminal.KeyUp:
			s.scroll--
		case terminal.KeyDown:
			s.scroll++
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
	case 'q':
		return PopN(2)
	}
	return Continue()
}

func (s *submissionResultScreen) HandleCompletion(a *App, c Completion) Action {
	return Continue()
}

func (s *submissionResultScreen) Render(a *App, r tui.Region) {
	t := a.theme

	outer := tui.Center(r, min(r.W-4, 64), min(r.H-2, 18))
	outer.Fill(t.Base)
	pane := outer.Frame("Submission", tui.LineRounded, t.Border)

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

	pane.Text(0, pane.H-1, "esc problem   q list   j/k scroll", t.Dim)
}

func (s *submissionResultScreen) buildLines(a *App) []styledLine {
	t := a.theme
	sub := s.sub
	var out []styledLine

	out = append(out, styledLine{sub.Verdict.String(), t.VerdictStyle(sub.Verdict).Bold()})
	out = append(out, styledLine{
		fmt.Sprintf("%d/%d cases passed", sub.PassedCases, sub.TotalCases), t.Text,
	})
	out = append(out, styledLine{"", t.Text})

	if sub.Verdict == leetcode.VerdictAccepted {
		out = append(out, styledLine{
			fmt.Sprintf("runtime: %-8s beats %.1f%%", sub.Runtime, sub.RuntimeBeats), t.Text,
		})
		out = append(out, styledLine{
			fmt.Sprintf("memory:  %-8s beats %.1f%%", sub.Memory, sub.MemoryBeats), t.Text,
		})
		return out
	}

	if sub.ErrorDetail != "" {
		for _, l := range tui.WrapText(sub.ErrorDetail, 58) {
			out = append(out, styledLine{l, t.Error})
		}
		out = append(out, styledLine{"", t.Text})
	}
	if sub.FailingInput != "" {
		out = append(out, styledLine{"failing case:", t.Dim})
		out = append(out, styledLine{"  input:    " + sub.FailingInput, t.Dim})
		out = append(out, styledLine{"  output:   " + sub.FailingOutput, t.Error})
		out = append(out, styledLine{"  expected: " + sub.Expected, t.Text})
	}
	return out
}
