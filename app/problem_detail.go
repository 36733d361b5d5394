package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lixenwraith/leetterm/editor"
	"github.com/lixenwraith/leetterm/leetcode"
	"github.com/lixenwraith/leetterm/terminal"
	"github.com/lixenwraith/leetterm/terminal/tui"
)

type problemDetailScreen struct {
	reqs requests

	slug   string
	detail leetcode.Detail
	loaded bool

	ed      *editor.Editor
	langIdx int
	mode    ViewMode

	descScroll int
	descLines  []string // wrap cache, invalidated on width change or reload
	descWidth  int

	loading bool
	busy    string // "testing" or "submitting" while a judge call runs
	status  string
}

// NewProblemDetail opens a problem for solving
func NewProblemDetail(slug string) Screen {
	return &problemDetailScreen{slug: slug, loading: true}
}

// detailPayload carries a fetched problem plus the saved or starter
// code for the preferred language
type detailPayload struct {
	detail  leetcode.Detail
	langIdx int
	code    string
}

func (s *problemDetailScreen) OnEnter(a *App) {
	s.loading = true
	epoch := s.reqs.begin(a, CompleteDetail)
	preferred := a.cfg.Language
	a.startRequest(CompleteDetail, epoch, func(ctx context.Context) (any, error) {
		d, err := a.problems.Detail(ctx, s.slug)
		if err != nil {
			return nil, err
		}
		idx := 0
		for i, l := range d.Languages {
			if l.Slug == preferred {
				idx = i
				break
			}
		}
		code := ""
		if len(d.Languages) > 0 {
			code = d.Languages[idx].Starter
			if a.store != nil {
				if saved, ok, err := a.store.LoadSolution(ctx, s.slug, d.Languages[idx].Slug); err == nil && ok {
					code = saved
				}
			}
		}
		return detailPayload{detail: d, langIdx: idx, code: code}, nil
	})
}

func (s *problemDetailScreen) OnExit(a *App) {
	s.save(a)
	s.reqs.invalidate()
}

func (s *problemDetailScreen) lang() leetcode.Language {
	if !s.loaded || len(s.detail.Languages) == 0 {
		return leetcode.Language{}
	}
	return s.detail.Languages[s.langIdx]
}

// save persists the buffer for the current language
func (s *problemDetailScreen) save(a *App) {
	if !s.loaded || s.ed == nil || a.store == nil {
		return
	}
	if err := a.store.SaveSolution(a.ctx, s.slug, s.lang().Slug, s.ed.Value()); err != nil {
		a.log.Warn("save solution", "slug", s.slug, "err", err)
	}
}

func (s *problemDetailScreen) HandleEvent(a *App, ev terminal.Event) Action {
	if ev.Type == terminal.EventKey {
		switch ev.Key {
		case terminal.KeyEscape:
			return Pop()
		case terminal.KeyCtrlD:
			s.mode = s.mode.Next()
			return Continue()
		case terminal.KeyCtrlT:
			s.runJudge(a, CompleteTest)
			return Continue()
		case terminal.KeyCtrlS:
			s.runJudge(a, CompleteSubmit)
			return Continue()
		case terminal.KeyCtrlL:
			s.cycleLanguage(a)
			return Continue()
		case terminal.KeyUp, terminal.KeyDown:
			// Ctrl+arrows scroll the description while the editor keeps
			// plain arrows
			if s.mode == ViewSplit && ev.Mod&terminal.ModCtrl != 0 {
				delta := -1
				if ev.Key == terminal.KeyDown {
					delta = 1
				}
				s.scrollDesc(delta)
				return Continue()
			}
		}
	}

	if s.mode == ViewDescription {
		s.handleDescKeys(ev)
		return Continue()
	}

	if s.loaded && s.ed != nil {
		s.ed.HandleEvent(ev)
	}
	return Continue()
}

func (s *problemDetailScreen) handleDescKeys(ev terminal.Event) {
	switch {
	case ev.Type == terminal.EventRune && ev.Rune == 'j':
		s.scrollDesc(1)
	case ev.Type == terminal.EventRune && ev.Rune == 'k':
		s.scrollDesc(-1)
	case ev.Type == terminal.EventKey && ev.Key == terminal.KeyDown:
		s.scrollDesc(1)
	case ev.Type == terminal.EventKey && ev.Key == terminal.KeyUp:
		s.scrollDesc(-1)
	case ev.Type == terminal.EventKey && ev.Key == terminal.KeyPageDown:
		s.scrollDesc(10)
	case ev.Type == terminal.EventKey && ev.Key == terminal.KeyPageUp:
		s.scrollDesc(-10)
	}
}

func (s *problemDetailScreen) scrollDesc(delta int) {
	s.descScroll += delta
	if s.descScroll < 0 {
		s.descScroll = 0
	}
	if s.descScroll >= len(s.descLines) {
		s.descScroll = len(s.descLines) - 1
	}
	if s.descScroll < 0 {
		s.descScroll = 0
	}
}

func (s *problemDetailScreen) cycleLanguage(a *App) {
	if !s.loaded || len(s.detail.Languages) < 2 {
		return
	}
	s.save(a)
	s.langIdx = (s.langIdx + 1) % len(s.detail.Languages)
	lang := s.lang()

	code := lang.Starter
	if a.store != nil {
		if saved, ok, err := a.store.LoadSolution(a.ctx, s.slug, lang.Slug); err == nil && ok {
			code = saved
		}
	}
	s.ed.SetValue(code)
	s.status = "language: " + lang.Name
}

// runJudge saves and starts a test or submit request; one judge call
// runs at a time
func (s *problemDetailScreen) runJudge(a *App, kind CompletionKind) {
	if !s.loaded || s.ed == nil || s.busy != "" {
		return
	}
	s.save(a)

	lang := s.lang().Slug
	code := s.ed.Value()
	epoch := s.reqs.begin(a, kind)

	if kind == CompleteSubmit {
		s.busy = "submitting"
		s.status = "submitting..."
		a.startRequest(kind, epoch, func(ctx context.Context) (any, error) {
			return a.judge.Submit(ctx, s.slug, lang, code)
		})
		return
	}
	s.busy = "testing"
	s.status = "running tests..."
	a.startRequest(kind, epoch, func(ctx context.Context) (any, error) {
		return a.judge.RunTests(ctx, s.slug, lang, code)
	})
}

func (s *problemDetailScreen) HandleCompletion(a *App, c Completion) Action {
	if a.discardStale(&s.reqs, c) {
		return Continue()
	}

	switch c.Kind {
	case CompleteDetail:
		s.loading = false
		if c.Err != nil {
			s.status = "load failed: " + c.Err.Error()
			return Continue()
		}
		p := c.Payload.(detailPayload)
		s.detail = p.detail
		s.langIdx = p.langIdx
		s.loaded = true
		s.descScroll = 0
		s.descLines = nil
		s.descWidth = 0

		s.ed = editor.New(p.code)
		s.ed.SetCoalesceWindow(time.Duration(a.cfg.UndoCoalesceMs) * time.Millisecond)
		s.ed.SetMaxUndo(a.cfg.UndoDepth)
		s.ed.SetTabWidth(a.cfg.TabWidth)
		return Continue()

	case CompleteTest:
		s.busy = ""
		s.status = ""
		if c.Err != nil {
			s.status = "test failed: " + c.Err.Error()
			return Continue()
		}
		run := c.Payload.(leetcode.TestRun)
		if a.cues != nil {
			if run.Passed() {
				a.cues.Pass()
			} else {
				a.cues.Fail()
			}
		}
		return Push(newTestResult(s, run))

	case CompleteSubmit:
		s.busy = ""
		s.status = ""
		if c.Err != nil {
			s.status = "submit failed: " + c.Err.Error()
			return Continue()
		}
		sub := c.Payload.(leetcode.Submission)
		if a.cues != nil {
			if sub.Verdict == leetcode.VerdictAccepted {
				a.cues.Accept()
			} else {
				a.cues.Fail()
			}
		}
		return Push(newSubmissionResult(sub))
	}
	return Continue()
}

func (s *problemDetailScreen) Render(a *App, r tui.Region) {
	t := a.theme
	panes := Compose(r, s.mode)

	s.renderHeader(a, panes.Header)

	if s.loading {
		panes.Body.TextCenter(panes.Body.H/2, "Loading...", t.Dim)
		s.renderFooter(a, panes.Footer)
		return
	}
	if !s.loaded {
		panes.Body.TextCenter(panes.Body.H/2, s.status, t.Error)
		s.renderFooter(a, panes.Footer)
		return
	}

	if panes.DividerX >= 0 {
		panes.Body.VLine(panes.DividerX, tui.LineSingle, t.Border)
	}
	if panes.Desc.W > 0 {
		s.renderDescription(a, panes.Desc)
	}
	if panes.Editor.W > 0 {
		s.renderEditor(a, panes.Editor)
	}
	s.renderFooter(a, panes.Footer)
}

func (s *problemDetailScreen) renderHeader(a *App, r tui.Region) {
	t := a.theme
	r.Fill(t.Status)

	if !s.loaded {
		r.Text(1, 0, s.slug, t.Status)
		return
	}
	title := fmt.Sprintf("#%d %s", s.detail.ID, s.detail.Title)
	r.Text(1, 0, tui.Truncate(title, r.W-30), t.Status.Bold())

	diff := s.detail.Difficulty
	right := fmt.Sprintf("%s  %s  %s ", diff.String(), s.lang().Name, s.mode.String())
	r.TextRight(0, right, t.DifficultyStyle(diff).WithBg(t.Status.Bg))
}

func (s *problemDetailScreen) renderFooter(a *App, r tui.Region) {
	t := a.theme
	r.Fill(t.Status)
	if s.status != "" {
		st := t.Warning
		if s.busy == "" {
			st = t.Text
		}
		r.Text(1, 0, s.status, st.WithBg(t.Status.Bg))
		return
	}
	r.Text(1, 0, "^T test   ^S submit   ^L language   ^D view   esc back", t.Status)
}

func (s *problemDetailScreen) renderDescription(a *App, r tui.Region) {
	t := a.theme

	pane := r
	if s.mode == ViewDescription {
		pane = r.Frame(s.detail.Title, tui.LineSingle, t.Border)
	}

	lines := s.wrappedDescription(pane.W - 1)
	s.descScroll = tui.ClampScroll(s.descScroll, pane.H, len(lines))

	for y := 0; y < pane.H; y++ {
		idx := s.descScroll + y
		if idx >= len(lines) {
			break
		}
		pane.Text(0, y, lines[idx], t.Text)
	}
	pane.ScrollIndicator(pane.H-1, s.descScroll, pane.H, len(lines), t.Dim)
}

// wrappedDescription rebuilds the wrap cache when the width or the
// loaded detail changes
func (s *problemDetailScreen) wrappedDescription(width int) []string {
	if width < 4 {
		return nil
	}
	if width == s.descWidth && s.descLines != nil {
		return s.descLines
	}
	s.descWidth = width

	var out []string
	for _, para := range splitParagraphs(s.detail.Statement) {
		out = append(out, tui.WrapText(para, width)...)
		out = append(out, "")
	}
	for i, tc := range s.detail.TestCases {
		out = append(out, fmt.Sprintf("Example %d:", i+1))
		out = append(out, tui.WrapText("  Input:    "+tc.Input, width)...)
		out = append(out, tui.WrapText("  Expected: "+tc.Expected, width)...)
		out = append(out, "")
	}
	s.descLines = out
	return out
}

func (s *problemDetailScreen) renderEditor(a *App, r tui.Region) {
	focused := s.mode != ViewDescription
	opts := editor.RenderOpts{
		LineNumbers: true,
		Focused:     focused,
		Style:       a.theme.Editor,
	}
	if a.hl != nil {
		opts.Styler = a.hl.StylerFor(s.ed.Value(), s.lang().Slug, s.ed.Generation())
	}
	cx, cy, visible := s.ed.Render(r, opts)
	if visible {
		a.ShowCursor(r.X+cx, r.Y+cy)
	}
}

// splitParagraphs breaks text on blank lines
func splitParagraphs(text string) []string {
	var paras []string
	cur := ""
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			if cur != "" {
				paras = append(paras, cur)
				cur = ""
			}
			continue
		}
		if cur != "" {
			cur += " "
		}
		cur += line
	}
	if cur != "" {
		paras = append(paras, cur)
	}
	return paras
}

