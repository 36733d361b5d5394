package app

import (
	"context"
	"fmt"

	"github.com/lixenwraith/leetterm/leetcode"
	"github.com/lixenwraith/leetterm/terminal"
	"github.com/lixenwraith/leetterm/terminal/tui"
)

// rows consumed by chrome: title, filter bar, column header, footer
const listChrome = 4

type problemListScreen struct {
	reqs requests

	user leetcode.User

	problems []leetcode.Problem
	total    int

	cursor     int
	offset     int
	difficulty leetcode.Difficulty
	search     []rune
	searching  bool

	loading bool
	status  string
}

// NewProblemList creates the catalog browser for a signed-in user
func NewProblemList(user leetcode.User) Screen {
	return &problemListScreen{user: user}
}

func (s *problemListScreen) OnEnter(a *App) {
	s.fetch(a)
}

func (s *problemListScreen) OnExit(a *App) {
	s.reqs.invalidate()
}

// pageSize is the number of visible rows, which is also the fetch limit
func (s *problemListScreen) pageSize(a *App) int {
	n := a.h - listChrome
	if n < 1 {
		n = 1
	}
	return n
}

func (s *problemListScreen) fetch(a *App) {
	s.loading = true
	s.status = ""
	q := leetcode.Query{
		Difficulty: s.difficulty,
		Search:     string(s.search),
		Offset:     s.offset,
		Limit:      s.pageSize(a),
	}
	epoch := s.reqs.begin(a, CompleteList)
	a.startRequest(CompleteList, epoch, func(ctx context.Context) (any, error) {
		return a.problems.List(ctx, q)
	})
}

func (s *problemListScreen) HandleEvent(a *App, ev terminal.Event) Action {
	if s.searching {
		return s.handleSearch(a, ev)
	}

	if ev.Type == terminal.EventKey {
		switch ev.Key {
		case terminal.KeyUp:
			s.moveCursor(-1)
		case terminal.KeyDown:
			s.moveCursor(1)
		case terminal.KeyPageUp:
			s.page(a, -1)
		case terminal.KeyPageDown:
			s.page(a, 1)
		case terminal.KeyEnter:
			return s.open(a)
		case terminal.KeyEscape:
			return Quit()
		}
		return Continue()
	}

	if ev.Type != terminal.EventRune {
		return Continue()
	}
	switch ev.Rune {
	case 'j':
		s.moveCursor(1)
	case 'k':
		s.moveCursor(-1)
	case 'd':
		s.difficulty = s.difficulty.Next()
		s.offset = 0
		s.cursor = 0
		s.fetch(a)
	case '/':
		s.searching = true
	case 'r':
		s.fetch(a)
	case 'L':
		return s.logout(a)
	case 'q':
		return Quit()
	}
	return Continue()
}

// handleSearch edits the incremental search text; every change refetches
func (s *problemListScreen) handleSearch(a *App, ev terminal.Event) Action {
	switch {
	case ev.Type == terminal.EventRune && ev.Rune >= 32:
		s.search = append(s.search, ev.Rune)
	case ev.Type == terminal.EventKey && ev.Key == terminal.KeyBackspace:
		if len(s.search) == 0 {
			s.searching = false
			return Continue()
		}
		s.search = s.search[:len(s.search)-1]
	case ev.Type == terminal.EventKey && ev.Key == terminal.KeyEnter:
		s.searching = false
		return Continue()
	case ev.Type == terminal.EventKey && ev.Key == terminal.KeyEscape:
		s.searching = false
		if len(s.search) > 0 {
			s.search = s.search[:0]
			break
		}
		return Continue()
	default:
		return Continue()
	}

	s.offset = 0
	s.cursor = 0
	s.fetch(a)
	return Continue()
}

func (s *problemListScreen) moveCursor(delta int) {
	s.cursor += delta
	if s.cursor < 0 {
		s.cursor = 0
	}
	if s.cursor >= len(s.problems) {
		s.cursor = len(s.problems) - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

func (s *problemListScreen) page(a *App, dir int) {
	size := s.pageSize(a)
	next := s.offset + dir*size
	if next < 0 {
		next = 0
	}
	if next >= s.total {
		return
	}
	if next == s.offset {
		return
	}
	s.offset = next
	s.cursor = 0
	s.fetch(a)
}

func (s *problemListScreen) open(a *App) Action {
	if s.cursor >= len(s.problems) {
		return Continue()
	}
	p := s.problems[s.cursor]
	if p.PaidOnly {
		s.status = "premium problem, not available"
		return Continue()
	}
	return Push(NewProblemDetail(p.Slug))
}

func (s *problemListScreen) logout(a *App) Action {
	if a.store != nil {
		if err := a.store.ClearSession(a.ctx); err != nil {
			a.log.Warn("clear session", "err", err)
		}
	}
	a.log.Info("signed out", "user", s.user.Username)
	return Replace(NewLogin())
}

func (s *problemListScreen) HandleCompletion(a *App, c Completion) Action {
	if a.discardStale(&s.reqs, c) {
		return Continue()
	}
	s.loading = false
	if c.Err != nil {
		s.status = "load failed: " + c.Err.Error()
		return Continue()
	}

	page := c.Payload.(leetcode.Page)
	s.problems = page.Problems
	s.total = page.Total
	if s.cursor >= len(s.problems) {
		s.cursor = len(s.problems) - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
	return Continue()
}

func (s *problemListScreen) Render(a *App, r tui.Region) {
	t := a.theme

	r.Text(1, 0, "Problems", t.Title)
	r.TextRight(0, s.user.Username+" ", t.Dim)

	s.renderFilter(a, r.Sub(0, 1, r.W, 1))

	header := r.Sub(0, 2, r.W, 1)
	header.Fill(t.Dim)
	header.Text(1, 0, "   #  Title", t.Dim)
	header.TextRight(0, "Difficulty   AC%  ", t.Dim)

	rows := r.Sub(0, 3, r.W, r.H-listChrome)
	switch {
	case s.loading:
		rows.TextCenter(rows.H/2, "Loading...", t.Dim)
	case len(s.problems) == 0:
		rows.TextCenter(rows.H/2, "no problems match", t.Dim)
	default:
		for i, p := range s.problems {
			if i >= rows.H {
				break
			}
			s.renderRow(a, rows.Sub(0, i, rows.W, 1), p, i == s.cursor)
		}
	}

	footer := r.Sub(0, r.H-1, r.W, 1)
	footer.Fill(t.Status)
	if s.status != "" {
		footer.Text(1, 0, s.status, t.Error.WithBg(t.Status.Bg))
	} else {
		footer.Text(1, 0, "enter open   d difficulty   / search   r refresh   L logout   q quit", t.Status)
	}
	if s.total > 0 {
		size := s.pageSize(a)
		page := s.offset/size + 1
		pages := (s.total + size - 1) / size
		footer.TextRight(0, fmt.Sprintf("page %d/%d (%d) ", page, pages, s.total), t.Status)
	}
}

func (s *problemListScreen) renderFilter(a *App, r tui.Region) {
	t := a.theme
	r.Text(1, 0, "difficulty:", t.Dim)
	r.Text(13, 0, s.difficulty.String(), t.DifficultyStyle(s.difficulty))

	label := "search: "
	x := 22
	r.Text(x, 0, label, t.Dim)
	st := t.Text
	if s.searching {
		st = t.Accent
	}
	r.Text(x+len(label), 0, string(s.search), st)
	if s.searching {
		a.ShowCursor(r.X+x+len(label)+len(s.search), r.Y)
	}
}

func (s *problemListScreen) renderRow(a *App, r tui.Region, p leetcode.Problem, selected bool) {
	t := a.theme
	base := t.Text
	diffSt := t.DifficultyStyle(p.Difficulty)
	if selected {
		base = t.Selected
		diffSt = t.Selected
		r.Fill(base)
	}

	icon := ' '
	iconSt := base
	switch p.Status {
	case leetcode.StatusSolved:
		icon = '✔'
		if !selected {
			iconSt = t.Success
		}
	case leetcode.StatusAttempted:
		icon = '✘'
		if !selected {
			iconSt = t.Warning
		}
	}
	r.Cell(1, 0, icon, iconSt)

	title := p.Title
	if p.PaidOnly {
		title += " $"
	}
	r.Text(3, 0, fmt.Sprintf("%4d  %s", p.ID, tui.Truncate(title, r.W-28)), base)

	r.TextRight(0, fmt.Sprintf("%-8s %5.1f  ", p.Difficulty.String(), p.AcRate), diffSt)
}
