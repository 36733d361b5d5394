package app

import (
	"context"
	"strings"

	"github.com/lixenwraith/leetterm/leetcode"
	"github.com/lixenwraith/leetterm/terminal"
	"github.com/lixenwraith/leetterm/terminal/tui"
)

const sessionKeyName = "session"
const csrfKeyName = "csrf"

var logoLines = []string{
	`  _           _   _                      `,
	` | | ___  ___| |_| |_ ___ _ __ _ __ ___  `,
	` | |/ _ \/ _ \ __| __/ _ \ '__| '_ ' _ \ `,
	` | |  __/  __/ |_| ||  __/ |  | | | | | |`,
	` |_|\___|\___|\__|\__\___|_|  |_| |_| |_|`,
}

type loginStep uint8

const (
	loginMenu loginStep = iota
	loginTokens
)

type loginScreen struct {
	reqs requests

	step    loginStep
	menuIdx int

	session []rune
	csrf    []rune
	field   int // 0=session, 1=csrf

	busy   bool
	status string
}

// NewLogin creates the entry screen
func NewLogin() Screen {
	return &loginScreen{}
}

func (s *loginScreen) OnEnter(a *App) {
	// a saved session signs in without re-entering tokens
	if a.store == nil {
		return
	}
	saved, err := a.store.LoadSessionValue(a.ctx, sessionKeyName)
	if err != nil || saved == "" {
		return
	}
	csrf, _ := a.store.LoadSessionValue(a.ctx, csrfKeyName)
	s.beginLogin(a, saved, csrf, false)
}

func (s *loginScreen) OnExit(a *App) {
	s.reqs.invalidate()
}

func (s *loginScreen) HandleEvent(a *App, ev terminal.Event) Action {
	if s.busy {
		if ev.Type == terminal.EventKey && ev.Key == terminal.KeyEscape {
			s.reqs.invalidate()
			s.busy = false
			s.status = "canceled"
		}
		return Continue()
	}

	switch s.step {
	case loginMenu:
		return s.handleMenu(a, ev)
	case loginTokens:
		return s.handleTokens(a, ev)
	}
	return Continue()
}

func (s *loginScreen) handleMenu(a *App, ev terminal.Event) Action {
	switch {
	case ev.Type == terminal.EventKey && (ev.Key == terminal.KeyUp || ev.Key == terminal.KeyDown):
		s.menuIdx = 1 - s.menuIdx
	case ev.Type == terminal.EventRune && (ev.Rune == 'j' || ev.Rune == 'k'):
		s.menuIdx = 1 - s.menuIdx
	case ev.Type == terminal.EventKey && ev.Key == terminal.KeyEnter:
		if s.menuIdx == 0 {
			s.step = loginTokens
			s.status = ""
		} else {
			s.beginLogin(a, "offline", "", false)
		}
	case ev.Type == terminal.EventKey && ev.Key == terminal.KeyEscape:
		return Quit()
	case ev.Type == terminal.EventRune && ev.Rune == 'q':
		return Quit()
	}
	return Continue()
}

func (s *loginScreen) handleTokens(a *App, ev terminal.Event) Action {
	active := &s.session
	if s.field == 1 {
		active = &s.csrf
	}

	switch ev.Type {
	case terminal.EventRune:
		if ev.Rune >= 32 {
			*active = append(*active, ev.Rune)
		}
	case terminal.EventPaste:
		for _, r := range strings.TrimSpace(ev.Text) {
			if r >= 32 {
				*active = append(*active, r)
			}
		}
	case terminal.EventKey:
		switch ev.Key {
		case terminal.KeyBackspace:
			if len(*active) > 0 {
				*active = (*active)[:len(*active)-1]
			}
		case terminal.KeyTab, terminal.KeyUp, terminal.KeyDown:
			s.field = 1 - s.field
		case terminal.KeyEnter:
			if s.field == 0 {
				s.field = 1
				break
			}
			if len(s.session) == 0 {
				s.status = "session token required"
				break
			}
			s.beginLogin(a, string(s.session), string(s.csrf), true)
		case terminal.KeyEscape:
			s.step = loginMenu
			s.status = ""
		}
	}
	return Continue()
}

// loginPayload pairs the authenticated user with the tokens to persist
type loginPayload struct {
	user    leetcode.User
	session string
	csrf    string
	persist bool
}

func (s *loginScreen) beginLogin(a *App, session, csrf string, persist bool) {
	s.busy = true
	s.status = "signing in..."
	epoch := s.reqs.begin(a, CompleteLogin)
	a.startRequest(CompleteLogin, epoch, func(ctx context.Context) (any, error) {
		user, err := a.auth.Login(ctx, session, csrf)
		if err != nil {
			return nil, err
		}
		return loginPayload{user: user, session: session, csrf: csrf, persist: persist}, nil
	})
}

func (s *loginScreen) HandleCompletion(a *App, c Completion) Action {
	if a.discardStale(&s.reqs, c) {
		return Continue()
	}
	s.busy = false
	if c.Err != nil {
		s.status = "sign-in failed: " + c.Err.Error()
		return Continue()
	}

	p := c.Payload.(loginPayload)
	if p.persist && a.store != nil {
		if err := a.store.SaveSessionValue(a.ctx, sessionKeyName, p.session); err != nil {
			a.log.Warn("save session", "err", err)
		} else {
			_ = a.store.SaveSessionValue(a.ctx, csrfKeyName, p.csrf)
		}
	}
	a.log.Info("signed in", "user", p.user.Username)
	return Replace(NewProblemList(p.user))
}

func (s *loginScreen) Render(a *App, r tui.Region) {
	t := a.theme

	logoW := tui.RuneLen(logoLines[0])
	top := r.H/2 - 8
	if top < 1 {
		top = 1
	}

	if r.W >= logoW+2 {
		for i, line := range logoLines {
			r.TextCenter(top+i, line, t.Title)
		}
	} else {
		r.TextCenter(top+2, "leetterm", t.Title)
	}
	y := top + len(logoLines) + 2

	switch s.step {
	case loginMenu:
		items := []string{"Sign in with session cookie", "Browse offline catalog"}
		for i, item := range items {
			st := t.Text
			marker := "  "
			if i == s.menuIdx {
				st = t.Selected
				marker = "> "
			}
			r.TextCenter(y+i, marker+tui.PadRight(item, 30), st)
		}
		r.TextCenter(y+4, "enter select   j/k move   q quit", t.Dim)

	case loginTokens:
		formW := 44
		x := (r.W - formW) / 2
		s.renderField(a, r, x, y, formW, "LEETCODE_SESSION", s.session, s.field == 0)
		s.renderField(a, r, x, y+3, formW, "csrftoken", s.csrf, s.field == 1)
		r.TextCenter(y+7, "enter submit   tab switch   esc back", t.Dim)
	}

	if s.status != "" {
		st := t.Error
		if s.busy {
			st = t.Warning
		}
		r.TextCenter(y+9, s.status, st)
	}
}

// renderField draws one masked input line
func (s *loginScreen) renderField(a *App, r tui.Region, x, y, w int, label string, value []rune, focused bool) {
	t := a.theme
	st := t.Dim
	if focused {
		st = t.Accent
	}
	r.Text(x, y, label, st)

	box := r.Sub(x, y+1, w, 1)
	box.Fill(tui.Style{Fg: t.Text.Fg, Bg: terminal.RGB{R: 35, G: 35, B: 48}})
	masked := tui.RepeatRune('*', len(value))
	shown := masked
	if tui.RuneLen(shown) > w-1 {
		shown = shown[len(shown)-(w-1):]
	}
	box.Text(0, 0, shown, tui.Style{Fg: t.Text.Fg, Bg: terminal.RGB{R: 35, G: 35, B: 48}})
	if focused {
		cx := tui.RuneLen(shown)
		if cx > w-1 {
			cx = w - 1
		}
		a.ShowCursor(box.X+cx, box.Y)
	}
}
