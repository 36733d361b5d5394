package app

import (
	"context"
	"io"
	"time"

	clog "github.com/charmbracelet/log"

	"github.com/lixenwraith/leetterm/audio"
	"github.com/lixenwraith/leetterm/config"
	"github.com/lixenwraith/leetterm/highlight"
	"github.com/lixenwraith/leetterm/leetcode"
	"github.com/lixenwraith/leetterm/store"
	"github.com/lixenwraith/leetterm/terminal"
	"github.com/lixenwraith/leetterm/terminal/tui"
)

// Options wires the collaborators into the application
type Options struct {
	Terminal    terminal.Terminal
	Auth        leetcode.Authenticator
	Problems    leetcode.ProblemService
	Judge       leetcode.Judge
	Store       *store.Store
	Cues        *audio.Cues
	Highlighter *highlight.Highlighter
	Config      config.Config
	Logger      *clog.Logger
}

// loopEvent merges terminal input and async completions onto one
// channel so all state mutations are totally ordered
type loopEvent struct {
	term terminal.Event
	comp *Completion
}

// App owns the event loop, the screen stack, and the frame buffer.
// All fields are touched only by the Run goroutine.
type App struct {
	term     terminal.Terminal
	auth     leetcode.Authenticator
	problems leetcode.ProblemService
	judge    leetcode.Judge
	store    *store.Store
	cues     *audio.Cues
	hl       *highlight.Highlighter
	cfg      config.Config
	log      *clog.Logger
	theme    Theme

	ctx    context.Context
	cancel context.CancelFunc
	events chan loopEvent
	epoch  uint64

	stack []Screen
	cells []terminal.Cell
	w, h  int

	cursorX, cursorY int
	cursorOn         bool

	quitting bool
}

// New assembles an App; Run drives it
func New(opts Options) *App {
	log := opts.Logger
	if log == nil {
		log = clog.New(io.Discard)
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &App{
		term:     opts.Terminal,
		auth:     opts.Auth,
		problems: opts.Problems,
		judge:    opts.Judge,
		store:    opts.Store,
		cues:     opts.Cues,
		hl:       opts.Highlighter,
		cfg:      opts.Config,
		log:      log,
		theme:    DefaultTheme(),
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan loopEvent, 16),
	}
}

// Theme returns the active color scheme
func (a *App) Theme() Theme { return a.theme }

// Config returns the loaded configuration
func (a *App) Config() config.Config { return a.cfg }

// Run drives the event loop until a screen returns Quit or the stack
// empties. The terminal must already be initialized.
func (a *App) Run(root Screen) error {
	a.w, a.h = a.term.Size()
	a.cells = make([]terminal.Cell, a.w*a.h)

	a.push(root)
	go a.forwardInput()

	if err := a.draw(); err != nil {
		a.cancel()
		return err
	}

	for !a.quitting && len(a.stack) > 0 {
		ev := <-a.events

		switch {
		case ev.comp != nil:
			top := a.stack[len(a.stack)-1]
			a.apply(top.HandleCompletion(a, *ev.comp))
		case ev.term.Type == terminal.EventResize:
			a.resize(ev.term.Width, ev.term.Height)
		case ev.term.Type == terminal.EventNone:
			// terminal stopped underneath us
			a.quitting = true
		case ev.term.Type == terminal.EventInterrupt:
			// redraw only
		case ev.term.Type == terminal.EventKey && ev.term.Key == terminal.KeyCtrlC:
			// global quit; OnExit still runs for every stacked screen
			a.quitting = true
		default:
			top := a.stack[len(a.stack)-1]
			a.apply(top.HandleEvent(a, ev.term))
		}

		if a.quitting || len(a.stack) == 0 {
			break
		}
		if err := a.draw(); err != nil {
			a.cancel()
			return err
		}
	}

	a.cancel()
	for i := len(a.stack) - 1; i >= 0; i-- {
		a.stack[i].OnExit(a)
	}
	a.stack = a.stack[:0]
	return nil
}

// apply mutates the navigation stack per the action. The switch covers
// every action kind.
func (a *App) apply(act Action) {
	switch act.kind {
	case actContinue:
	case actPush:
		a.push(act.next)
	case actPop:
		n := act.n
		if n < 1 {
			n = 1
		}
		for ; n > 0 && len(a.stack) > 0; n-- {
			a.pop()
		}
	case actReplace:
		a.pop()
		a.push(act.next)
	case actQuit:
		a.log.Debug("quit")
		a.quitting = true
	}
}

func (a *App) push(s Screen) {
	a.log.Debug("push", "screen", screenName(s))
	a.stack = append(a.stack, s)
	s.OnEnter(a)
}

func (a *App) pop() {
	if len(a.stack) == 0 {
		return
	}
	top := a.stack[len(a.stack)-1]
	a.log.Debug("pop", "screen", screenName(top))
	top.OnExit(a)
	a.stack = a.stack[:len(a.stack)-1]
}

func (a *App) resize(w, h int) {
	if w == a.w && h == a.h {
		return
	}
	a.log.Debug("resize", "w", w, "h", h)
	a.w, a.h = w, h
	a.cells = make([]terminal.Cell, w*h)
	a.term.Sync()
}

// draw composes the top screen into the frame buffer and flushes the
// delta. Below the usable minimum it renders a notice instead; the
// size check is fatal only at startup.
func (a *App) draw() error {
	if len(a.stack) == 0 {
		return nil
	}

	a.cursorOn = false
	root := tui.NewRegion(a.cells, a.w, 0, 0, a.w, a.h)
	root.Fill(a.theme.Base)

	if a.w < terminal.MinWidth || a.h < terminal.MinHeight {
		root.TextCenter(a.h/2, "terminal too small", a.theme.Warning)
	} else {
		a.stack[len(a.stack)-1].Render(a, root)
	}

	if err := a.term.Flush(a.cells); err != nil {
		return err
	}
	a.term.SetCursor(a.cursorX, a.cursorY, a.cursorOn)
	return nil
}

// ShowCursor places the hardware cursor for this frame; without a call
// the cursor stays hidden. Coordinates are screen-absolute.
func (a *App) ShowCursor(x, y int) {
	a.cursorX, a.cursorY = x, y
	a.cursorOn = true
}

// forwardInput pumps terminal events onto the merged loop channel
func (a *App) forwardInput() {
	for {
		ev := a.term.PollEvent()
		select {
		case a.events <- loopEvent{term: ev}:
		case <-a.ctx.Done():
			return
		}
		if ev.Type == terminal.EventNone {
			return
		}
	}
}

// nextEpoch issues a request epoch. Epochs are unique across all
// screens and kinds for the life of the App, and never zero. Only the
// Run goroutine calls this.
func (a *App) nextEpoch() uint64 {
	a.epoch++
	return a.epoch
}

// post injects a completion into the loop
func (a *App) post(c Completion) {
	select {
	case a.events <- loopEvent{comp: &c}:
	case <-a.ctx.Done():
	}
}

// startRequest runs fn on its own goroutine and posts its result as a
// Completion carrying the given epoch
func (a *App) startRequest(k CompletionKind, epoch uint64, fn func(ctx context.Context) (any, error)) {
	go func() {
		started := time.Now()
		payload, err := fn(a.ctx)
		a.log.Debug("request done", "kind", k, "epoch", epoch,
			"elapsed", time.Since(started), "err", err)
		a.post(Completion{Kind: k, Epoch: epoch, Payload: payload, Err: err})
	}()
}

// discardStale logs and reports a completion superseded by a newer
// request of the same kind
func (a *App) discardStale(r *requests, c Completion) bool {
	if !r.stale(c) {
		return false
	}
	a.log.Debug("stale completion discarded", "kind", c.Kind,
		"epoch", c.Epoch, "current", r.epochs[c.Kind])
	return true
}
