package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
)

// Minimum usable terminal size; Init fails below this
const (
	MinWidth  = 40
	MinHeight = 10
)

var (
	errFrameSize  = errors.New("terminal: frame size does not match terminal size")
	errNotRunning = errors.New("terminal: not initialized")
)

// Terminal is the full-screen terminal session. Init takes over the
// terminal (alternate screen, raw mode, hidden cursor, bracketed paste);
// Fini restores it. Exactly one PollEvent consumer is supported.
type Terminal interface {
	// Init enters raw mode and the alternate screen
	Init() error
	// Fini restores the terminal; safe to call more than once
	Fini()
	// Size returns the current dimensions in cells
	Size() (w, h int)
	// ColorMode reports the resolved color capability
	ColorMode() ColorMode
	// Flush diffs cells against the previous frame and writes the delta.
	// len(cells) must be Size().w * Size().h.
	Flush(cells []Cell) error
	// SetCursor places the hardware cursor; visible=false hides it
	SetCursor(x, y int, visible bool)
	// Sync forces the next Flush to repaint every cell
	Sync()
	// PollEvent blocks for the next input event
	PollEvent() Event
	// PostEvent injects a synthetic event into the queue
	PostEvent(ev Event)
}

type termImpl struct {
	backend Backend
	output  *outputBuffer

	mu      sync.Mutex
	w, h    int
	mode    ColorMode
	running bool

	cursorX, cursorY int
	cursorVisible    bool
	cursorDirty      bool

	events chan Event
	stop   chan struct{}
}

// New creates a Terminal over the OS backend. mode=ColorModeAuto
// detects capability from the environment.
func New(mode ColorMode) Terminal {
	return NewWithBackend(NewBackend(), mode)
}

// NewWithBackend creates a Terminal over a custom backend, used by tests
func NewWithBackend(backend Backend, mode ColorMode) Terminal {
	if mode == ColorModeAuto {
		mode = DetectColorMode()
	}
	return &termImpl{
		backend: backend,
		mode:    mode,
		events:  make(chan Event, 64),
		stop:    make(chan struct{}),
	}
}

func (t *termImpl) Init() error {
	if os.Getenv("TERM") == "dumb" {
		return fmt.Errorf("terminal: TERM=dumb lacks cursor addressing")
	}

	if err := t.backend.Init(); err != nil {
		return err
	}

	w, h := t.backend.Size()
	if w < MinWidth || h < MinHeight {
		_ = t.backend.Fini()
		return fmt.Errorf("terminal: %dx%d is below the %dx%d minimum", w, h, MinWidth, MinHeight)
	}

	t.mu.Lock()
	t.w, t.h = w, h
	t.output = newOutputBuffer(backendWriter{t.backend}, t.mode)
	t.output.resize(w, h)
	t.running = true
	t.mu.Unlock()

	t.write(seqAltScreenOn + seqCursorHide + seqAutoWrapOff + seqPasteOn + seqClearScreen + seqCursorHome)

	go newInputReader(t.backend, t.events, t.stop).readLoop()
	go t.watchResize()

	return nil
}

func (t *termImpl) Fini() {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return
	}
	t.running = false
	t.mu.Unlock()

	close(t.stop)
	t.write(seqResetStyle + seqPasteOff + seqAutoWrapOn + seqCursorShow + seqAltScreenOff)
	_ = t.backend.Fini()
}

func (t *termImpl) watchResize() {
	for {
		select {
		case <-t.stop:
			return
		case <-t.backend.ResizeChan():
			w, h := t.backend.Size()
			t.mu.Lock()
			t.w, t.h = w, h
			if t.output != nil {
				t.output.resize(w, h)
			}
			t.mu.Unlock()
			t.PostEvent(Event{Type: EventResize, Width: w, Height: h})
		}
	}
}

func (t *termImpl) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.w, t.h
}

func (t *termImpl) ColorMode() ColorMode {
	return t.mode
}

func (t *termImpl) Flush(cells []Cell) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.running {
		return errNotRunning
	}

	n, err := t.output.flush(cells)
	if err != nil {
		return err
	}

	// reposition the cursor when it moved, or when the frame delta did
	// (emitting runs leaves the hardware cursor mid-screen)
	if !t.cursorDirty && n == 0 {
		return nil
	}
	var buf []byte
	if t.cursorVisible {
		buf = writeCursorPos(buf, t.cursorX, t.cursorY)
		buf = append(buf, seqCursorShow...)
	} else {
		buf = append(buf, seqCursorHide...)
	}
	t.cursorDirty = false
	_, err = t.backend.Write(buf)
	return err
}

func (t *termImpl) SetCursor(x, y int, visible bool) {
	t.mu.Lock()
	if x != t.cursorX || y != t.cursorY || visible != t.cursorVisible {
		t.cursorX, t.cursorY, t.cursorVisible = x, y, visible
		t.cursorDirty = true
	}
	t.mu.Unlock()
}

func (t *termImpl) Sync() {
	t.mu.Lock()
	if t.output != nil {
		t.output.invalidate()
	}
	t.mu.Unlock()
}

func (t *termImpl) PollEvent() Event {
	select {
	case ev := <-t.events:
		return ev
	case <-t.stop:
		return Event{Type: EventNone}
	}
}

func (t *termImpl) PostEvent(ev Event) {
	select {
	case t.events <- ev:
	case <-t.stop:
	}
}

func (t *termImpl) write(s string) {
	_, _ = t.backend.Write([]byte(s))
}

// backendWriter adapts Backend to io.Writer for the output buffer
type backendWriter struct {
	b Backend
}

func (w backendWriter) Write(p []byte) (int, error) {
	return w.b.Write(p)
}

// EmergencyReset writes a best-effort terminal restore sequence.
// Called from panic handlers where no Terminal instance is reachable.
func EmergencyReset(w io.Writer) {
	_, _ = w.Write([]byte(seqResetStyle + seqPasteOff + seqAutoWrapOn + seqCursorShow + seqAltScreenOff))
	restoreTermios()
}
