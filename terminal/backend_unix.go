//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package terminal

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// pollTimeoutMs bounds each Read; a timed-out read returns n=0 which
// the input parser treats as the lone-ESC disambiguation deadline
const pollTimeoutMs = 50

type unixBackend struct {
	inFd     int
	outFd    int
	oldState *term.State
	resizeCh chan struct{}
	sigCh    chan os.Signal
	done     chan struct{}
}

// NewBackend returns the platform terminal backend on stdin/stdout
func NewBackend() Backend {
	return &unixBackend{
		inFd:     int(os.Stdin.Fd()),
		outFd:    int(os.Stdout.Fd()),
		resizeCh: make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
}

func (b *unixBackend) Init() error {
	if !term.IsTerminal(b.inFd) || !term.IsTerminal(b.outFd) {
		return fmt.Errorf("stdin/stdout is not a terminal")
	}

	state, err := term.MakeRaw(b.inFd)
	if err != nil {
		return fmt.Errorf("raw mode: %w", err)
	}
	b.oldState = state

	b.sigCh = make(chan os.Signal, 1)
	signal.Notify(b.sigCh, syscall.SIGWINCH)
	go b.watchResize()

	return nil
}

func (b *unixBackend) Fini() error {
	close(b.done)
	if b.sigCh != nil {
		signal.Stop(b.sigCh)
	}
	if b.oldState != nil {
		return term.Restore(b.inFd, b.oldState)
	}
	return nil
}

func (b *unixBackend) watchResize() {
	for {
		select {
		case <-b.done:
			return
		case <-b.sigCh:
			select {
			case b.resizeCh <- struct{}{}:
			default: // coalesce bursts
			}
		}
	}
}

func (b *unixBackend) Read(p []byte) (int, error) {
	fds := []unix.PollFd{{Fd: int32(b.inFd), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, pollTimeoutMs)
	if err != nil {
		if err == unix.EINTR {
			return 0, nil
		}
		return 0, err
	}
	if n == 0 {
		return 0, nil // timeout, no data
	}
	return unix.Read(b.inFd, p)
}

func (b *unixBackend) Write(p []byte) (int, error) {
	return unix.Write(b.outFd, p)
}

func (b *unixBackend) Size() (w, h int) {
	ws, err := unix.IoctlGetWinsize(b.outFd, unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 {
		return 80, 24
	}
	return int(ws.Col), int(ws.Row)
}

func (b *unixBackend) ResizeChan() <-chan struct{} {
	return b.resizeCh
}

// restoreTermios is a best-effort sane-mode reset used by EmergencyReset
// when the saved state is unavailable (e.g. panic in another goroutine)
func restoreTermios() {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return
	}
	defer tty.Close()

	fd := int(tty.Fd())
	tio, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return
	}
	tio.Lflag |= unix.ICANON | unix.ECHO | unix.ISIG
	tio.Iflag |= unix.ICRNL
	tio.Oflag |= unix.OPOST
	_ = unix.IoctlSetTermios(fd, ioctlSetTermios, tio)
}
