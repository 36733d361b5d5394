package terminal

// Backend abstracts the OS-level terminal: raw mode, sized reads with
// timeout, writes, and resize notification. The unix implementation is
// the only production backend; tests substitute in-memory fakes.
type Backend interface {
	// Init switches the terminal to raw mode
	Init() error
	// Fini restores the terminal state captured by Init
	Fini() error
	// Read blocks up to the poll interval, then returns n=0 with nil
	// error so the caller can flush pending escape state
	Read(p []byte) (int, error)
	// Write sends bytes to the terminal
	Write(p []byte) (int, error)
	// Size returns current terminal dimensions in cells
	Size() (w, h int)
	// ResizeChan signals SIGWINCH delivery
	ResizeChan() <-chan struct{}
}
