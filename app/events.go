package app

// CompletionKind names the async operation a Completion finishes
type CompletionKind uint8

const (
	CompleteLogin CompletionKind = iota
	CompleteList
	CompleteDetail
	CompleteTest
	CompleteSubmit

	completionKinds
)

func (k CompletionKind) String() string {
	switch k {
	case CompleteLogin:
		return "login"
	case CompleteList:
		return "list"
	case CompleteDetail:
		return "detail"
	case CompleteTest:
		return "test"
	case CompleteSubmit:
		return "submit"
	default:
		return "unknown"
	}
}

// Completion carries the result of a collaborator call back into the
// event loop. Epoch identifies the request that started it.
type Completion struct {
	Kind    CompletionKind
	Epoch   uint64
	Payload any
	Err     error
}

// requests tracks the current epoch per completion kind for one
// screen. Epochs come from the App-wide counter, so an epoch issued to
// one screen instance can never alias a request started by another.
// A new request supersedes any in-flight one of the same kind;
// invalidate supersedes all of them at once (used on screen exit).
type requests struct {
	epochs [completionKinds]uint64
}

// begin starts a new request of kind k and returns its epoch
func (r *requests) begin(a *App, k CompletionKind) uint64 {
	e := a.nextEpoch()
	r.epochs[k] = e
	return e
}

// stale reports whether c no longer matches the current epoch.
// Epoch zero is never issued; a fresh or invalidated slot matches
// nothing.
func (r *requests) stale(c Completion) bool {
	return r.epochs[c.Kind] == 0 || c.Epoch != r.epochs[c.Kind]
}

// invalidate orphans all in-flight requests of this screen
func (r *requests) invalidate() {
	for k := range r.epochs {
		r.epochs[k] = 0
	}
}
