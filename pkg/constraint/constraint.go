package constraint

import "sync/atomic"

// Handler receives one report per contract violation. msg is a short
// human-readable description of the violated precondition, detail is an
// opaque value supplied by the reporting call site (nil unless documented
// otherwise), and code is the sentinel error identifying the violation kind.
//
// Handlers run synchronously on the violating goroutine and must not panic
// unless process termination is the intent (see Abort).
type Handler func(msg string, detail any, code error)

// current holds the installed handler. A nil pointer means the default
// logging handler is in effect.
var current atomic.Pointer[Handler]

// defaultHandler resolves slog.Default at report time, so handlers installed
// via slog.SetDefault are respected without reinstalling.
var defaultHandler = Log(nil)

// Set installs h as the process-wide constraint handler and returns the
// previously installed one, so callers can restore it later. Passing nil
// restores the default logging handler.
func Set(h Handler) Handler {
	prev := active()
	if h == nil {
		current.Store(nil)
		return prev
	}
	current.Store(&h)
	return prev
}

// Notify reports a contract violation to the installed handler. Library code
// calls Notify exactly once per violation, immediately before returning the
// matching error to the caller.
func Notify(msg string, detail any, code error) {
	active()(msg, detail, code)
}

func active() Handler {
	if p := current.Load(); p != nil {
		return *p
	}
	return defaultHandler
}
