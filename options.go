package tmpnam

import "github.com/dmitrymomot/tmpnam/pkg/constraint"

// Option configures a Generator.
type Option func(*Generator)

// WithSource sets the name source. A nil source is ignored and the default
// classic source stays in place.
func WithSource(src Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.source = src
		}
	}
}

// WithBudget sets the call budget this generator consumes. A nil budget is
// ignored and the process-wide DefaultBudget stays in place.
func WithBudget(b *CallBudget) Option {
	return func(g *Generator) {
		if b != nil {
			g.budget = b
		}
	}
}

// WithMaxNameLen sets the maximum length of generated names and accepted
// destination buffers. Values below one are ignored; values above
// MaxCapacity are capped to it.
func WithMaxNameLen(n int) Option {
	return func(g *Generator) {
		if n < 1 {
			return
		}
		g.maxNameLen = min(n, MaxCapacity)
	}
}

// WithPadding makes successful generations zero-fill the destination buffer
// past the copied name, so stale bytes never trail the result.
func WithPadding() Option {
	return func(g *Generator) {
		g.padding = true
	}
}

// WithNotify routes this generator's violation reports to h instead of the
// process-wide constraint handler. A nil handler is ignored.
func WithNotify(h constraint.Handler) Option {
	return func(g *Generator) {
		if h != nil {
			g.notify = h
		}
	}
}
