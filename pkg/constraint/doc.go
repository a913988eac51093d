// Package constraint implements the process-wide runtime-constraint handler:
// a pluggable diagnostic sink invoked whenever a hardened API detects a
// contract violation (nil buffer, zero capacity, exhausted budget, and so
// on).
//
// The handler is an observability channel, not a control-flow mechanism.
// Violating calls still return their structured error to the caller; the
// handler call and the returned error are the same event observed two ways.
// Callers branch on the error, operators watch the sink.
//
// # Usage
//
// By default every violation is logged through slog.Default at Error level.
// Install a different handler once during initialization:
//
//	prev := constraint.Set(constraint.Log(myLogger))
//	defer constraint.Set(prev)
//
// Built-in handlers:
//
//   - Log(l) reports violations through the given structured logger
//     (the default behavior when no handler is installed).
//   - Ignore discards violations entirely.
//   - Abort writes the violation to stderr and panics, for fail-fast
//     environments where a contract violation means a programming bug.
//
// Custom handlers are plain functions:
//
//	constraint.Set(func(msg string, detail any, code error) {
//		metrics.Inc("constraint_violations", code.Error())
//	})
//
// # Contract
//
// Handlers are invoked synchronously on the violating goroutine and must not
// return errors; anything a handler needs to signal, it signals out of band.
// Set is safe for concurrent use, though the expected pattern is a single
// install at startup. Ignore and Abort mirror the ignore/abort handlers of
// the C bounds-checked interfaces this package descends from.
package constraint
