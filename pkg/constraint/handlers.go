package constraint

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

// Ignore is a Handler that discards violations. Use it when the structured
// errors returned to callers are the only signal you want.
func Ignore(msg string, detail any, code error) {}

// Abort is a Handler for fail-fast environments: it writes the violation to
// stderr and panics. A constraint violation under Abort is treated as a
// programming bug, not a recoverable condition.
func Abort(msg string, detail any, code error) {
	fmt.Fprintf(os.Stderr, "constraint violation: %s: %v\n", msg, code)
	panic(fmt.Sprintf("constraint violation: %s: %v", msg, code))
}

// Log returns a Handler that reports violations through l at Error level.
// A nil l resolves slog.Default at report time.
func Log(l *slog.Logger) Handler {
	return func(msg string, detail any, code error) {
		log := l
		if log == nil {
			log = slog.Default()
		}

		attrs := []slog.Attr{
			slog.String("component", "constraint"),
		}
		if code != nil {
			attrs = append(attrs, slog.String("code", code.Error()))
		}
		if detail != nil {
			attrs = append(attrs, slog.Any("detail", detail))
		}

		log.LogAttrs(context.Background(), slog.LevelError, msg, attrs...)
	}
}
