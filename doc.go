// Package tmpnam generates temporary file names into caller-provided
// buffers with the argument checking, scrubbing, and hard generation limits
// that the classic C library tmpnam routine lacks.
//
// The package hardens a deliberately legacy-shaped API: names land in a
// byte slice the caller owns, a process-wide budget caps how many names can
// ever be issued, and every rejected call reports a diagnostic through a
// replaceable constraint handler before returning a typed error.
//
// Key Features:
//
//   - Validates the destination buffer before any work happens
//   - Enforces a TMP_MAX-style ceiling on generated names per process
//   - Scrubs rejected names so they cannot linger in reusable buffers
//   - Pluggable name sources: classic nine-digit, UUID, memorable words
//   - Violation reporting through a swappable process-wide handler
//
// Basic Usage:
//
//	buf := make([]byte, 64)
//	n, err := tmpnam.Generate(buf)
//	if err != nil {
//		// handle err: errors.Is against the package sentinels
//	}
//	path := string(buf[:n])
//
// Or skip buffer management entirely:
//
//	path, err := tmpnam.Name()
//
// Advanced Usage with Options:
//
//	cfg, err := namesource.Load() // TMPNAM_* environment variables
//	if err != nil {
//		// handle err
//	}
//
//	gen := tmpnam.New(
//		tmpnam.WithSource(namesource.NewUUID(cfg)),
//		tmpnam.WithBudget(tmpnam.NewCallBudget(1000)),
//		tmpnam.WithMaxNameLen(128),
//		tmpnam.WithPadding(),
//	)
//	n, err := gen.Generate(buf)
//
// Concurrency:
//
// A Generator keeps unsynchronized state between calls, exactly like the
// static buffer and counter of the C routine it models. Callers either
// confine a Generator to one goroutine or wrap it:
//
//	shared := tmpnam.Locked(tmpnam.New())
//	go func() { _, _ = shared.Name() }()
//
// Violation Handling:
//
// Failed calls report through the constraint package before returning. The
// default handler logs with log/slog; install another one to ignore, panic,
// or capture:
//
//	prev := constraint.Set(constraint.Ignore)
//	defer constraint.Set(prev)
//
// Prefer os.CreateTemp when a file handle is acceptable: a name without an
// open file is inherently racy. This package exists for the cases that
// genuinely need only a name, such as handing a path to an external
// process.
package tmpnam
