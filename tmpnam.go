package tmpnam

import (
	"errors"
	"sync"

	"github.com/dmitrymomot/tmpnam/pkg/constraint"
	"github.com/dmitrymomot/tmpnam/pkg/memzero"
	"github.com/dmitrymomot/tmpnam/pkg/namesource"
)

const (
	// MaxCapacity is the largest destination buffer Generate accepts.
	MaxCapacity = 4096

	// DefaultMaxNameLen is the default ceiling on generated name length,
	// adjustable per generator with WithMaxNameLen.
	DefaultMaxNameLen = 255

	// MaxNames is the limit of the process-wide DefaultBudget, matching
	// the traditional TMP_MAX value of mainstream C libraries.
	MaxNames = 238328
)

// Source produces candidate temporary names. Implementations render into an
// internal reusable buffer: the slice returned by Next is valid only until
// the next call into the same source, and Scrub zeroes that buffer so a
// rejected name cannot linger in memory. Sources are not required to be
// safe for concurrent use; see the namesource package for the stock
// implementations.
type Source interface {
	// Next returns the next candidate name, or an error when no name can
	// be produced. A successful call must return a non-empty slice.
	Next() ([]byte, error)

	// Scrub zeroes the source's internal buffer.
	Scrub()
}

// Generator issues temporary file names into caller-provided buffers with
// the argument checking, budget enforcement, and scrubbing guarantees the
// plain C library tmpnam routine lacks.
//
// A Generator is not safe for concurrent use: its budget and its source
// keep unsynchronized state between calls. Wrap it with Locked when it has
// to be shared across goroutines.
type Generator struct {
	source     Source
	budget     *CallBudget
	maxNameLen int
	padding    bool
	notify     constraint.Handler
}

// New constructs a Generator. Without options it draws names from a fresh
// classic source over the operating system default temporary directory,
// consumes the process-wide DefaultBudget, and reports violations to the
// constraint package handler.
func New(opts ...Option) *Generator {
	g := &Generator{
		budget:     DefaultBudget,
		maxNameLen: DefaultMaxNameLen,
		notify:     constraint.Notify,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.source == nil {
		g.source = namesource.NewClassic(namesource.Config{})
	}
	return g
}

// Generate fills dst with a freshly generated temporary name and returns
// the name's length in bytes. The name is not NUL terminated; dst[:n] is
// the result.
//
// Every failing call reports its violation kind exactly once through the
// generator's notify handler and returns the same error value. The
// destination is handled per failure class:
//
//   - nil dst, zero-length dst, or dst longer than the allowed maximum:
//     the call fails before consuming budget and writes nothing.
//   - exhausted budget: the attempt is still counted and dst[0] is zeroed.
//   - source failure: the attempt is counted, dst stays untouched, and the
//     returned error joins ErrSourceFailed with the source's own error.
//   - generated name too long for dst or for the configured maximum: the
//     attempt is counted, the source buffer is scrubbed, and dst[0] is
//     zeroed.
//
// On success the name is copied into dst and, when the generator was built
// with WithPadding, the remainder of dst is zero-filled.
func (g *Generator) Generate(dst []byte) (int, error) {
	if dst == nil {
		return 0, g.fail("tmpnam: destination buffer is nil", nil, ErrNilBuffer)
	}
	if len(dst) == 0 {
		return 0, g.fail("tmpnam: destination buffer has zero capacity", nil, ErrZeroCapacity)
	}
	if len(dst) > MaxCapacity || len(dst) > g.maxNameLen {
		return 0, g.fail("tmpnam: destination capacity exceeds maximum", len(dst), ErrCapacityExceeded)
	}

	if !g.budget.Consume() {
		dst[0] = 0
		return 0, g.fail("tmpnam: name budget exhausted", g.budget.Attempts(), ErrCapacityExceeded)
	}

	name, err := g.source.Next()
	if err != nil {
		return 0, g.fail("tmpnam: name source failed", nil, errors.Join(ErrSourceFailed, err))
	}
	if len(name) == 0 {
		return 0, g.fail("tmpnam: name source returned no name", nil, ErrSourceFailed)
	}

	if len(name) > len(dst) {
		g.source.Scrub()
		dst[0] = 0
		return 0, g.fail("tmpnam: generated name exceeds destination capacity", len(name), ErrBufferTooSmall)
	}
	if len(name) > g.maxNameLen {
		g.source.Scrub()
		dst[0] = 0
		return 0, g.fail("tmpnam: generated name exceeds maximum length", len(name), ErrCapacityExceeded)
	}

	n := copy(dst, name)
	if g.padding {
		memzero.Zero(dst[n:])
	}
	return n, nil
}

// Name generates a name into a buffer sized to the generator's maximum name
// length and returns it as a string.
func (g *Generator) Name() (string, error) {
	buf := make([]byte, g.maxNameLen)
	n, err := g.Generate(buf)
	if err != nil {
		return "", err
	}
	return string(buf[:n]), nil
}

// fail reports the violation through the notify handler and returns the
// same error value to the caller.
func (g *Generator) fail(msg string, detail any, err error) error {
	g.notify(msg, detail, err)
	return err
}

// defaultGenerator backs the package-level Generate and Name. It is built
// on first use so TMPDIR changes made during program startup are honored.
var defaultGenerator = sync.OnceValue(func() *Generator {
	return New()
})

// Generate fills dst using the package-wide default generator. See
// Generator.Generate for the full contract.
func Generate(dst []byte) (int, error) {
	return defaultGenerator().Generate(dst)
}

// Name returns a temporary name from the package-wide default generator.
func Name() (string, error) {
	return defaultGenerator().Name()
}
