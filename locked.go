package tmpnam

import "sync"

// LockedGenerator serializes access to a Generator with a mutex so it can
// be shared across goroutines. The lock covers only calls made through the
// wrapper: the wrapped Generator, its budget, and its source must not be
// used directly while the wrapper is in service, and two generators sharing
// one budget still need external coordination.
type LockedGenerator struct {
	mu  sync.Mutex
	gen *Generator
}

// Locked wraps gen for concurrent use. A nil gen gets a fresh default
// Generator.
func Locked(gen *Generator) *LockedGenerator {
	if gen == nil {
		gen = New()
	}
	return &LockedGenerator{gen: gen}
}

// Generate acquires the lock and generates into dst. See
// Generator.Generate for the full contract.
func (l *LockedGenerator) Generate(dst []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.gen.Generate(dst)
}

// Name acquires the lock and returns a generated name as a string. See
// Generator.Name.
func (l *LockedGenerator) Name() (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.gen.Name()
}
