package namesource

import (
	"errors"
	"os"

	"github.com/dmitrymomot/tmpnam/pkg/memzero"
)

// scratch is the reusable internal buffer every source in this package
// generates into. It reproduces the legacy static-buffer contract: each
// generation overwrites the previous contents, and views handed out are
// valid only until the next call into the source. Access is deliberately
// unsynchronized; serializing calls is the caller's job.
type scratch struct {
	buf []byte
}

// set copies name into the reusable buffer and returns a view of it.
func (s *scratch) set(name string) []byte {
	s.buf = append(s.buf[:0], name...)
	return s.buf
}

// Scrub zeroes the full backing buffer and truncates it to empty, so a stale
// name cannot leak to a later unsynchronized reader.
func (s *scratch) Scrub() {
	memzero.Zero(s.buf[:cap(s.buf)])
	s.buf = s.buf[:0]
}

// resolveDir falls back to the operating system default when no directory is
// configured.
func resolveDir(dir string) string {
	if dir == "" {
		return os.TempDir()
	}
	return dir
}

// verifyDir stats dir and wraps any failure so callers keep access to the
// underlying OS error through errors.As.
func verifyDir(dir string) error {
	if _, err := os.Stat(dir); err != nil {
		return errors.Join(ErrDirUnavailable, err)
	}
	return nil
}
