package namesource

import (
	"path/filepath"

	"github.com/google/uuid"
)

// UUID generates candidate names carrying a random UUID, trading the short
// numeric suffix of Classic for practical collision resistance.
//
// Like every source in this package it reuses an internal buffer between
// calls and is not safe for concurrent use.
type UUID struct {
	scratch
	dir       string
	prefix    string
	verifyDir bool
}

// NewUUID builds a UUID source from cfg. An empty directory falls back to
// os.TempDir() and the prefix is sanitized before use.
func NewUUID(cfg Config) *UUID {
	return &UUID{
		dir:       resolveDir(cfg.Dir),
		prefix:    SanitizePrefix(cfg.Prefix),
		verifyDir: cfg.VerifyDir,
	}
}

// Next generates the next candidate name into the internal buffer and
// returns a view of it.
func (u *UUID) Next() ([]byte, error) {
	if u.verifyDir {
		if err := verifyDir(u.dir); err != nil {
			return nil, err
		}
	}
	return u.set(filepath.Join(u.dir, u.prefix+"-"+uuid.NewString())), nil
}
