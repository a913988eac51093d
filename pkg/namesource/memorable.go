package namesource

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"path/filepath"
	"time"
)

// Memorable generates human-readable candidate names of the form
// prefix-adjective-noun-suffix, for example "tmp-brisk-otter-4f2a1c". The
// word pair makes names easy to spot in directory listings and logs while
// the hex suffix keeps them unique enough for scratch files.
//
// Like every source in this package it reuses an internal buffer between
// calls and is not safe for concurrent use.
type Memorable struct {
	scratch
	dir       string
	prefix    string
	verifyDir bool
}

// NewMemorable builds a Memorable source from cfg. An empty directory falls
// back to os.TempDir() and the prefix is sanitized before use.
func NewMemorable(cfg Config) *Memorable {
	return &Memorable{
		dir:       resolveDir(cfg.Dir),
		prefix:    SanitizePrefix(cfg.Prefix),
		verifyDir: cfg.VerifyDir,
	}
}

// Next generates the next candidate name into the internal buffer and
// returns a view of it.
func (m *Memorable) Next() ([]byte, error) {
	if m.verifyDir {
		if err := verifyDir(m.dir); err != nil {
			return nil, err
		}
	}
	name := m.prefix + "-" + pick(adjectives) + "-" + pick(nouns) + "-" + randSuffix()
	return m.set(filepath.Join(m.dir, name)), nil
}

// pick selects a word uniformly without modulo bias, falling back to a
// clock-derived index when the system entropy source is unavailable.
func pick(words []string) string {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(words))))
	if err != nil {
		return words[int(time.Now().UnixNano())%len(words)]
	}
	return words[n.Int64()]
}

// randSuffix returns six hex characters of randomness.
func randSuffix() string {
	var b [3]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("%06x", time.Now().UnixNano()&0xffffff)
	}
	return hex.EncodeToString(b[:])
}
