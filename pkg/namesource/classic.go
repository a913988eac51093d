package namesource

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Classic generates candidate names the way the historical tmpnam(3) family
// did: a configured prefix followed by nine decimal digits drawn from a
// linear congruential sequence seeded from the clock and the process id.
//
// Names are written into an internal reusable buffer, so the view returned
// by Next is valid only until the next call. Classic is not safe for
// concurrent use.
type Classic struct {
	scratch
	dir       string
	prefix    string
	verifyDir bool
	rnd       uint32
}

// NewClassic builds a Classic source from cfg. An empty directory falls back
// to os.TempDir() and the prefix is sanitized before use.
func NewClassic(cfg Config) *Classic {
	return &Classic{
		dir:       resolveDir(cfg.Dir),
		prefix:    SanitizePrefix(cfg.Prefix),
		verifyDir: cfg.VerifyDir,
	}
}

// Next generates the next candidate name into the internal buffer and
// returns a view of it. When directory verification is enabled and the
// directory cannot be stat'ed, it returns an error joined with the OS error
// and leaves the buffer untouched.
func (c *Classic) Next() ([]byte, error) {
	if c.verifyDir {
		if err := verifyDir(c.dir); err != nil {
			return nil, err
		}
	}
	return c.set(filepath.Join(c.dir, c.prefix+c.nextSuffix())), nil
}

// nextSuffix advances the generator state and renders it as exactly nine
// decimal digits.
func (c *Classic) nextSuffix() string {
	r := c.rnd
	if r == 0 {
		r = uint32(time.Now().UnixNano() + int64(os.Getpid()))
	}
	r = r*1664525 + 1013904223 // constants from Numerical Recipes
	c.rnd = r
	return strconv.Itoa(int(1e9 + r%1e9))[1:]
}
