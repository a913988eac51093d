package namesource

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultPrefix is used whenever a configured prefix sanitizes to nothing.
const DefaultPrefix = "tmp"

// maxPrefixLen bounds the sanitized prefix so names keep room for their
// directory and suffix parts.
const maxPrefixLen = 64

// SanitizePrefix reduces a caller-supplied prefix to a filesystem-safe
// ASCII token. Diacritics are folded to their base letters, everything
// outside [a-zA-Z0-9._-] is dropped, dots are trimmed from both ends so the
// result can never be ".", ".." or a hidden-file name, and the result is
// capped at 64 characters. An empty result falls back to DefaultPrefix.
func SanitizePrefix(s string) string {
	// The chain carries transform state, so it is built per call rather
	// than shared.
	foldMarks := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(foldMarks, s); err == nil {
		s = folded
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_' || r == '.':
			b.WriteRune(r)
		}
		if b.Len() >= maxPrefixLen {
			break
		}
	}

	out := strings.Trim(b.String(), ".")
	if out == "" {
		return DefaultPrefix
	}
	return out
}
