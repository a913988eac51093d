// Package namesource provides pluggable generators of candidate temporary
// file names. Each source renders names into a reusable internal buffer,
// reproducing the static-buffer contract of the classic C library tmpnam
// routine that the parent package hardens.
//
// # Sources
//
//   - Classic: prefix plus nine decimal digits from a linear congruential
//     sequence, the traditional tmpnam(3) shape.
//   - UUID: prefix plus a random UUID for practical collision resistance.
//   - Memorable: prefix plus an adjective-noun pair and a short hex suffix,
//     easy to spot in directory listings.
//
// # Buffer Reuse
//
// The byte slice returned by Next aliases the source's internal buffer and
// is only valid until the next call into the same source. Callers that need
// the name afterwards must copy it out. Scrub zeroes the buffer so a stale
// name cannot be observed later. No source is safe for concurrent use;
// callers serialize access themselves.
//
// # Configuration
//
// All sources share the same Config, loadable from the environment:
//
//	TMPNAM_DIR        target directory (default: os.TempDir())
//	TMPNAM_PREFIX     name prefix (default: "tmp")
//	TMPNAM_VERIFY_DIR stat the directory on every generation (default: false)
//
// Prefixes are sanitized with SanitizePrefix before use, so configuration
// can never inject path separators or hidden-file names.
//
// # Usage
//
//	cfg, err := namesource.Load()
//	if err != nil {
//		// handle error
//	}
//
//	src := namesource.NewClassic(cfg)
//	name, err := src.Next()
//	if err != nil {
//		// handle error
//	}
//	fmt.Println(string(name)) // e.g. /tmp/tmp123456789
package namesource
