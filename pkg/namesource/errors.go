package namesource

import "errors"

var (
	// ErrDirUnavailable indicates the target directory could not be
	// verified. The joined error chain carries the underlying OS error.
	ErrDirUnavailable = errors.New("target directory unavailable")

	// ErrFailedToParseConfig indicates the environment-based configuration
	// could not be parsed.
	ErrFailedToParseConfig = errors.New("failed to parse name source config")
)
