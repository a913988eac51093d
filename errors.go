package tmpnam

import "errors"

// Violation kinds returned by Generate. Source failures carry the
// underlying cause joined into the chain, so errors.Is and errors.As see
// both the kind and the OS-level detail.
var (
	// ErrNilBuffer reports a nil destination buffer.
	ErrNilBuffer = errors.New("destination buffer is nil")

	// ErrZeroCapacity reports a destination buffer with no capacity.
	ErrZeroCapacity = errors.New("destination buffer has zero capacity")

	// ErrCapacityExceeded reports a destination capacity above the allowed
	// maximum, an exhausted name budget, or a generated name longer than
	// the configured maximum length.
	ErrCapacityExceeded = errors.New("allowed maximum exceeded")

	// ErrBufferTooSmall reports a generated name that does not fit the
	// destination buffer.
	ErrBufferTooSmall = errors.New("generated name exceeds destination capacity")

	// ErrSourceFailed reports a name source that returned an error or an
	// empty name.
	ErrSourceFailed = errors.New("name source failed")
)
