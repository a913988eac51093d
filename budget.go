package tmpnam

// CallBudget counts name generation attempts toward a fixed ceiling. Once
// the ceiling is reached every further attempt fails, mirroring the hard
// TMP_MAX-style limit of the C library routine this package hardens.
//
// A CallBudget is not synchronized. Callers that share one across
// goroutines serialize access themselves; LockedGenerator does that for
// calls made through it.
type CallBudget struct {
	attempts int64
	limit    int64
}

// NewCallBudget returns a budget allowing up to limit attempts. A negative
// limit is treated as zero, which makes every attempt fail.
func NewCallBudget(limit int64) *CallBudget {
	if limit < 0 {
		limit = 0
	}
	return &CallBudget{limit: limit}
}

// Consume records one attempt and reports whether the ceiling still holds.
// The attempt is recorded even when the answer is false, so repeated calls
// against an exhausted budget keep counting.
func (b *CallBudget) Consume() bool {
	b.attempts++
	return b.attempts <= b.limit
}

// Attempts returns the number of attempts recorded so far, including the
// ones made after exhaustion.
func (b *CallBudget) Attempts() int64 {
	return b.attempts
}

// Limit returns the ceiling this budget enforces.
func (b *CallBudget) Limit() int64 {
	return b.limit
}

// Remaining returns the number of attempts left before exhaustion, never
// negative.
func (b *CallBudget) Remaining() int64 {
	if b.attempts >= b.limit {
		return 0
	}
	return b.limit - b.attempts
}

// Reset zeroes the attempt counter. It exists for tests and long-lived
// tools that deliberately reopen the budget; the process-wide DefaultBudget
// is normally never reset.
func (b *CallBudget) Reset() {
	b.attempts = 0
}

// DefaultBudget is the process-wide budget shared by every Generator that
// does not override it with WithBudget. Once it is exhausted, every further
// default generation in the process fails. Generators sharing it across
// goroutines must be serialized externally; LockedGenerator covers only
// calls made through itself.
var DefaultBudget = NewCallBudget(MaxNames)
