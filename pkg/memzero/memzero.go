package memzero

// Zero sets every byte of b to zero. It is a no-op for empty or nil slices.
func Zero(b []byte) {
	clear(b)
}

// IsZero reports whether every byte of b is zero. It returns true for empty
// or nil slices.
func IsZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}
