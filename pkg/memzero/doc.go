// Package memzero provides explicit zeroization helpers for byte buffers.
//
// Code that hands out or scrubs sensitive byte regions (scratch buffers,
// generated names, key material) should state that intent in one place
// instead of scattering ad-hoc clearing loops. This package is that place:
// Zero wipes a region, IsZero verifies one.
//
// # Usage
//
//	buf := make([]byte, 64)
//	copy(buf, secret)
//	// ... use buf ...
//	memzero.Zero(buf)
//
// Zero always writes the full region it is given; callers control the region
// by slicing. Zeroing the unused tail of a buffer after writing n bytes:
//
//	memzero.Zero(buf[n:])
package memzero
