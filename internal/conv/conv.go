// Package conv provides safe integer conversion helpers for the NFA builder.
//
// State identifiers are allocated monotonically as a slice grows, so the
// only narrowing conversion the engine ever needs is int -> uint32. This
// panics on overflow since it indicates a programming error (a pattern
// that produced more states than the StateID space can address).
package conv

import "math"

// IntToUint32 safely converts an int to uint32.
// Panics if n < 0 or n > math.MaxUint32.
func IntToUint32(n int) uint32 {
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("rexnfa: state count exceeds uint32 range")
	}
	return uint32(n)
}
