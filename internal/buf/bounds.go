// Package buf contains overflow-safe size arithmetic for raw allocations.
package buf

import (
	"fmt"
	"math"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies two non-negative ints, returning ok = false when
// the result would overflow int or either operand is negative.
func MulOverflowSafe(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// Span returns the number of bytes occupied by count elements of size bytes.
// It is the check to run before asking the OS for count*size bytes:
//
//	n, err := buf.Span(slots, int(slotSize))
//	if err != nil {
//	    return fmt.Errorf("region: %w", err)
//	}
func Span(count, size int) (int, error) {
	if count < 0 {
		return 0, fmt.Errorf("negative count: %d", count)
	}
	if size < 0 {
		return 0, fmt.Errorf("negative element size: %d", size)
	}
	total, ok := MulOverflowSafe(count, size)
	if !ok {
		return 0, fmt.Errorf("overflow: count=%d * size=%d", count, size)
	}
	return total, nil
}
