// Package align rounds allocation sizes to slot and page boundaries.
package align

import "os"

// SlotAlignment is the boundary every cell slot starts on.
const SlotAlignment = 8

// Up returns n rounded up to the next multiple of a. a must be a power of two.
//
// Example:
//
//	Up(1, 8)    = 8
//	Up(8, 8)    = 8
//	Up(9, 8)    = 16
//	Up(4097, 4096) = 8192
func Up(n, a int) int {
	return (n + a - 1) & ^(a - 1)
}

// Slot returns the slot size for a value of n bytes: 8-byte aligned and
// never smaller than SlotAlignment, so zero-sized types still get a
// distinct address.
func Slot(n uintptr) uintptr {
	if n < SlotAlignment {
		return SlotAlignment
	}
	return (n + SlotAlignment - 1) &^ (SlotAlignment - 1)
}

// Page returns n rounded up to the operating system page size.
// Page(0) is one page.
func Page(n int) int {
	ps := os.Getpagesize()
	if n <= 0 {
		return ps
	}
	return Up(n, ps)
}
