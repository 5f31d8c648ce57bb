//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd

package offheap

import "unsafe"

// mapRegion allocates n bytes of word-aligned Go memory.
func mapRegion(n int) ([]byte, error) {
	words := make([]uint64, (n+7)/8)
	return unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), n), nil
}

// unmapRegion drops the region. The collector reclaims it once no cell
// points into it.
func unmapRegion(b []byte) error {
	return nil
}
