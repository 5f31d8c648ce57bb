//go:build linux || darwin || freebsd || netbsd || openbsd

package offheap

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// mapRegion maps n bytes of private anonymous read/write memory.
func mapRegion(n int) ([]byte, error) {
	b, err := unix.Mmap(-1, 0, n, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("%w: mmap %d bytes: %w", ErrMap, n, err)
	}
	return b, nil
}

// unmapRegion returns a region obtained from mapRegion. b must span the
// whole mapping.
func unmapRegion(b []byte) error {
	if err := unix.Munmap(b); err != nil {
		return fmt.Errorf("%w: munmap %d bytes: %w", ErrMap, len(b), err)
	}
	return nil
}
