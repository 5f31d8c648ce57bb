// Package offheap provides aliasing cells in memory mapped directly from the
// operating system, outside the Go heap.
//
// Each cell is a raw address. Clone copies the address, Free hands the
// memory back, and nothing tracks how many handles remain. After Free,
// touching the memory through any surviving handle is undefined: a
// standalone cell's pages are unmapped and fault, an arena slot may already
// hold someone else's value.
//
// Because the Go collector never scans mapped memory, T must not contain
// Go pointers. New and NewArena reject such types with ErrPointerType.
//
// On platforms without anonymous mmap the regions are ordinary Go
// allocations. The semantics are the same except that released memory is
// merely forgotten, never unmapped.
//
// Nothing in this package is safe for concurrent use.
package offheap
