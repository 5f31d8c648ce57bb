// Package cell provides manually released heap cells whose handles alias
// freely.
//
// # Overview
//
// A Cell is a handle to one value of type T stored in a slot of a Heap.
// Handles are plain values: copying one, or calling Clone, produces another
// handle to the same slot. Nothing counts the handles, and any of them may
// read, write or release the slot at any time.
//
//	v := cell.New(5)
//	k := v.Clone()
//	k.Set(30)
//	fmt.Println(v.Get()) // 30
//	k.Free()
//
// # Heaps
//
// New places each cell on a private heap sized for one value. NewHeap gives
// a heap shared by many cells:
//
//	h := cell.NewHeap[Point](cell.WithPageSlots(256))
//	p := h.Alloc(Point{X: 1})
//	p.Ptr().Y = 2 // visible through every alias of p
//
// A heap grows by whole pages of slots. Pages never move, so the pointer
// returned by Ptr stays valid until the slot is released. Released slots go
// on a LIFO free list and the next Alloc reuses them first.
//
// # Release
//
// Free zeroes the slot and hands it back to the heap. Every other handle to
// the slot keeps its index and will observe whatever value next occupies it.
// Releasing the same slot twice puts it on the free list twice, after which
// two unrelated allocations share storage. None of this is detected.
//
// # Generations
//
// WithGenerations attaches a counter to each slot that is bumped on release.
// Handles remember the counter they were created with, and the checked
// accessors (Load, Lookup) and Free report ErrStale for handles that
// outlived their slot. Get, Ptr and Set stay unchecked.
//
// # Thread Safety
//
// Heaps and cells are not safe for concurrent use. Writes through two
// handles from different goroutines race.
package cell
