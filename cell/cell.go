package cell

// Cell is a handle to one slot of a Heap. Copying a Cell, or calling Clone,
// yields another handle to the same slot; no value is copied.
//
// The zero Cell designates nothing and panics on access.
type Cell[T any] struct {
	h   *Heap[T]
	ref Ref
	gen uint32
}

// New stores v in a heap sized for exactly one value and returns a handle
// to it.
func New[T any](v T, opts ...Option) Cell[T] {
	opts = append([]Option{WithPageSlots(1)}, opts...)
	return NewHeap[T](opts...).Alloc(v)
}

// Clone returns another handle to the same slot. It performs no allocation.
func (c Cell[T]) Clone() Cell[T] {
	return c
}

// Get returns a copy of the current value.
func (c Cell[T]) Get() T {
	return *c.h.slot(c.ref)
}

// Ptr returns a pointer to the stored value. Writes through it are seen by
// every handle to the slot.
func (c Cell[T]) Ptr() *T {
	return c.h.slot(c.ref)
}

// Set overwrites the stored value.
func (c Cell[T]) Set(v T) {
	*c.h.slot(c.ref) = v
}

// Load is Get with a generation check. On heaps without generations it
// never fails.
func (c Cell[T]) Load() (T, error) {
	if !c.h.checkGen(c.ref, c.gen) {
		var zero T
		return zero, ErrStale
	}
	return *c.h.slot(c.ref), nil
}

// Lookup is Ptr with a generation check. On heaps without generations it
// never fails.
func (c Cell[T]) Lookup() (*T, error) {
	if !c.h.checkGen(c.ref, c.gen) {
		return nil, ErrStale
	}
	return c.h.slot(c.ref), nil
}

// Free releases the slot. Other handles to it are not told.
//
// On heaps built WithGenerations, releasing through a stale handle returns
// ErrStale and leaves the slot alone. Otherwise Free always returns nil,
// including on a second release.
func (c Cell[T]) Free() error {
	if !c.h.checkGen(c.ref, c.gen) {
		return ErrStale
	}
	c.h.release(c.ref)
	return nil
}

// Ref returns the slot index.
func (c Cell[T]) Ref() Ref {
	return c.ref
}

// Generation returns the slot generation the handle was created with.
// Always 0 on heaps without generations.
func (c Cell[T]) Generation() uint32 {
	return c.gen
}

// Heap returns the heap that owns the slot.
func (c Cell[T]) Heap() *Heap[T] {
	return c.h
}

// Same reports whether c and o designate the same slot.
func (c Cell[T]) Same(o Cell[T]) bool {
	return c.h == o.h && c.ref == o.ref
}
