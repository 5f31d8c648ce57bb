package offheap

import "unsafe"

// Cell is a raw handle to one T in mapped memory. Copies and clones of a
// Cell share the address.
type Cell[T any] struct {
	p *T

	// a is the owning arena, nil for cells made by New.
	a *Arena[T]
}

// New maps a region sized for one T, rounded to the page size, and writes v
// into it.
func New[T any](v T) (Cell[T], error) {
	if err := checkType[T](); err != nil {
		return Cell[T]{}, err
	}
	region, err := mapRegion(standaloneSize[T]())
	if err != nil {
		return Cell[T]{}, err
	}
	p := (*T)(unsafe.Pointer(&region[0]))
	*p = v
	return Cell[T]{p: p}, nil
}

// Clone returns another handle to the same address.
func (c Cell[T]) Clone() Cell[T] {
	return c
}

// Get returns a copy of the current value.
func (c Cell[T]) Get() T {
	return *c.p
}

// Ptr returns the raw pointer. Writes through it are seen by every handle.
func (c Cell[T]) Ptr() *T {
	return c.p
}

// Set overwrites the stored value.
func (c Cell[T]) Set(v T) {
	*c.p = v
}

// Addr returns the address of the value.
func (c Cell[T]) Addr() uintptr {
	return uintptr(unsafe.Pointer(c.p))
}

// Same reports whether c and o designate the same address.
func (c Cell[T]) Same(o Cell[T]) bool {
	return c.p == o.p
}

// Free releases the memory. A cell made by New has its pages unmapped; an
// arena cell's slot goes back on the arena free list. Other handles are not
// told, and a second Free through any of them is undefined.
func (c Cell[T]) Free() error {
	if c.a != nil {
		return c.a.release(unsafe.Pointer(c.p))
	}
	return unmapRegion(unsafe.Slice((*byte)(unsafe.Pointer(c.p)), standaloneSize[T]()))
}
