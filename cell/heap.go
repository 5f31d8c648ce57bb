package cell

import (
	"math"

	"go.uber.org/zap"
)

// Ref is a slot index into a Heap. Slot r lives on page r/pageSlots.
type Ref = uint32

// maxSlots bounds the number of slots a heap can ever hand out.
const maxSlots = math.MaxUint32

// Stats holds heap counters for tests and instrumentation.
type Stats struct {
	AllocCalls    int // Total Alloc() calls
	FreeCalls     int // Total successful releases
	Reused        int // Allocations served from the free list
	Pages         int // Pages created
	Live          int // Allocations minus releases
	StaleDetected int // Releases or lookups rejected with ErrStale
}

// Heap is a paged slot arena for values of type T.
//
// Heap is not safe for concurrent use.
type Heap[T any] struct {
	pageSlots Ref

	// pages hold the values. A page is never reallocated once made.
	pages [][]T

	// gens mirrors pages when generations are enabled, nil otherwise.
	gens [][]uint32

	// next is the first slot that has never been handed out.
	next Ref

	// free is a LIFO stack of released slots.
	free []Ref

	log   *zap.Logger
	stats Stats
}

// NewHeap creates an empty heap. No page is made until the first Alloc.
func NewHeap[T any](opts ...Option) *Heap[T] {
	cfg := newConfig(opts)
	h := &Heap[T]{
		pageSlots: Ref(cfg.pageSlots),
		log:       cfg.log,
	}
	if cfg.generations {
		h.gens = [][]uint32{}
	}
	return h
}

// Alloc stores v in a slot and returns a handle to it. The most recently
// released slot is reused first; otherwise the heap bumps to a fresh slot
// and grows by one page when the last page is full.
//
// Running out of memory is fatal, as with any Go allocation.
func (h *Heap[T]) Alloc(v T) Cell[T] {
	h.stats.AllocCalls++

	var ref Ref
	if n := len(h.free); n > 0 {
		ref = h.free[n-1]
		h.free = h.free[:n-1]
		h.stats.Reused++
	} else {
		if h.next == maxSlots {
			panic("cell: heap slot space exhausted")
		}
		if uint64(h.next) == uint64(len(h.pages))*uint64(h.pageSlots) {
			h.grow()
		}
		ref = h.next
		h.next++
	}

	*h.slot(ref) = v
	h.stats.Live++

	c := Cell[T]{h: h, ref: ref}
	if h.gens != nil {
		c.gen = *h.gen(ref)
	}

	if ce := h.log.Check(zap.DebugLevel, "alloc"); ce != nil {
		ce.Write(zap.Uint32("ref", ref), zap.Uint32("gen", c.gen), zap.Int("live", h.stats.Live))
	}
	return c
}

// Free releases the slot at ref without any generation check. It returns
// ErrBadRef only for indexes this heap never handed out; releasing a slot
// that is already free is not detected.
func (h *Heap[T]) Free(ref Ref) error {
	if ref >= h.next {
		return ErrBadRef
	}
	h.release(ref)
	return nil
}

// At returns a pointer to the slot at ref without any check beyond the
// slice bounds. The pointer is only meaningful while the slot is live.
func (h *Heap[T]) At(ref Ref) *T {
	return h.slot(ref)
}

// Len reports allocations minus releases. Double releases make it drift.
func (h *Heap[T]) Len() int {
	return h.stats.Live
}

// Cap reports the number of slots across all pages.
func (h *Heap[T]) Cap() int {
	return len(h.pages) * int(h.pageSlots)
}

// Generations reports whether the heap tracks slot generations.
func (h *Heap[T]) Generations() bool {
	return h.gens != nil
}

// Stats returns a snapshot of the heap counters.
func (h *Heap[T]) Stats() Stats {
	s := h.stats
	s.Pages = len(h.pages)
	return s
}

func (h *Heap[T]) grow() {
	h.pages = append(h.pages, make([]T, h.pageSlots))
	if h.gens != nil {
		h.gens = append(h.gens, make([]uint32, h.pageSlots))
	}
	if ce := h.log.Check(zap.DebugLevel, "grow"); ce != nil {
		ce.Write(zap.Int("page", len(h.pages)-1), zap.Uint32("slots", h.pageSlots))
	}
}

func (h *Heap[T]) release(ref Ref) {
	var zero T
	*h.slot(ref) = zero
	if h.gens != nil {
		*h.gen(ref)++
	}
	h.free = append(h.free, ref)
	h.stats.Live--
	h.stats.FreeCalls++

	if ce := h.log.Check(zap.DebugLevel, "free"); ce != nil {
		ce.Write(zap.Uint32("ref", ref), zap.Int("live", h.stats.Live))
	}
}

// checkGen reports whether gen still matches the slot at ref. Heaps without
// generations accept every handle.
func (h *Heap[T]) checkGen(ref Ref, gen uint32) bool {
	if h.gens == nil {
		return true
	}
	if ref >= h.next || *h.gen(ref) != gen {
		h.stats.StaleDetected++
		return false
	}
	return true
}

func (h *Heap[T]) slot(ref Ref) *T {
	return &h.pages[ref/h.pageSlots][ref%h.pageSlots]
}

func (h *Heap[T]) gen(ref Ref) *uint32 {
	return &h.gens[ref/h.pageSlots][ref%h.pageSlots]
}
