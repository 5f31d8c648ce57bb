package offheap

import (
	"errors"
	"fmt"
	"unsafe"

	"go.uber.org/zap"

	"github.com/joshuapare/ucell/internal/align"
	"github.com/joshuapare/ucell/internal/buf"
)

// Stats holds arena counters for tests and instrumentation.
type Stats struct {
	AllocCalls  int   // Total Alloc() calls that returned a cell
	FreeCalls   int   // Total slot releases
	Reused      int   // Allocations served from the free list
	Regions     int   // Regions currently mapped
	MappedBytes int64 // Bytes currently mapped
	Live        int   // Allocations minus releases
}

// Arena carves fixed-size slots for values of type T out of mapped regions.
// Slots are handed out by bumping through the newest region; released
// slots go on a LIFO free list and are reused first.
//
// Arena is not safe for concurrent use.
type Arena[T any] struct {
	slotSize   uintptr
	regionSize int

	regions [][]byte

	// off is the bump offset into the newest region.
	off uintptr

	// free holds released slot addresses, most recent last.
	free []unsafe.Pointer

	closed bool
	log    *zap.Logger
	stats  Stats
}

// NewArena creates an arena for T. No memory is mapped until the first
// Alloc. It fails with ErrPointerType when T holds Go pointers.
func NewArena[T any](opts ...Option) (*Arena[T], error) {
	if err := checkType[T](); err != nil {
		return nil, err
	}
	cfg := newConfig(opts)

	slot := slotSize[T]()
	n, err := buf.Span(cfg.regionSlots, int(slot))
	if err != nil {
		return nil, fmt.Errorf("offheap: region size: %w", err)
	}

	return &Arena[T]{
		slotSize:   slot,
		regionSize: align.Page(n),
		log:        cfg.log,
	}, nil
}

// Alloc writes v into a free slot and returns a handle to it.
func (a *Arena[T]) Alloc(v T) (Cell[T], error) {
	if a.closed {
		return Cell[T]{}, ErrClosed
	}

	var p unsafe.Pointer
	if n := len(a.free); n > 0 {
		p = a.free[n-1]
		a.free = a.free[:n-1]
		a.stats.Reused++
	} else {
		end, ok := buf.AddOverflowSafe(int(a.off), int(a.slotSize))
		if len(a.regions) == 0 || !ok || end > a.regionSize {
			if err := a.grow(); err != nil {
				return Cell[T]{}, err
			}
		}
		region := a.regions[len(a.regions)-1]
		p = unsafe.Pointer(&region[a.off])
		a.off += a.slotSize
	}

	tp := (*T)(p)
	*tp = v
	a.stats.AllocCalls++
	a.stats.Live++

	if ce := a.log.Check(zap.DebugLevel, "alloc"); ce != nil {
		ce.Write(zap.Uintptr("addr", uintptr(p)), zap.Int("live", a.stats.Live))
	}
	return Cell[T]{p: tp, a: a}, nil
}

// Len reports allocations minus releases.
func (a *Arena[T]) Len() int {
	return a.stats.Live
}

// SlotSize reports the bytes each cell occupies.
func (a *Arena[T]) SlotSize() int {
	return int(a.slotSize)
}

// Stats returns a snapshot of the arena counters.
func (a *Arena[T]) Stats() Stats {
	s := a.stats
	s.Regions = len(a.regions)
	s.MappedBytes = int64(len(a.regions)) * int64(a.regionSize)
	return s
}

// Close unmaps every region. All cells of the arena die with it.
func (a *Arena[T]) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true

	var errs []error
	for _, r := range a.regions {
		if err := unmapRegion(r); err != nil {
			errs = append(errs, err)
		}
	}
	if ce := a.log.Check(zap.DebugLevel, "close"); ce != nil {
		ce.Write(zap.Int("regions", len(a.regions)))
	}
	a.regions = nil
	a.free = nil
	a.off = 0
	return errors.Join(errs...)
}

func (a *Arena[T]) grow() error {
	r, err := mapRegion(a.regionSize)
	if err != nil {
		return err
	}
	a.regions = append(a.regions, r)
	a.off = 0

	if ce := a.log.Check(zap.DebugLevel, "grow"); ce != nil {
		ce.Write(zap.Int("region", len(a.regions)-1), zap.Int("bytes", a.regionSize))
	}
	return nil
}

// release puts p back on the free list. The slot's bytes are left as they
// were, like free(3).
func (a *Arena[T]) release(p unsafe.Pointer) error {
	if a.closed {
		return ErrClosed
	}
	a.free = append(a.free, p)
	a.stats.Live--
	a.stats.FreeCalls++

	if ce := a.log.Check(zap.DebugLevel, "free"); ce != nil {
		ce.Write(zap.Uintptr("addr", uintptr(p)), zap.Int("live", a.stats.Live))
	}
	return nil
}
