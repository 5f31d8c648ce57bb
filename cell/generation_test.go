package cell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerations_StaleHandleDetected(t *testing.T) {
	h := NewHeap[int](WithGenerations())
	require.True(t, h.Generations())

	v := h.Alloc(5)
	k := v.Clone()

	got, err := k.Load()
	require.NoError(t, err)
	require.Equal(t, 5, got)

	require.NoError(t, k.Free())

	_, err = v.Load()
	require.ErrorIs(t, err, ErrStale)
	_, err = v.Lookup()
	require.ErrorIs(t, err, ErrStale)
	require.Equal(t, 2, h.Stats().StaleDetected)
}

func TestGenerations_DoubleFreeRejected(t *testing.T) {
	h := NewHeap[int](WithGenerations())
	v := h.Alloc(1)
	k := v.Clone()

	require.NoError(t, v.Free())
	require.ErrorIs(t, k.Free(), ErrStale)

	a := h.Alloc(2)
	b := h.Alloc(3)
	assert.NotEqual(t, a.Ref(), b.Ref(), "slot must be on the free list once")
}

func TestGenerations_ReusedSlotGetsNewGeneration(t *testing.T) {
	h := NewHeap[string](WithGenerations())
	old := h.Alloc("old")
	require.NoError(t, old.Free())

	fresh := h.Alloc("fresh")
	require.Equal(t, old.Ref(), fresh.Ref())
	require.Equal(t, old.Generation()+1, fresh.Generation())

	p, err := fresh.Lookup()
	require.NoError(t, err)
	require.Equal(t, "fresh", *p)
}

func TestGenerations_UncheckedHeapAcceptsEverything(t *testing.T) {
	h := NewHeap[int]()
	require.False(t, h.Generations())

	v := h.Alloc(1)
	require.NoError(t, v.Free())
	require.NoError(t, v.Free())

	_, err := v.Load()
	require.NoError(t, err)
	require.Zero(t, v.Generation())
}

func TestGenerations_NewAcceptsOptions(t *testing.T) {
	v := New(9, WithGenerations())
	require.True(t, v.Heap().Generations())
	require.Equal(t, 1, v.Heap().Cap())
}

func TestUnchecked_DoubleFreeAliasesLaterCells(t *testing.T) {
	h := NewHeap[int]()
	v := h.Alloc(1)

	require.NoError(t, v.Free())
	require.NoError(t, v.Free())
	require.Equal(t, -1, h.Len())

	a := h.Alloc(2)
	b := h.Alloc(3)

	require.True(t, a.Same(b), "slot was on the free list twice")
	require.Equal(t, 3, a.Get())
	require.Equal(t, 1, h.Len(), "two allocs after two frees of one slot")
	require.Equal(t, 2, h.Stats().Reused)
	require.Equal(t, DefaultPageSlots, h.Cap())
}
