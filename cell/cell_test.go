package cell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type foo struct {
	X uint
	Y float32
}

func (f *foo) Sum() float32 {
	return f.Y + float32(f.X)
}

func (f *foo) Zero() {
	f.X = 0
	f.Y = 0.0
}

func TestCell_Integer(t *testing.T) {
	v := New(5)
	require.Equal(t, 5, v.Get())

	v.Set(10)
	require.Equal(t, 10, v.Get())

	k := v.Clone()
	k.Set(30)

	assert.Equal(t, 30, v.Get())
	assert.Equal(t, 30, k.Get())
	require.NoError(t, k.Free())
}

func TestCell_Struct(t *testing.T) {
	v := New(foo{X: 50, Y: 3.14})
	require.Equal(t, uint(50), v.Ptr().X)
	require.Equal(t, float32(3.14), v.Ptr().Y)

	k := v.Clone()

	v.Ptr().X = 30
	v.Ptr().Y = -1.5

	assert.Equal(t, uint(30), v.Ptr().X)
	assert.Equal(t, float32(-1.5), v.Ptr().Y)
	assert.Equal(t, uint(30), k.Ptr().X)
	assert.Equal(t, float32(-1.5), k.Ptr().Y)

	assert.Equal(t, float32(28.5), v.Ptr().Sum())
	assert.Equal(t, float32(28.5), k.Ptr().Sum())

	v.Ptr().Zero()
	assert.Equal(t, float32(0.0), v.Ptr().Sum())
	assert.Equal(t, float32(0.0), k.Ptr().Sum())
}

func TestCell_ReadBackEqualsInput(t *testing.T) {
	for _, in := range []int64{0, 1, -1, 42, 1 << 40, -1 << 62} {
		c := New(in)
		assert.Equal(t, in, c.Get())

		c.Set(in + 7)
		assert.Equal(t, in+7, c.Get())
	}
}

func TestCell_AliasingIsBidirectional(t *testing.T) {
	h1 := New("first")
	h2 := h1.Clone()

	h2.Set("through h2")
	assert.Equal(t, "through h2", h1.Get())

	h1.Set("through h1")
	assert.Equal(t, "through h1", h2.Get())

	assert.True(t, h1.Same(h2))
	assert.Equal(t, h1.Ref(), h2.Ref())
}

func TestCell_ChainedDuplication(t *testing.T) {
	h1 := New(1.0)
	h2 := h1.Clone()
	h3 := h2.Clone()
	h4 := h3

	h4.Set(2.5)
	for _, h := range []Cell[float64]{h1, h2, h3, h4} {
		assert.Equal(t, 2.5, h.Get())
	}
}

func TestCell_CloneDoesNotAllocate(t *testing.T) {
	h := NewHeap[int]()
	c := h.Alloc(1)
	before := h.Stats()

	for i := 0; i < 10; i++ {
		_ = c.Clone()
	}

	require.Equal(t, before, h.Stats())
	require.Equal(t, 1, h.Len())
}

func TestCell_NestedHandles(t *testing.T) {
	type node struct {
		Val  int
		Next Cell[int]
	}
	inner := New(7)
	outer := New(node{Val: 1, Next: inner.Clone()})

	outer.Ptr().Next.Set(8)
	assert.Equal(t, 8, inner.Get())
}

func TestCell_ZeroValuePanics(t *testing.T) {
	var c Cell[int]
	require.Panics(t, func() { _ = c.Get() })
}
