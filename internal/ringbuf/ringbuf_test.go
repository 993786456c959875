package ringbuf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFIFO(t *testing.T) {
	rb := New[int](2)
	for i := 0; i < 10; i++ {
		rb.PushBack(i)
	}
	require.Equal(t, 10, rb.Len())
	for i := 0; i < 10; i++ {
		require.Equal(t, i, rb.PopFront())
	}
	require.Equal(t, 0, rb.Len())
}

func TestZeroValue(t *testing.T) {
	var rb RingBuf[string]
	rb.PushBack("b")
	rb.PushFront("a")
	rb.PushBack("c")
	require.Equal(t, "a", rb.At(0))
	require.Equal(t, "c", rb.PopBack())
	require.Equal(t, "a", rb.PopFront())
	require.Equal(t, "b", rb.PopFront())
	require.Equal(t, 0, rb.Len())
}

func TestWrapAround(t *testing.T) {
	rb := New[int](4)
	// move head off zero before growing so grow has to unwrap.
	rb.PushBack(0)
	rb.PushBack(1)
	rb.PopFront()
	for i := 2; i < 7; i++ {
		rb.PushBack(i)
	}
	var got []int
	for rb.Len() > 0 {
		got = append(got, rb.PopFront())
	}
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, got)
}

func TestCloneIsolated(t *testing.T) {
	rb := FromSlice([]int{1, 2, 3})
	c := rb.Clone()
	rb.PopFront()
	rb.PushBack(4)
	require.Equal(t, 3, c.Len())
	require.Equal(t, 1, c.At(0))
	require.Equal(t, 3, c.At(2))
}

func TestClear(t *testing.T) {
	rb := FromSlice([]int{1, 2, 3})
	rb.Clear()
	require.Equal(t, 0, rb.Len())
	rb.PushBack(9)
	require.Equal(t, 9, rb.PopFront())
}

func TestAtOutOfRange(t *testing.T) {
	rb := FromSlice([]int{1})
	require.Panics(t, func() { rb.At(1) })
	rb.PopFront()
	require.Panics(t, func() { rb.PopFront() })
}
