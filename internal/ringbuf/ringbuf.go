// package ringbuf provides a FIFO backed by a circular slice.
package ringbuf

// RingBuf is a double ended queue. The zero value is an empty queue ready to use.
// It grows when a push would overflow it.
type RingBuf[T any] struct {
	buf     []T
	head, n int
}

func New[T any](n int) RingBuf[T] {
	return RingBuf[T]{buf: make([]T, n)}
}

// FromSlice returns a RingBuf containing xs, with xs[0] at the front.
func FromSlice[T any](xs []T) RingBuf[T] {
	rb := New[T](len(xs))
	for _, x := range xs {
		rb.PushBack(x)
	}
	return rb
}

func (rb *RingBuf[T]) MaxLen() int {
	return len(rb.buf)
}

func (rb *RingBuf[T]) PushBack(val T) {
	if rb.n == len(rb.buf) {
		rb.grow()
	}
	rb.buf[(rb.head+rb.n)%len(rb.buf)] = val
	rb.n++
}

func (rb *RingBuf[T]) PushFront(val T) {
	if rb.n == len(rb.buf) {
		rb.grow()
	}
	rb.head = (rb.head - 1 + len(rb.buf)) % len(rb.buf)
	rb.buf[rb.head] = val
	rb.n++
}

func (rb *RingBuf[T]) PopFront() T {
	val := rb.At(0)
	var zero T
	rb.buf[rb.head] = zero
	rb.head = (rb.head + 1) % len(rb.buf)
	rb.n--
	return val
}

func (rb *RingBuf[T]) PopBack() T {
	val := rb.At(rb.n - 1)
	var zero T
	rb.buf[(rb.head+rb.n-1)%len(rb.buf)] = zero
	rb.n--
	return val
}

// At returns the i-th element from the front. It panics if i is out of range.
func (rb *RingBuf[T]) At(i int) T {
	if i < 0 || i >= rb.n {
		panic(i)
	}
	return rb.buf[(rb.head+i)%len(rb.buf)]
}

func (rb *RingBuf[T]) Len() int {
	return rb.n
}

// Clear removes all elements, keeping the allocation.
func (rb *RingBuf[T]) Clear() {
	clear(rb.buf)
	rb.head, rb.n = 0, 0
}

// Clone returns a RingBuf with the same elements which shares no memory with rb.
func (rb *RingBuf[T]) Clone() RingBuf[T] {
	ret := New[T](rb.n)
	for i := 0; i < rb.n; i++ {
		ret.PushBack(rb.At(i))
	}
	return ret
}

func (rb *RingBuf[T]) grow() {
	size := 2 * len(rb.buf)
	if size == 0 {
		size = 4
	}
	buf := make([]T, size)
	for i := 0; i < rb.n; i++ {
		buf[i] = rb.buf[(rb.head+i)%len(rb.buf)]
	}
	rb.buf = buf
	rb.head = 0
}
