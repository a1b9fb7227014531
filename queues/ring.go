package queues

import "math/bits"

// Ring is a generic double-ended buffer backed by a circular array.
// It supports amortized O(1) enqueue/dequeue plus O(1) random access to
// any buffered element, which makes it suitable as the backing store for
// lookahead buffers that peek at arbitrary depths before consuming.
type Ring[T any] struct {
	buf  []T // backing array, length == capacity (power of two)
	head int // index of the first element
	size int // number of buffered elements
	mask int // capacity - 1, used for fast modulo: idx & mask
}

// NewRing creates a Ring with at least the specified initial capacity.
func NewRing[T any](initialCapacity int) *Ring[T] {
	if initialCapacity <= 0 {
		initialCapacity = 16
	}

	// round up to the next power of two
	var capacity int
	if initialCapacity <= 1 {
		capacity = 1
	} else {
		capacity = 1 << uint(bits.Len(uint(initialCapacity-1)))
	}

	return &Ring[T]{
		buf:  make([]T, capacity),
		head: 0,
		size: 0,
		mask: capacity - 1,
	}
}

// grow doubles the buffer until it can hold size+extra elements,
// unwrapping the ring to the start of the new backing array.
func (r *Ring[T]) grow(extra int) {
	newCapacity := 1 << uint(bits.Len(uint(r.size+extra-1)))
	newBuf := make([]T, newCapacity)

	if r.head+r.size <= len(r.buf) {
		copy(newBuf, r.buf[r.head:r.head+r.size])
	} else {
		// wrapped around: copy head..end, then start..tail
		n := copy(newBuf, r.buf[r.head:])
		tail := (r.head + r.size) & r.mask
		copy(newBuf[n:], r.buf[:tail])
	}

	clear(r.buf)
	r.buf = newBuf
	r.head = 0
	r.mask = newCapacity - 1
}

// Enqueue appends value at the back of the ring.
func (r *Ring[T]) Enqueue(value T) {
	if r.size == len(r.buf) {
		r.grow(1)
	}
	r.buf[(r.head+r.size)&r.mask] = value
	r.size++
}

// Dequeue removes and returns the element at the front of the ring.
func (r *Ring[T]) Dequeue() (value T, ok bool) {
	if r.size == 0 {
		return value, false
	}
	value = r.buf[r.head]
	var zero T
	r.buf[r.head] = zero // clear reference
	r.head = (r.head + 1) & r.mask
	r.size--
	return value, true
}

// Discard drops up to n elements from the front of the ring and reports
// how many were actually dropped.
func (r *Ring[T]) Discard(n int) int {
	if n > r.size {
		n = r.size
	}
	if n <= 0 {
		return 0
	}
	if r.head+n <= len(r.buf) {
		clear(r.buf[r.head : r.head+n])
	} else {
		// wrapped around
		clear(r.buf[r.head:])
		clear(r.buf[:n-(len(r.buf)-r.head)])
	}
	r.head = (r.head + n) & r.mask
	r.size -= n
	return n
}

// At returns the i-th buffered element counted from the front.
// It panics if i is out of range.
func (r *Ring[T]) At(i int) T {
	if i < 0 || i >= r.size {
		panic("brook.Ring: index out of range")
	}
	return r.buf[(r.head+i)&r.mask]
}

// Peek returns the element at the front of the ring without removing it.
func (r *Ring[T]) Peek() (value T, ok bool) {
	if r.size == 0 {
		return value, false
	}
	return r.buf[r.head], true
}

func (r *Ring[T]) Size() int {
	return r.size
}

func (r *Ring[T]) IsEmpty() bool {
	return r.size == 0
}

func (r *Ring[T]) Clear() {
	clear(r.buf)
	r.head = 0
	r.size = 0
}
