package seqs

import (
	"iter"

	"brook/queues"
)

// Lookahead wraps a sequence with a bounded peek buffer. It pulls from the
// source one element at a time, only as far as the deepest peek demands,
// and never speculatively beyond that.
//
// A Lookahead owns its source for its whole lifetime. Call Stop when done
// to release the source promptly.
type Lookahead[T any] struct {
	next func() (T, bool)
	stop func()
	buf  *queues.Ring[T]
	done bool // source reported exhaustion
}

// NewLookahead creates a Lookahead over seq, taking ownership of it.
func NewLookahead[T any](seq iter.Seq[T]) *Lookahead[T] {
	next, stop := iter.Pull(seq)
	return &Lookahead[T]{
		next: next,
		stop: stop,
		buf:  queues.NewRing[T](8),
	}
}

// TryPull materializes one more buffered element from the source.
// It reports false once the source is exhausted.
func (l *Lookahead[T]) TryPull() bool {
	if l.done {
		return false
	}
	v, ok := l.next()
	if !ok {
		l.done = true
		return false
	}
	l.buf.Enqueue(v)
	return true
}

// Peek returns the n-th not-yet-consumed element (0-based) without
// consuming it, pulling from the source as needed. It returns
// ErrExhausted if fewer than n+1 elements remain.
func (l *Lookahead[T]) Peek(n int) (T, error) {
	var zero T
	if n < 0 {
		return zero, ErrExhausted
	}
	for l.buf.Size() <= n {
		if !l.TryPull() {
			return zero, ErrExhausted
		}
	}
	return l.buf.At(n), nil
}

// Consume discards the first n unconsumed elements, pulling any that were
// not yet buffered. If the source runs out first it discards what it can
// and returns ErrExhausted.
func (l *Lookahead[T]) Consume(n int) error {
	for n > 0 {
		dropped := l.buf.Discard(n)
		n -= dropped
		if n == 0 {
			return nil
		}
		if !l.TryPull() {
			return ErrExhausted
		}
	}
	return nil
}

// Next consumes and returns the front element.
func (l *Lookahead[T]) Next() (T, error) {
	if v, ok := l.buf.Dequeue(); ok {
		return v, nil
	}
	var zero T
	if !l.TryPull() {
		return zero, ErrExhausted
	}
	v, _ := l.buf.Dequeue()
	return v, nil
}

// Buffered returns the number of pulled-but-unconsumed elements.
func (l *Lookahead[T]) Buffered() int {
	return l.buf.Size()
}

// Stop releases the wrapped source. The Lookahead must not be used after.
func (l *Lookahead[T]) Stop() {
	l.done = true
	l.buf.Clear()
	l.stop()
}
